package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/classic-arcade/internal/core"
	"github.com/vovakirdan/classic-arcade/internal/registry"
	"github.com/vovakirdan/classic-arcade/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores or the match record for a game",
	Long: `Display the top 10 scores of a score game, or the win/loss/draw
record and recent rounds against the CPU for a board game.

Examples:
  arcade scores snake
  arcade scores connectfour`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(_ *cobra.Command, args []string) {
	gameID := args[0]

	info, ok := registry.Lookup(gameID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if info.Mode == core.MatchModeSolo {
		err = printScores(store, info)
	} else {
		err = printRecord(store, info)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printScores(store *storage.Store, info registry.GameInfo) error {
	scores, err := store.TopScores(info.ID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", info.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", info.ID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Printf("Best: %d\n", scores[0].Score)
	return nil
}

func printRecord(store *storage.Store, info registry.GameInfo) error {
	rec, err := store.MatchRecord(info.ID)
	if err != nil {
		return err
	}

	fmt.Printf("Record vs CPU - %s\n", info.Title)
	fmt.Println()
	fmt.Printf("  Wins: %d  Losses: %d  Draws: %d\n", rec.Wins, rec.Losses, rec.Draws)
	fmt.Println()

	if rec.Played() == 0 {
		fmt.Printf("Play 'arcade play %s --cpu' to start a record!\n", info.ID)
		return nil
	}

	matches, err := store.RecentMatches(info.ID, 10)
	if err != nil {
		return err
	}
	fmt.Printf("  %-16s  %-7s  %-5s  %s\n", "Date", "Result", "Moves", "Match")
	fmt.Printf("  %-16s  %-7s  %-5s  %s\n", "----", "------", "-----", "-----")
	for _, m := range matches {
		fmt.Printf("  %-16s  %-7s  %-5d  %s\n", m.CreatedAt.Format("2006-01-02 15:04"), m.Outcome, m.Moves, m.MatchID)
	}
	return nil
}
