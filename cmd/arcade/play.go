package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/classic-arcade/internal/core"
	"github.com/vovakirdan/classic-arcade/internal/platform/tui"
	"github.com/vovakirdan/classic-arcade/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagCPU        bool
	flagNoCPU      bool
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD  - Move, aim, pick a column or cell
  Space        - Fire, hard drop, drop a disc
  Enter        - Place a mark or disc
  C            - Toggle the CPU opponent (board games)
  P            - Pause
  R            - Restart (after game over)
  Esc/B        - Leave (when paused or over)
  Q/Ctrl+C     - Quit
  Ctrl+S       - Save a text screenshot

Difficulty options:
  easy   - Start at lowest difficulty, slow CPU
  normal - Start at 30% difficulty
  hard   - Start at 70% difficulty, quick CPU
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play snake
  arcade play tetris --difficulty hard
  arcade play connectfour --no-cpu
  arcade play invaders --config ./my-invaders.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagCPU, "cpu", false, "Play board games against the CPU")
	playCmd.Flags().BoolVar(&flagNoCPU, "no-cpu", false, "Play board games hot-seat with two players")
	playCmd.MarkFlagsMutuallyExclusive("cpu", "no-cpu")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	info, ok := registry.Lookup(gameID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}
	if err := validateDifficulty(flagDifficulty); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	mode := info.Mode
	switch {
	case (flagCPU || flagNoCPU) && mode == core.MatchModeSolo:
		fmt.Fprintf(os.Stderr, "Error: %s has no CPU opponent\n", info.Title)
		os.Exit(1)
	case flagCPU:
		mode = core.MatchModeVsCPU
	case flagNoCPU:
		mode = core.MatchModeHotseat
	}

	configureGame(gameID, flagConfig, flagDifficulty)
	game, err := tui.NewGame(gameID, mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	logger.Debug("starting game", "game", gameID, "mode", mode)
	runErr := tui.Run(game, store, runtimeConfig(), logger)

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
