package main

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/classic-arcade/internal/core"
	"github.com/vovakirdan/classic-arcade/internal/platform/tui"
)

var (
	flagSpawn          bool
	flagMenuDifficulty string
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade launcher",
	Long: `Start the arcade in interactive menu mode.

Pick a game with the arrow keys, switch board games between playing the
CPU and hot-seat with Left/Right, and press Enter to play. When the game
ends you return to the launcher.

With --spawn every game runs as its own 'arcade play' process and the
launcher waits for it to exit.

Controls:
  Up/Down/j/k  - Navigate
  Left/Right   - Switch mode (board games)
  Enter/Space  - Play
  Tab          - Scoreboard
  Q/Esc        - Quit

Examples:
  arcade menu
  arcade menu --spawn
  arcade menu --difficulty easy --fps 30`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().BoolVar(&flagSpawn, "spawn", false, "Run each game as a separate process")
	menuCmd.Flags().StringVar(&flagMenuDifficulty, "difficulty", "", "Difficulty preset for every game")
}

func runMenu(_ *cobra.Command, _ []string) {
	if err := validateDifficulty(flagMenuDifficulty); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	cfg := runtimeConfig()
	for {
		res, err := tui.RunMenu(store, cfg)
		if err != nil {
			logger.Error("menu failed", "err", err)
			return
		}
		cfg = res.Config

		switch {
		case res.Quit || (res.GameID == "" && !res.WantsScoreboard):
			return

		case res.WantsScoreboard:
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				logger.Error("scoreboard failed", "err", sbErr)
			}
			if !goBack {
				return
			}
			continue
		}

		if flagSpawn {
			if err := spawnGame(res.GameID, res.Mode); err != nil {
				logger.Error("game process failed", "game", res.GameID, "err", err)
			}
			continue
		}

		configureGame(res.GameID, "", flagMenuDifficulty)
		game, err := tui.NewGame(res.GameID, res.Mode)
		if err != nil {
			logger.Error("cannot create game", "game", res.GameID, "err", err)
			continue
		}
		if err := tui.Run(game, store, cfg, logger); err != nil {
			logger.Error("game failed", "game", res.GameID, "err", err)
		}
	}
}

// spawnArgs builds the 'arcade play' command line for a launcher choice.
func spawnArgs(gameID string, mode core.MatchMode) []string {
	args := []string{
		"play", gameID,
		"--fps", strconv.Itoa(flagFPS),
		"--db", flagDBPath,
		"--log-level", flagLogLevel,
	}
	if flagSeed != 0 {
		args = append(args, "--seed", strconv.FormatInt(flagSeed, 10))
	}
	if flagMenuDifficulty != "" {
		args = append(args, "--difficulty", flagMenuDifficulty)
	}
	switch mode {
	case core.MatchModeVsCPU:
		args = append(args, "--cpu")
	case core.MatchModeHotseat:
		args = append(args, "--no-cpu")
	}
	return args
}

// spawnGame runs the chosen game as a child process on this terminal and
// waits for it.
func spawnGame(gameID string, mode core.MatchMode) error {
	self, err := os.Executable()
	if err != nil {
		return fmt.Errorf("cannot locate arcade binary: %w", err)
	}

	cmd := exec.Command(self, spawnArgs(gameID, mode)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	logger.Info("spawning game", "game", gameID, "mode", mode)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("arcade play %s: %w", gameID, err)
	}
	return nil
}
