// arcade is a terminal arcade of classic games.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Pick games from the launcher
//	arcade serve             - Start the SSH server
//	arcade scores <game>     - Show high scores or the match record
//
// Global flags:
//
//	--fps <rate>          - Tick rate (default: 60, env ARCADE_FPS)
//	--seed <value>        - RNG seed for reproducible gameplay
//	--db <path>           - Results database (default: ~/.arcade/scores.db, env ARCADE_DB)
//	--log-level <level>   - debug, info, warn or error (env ARCADE_LOG_LEVEL)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/classic-arcade/internal/config"
)

var (
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	logger = log.Default()
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load .env: %v\n", err)
	}
	env := config.EnvDefaults(config.Env{
		DB:       "~/.arcade/scores.db",
		FPS:      60,
		LogLevel: "warn",
	})

	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", env.FPS, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", env.DB, "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", env.LogLevel, "Log level: debug, info, warn, error")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Classic Arcade - retro games in your terminal",
	Long: `Classic Arcade brings Snake, Tetris, Tic-Tac-Toe, Connect Four,
Space Invaders and Pac-Man to the terminal.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive launcher
  serve    - Start SSH server for remote play
  scores   - View high scores and match records

Examples:
  arcade list
  arcade play connectfour
  arcade play tictactoe --no-cpu
  arcade menu --spawn
  arcade serve --ssh :2222
  arcade scores tetris`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		l, err := newLogger(flagLogLevel)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger builds the process logger writing to stderr.
func newLogger(level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
		Level:           lvl,
	}), nil
}
