package main

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/vovakirdan/classic-arcade/internal/config"
	"github.com/vovakirdan/classic-arcade/internal/core"
	"github.com/vovakirdan/classic-arcade/internal/games/connectfour"
	"github.com/vovakirdan/classic-arcade/internal/games/invaders"
	"github.com/vovakirdan/classic-arcade/internal/games/pacman"
	"github.com/vovakirdan/classic-arcade/internal/games/snake"
	"github.com/vovakirdan/classic-arcade/internal/games/tetris"
	"github.com/vovakirdan/classic-arcade/internal/games/tictactoe"
	"github.com/vovakirdan/classic-arcade/internal/storage"
)

// configureGame points a game package at a custom config file and a
// difficulty preset before the game is created.
func configureGame(id, configPath, difficulty string) {
	switch id {
	case "snake":
		snake.SetConfigPath(configPath)
		snake.SetDifficultyPreset(difficulty)
	case "tetris":
		tetris.SetConfigPath(configPath)
		tetris.SetDifficultyPreset(difficulty)
	case "tictactoe":
		tictactoe.SetConfigPath(configPath)
		tictactoe.SetDifficultyPreset(difficulty)
	case "connectfour":
		connectfour.SetConfigPath(configPath)
		connectfour.SetDifficultyPreset(difficulty)
	case "invaders":
		invaders.SetConfigPath(configPath)
		invaders.SetDifficultyPreset(difficulty)
	case "pacman":
		pacman.SetConfigPath(configPath)
		pacman.SetDifficultyPreset(difficulty)
	}
}

// validateDifficulty accepts an empty value or a known preset.
func validateDifficulty(s string) error {
	if s == "" {
		return nil
	}
	if _, ok := config.ParsePreset(s); !ok {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
	return nil
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg
}

// openStore opens the results database. Games still run without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open results database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}
