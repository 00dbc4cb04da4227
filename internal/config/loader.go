package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads the configuration for gameID on top of base.
//
// Search order: customPath -> ~/.arcade/configs/<id>.yaml ->
// ./configs/<id>.yaml -> embedded default -> base unchanged.
// Only a broken customPath is an error; unreadable or invalid files further
// down the chain are skipped. Keys missing from a file keep base's values.
func Load[T any](gameID, customPath string, base T) (T, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return base, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		cfg, err := decode(data, base)
		if err != nil {
			return base, fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := gameID + ".yaml"
	candidates := []string{
		userConfigPath(filename),
		filepath.Join("configs", filename),
	}
	for _, p := range candidates {
		if p == "" {
			continue
		}
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		if cfg, err := decode(data, base); err == nil {
			return cfg, nil
		}
	}

	if data := DefaultYAML(gameID); data != nil {
		if cfg, err := decode(data, base); err == nil {
			return cfg, nil
		}
	}
	return base, nil
}

func decode[T any](data []byte, base T) (T, error) {
	cfg := base
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return base, err
	}
	return cfg, nil
}

// userConfigPath returns the path of a file in ~/.arcade/configs, or empty
// if the home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// LoadSnake loads the Snake configuration.
func LoadSnake(customPath string) (SnakeConfig, error) {
	return Load("snake", customPath, DefaultSnakeConfig())
}

// LoadTetris loads the Tetris configuration.
func LoadTetris(customPath string) (TetrisConfig, error) {
	return Load("tetris", customPath, DefaultTetrisConfig())
}

// LoadTicTacToe loads the Tic-Tac-Toe configuration.
func LoadTicTacToe(customPath string) (TicTacToeConfig, error) {
	return Load("tictactoe", customPath, DefaultTicTacToeConfig())
}

// LoadConnectFour loads the Connect Four configuration.
func LoadConnectFour(customPath string) (ConnectFourConfig, error) {
	return Load("connectfour", customPath, DefaultConnectFourConfig())
}

// LoadInvaders loads the Space Invaders configuration.
func LoadInvaders(customPath string) (InvadersConfig, error) {
	return Load("invaders", customPath, DefaultInvadersConfig())
}

// LoadPacman loads the Pac-Man configuration.
func LoadPacman(customPath string) (PacmanConfig, error) {
	return Load("pacman", customPath, DefaultPacmanConfig())
}
