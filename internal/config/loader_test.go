package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchBuiltins(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	tests := []struct {
		id   string
		load func() (any, error)
		want any
	}{
		{"snake", func() (any, error) { return LoadSnake("") }, DefaultSnakeConfig()},
		{"tetris", func() (any, error) { return LoadTetris("") }, DefaultTetrisConfig()},
		{"tictactoe", func() (any, error) { return LoadTicTacToe("") }, DefaultTicTacToeConfig()},
		{"connectfour", func() (any, error) { return LoadConnectFour("") }, DefaultConnectFourConfig()},
		{"invaders", func() (any, error) { return LoadInvaders("") }, DefaultInvadersConfig()},
		{"pacman", func() (any, error) { return LoadPacman("") }, DefaultPacmanConfig()},
	}

	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			if DefaultYAML(tc.id) == nil {
				t.Fatalf("no embedded YAML for %s", tc.id)
			}
			got, err := tc.load()
			if err != nil {
				t.Fatalf("load error: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("embedded config differs from built-in default:\n got %+v\nwant %+v", got, tc.want)
			}
		})
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c4.yaml")
	data := []byte("board:\n  width: 9\n  height: 7\ncpu:\n  enabled: false\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConnectFour(path)
	if err != nil {
		t.Fatalf("LoadConnectFour() error = %v", err)
	}
	if cfg.Board.Width != 9 || cfg.Board.Height != 7 {
		t.Errorf("board = %+v, expected 9x7", cfg.Board)
	}
	if cfg.CPU.Enabled {
		t.Error("cpu.enabled should be overridden to false")
	}
	if cfg.CPU.ThinkTicks != 30 || cfg.DropTicks != 3 {
		t.Errorf("unset keys should keep defaults, got %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := LoadSnake(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("grid: [not, a, map"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadSnake(path)
	if err == nil {
		t.Error("expected parse error for broken YAML")
	}
	if !reflect.DeepEqual(cfg, DefaultSnakeConfig()) {
		t.Error("failed load should return the base config")
	}
}

func TestLoadUserConfigDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".arcade", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	data := []byte("lives: 5\n")
	if err := os.WriteFile(filepath.Join(dir, "invaders.yaml"), data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadInvaders("")
	if err != nil {
		t.Fatalf("LoadInvaders() error = %v", err)
	}
	if cfg.Lives != 5 {
		t.Errorf("Lives = %d, expected 5 from user config", cfg.Lives)
	}
	if cfg.Formation.Cols != 11 {
		t.Errorf("Formation.Cols = %d, expected default 11", cfg.Formation.Cols)
	}
}

func TestPresets(t *testing.T) {
	if _, ok := ParsePreset("insane"); ok {
		t.Error("ParsePreset should reject unknown names")
	}
	p, ok := ParsePreset("hard")
	if !ok || p != DifficultyHard {
		t.Fatalf("ParsePreset(hard) = %q, %v", p, ok)
	}

	d := DefaultSnakeConfig().Difficulty
	d.ApplyPreset(DifficultyHard)
	if !d.Enabled || d.InitialLevel != 0.7 {
		t.Errorf("hard preset gave %+v", d)
	}
	d.ApplyPreset(DifficultyFixed)
	if d.Enabled {
		t.Error("fixed preset should disable progression")
	}

	cpu := DefaultConnectFourConfig().CPU
	cpu.ApplyPreset(DifficultyEasy)
	slow := cpu.ThinkTicks
	cpu.ApplyPreset(DifficultyHard)
	if cpu.ThinkTicks >= slow {
		t.Errorf("hard CPU should think faster than easy: %d vs %d", cpu.ThinkTicks, slow)
	}
}
