package main

import (
	"slices"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/classic-arcade/internal/core"
	"github.com/vovakirdan/classic-arcade/internal/registry"
)

func TestNewLogger(t *testing.T) {
	l, err := newLogger("debug")
	if err != nil {
		t.Fatal(err)
	}
	if l.GetLevel() != log.DebugLevel {
		t.Errorf("level = %v, expected debug", l.GetLevel())
	}
	if _, err := newLogger("loud"); err == nil {
		t.Error("unknown level should be rejected")
	}
}

func TestValidateDifficulty(t *testing.T) {
	for _, ok := range []string{"", "easy", "normal", "hard", "fixed"} {
		if err := validateDifficulty(ok); err != nil {
			t.Errorf("validateDifficulty(%q) = %v", ok, err)
		}
	}
	if err := validateDifficulty("insane"); err == nil {
		t.Error("unknown preset should be rejected")
	}
}

func TestSpawnArgs(t *testing.T) {
	flagFPS, flagDBPath, flagLogLevel = 30, "/tmp/scores.db", "info"
	flagSeed, flagMenuDifficulty = 0, ""
	t.Cleanup(func() {
		flagFPS, flagDBPath, flagLogLevel = 0, "", ""
		flagSeed, flagMenuDifficulty = 0, ""
	})

	got := spawnArgs("connectfour", core.MatchModeHotseat)
	want := []string{"play", "connectfour", "--fps", "30", "--db", "/tmp/scores.db", "--log-level", "info", "--no-cpu"}
	if !slices.Equal(got, want) {
		t.Errorf("spawnArgs = %v\nexpected %v", got, want)
	}

	flagSeed, flagMenuDifficulty = 42, "hard"
	got = spawnArgs("snake", core.MatchModeSolo)
	want = []string{"play", "snake", "--fps", "30", "--db", "/tmp/scores.db", "--log-level", "info", "--seed", "42", "--difficulty", "hard"}
	if !slices.Equal(got, want) {
		t.Errorf("spawnArgs = %v\nexpected %v", got, want)
	}
}

func TestAllGamesRegistered(t *testing.T) {
	want := map[string]core.MatchMode{
		"snake":       core.MatchModeSolo,
		"tetris":      core.MatchModeSolo,
		"invaders":    core.MatchModeSolo,
		"pacman":      core.MatchModeSolo,
		"tictactoe":   core.MatchModeVsCPU,
		"connectfour": core.MatchModeVsCPU,
	}
	for id, mode := range want {
		info, ok := registry.Lookup(id)
		if !ok {
			t.Errorf("%s is not registered", id)
			continue
		}
		if info.Mode != mode {
			t.Errorf("%s mode = %v, expected %v", id, info.Mode, mode)
		}
	}
}
