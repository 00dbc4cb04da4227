package storage

import (
	"testing"

	"github.com/google/uuid"

	"github.com/vovakirdan/classic-arcade/internal/core"
)

func TestSaveMatchGeneratesUUID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveMatch(MatchResult{
		GameID:  "connectfour",
		Mode:    core.MatchModeVsCPU,
		Outcome: core.OutcomeWin,
		Moves:   13,
	})
	if err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("match ID %q is not a UUID: %v", id, err)
	}

	matches, err := store.RecentMatches("connectfour", 5)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	m := matches[0]
	if m.MatchID != id || m.Mode != core.MatchModeVsCPU || m.Outcome != core.OutcomeWin || m.Moves != 13 {
		t.Errorf("stored match = %+v", m)
	}
}

func TestSaveMatchRejectsNoOutcome(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveMatch(MatchResult{GameID: "tictactoe"}); err == nil {
		t.Error("SaveMatch without outcome should fail")
	}
}

func TestMatchRecord(t *testing.T) {
	store := openTestStore(t)

	outcomes := []core.Outcome{
		core.OutcomeWin, core.OutcomeLoss, core.OutcomeWin,
		core.OutcomeDraw, core.OutcomeLoss, core.OutcomeLoss,
	}
	for _, o := range outcomes {
		if _, err := store.SaveMatch(MatchResult{GameID: "tictactoe", Mode: core.MatchModeVsCPU, Outcome: o}); err != nil {
			t.Fatalf("SaveMatch() failed: %v", err)
		}
	}
	store.SaveMatch(MatchResult{GameID: "connectfour", Mode: core.MatchModeVsCPU, Outcome: core.OutcomeWin})

	rec, err := store.MatchRecord("tictactoe")
	if err != nil {
		t.Fatalf("MatchRecord() failed: %v", err)
	}
	want := Record{Wins: 2, Losses: 3, Draws: 1}
	if rec != want {
		t.Errorf("MatchRecord = %+v, expected %+v", rec, want)
	}
	if rec.Played() != 6 {
		t.Errorf("Played() = %d, expected 6", rec.Played())
	}

	empty, err := store.MatchRecord("pacman")
	if err != nil {
		t.Fatalf("MatchRecord(empty) failed: %v", err)
	}
	if empty != (Record{}) {
		t.Errorf("empty record = %+v", empty)
	}
}

func TestRecentMatchesNewestFirst(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 4; i++ {
		store.SaveMatch(MatchResult{GameID: "connectfour", Mode: core.MatchModeVsCPU, Outcome: core.OutcomeDraw, Moves: i})
	}

	matches, err := store.RecentMatches("connectfour", 2)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	if matches[0].Moves != 4 || matches[1].Moves != 3 {
		t.Errorf("matches not newest first: %+v", matches)
	}
}

func TestClearScoresAlsoClearsMatches(t *testing.T) {
	store := openTestStore(t)

	store.SaveMatch(MatchResult{GameID: "tictactoe", Mode: core.MatchModeVsCPU, Outcome: core.OutcomeWin})
	if err := store.ClearScores("tictactoe"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if rec, _ := store.MatchRecord("tictactoe"); rec.Played() != 0 {
		t.Errorf("matches survived ClearScores: %+v", rec)
	}
}
