package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/classic-arcade/internal/core"
	"github.com/vovakirdan/classic-arcade/internal/registry"
	"github.com/vovakirdan/classic-arcade/internal/storage"
)

func menuIndex(t *testing.T, m MenuModel, id string) int {
	t.Helper()
	for i, it := range m.items {
		if it.GameID == id {
			return i
		}
	}
	t.Fatalf("%s not in menu", id)
	return -1
}

func menuKey(m MenuModel, msg tea.KeyMsg) MenuModel {
	next, _ := m.Update(msg)
	return next.(MenuModel)
}

func TestMenuListsGamesWithModes(t *testing.T) {
	m := NewMenuModel(nil, testConfig())
	solo := m.items[menuIndex(t, m, soloID)]
	board := m.items[menuIndex(t, m, boardID)]

	if solo.Mode != core.MatchModeSolo || solo.Board() {
		t.Errorf("solo item = %+v", solo)
	}
	if board.Mode != core.MatchModeVsCPU || !board.Board() {
		t.Errorf("board item = %+v", board)
	}
	view := m.View()
	for _, want := range []string{"Fake " + soloID, "Fake " + boardID, "vs CPU"} {
		if !strings.Contains(view, want) {
			t.Errorf("menu view missing %q", want)
		}
	}
}

func TestMenuTogglesBoardMode(t *testing.T) {
	m := NewMenuModel(nil, testConfig())
	m.cursor = menuIndex(t, m, boardID)

	m = menuKey(m, tea.KeyMsg{Type: tea.KeyRight})
	if got := m.items[m.cursor].Mode; got != core.MatchModeHotseat {
		t.Fatalf("mode = %v, expected hot-seat", got)
	}
	m = menuKey(m, tea.KeyMsg{Type: tea.KeyEnter})
	res := m.Result()
	if res.GameID != boardID || res.Mode != core.MatchModeHotseat || res.Quit {
		t.Errorf("result = %+v", res)
	}

	m = NewMenuModel(nil, testConfig())
	m.cursor = menuIndex(t, m, soloID)
	m = menuKey(m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.items[m.cursor].Mode != core.MatchModeSolo {
		t.Error("solo games have no mode to switch")
	}
}

func TestMenuNavigationClamps(t *testing.T) {
	m := NewMenuModel(nil, testConfig())
	m = menuKey(m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Errorf("cursor = %d, expected 0", m.cursor)
	}
	for range len(m.items) + 3 {
		m = menuKey(m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.cursor != len(m.items)-1 {
		t.Errorf("cursor = %d, expected last item", m.cursor)
	}
}

func TestMenuResults(t *testing.T) {
	m := menuKey(NewMenuModel(nil, testConfig()), tea.KeyMsg{Type: tea.KeyTab})
	if !m.Result().WantsScoreboard {
		t.Error("tab should open the scoreboard")
	}
	m = menuKey(NewMenuModel(nil, testConfig()), tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !m.Result().Quit {
		t.Error("q should quit")
	}
}

func TestMenuSummaries(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveScore(soloID, 99); err != nil {
		t.Fatal(err)
	}
	if _, err := store.SaveMatch(storage.MatchResult{GameID: boardID, Mode: core.MatchModeVsCPU, Outcome: core.OutcomeWin, Moves: 11}); err != nil {
		t.Fatal(err)
	}

	m := NewMenuModel(store, testConfig())
	if got := m.items[menuIndex(t, m, soloID)].Summary; got != "best 99" {
		t.Errorf("solo summary = %q", got)
	}
	if got := m.items[menuIndex(t, m, boardID)].Summary; got != "W1 L0 D0" {
		t.Errorf("board summary = %q", got)
	}
}

func TestCenterTextUsesDisplayWidth(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q", got)
	}
	if got := centerText("日本", 8); got != "  日本" {
		t.Errorf("centerText = %q", got)
	}
	if got := centerText("too long", 4); got != "too long" {
		t.Errorf("centerText = %q", got)
	}
}

func TestNewGameSetsOpponent(t *testing.T) {
	g, err := NewGame(boardID, core.MatchModeHotseat)
	if err != nil {
		t.Fatal(err)
	}
	if g.(registry.Opponent).CPU() {
		t.Error("hot-seat should switch the CPU off")
	}
	if _, err := NewGame("no-such-game", core.MatchModeSolo); !errors.Is(err, registry.ErrUnknownGame) {
		t.Errorf("err = %v, expected ErrUnknownGame", err)
	}
}

func TestScoreboardShowsScoresAndRecord(t *testing.T) {
	store := openTestStore(t)
	for _, s := range []int{10, 30} {
		if _, err := store.SaveScore(soloID, s); err != nil {
			t.Fatal(err)
		}
	}
	for _, o := range []core.Outcome{core.OutcomeWin, core.OutcomeLoss, core.OutcomeLoss} {
		if _, err := store.SaveMatch(storage.MatchResult{GameID: boardID, Mode: core.MatchModeVsCPU, Outcome: o, Moves: 5}); err != nil {
			t.Fatal(err)
		}
	}

	sb := NewScoreboardModel(store, 100, 30)
	for i, g := range sb.games {
		if g.ID == soloID {
			sb.cursor = i
		}
	}
	sb.load()
	if len(sb.rows) != 2 || sb.rows[0][1] != "30" {
		t.Errorf("score rows = %v", sb.rows)
	}

	for i, g := range sb.games {
		if g.ID == boardID {
			sb.cursor = i
		}
	}
	sb.load()
	if len(sb.rows) != 3 || sb.record.Wins != 1 || sb.record.Losses != 2 {
		t.Errorf("rows=%d record=%+v", len(sb.rows), sb.record)
	}
	if !strings.Contains(sb.View(), "W 1  L 2  D 0") {
		t.Error("scoreboard should show the win/loss/draw record")
	}
}

func TestSessionFlow(t *testing.T) {
	s := NewSessionModel(nil, testConfig(), "alice", quietLogger())
	if _, err := uuid.Parse(s.ID()); err != nil {
		t.Fatalf("session ID %q is not a UUID: %v", s.ID(), err)
	}

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyTab})
	s = next.(SessionModel)
	if s.view != viewScoreboard {
		t.Fatal("tab should open the scoreboard")
	}
	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = next.(SessionModel)
	if s.view != viewMenu {
		t.Fatal("esc should return to the menu")
	}

	next, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)
	if s.view != viewGame || s.game == nil || cmd == nil {
		t.Fatal("enter should start the selected game")
	}

	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	s = next.(SessionModel)
	if !s.quitting || s.View() != "" {
		t.Error("q in a game should end the session")
	}
}
