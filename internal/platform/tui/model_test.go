package tui

import (
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/classic-arcade/internal/core"
)

func tick(t *testing.T, m Model) Model {
	t.Helper()
	next, cmd := m.Update(TickMsg{ID: m.tickID})
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	return next.(Model)
}

func press(m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestModelSavesScoreOncePerRound(t *testing.T) {
	store := openTestStore(t)
	g := &fakeGame{id: "solo-score"}
	m := NewModel(g, store, testConfig(), quietLogger())

	g.state = core.GameState{Score: 42, GameOver: true}
	for range 3 {
		m = tick(t, m)
	}
	scores, err := store.TopScores("solo-score", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 1 || scores[0].Score != 42 {
		t.Fatalf("scores = %+v, expected a single 42", scores)
	}

	g.state = core.GameState{Score: 0}
	m = tick(t, m)
	g.state = core.GameState{Score: 7, GameOver: true}
	m = tick(t, m)
	_ = tick(t, m)

	scores, _ = store.TopScores("solo-score", 10)
	if len(scores) != 2 {
		t.Errorf("got %d scores after two rounds, expected 2", len(scores))
	}
}

func TestModelSkipsZeroScore(t *testing.T) {
	store := openTestStore(t)
	g := &fakeGame{id: "solo-zero", state: core.GameState{GameOver: true}}
	m := NewModel(g, store, testConfig(), quietLogger())
	tick(t, m)

	if best, _ := store.HighScore("solo-zero"); best != 0 {
		t.Errorf("HighScore = %d, expected nothing saved", best)
	}
}

func TestModelSavesMatchAgainstCPU(t *testing.T) {
	store := openTestStore(t)
	g := &fakeBoard{fakeGame: fakeGame{id: "board-cpu"}, cpu: true}
	m := NewModel(g, store, testConfig(), quietLogger())

	g.state = core.GameState{Score: 1, GameOver: true, Outcome: core.OutcomeWin, Moves: 7}
	m = tick(t, m)
	tick(t, m)

	rec, err := store.MatchRecord("board-cpu")
	if err != nil {
		t.Fatal(err)
	}
	if rec.Wins != 1 || rec.Played() != 1 {
		t.Errorf("record = %+v, expected one win", rec)
	}
	matches, _ := store.RecentMatches("board-cpu", 5)
	if len(matches) != 1 || matches[0].Moves != 7 || matches[0].Mode != core.MatchModeVsCPU {
		t.Errorf("matches = %+v", matches)
	}
	if scores, _ := store.TopScores("board-cpu", 5); len(scores) != 0 {
		t.Error("board games should not write score rows")
	}
}

func TestModelSkipsHotseatRounds(t *testing.T) {
	store := openTestStore(t)
	g := &fakeBoard{fakeGame: fakeGame{id: "board-hotseat"}}
	m := NewModel(g, store, testConfig(), quietLogger())

	g.state = core.GameState{Score: 3, GameOver: true, Moves: 9}
	tick(t, m)

	if rec, _ := store.MatchRecord("board-hotseat"); rec.Played() != 0 {
		t.Errorf("record = %+v, expected nothing", rec)
	}
	if scores, _ := store.TopScores("board-hotseat", 5); len(scores) != 0 {
		t.Error("hot-seat rounds should not be recorded")
	}
}

func TestModelWithoutStore(t *testing.T) {
	g := &fakeGame{id: "nostore", state: core.GameState{Score: 5, GameOver: true}}
	m := NewModel(g, nil, testConfig(), nil)
	m = tick(t, m)
	if !m.recorded {
		t.Error("round should be marked as handled")
	}
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	g := &fakeGame{id: "stale"}
	m := NewModel(g, nil, testConfig(), quietLogger())

	next, cmd := m.Update(TickMsg{ID: m.tickID + 1000})
	if cmd != nil || g.steps != 0 {
		t.Error("a tick from another model should be dropped")
	}
	_ = next
}

func TestModelPassesInputAndClearsIt(t *testing.T) {
	g := &fakeGame{id: "input"}
	m := NewModel(g, nil, testConfig(), quietLogger())

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = press(m, tea.KeyMsg{Type: tea.KeySpace})
	m = tick(t, m)
	if !g.last.Has(core.ActionLeft) || !g.last.Has(core.ActionFire) {
		t.Errorf("game saw %v, expected Left and Fire", g.last.Actions)
	}

	tick(t, m)
	if !g.last.Empty() {
		t.Errorf("input should be cleared after a tick, got %v", g.last.Actions)
	}
}

func TestModelBackToMenu(t *testing.T) {
	g := &fakeGame{id: "back"}
	m := NewModel(g, nil, testConfig(), quietLogger())

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("back should be ignored while the game runs")
	}

	g.state = core.GameState{GameOver: true}
	m = tick(t, m)
	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() || cmd == nil {
		t.Error("back after game over should leave the game")
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&fakeGame{id: "quit"}, nil, testConfig(), quietLogger())
	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelResizeResetsRunningGame(t *testing.T) {
	g := &fakeGame{id: "resize"}
	m := NewModel(g, nil, testConfig(), quietLogger())

	next, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 12})
	m = next.(Model)
	if g.resets != 0 {
		t.Fatal("same size should not reset")
	}
	next, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)
	if g.resets != 1 || m.screen.Width() != 100 {
		t.Errorf("resets=%d width=%d, expected a reset at the new size", g.resets, m.screen.Width())
	}
}

func TestSaveScreenshot(t *testing.T) {
	m := NewModel(&fakeGame{id: "shot"}, nil, testConfig(), quietLogger())
	path, err := m.saveScreenshot(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "fake shot") {
		t.Errorf("screenshot = %q", data)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(20, 3)
	s.DrawTextWithColor(2, 1, "Connect", core.ColorRed)
	s.DrawTextWithColor(10, 1, "Four", core.ColorPurple)

	out := RenderScreen(s)
	if !strings.Contains(out, "Connect") || !strings.Contains(out, "Four") {
		t.Errorf("render lost text: %q", out)
	}
	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("got %d line breaks, expected 2", got)
	}
}
