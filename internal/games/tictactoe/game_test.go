package tictactoe

import (
	"strings"
	"testing"

	"github.com/vovakirdan/classic-arcade/internal/config"
	"github.com/vovakirdan/classic-arcade/internal/core"
	"github.com/vovakirdan/classic-arcade/internal/registry"
)

func newTestGame(cpu bool, thinkTicks int) *Game {
	cfg := config.DefaultTicTacToeConfig()
	cfg.CPU.Enabled = cpu
	cfg.CPU.ThinkTicks = thinkTicks
	g := NewWithConfig(cfg)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})
	return g
}

func placeAt(g *Game, x, y int) {
	g.cursor = pt(x, y)
	g.Step(core.InputOf(core.ActionConfirm))
}

func idle(g *Game, n int) {
	for i := 0; i < n; i++ {
		g.Step(core.NewInputFrame())
	}
}

func TestRegistered(t *testing.T) {
	info, ok := registry.Lookup("tictactoe")
	if !ok {
		t.Fatal("tictactoe not registered")
	}
	if info.Mode != core.MatchModeVsCPU {
		t.Errorf("default mode = %v, expected vs CPU", info.Mode)
	}
}

func TestHotseatAlternates(t *testing.T) {
	g := newTestGame(false, 0)
	if g.current != X {
		t.Fatal("X should move first")
	}
	placeAt(g, 0, 0)
	placeAt(g, 0, 0)
	if g.current != O || g.moves != 1 {
		t.Errorf("placing on an occupied cell should be ignored: current=%v moves=%d", g.current, g.moves)
	}
	placeAt(g, 1, 1)
	if g.board.At(pt(1, 1)) != O || g.current != X {
		t.Errorf("O's move not applied:\n%v", g.board)
	}
}

func TestCursorMovement(t *testing.T) {
	g := newTestGame(false, 0)
	for i := 0; i < 5; i++ {
		g.Step(core.InputOf(core.ActionUp))
		g.Step(core.InputOf(core.ActionLeft))
	}
	if g.cursor != pt(0, 0) {
		t.Errorf("cursor = %v, expected (0,0)", g.cursor)
	}
	g.Step(core.InputOf(core.ActionDown))
	g.Step(core.InputOf(core.ActionRight))
	if g.cursor != pt(1, 1) {
		t.Errorf("cursor = %v, expected (1,1)", g.cursor)
	}
}

func TestDraw(t *testing.T) {
	g := newTestGame(false, 0)
	moves := []core.Point{
		pt(0, 0), pt(1, 0), pt(2, 0), pt(1, 1), pt(0, 1),
		pt(2, 1), pt(1, 2), pt(0, 2), pt(2, 2),
	}
	for i, p := range moves {
		if g.over {
			t.Fatalf("round ended early at move %d", i)
		}
		placeAt(g, p.X, p.Y)
	}
	st := g.State()
	if !st.GameOver || g.winner != None {
		t.Fatalf("expected draw, got over=%v winner=%v", st.GameOver, g.winner)
	}
	if st.Outcome != core.OutcomeNone {
		t.Errorf("hot-seat round reported outcome %v", st.Outcome)
	}
	if g.tally[None] != 1 {
		t.Errorf("draw tally = %d, expected 1", g.tally[None])
	}
}

func TestCPURepliesAfterThinking(t *testing.T) {
	g := newTestGame(true, 2)
	placeAt(g, 0, 0)
	if g.current != O {
		t.Fatal("CPU should be on move")
	}

	placeAt(g, 2, 2)
	if g.board.At(pt(2, 2)) != None {
		t.Fatal("human moved during the CPU's turn")
	}

	idle(g, 1)
	if g.board.At(pt(1, 1)) != O || g.current != X {
		t.Errorf("CPU should take the centre:\n%v", g.board)
	}
}

func TestCPUWinReportsLoss(t *testing.T) {
	g := newTestGame(true, 1)
	g.board = boardFrom(t, "XX.", "OO.", "...")

	placeAt(g, 0, 2)
	idle(g, 1)

	st := g.State()
	if !st.GameOver || g.winner != O || st.Outcome != core.OutcomeLoss {
		t.Fatalf("expected CPU win, got %+v winner=%v", st, g.winner)
	}
	if len(g.winLine) != 3 || g.winLine[0] != pt(0, 1) {
		t.Errorf("winLine = %v", g.winLine)
	}
}

func TestHumanWinReportsWin(t *testing.T) {
	g := newTestGame(true, 1)
	g.board = boardFrom(t, "XX.", "OO.", "...")

	placeAt(g, 2, 0)

	st := g.State()
	if !st.GameOver || st.Outcome != core.OutcomeWin || st.Score != 1 {
		t.Errorf("State = %+v, expected a win with score 1", st)
	}
}

func TestRestartAndToggle(t *testing.T) {
	g := newTestGame(false, 0)
	for _, p := range []core.Point{pt(0, 0), pt(0, 1), pt(1, 0), pt(1, 1), pt(2, 0)} {
		placeAt(g, p.X, p.Y)
	}
	if g.winner != X {
		t.Fatal("X should have won")
	}

	g.Step(core.InputOf(core.ActionRestart))
	if g.over || g.moves != 0 || g.current != X || g.tally[X] != 1 {
		t.Error("restart should clear the board and keep tallies")
	}

	placeAt(g, 1, 1)
	g.Step(core.InputOf(core.ActionToggleCPU))
	if !g.CPU() || g.moves != 0 {
		t.Error("toggling should enable the CPU and start a new round")
	}
}

func TestDeterminism(t *testing.T) {
	inputs := []core.Action{
		core.ActionRight, core.ActionConfirm, core.ActionNone, core.ActionDown,
		core.ActionConfirm, core.ActionLeft, core.ActionNone, core.ActionRestart,
	}
	run := func() Snapshot {
		g := newTestGame(true, 3)
		for i := 0; i < 300; i++ {
			a := inputs[i%len(inputs)]
			if a == core.ActionNone {
				g.Step(core.NewInputFrame())
			} else {
				g.Step(core.InputOf(a))
			}
		}
		return g.Snapshot()
	}
	if a, b := run(), run(); a != b {
		t.Errorf("snapshots differ:\n%+v\n%+v", a, b)
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(false, 0)
	placeAt(g, 1, 1)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"Tic-Tac-Toe", "Hot-seat", "X", "O to move"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}
}
