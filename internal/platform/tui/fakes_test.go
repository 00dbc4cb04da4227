package tui

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/classic-arcade/internal/core"
	"github.com/vovakirdan/classic-arcade/internal/registry"
	"github.com/vovakirdan/classic-arcade/internal/storage"
)

const (
	soloID  = "tui-solo"
	boardID = "tui-board"
)

func init() {
	registry.Register(soloID, func() registry.Game { return &fakeGame{id: soloID} })
	registry.Register(boardID, func() registry.Game { return &fakeBoard{fakeGame: fakeGame{id: boardID}, cpu: true} })
}

// fakeGame reports whatever state the test sets.
type fakeGame struct {
	id     string
	state  core.GameState
	steps  int
	resets int
	last   core.InputFrame
}

func (f *fakeGame) ID() string               { return f.id }
func (f *fakeGame) Title() string            { return "Fake " + f.id }
func (f *fakeGame) Reset(core.RuntimeConfig) { f.resets++ }
func (f *fakeGame) State() core.GameState    { return f.state }
func (f *fakeGame) Render(dst *core.Screen)  { dst.Clear(); dst.DrawText(0, 0, "fake "+f.id) }
func (f *fakeGame) Step(in core.InputFrame) core.StepResult {
	f.steps++
	f.last = in.Clone()
	return core.StepResult{State: f.state}
}

type fakeBoard struct {
	fakeGame
	cpu bool
}

func (f *fakeBoard) SetCPU(enabled bool) { f.cpu = enabled }
func (f *fakeBoard) CPU() bool           { return f.cpu }

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 1}
}
