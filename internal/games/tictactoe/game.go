// Package tictactoe implements Tic-Tac-Toe for two players or against a
// rule-based CPU.
package tictactoe

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/classic-arcade/internal/config"
	"github.com/vovakirdan/classic-arcade/internal/core"
	"github.com/vovakirdan/classic-arcade/internal/registry"
)

const (
	cellW = 6
	cellH = 3
)

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the preset used on the next Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset, _ = config.ParsePreset(preset)
}

// Game implements Tic-Tac-Toe. X always moves first; the CPU plays O.
type Game struct {
	fixedCfg *config.TicTacToeConfig
	cfg      config.TicTacToeConfig
	rng      *rand.Rand

	board   Board
	current Mark
	cursor  core.Point
	moves   int
	tick    uint64

	cpu         bool
	cpuOverride *bool
	thinkLeft   int

	over    bool
	winner  Mark
	winLine []core.Point
	tally   map[Mark]int

	paused  bool
	screenW int
	screenH int
}

// New creates a Tic-Tac-Toe game that loads its config on Reset.
func New() *Game {
	return &Game{
		cpu:   config.DefaultTicTacToeConfig().CPU.Enabled,
		tally: make(map[Mark]int),
	}
}

// NewWithConfig creates a game with a fixed config.
func NewWithConfig(cfg config.TicTacToeConfig) *Game {
	g := New()
	g.fixedCfg = &cfg
	g.cpu = cfg.CPU.Enabled
	return g
}

func init() {
	registry.Register("tictactoe", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "tictactoe" }

// Title returns the display name.
func (g *Game) Title() string { return "Tic-Tac-Toe" }

// SetCPU switches between playing the CPU and two players.
func (g *Game) SetCPU(enabled bool) {
	g.cpu = enabled
	g.cpuOverride = &enabled
}

// CPU reports whether O is played by the CPU.
func (g *Game) CPU() bool { return g.cpu }

// Reset loads the config and starts a new session.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if g.fixedCfg != nil {
		g.cfg = *g.fixedCfg
	} else {
		cfg, err := config.LoadTicTacToe(configPath)
		if err != nil {
			cfg = config.DefaultTicTacToeConfig()
		}
		if difficultyPreset != "" {
			cfg.CPU.ApplyPreset(difficultyPreset)
		}
		g.cfg = cfg
	}
	g.cpu = g.cfg.CPU.Enabled
	if g.cpuOverride != nil {
		g.cpu = *g.cpuOverride
	}

	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.tick = 0
	g.paused = false
	g.tally = make(map[Mark]int)
	g.newRound()
}

func (g *Game) newRound() {
	g.board = Board{}
	g.current = X
	g.cursor = center
	g.moves = 0
	g.over = false
	g.winner = None
	g.winLine = nil
	g.thinkLeft = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionRestart) {
		g.newRound()
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionToggleCPU) {
		g.SetCPU(!g.cpu)
		g.newRound()
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) && !g.over {
		g.paused = !g.paused
	}
	if g.over || g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.cpuTurn() {
		g.thinkLeft--
		if g.thinkLeft <= 0 {
			if p, ok := SelectMove(&g.board, O, g.rng); ok {
				g.place(p)
			}
		}
		return core.StepResult{State: g.State()}
	}

	if d := directionOf(in); d != core.DirNone {
		next := g.cursor.Add(d.Delta())
		g.cursor = core.Point{X: core.Clamp(next.X, 0, 2), Y: core.Clamp(next.Y, 0, 2)}
	}
	if in.Has(core.ActionConfirm) || in.Has(core.ActionFire) {
		g.place(g.cursor)
	}

	return core.StepResult{State: g.State()}
}

func directionOf(in core.InputFrame) core.Direction {
	for _, a := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight} {
		if in.Has(a) {
			return core.DirectionFor(a)
		}
	}
	return core.DirNone
}

func (g *Game) cpuTurn() bool {
	return g.cpu && g.current == O
}

// place marks p for the current player, then checks for a win, then for a
// full board, and only then passes the turn.
func (g *Game) place(p core.Point) {
	if g.board.At(p) != None {
		return
	}
	g.board[p.Y][p.X] = g.current
	g.moves++

	if w, line := g.board.Winner(); w != None {
		g.over = true
		g.winner = w
		g.winLine = line
		g.tally[w]++
		return
	}
	if g.board.IsFull() {
		g.over = true
		g.tally[None]++
		return
	}

	g.current = g.current.Other()
	if g.cpuTurn() {
		g.thinkLeft = g.cfg.CPU.ThinkTicks
	}
}

// State returns the current game state. Outcome is set only against the CPU.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Score:    g.tally[X],
		GameOver: g.over,
		Paused:   g.paused,
		Moves:    g.moves,
	}
	if g.over && g.cpu {
		switch g.winner {
		case X:
			st.Outcome = core.OutcomeWin
		case O:
			st.Outcome = core.OutcomeLoss
		default:
			st.Outcome = core.OutcomeDraw
		}
	}
	return st
}

func markColor(m Mark) core.Color {
	if m == X {
		return core.ColorCyan
	}
	return core.ColorMagenta
}

// Render draws the grid, the marks and the status line.
func (g *Game) Render(dst *core.Screen) {
	mode := core.MatchModeHotseat
	if g.cpu {
		mode = core.MatchModeVsCPU
	}
	dst.DrawText(0, 0, fmt.Sprintf(" Tic-Tac-Toe [%s]  X: %d  O: %d  Draws: %d",
		mode, g.tally[X], g.tally[O], g.tally[None]))
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorDefault)

	gridW := 3*cellW + 2
	gridH := 3*cellH + 2
	ox := (dst.Width() - gridW) / 2
	oy := 3

	for i := 1; i < 3; i++ {
		dst.DrawVLine(ox+i*(cellW+1)-1, oy, gridH, '│', core.ColorGray)
		dst.DrawHLine(ox, oy+i*(cellH+1)-1, gridW, '─', core.ColorGray)
	}
	for i := 1; i < 3; i++ {
		for j := 1; j < 3; j++ {
			dst.SetWithColor(ox+i*(cellW+1)-1, oy+j*(cellH+1)-1, '┼', core.ColorGray)
		}
	}

	highlight := make(map[core.Point]bool, 3)
	for _, p := range g.winLine {
		highlight[p] = true
	}

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			p := core.Point{X: x, Y: y}
			cx := ox + x*(cellW+1) + cellW/2
			cy := oy + y*(cellH+1) + cellH/2
			m := g.board.At(p)
			c := markColor(m)
			if highlight[p] {
				c = core.ColorBrightYellow
			}
			if m != None {
				dst.SetWithColor(cx, cy, []rune(m.String())[0], c)
			}
			if p == g.cursor && !g.over && !g.cpuTurn() {
				dst.SetWithColor(cx-2, cy, '[', core.ColorBrightWhite)
				dst.SetWithColor(cx+2, cy, ']', core.ColorBrightWhite)
			}
		}
	}

	statusY := oy + gridH + 1
	switch {
	case g.over && g.winner == None:
		dst.DrawTextCenteredWithColor(statusY, "Draw! Press R to play again", core.ColorWhite)
	case g.over:
		dst.DrawTextCenteredWithColor(statusY, fmt.Sprintf("%s wins! Press R to play again", g.winner), markColor(g.winner))
	case g.cpuTurn():
		dst.DrawTextCenteredWithColor(statusY, "CPU is thinking...", core.ColorGray)
	default:
		dst.DrawTextCenteredWithColor(statusY, fmt.Sprintf("%s to move  arrows select  Enter place  C toggle CPU", g.current), markColor(g.current))
	}

	if g.paused {
		dst.DrawOverlay(core.ColorDefault, "Paused", "Press P to continue")
	}
}

// Snapshot captures the game state for determinism tests.
type Snapshot struct {
	Tick    uint64
	Board   Board
	Current Mark
	Cursor  core.Point
	Moves   int
	Over    bool
	Winner  Mark
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:    g.tick,
		Board:   g.board,
		Current: g.current,
		Cursor:  g.cursor,
		Moves:   g.moves,
		Over:    g.over,
		Winner:  g.winner,
	}
}
