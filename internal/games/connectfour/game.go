// Package connectfour implements Connect Four with an optional CPU opponent
// driven by a one-ply heuristic evaluator.
package connectfour

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/classic-arcade/internal/config"
	"github.com/vovakirdan/classic-arcade/internal/core"
	"github.com/vovakirdan/classic-arcade/internal/registry"
)

const (
	cellW     = 4 // screen columns per board column
	hudHeight = 3
)

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the preset used on the next Reset. Unknown names
// select the config's own values.
func SetDifficultyPreset(preset string) {
	difficultyPreset, _ = config.ParsePreset(preset)
}

// Game implements Connect Four. Red always moves first; with the CPU on the
// human plays Red and the CPU plays Yellow.
type Game struct {
	fixedCfg *config.ConnectFourConfig
	cfg      config.ConnectFourConfig

	board   *Board
	current Player
	cursor  int
	tick    uint64
	moves   int

	cpu         bool
	cpuOverride *bool
	cpuPlayer   Player
	thinkLeft   int

	animating bool
	animRow   int
	animCol   int
	animY     int
	animTicks int

	over    bool
	winner  Player
	draw    bool
	winLine []core.Point
	wins    map[Player]int
	draws   int

	paused   bool
	tooSmall bool
	screenW  int
	screenH  int
}

// New creates a Connect Four game that loads its config on Reset.
func New() *Game {
	return &Game{
		cpu:       config.DefaultConnectFourConfig().CPU.Enabled,
		cpuPlayer: PlayerYellow,
		wins:      make(map[Player]int),
	}
}

// NewWithConfig creates a game with a fixed config, bypassing file lookup.
func NewWithConfig(cfg config.ConnectFourConfig) *Game {
	g := New()
	g.fixedCfg = &cfg
	g.cpu = cfg.CPU.Enabled
	return g
}

func init() {
	registry.Register("connectfour", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "connectfour" }

// Title returns the display name.
func (g *Game) Title() string { return "Connect Four" }

// SetCPU turns the CPU opponent on or off. Takes effect on the next round.
func (g *Game) SetCPU(enabled bool) {
	g.cpu = enabled
	g.cpuOverride = &enabled
}

// CPU reports whether the CPU opponent is enabled.
func (g *Game) CPU() bool { return g.cpu }

// Board exposes the live board for rendering and tests.
func (g *Game) Board() *Board { return g.board }

// Reset loads the config and starts a new session. Round tallies are
// cleared; use Restart for a new round within the session.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.cfg = g.loadConfig()
	g.cpu = g.cfg.CPU.Enabled
	if g.cpuOverride != nil {
		g.cpu = *g.cpuOverride
	}
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.tick = 0
	g.wins = make(map[Player]int)
	g.draws = 0
	g.paused = false
	g.tooSmall = g.screenW < g.cfg.Board.Width*cellW+3 || g.screenH < g.cfg.Board.Height+hudHeight+5
	g.newRound()
}

func (g *Game) loadConfig() config.ConnectFourConfig {
	if g.fixedCfg != nil {
		return *g.fixedCfg
	}
	cfg, err := config.LoadConnectFour(configPath)
	if err != nil {
		cfg = config.DefaultConnectFourConfig()
	}
	if difficultyPreset != "" {
		cfg.CPU.ApplyPreset(difficultyPreset)
	}
	return cfg
}

// newRound clears the board and hands the first move to Red.
func (g *Game) newRound() {
	if g.board == nil || g.board.Width() != g.cfg.Board.Width || g.board.Height() != g.cfg.Board.Height {
		g.board = NewBoard(g.cfg.Board.Width, g.cfg.Board.Height)
	} else {
		g.board.Reset()
	}
	g.current = PlayerRed
	g.cursor = g.board.Width() / 2
	g.moves = 0
	g.animating = false
	g.over = false
	g.winner = 0
	g.draw = false
	g.winLine = nil
	g.thinkLeft = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

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

	if g.animating {
		g.stepAnimation()
		return core.StepResult{State: g.State()}
	}

	if g.cpuTurn() {
		g.thinkLeft--
		if g.thinkLeft <= 0 {
			if col, ok := SelectMove(g.board, g.cpuPlayer); ok {
				g.drop(col)
			}
		}
		return core.StepResult{State: g.State()}
	}

	g.processInput(in)
	return core.StepResult{State: g.State()}
}

func (g *Game) cpuTurn() bool {
	return g.cpu && g.current == g.cpuPlayer
}

func (g *Game) processInput(in core.InputFrame) {
	switch {
	case in.Has(core.ActionLeft):
		g.cursor = core.Clamp(g.cursor-1, 0, g.board.Width()-1)
	case in.Has(core.ActionRight):
		g.cursor = core.Clamp(g.cursor+1, 0, g.board.Width()-1)
	}

	if in.Has(core.ActionFire) || in.Has(core.ActionConfirm) || in.Has(core.ActionDown) {
		g.drop(g.cursor)
	}
}

// drop applies the current player's move. The piece is on the board at once;
// the fall animation only delays win and draw resolution.
func (g *Game) drop(col int) {
	row, err := g.board.Drop(col, g.current)
	if err != nil {
		return
	}
	g.moves++
	g.animRow, g.animCol = row, col
	g.animY = 0
	g.animTicks = 0
	g.animating = true
	if g.cfg.DropTicks <= 0 {
		g.animating = false
		g.resolve()
	}
}

func (g *Game) stepAnimation() {
	g.animTicks++
	if g.animTicks < g.cfg.DropTicks {
		return
	}
	g.animTicks = 0
	if g.animY < g.animRow {
		g.animY++
		return
	}
	g.animating = false
	g.resolve()
}

// resolve checks the last move: a win first, then a full board, and only
// then passes the turn.
func (g *Game) resolve() {
	if line := g.board.WinningLine(g.animRow, g.animCol); line != nil {
		g.over = true
		g.winner = g.current
		g.winLine = line
		g.wins[g.current]++
		return
	}
	if g.board.IsFull() {
		g.over = true
		g.draw = true
		g.draws++
		return
	}
	g.current = g.current.Opponent()
	if g.cpuTurn() {
		g.thinkLeft = g.cfg.CPU.ThinkTicks
	}
}

// State returns the current game state. An Outcome is only reported for
// rounds against the CPU.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Score:    g.wins[PlayerRed],
		GameOver: g.over,
		Paused:   g.paused,
		Moves:    g.moves,
	}
	if g.over && g.cpu {
		switch {
		case g.draw:
			st.Outcome = core.OutcomeDraw
		case g.winner == g.cpuPlayer:
			st.Outcome = core.OutcomeLoss
		default:
			st.Outcome = core.OutcomeWin
		}
	}
	return st
}

func pieceColor(p Player) core.Color {
	if p == PlayerRed {
		return core.ColorRed
	}
	return core.ColorYellow
}

func brightColor(p Player) core.Color {
	if p == PlayerRed {
		return core.ColorBrightRed
	}
	return core.ColorBrightYellow
}

// Render draws the board, the column cursor and the HUD.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall {
		dst.DrawOverlay(core.ColorDefault, "Window too small", "Resize and restart")
		return
	}

	g.renderHUD(dst)

	w, h := g.board.Width(), g.board.Height()
	boxW := w*cellW + 1
	boxX := (dst.Width() - boxW) / 2
	boxY := hudHeight + 1

	if !g.over && !g.animating && !g.cpuTurn() {
		cx := boxX + 2 + g.cursor*cellW
		dst.SetWithColor(cx, boxY-1, 'v', brightColor(g.current))
	}

	dst.DrawBox(core.NewRect(boxX, boxY, boxW, h+2), core.ColorBlue)

	highlight := make(map[core.Point]bool, len(g.winLine))
	for _, p := range g.winLine {
		highlight[p] = true
	}

	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			x := boxX + 2 + col*cellW
			y := boxY + 1 + row
			cell := g.board.At(row, col)
			if g.animating && row == g.animRow && col == g.animCol {
				cell = Empty
			}
			p, ok := cell.Player()
			switch {
			case !ok:
				dst.SetWithColor(x, y, '·', core.ColorGray)
			case highlight[core.Point{X: col, Y: row}]:
				dst.SetWithColor(x, y, '◉', brightColor(p))
			default:
				dst.SetWithColor(x, y, '●', pieceColor(p))
			}
		}
	}

	if g.animating {
		x := boxX + 2 + g.animCol*cellW
		dst.SetWithColor(x, boxY+1+g.animY, '●', pieceColor(g.current))
	}

	for col := 0; col < w; col++ {
		dst.DrawText(boxX+2+col*cellW, boxY+h+2, fmt.Sprintf("%d", col+1))
	}

	footerY := boxY + h + 3
	switch {
	case g.over && g.draw:
		dst.DrawTextCenteredWithColor(footerY, "Draw! Press R for a new round", core.ColorWhite)
	case g.over:
		msg := fmt.Sprintf("%s wins! Press R for a new round", g.winner)
		dst.DrawTextCenteredWithColor(footerY, msg, brightColor(g.winner))
	case g.cpuTurn():
		dst.DrawTextCenteredWithColor(footerY, "CPU is thinking...", core.ColorGray)
	default:
		msg := fmt.Sprintf("%s to move  ←/→ aim  Space drop  C toggle CPU", g.current)
		dst.DrawTextCenteredWithColor(footerY, msg, pieceColor(g.current))
	}

	if g.paused {
		dst.DrawOverlay(core.ColorDefault, "Paused", "Press P to continue")
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	mode := core.MatchModeHotseat
	if g.cpu {
		mode = core.MatchModeVsCPU
	}
	hud := fmt.Sprintf(" Connect Four [%s]  Red: %d  Yellow: %d  Draws: %d",
		mode, g.wins[PlayerRed], g.wins[PlayerYellow], g.draws)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorDefault)
}

// Snapshot captures the game state for determinism tests.
type Snapshot struct {
	Tick       uint64
	Current    Player
	Cursor     int
	Moves      int
	RedWins    int
	YellowWins int
	Draws      int
	Over       bool
	Winner     Player
	Animating  bool
	Board      string
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:       g.tick,
		Current:    g.current,
		Cursor:     g.cursor,
		Moves:      g.moves,
		RedWins:    g.wins[PlayerRed],
		YellowWins: g.wins[PlayerYellow],
		Draws:      g.draws,
		Over:       g.over,
		Winner:     g.winner,
		Animating:  g.animating,
		Board:      strings.TrimSuffix(g.board.String(), "\n"),
	}
}
