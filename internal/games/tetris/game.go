// Package tetris implements falling-block Tetris with a next-piece preview,
// wall kicks and level-based gravity.
package tetris

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/classic-arcade/internal/config"
	"github.com/vovakirdan/classic-arcade/internal/core"
	"github.com/vovakirdan/classic-arcade/internal/registry"
)

// kicks are the horizontal offsets tried, in order, when a rotation collides.
var kicks = [...]int{1, -1, 2, -2}

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

// Game implements Tetris.
type Game struct {
	fixedCfg   *config.TetrisConfig
	cfg        config.TetrisConfig
	difficulty *config.DifficultyManager

	rng  *rand.Rand
	tick uint64

	well    *Well
	current Piece
	next    Kind

	score      int
	lines      int
	level      int
	fallTicker int

	screenW int
	screenH int

	gameOver bool
	paused   bool
	tooSmall bool
}

// New creates a Tetris game that loads its config on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a Tetris game with a fixed config.
func NewWithConfig(cfg config.TetrisConfig) *Game {
	return &Game{fixedCfg: &cfg}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "tetris" }

// Title returns the display name.
func (g *Game) Title() string { return "Tetris" }

// Reset initializes or restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if g.fixedCfg != nil {
		g.cfg = *g.fixedCfg
	} else {
		cfg, err := config.LoadTetris(configPath)
		if err != nil {
			cfg = config.DefaultTetrisConfig()
		}
		if difficultyPreset != "" {
			cfg.Difficulty.ApplyPreset(difficultyPreset)
		}
		g.cfg = cfg
	}
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.tooSmall = rc.ScreenW < g.minWidth() || rc.ScreenH < g.cfg.Board.Height+2+hudHeight

	g.well = NewWell(g.cfg.Board.Width, g.cfg.Board.Height)
	g.score = 0
	g.lines = 0
	g.level = 1
	g.fallTicker = 0
	g.gameOver = false
	g.paused = false

	g.next = g.randomKind()
	g.spawn()
}

func (g *Game) randomKind() Kind {
	return Kind(g.rng.Intn(KindCount) + 1)
}

// spawn promotes the preview piece and draws a new one. A spawn that
// collides ends the game.
func (g *Game) spawn() {
	g.current = Spawn(g.next)
	g.next = g.randomKind()
	g.fallTicker = 0
	if g.well.Collides(g.current) {
		g.gameOver = true
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.gameOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionUp) {
		g.rotate()
	}
	if in.Has(core.ActionLeft) {
		g.move(-1, 0)
	}
	if in.Has(core.ActionRight) {
		g.move(1, 0)
	}
	if in.Has(core.ActionDown) {
		g.move(0, 1)
	}
	if in.Has(core.ActionFire) {
		g.hardDrop()
		return core.StepResult{State: g.State()}
	}

	g.fallTicker++
	if g.fallTicker >= g.fallInterval() {
		g.fallTicker = 0
		if !g.move(0, 1) {
			g.lockPiece()
		}
	}

	return core.StepResult{State: g.State()}
}

// move shifts the current piece if the target is free.
func (g *Game) move(dx, dy int) bool {
	p := g.current.Moved(dx, dy)
	if g.well.Collides(p) {
		return false
	}
	g.current = p
	return true
}

// rotate turns the current piece, trying each kick offset in turn. If every
// position collides the piece keeps its rotation.
func (g *Game) rotate() bool {
	p := g.current.Rotated()
	if !g.well.Collides(p) {
		g.current = p
		return true
	}
	for _, dx := range kicks {
		if k := p.Moved(dx, 0); !g.well.Collides(k) {
			g.current = k
			return true
		}
	}
	return false
}

func (g *Game) hardDrop() {
	for g.move(0, 1) {
		g.score += g.cfg.Scoring.HardDropPoints
	}
	g.lockPiece()
}

func (g *Game) lockPiece() {
	g.well.Lock(g.current)
	if n := g.well.ClearLines(); n > 0 {
		g.score += g.cfg.Scoring.LinePoints * g.level * n * n
		g.lines += n
	}
	g.updateLevel()
	if !g.gameOver {
		g.spawn()
	}
}

func (g *Game) updateLevel() {
	per := max(1, g.cfg.Scoring.LinesPerLevel)
	g.level = min(g.lines/per+1, max(1, g.cfg.Scoring.MaxLevel))
}

// levelTicks is the gravity delay for the current level before difficulty
// scaling: each level removes LevelSpeedUp of the base delay.
func (g *Game) levelTicks() int {
	t := g.cfg.Timing
	ticks := int(math.Round(float64(t.FallTicks) * (1 - float64(g.level-1)*t.LevelSpeedUp)))
	return max(ticks, t.MinFallTicks)
}

func (g *Game) fallInterval() int {
	return g.difficulty.Interval(g.levelTicks(), g.cfg.Timing.MinFallTicks, g.score, int(g.tick))
}

// Ghost returns the current piece moved as far down as it can go.
func (g *Game) Ghost() Piece {
	p := g.current
	for !g.well.Collides(p.Moved(0, 1)) {
		p = p.Moved(0, 1)
	}
	return p
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}
