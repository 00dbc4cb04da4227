// Package snake implements the classic grid Snake.
package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/classic-arcade/internal/config"
	"github.com/vovakirdan/classic-arcade/internal/core"
	"github.com/vovakirdan/classic-arcade/internal/registry"
)

const hudHeight = 2

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

// Game implements the Snake game.
type Game struct {
	fixedCfg   *config.SnakeConfig
	cfg        config.SnakeConfig
	difficulty *config.DifficultyManager

	rng   *rand.Rand
	tick  uint64
	score int

	moveTicker int

	// Head at index 0.
	snake     []core.Point
	direction core.Direction
	nextDir   core.Direction
	food      core.Point

	width   int
	height  int
	offsetX int
	offsetY int

	screenW int
	screenH int

	gameOver bool
	filled   bool
	paused   bool
	tooSmall bool
}

// New creates a Snake game that loads its config on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a Snake game with a fixed config.
func NewWithConfig(cfg config.SnakeConfig) *Game {
	return &Game{fixedCfg: &cfg}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "snake" }

// Title returns the display name.
func (g *Game) Title() string { return "Snake" }

// Reset initializes or restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if g.fixedCfg != nil {
		g.cfg = *g.fixedCfg
	} else {
		cfg, err := config.LoadSnake(configPath)
		if err != nil {
			cfg = config.DefaultSnakeConfig()
		}
		if difficultyPreset != "" {
			cfg.Difficulty.ApplyPreset(difficultyPreset)
		}
		g.cfg = cfg
	}
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0
	g.score = 0
	g.moveTicker = 0
	g.gameOver = false
	g.filled = false
	g.paused = false
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH

	g.width = g.cfg.Grid.Width
	g.height = g.cfg.Grid.Height

	// Two columns per cell plus the border.
	g.tooSmall = rc.ScreenW < g.width*2+2 || rc.ScreenH < g.height+2+hudHeight
	g.offsetX = (rc.ScreenW - (g.width*2 + 2)) / 2
	g.offsetY = hudHeight

	g.initSnake()
	g.spawnFood()
}

// initSnake lays the snake out horizontally from the centre, heading right.
func (g *Game) initSnake() {
	length := max(1, g.cfg.Grid.InitialLength)
	start := core.Point{X: g.width / 2, Y: g.height / 2}
	g.snake = make([]core.Point, 0, length)
	for i := 0; i < length; i++ {
		g.snake = append(g.snake, core.Point{X: start.X - i, Y: start.Y})
	}
	g.direction = core.DirRight
	g.nextDir = core.DirRight
}

// spawnFood places food on a random free cell. A full grid ends the game.
func (g *Game) spawnFood() {
	var free []core.Point
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			p := core.Point{X: x, Y: y}
			if !g.isSnakeAt(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		g.food = core.Point{X: -1, Y: -1}
		g.filled = true
		g.gameOver = true
		return
	}
	g.food = free[g.rng.Intn(len(free))]
}

func (g *Game) isSnakeAt(p core.Point) bool {
	for _, seg := range g.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// moveInterval is the number of ticks between moves at the current score.
func (g *Game) moveInterval() int {
	return g.difficulty.Interval(g.cfg.Timing.MoveTicks, g.cfg.Timing.MinMoveTicks, g.score, int(g.tick))
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

	g.processInput(in)

	g.moveTicker++
	if g.moveTicker >= g.moveInterval() {
		g.moveTicker = 0
		g.move()
	}

	return core.StepResult{State: g.State()}
}

// processInput buffers a turn. Reversing onto the neck is ignored.
func (g *Game) processInput(in core.InputFrame) {
	for _, a := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight} {
		if !in.Has(a) {
			continue
		}
		d := core.DirectionFor(a)
		if d != g.direction.Opposite() {
			g.nextDir = d
		}
		return
	}
}

func (g *Game) move() {
	g.direction = g.nextDir
	head := g.snake[0].Add(g.direction.Delta())

	if head.X < 0 || head.X >= g.width || head.Y < 0 || head.Y >= g.height {
		g.gameOver = true
		return
	}

	eating := head == g.food

	// The tail moves away this tick unless the snake is growing.
	body := g.snake
	if !eating {
		body = body[:len(body)-1]
	}
	for _, seg := range body {
		if seg == head {
			g.gameOver = true
			return
		}
	}

	g.snake = append([]core.Point{head}, body...)
	if eating {
		g.score++
		g.spawnFood()
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	speed := g.cfg.Timing.MoveTicks - g.moveInterval() + 1
	dst.DrawText(0, 0, fmt.Sprintf(" Snake  Score: %d  Length: %d  Speed: %d", g.score, len(g.snake), speed))
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorDefault)

	if g.tooSmall {
		dst.DrawOverlay(core.ColorYellow, "Window too small", "Resize to continue")
		return
	}

	dst.DrawBox(core.NewRect(g.offsetX, g.offsetY, g.width*2+2, g.height+2), core.ColorGray)

	if g.food.X >= 0 {
		x, y := g.cellPos(g.food)
		dst.SetWithColor(x, y, '●', core.ColorRed)
	}
	for i, seg := range g.snake {
		x, y := g.cellPos(seg)
		if i == 0 {
			dst.SetWithColor(x, y, '█', core.ColorBrightGreen)
			dst.SetWithColor(x+1, y, '█', core.ColorBrightGreen)
		} else {
			dst.SetWithColor(x, y, '▓', core.ColorGreen)
			dst.SetWithColor(x+1, y, '▓', core.ColorGreen)
		}
	}

	switch {
	case g.filled:
		dst.DrawOverlay(core.ColorBrightGreen, "You filled the grid!", fmt.Sprintf("Final Score: %d", g.score))
	case g.gameOver:
		dst.DrawOverlay(core.ColorRed, "Game Over", fmt.Sprintf("Score: %d", g.score), "Press R to restart")
	case g.paused:
		dst.DrawOverlay(core.ColorDefault, "Paused", "Press P to continue")
	}
}

func (g *Game) cellPos(p core.Point) (int, int) {
	return g.offsetX + 1 + p.X*2, g.offsetY + 1 + p.Y
}
