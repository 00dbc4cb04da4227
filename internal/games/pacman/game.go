// Package pacman implements a maze-chase game: eat every dot while four
// ghosts wander the corridors.
package pacman

import (
	"math/rand"

	"github.com/vovakirdan/classic-arcade/internal/config"
	"github.com/vovakirdan/classic-arcade/internal/core"
	"github.com/vovakirdan/classic-arcade/internal/registry"
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

// Game implements Pac-Man.
type Game struct {
	fixedCfg   *config.PacmanConfig
	cfg        config.PacmanConfig
	difficulty *config.DifficultyManager
	layout     string

	rng  *rand.Rand
	tick uint64

	maze    *Maze
	pos     core.Point
	dir     core.Direction
	nextDir core.Direction
	ghosts  []Ghost

	score          int
	level          int
	frightenedLeft int
	playerTicker   int
	ghostTicker    int

	screenW int
	screenH int

	gameOver bool
	paused   bool
	tooSmall bool
}

// New creates a Pac-Man game that loads its config on Reset.
func New() *Game {
	return &Game{layout: defaultLayout}
}

// NewWithConfig creates a game with a fixed config.
func NewWithConfig(cfg config.PacmanConfig) *Game {
	return &Game{fixedCfg: &cfg, layout: defaultLayout}
}

// NewWithLayout creates a game with a fixed config on a custom maze.
func NewWithLayout(cfg config.PacmanConfig, layout string) (*Game, error) {
	if _, err := ParseMaze(layout); err != nil {
		return nil, err
	}
	return &Game{fixedCfg: &cfg, layout: layout}, nil
}

func init() {
	registry.Register("pacman", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "pacman" }

// Title returns the display name.
func (g *Game) Title() string { return "Pac-Man" }

// Reset initializes or restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if g.fixedCfg != nil {
		g.cfg = *g.fixedCfg
	} else {
		cfg, err := config.LoadPacman(configPath)
		if err != nil {
			cfg = config.DefaultPacmanConfig()
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
	g.score = 0
	g.level = 1
	g.gameOver = false
	g.paused = false

	g.loadMaze()
	g.tooSmall = rc.ScreenW < g.maze.Width()*2 || rc.ScreenH < g.maze.Height()+hudHeight
}

// loadMaze restores every dot and puts Pac-Man and the ghosts on their
// spawn cells.
func (g *Game) loadMaze() {
	m, err := ParseMaze(g.layout)
	if err != nil {
		m = DefaultMaze()
	}
	g.maze = m
	g.pos = m.PlayerStart()
	g.dir = core.DirLeft
	g.nextDir = core.DirLeft
	g.ghosts = g.ghosts[:0]
	for _, p := range m.GhostStarts() {
		g.ghosts = append(g.ghosts, Ghost{Pos: p, Home: p, Dir: core.DirUp})
	}
	g.frightenedLeft = 0
	g.playerTicker = 0
	g.ghostTicker = 0
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

	for _, a := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight} {
		if in.Has(a) {
			g.nextDir = core.DirectionFor(a)
			break
		}
	}

	if g.frightenedLeft > 0 {
		g.frightenedLeft--
		if g.frightenedLeft == 0 {
			for i := range g.ghosts {
				g.ghosts[i].Frightened = false
			}
		}
	}

	g.playerTicker++
	if g.playerTicker >= max(1, g.cfg.Timing.PlayerTicks) {
		g.playerTicker = 0
		g.movePlayer()
		if g.gameOver {
			return core.StepResult{State: g.State()}
		}
	}

	g.ghostTicker++
	if g.ghostTicker >= g.ghostInterval() {
		g.ghostTicker = 0
		for i := range g.ghosts {
			g.ghosts[i].wander(g.maze, g.rng)
		}
		g.collide()
	}

	return core.StepResult{State: g.State()}
}

// movePlayer turns into the buffered direction when that corridor is open,
// otherwise keeps going straight until a wall stops Pac-Man.
func (g *Game) movePlayer() {
	if next := g.maze.Step(g.pos, g.nextDir); g.maze.Open(next, false) {
		g.dir = g.nextDir
		g.pos = next
	} else if next := g.maze.Step(g.pos, g.dir); g.maze.Open(next, false) {
		g.pos = next
	}

	switch g.maze.Eat(g.pos) {
	case TileDot:
		g.score += g.cfg.Scoring.Dot
	case TilePellet:
		g.score += g.cfg.Scoring.Pellet
		g.frightenedLeft = g.cfg.Timing.FrightenedTicks
		for i := range g.ghosts {
			g.ghosts[i].Frightened = true
		}
	}

	g.collide()
	if g.gameOver {
		return
	}
	if g.maze.DotsLeft() == 0 {
		g.level++
		g.loadMaze()
	}
}

// collide resolves Pac-Man sharing a cell with ghosts: frightened ghosts
// are eaten and sent home, any other ghost ends the game.
func (g *Game) collide() {
	for i := range g.ghosts {
		gh := &g.ghosts[i]
		if gh.Pos != g.pos {
			continue
		}
		if gh.Frightened {
			g.score += g.cfg.Scoring.Ghost
			gh.sendHome()
			continue
		}
		g.gameOver = true
		return
	}
}

// ghostInterval speeds the ghosts up one tick per level and with the
// difficulty curve.
func (g *Game) ghostInterval() int {
	t := g.cfg.Timing
	base := max(t.MinGhostTicks, t.GhostTicks-(g.level-1))
	return g.difficulty.Interval(base, t.MinGhostTicks, g.score, int(g.tick))
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}
