// Package invaders implements Space Invaders: a marching alien formation,
// destructible bunkers and a laser cannon with limited lives.
package invaders

import (
	"math/rand"

	"github.com/vovakirdan/classic-arcade/internal/config"
	"github.com/vovakirdan/classic-arcade/internal/core"
	"github.com/vovakirdan/classic-arcade/internal/registry"
)

const (
	hudHeight = 2
	fieldH    = 22
	maxFieldW = 72

	formationTop = 1
	bunkerRow    = fieldH - 5
	playerRow    = fieldH - 1
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

// Game implements Space Invaders.
type Game struct {
	fixedCfg   *config.InvadersConfig
	cfg        config.InvadersConfig
	difficulty *config.DifficultyManager

	rng  *rand.Rand
	tick uint64

	formation *Formation
	bunkers   *Bunkers

	playerX     int
	playerShots []core.Point
	alienShots  []core.Point

	score int
	lives int
	wave  int

	cooldown        int
	moveTicker      int
	shootTicker     int
	shotTicker      int
	alienShotTicker int

	fieldW  int
	offsetX int
	screenW int
	screenH int

	gameOver bool
	invaded  bool
	paused   bool
	tooSmall bool
}

// New creates a Space Invaders game that loads its config on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game with a fixed config.
func NewWithConfig(cfg config.InvadersConfig) *Game {
	return &Game{fixedCfg: &cfg}
}

func init() {
	registry.Register("invaders", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "invaders" }

// Title returns the display name.
func (g *Game) Title() string { return "Space Invaders" }

// Reset initializes or restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if g.fixedCfg != nil {
		g.cfg = *g.fixedCfg
	} else {
		cfg, err := config.LoadInvaders(configPath)
		if err != nil {
			cfg = config.DefaultInvadersConfig()
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
	g.fieldW = min(rc.ScreenW, maxFieldW)
	g.offsetX = (rc.ScreenW - g.fieldW) / 2

	g.score = 0
	g.lives = g.cfg.Lives
	g.wave = 1
	g.gameOver = false
	g.invaded = false
	g.paused = false

	g.startWave()

	g.tooSmall = rc.ScreenW < g.formation.Width()+8 || rc.ScreenH < fieldH+hudHeight
}

// startWave builds a fresh formation and bunkers. Score, lives and the wave
// number carry over.
func (g *Game) startWave() {
	g.formation = NewFormation(g.cfg.Formation.Rows, g.cfg.Formation.Cols, 0, formationTop)
	g.formation.X = (g.fieldW - g.formation.Width()) / 2
	g.bunkers = NewBunkers(g.cfg.Bunkers, g.fieldW, bunkerRow)
	g.playerX = g.fieldW / 2
	g.playerShots = nil
	g.alienShots = nil
	g.cooldown = 0
	g.moveTicker = 0
	g.shootTicker = 0
	g.shotTicker = 0
	g.alienShotTicker = 0
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

	g.handleInput(in)
	g.updateShots()
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	g.moveTicker++
	if g.moveTicker >= g.moveInterval() {
		g.moveTicker = 0
		g.formation.March(g.fieldW)
		if g.formation.Bottom() >= bunkerRow {
			g.invaded = true
			g.gameOver = true
			return core.StepResult{State: g.State()}
		}
	}

	g.shootTicker++
	if g.shootTicker >= g.shootInterval() {
		g.shootTicker = 0
		g.alienFire()
	}

	if g.formation.Remaining() == 0 {
		g.wave++
		g.startWave()
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) handleInput(in core.InputFrame) {
	if in.Has(core.ActionLeft) {
		g.playerX = max(1, g.playerX-1)
	}
	if in.Has(core.ActionRight) {
		g.playerX = min(g.fieldW-2, g.playerX+1)
	}
	if g.cooldown > 0 {
		g.cooldown--
	}
	if in.Has(core.ActionFire) && g.cooldown == 0 {
		g.playerShots = append(g.playerShots, core.Point{X: g.playerX, Y: playerRow - 1})
		g.cooldown = g.cfg.Timing.CooldownTicks
	}
}

func (g *Game) updateShots() {
	g.shotTicker++
	if g.shotTicker >= max(1, g.cfg.Timing.BulletTicks) {
		g.shotTicker = 0
		g.playerShots = g.advancePlayerShots()
	}
	g.alienShotTicker++
	if g.alienShotTicker >= max(1, g.cfg.Timing.AlienShotTicks) {
		g.alienShotTicker = 0
		g.alienShots = g.advanceAlienShots()
	}
}

// advancePlayerShots moves every cannon shot up one row and resolves what
// it hits: an alien, a bunker cell or an alien shot.
func (g *Game) advancePlayerShots() []core.Point {
	kept := g.playerShots[:0]
	for _, s := range g.playerShots {
		s.Y--
		if s.Y < 0 {
			continue
		}
		if band, ok := g.formation.HitAt(s); ok {
			g.score += g.points(band)
			continue
		}
		if g.bunkers.Hit(s) {
			continue
		}
		if g.removeAlienShot(s) {
			continue
		}
		kept = append(kept, s)
	}
	return kept
}

// advanceAlienShots moves every alien shot down one row and resolves bunker
// and cannon hits. Losing the last life ends the game.
func (g *Game) advanceAlienShots() []core.Point {
	kept := g.alienShots[:0]
	hit := false
	for _, s := range g.alienShots {
		s.Y++
		if s.Y >= fieldH {
			continue
		}
		if g.bunkers.Hit(s) {
			continue
		}
		if s.Y == playerRow && core.Abs(s.X-g.playerX) <= 1 {
			hit = true
			continue
		}
		kept = append(kept, s)
	}
	if hit {
		g.lives--
		if g.lives <= 0 {
			g.gameOver = true
		}
		return nil
	}
	return kept
}

func (g *Game) removeAlienShot(p core.Point) bool {
	for i, s := range g.alienShots {
		if s == p {
			g.alienShots = append(g.alienShots[:i], g.alienShots[i+1:]...)
			return true
		}
	}
	return false
}

// alienFire picks a random column; its lowest live alien fires. An empty
// column skips the shot.
func (g *Game) alienFire() {
	col := g.rng.Intn(g.formation.Cols)
	row, ok := g.formation.Shooter(col)
	if !ok {
		return
	}
	p := g.formation.Pos(row, col)
	g.alienShots = append(g.alienShots, core.Point{X: p.X + alienW/2, Y: p.Y + 1})
}

func (g *Game) points(b Band) int {
	switch b {
	case BandTop:
		return g.cfg.Scoring.Top
	case BandMiddle:
		return g.cfg.Scoring.Middle
	default:
		return g.cfg.Scoring.Bottom
	}
}

// moveInterval shrinks with every wave and in proportion to the aliens
// still alive.
func (g *Game) moveInterval() int {
	t := g.cfg.Timing
	base := max(t.MinMoveTicks, t.MoveTicks-(g.wave-1)*t.WaveSpeedUp)
	if total := g.formation.Total(); total > 0 {
		base = base * g.formation.Remaining() / total
	}
	base = max(base, t.MinMoveTicks)
	return g.difficulty.Interval(base, t.MinMoveTicks, g.score, int(g.tick))
}

func (g *Game) shootInterval() int {
	t := g.cfg.Timing
	base := max(t.MinShootTicks, t.ShootTicks-(g.wave-1)*t.WaveSpeedUp)
	return g.difficulty.Interval(base, t.MinShootTicks, g.score, int(g.tick))
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}
