package invaders

import (
	"strings"
	"testing"

	"github.com/vovakirdan/classic-arcade/internal/config"
	"github.com/vovakirdan/classic-arcade/internal/core"
)

func testConfig() config.InvadersConfig {
	cfg := config.DefaultInvadersConfig()
	cfg.Difficulty.Enabled = false
	return cfg
}

func newTestGame(seed int64) *Game {
	g := NewWithConfig(testConfig())
	g.Reset(core.RuntimeConfig{Seed: seed, ScreenW: 80, ScreenH: 24})
	return g
}

func idle(g *Game, n int) {
	for i := 0; i < n; i++ {
		g.Step(core.NewInputFrame())
	}
}

func killAll(f *Formation) {
	for r := 0; r < f.Rows; r++ {
		for c := 0; c < f.Cols; c++ {
			f.HitAt(f.Pos(r, c))
		}
	}
}

func TestInitialLayout(t *testing.T) {
	g := newTestGame(1)
	if g.fieldW != 72 || g.offsetX != 4 {
		t.Errorf("field width %d offset %d, expected 72 and 4", g.fieldW, g.offsetX)
	}
	if g.formation.X != 14 || g.formation.Y != formationTop {
		t.Errorf("formation at (%d,%d)", g.formation.X, g.formation.Y)
	}
	if g.lives != 3 || g.wave != 1 || g.formation.Remaining() != 55 {
		t.Errorf("lives=%d wave=%d remaining=%d", g.lives, g.wave, g.formation.Remaining())
	}
}

func TestShotKillsAlien(t *testing.T) {
	g := newTestGame(2)
	// Column 1 of the bottom row spans x 18..20, clear of every bunker.
	g.playerX = 19

	g.Step(core.InputOf(core.ActionFire))
	idle(g, 10)

	if g.score != 10 {
		t.Errorf("score = %d, expected 10 for a bottom-row alien", g.score)
	}
	if g.formation.Alive(4, 1) || g.formation.Remaining() != 54 {
		t.Error("alien (4,1) should be dead")
	}
	if len(g.playerShots) != 0 {
		t.Error("shot should be consumed")
	}
}

func TestFireCooldown(t *testing.T) {
	g := newTestGame(3)
	g.playerX = 35
	g.Step(core.InputOf(core.ActionFire))
	g.Step(core.InputOf(core.ActionFire))
	if len(g.playerShots) != 1 {
		t.Errorf("%d shots in flight, expected 1", len(g.playerShots))
	}
}

func TestPlayerMovementClamped(t *testing.T) {
	g := newTestGame(4)
	g.lives = 1000
	for i := 0; i < 100; i++ {
		g.Step(core.InputOf(core.ActionLeft))
	}
	if g.playerX != 1 {
		t.Errorf("playerX = %d, expected 1", g.playerX)
	}
	for i := 0; i < 100; i++ {
		g.Step(core.InputOf(core.ActionRight))
	}
	if g.playerX != g.fieldW-2 {
		t.Errorf("playerX = %d, expected %d", g.playerX, g.fieldW-2)
	}
}

func TestAlienShotCostsLife(t *testing.T) {
	g := newTestGame(5)
	g.playerX = 35
	g.alienShots = []core.Point{{X: 36, Y: playerRow - 1}}
	g.alienShotTicker = g.cfg.Timing.AlienShotTicks - 1

	g.Step(core.NewInputFrame())

	if g.lives != 2 {
		t.Errorf("lives = %d, expected 2", g.lives)
	}
	if len(g.alienShots) != 0 {
		t.Error("alien shots should be cleared after a hit")
	}

	g.lives = 1
	g.alienShots = []core.Point{{X: 35, Y: playerRow - 1}}
	g.alienShotTicker = g.cfg.Timing.AlienShotTicks - 1
	g.Step(core.NewInputFrame())
	if !g.State().GameOver {
		t.Error("losing the last life should end the game")
	}
}

func TestAlienShotDamagesBunker(t *testing.T) {
	g := newTestGame(6)
	p := core.Point{X: 14, Y: bunkerRow}
	g.alienShots = []core.Point{{X: 14, Y: bunkerRow - 1}}
	g.alienShotTicker = g.cfg.Timing.AlienShotTicks - 1

	g.Step(core.NewInputFrame())

	if g.bunkers.Health(p) != bunkerHealth-1 {
		t.Errorf("bunker health = %d", g.bunkers.Health(p))
	}
	if len(g.alienShots) != 0 {
		t.Error("shot should be absorbed")
	}
}

func TestAlienFireFromBottomRow(t *testing.T) {
	g := newTestGame(7)
	g.alienFire()
	if len(g.alienShots) != 1 {
		t.Fatalf("%d alien shots, expected 1", len(g.alienShots))
	}
	s := g.alienShots[0]
	if s.Y != g.formation.Bottom()+1 || (s.X-g.formation.X-1)%alienStep != 0 {
		t.Errorf("shot at %v does not come from a bottom-row alien", s)
	}
}

func TestMoveIntervalSpeedsUp(t *testing.T) {
	g := newTestGame(8)
	full := g.moveInterval()
	if full != 60 {
		t.Fatalf("full formation interval = %d, expected 60", full)
	}

	for c := 0; c < 11; c++ {
		for r := 0; r < 3; r++ {
			g.formation.HitAt(g.formation.Pos(r, c))
		}
	}
	// 22 of 55 left.
	if got := g.moveInterval(); got != 24 {
		t.Errorf("interval = %d, expected 24", got)
	}

	killAll(g.formation)
	g.formation.alive[4][0] = true
	g.formation.remaining = 1
	if got := g.moveInterval(); got != g.cfg.Timing.MinMoveTicks {
		t.Errorf("last alien interval = %d, expected floor %d", got, g.cfg.Timing.MinMoveTicks)
	}
}

func TestNextWaveKeepsScoreAndLives(t *testing.T) {
	g := newTestGame(9)
	g.score = 990
	g.lives = 2
	killAll(g.formation)

	g.Step(core.NewInputFrame())

	if g.wave != 2 || g.score != 990 || g.lives != 2 {
		t.Errorf("wave=%d score=%d lives=%d", g.wave, g.score, g.lives)
	}
	if g.formation.Remaining() != 55 {
		t.Error("new wave should bring a full formation")
	}
	if got := g.moveInterval(); got != 54 {
		t.Errorf("wave 2 interval = %d, expected 54", got)
	}
	if got := g.shootInterval(); got != 54 {
		t.Errorf("wave 2 shoot interval = %d, expected 54", got)
	}
}

func TestInvasionEndsGame(t *testing.T) {
	g := newTestGame(10)
	g.formation.X = g.fieldW - g.formation.Width()
	g.formation.Y = bunkerRow - 1 - (g.formation.Rows-1)*rowStep
	g.moveTicker = g.moveInterval() - 1

	g.Step(core.NewInputFrame())

	if !g.State().GameOver || !g.invaded {
		t.Errorf("formation reaching the bunkers should end the game: over=%v invaded=%v", g.gameOver, g.invaded)
	}
}

func TestRestart(t *testing.T) {
	g := newTestGame(11)
	g.score = 500
	g.gameOver = true
	g.Step(core.InputOf(core.ActionRestart))
	if g.gameOver || g.score != 0 || g.lives != 3 || g.wave != 1 {
		t.Error("restart should start a fresh game")
	}
}

func TestDeterminism(t *testing.T) {
	inputs := []core.Action{
		core.ActionLeft, core.ActionFire, core.ActionNone, core.ActionRight,
		core.ActionRight, core.ActionFire, core.ActionNone, core.ActionNone,
	}
	run := func() Snapshot {
		g := NewWithConfig(config.DefaultInvadersConfig())
		g.Reset(core.RuntimeConfig{Seed: 99, ScreenW: 80, ScreenH: 24})
		for i := 0; i < 1500; i++ {
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
	g := newTestGame(12)
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"Space Invaders", "Wave: 1", "/^\\", "<->", "█"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
}

func TestTooSmall(t *testing.T) {
	g := NewWithConfig(testConfig())
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 40, ScreenH: 20})
	if !g.tooSmall {
		t.Fatal("40x20 should be too small")
	}
	x := g.formation.X
	idle(g, 120)
	if g.formation.X != x {
		t.Error("game should not run on a screen that is too small")
	}
}
