package pacman

import (
	"fmt"

	"github.com/vovakirdan/classic-arcade/internal/core"
)

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick       uint64
	Score      int
	Level      int
	Pos        core.Point
	Dir        core.Direction
	Ghosts     string
	DotsLeft   int
	Frightened int
	GameOver   bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:       g.tick,
		Score:      g.score,
		Level:      g.level,
		Pos:        g.pos,
		Dir:        g.dir,
		Ghosts:     fmt.Sprint(g.ghosts),
		DotsLeft:   g.maze.DotsLeft(),
		Frightened: g.frightenedLeft,
		GameOver:   g.gameOver,
	}
}
