package snake

import "github.com/vovakirdan/classic-arcade/internal/core"

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick      uint64
	Score     int
	SnakeLen  int
	Head      core.Point
	Dir       core.Direction
	Food      core.Point
	MoveTicks int
	GameOver  bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	var head core.Point
	if len(g.snake) > 0 {
		head = g.snake[0]
	}
	return Snapshot{
		Tick:      g.tick,
		Score:     g.score,
		SnakeLen:  len(g.snake),
		Head:      head,
		Dir:       g.direction,
		Food:      g.food,
		MoveTicks: g.moveInterval(),
		GameOver:  g.gameOver,
	}
}
