package tetris

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Score    int
	Lines    int
	Level    int
	Current  Piece
	Next     Kind
	Well     string
	GameOver bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tick,
		Score:    g.score,
		Lines:    g.lines,
		Level:    g.level,
		Current:  g.current,
		Next:     g.next,
		Well:     g.well.String(),
		GameOver: g.gameOver,
	}
}
