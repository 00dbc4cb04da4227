package invaders

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick        uint64
	Score       int
	Lives       int
	Wave        int
	Remaining   int
	FormationX  int
	FormationY  int
	Dir         int
	PlayerX     int
	PlayerShots int
	AlienShots  int
	BunkerCells int
	GameOver    bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:        g.tick,
		Score:       g.score,
		Lives:       g.lives,
		Wave:        g.wave,
		Remaining:   g.formation.Remaining(),
		FormationX:  g.formation.X,
		FormationY:  g.formation.Y,
		Dir:         g.formation.Dir,
		PlayerX:     g.playerX,
		PlayerShots: len(g.playerShots),
		AlienShots:  len(g.alienShots),
		BunkerCells: g.bunkers.Len(),
		GameOver:    g.gameOver,
	}
}
