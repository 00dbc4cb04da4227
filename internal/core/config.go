package core

// RuntimeConfig is handed to a game on every Reset.
// Games use it to size their playfield and seed their RNG.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig for an 80x24 terminal at 60 ticks/s.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Outcome is the result of a finished round in a two-sided game, seen from
// the local human player's side.
type Outcome int

const (
	OutcomeNone Outcome = iota // round still running, or hot-seat round
	OutcomeWin
	OutcomeLoss
	OutcomeDraw
)

// String returns the outcome name stored in the matches table.
func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLoss:
		return "loss"
	case OutcomeDraw:
		return "draw"
	default:
		return "none"
	}
}

// GameState is what the platform needs to know about a game after a tick.
type GameState struct {
	Score    int     // Current score (score games) or rounds won (board games)
	GameOver bool    // Whether the current round has ended
	Paused   bool    // Whether the game is paused
	Outcome  Outcome // Set by board games when a round against the CPU ends
	Moves    int     // Moves played in the current round (board games)
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
