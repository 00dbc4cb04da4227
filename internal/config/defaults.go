package config

import (
	"embed"
	"path"
)

//go:embed defaults/*.yaml
var defaultFS embed.FS

// DefaultYAML returns the embedded default YAML for a game, or nil.
func DefaultYAML(gameID string) []byte {
	data, err := defaultFS.ReadFile(path.Join("defaults", gameID+".yaml"))
	if err != nil {
		return nil
	}
	return data
}

// DefaultSnakeConfig returns the built-in Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid:   SnakeGrid{Width: 20, Height: 20, InitialLength: 3},
		Timing: SnakeTiming{MoveTicks: 9, MinMoveTicks: 3},
		Difficulty: DifficultyConfig{
			Enabled:     true,
			Progression: ProgressionConfig{Type: "score", MaxAt: 20},
			Scaling:     ScalingConfig{SpeedMultiplier: 2.0},
		},
	}
}

// DefaultTetrisConfig returns the built-in Tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: TetrisBoard{Width: 10, Height: 20},
		Scoring: TetrisScoring{
			LinePoints:     100,
			HardDropPoints: 2,
			LinesPerLevel:  10,
			MaxLevel:       10,
		},
		Timing: TetrisTiming{FallTicks: 60, MinFallTicks: 6, LevelSpeedUp: 0.1},
		Difficulty: DifficultyConfig{
			Enabled:     false,
			Progression: ProgressionConfig{Type: "none"},
			Scaling:     ScalingConfig{SpeedMultiplier: 1.0},
		},
	}
}

// DefaultTicTacToeConfig returns the built-in Tic-Tac-Toe configuration.
func DefaultTicTacToeConfig() TicTacToeConfig {
	return TicTacToeConfig{
		CPU: CPUConfig{Enabled: true, ThinkTicks: 30},
	}
}

// DefaultConnectFourConfig returns the built-in Connect Four configuration.
func DefaultConnectFourConfig() ConnectFourConfig {
	return ConnectFourConfig{
		Board:     ConnectFourBoard{Width: 7, Height: 6},
		CPU:       CPUConfig{Enabled: true, ThinkTicks: 30},
		DropTicks: 3,
	}
}

// DefaultInvadersConfig returns the built-in Space Invaders configuration.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Formation: InvadersFormation{Rows: 5, Cols: 11},
		Scoring:   InvadersScoring{Top: 30, Middle: 20, Bottom: 10},
		Timing: InvadersTiming{
			MoveTicks:      60,
			MinMoveTicks:   6,
			ShootTicks:     60,
			MinShootTicks:  12,
			WaveSpeedUp:    6,
			CooldownTicks:  30,
			BulletTicks:    1,
			AlienShotTicks: 3,
		},
		Lives:   3,
		Bunkers: 4,
		Difficulty: DifficultyConfig{
			Enabled:     true,
			Progression: ProgressionConfig{Type: "score", MaxAt: 3000},
			Scaling:     ScalingConfig{SpeedMultiplier: 0.5},
		},
	}
}

// DefaultPacmanConfig returns the built-in Pac-Man configuration.
func DefaultPacmanConfig() PacmanConfig {
	return PacmanConfig{
		Scoring: PacmanScoring{Dot: 10, Pellet: 50, Ghost: 200},
		Timing: PacmanTiming{
			PlayerTicks:     8,
			GhostTicks:      12,
			MinGhostTicks:   6,
			FrightenedTicks: 420,
		},
		Difficulty: DifficultyConfig{
			Enabled:     true,
			Progression: ProgressionConfig{Type: "score", MaxAt: 5000},
			Scaling:     ScalingConfig{SpeedMultiplier: 1.0},
		},
	}
}
