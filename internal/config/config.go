// Package config loads per-game YAML configuration and drives difficulty
// progression for the arcade.
//
// All timings are in simulation ticks at the default 60 ticks per second.
package config

// SnakeConfig configures the Snake game.
type SnakeConfig struct {
	Grid       SnakeGrid        `yaml:"grid"`
	Timing     SnakeTiming      `yaml:"timing"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SnakeGrid defines the playfield.
type SnakeGrid struct {
	Width         int `yaml:"width"`
	Height        int `yaml:"height"`
	InitialLength int `yaml:"initial_length"`
}

// SnakeTiming defines the movement interval. The interval shrinks as the
// difficulty level rises but never drops below MinMoveTicks.
type SnakeTiming struct {
	MoveTicks    int `yaml:"move_ticks"`
	MinMoveTicks int `yaml:"min_move_ticks"`
}

// TetrisConfig configures the Tetris game.
type TetrisConfig struct {
	Board      TetrisBoard      `yaml:"board"`
	Scoring    TetrisScoring    `yaml:"scoring"`
	Timing     TetrisTiming     `yaml:"timing"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// TetrisBoard defines the well size.
type TetrisBoard struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TetrisScoring defines points and level progression.
type TetrisScoring struct {
	LinePoints     int `yaml:"line_points"` // multiplied by level * lines^2
	HardDropPoints int `yaml:"hard_drop_points"`
	LinesPerLevel  int `yaml:"lines_per_level"`
	MaxLevel       int `yaml:"max_level"`
}

// TetrisTiming defines gravity.
type TetrisTiming struct {
	FallTicks    int     `yaml:"fall_ticks"`
	MinFallTicks int     `yaml:"min_fall_ticks"`
	LevelSpeedUp float64 `yaml:"level_speed_up"` // fraction of FallTicks removed per level
}

// CPUConfig configures the built-in opponent of a board game.
type CPUConfig struct {
	Enabled    bool `yaml:"enabled"`
	ThinkTicks int  `yaml:"think_ticks"`
}

// TicTacToeConfig configures Tic-Tac-Toe.
type TicTacToeConfig struct {
	CPU CPUConfig `yaml:"cpu"`
}

// ConnectFourConfig configures Connect Four.
type ConnectFourConfig struct {
	Board     ConnectFourBoard `yaml:"board"`
	CPU       CPUConfig        `yaml:"cpu"`
	DropTicks int              `yaml:"drop_ticks"` // ticks per row of the falling disc
}

// ConnectFourBoard defines the grid size.
type ConnectFourBoard struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// InvadersConfig configures Space Invaders.
type InvadersConfig struct {
	Formation  InvadersFormation `yaml:"formation"`
	Scoring    InvadersScoring   `yaml:"scoring"`
	Timing     InvadersTiming    `yaml:"timing"`
	Lives      int               `yaml:"lives"`
	Bunkers    int               `yaml:"bunkers"`
	Difficulty DifficultyConfig  `yaml:"difficulty"`
}

// InvadersFormation defines the alien grid.
type InvadersFormation struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// InvadersScoring defines points per alien by row band.
type InvadersScoring struct {
	Top    int `yaml:"top"`
	Middle int `yaml:"middle"`
	Bottom int `yaml:"bottom"`
}

// InvadersTiming defines formation speed, alien fire rate and the cannon.
type InvadersTiming struct {
	MoveTicks      int `yaml:"move_ticks"`
	MinMoveTicks   int `yaml:"min_move_ticks"`
	ShootTicks     int `yaml:"shoot_ticks"`
	MinShootTicks  int `yaml:"min_shoot_ticks"`
	WaveSpeedUp    int `yaml:"wave_speed_up"` // ticks removed from both delays per wave
	CooldownTicks  int `yaml:"cooldown_ticks"`
	BulletTicks    int `yaml:"bullet_ticks"`
	AlienShotTicks int `yaml:"alien_shot_ticks"`
}

// PacmanConfig configures Pac-Man.
type PacmanConfig struct {
	Scoring    PacmanScoring    `yaml:"scoring"`
	Timing     PacmanTiming     `yaml:"timing"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PacmanScoring defines points per item.
type PacmanScoring struct {
	Dot    int `yaml:"dot"`
	Pellet int `yaml:"pellet"`
	Ghost  int `yaml:"ghost"`
}

// PacmanTiming defines movement intervals and the frightened period.
type PacmanTiming struct {
	PlayerTicks     int `yaml:"player_ticks"`
	GhostTicks      int `yaml:"ghost_ticks"`
	MinGhostTicks   int `yaml:"min_ghost_ticks"`
	FrightenedTicks int `yaml:"frightened_ticks"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a round.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // score or ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // added to speed at max difficulty
}

// DifficultyPreset is a named difficulty level selectable on the command line.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string is not a preset.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	}
	return "", false
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset adjusts a progression block for a preset. Fixed turns
// progression off and keeps the configured initial level.
func (d *DifficultyConfig) ApplyPreset(preset DifficultyPreset) {
	if preset == DifficultyFixed {
		d.Enabled = false
		return
	}
	d.Enabled = true
	d.InitialLevel = InitialLevelForPreset(preset)
}

// ApplyPreset sets the CPU think delay. Easier opponents answer slower.
func (c *CPUConfig) ApplyPreset(preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		c.ThinkTicks = 45
	case DifficultyNormal:
		c.ThinkTicks = 30
	case DifficultyHard:
		c.ThinkTicks = 15
	}
}
