package core

// MatchMode describes who sits on the other side of the board.
type MatchMode int

const (
	// MatchModeSolo is a single-player score game (snake, tetris, ...).
	MatchModeSolo MatchMode = iota

	// MatchModeVsCPU is a board game against the built-in heuristic.
	MatchModeVsCPU

	// MatchModeHotseat is two humans sharing one keyboard.
	MatchModeHotseat
)

// String returns a human-readable name for the match mode.
func (m MatchMode) String() string {
	switch m {
	case MatchModeSolo:
		return "Solo"
	case MatchModeVsCPU:
		return "vs CPU"
	case MatchModeHotseat:
		return "Hot-seat"
	default:
		return "Unknown"
	}
}

// ParseMatchMode is the inverse of String for values read back from storage.
func ParseMatchMode(s string) MatchMode {
	switch s {
	case "vs CPU":
		return MatchModeVsCPU
	case "Hot-seat":
		return MatchModeHotseat
	default:
		return MatchModeSolo
	}
}
