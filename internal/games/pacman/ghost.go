package pacman

import (
	"math/rand"

	"github.com/vovakirdan/classic-arcade/internal/core"
)

// Ghost is one of the four wandering ghosts.
type Ghost struct {
	Pos        core.Point
	Home       core.Point
	Dir        core.Direction
	Frightened bool
}

// ghostOrder is the order exits are considered in before the random pick.
var ghostOrder = [4]core.Direction{core.DirUp, core.DirRight, core.DirDown, core.DirLeft}

// wander moves the ghost one cell in a random open direction. It never
// turns back unless the cell is a dead end.
func (gh *Ghost) wander(m *Maze, rng *rand.Rand) {
	var options []core.Direction
	for _, d := range ghostOrder {
		if d != gh.Dir.Opposite() && m.Open(m.Step(gh.Pos, d), true) {
			options = append(options, d)
		}
	}
	if len(options) == 0 {
		for _, d := range ghostOrder {
			if m.Open(m.Step(gh.Pos, d), true) {
				options = append(options, d)
			}
		}
	}
	if len(options) == 0 {
		return
	}
	gh.Dir = options[rng.Intn(len(options))]
	gh.Pos = m.Step(gh.Pos, gh.Dir)
}

// sendHome puts an eaten ghost back in the house.
func (gh *Ghost) sendHome() {
	gh.Pos = gh.Home
	gh.Dir = core.DirUp
	gh.Frightened = false
}
