package tictactoe

import (
	"math/rand"

	"github.com/vovakirdan/classic-arcade/internal/core"
)

var (
	center  = core.Point{X: 1, Y: 1}
	corners = [4]core.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 2}, {X: 2, Y: 2}}
)

// SelectMove picks the CPU's cell: win if possible, else block the
// opponent's win, else take the centre, else a random free corner, else a
// random free cell. It returns false on a full board.
func SelectMove(b *Board, cpu Mark, rng *rand.Rand) (core.Point, bool) {
	if p, ok := b.WinningMove(cpu); ok {
		return p, true
	}
	if p, ok := b.WinningMove(cpu.Other()); ok {
		return p, true
	}
	if b.At(center) == None {
		return center, true
	}

	var free []core.Point
	for _, c := range corners {
		if b.At(c) == None {
			free = append(free, c)
		}
	}
	if len(free) == 0 {
		free = b.Empty()
	}
	if len(free) == 0 {
		return core.Point{}, false
	}
	return free[rng.Intn(len(free))], true
}
