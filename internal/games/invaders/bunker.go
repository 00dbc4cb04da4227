package invaders

import "github.com/vovakirdan/classic-arcade/internal/core"

const (
	bunkerW      = 6
	bunkerH      = 2
	bunkerHealth = 2
)

// Bunkers holds the health of every shield cell on the field.
type Bunkers struct {
	cells map[core.Point]int
}

// NewBunkers spaces n bunkers evenly across a field of width fieldW with
// their top row at y.
func NewBunkers(n, fieldW, y int) *Bunkers {
	b := &Bunkers{cells: make(map[core.Point]int)}
	for i := 0; i < n; i++ {
		cx := (i + 1) * fieldW / (n + 1)
		for dy := 0; dy < bunkerH; dy++ {
			for dx := 0; dx < bunkerW; dx++ {
				b.cells[core.Point{X: cx - bunkerW/2 + dx, Y: y + dy}] = bunkerHealth
			}
		}
	}
	return b
}

// Health returns the remaining health of the cell at p, zero if none.
func (b *Bunkers) Health(p core.Point) int {
	return b.cells[p]
}

// Hit damages the cell at p and reports whether a cell was there.
func (b *Bunkers) Hit(p core.Point) bool {
	h, ok := b.cells[p]
	if !ok {
		return false
	}
	if h <= 1 {
		delete(b.cells, p)
	} else {
		b.cells[p] = h - 1
	}
	return true
}

// Len returns the number of intact cells.
func (b *Bunkers) Len() int {
	return len(b.cells)
}
