package invaders

import "github.com/vovakirdan/classic-arcade/internal/core"

const (
	alienW    = 3 // glyph width
	alienStep = 4 // column pitch, glyph plus gap
	rowStep   = 2 // row pitch
)

// Band groups formation rows by point value.
type Band int

const (
	BandTop Band = iota
	BandMiddle
	BandBottom
)

// Formation is the grid of aliens marching as one block. X and Y locate
// the top-left alien slot on the field.
type Formation struct {
	Rows, Cols int
	X, Y       int
	Dir        int // +1 right, -1 left
	Frame      int
	alive      [][]bool
	remaining  int
}

// NewFormation creates a full formation at (x, y) marching right.
func NewFormation(rows, cols, x, y int) *Formation {
	f := &Formation{Rows: rows, Cols: cols, X: x, Y: y, Dir: 1}
	f.alive = make([][]bool, rows)
	for r := range f.alive {
		f.alive[r] = make([]bool, cols)
		for c := range f.alive[r] {
			f.alive[r][c] = true
		}
	}
	f.remaining = rows * cols
	return f
}

// Width is the span of the full formation in cells.
func (f *Formation) Width() int {
	return (f.Cols-1)*alienStep + alienW
}

// Alive reports whether the alien at (row, col) is still alive.
func (f *Formation) Alive(row, col int) bool {
	return f.alive[row][col]
}

// Remaining returns the number of live aliens.
func (f *Formation) Remaining() int { return f.remaining }

// Total returns the size of a full formation.
func (f *Formation) Total() int { return f.Rows * f.Cols }

// Pos returns the field position of the left edge of alien (row, col).
func (f *Formation) Pos(row, col int) core.Point {
	return core.Point{X: f.X + col*alienStep, Y: f.Y + row*rowStep}
}

// BandOf maps a formation row to its scoring band: the first row is the top
// band, the upper half of the rest is the middle band.
func (f *Formation) BandOf(row int) Band {
	switch {
	case row == 0:
		return BandTop
	case row <= f.Rows/2:
		return BandMiddle
	default:
		return BandBottom
	}
}

// bounds returns the leftmost and rightmost occupied field columns and the
// lowest occupied row.
func (f *Formation) bounds() (left, right, bottom int, ok bool) {
	minCol, maxCol, maxRow := f.Cols, -1, -1
	for r := range f.alive {
		for c, a := range f.alive[r] {
			if !a {
				continue
			}
			minCol = min(minCol, c)
			maxCol = max(maxCol, c)
			maxRow = max(maxRow, r)
		}
	}
	if maxCol < 0 {
		return 0, 0, 0, false
	}
	left = f.X + minCol*alienStep
	right = f.X + maxCol*alienStep + alienW - 1
	bottom = f.Y + maxRow*rowStep
	return left, right, bottom, true
}

// Bottom returns the field row of the lowest live alien, or -1 when the
// formation is empty.
func (f *Formation) Bottom() int {
	_, _, b, ok := f.bounds()
	if !ok {
		return -1
	}
	return b
}

// March moves the formation one step inside a field of the given width. A
// step that would cross an edge becomes a one-row drop and reverses the
// direction. It reports whether the formation dropped.
func (f *Formation) March(fieldW int) bool {
	f.Frame ^= 1
	left, right, _, ok := f.bounds()
	if !ok {
		return false
	}
	if left+f.Dir < 0 || right+f.Dir >= fieldW {
		f.Y++
		f.Dir = -f.Dir
		return true
	}
	f.X += f.Dir
	return false
}

// HitAt kills the alien covering p and returns its band.
func (f *Formation) HitAt(p core.Point) (Band, bool) {
	dy := p.Y - f.Y
	if dy < 0 || dy%rowStep != 0 {
		return 0, false
	}
	row := dy / rowStep
	dx := p.X - f.X
	if row >= f.Rows || dx < 0 || dx%alienStep >= alienW {
		return 0, false
	}
	col := dx / alienStep
	if col >= f.Cols || !f.alive[row][col] {
		return 0, false
	}
	f.alive[row][col] = false
	f.remaining--
	return f.BandOf(row), true
}

// Shooter returns the lowest live alien in col.
func (f *Formation) Shooter(col int) (row int, ok bool) {
	for r := f.Rows - 1; r >= 0; r-- {
		if f.alive[r][col] {
			return r, true
		}
	}
	return 0, false
}
