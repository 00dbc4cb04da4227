package tetris

import "strings"

// Well is the playfield, indexed [row][col] with row 0 at the top.
type Well struct {
	width  int
	height int
	cells  [][]Kind
}

// NewWell creates an empty well.
func NewWell(width, height int) *Well {
	w := &Well{width: width, height: height}
	w.cells = make([][]Kind, height)
	for y := range w.cells {
		w.cells[y] = make([]Kind, width)
	}
	return w
}

// Width returns the number of columns.
func (w *Well) Width() int { return w.width }

// Height returns the number of rows.
func (w *Well) Height() int { return w.height }

// At returns the kind locked at (x, y), or None outside the well.
func (w *Well) At(x, y int) Kind {
	if x < 0 || x >= w.width || y < 0 || y >= w.height {
		return None
	}
	return w.cells[y][x]
}

// Set locks kind k at (x, y). Out-of-range cells are ignored.
func (w *Well) Set(x, y int, k Kind) {
	if x < 0 || x >= w.width || y < 0 || y >= w.height {
		return
	}
	w.cells[y][x] = k
}

// Collides reports whether p overlaps a wall, the floor or a locked cell.
// Cells above the top of the well are free.
func (w *Well) Collides(p Piece) bool {
	for _, c := range p.Cells() {
		if c.X < 0 || c.X >= w.width || c.Y >= w.height {
			return true
		}
		if c.Y >= 0 && w.cells[c.Y][c.X] != None {
			return true
		}
	}
	return false
}

// Lock writes p into the well.
func (w *Well) Lock(p Piece) {
	for _, c := range p.Cells() {
		w.Set(c.X, c.Y, p.Kind)
	}
}

// ClearLines removes every full row, shifts the rows above down and
// returns the number of rows removed.
func (w *Well) ClearLines() int {
	kept := make([][]Kind, 0, w.height)
	for _, row := range w.cells {
		if !full(row) {
			kept = append(kept, row)
		}
	}
	cleared := w.height - len(kept)
	if cleared == 0 {
		return 0
	}
	fresh := make([][]Kind, cleared, w.height)
	for i := range fresh {
		fresh[i] = make([]Kind, w.width)
	}
	w.cells = append(fresh, kept...)
	return cleared
}

func full(row []Kind) bool {
	for _, k := range row {
		if k == None {
			return false
		}
	}
	return true
}

// String renders the well one row per line using kind letters.
func (w *Well) String() string {
	var b strings.Builder
	for y, row := range w.cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, k := range row {
			b.WriteString(k.String())
		}
	}
	return b.String()
}
