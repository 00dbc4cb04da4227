package tictactoe

import "github.com/vovakirdan/classic-arcade/internal/core"

// Mark is the content of a cell: None, X or O.
type Mark uint8

const (
	None Mark = iota
	X
	O
)

// Other returns the opposing mark. None has no opponent.
func (m Mark) Other() Mark {
	switch m {
	case X:
		return O
	case O:
		return X
	}
	return None
}

func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	}
	return " "
}

// Board is a 3x3 grid indexed [row][col].
type Board [3][3]Mark

// lines lists every row, column and diagonal as cell coordinates
// (X = column, Y = row).
var lines = [8][3]core.Point{
	{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}},
	{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}},
	{{X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}},
	{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}},
	{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}},
	{{X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2}},
	{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}},
	{{X: 2, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 2}},
}

// At returns the mark at p.
func (b *Board) At(p core.Point) Mark {
	return b[p.Y][p.X]
}

// Winner returns the mark owning a complete line and that line.
// Rows are checked first, then columns, then diagonals.
func (b *Board) Winner() (Mark, []core.Point) {
	for _, l := range lines {
		m := b.At(l[0])
		if m != None && m == b.At(l[1]) && m == b.At(l[2]) {
			return m, l[:]
		}
	}
	return None, nil
}

// IsFull reports whether every cell is marked.
func (b *Board) IsFull() bool {
	for _, row := range b {
		for _, m := range row {
			if m == None {
				return false
			}
		}
	}
	return true
}

// Empty returns the free cells in row-major order.
func (b *Board) Empty() []core.Point {
	var free []core.Point
	for y := range b {
		for x := range b[y] {
			if b[y][x] == None {
				free = append(free, core.Point{X: x, Y: y})
			}
		}
	}
	return free
}

// WinningMove returns the first free cell, in row-major order, that would
// complete a line for m. The board is unchanged on return.
func (b *Board) WinningMove(m Mark) (core.Point, bool) {
	for _, p := range b.Empty() {
		b[p.Y][p.X] = m
		w, _ := b.Winner()
		b[p.Y][p.X] = None
		if w == m {
			return p, true
		}
	}
	return core.Point{}, false
}
