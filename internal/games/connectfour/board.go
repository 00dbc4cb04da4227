package connectfour

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/classic-arcade/internal/core"
)

// ErrColumnFull is returned by Drop when the column has no empty cell.
var ErrColumnFull = errors.New("connectfour: column is full")

// Player is one of the two sides. There is no neutral player; an empty
// cell is represented by Cell, not by Player.
type Player uint8

const (
	PlayerRed    Player = 1
	PlayerYellow Player = 2
)

// Opponent returns the other side.
func (p Player) Opponent() Player {
	if p == PlayerRed {
		return PlayerYellow
	}
	return PlayerRed
}

func (p Player) String() string {
	if p == PlayerRed {
		return "Red"
	}
	return "Yellow"
}

// Cell is the content of one board cell.
type Cell uint8

// Empty is the content of an unoccupied cell.
const Empty Cell = 0

// CellOf returns the cell value occupied by p.
func CellOf(p Player) Cell {
	return Cell(p)
}

// Player returns the occupant of c, or false if c is empty.
func (c Cell) Player() (Player, bool) {
	if c == Empty {
		return 0, false
	}
	return Player(c), true
}

// Board is a height x width Connect Four grid. Row 0 is the top row.
//
// Pieces obey gravity: a cell is only occupied if every cell below it is.
// Methods panic on out-of-range coordinates.
type Board struct {
	width  int
	height int
	cells  []Cell
}

// NewBoard creates an empty board. Both dimensions must be at least 4.
func NewBoard(width, height int) *Board {
	if width < 4 || height < 4 {
		panic(fmt.Sprintf("connectfour: board %dx%d is smaller than 4x4", width, height))
	}
	return &Board{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

func (b *Board) checkCol(col int) {
	if col < 0 || col >= b.width {
		panic(fmt.Sprintf("connectfour: column %d out of range [0,%d)", col, b.width))
	}
}

func (b *Board) checkCell(row, col int) {
	b.checkCol(col)
	if row < 0 || row >= b.height {
		panic(fmt.Sprintf("connectfour: row %d out of range [0,%d)", row, b.height))
	}
}

func (b *Board) inBounds(row, col int) bool {
	return row >= 0 && row < b.height && col >= 0 && col < b.width
}

// at reads a cell without bounds checks beyond the slice's own.
func (b *Board) at(row, col int) Cell {
	return b.cells[row*b.width+col]
}

// At returns the content of a cell.
func (b *Board) At(row, col int) Cell {
	b.checkCell(row, col)
	return b.at(row, col)
}

// IsColumnFull reports whether the top cell of col is occupied.
func (b *Board) IsColumnFull(col int) bool {
	b.checkCol(col)
	return b.at(0, col) != Empty
}

// DropRow returns the lowest empty row of col, or false if col is full.
func (b *Board) DropRow(col int) (int, bool) {
	b.checkCol(col)
	for row := b.height - 1; row >= 0; row-- {
		if b.at(row, col) == Empty {
			return row, true
		}
	}
	return -1, false
}

// Place puts p's piece at (row, col). The cell must be empty.
func (b *Board) Place(row, col int, p Player) {
	b.checkCell(row, col)
	if b.at(row, col) != Empty {
		panic(fmt.Sprintf("connectfour: cell (%d,%d) is already occupied", row, col))
	}
	b.cells[row*b.width+col] = CellOf(p)
}

// Clear empties (row, col).
func (b *Board) Clear(row, col int) {
	b.checkCell(row, col)
	b.cells[row*b.width+col] = Empty
}

// Drop applies a move for p in col and returns the landing row.
func (b *Board) Drop(col int, p Player) (int, error) {
	row, ok := b.DropRow(col)
	if !ok {
		return -1, fmt.Errorf("%w: column %d", ErrColumnFull, col)
	}
	b.Place(row, col, p)
	return row, nil
}

// IsFull reports whether no column has room left.
func (b *Board) IsFull() bool {
	for col := 0; col < b.width; col++ {
		if b.at(0, col) == Empty {
			return false
		}
	}
	return true
}

// Count returns the number of occupied cells.
func (b *Board) Count() int {
	n := 0
	for _, c := range b.cells {
		if c != Empty {
			n++
		}
	}
	return n
}

// directions holds one vector per line orientation: horizontal, vertical
// and the two diagonals, as (row, col) steps.
var directions = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// HasFourInARow reports whether the occupant of (row, col) has at least four
// consecutive pieces through that cell in any direction. An empty cell never
// wins.
func (b *Board) HasFourInARow(row, col int) bool {
	return len(b.WinningLine(row, col)) >= 4
}

// WinningLine returns the cells of the first run of four or more through
// (row, col), ordered along the line, or nil if there is none.
func (b *Board) WinningLine(row, col int) []core.Point {
	b.checkCell(row, col)
	c := b.at(row, col)
	if c == Empty {
		return nil
	}

	for _, d := range directions {
		r0, c0 := row, col
		for b.inBounds(r0-d[0], c0-d[1]) && b.at(r0-d[0], c0-d[1]) == c {
			r0, c0 = r0-d[0], c0-d[1]
		}

		var line []core.Point
		for r, cc := r0, c0; b.inBounds(r, cc) && b.at(r, cc) == c; r, cc = r+d[0], cc+d[1] {
			line = append(line, core.Point{X: cc, Y: r})
		}
		if len(line) >= 4 {
			return line
		}
	}
	return nil
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	cp := &Board{width: b.width, height: b.height, cells: make([]Cell, len(b.cells))}
	copy(cp.cells, b.cells)
	return cp
}

// Equal reports whether two boards have the same size and contents.
func (b *Board) Equal(other *Board) bool {
	if b.width != other.width || b.height != other.height {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Reset empties every cell.
func (b *Board) Reset() {
	clear(b.cells)
}

// String renders the board as text, top row first. Used in test failures.
func (b *Board) String() string {
	buf := make([]byte, 0, (b.width+1)*b.height)
	for row := 0; row < b.height; row++ {
		for col := 0; col < b.width; col++ {
			switch b.at(row, col) {
			case CellOf(PlayerRed):
				buf = append(buf, 'R')
			case CellOf(PlayerYellow):
				buf = append(buf, 'Y')
			default:
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
