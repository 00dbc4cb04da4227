package tetris

import "github.com/vovakirdan/classic-arcade/internal/core"

// Kind identifies a tetromino. None marks an empty well cell.
type Kind uint8

const (
	None Kind = iota
	I
	J
	L
	O
	S
	T
	Z
)

// KindCount is the number of tetromino kinds.
const KindCount = 7

// RotationCount is the number of rotation states per tetromino.
const RotationCount = 4

func (k Kind) String() string {
	if k == None || k > Z {
		return "."
	}
	return string("IJLOSTZ"[k-1])
}

// Color returns the display colour of the kind.
func (k Kind) Color() core.Color {
	switch k {
	case I:
		return core.ColorCyan
	case J:
		return core.ColorBlue
	case L:
		return core.ColorOrange
	case O:
		return core.ColorYellow
	case S:
		return core.ColorGreen
	case T:
		return core.ColorPurple
	case Z:
		return core.ColorRed
	}
	return core.ColorDefault
}

// Mask is a 4x4 occupancy grid indexed [row][col].
type Mask [4][4]bool

// shapes holds the masks for every kind and rotation, in kind order.
var shapes = [KindCount][RotationCount]Mask{
	{ // I
		mask("....", "####", "....", "...."),
		mask("..#.", "..#.", "..#.", "..#."),
		mask("....", "....", "####", "...."),
		mask(".#..", ".#..", ".#..", ".#.."),
	},
	{ // J
		mask("#...", "###.", "....", "...."),
		mask(".##.", ".#..", ".#..", "...."),
		mask("....", "###.", "..#.", "...."),
		mask(".#..", ".#..", "##..", "...."),
	},
	{ // L
		mask("..#.", "###.", "....", "...."),
		mask(".#..", ".#..", ".##.", "...."),
		mask("....", "###.", "#...", "...."),
		mask("##..", ".#..", ".#..", "...."),
	},
	{ // O
		mask(".##.", ".##.", "....", "...."),
		mask(".##.", ".##.", "....", "...."),
		mask(".##.", ".##.", "....", "...."),
		mask(".##.", ".##.", "....", "...."),
	},
	{ // S
		mask(".##.", "##..", "....", "...."),
		mask(".#..", ".##.", "..#.", "...."),
		mask("....", ".##.", "##..", "...."),
		mask("#...", "##..", ".#..", "...."),
	},
	{ // T
		mask(".#..", "###.", "....", "...."),
		mask(".#..", ".##.", ".#..", "...."),
		mask("....", "###.", ".#..", "...."),
		mask(".#..", "##..", ".#..", "...."),
	},
	{ // Z
		mask("##..", ".##.", "....", "...."),
		mask("..#.", ".##.", ".#..", "...."),
		mask("....", "##..", ".##.", "...."),
		mask(".#..", "##..", "#...", "...."),
	},
}

func mask(rows ...string) Mask {
	var m Mask
	for y, row := range rows {
		for x, ch := range row {
			m[y][x] = ch == '#'
		}
	}
	return m
}

// Shape returns the mask of kind k in rotation rot.
func Shape(k Kind, rot int) Mask {
	return shapes[k-1][rot%RotationCount]
}

// Piece is a tetromino placed in the well. X and Y locate the top-left
// corner of its 4x4 mask.
type Piece struct {
	Kind Kind
	Rot  int
	X, Y int
}

// SpawnX is the column every new piece starts at.
const SpawnX = 3

// Spawn returns a new piece of kind k at the top of the well.
func Spawn(k Kind) Piece {
	return Piece{Kind: k, X: SpawnX}
}

// Cells returns the well coordinates the piece covers.
func (p Piece) Cells() []core.Point {
	m := Shape(p.Kind, p.Rot)
	cells := make([]core.Point, 0, 4)
	for y := range m {
		for x := range m[y] {
			if m[y][x] {
				cells = append(cells, core.Point{X: p.X + x, Y: p.Y + y})
			}
		}
	}
	return cells
}

// Moved returns a copy of p shifted by dx, dy.
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Rotated returns a copy of p turned by one quarter clockwise.
func (p Piece) Rotated() Piece {
	p.Rot = (p.Rot + 1) % RotationCount
	return p
}
