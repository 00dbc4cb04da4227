package pacman

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/classic-arcade/internal/core"
)

//go:embed maze.txt
var defaultLayout string

// Tile is the static content of a maze cell.
type Tile uint8

const (
	TileEmpty Tile = iota
	TileWall
	TileDot
	TilePellet
	TileDoor // ghost house door, closed to Pac-Man
)

// Maze layout characters.
const (
	charWall   = '#'
	charDot    = '.'
	charPellet = 'o'
	charDoor   = '-'
	charPlayer = 'P'
	charGhost  = 'G'
)

// ErrBadLayout is returned for layouts that cannot be played.
var ErrBadLayout = errors.New("pacman: bad maze layout")

// Maze is the playfield parsed from a text layout. Rows wrap around
// horizontally where the outer wall is open.
type Maze struct {
	width, height int
	tiles         [][]Tile
	dots          int
	playerStart   core.Point
	ghostStarts   []core.Point
}

// ParseMaze builds a maze from text rows. Every row must have the same
// width, and the layout needs one 'P' and at least one 'G'.
func ParseMaze(layout string) (*Maze, error) {
	rows := strings.Split(strings.TrimRight(layout, "\n"), "\n")
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrBadLayout)
	}

	m := &Maze{width: len(rows[0]), height: len(rows)}
	m.tiles = make([][]Tile, m.height)
	players := 0
	for y, row := range rows {
		if len(row) != m.width {
			return nil, fmt.Errorf("%w: row %d has width %d, expected %d", ErrBadLayout, y, len(row), m.width)
		}
		m.tiles[y] = make([]Tile, m.width)
		for x := 0; x < m.width; x++ {
			p := core.Point{X: x, Y: y}
			switch row[x] {
			case charWall:
				m.tiles[y][x] = TileWall
			case charDot:
				m.tiles[y][x] = TileDot
				m.dots++
			case charPellet:
				m.tiles[y][x] = TilePellet
				m.dots++
			case charDoor:
				m.tiles[y][x] = TileDoor
			case charPlayer:
				m.playerStart = p
				players++
			case charGhost:
				m.ghostStarts = append(m.ghostStarts, p)
			}
		}
	}
	if players != 1 {
		return nil, fmt.Errorf("%w: %d player starts", ErrBadLayout, players)
	}
	if len(m.ghostStarts) == 0 {
		return nil, fmt.Errorf("%w: no ghosts", ErrBadLayout)
	}
	return m, nil
}

// DefaultMaze returns a fresh copy of the built-in maze.
func DefaultMaze() *Maze {
	m, err := ParseMaze(defaultLayout)
	if err != nil {
		panic(err)
	}
	return m
}

// Width returns the number of columns.
func (m *Maze) Width() int { return m.width }

// Height returns the number of rows.
func (m *Maze) Height() int { return m.height }

// DotsLeft returns the number of dots and pellets not yet eaten.
func (m *Maze) DotsLeft() int { return m.dots }

// PlayerStart returns Pac-Man's spawn cell.
func (m *Maze) PlayerStart() core.Point { return m.playerStart }

// GhostStarts returns the ghost spawn cells in layout order.
func (m *Maze) GhostStarts() []core.Point { return m.ghostStarts }

// At returns the tile at p. Rows outside the maze read as walls.
func (m *Maze) At(p core.Point) Tile {
	if p.Y < 0 || p.Y >= m.height {
		return TileWall
	}
	return m.tiles[p.Y][m.wrapX(p.X)]
}

// Step returns the cell one move from p in direction d, wrapping around
// the side tunnels.
func (m *Maze) Step(p core.Point, d core.Direction) core.Point {
	n := p.Add(d.Delta())
	n.X = m.wrapX(n.X)
	return n
}

func (m *Maze) wrapX(x int) int {
	return ((x % m.width) + m.width) % m.width
}

// Open reports whether a walker may enter p. Only ghosts pass the door.
func (m *Maze) Open(p core.Point, ghost bool) bool {
	switch m.At(p) {
	case TileWall:
		return false
	case TileDoor:
		return ghost
	}
	return true
}

// Eat clears a dot or pellet at p and returns what was there.
func (m *Maze) Eat(p core.Point) Tile {
	t := m.At(p)
	if t != TileDot && t != TilePellet {
		return TileEmpty
	}
	m.tiles[p.Y][m.wrapX(p.X)] = TileEmpty
	m.dots--
	return t
}
