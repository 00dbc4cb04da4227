package pacman

import (
	"fmt"

	"github.com/vovakirdan/classic-arcade/internal/core"
)

const hudHeight = 2

var ghostColors = [...]core.Color{core.ColorRed, core.ColorBrightMagenta, core.ColorBrightCyan, core.ColorOrange}

// Render draws the maze, Pac-Man and the ghosts. Each cell is two columns
// wide.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	dst.DrawText(0, 0, fmt.Sprintf(" Pac-Man  Score: %d  Level: %d  Dots: %d", g.score, g.level, g.maze.DotsLeft()))
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorDefault)

	if g.tooSmall {
		dst.DrawOverlay(core.ColorYellow, "Window too small", "Resize to continue")
		return
	}

	ox := (dst.Width() - g.maze.Width()*2) / 2
	oy := hudHeight
	for y := 0; y < g.maze.Height(); y++ {
		for x := 0; x < g.maze.Width(); x++ {
			sx, sy := ox+x*2, oy+y
			switch g.maze.At(core.Point{X: x, Y: y}) {
			case TileWall:
				dst.SetWithColor(sx, sy, '█', core.ColorBlue)
				dst.SetWithColor(sx+1, sy, '█', core.ColorBlue)
			case TileDot:
				dst.SetWithColor(sx, sy, '·', core.ColorWhite)
			case TilePellet:
				dst.SetWithColor(sx, sy, '●', core.ColorBrightWhite)
			case TileDoor:
				dst.SetWithColor(sx, sy, '─', core.ColorGray)
				dst.SetWithColor(sx+1, sy, '─', core.ColorGray)
			}
		}
	}

	for i, gh := range g.ghosts {
		c := ghostColors[i%len(ghostColors)]
		if gh.Frightened {
			c = core.ColorBrightBlue
			if g.frightenedLeft < 90 && g.tick/8%2 == 0 {
				c = core.ColorBrightWhite
			}
		}
		dst.SetWithColor(ox+gh.Pos.X*2, oy+gh.Pos.Y, 'ᗣ', c)
	}
	dst.SetWithColor(ox+g.pos.X*2, oy+g.pos.Y, g.glyph(), core.ColorBrightYellow)

	switch {
	case g.gameOver:
		dst.DrawOverlay(core.ColorRed, "Caught by a ghost!", fmt.Sprintf("Score: %d", g.score), "Press R to restart")
	case g.paused:
		dst.DrawOverlay(core.ColorDefault, "Paused", "Press P to continue")
	}
}

func (g *Game) glyph() rune {
	switch g.dir {
	case core.DirUp:
		return 'ᗢ'
	case core.DirDown:
		return 'ᗥ'
	case core.DirLeft:
		return 'ᗤ'
	}
	return 'ᗧ'
}
