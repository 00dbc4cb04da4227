package tetris

import (
	"fmt"

	"github.com/vovakirdan/classic-arcade/internal/core"
)

const (
	hudHeight  = 2
	panelWidth = 16
)

func (g *Game) minWidth() int {
	return g.cfg.Board.Width*2 + 2 + 2 + panelWidth
}

// Render draws the well, the falling piece and the side panel.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	dst.DrawText(0, 0, fmt.Sprintf(" Tetris  Score: %d  Lines: %d  Level: %d", g.score, g.lines, g.level))
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorDefault)

	if g.tooSmall {
		dst.DrawOverlay(core.ColorYellow, "Window too small", "Resize to continue")
		return
	}

	wellW := g.well.Width()*2 + 2
	x0 := (dst.Width() - g.minWidth()) / 2
	y0 := hudHeight
	dst.DrawBox(core.NewRect(x0, y0, wellW, g.well.Height()+2), core.ColorGray)

	for y := 0; y < g.well.Height(); y++ {
		for x := 0; x < g.well.Width(); x++ {
			if k := g.well.At(x, y); k != None {
				drawBlock(dst, x0+1+x*2, y0+1+y, '█', k.Color())
			}
		}
	}

	if !g.gameOver {
		for _, c := range g.Ghost().Cells() {
			if c.Y >= 0 {
				drawBlock(dst, x0+1+c.X*2, y0+1+c.Y, '░', core.ColorGray)
			}
		}
		for _, c := range g.current.Cells() {
			if c.Y >= 0 {
				drawBlock(dst, x0+1+c.X*2, y0+1+c.Y, '█', g.current.Kind.Color())
			}
		}
	}

	px := x0 + wellW + 2
	dst.DrawText(px, y0+1, "Next:")
	dst.DrawBox(core.NewRect(px, y0+2, 10, 4), core.ColorGray)
	m := Shape(g.next, 0)
	for y := 0; y < 2; y++ {
		for x := range m[y] {
			if m[y][x] {
				drawBlock(dst, px+1+x*2, y0+3+y, '█', g.next.Color())
			}
		}
	}
	dst.DrawText(px, y0+7, fmt.Sprintf("Score: %d", g.score))
	dst.DrawText(px, y0+8, fmt.Sprintf("Lines: %d", g.lines))
	dst.DrawText(px, y0+9, fmt.Sprintf("Level: %d", g.level))
	dst.DrawTextWithColor(px, y0+11, "↑ rotate", core.ColorGray)
	dst.DrawTextWithColor(px, y0+12, "←/→ move", core.ColorGray)
	dst.DrawTextWithColor(px, y0+13, "↓ soft drop", core.ColorGray)
	dst.DrawTextWithColor(px, y0+14, "Space hard drop", core.ColorGray)

	switch {
	case g.gameOver:
		dst.DrawOverlay(core.ColorRed, "Game Over", fmt.Sprintf("Score: %d", g.score), "Press R to restart")
	case g.paused:
		dst.DrawOverlay(core.ColorDefault, "Paused", "Press P to continue")
	}
}

func drawBlock(dst *core.Screen, x, y int, r rune, c core.Color) {
	dst.SetWithColor(x, y, r, c)
	dst.SetWithColor(x+1, y, r, c)
}
