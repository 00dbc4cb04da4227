package invaders

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/classic-arcade/internal/core"
)

var alienGlyphs = [3][2]string{
	{"/o\\", "\\o/"},
	{"{@}", "}@{"},
	{"<->", ">-<"},
}

var bandColors = [3]core.Color{core.ColorMagenta, core.ColorCyan, core.ColorGreen}

// Render draws the field and HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	dst.DrawText(0, 0, fmt.Sprintf(" Space Invaders  Score: %d  Lives: %s  Wave: %d",
		g.score, strings.Repeat("♥", max(0, g.lives)), g.wave))
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorDefault)

	if g.tooSmall {
		dst.DrawOverlay(core.ColorYellow, "Window too small", "Resize to continue")
		return
	}

	ox, oy := g.offsetX, hudHeight
	f := g.formation
	for r := 0; r < f.Rows; r++ {
		band := f.BandOf(r)
		for c := 0; c < f.Cols; c++ {
			if !f.Alive(r, c) {
				continue
			}
			p := f.Pos(r, c)
			dst.DrawTextWithColor(ox+p.X, oy+p.Y, alienGlyphs[band][f.Frame], bandColors[band])
		}
	}

	for y := bunkerRow; y < bunkerRow+bunkerH; y++ {
		for x := 0; x < g.fieldW; x++ {
			switch g.bunkers.Health(core.Point{X: x, Y: y}) {
			case 1:
				dst.SetWithColor(ox+x, oy+y, '▒', core.ColorGreen)
			case 0:
			default:
				dst.SetWithColor(ox+x, oy+y, '█', core.ColorGreen)
			}
		}
	}

	for _, s := range g.playerShots {
		dst.SetWithColor(ox+s.X, oy+s.Y, '|', core.ColorBrightWhite)
	}
	for _, s := range g.alienShots {
		dst.SetWithColor(ox+s.X, oy+s.Y, '!', core.ColorRed)
	}

	if !g.gameOver || g.invaded {
		dst.DrawTextWithColor(ox+g.playerX-1, oy+playerRow, "/^\\", core.ColorBrightGreen)
	}

	switch {
	case g.invaded:
		dst.DrawOverlay(core.ColorRed, "The invaders have landed!", fmt.Sprintf("Score: %d", g.score), "Press R to restart")
	case g.gameOver:
		dst.DrawOverlay(core.ColorRed, "Game Over", fmt.Sprintf("Score: %d", g.score), "Press R to restart")
	case g.paused:
		dst.DrawOverlay(core.ColorDefault, "Paused", "Press P to continue")
	}
}
