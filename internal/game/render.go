package game

import (
	"math"

	"github.com/vovakirdan/stardodge/internal/core"
)

// Visual characters for rendering
const (
	ShipBody     = '█'
	ShipNose     = '▶'
	ShipGlow     = '·'
	ObstacleBody = '▓'
	ObstacleGlow = '░'
)

// Render draws the current state into the screen buffer. Instead of
// clearing, the previous frame is faded one step, leaving a trailing
// afterimage behind moving entities. Rendering reads entity state only
// and never mutates it.
func (g *Game) Render(dst *core.Screen) {
	dst.Fade()

	for _, o := range g.obstacles {
		g.drawObstacle(dst, o)
	}

	g.drawShip(dst)
}

// cellX converts a virtual pixel x-coordinate to a screen column.
func cellX(px float64) int {
	return int(math.Floor(px / CellPxW))
}

// cellY converts a virtual pixel y-coordinate to a screen row.
func cellY(px float64) int {
	return int(math.Floor(px / CellPxH))
}

// cellSpan converts a pixel extent to a cell count, at least 1.
func cellSpan(px float64, scale float64) int {
	n := int(math.Round(px / scale))
	if n < 1 {
		n = 1
	}
	return n
}

// drawObstacle renders a debris block with a faint one-cell halo.
func (g *Game) drawObstacle(dst *core.Screen, o Obstacle) {
	cx := cellX(o.X)
	cy := cellY(o.Y)
	cw := cellSpan(o.W, CellPxW)
	ch := cellSpan(o.H, CellPxH)

	drawHalo(dst, cx, cy, cw, ch, core.Cell{Rune: ObstacleGlow, Color: core.ColorRed})

	for dy := 0; dy < ch; dy++ {
		for dx := 0; dx < cw; dx++ {
			dst.SetCell(cx+dx, cy+dy, core.Cell{Rune: ObstacleBody, Color: core.ColorBrightRed})
		}
	}
}

// drawShip renders the player as a forward-pointing wedge whose color
// intensity tracks the remaining power, the terminal-cell stand-in for
// opacity proportional to power/100.
func (g *Game) drawShip(dst *core.Screen) {
	cx := cellX(g.ship.X)
	cy := cellY(g.ship.Y)
	cw := cellSpan(g.ship.W, CellPxW)
	ch := cellSpan(g.ship.H, CellPxH)

	color := g.powerColor()
	noseRow := cy + (ch-1)/2

	drawHalo(dst, cx, cy, cw, ch, core.Cell{Rune: ShipGlow, Color: core.ColorGray})

	for dy := 0; dy < ch; dy++ {
		y := cy + dy

		// Body rows stop one cell short of the nose column.
		bodyW := cw - 1
		if bodyW < 1 {
			bodyW = 1
		}
		for dx := 0; dx < bodyW; dx++ {
			dst.SetCell(cx+dx, y, core.Cell{Rune: ShipBody, Color: color})
		}

		if y == noseRow {
			dst.SetCell(cx+cw-1, y, core.Cell{Rune: ShipNose, Color: color})
		}
	}
}

// powerColor maps remaining power to a draw intensity tier.
func (g *Game) powerColor() core.Color {
	ratio := g.ship.Power / g.cfg.Power.Start
	switch {
	case ratio > 0.66:
		return core.ColorBrightCyan
	case ratio > 0.33:
		return core.ColorCyan
	default:
		return core.ColorGray
	}
}

// drawHalo outlines a cell rectangle with a glow cell, painting only
// over blank cells so entity bodies keep their own color.
func drawHalo(dst *core.Screen, cx, cy, cw, ch int, glow core.Cell) {
	for dy := -1; dy <= ch; dy++ {
		for dx := -1; dx <= cw; dx++ {
			onBorder := dy == -1 || dy == ch || dx == -1 || dx == cw
			if !onBorder {
				continue
			}
			x, y := cx+dx, cy+dy
			if dst.Get(x, y) == ' ' {
				dst.SetCell(x, y, glow)
			}
		}
	}
}
