package dodge

import (
	"fmt"

	"github.com/vovakirdan/endless-dodge/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar   = '█'
	ObstacleChar = '▓'
)

// Render draws the current frame into the cell buffer. The continuous world
// is scaled down to the buffer's dimensions, so the same simulation renders
// at any terminal size.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	snap := g.Snapshot()

	for _, r := range snap.Obstacles {
		g.drawWorldRect(dst, r, ObstacleChar, core.ColorRed)
	}
	g.drawWorldRect(dst, snap.Player, PlayerChar, core.ColorGreen)

	hud := fmt.Sprintf(" Score: %d  High: %d ", snap.Score, snap.HighScore)
	dst.DrawText(2, 0, hud, core.ColorBrightWhite)

	g.drawOverlay(dst, snap)
}

// drawWorldRect maps a world-space rectangle to cells. Rectangles never
// collapse below one cell so thin obstacles stay visible on small terminals.
func (g *Game) drawWorldRect(dst *core.Screen, r core.Rect, fill rune, c core.Color) {
	sx := float64(dst.Width()) / g.cfg.World.Width
	sy := float64(dst.Height()) / g.cfg.World.Height

	x := int(r.X * sx)
	y := int(r.Y * sy)
	w := core.Max(1, int(r.W*sx+0.5))
	h := core.Max(1, int(r.H*sy+0.5))

	dst.FillRect(x, y, w, h, fill, c)
}

// drawOverlay applies the state-dependent full-screen tint and message box.
// Menu and pause use a neutral dark tint; game over uses a red one.
func (g *Game) drawOverlay(dst *core.Screen, snap Snapshot) {
	switch snap.State {
	case StateMenu:
		dst.Tint(core.ColorGray)
		g.drawCenteredMessage(dst, "ENDLESS DODGE", "Press Enter to start")
	case StatePaused:
		dst.Tint(core.ColorGray)
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case StateGameOver:
		dst.Tint(core.ColorRed)
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Press Enter to restart", snap.Score))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorBrightWhite)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorBrightWhite)

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title, core.ColorBrightWhite)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle, core.ColorBrightWhite)
}
