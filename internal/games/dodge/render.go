package dodge

import (
	"fmt"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// Visual characters for rendering
const (
	AvatarChar         = '▒'
	DefeatedChar       = '░'
	DefeatedCenterChar = '✖'
	ProjectileChar     = '●'
)

// Render draws the current game state to the screen.
// The field is scaled to fit inside a border; the last row holds the HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	if w < 4 || h < 4 {
		dst.DrawText(0, 0, "window too small")
		return
	}

	arena := core.NewRect(0, 0, w, h-1)
	dst.DrawBox(arena, core.ColorGray)
	inner := core.NewRect(1, 1, w-2, h-3)

	g.drawAvatar(dst, inner)
	g.drawProjectile(dst, inner)

	hud := fmt.Sprintf(" Ticks: %d  Seed: %d ", g.tickCount, g.runtime.Seed)
	dst.DrawText(1, h-1, hud)

	if g.gameOver && g.reason == core.EndCollision {
		g.drawCenteredMessage(dst, "OUCH!", fmt.Sprintf("Hit after %d ticks", g.tickCount))
	}
}

func (g *Game) drawAvatar(dst *core.Screen, inner core.Rect) {
	cells := g.toCells(inner, g.avatar.Rect())
	cx, cy := cells.Center()

	if g.avatar.Defeated() {
		dst.DrawRect(cells, DefeatedChar, core.ColorRed)
		dst.SetColored(cx, cy, DefeatedCenterChar, core.ColorBrightRed)
		return
	}
	dst.DrawRect(cells, AvatarChar, core.ColorYellow)
	dst.SetColored(cx, cy, g.avatar.Orientation().Glyph(), core.ColorBrightYellow)
}

func (g *Game) drawProjectile(dst *core.Screen, inner core.Rect) {
	dst.DrawRect(g.toCells(inner, g.projectile.Rect()), ProjectileChar, core.ColorRed)
}

// toCells maps a field rectangle in pixels to screen cells inside inner.
// Every entity covers at least one cell and is clipped to inner.
func (g *Game) toCells(inner core.Rect, r core.Rect) core.Rect {
	x0 := inner.X + r.Left()*inner.W/g.field.W
	x1 := inner.X + r.Right()*inner.W/g.field.W
	y0 := inner.Y + r.Top()*inner.H/g.field.H
	y1 := inner.Y + r.Bottom()*inner.H/g.field.H

	x0 = core.Clamp(x0, inner.X, inner.Right()-1)
	y0 = core.Clamp(y0, inner.Y, inner.Bottom()-1)
	x1 = core.Clamp(x1, x0+1, inner.Right())
	y1 = core.Clamp(y1, y0+1, inner.Bottom())

	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorBrightRed)

	dst.DrawTextCentered(boxY+1, title)
	dst.DrawTextCentered(boxY+3, subtitle)
}
