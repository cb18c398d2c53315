package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/gmuffiness/agentfloor/engine"
)

var (
	minimapBg     = tcell.NewHexColor(0x0f172a)
	minimapRoom   = tcell.NewHexColor(0x334155)
	minimapBorder = tcell.NewHexColor(0x475569)
	minimapView   = tcell.NewHexColor(0x94A3B8)
)

// MinimapRenderer paints the overview panel in the top-right corner: room
// footprints, per-agent status dots, the player marker, and the camera's
// visible-rect outline. The world-to-panel mapping matches the pointer
// routing in the drag controller, so clicking a minimap point pans the
// camera to the world position drawn there.
type MinimapRenderer struct{}

func NewMinimapRenderer() *MinimapRenderer { return &MinimapRenderer{} }

func (r *MinimapRenderer) Draw(g *engine.GameContext, b *Buffer) {
	mx, my, mw, mh := g.MinimapBounds()
	bounds := g.Geo.Bounds
	if bounds.W <= 0 || bounds.H <= 0 {
		return
	}

	panel := tcell.StyleDefault.Background(minimapBg)
	b.FillRect(mx, my, mw, mh, ' ', panel)

	cell := func(wx, wy float64) (int, int) {
		cx := mx + int((wx-bounds.X)/bounds.W*float64(mw))
		cy := my + int((wy-bounds.Y)/bounds.H*float64(mh))
		return clampInt(cx, mx, mx+mw-1), clampInt(cy, my, my+mh-1)
	}

	// room footprints
	roomStyle := panel.Foreground(minimapBorder).Background(minimapRoom)
	for _, room := range g.Geo.Rooms {
		x0, y0 := cell(room.Rect.X, room.Rect.Y)
		x1, y1 := cell(room.Rect.Right(), room.Rect.Bottom())
		b.FillRect(x0, y0, x1-x0+1, y1-y0+1, ' ', roomStyle)
	}

	// camera visible-rect outline
	r.drawViewRect(g, b, cell)

	// agent status dots over everything but the player
	for _, av := range g.Avatars {
		cx, cy := cell(av.X, av.Y)
		style := tcell.StyleDefault.Foreground(StatusColor(av.Agent.Status)).Background(minimapRoom)
		b.Set(cx, cy, '•', style)
	}

	px, py := cell(g.Player.X, g.Player.Y)
	b.Set(px, py, '@', tcell.StyleDefault.Foreground(playerColor).Background(minimapRoom).Bold(true))
}

func (r *MinimapRenderer) drawViewRect(g *engine.GameContext, b *Buffer, cell func(float64, float64) (int, int)) {
	vr := g.Camera.VisibleRect()
	x0, y0 := cell(vr.X, vr.Y)
	x1, y1 := cell(vr.Right(), vr.Bottom())
	style := tcell.StyleDefault.Foreground(minimapView)

	for cx := x0; cx <= x1; cx++ {
		overlayRune(b, cx, y0, '─', style)
		overlayRune(b, cx, y1, '─', style)
	}
	for cy := y0; cy <= y1; cy++ {
		overlayRune(b, x0, cy, '│', style)
		overlayRune(b, x1, cy, '│', style)
	}
	overlayRune(b, x0, y0, '┌', style)
	overlayRune(b, x1, y0, '┐', style)
	overlayRune(b, x0, y1, '└', style)
	overlayRune(b, x1, y1, '┘', style)
}

// overlayRune draws the outline rune while keeping the cell's background
func overlayRune(b *Buffer, x, y int, r rune, style tcell.Style) {
	prev := b.Get(x, y)
	_, bg, _ := prev.Style.Decompose()
	b.Set(x, y, r, style.Background(bg))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
