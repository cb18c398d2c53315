package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/gmuffiness/agentfloor/engine"
	"github.com/gmuffiness/agentfloor/vmath"
	"github.com/gmuffiness/agentfloor/world"
)

var (
	labelBg   = tcell.NewHexColor(0x0f172a)
	labelFg   = tcell.NewHexColor(0xE2E8F0)
	metaFg    = tcell.NewHexColor(0x94A3B8)
	connector = tcell.NewHexColor(0x64748B)
)

// AvatarRenderer paints agent avatars, their sub-agent satellites with
// connector lines, name labels, status badges, and the hover tooltip. A
// lifted (dragged) avatar is drawn last so it sits above its neighbors.
type AvatarRenderer struct{}

func NewAvatarRenderer() *AvatarRenderer { return &AvatarRenderer{} }

func (r *AvatarRenderer) Draw(g *engine.GameContext, b *Buffer) {
	r.drawSubs(g, b)

	var lifted *engine.Avatar
	for _, av := range g.Avatars {
		if av.Lifted {
			lifted = av
			continue
		}
		r.drawAvatar(g, b, av)
	}
	if lifted != nil {
		r.drawAvatar(g, b, lifted)
	}

	// tooltip last so no neighbor paints over it
	for _, av := range g.Avatars {
		if av.Hovered && !av.Lifted {
			r.drawTooltip(g, b, av)
		}
	}
}

// drawSubs paints connector lines first, then the satellites on top
func (r *AvatarRenderer) drawSubs(g *engine.GameContext, b *Buffer) {
	for _, sub := range g.Subs {
		if sub.Hidden || sub.Parent == nil {
			continue
		}
		px, py := g.Camera.WorldToScreen(sub.Parent.X, sub.Parent.Y)
		sx, sy := g.Camera.WorldToScreen(sub.X, sub.Y)
		lineStyle := tcell.StyleDefault.Foreground(Dim(connector, sub.Alpha))
		for _, p := range vmath.LinePoints(px, py, sx, sy) {
			if (p.X == px && p.Y == py) || (p.X == sx && p.Y == sy) {
				continue
			}
			b.Set(p.X, p.Y, '·', lineStyle)
		}
	}
	for _, sub := range g.Subs {
		if sub.Hidden || sub.Parent == nil {
			continue
		}
		sx, sy := g.Camera.WorldToScreen(sub.X, sub.Y)
		fg := Dim(VendorColor(sub.Parent.Agent.Vendor), sub.Alpha)
		b.Set(sx, sy, '∘', tcell.StyleDefault.Foreground(fg))
		if name := shortName(sub.Name, 8); g.Camera.Zoom >= 1 {
			b.TextCentered(sx, sy+1, name, tcell.StyleDefault.Foreground(Dim(metaFg, sub.Alpha)))
		}
	}
}

func (r *AvatarRenderer) drawAvatar(g *engine.GameContext, b *Buffer, av *engine.Avatar) {
	sx, sy := g.Camera.WorldToScreen(av.X, av.Y)
	if sx < -1 || sy < -1 || sx > b.Width() || sy > b.Height() {
		return
	}

	fg := Dim(VendorColor(av.Agent.Vendor), av.Alpha)
	style := tcell.StyleDefault.Foreground(fg)
	if av.Scale > 1.0 {
		style = style.Bold(true)
	}
	if av.Lifted {
		style = style.Reverse(true)
	}

	glyph := AvatarGlyph(av.Agent.Name)
	b.Set(sx, sy, glyph, style)

	// status badge at the shoulder
	badge := tcell.StyleDefault.Foreground(Dim(StatusColor(av.Agent.Status), av.Alpha))
	b.Set(sx+1, sy-1, '●', badge)

	// activity bubble overhead: errored agents demand attention, active
	// ones show they are mid-task
	switch av.Agent.Status {
	case world.StatusError:
		b.Set(sx, sy-1, '!', tcell.StyleDefault.Foreground(StatusColor(world.StatusError)).Bold(true))
	case world.StatusActive:
		b.Set(sx, sy-1, '…', tcell.StyleDefault.Foreground(Dim(labelFg, av.Alpha)))
	}

	// sub-agent count badge
	if av.SubCount > 0 {
		b.Text(sx+2, sy-1, fmt.Sprintf("+%d", av.SubCount),
			tcell.StyleDefault.Foreground(labelFg).Background(labelBg))
	}

	// name plate under the avatar
	label := shortName(av.Agent.Name, 12)
	plate := tcell.StyleDefault.Foreground(Dim(labelFg, av.Alpha)).Background(labelBg)
	if g.SelectedAgentID == av.Agent.ID {
		plate = plate.Foreground(fg).Bold(true)
	}
	b.TextCentered(sx, sy+1, label, plate)
}

func (r *AvatarRenderer) drawTooltip(g *engine.GameContext, b *Buffer, av *engine.Avatar) {
	sx, sy := g.Camera.WorldToScreen(av.X, av.Y)
	bg := tcell.StyleDefault.Background(labelBg)

	name := av.Agent.Name
	meta := fmt.Sprintf("%s | $%.0f/mo", av.Agent.Model, av.Agent.MonthlyCost)
	w := len(name)
	if len(meta) > w {
		w = len(meta)
	}
	w += 2

	y := sy - 3
	b.FillRect(sx-w/2, y, w, 2, ' ', bg)
	b.TextCentered(sx, y, name, bg.Foreground(tcell.ColorWhite).Bold(true))
	b.TextCentered(sx, y+1, meta, bg.Foreground(metaFg))
}

func shortName(name string, max int) string {
	runes := []rune(name)
	if len(runes) > max {
		return string(runes[:max-1]) + "…"
	}
	return name
}

// StatusLabel is the human-readable status string used by overlays
func StatusLabel(s world.Status) string {
	switch s {
	case world.StatusActive:
		return "ACTIVE"
	case world.StatusIdle:
		return "IDLE"
	case world.StatusError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
