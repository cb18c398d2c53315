package render

import (
	"github.com/gmuffiness/agentfloor/engine"
)

// Layer draws one slice of the frame into the buffer
type Layer interface {
	Draw(g *engine.GameContext, b *Buffer)
}

// Orchestrator composes the fixed layer order into a single frame and
// flushes it: ground, rooms, avatars (subs and connectors first), player,
// minimap, then HUD and dialogue on top.
type Orchestrator struct {
	buf    *Buffer
	layers []Layer
}

// NewOrchestrator builds the standard layer stack for a mounted floor
func NewOrchestrator(g *engine.GameContext) *Orchestrator {
	w, h := g.Screen.Size()
	return &Orchestrator{
		buf: NewBuffer(w, h),
		layers: []Layer{
			NewGroundRenderer(g.Geo),
			NewRoomRenderer(),
			NewAvatarRenderer(),
			NewPlayerRenderer(),
			NewMinimapRenderer(),
			NewHudRenderer(),
		},
	}
}

// Frame is the engine render hook: draws all layers and flushes once
func (o *Orchestrator) Frame(g *engine.GameContext) {
	w, h := g.Screen.Size()
	if w != o.buf.Width() || h != o.buf.Height() {
		o.buf.Resize(w, h)
	}
	for _, l := range o.layers {
		l.Draw(g, o.buf)
	}
	o.buf.Flush(g.Screen)
}
