package system

import (
	"time"

	"github.com/gmuffiness/agentfloor/constant"
	"github.com/gmuffiness/agentfloor/engine"
	"github.com/gmuffiness/agentfloor/event"
	"github.com/gmuffiness/agentfloor/input"
	"github.com/gmuffiness/agentfloor/vmath"
	"github.com/gmuffiness/agentfloor/world"
)

// DragSystem routes pointer events: the global single-slot avatar drag,
// click-vs-drag disambiguation, room single/double clicks, hover tooltips,
// and minimap navigation clicks. Pointer events are replayed in arrival
// order so press/move/release for one gesture stay strictly sequenced.
//
// Concurrent drags are deliberately not supported: a press while the slot
// is occupied is ignored.
type DragSystem struct {
	ctx *engine.GameContext

	lastRoomID string
	lastRoomAt time.Time

	pendingDeptID string
	pendingAt     time.Time
}

// NewDragSystem creates the pointer controller
func NewDragSystem(ctx *engine.GameContext) *DragSystem {
	return &DragSystem{ctx: ctx}
}

func (s *DragSystem) Name() string {
	return "drag"
}

func (s *DragSystem) Update(dt float64) {
	g := s.ctx
	now := g.Time.Now()

	for _, pe := range g.Frame.Pointer {
		switch pe.Action {
		case input.PointerPress:
			s.onPress(pe, now)
		case input.PointerMove:
			s.onMove(pe)
		case input.PointerRelease:
			s.onRelease(now)
		}
	}

	// A deferred room click becomes a selection once the double-click
	// window has passed without a second press
	if s.pendingDeptID != "" && now.Sub(s.pendingAt) >= constant.ClickSelectDelay {
		g.Events.Push(event.Event{
			Type:    event.TypeDepartmentSelected,
			At:      now,
			Payload: &event.DepartmentSelectedPayload{DeptID: s.pendingDeptID},
		})
		s.pendingDeptID = ""
	}
}

func (s *DragSystem) onPress(pe input.PointerEvent, now time.Time) {
	g := s.ctx

	if x, y, ok := s.minimapWorldPoint(pe); ok {
		g.Events.Push(event.Event{
			Type: event.TypeCameraAnimate,
			At:   now,
			Payload: &event.CameraAnimatePayload{
				X: x, Y: y,
				Duration: constant.MinimapAnimateTime,
			},
		})
		return
	}

	wx, wy := g.Camera.ScreenToWorld(pe.X, pe.Y)

	if av := g.AvatarAt(wx, wy); av != nil {
		if g.Drag.Active {
			return // single drag slot; concurrent pointers are ignored
		}
		g.Drag = engine.DragState{
			Active:  true,
			Avatar:  av,
			StartX:  av.X,
			StartY:  av.Y,
			OffsetX: wx - av.X,
			OffsetY: wy - av.Y,
		}
		av.Lifted = true
		av.Scale = constant.DragLiftScale
		return
	}

	if dept := g.RoomAt(wx, wy); dept != nil {
		if s.lastRoomID == dept.ID && now.Sub(s.lastRoomAt) < constant.DoubleClickWindow {
			// Double-click: zoom to the room center, drop the pending select
			s.pendingDeptID = ""
			r := g.Geo.DeptRects[dept.ID]
			g.Events.Push(event.Event{
				Type: event.TypeCameraAnimate,
				At:   now,
				Payload: &event.CameraAnimatePayload{
					X:        r.X + r.W/2,
					Y:        r.Y + r.H/2,
					Zoom:     constant.RoomZoom,
					Duration: constant.CameraAnimateTime,
				},
			})
		} else {
			s.pendingDeptID = dept.ID
			s.pendingAt = now
		}
		s.lastRoomID = dept.ID
		s.lastRoomAt = now
	}
}

func (s *DragSystem) onMove(pe input.PointerEvent) {
	g := s.ctx
	wx, wy := g.Camera.ScreenToWorld(pe.X, pe.Y)

	if !g.Drag.Active {
		s.updateHover(wx, wy)
		return
	}

	d := &g.Drag
	nx := wx - d.OffsetX
	ny := wy - d.OffsetY

	if !d.Moved && vmath.Dist(nx, ny, d.StartX, d.StartY) > constant.DragThreshold {
		// Past the threshold this gesture is a drag for its remainder
		d.Moved = true
	}
	if d.Moved {
		// Live position: proximity scans and sub-agent anchoring see it
		d.Avatar.X = nx
		d.Avatar.Y = ny
		d.Avatar.BaseY = ny
	}
}

// onRelease ends the gesture. A release reported anywhere on the terminal,
// including outside the floor viewport, is handled identically so the drag
// can never stick.
func (s *DragSystem) onRelease(now time.Time) {
	g := s.ctx
	if !g.Drag.Active {
		return
	}
	d := &g.Drag
	av := d.Avatar

	av.Lifted = false
	av.Scale = 1.0

	if d.Moved {
		// Commit to the data model; persistence is fire-and-forget and the
		// visual result stands regardless of the write's outcome
		av.Agent.Position = world.Position{X: av.X, Y: av.Y}
		av.BaseY = av.Y
		g.Events.Push(event.Event{
			Type: event.TypePositionCommitted,
			At:   now,
			Payload: &event.PositionCommittedPayload{
				AgentID: av.Agent.ID,
				X:       av.X,
				Y:       av.Y,
			},
		})
	} else {
		g.Events.Push(event.Event{
			Type:    event.TypeAgentSelected,
			At:      now,
			Payload: &event.AgentSelectedPayload{AgentID: av.Agent.ID},
		})
	}

	d.Reset()
}

func (s *DragSystem) updateHover(wx, wy float64) {
	g := s.ctx
	hit := g.AvatarAt(wx, wy)
	for _, av := range g.Avatars {
		av.Hovered = av == hit
	}
}

// minimapWorldPoint converts a pointer press inside the minimap panel to
// the world coordinate it points at
func (s *DragSystem) minimapWorldPoint(pe input.PointerEvent) (float64, float64, bool) {
	g := s.ctx
	mx, my, mw, mh := g.MinimapBounds()
	if pe.X < mx || pe.X >= mx+mw || pe.Y < my || pe.Y >= my+mh {
		return 0, 0, false
	}
	b := g.Geo.Bounds
	wx := b.X + (float64(pe.X-mx)+0.5)/float64(mw)*b.W
	wy := b.Y + (float64(pe.Y-my)+0.5)/float64(mh)*b.H
	return wx, wy, true
}
