package engine

import (
	"context"
	"time"

	"github.com/gmuffiness/agentfloor/constant"
	"github.com/gmuffiness/agentfloor/event"
)

// System is a per-frame update unit. Systems run in registration order with
// a shared delta-time; none may block the loop.
type System interface {
	Name() string
	Update(dt float64)
}

// EventHandler receives dispatched engine events
type EventHandler interface {
	EventTypes() []event.Type
	HandleEvent(ev event.Event)
}

// maxFrameDt caps delta time across stalls (debugger, terminal suspend) so
// one long frame cannot teleport the player through a wall
const maxFrameDt = 0.1

// Game drives the frame loop: input sampling, system updates in fixed
// order, event dispatch, rendering, and snapshot publishing
type Game struct {
	Ctx *GameContext

	// Render draws the frame after all systems have updated
	Render func(*GameContext)
	// Sink receives periodic world snapshots; may be nil
	Sink SnapshotSink

	systems  []System
	handlers map[event.Type][]EventHandler

	lastSnapshot time.Time
}

// NewGame creates a loop around the given context
func NewGame(ctx *GameContext) *Game {
	return &Game{
		Ctx:      ctx,
		handlers: make(map[event.Type][]EventHandler),
	}
}

// AddSystem appends a system to the fixed update order. Systems that also
// implement EventHandler are registered for dispatch.
func (g *Game) AddSystem(s System) {
	g.systems = append(g.systems, s)
	if h, ok := s.(EventHandler); ok {
		g.Handle(h)
	}
}

// Handle registers a standalone event handler (audio service, recorders)
func (g *Game) Handle(h EventHandler) {
	for _, t := range h.EventTypes() {
		g.handlers[t] = append(g.handlers[t], h)
	}
}

// Run drives the loop until the context is cancelled or the player quits.
// All loading (store, organization, screen) finishes before Run starts; the
// loop itself never awaits I/O. Teardown is synchronous on exit.
func (g *Game) Run(ctx context.Context) error {
	defer g.Ctx.Teardown()

	ticker := time.NewTicker(constant.FrameUpdateInterval)
	defer ticker.Stop()

	last := g.Ctx.Time.Now()
	g.lastSnapshot = last

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		now := g.Ctx.Time.Now()
		dt := now.Sub(last).Seconds()
		last = now
		if dt > maxFrameDt {
			dt = maxFrameDt
		}

		if !g.Step(dt) {
			return nil
		}
	}
}

// Step advances exactly one frame. Returns false when the player quit.
// Exposed so tests can drive the loop deterministically.
func (g *Game) Step(dt float64) bool {
	ctx := g.Ctx
	now := ctx.Time.Now()

	ctx.Frame = ctx.Input.BeginFrame(now)
	if ctx.Frame.Quit {
		return false
	}
	if ctx.Frame.Resized {
		ctx.Screen.Sync()
		ctx.SyncViewport()
	}
	if ctx.Frame.Esc && ctx.DialogueOpen() {
		ctx.Events.Push(event.Event{Type: event.TypeDialogueClosed, At: now})
	}

	ctx.Elapsed += dt
	for _, s := range g.systems {
		s.Update(dt)
	}

	g.dispatch()

	if g.Render != nil {
		g.Render(ctx)
	}
	g.publishSnapshot(now)

	if ctx.Observer != nil {
		ctx.Observer.ObserveFrame(ctx.Time.Now().Sub(now).Seconds())
	}
	return true
}

// dispatch consumes this frame's events: engine-owned state transitions
// first, then registered handlers, then the session recorder
func (g *Game) dispatch() {
	ctx := g.Ctx
	for _, ev := range ctx.Events.Consume() {
		switch ev.Type {
		case event.TypeDialogueRequested:
			if p, ok := ev.Payload.(*event.DialoguePayload); ok && ctx.Org != nil {
				ctx.DialogueAgent = ctx.Org.FindAgent(p.AgentID)
			}
		case event.TypeDialogueClosed:
			ctx.DialogueAgent = nil
		case event.TypeAgentSelected:
			if p, ok := ev.Payload.(*event.AgentSelectedPayload); ok {
				ctx.SelectedAgentID = p.AgentID
			}
		case event.TypeDepartmentSelected:
			if p, ok := ev.Payload.(*event.DepartmentSelectedPayload); ok {
				ctx.SelectedDeptID = p.DeptID
			}
		case event.TypePositionCommitted:
			if p, ok := ev.Payload.(*event.PositionCommittedPayload); ok {
				if ctx.Positions != nil {
					ctx.Positions.SavePosition(ctx.OrgID(), p.AgentID, p.X, p.Y)
				}
				if ctx.Observer != nil {
					ctx.Observer.IncPositionCommits()
				}
			}
		}

		for _, h := range g.handlers[ev.Type] {
			h.HandleEvent(ev)
		}

		if ctx.Recorder != nil {
			if err := ctx.Recorder.Record(recordedEvent{
				At:      ev.At,
				Type:    int(ev.Type),
				Payload: ev.Payload,
			}); err != nil {
				ctx.Log.Warn("session record failed", "err", err)
			}
		}
	}
}

func (g *Game) publishSnapshot(now time.Time) {
	if g.Sink == nil || now.Sub(g.lastSnapshot) < constant.SnapshotInterval {
		return
	}
	g.lastSnapshot = now
	if !g.Sink.Publish(BuildSnapshot(g.Ctx)) {
		if g.Ctx.Observer != nil {
			g.Ctx.Observer.IncSnapshotsDropped()
		}
	}
}

type recordedEvent struct {
	At      time.Time `json:"at"`
	Type    int       `json:"type"`
	Payload any       `json:"payload,omitempty"`
}
