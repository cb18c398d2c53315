package engine

import (
	"log/slog"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/gmuffiness/agentfloor/constant"
	"github.com/gmuffiness/agentfloor/event"
	"github.com/gmuffiness/agentfloor/input"
	"github.com/gmuffiness/agentfloor/world"
)

// PositionWriter persists an agent's position after a completed drag.
// Implementations must not block: the frame loop calls this inline.
type PositionWriter interface {
	SavePosition(orgID, agentID string, x, y float64)
}

// Recorder appends one session-log entry; nil-checked before use
type Recorder interface {
	Record(v any) error
}

// FrameObserver receives loop health measurements
type FrameObserver interface {
	ObserveFrame(seconds float64)
	IncPositionCommits()
	IncSnapshotsDropped()
}

// GameContext holds all engine state for one mounted floor view
type GameContext struct {
	Screen tcell.Screen

	Org *world.Organization
	Geo world.Geometry

	Player     Player
	Avatars    []*Avatar
	AvatarByID map[string]*Avatar
	Subs       []*SubAvatar
	Drag       DragState
	Camera     *Camera

	Events *event.Queue
	Input  *input.State
	Time   TimeProvider

	// Frame is the current tick's input sample
	Frame input.Frame
	// Elapsed is total run time in seconds, driving idle animations
	Elapsed float64

	SelectedAgentID string
	SelectedDeptID  string

	// DialogueAgent non-nil means the dialogue overlay is open and the
	// player controller suppresses movement and interact processing
	DialogueAgent *world.Agent

	// NearbyName is the observable toast value: nearest agent name or ""
	NearbyName string

	Positions PositionWriter // may be nil
	Recorder  Recorder       // may be nil
	Observer  FrameObserver  // may be nil

	Log *slog.Logger
}

// NewGameContext builds engine state from loaded organization data. The
// caller finishes all loading before constructing; the frame loop itself
// never waits on I/O.
func NewGameContext(screen tcell.Screen, org *world.Organization, playerName string, tp TimeProvider, logger *slog.Logger) *GameContext {
	if tp == nil {
		tp = NewMonotonicTimeProvider()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	geo := world.Build(org)

	ctx := &GameContext{
		Screen:     screen,
		Org:        org,
		Geo:        geo,
		Events:     event.NewQueue(),
		Input:      input.NewState(),
		Time:       tp,
		AvatarByID: make(map[string]*Avatar),
		Log:        logger,
	}

	ctx.Player = Player{
		X:    geo.Spawn.X,
		Y:    geo.Spawn.Y,
		Name: playerName,
		Dir:  DirDown,
	}

	if org != nil {
		org.EachAgent(func(d *world.Department, a *world.Agent) {
			if a == nil || a.ID == "" {
				return // fail-soft: malformed agents are skipped
			}
			av := &Avatar{
				Agent: a,
				Dept:  d,
				X:     a.Position.X,
				Y:     a.Position.Y,
				BaseY: a.Position.Y,
				Scale: 1.0,
				Alpha: statusAlpha(a.Status),
			}
			ctx.Avatars = append(ctx.Avatars, av)
			ctx.AvatarByID[a.ID] = av
		})
	}

	ctx.Camera = NewCamera(ctx.Player.X, ctx.Player.Y)
	ctx.SyncViewport()

	return ctx
}

// SyncViewport recomputes the camera viewport from the terminal size,
// reserving the bottom row for the status bar
func (g *GameContext) SyncViewport() {
	w, h := g.Screen.Size()
	vh := h - 1
	if vh < 1 {
		vh = 1
	}
	g.Camera.SetViewport(0, 0, w, vh)
}

// DialogueOpen reports whether the dialogue overlay is up
func (g *GameContext) DialogueOpen() bool {
	return g.DialogueAgent != nil
}

// OrgID returns the organization id, or "" for an empty world
func (g *GameContext) OrgID() string {
	if g.Org == nil {
		return ""
	}
	return g.Org.ID
}

// AvatarAt returns the topmost avatar whose hit box contains the world
// point, preferring a lifted (dragged) avatar
func (g *GameContext) AvatarAt(wx, wy float64) *Avatar {
	var hit *Avatar
	for _, av := range g.Avatars {
		if math.Abs(wx-av.X) <= constant.AvatarHitHalfW && math.Abs(wy-av.Y) <= constant.AvatarHitHalfH {
			if hit == nil || av.Lifted {
				hit = av
			}
		}
	}
	return hit
}

// RoomAt returns the department whose room rectangle contains the world
// point, or nil
func (g *GameContext) RoomAt(wx, wy float64) *world.Department {
	if g.Org == nil {
		return nil
	}
	for _, d := range g.Org.Departments {
		if r, ok := g.Geo.DeptRects[d.ID]; ok && r.Contains(wx, wy) {
			return d
		}
	}
	return nil
}

// Teardown synchronously clears interaction state: the open dialogue, the
// drag slot, and all accumulated input. A re-mount never sees stale state.
func (g *GameContext) Teardown() {
	if g.Drag.Active && g.Drag.Avatar != nil {
		g.Drag.Avatar.Lifted = false
		g.Drag.Avatar.Scale = 1.0
	}
	g.Drag.Reset()
	g.DialogueAgent = nil
	g.NearbyName = ""
	g.Input.Reset()
}

func statusAlpha(s world.Status) float64 {
	if s == world.StatusIdle {
		return constant.IdleAlpha
	}
	return 1.0
}
