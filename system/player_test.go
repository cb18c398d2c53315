package system

import (
	"math"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gmuffiness/agentfloor/constant"
	"github.com/gmuffiness/agentfloor/engine"
	"github.com/gmuffiness/agentfloor/event"
	"github.com/gmuffiness/agentfloor/input"
	"github.com/gmuffiness/agentfloor/world"
)

// newTestContext builds an engine context around a single 200x150 room at
// the origin, with one agent parked inside it
func newTestContext(t *testing.T) (*engine.GameContext, *engine.MockTimeProvider) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	org := &world.Organization{
		ID: "org-test",
		Departments: []*world.Department{
			{
				ID: "dept-1", Name: "Backend",
				Layout:        world.Layout{X: 0, Y: 0, Width: 200, Height: 150},
				PrimaryVendor: world.VendorAnthropic,
				Agents: []*world.Agent{
					{ID: "agent-1", Name: "Worker One", Vendor: world.VendorAnthropic,
						Status: world.StatusActive, Position: world.Position{X: 60, Y: 60}},
				},
			},
		},
	}

	clock := engine.NewMockTimeProvider(time.Unix(1000, 0))
	return engine.NewGameContext(screen, org, "Tester", clock, nil), clock
}

// step runs one player update with the given held keys
func step(ctx *engine.GameContext, keys input.Keys, dt float64) {
	ctx.Frame = input.Frame{Keys: keys}
	NewPlayerSystem(ctx).Update(dt)
}

// TestDiagonalSpeedMatchesAxial verifies normalized diagonal movement
func TestDiagonalSpeedMatchesAxial(t *testing.T) {
	ctx, _ := newTestContext(t)
	p := &ctx.Player
	p.X, p.Y = 600, 400 // open ground, far from the room

	x0, y0 := p.X, p.Y
	step(ctx, input.Keys{Right: true, Down: true}, 0.1)

	moved := math.Hypot(p.X-x0, p.Y-y0)
	want := constant.PlayerSpeed * 0.1
	if math.Abs(moved-want) > 1e-9 {
		t.Errorf("diagonal displacement %v, want %v", moved, want)
	}
}

// TestWallSlide verifies per-axis collision lets the player slide along a wall
func TestWallSlide(t *testing.T) {
	ctx, _ := newTestContext(t)
	sys := NewPlayerSystem(ctx)
	p := &ctx.Player
	// Flush against the room's right wall, outside it
	p.X, p.Y = 210, 75

	ctx.Frame = input.Frame{Keys: input.Keys{Left: true, Down: true}}
	sys.Update(0.05)

	if p.X < 206 {
		t.Errorf("player pushed into the wall, x=%v", p.X)
	}
	if p.Y <= 75 {
		t.Errorf("player did not slide along the wall, y=%v", p.Y)
	}
}

// TestWalkThroughDoor verifies holding up from the spawn point carries the
// player through the door gap into the room interior
func TestWalkThroughDoor(t *testing.T) {
	ctx, _ := newTestContext(t)
	sys := NewPlayerSystem(ctx)
	p := &ctx.Player

	if p.X != 100 || p.Y != 160 {
		t.Fatalf("unexpected spawn (%v,%v)", p.X, p.Y)
	}

	ctx.Frame = input.Frame{Keys: input.Keys{Up: true}}
	for i := 0; i < 120; i++ { // 2 seconds at 60fps
		sys.Update(1.0 / 60.0)
	}

	if p.Y >= 150 {
		t.Fatalf("player never entered the room, y=%v", p.Y)
	}
	if p.Y < constant.WallThickness {
		t.Errorf("player escaped through the top wall, y=%v", p.Y)
	}
	if world.Blocked(p.X, p.Y, ctx.Geo.Rooms) {
		t.Errorf("player resting inside a wall at (%v,%v)", p.X, p.Y)
	}
}

// TestFacingFollowsInput verifies direction rows and horizontal priority
func TestFacingFollowsInput(t *testing.T) {
	ctx, _ := newTestContext(t)
	p := &ctx.Player
	p.X, p.Y = 600, 400

	step(ctx, input.Keys{Left: true}, 0.016)
	if p.Dir != engine.DirSide || p.FacingRight {
		t.Errorf("left: dir=%v facingRight=%v", p.Dir, p.FacingRight)
	}
	step(ctx, input.Keys{Right: true, Up: true}, 0.016)
	if p.Dir != engine.DirSide || !p.FacingRight {
		t.Error("horizontal input should win the facing")
	}
	step(ctx, input.Keys{Up: true}, 0.016)
	if p.Dir != engine.DirUp {
		t.Errorf("up: dir=%v", p.Dir)
	}
}

// TestWalkCycleAdvances verifies frame stepping while moving and reset on stop
func TestWalkCycleAdvances(t *testing.T) {
	ctx, _ := newTestContext(t)
	sys := NewPlayerSystem(ctx)
	p := &ctx.Player
	p.X, p.Y = 600, 400

	ctx.Frame = input.Frame{Keys: input.Keys{Right: true}}
	sys.Update(constant.WalkFrameInterval + 0.01)
	if p.Frame != 1 {
		t.Errorf("walk frame %d, want 1 after one interval", p.Frame)
	}

	ctx.Frame = input.Frame{}
	sys.Update(0.016)
	if p.Frame != 0 || p.Moving {
		t.Error("stopping should reset the walk cycle")
	}
}

// TestProximityToast verifies the nearest-agent scan drives the toast value
func TestProximityToast(t *testing.T) {
	ctx, _ := newTestContext(t)
	p := &ctx.Player

	p.X, p.Y = 60, 100 // 40px below agent-1, inside the radius
	step(ctx, input.Keys{}, 0.016)
	if p.Nearest == nil || p.Nearest.Agent.ID != "agent-1" {
		t.Fatal("expected agent-1 within interaction radius")
	}
	if ctx.NearbyName != "Worker One" {
		t.Errorf("toast %q, want Worker One", ctx.NearbyName)
	}

	p.X, p.Y = 600, 400
	step(ctx, input.Keys{}, 0.016)
	if p.Nearest != nil || ctx.NearbyName != "" {
		t.Error("expected no nearby agent far from the room")
	}
}

// TestInteractTriggersOnce verifies one press yields exactly one dialogue
// request and consumes the latch
func TestInteractTriggersOnce(t *testing.T) {
	ctx, clock := newTestContext(t)
	sys := NewPlayerSystem(ctx)
	ctx.Player.X, ctx.Player.Y = 60, 100

	ctx.Input.PressInteract(clock.Now())
	ctx.Frame = ctx.Input.BeginFrame(clock.Now())
	sys.Update(0.016)

	evs := ctx.Events.Consume()
	count := 0
	for _, ev := range evs {
		if ev.Type == event.TypeDialogueRequested {
			count++
			p := ev.Payload.(*event.DialoguePayload)
			if p.AgentID != "agent-1" {
				t.Errorf("dialogue target %q, want agent-1", p.AgentID)
			}
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly 1 dialogue request, got %d", count)
	}

	// Latch consumed: the same press cannot re-trigger next frame
	ctx.Frame = ctx.Input.BeginFrame(clock.Now())
	sys.Update(0.016)
	for _, ev := range ctx.Events.Consume() {
		if ev.Type == event.TypeDialogueRequested {
			t.Error("consumed interact press re-triggered a dialogue")
		}
	}
}

// TestInteractIgnoredWithNooneNear verifies the latch survives until expiry
// when no agent is in range
func TestInteractIgnoredWithNooneNear(t *testing.T) {
	ctx, clock := newTestContext(t)
	sys := NewPlayerSystem(ctx)
	ctx.Player.X, ctx.Player.Y = 600, 400

	ctx.Input.PressInteract(clock.Now())
	ctx.Frame = ctx.Input.BeginFrame(clock.Now())
	sys.Update(0.016)

	for _, ev := range ctx.Events.Consume() {
		if ev.Type == event.TypeDialogueRequested {
			t.Error("dialogue requested with no agent in range")
		}
	}
}

// TestDialogueSuppressesMovement verifies the overlay swallows input
func TestDialogueSuppressesMovement(t *testing.T) {
	ctx, _ := newTestContext(t)
	p := &ctx.Player
	p.X, p.Y = 600, 400
	ctx.DialogueAgent = ctx.Org.FindAgent("agent-1")

	x0, y0 := p.X, p.Y
	step(ctx, input.Keys{Right: true, Down: true}, 0.1)
	if p.X != x0 || p.Y != y0 {
		t.Errorf("player moved while dialogue open: (%v,%v)", p.X-x0, p.Y-y0)
	}
	if p.Moving {
		t.Error("player flagged as moving while dialogue open")
	}
}
