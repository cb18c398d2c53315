package system

import (
	"math"
	"testing"

	"github.com/gmuffiness/agentfloor/constant"
	"github.com/gmuffiness/agentfloor/engine"
	"github.com/gmuffiness/agentfloor/world"
)

// TestActiveBobStaysInAmplitude verifies the idle float stays bounded around
// the anchor
func TestActiveBobStaysInAmplitude(t *testing.T) {
	ctx, _ := newTestContext(t)
	sys := NewAvatarAnimSystem(ctx)
	av := ctx.AvatarByID["agent-1"]

	for i := 0; i < 300; i++ {
		ctx.Elapsed += 0.016
		sys.Update(0.016)
		if math.Abs(av.Y-av.BaseY) > constant.BobAmplitude+1e-9 {
			t.Fatalf("bob offset %v exceeds amplitude", av.Y-av.BaseY)
		}
	}
}

// TestErrorPulseBounds verifies the scale pulse range
func TestErrorPulseBounds(t *testing.T) {
	ctx, _ := newTestContext(t)
	sys := NewAvatarAnimSystem(ctx)
	av := ctx.AvatarByID["agent-1"]
	av.Agent.Status = world.StatusError

	lo := constant.ErrorPulseBase - constant.ErrorPulseAmp
	hi := constant.ErrorPulseBase + constant.ErrorPulseAmp
	for i := 0; i < 300; i++ {
		ctx.Elapsed += 0.016
		sys.Update(0.016)
		if av.Scale < lo-1e-9 || av.Scale > hi+1e-9 {
			t.Fatalf("pulse scale %v outside [%v,%v]", av.Scale, lo, hi)
		}
		if av.Y != av.BaseY {
			t.Fatal("errored avatar must not bob")
		}
	}
}

// TestIdleDimming verifies idle agents lose bob, pulse, and opacity
func TestIdleDimming(t *testing.T) {
	ctx, _ := newTestContext(t)
	sys := NewAvatarAnimSystem(ctx)
	av := ctx.AvatarByID["agent-1"]
	av.Agent.Status = world.StatusIdle

	ctx.Elapsed = 1.23
	sys.Update(0.016)
	if av.Alpha != constant.IdleAlpha {
		t.Errorf("idle alpha %v, want %v", av.Alpha, constant.IdleAlpha)
	}
	if av.Y != av.BaseY || av.Scale != 1.0 {
		t.Error("idle avatar should sit still at normal scale")
	}
}

// TestDraggedAvatarExcluded verifies the drag slot suppresses idle animation
func TestDraggedAvatarExcluded(t *testing.T) {
	ctx, _ := newTestContext(t)
	sys := NewAvatarAnimSystem(ctx)
	av := ctx.AvatarByID["agent-1"]
	ctx.Drag = engine.DragState{Active: true, Avatar: av}
	av.Scale = constant.DragLiftScale
	y0 := av.Y

	ctx.Elapsed = 2.0
	sys.Update(0.016)
	if av.Y != y0 || av.Scale != constant.DragLiftScale {
		t.Error("dragged avatar was animated")
	}
}

// TestHoverScaleApplied verifies hover enlarges an active avatar
func TestHoverScaleApplied(t *testing.T) {
	ctx, _ := newTestContext(t)
	sys := NewAvatarAnimSystem(ctx)
	av := ctx.AvatarByID["agent-1"]
	av.Hovered = true

	sys.Update(0.016)
	if av.Scale != constant.HoverScale {
		t.Errorf("hovered scale %v, want %v", av.Scale, constant.HoverScale)
	}
}

// TestWalkFrameCadence verifies the shared walk timer advances frames
func TestWalkFrameCadence(t *testing.T) {
	ctx, _ := newTestContext(t)
	sys := NewAvatarAnimSystem(ctx)
	av := ctx.AvatarByID["agent-1"]

	sys.Update(constant.AgentWalkInterval + 0.01)
	if av.WalkFrame != 1 {
		t.Errorf("walk frame %d, want 1 after one interval", av.WalkFrame)
	}
}
