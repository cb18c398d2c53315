package system

import (
	"math"

	"github.com/gmuffiness/agentfloor/constant"
	"github.com/gmuffiness/agentfloor/engine"
	"github.com/gmuffiness/agentfloor/event"
)

// CameraSystem keeps the viewport centered on the player with zero lag,
// steps programmatic animate-to eases, and applies wheel/key zoom within
// the clamp range. Keyboard movement cancels an in-flight ease: the camera
// can be moved by several uncoordinated sources, and the player always wins.
type CameraSystem struct {
	ctx *engine.GameContext
}

// NewCameraSystem creates the viewport controller
func NewCameraSystem(ctx *engine.GameContext) *CameraSystem {
	return &CameraSystem{ctx: ctx}
}

func (s *CameraSystem) Name() string {
	return "camera"
}

// EventTypes returns events this system handles
func (s *CameraSystem) EventTypes() []event.Type {
	return []event.Type{event.TypeCameraAnimate}
}

// HandleEvent starts an animate-to ease requested by a room double-click,
// minimap click, or zoom-to-agent action
func (s *CameraSystem) HandleEvent(ev event.Event) {
	p, ok := ev.Payload.(*event.CameraAnimatePayload)
	if !ok {
		return
	}
	s.ctx.Camera.AnimateTo(p.X, p.Y, p.Zoom, p.Duration)
}

func (s *CameraSystem) Update(dt float64) {
	g := s.ctx
	cam := g.Camera

	if g.Frame.Wheel != 0 {
		cam.ZoomBy(math.Pow(constant.ZoomWheelStep, float64(g.Frame.Wheel)))
	}
	if g.Frame.FitAll {
		b := g.Geo.Bounds
		cam.AnimateTo(b.X+b.W/2, b.Y+b.H/2, cam.FitZoom(b), constant.CameraAnimateTime)
	}

	if g.Player.Moving {
		cam.CancelAnimation()
	}

	if cam.Animating() {
		cam.StepAnimation(dt)
		return
	}
	cam.CenterOn(g.Player.X, g.Player.Y)
}
