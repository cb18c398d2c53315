package system

import (
	"math"

	"github.com/gmuffiness/agentfloor/constant"
	"github.com/gmuffiness/agentfloor/engine"
	"github.com/gmuffiness/agentfloor/world"
)

// AvatarAnimSystem applies the idle animations: floating bob and walk-frame
// cycling for active agents, scale pulse for errored ones, dimming for idle
// ones. The avatar held by the drag slot is excluded by identity so a
// dragged avatar neither bobs nor pulses mid-drag.
type AvatarAnimSystem struct {
	ctx       *engine.GameContext
	walkTimer float64
}

// NewAvatarAnimSystem creates the idle animation driver
func NewAvatarAnimSystem(ctx *engine.GameContext) *AvatarAnimSystem {
	return &AvatarAnimSystem{ctx: ctx}
}

func (s *AvatarAnimSystem) Name() string {
	return "avatar-anim"
}

func (s *AvatarAnimSystem) Update(dt float64) {
	g := s.ctx

	s.walkTimer += dt
	advance := false
	if s.walkTimer >= constant.AgentWalkInterval {
		s.walkTimer -= constant.AgentWalkInterval
		advance = true
	}

	for _, av := range g.Avatars {
		if g.Drag.Active && g.Drag.Avatar == av {
			continue
		}

		switch av.Agent.Status {
		case world.StatusActive:
			av.Y = av.BaseY + math.Sin(g.Elapsed*constant.BobRate+av.BaseY)*constant.BobAmplitude
			if advance {
				av.WalkFrame = (av.WalkFrame + 1) % 3
			}
			av.Alpha = 1.0
			if av.Hovered {
				av.Scale = constant.HoverScale
			} else {
				av.Scale = 1.0
			}
		case world.StatusError:
			av.Y = av.BaseY
			av.Scale = constant.ErrorPulseBase + math.Sin(g.Elapsed*constant.ErrorPulseRate)*constant.ErrorPulseAmp
			av.Alpha = 1.0
		default: // idle
			av.Y = av.BaseY
			av.Scale = 1.0
			av.Alpha = constant.IdleAlpha
		}
	}
}
