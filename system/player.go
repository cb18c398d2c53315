package system

import (
	"math"

	"github.com/gmuffiness/agentfloor/constant"
	"github.com/gmuffiness/agentfloor/engine"
	"github.com/gmuffiness/agentfloor/event"
	"github.com/gmuffiness/agentfloor/input"
	"github.com/gmuffiness/agentfloor/vmath"
	"github.com/gmuffiness/agentfloor/world"
)

// PlayerSystem owns player movement, facing, the walk cycle, and proximity
// interaction. It runs first each frame so collision-resolved positions are
// visible to the sub-agent and animation systems in the same frame.
type PlayerSystem struct {
	ctx *engine.GameContext
}

// NewPlayerSystem creates the player controller
func NewPlayerSystem(ctx *engine.GameContext) *PlayerSystem {
	return &PlayerSystem{ctx: ctx}
}

func (s *PlayerSystem) Name() string {
	return "player"
}

// Update samples held keys, resolves per-axis collision (wall sliding),
// advances the walk cycle, and scans for the nearest agent in range
func (s *PlayerSystem) Update(dt float64) {
	g := s.ctx
	p := &g.Player

	keys := g.Frame.Keys
	if g.DialogueOpen() {
		// The overlay swallows all movement and interact input while open
		keys = input.Keys{}
	}

	dx, dy := 0.0, 0.0
	if keys.Left {
		dx--
	}
	if keys.Right {
		dx++
	}
	if keys.Up {
		dy--
	}
	if keys.Down {
		dy++
	}
	if dx != 0 && dy != 0 {
		// Diagonal speed equals axial speed
		dx, dy = vmath.Normalize2D(dx, dy)
	}

	p.Moving = dx != 0 || dy != 0

	if p.Moving {
		// Horizontal input wins the facing; the side row flips for left
		switch {
		case dx < 0:
			p.Dir = engine.DirSide
			p.FacingRight = false
		case dx > 0:
			p.Dir = engine.DirSide
			p.FacingRight = true
		case dy < 0:
			p.Dir = engine.DirUp
		case dy > 0:
			p.Dir = engine.DirDown
		}

		newX := p.X + dx*constant.PlayerSpeed*dt
		newY := p.Y + dy*constant.PlayerSpeed*dt

		// Per-axis tests allow sliding along the unblocked axis
		if !world.Blocked(newX, p.Y, g.Geo.Rooms) {
			p.X = newX
		}
		if !world.Blocked(p.X, newY, g.Geo.Rooms) {
			p.Y = newY
		}

		p.WalkTimer += dt
		if p.WalkTimer >= constant.WalkFrameInterval {
			p.WalkTimer = 0
			p.Frame = (p.Frame + 1) % len(constant.WalkCycle)
		}
	} else {
		p.Frame = 0
		p.WalkTimer = 0
	}

	s.scanProximity()

	if keys.Interact && p.Nearest != nil {
		// Consume the latch so the press cannot re-trigger next frame
		g.Input.ConsumeInteract()
		g.Events.Push(event.Event{
			Type: event.TypeDialogueRequested,
			At:   g.Time.Now(),
			Payload: &event.DialoguePayload{
				AgentID: p.Nearest.Agent.ID,
				Name:    p.Nearest.Agent.Name,
			},
		})
	}
}

// scanProximity tracks the single nearest agent within the interaction
// radius, reading live avatar positions so in-flight drags count
func (s *PlayerSystem) scanProximity() {
	g := s.ctx
	p := &g.Player

	p.Nearest = nil
	minDist := math.Inf(1)
	for _, av := range g.Avatars {
		dist := vmath.Dist(p.X, p.Y, av.X, av.Y)
		if dist < constant.InteractionRadius && dist < minDist {
			minDist = dist
			p.Nearest = av
		}
	}
	p.NearestDist = minDist

	if p.Nearest != nil {
		g.NearbyName = p.Nearest.Agent.Name
	} else {
		g.NearbyName = ""
	}
}
