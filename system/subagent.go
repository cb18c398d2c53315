package system

import (
	"math"

	"github.com/gmuffiness/agentfloor/constant"
	"github.com/gmuffiness/agentfloor/engine"
	"github.com/gmuffiness/agentfloor/world"
)

// SubAgentSystem maintains the ephemeral satellite avatars that visualize
// delegated work. A parent qualifies while it is active and not itself a
// sub-agent; its satellites fade in to a capped alpha, orbit a semicircle
// beneath it, and fade out monotonically when the parent stops qualifying.
// Faded-out entries are hidden rather than destroyed so a parent that
// re-qualifies within the same frame budget reuses them without stutter.
//
// Runs after player and drag updates so connector anchors track the
// parent's current-frame position.
type SubAgentSystem struct {
	ctx     *engine.GameContext
	entries map[string][]*engine.SubAvatar // parent agent id -> satellites
}

// NewSubAgentSystem creates the sub-agent visualizer
func NewSubAgentSystem(ctx *engine.GameContext) *SubAgentSystem {
	return &SubAgentSystem{
		ctx:     ctx,
		entries: make(map[string][]*engine.SubAvatar),
	}
}

func (s *SubAgentSystem) Name() string {
	return "subagent"
}

func (s *SubAgentSystem) Update(dt float64) {
	g := s.ctx
	g.Subs = g.Subs[:0]

	for _, av := range g.Avatars {
		s.syncParent(av)
		s.fadeAndPlace(av, dt)
	}
}

// syncParent reconciles the satellite set with the parent's current
// sub-agent list
func (s *SubAgentSystem) syncParent(av *engine.Avatar) {
	a := av.Agent
	qualifies := a.Status == world.StatusActive && a.ParentID == "" && len(a.SubAgents) > 0

	entries := s.entries[a.ID]

	if !qualifies {
		for _, e := range entries {
			if !e.Hidden {
				e.FadingOut = true
			}
		}
		return
	}

	for _, name := range a.SubAgents {
		e := findSub(entries, name)
		if e == nil {
			e = &engine.SubAvatar{Parent: av, Name: name}
			entries = append(entries, e)
		}
		// Reuse hidden entries; alpha resumes from wherever it sits
		e.FadingOut = false
		e.Hidden = false
	}
	for _, e := range entries {
		if !containsName(a.SubAgents, e.Name) && !e.Hidden {
			e.FadingOut = true
		}
	}

	s.entries[a.ID] = entries
}

// fadeAndPlace steps alpha ramps, arranges visible satellites along the
// semicircle beneath the parent, and refreshes the badge count
func (s *SubAgentSystem) fadeAndPlace(av *engine.Avatar, dt float64) {
	g := s.ctx
	entries := s.entries[av.Agent.ID]

	visible := entries[:0:0]
	for _, e := range entries {
		if e.Hidden {
			continue
		}
		if e.FadingOut {
			// Monotonic: once despawn begins alpha only decreases
			e.Alpha -= constant.SubFadeRate * dt
			if e.Alpha <= 0 {
				e.Alpha = 0
				e.Hidden = true
				continue
			}
		} else if e.Alpha < constant.SubMaxAlpha {
			e.Alpha += constant.SubFadeRate * dt
			if e.Alpha > constant.SubMaxAlpha {
				e.Alpha = constant.SubMaxAlpha
			}
		}
		visible = append(visible, e)
	}

	// Semicircle below the parent, siblings evenly spaced
	n := len(visible)
	for i, e := range visible {
		angle := math.Pi * float64(i+1) / float64(n+1)
		e.X = av.X + math.Cos(angle)*constant.SubOrbitRadius
		e.Y = av.Y + math.Sin(angle)*constant.SubOrbitRadius
		g.Subs = append(g.Subs, e)
	}

	// Badge stays in sync with the live satellite set
	count := 0
	for _, e := range visible {
		if !e.FadingOut {
			count++
		}
	}
	av.SubCount = count
}

func findSub(entries []*engine.SubAvatar, name string) *engine.SubAvatar {
	for _, e := range entries {
		if e.Name == name {
			return e
		}
	}
	return nil
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
