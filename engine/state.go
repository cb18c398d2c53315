package engine

import (
	"github.com/gmuffiness/agentfloor/world"
)

// PlayerDir is the facing row of the player sprite
type PlayerDir uint8

const (
	DirDown PlayerDir = iota
	DirUp
	DirSide // flipped horizontally when facing left
)

// Player is the client-local keyboard-driven character. Never persisted;
// re-spawned at the fixed spawn point on every mount.
type Player struct {
	X, Y float64
	Name string

	Dir         PlayerDir
	FacingRight bool
	Frame       int // index into constant.WalkCycle
	WalkTimer   float64
	Moving      bool

	Nearest     *Avatar // nearest agent within interaction radius, or nil
	NearestDist float64
}

// Avatar is the live render state of one agent. X/Y are authoritative while
// a drag is in flight; BaseY anchors the idle bob.
type Avatar struct {
	Agent *world.Agent
	Dept  *world.Department

	X, Y  float64
	BaseY float64

	Scale     float64
	Alpha     float64
	WalkFrame int
	Hovered   bool
	Lifted    bool // raised draw order while dragged

	SubCount int // live sub-agent badge value
}

// SubAvatar is an ephemeral satellite avatar orbiting a qualifying parent.
// Hidden entries are kept for reuse instead of destroyed, avoiding a respawn
// stutter when the parent re-qualifies within the same frame budget.
type SubAvatar struct {
	Parent *Avatar
	Name   string

	X, Y      float64
	Alpha     float64
	FadingOut bool
	Hidden    bool
}

// DragState is the single global drag slot: at most one avatar may be
// dragged system-wide. All mutation happens on the frame loop; pointer
// events are replayed in order there.
type DragState struct {
	Active bool
	Avatar *Avatar

	StartX, StartY   float64 // avatar world position at drag start
	OffsetX, OffsetY float64 // pointer-to-avatar offset
	Moved            bool    // displacement exceeded the click threshold
}

// Reset clears the slot without committing anything
func (d *DragState) Reset() {
	*d = DragState{}
}
