package constant

import "time"

// Player Movement & Interaction
const (
	// PlayerSpeed is the walk speed in pixels per second (axial and diagonal)
	PlayerSpeed = 200.0

	// PlayerHitboxHalfW / PlayerHitboxHalfH are the collision half-extents
	PlayerHitboxHalfW = 6.0
	PlayerHitboxHalfH = 8.0

	// InteractionRadius is the nearest-agent detection radius in pixels
	InteractionRadius = 70.0

	// WalkFrameInterval is the time between walk-cycle frame advances
	WalkFrameInterval = 0.15

	// KeyHoldDuration keeps a directional key "held" after a press; terminal
	// key auto-repeat refreshes the hold while the key stays down
	KeyHoldDuration = 150 * time.Millisecond

	// InteractLatchDuration bounds how long an unconsumed interact press
	// stays armed before it expires
	InteractLatchDuration = 250 * time.Millisecond
)

// WalkCycle is the 4-phase frame sequence: standing, step-A, standing, step-B
var WalkCycle = [4]int{1, 0, 1, 2}
