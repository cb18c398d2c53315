package constant

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// SnapshotInterval is how often a world snapshot is published to the
	// observer stream
	SnapshotInterval = 250 * time.Millisecond
)

// Event Queue
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 1024

	// EventBufferMask is the bitmask for fast modulo operations (1024 - 1)
	EventBufferMask = 1023
)

// Persistence
const (
	// PositionQueueSize bounds the fire-and-forget position write queue.
	// Writes beyond capacity are dropped and logged.
	PositionQueueSize = 256
)
