package constant

import "time"

// Camera / Viewport
const (
	// ZoomMin / ZoomMax clamp the camera zoom factor
	ZoomMin = 0.3
	ZoomMax = 3.0

	// ZoomWheelStep is the multiplicative zoom step per wheel notch
	ZoomWheelStep = 1.1

	// RoomZoom is the target zoom when double-clicking a room
	RoomZoom = 1.8

	// CameraAnimateTime is the ease duration for room/agent zooms
	CameraAnimateTime = 400 * time.Millisecond

	// MinimapAnimateTime is the ease duration for minimap pans
	MinimapAnimateTime = 300 * time.Millisecond

	// PxPerCellX / PxPerCellY map world pixels to terminal cells at zoom 1.
	// The vertical scale doubles the horizontal one to match the ~1:2 aspect
	// of a terminal cell.
	PxPerCellX = 8.0
	PxPerCellY = 16.0
)

// Drag & Drop
const (
	// DragThreshold is the world-space displacement that turns a click into a drag
	DragThreshold = 5.0

	// DragLiftScale enlarges the dragged avatar slightly
	DragLiftScale = 1.1

	// DoubleClickWindow separates a room double-click from two single clicks
	DoubleClickWindow = 350 * time.Millisecond

	// ClickSelectDelay defers a room selection long enough to detect a
	// double-click
	ClickSelectDelay = 300 * time.Millisecond
)

// Minimap (terminal cells)
const (
	MinimapWidth  = 36
	MinimapHeight = 12
)
