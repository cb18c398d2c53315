package input

// PointerAction represents the type of pointer event
type PointerAction uint8

const (
	PointerNone PointerAction = iota
	PointerPress
	PointerMove
	PointerRelease
)

// PointerEvent is a decoded mouse event in screen cell coordinates, ordered
// as received. The drag controller replays the frame's events in order so
// press/move/release for one gesture stay strictly sequenced.
type PointerEvent struct {
	Action PointerAction
	X, Y   int
}

// String returns a human-readable action name
func (a PointerAction) String() string {
	switch a {
	case PointerPress:
		return "Press"
	case PointerMove:
		return "Move"
	case PointerRelease:
		return "Release"
	default:
		return "None"
	}
}
