package input

// Keys is the per-frame key sample consumed by the player controller
type Keys struct {
	Up       bool
	Down     bool
	Left     bool
	Right    bool
	Interact bool
}

// Any reports whether any directional key is held
func (k Keys) Any() bool {
	return k.Up || k.Down || k.Left || k.Right
}

// dir indexes the directional hold timers
type dir uint8

const (
	dirUp dir = iota
	dirDown
	dirLeft
	dirRight
	dirCount
)
