package input

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gmuffiness/agentfloor/constant"
)

// Frame is the input sample handed to systems once per tick
type Frame struct {
	Keys    Keys
	Pointer []PointerEvent
	Wheel   int // positive = zoom in
	FitAll  bool
	Esc     bool
	Quit    bool
	Resized bool
}

// State accumulates terminal events between frames. The pump goroutine feeds
// it; the frame loop drains it once per tick via BeginFrame.
//
// Terminals report key presses but never key releases, so a directional key
// counts as held for KeyHoldDuration after each press; the terminal's
// auto-repeat refreshes the hold while the key stays physically down. The
// interact key is a latch: armed on press, cleared by ConsumeInteract or by
// expiry, so one press yields at most one dialogue trigger.
type State struct {
	mu sync.Mutex

	holdUntil     [dirCount]time.Time
	interactUntil time.Time

	pointer []PointerEvent
	wheel   int
	fitAll  bool
	esc     bool
	quit    bool
	resized bool

	prevButtons tcell.ButtonMask
	lastX       int
	lastY       int
}

func NewState() *State {
	return &State{lastX: -1, lastY: -1}
}

// Feed translates one tcell event into accumulated input state.
// Safe to call from the pump goroutine while the loop samples.
func (s *State) Feed(ev tcell.Event, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch tev := ev.(type) {
	case *tcell.EventKey:
		s.feedKey(tev, now)
	case *tcell.EventMouse:
		s.feedMouse(tev)
	case *tcell.EventResize:
		s.resized = true
	}
}

func (s *State) feedKey(ev *tcell.EventKey, now time.Time) {
	hold := now.Add(constant.KeyHoldDuration)

	switch ev.Key() {
	case tcell.KeyUp:
		s.holdUntil[dirUp] = hold
	case tcell.KeyDown:
		s.holdUntil[dirDown] = hold
	case tcell.KeyLeft:
		s.holdUntil[dirLeft] = hold
	case tcell.KeyRight:
		s.holdUntil[dirRight] = hold
	case tcell.KeyEnter:
		s.interactUntil = now.Add(constant.InteractLatchDuration)
	case tcell.KeyEscape:
		s.esc = true
	case tcell.KeyCtrlC:
		s.quit = true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W', 'k':
			s.holdUntil[dirUp] = hold
		case 's', 'S', 'j':
			s.holdUntil[dirDown] = hold
		case 'a', 'A', 'h':
			s.holdUntil[dirLeft] = hold
		case 'd', 'D', 'l':
			s.holdUntil[dirRight] = hold
		case 'e', 'E':
			s.interactUntil = now.Add(constant.InteractLatchDuration)
		case '+', '=':
			s.wheel++
		case '-', '_':
			s.wheel--
		case 'f', 'F':
			s.fitAll = true
		case 'q', 'Q':
			s.quit = true
		}
	}
}

func (s *State) feedMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	buttons := ev.Buttons()

	// Wheel flags are transient, not part of the held-button mask
	if buttons&tcell.WheelUp != 0 {
		s.wheel++
	}
	if buttons&tcell.WheelDown != 0 {
		s.wheel--
	}

	held := buttons & tcell.ButtonMask(0xff)
	prev := s.prevButtons & tcell.ButtonMask(0xff)

	switch {
	case held&tcell.Button1 != 0 && prev&tcell.Button1 == 0:
		s.pointer = append(s.pointer, PointerEvent{Action: PointerPress, X: x, Y: y})
	case held&tcell.Button1 == 0 && prev&tcell.Button1 != 0:
		s.pointer = append(s.pointer, PointerEvent{Action: PointerRelease, X: x, Y: y})
	case x != s.lastX || y != s.lastY:
		s.pointer = append(s.pointer, PointerEvent{Action: PointerMove, X: x, Y: y})
	}

	s.prevButtons = buttons
	s.lastX = x
	s.lastY = y
}

// BeginFrame drains accumulated one-shot input and samples held keys.
// The interact latch is sampled, not cleared; the player controller clears
// it with ConsumeInteract when a dialogue actually triggers.
func (s *State) BeginFrame(now time.Time) Frame {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := Frame{
		Keys: Keys{
			Up:       now.Before(s.holdUntil[dirUp]),
			Down:     now.Before(s.holdUntil[dirDown]),
			Left:     now.Before(s.holdUntil[dirLeft]),
			Right:    now.Before(s.holdUntil[dirRight]),
			Interact: now.Before(s.interactUntil),
		},
		Pointer: s.pointer,
		Wheel:   s.wheel,
		FitAll:  s.fitAll,
		Esc:     s.esc,
		Quit:    s.quit,
		Resized: s.resized,
	}

	s.pointer = nil
	s.wheel = 0
	s.fitAll = false
	s.esc = false
	s.quit = false
	s.resized = false

	return f
}

// ConsumeInteract clears the interact latch so a triggered dialogue cannot
// re-trigger on the next frame without a fresh key press
func (s *State) ConsumeInteract() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.interactUntil = time.Time{}
}

// PressInteract arms the interact latch directly; used by tests and by the
// dialogue overlay's on-screen button
func (s *State) PressInteract(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.interactUntil = now.Add(constant.InteractLatchDuration)
}

// Reset clears all accumulated state. Called on teardown so a re-mounted
// view never sees stale key or pointer state.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.holdUntil {
		s.holdUntil[i] = time.Time{}
	}
	s.interactUntil = time.Time{}
	s.pointer = nil
	s.wheel = 0
	s.fitAll = false
	s.esc = false
	s.quit = false
	s.resized = false
	s.prevButtons = 0
	s.lastX = -1
	s.lastY = -1
}

// Pump forwards terminal events into the state until the screen is finalized.
// Run it on its own goroutine; screen.PollEvent returns nil after Fini.
func Pump(screen tcell.Screen, st *State, now func() time.Time) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		st.Feed(ev, now())
	}
}
