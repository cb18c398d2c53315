package audio

import (
	"sync/atomic"

	"github.com/gmuffiness/agentfloor/event"
)

// Service plays a chime per interaction event. It registers as an event
// handler only; there is no per-frame work. Initialization failure flips
// the disabled flag and every play becomes a no-op.
type Service struct {
	sounds   *SoundManager
	disabled atomic.Bool
}

// NewService creates the audio service; muted starts it disabled
func NewService(muted bool) *Service {
	s := &Service{sounds: NewSoundManager()}
	if muted {
		s.disabled.Store(true)
		return s
	}
	if err := s.sounds.Initialize(); err != nil {
		s.disabled.Store(true)
	}
	return s
}

func (s *Service) Name() string {
	return "audio"
}

func (s *Service) Update(dt float64) {}

func (s *Service) EventTypes() []event.Type {
	return []event.Type{
		event.TypeDialogueRequested,
		event.TypeDialogueClosed,
		event.TypeAgentSelected,
		event.TypeDepartmentSelected,
		event.TypePositionCommitted,
	}
}

func (s *Service) HandleEvent(ev event.Event) {
	if s.disabled.Load() {
		return
	}
	switch ev.Type {
	case event.TypeDialogueRequested:
		s.sounds.PlayTalk()
	case event.TypeDialogueClosed:
		s.sounds.PlayClose()
	case event.TypeAgentSelected, event.TypeDepartmentSelected:
		s.sounds.PlaySelect()
	case event.TypePositionCommitted:
		s.sounds.PlayDrop()
	}
}

// IsDisabled reports whether playback is unavailable or muted
func (s *Service) IsDisabled() bool {
	return s.disabled.Load()
}

// Stop silences the mixer
func (s *Service) Stop() {
	s.sounds.Cleanup()
}
