package event

import "time"

// Type identifies an engine event
type Type int

const (
	// TypeAgentSelected notifies the shell that an avatar was clicked
	// Trigger: DragSystem on sub-threshold pointer gesture
	// Payload: *AgentSelectedPayload
	TypeAgentSelected Type = iota

	// TypeDepartmentSelected notifies the shell that a room was clicked
	// Trigger: DragSystem after the double-click window elapses
	// Payload: *DepartmentSelectedPayload
	TypeDepartmentSelected

	// TypeDialogueRequested opens the dialogue overlay for an agent
	// Trigger: PlayerSystem on interact near an agent
	// Consumer: engine (sets dialogue flag), audio chime | Payload: *DialoguePayload
	TypeDialogueRequested

	// TypeDialogueClosed clears the dialogue flag
	// Trigger: Esc while the overlay is open | Payload: nil
	TypeDialogueClosed

	// TypePositionCommitted records a completed drag's final position
	// Trigger: DragSystem on drag end
	// Consumer: replay recorder, metrics | Payload: *PositionCommittedPayload
	TypePositionCommitted

	// TypeCameraAnimate eases the camera to a target position/zoom
	// Trigger: room double-click, minimap click, zoom-to-agent
	// Consumer: CameraSystem | Payload: *CameraAnimatePayload
	TypeCameraAnimate
)

// Event is a queued engine event
type Event struct {
	Type    Type
	At      time.Time
	Payload any
}

// AgentSelectedPayload carries the clicked agent; empty ID clears selection
type AgentSelectedPayload struct {
	AgentID string
}

// DepartmentSelectedPayload carries the clicked department
type DepartmentSelectedPayload struct {
	DeptID string
}

// DialoguePayload carries the interaction target
type DialoguePayload struct {
	AgentID string
	Name    string
}

// PositionCommittedPayload carries a drag's final world position
type PositionCommittedPayload struct {
	AgentID string
	X, Y    float64
}

// CameraAnimatePayload carries an ease target. Zoom <= 0 keeps the current zoom.
type CameraAnimatePayload struct {
	X, Y     float64
	Zoom     float64
	Duration time.Duration
}
