package engine

import (
	"time"

	"github.com/gmuffiness/agentfloor/world"
)

// AgentSnapshot is one agent's observable state
type AgentSnapshot struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Dept   string       `json:"dept"`
	Vendor world.Vendor `json:"vendor"`
	Status world.Status `json:"status"`
	X      float64      `json:"x"`
	Y      float64      `json:"y"`
}

// RoomSnapshot is one department room's observable geometry
type RoomSnapshot struct {
	DeptID string  `json:"deptId"`
	Name   string  `json:"name"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	W      float64 `json:"w"`
	H      float64 `json:"h"`
}

// Snapshot is the read-only world view published to stream observers.
// Observers never feed state back; each browser/terminal runs its own
// simulation against shared world data.
type Snapshot struct {
	At    time.Time `json:"at"`
	OrgID string    `json:"orgId"`

	PlayerName string  `json:"playerName"`
	PlayerX    float64 `json:"playerX"`
	PlayerY    float64 `json:"playerY"`

	CameraX    float64 `json:"cameraX"`
	CameraY    float64 `json:"cameraY"`
	CameraZoom float64 `json:"cameraZoom"`

	SelectedAgent string `json:"selectedAgent,omitempty"`
	SelectedDept  string `json:"selectedDept,omitempty"`
	DialogueAgent string `json:"dialogueAgent,omitempty"`

	Rooms  []RoomSnapshot  `json:"rooms"`
	Agents []AgentSnapshot `json:"agents"`
}

// SnapshotSink receives periodic snapshots. Publish must not block; it
// returns false when the snapshot was dropped.
type SnapshotSink interface {
	Publish(s Snapshot) bool
}

// BuildSnapshot captures the current world state
func BuildSnapshot(g *GameContext) Snapshot {
	s := Snapshot{
		At:            g.Time.Now(),
		OrgID:         g.OrgID(),
		PlayerName:    g.Player.Name,
		PlayerX:       g.Player.X,
		PlayerY:       g.Player.Y,
		CameraX:       g.Camera.X,
		CameraY:       g.Camera.Y,
		CameraZoom:    g.Camera.Zoom,
		SelectedAgent: g.SelectedAgentID,
		SelectedDept:  g.SelectedDeptID,
	}
	if g.DialogueAgent != nil {
		s.DialogueAgent = g.DialogueAgent.ID
	}
	if g.Org != nil {
		for _, d := range g.Org.Departments {
			r, ok := g.Geo.DeptRects[d.ID]
			if !ok {
				continue
			}
			s.Rooms = append(s.Rooms, RoomSnapshot{
				DeptID: d.ID, Name: d.Name,
				X: r.X, Y: r.Y, W: r.W, H: r.H,
			})
		}
	}
	for _, av := range g.Avatars {
		s.Agents = append(s.Agents, AgentSnapshot{
			ID:     av.Agent.ID,
			Name:   av.Agent.Name,
			Dept:   av.Dept.ID,
			Vendor: av.Agent.Vendor,
			Status: av.Agent.Status,
			X:      av.X,
			Y:      av.Y,
		})
	}
	return s
}
