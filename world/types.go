package world

// Status is an agent's operational state
type Status string

const (
	StatusActive Status = "active"
	StatusIdle   Status = "idle"
	StatusError  Status = "error"
)

// Vendor identifies the model provider behind an agent or department
type Vendor string

const (
	VendorAnthropic Vendor = "anthropic"
	VendorOpenAI    Vendor = "openai"
	VendorGoogle    Vendor = "google"
)

// Position is a point in world space (pixels)
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Layout is a department's room rectangle in world space
type Layout struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Agent is a fleet member rendered as an avatar. Position is authoritative
// in the rendering layer during a drag and written back here on drag end.
type Agent struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Vendor      Vendor   `json:"vendor"`
	Status      Status   `json:"status"`
	Model       string   `json:"model"`
	MonthlyCost float64  `json:"monthlyCost"`
	Position    Position `json:"position"`
	Skills      []string `json:"skills,omitempty"`
	Tools       []string `json:"tools,omitempty"`

	// ParentID is non-empty when this agent is itself a delegated sub-agent
	ParentID string `json:"parentAgentId,omitempty"`
	// SubAgents names the delegated workers visualized as orbiting satellites
	SubAgents []string `json:"subAgents,omitempty"`
}

// Department is a walled room on the floor
type Department struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Layout        Layout   `json:"layout"`
	PrimaryVendor Vendor   `json:"primaryVendor"`
	Budget        float64  `json:"budget"`
	MonthlySpend  float64  `json:"monthlySpend"`
	Agents        []*Agent `json:"agents"`
}

// OverBudget reports whether the department's spend exceeds its budget
func (d *Department) OverBudget() bool {
	return d.MonthlySpend > d.Budget
}

// Organization owns the ordered department list, loaded read-only per session
type Organization struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Budget      float64       `json:"budget"`
	Departments []*Department `json:"departments"`
}

// EachAgent visits every agent in department order
func (o *Organization) EachAgent(fn func(d *Department, a *Agent)) {
	for _, d := range o.Departments {
		for _, a := range d.Agents {
			fn(d, a)
		}
	}
}

// FindAgent returns the agent with the given id, or nil
func (o *Organization) FindAgent(id string) *Agent {
	for _, d := range o.Departments {
		for _, a := range d.Agents {
			if a.ID == id {
				return a
			}
		}
	}
	return nil
}
