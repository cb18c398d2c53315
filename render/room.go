package render

import (
	"math"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/gmuffiness/agentfloor/constant"
	"github.com/gmuffiness/agentfloor/engine"
	"github.com/gmuffiness/agentfloor/world"
)

const plankHeight = 12.0 // world px per floor plank row

// RoomRenderer paints department rooms: plank floor, wall band with a door
// gap on the bottom wall, the name sign, the spend panel with budget bar,
// and the vendor dot row. Over-budget rooms switch the wall tint and flag
// the spend line.
type RoomRenderer struct{}

func NewRoomRenderer() *RoomRenderer { return &RoomRenderer{} }

func (r *RoomRenderer) Draw(g *engine.GameContext, b *Buffer) {
	for _, room := range g.Geo.Rooms {
		dept := deptByID(g.Org, room.DeptID)
		if dept == nil {
			continue
		}
		r.drawRoom(g, b, room, dept)
	}
}

func deptByID(org *world.Organization, id string) *world.Department {
	if org == nil {
		return nil
	}
	for _, d := range org.Departments {
		if d.ID == id {
			return d
		}
	}
	return nil
}

func (r *RoomRenderer) drawRoom(g *engine.GameContext, b *Buffer, room world.RoomCollider, dept *world.Department) {
	cam := g.Camera
	rect := room.Rect

	x0, y0 := cam.WorldToScreen(rect.X, rect.Y)
	x1, y1 := cam.WorldToScreen(rect.Right(), rect.Bottom())
	if x1 < 0 || y1 < 0 || x0 >= b.Width() || y0 >= b.Height() {
		return
	}

	wallColor := WallColor
	if dept.OverBudget() {
		wallColor = WallOverBudget
	}
	selected := g.SelectedDeptID == dept.ID
	if selected {
		wallColor = VendorColor(dept.PrimaryVendor)
	}

	// body: per-cell fill so the door gap and plank pattern track world space
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			wx, wy := cam.ScreenToWorld(cx, cy)
			if !rect.Contains(wx, wy) && !onWallBand(rect, wx, wy) {
				continue
			}
			bg := wallColor
			if insideFloor(rect, wx, wy) {
				bg = FloorColor
				if int(math.Floor((wy-rect.Y)/plankHeight))%2 == 0 {
					bg = FloorColorAlt
				}
			} else if inDoorGap(room, wx, wy) {
				bg = DoorColor
			}
			b.Set(cx, cy, ' ', tcell.StyleDefault.Background(bg))
		}
	}

	// sign row, hanging just below the top wall
	signStyle := tcell.StyleDefault.Foreground(SignTextColor).Background(SignColor).Bold(true)
	signY := y0 + 1
	if signY < y1 {
		b.TextCentered((x0+x1)/2, signY, " "+dept.Name+" ", signStyle)
	}

	// spend panel anchored above the bottom wall
	r.drawPanel(b, x0, y0, x1, y1, dept)
}

// onWallBand reports whether the point lies on the room's wall band,
// covering sub-cell walls that Contains alone would miss at low zoom
func onWallBand(rect world.Rect, wx, wy float64) bool {
	w := constant.WallThickness
	return wx >= rect.X-w && wx <= rect.Right()+w &&
		wy >= rect.Y-w && wy <= rect.Bottom()+w &&
		!(wx > rect.X+w && wx < rect.Right()-w && wy > rect.Y+w && wy < rect.Bottom()-w)
}

func insideFloor(rect world.Rect, wx, wy float64) bool {
	w := constant.WallThickness
	return wx > rect.X+w && wx < rect.Right()-w && wy > rect.Y+w && wy < rect.Bottom()-w
}

func inDoorGap(room world.RoomCollider, wx, wy float64) bool {
	half := constant.DoorWidth / 2
	return wx > room.DoorX-half && wx < room.DoorX+half &&
		wy > room.Rect.Bottom()-constant.WallThickness && wy <= room.Rect.Bottom()
}

func (r *RoomRenderer) drawPanel(b *Buffer, x0, y0, x1, y1 int, dept *world.Department) {
	panelY := y1 - 1
	innerX := x0 + 1
	innerW := x1 - x0 - 1
	if innerW < 8 || panelY <= y0+1 {
		return
	}

	accent := VendorColor(dept.PrimaryVendor)
	panelStyle := tcell.StyleDefault.Foreground(tcell.NewHexColor(0x94A3B8)).Background(HUDPanelColor)
	b.FillRect(innerX, panelY, innerW, 1, ' ', panelStyle)

	count := len(dept.Agents)
	label := strconv.Itoa(count) + " agents"
	if count == 1 {
		label = "1 agent"
	}
	spend := FormatCurrency(dept.MonthlySpend) + " / " + FormatCurrency(dept.Budget)
	spendStyle := panelStyle.Foreground(tcell.NewHexColor(0xE2E8F0)).Bold(true)
	if dept.OverBudget() {
		spendStyle = spendStyle.Foreground(OverBudgetColor)
	}

	b.Text(innerX+1, panelY, label, panelStyle)
	vendor := VendorLabel(dept.PrimaryVendor)
	line := label + "  " + spend + "  " + vendor
	if len(line) <= innerW-2 {
		b.Text(innerX+1+len(label)+2, panelY, spend, spendStyle)
		b.Text(x1-len(vendor)-1, panelY, vendor, panelStyle.Foreground(accent).Bold(true))
	}

	// budget bar one row above the panel
	barY := panelY - 1
	barW := innerW - 2
	if barY > y0+1 && barW > 0 {
		ratio := 0.0
		if dept.Budget > 0 {
			ratio = math.Min(1, dept.MonthlySpend/dept.Budget)
		}
		fill := int(math.Round(ratio * float64(barW)))
		barColor := accent
		if dept.OverBudget() {
			barColor = OverBudgetColor
		}
		empty := tcell.StyleDefault.Foreground(DarkPanel)
		b.Text(innerX+1, barY, strings.Repeat("━", barW), empty)
		if fill > 0 {
			b.Text(innerX+1, barY, strings.Repeat("━", fill), tcell.StyleDefault.Foreground(barColor))
		}
	}
}

// FormatCurrency renders a whole-dollar amount with thousands separators
func FormatCurrency(amount float64) string {
	n := int64(math.Round(amount))
	neg := n < 0
	if neg {
		n = -n
	}
	s := strconv.FormatInt(n, 10)
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := "$" + strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}
