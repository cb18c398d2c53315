package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/gmuffiness/agentfloor/engine"
	"github.com/gmuffiness/agentfloor/world"
)

var (
	barBg   = tcell.NewHexColor(0x111827)
	barFg   = tcell.NewHexColor(0x9CA3AF)
	toastFg = tcell.NewHexColor(0xFBBF24)
)

// HudRenderer paints the bottom status bar and, when open, the dialogue
// overlay. The status bar shows movement hints, the organization name, the
// nearby-agent toast, and the current selection.
type HudRenderer struct{}

func NewHudRenderer() *HudRenderer { return &HudRenderer{} }

func (r *HudRenderer) Draw(g *engine.GameContext, b *Buffer) {
	r.drawStatusBar(g, b)
	if g.DialogueOpen() {
		r.drawDialogue(g, b)
	}
}

func (r *HudRenderer) drawStatusBar(g *engine.GameContext, b *Buffer) {
	y := b.Height() - 1
	style := tcell.StyleDefault.Foreground(barFg).Background(barBg)
	b.FillRect(0, y, b.Width(), 1, ' ', style)

	left := " wasd/arrows move · e talk · +/- zoom · f fit · q quit"
	if g.DialogueOpen() {
		left = " esc close dialogue"
	}
	b.Text(0, y, left, style)

	if g.NearbyName != "" && !g.DialogueOpen() {
		toast := fmt.Sprintf("[ %s nearby ]", g.NearbyName)
		b.TextCentered(b.Width()/2, y, toast, style.Foreground(toastFg).Bold(true))
	}

	right := orgLabel(g)
	if sel := selectionLabel(g); sel != "" {
		right = sel + " · " + right
	}
	b.Text(b.Width()-len(right)-1, y, right, style)
}

func orgLabel(g *engine.GameContext) string {
	if g.Org == nil {
		return "no organization"
	}
	return g.Org.Name
}

func selectionLabel(g *engine.GameContext) string {
	if g.SelectedAgentID != "" && g.Org != nil {
		if a := g.Org.FindAgent(g.SelectedAgentID); a != nil {
			return "agent: " + a.Name
		}
	}
	if g.SelectedDeptID != "" && g.Org != nil {
		for _, d := range g.Org.Departments {
			if d.ID == g.SelectedDeptID {
				return "dept: " + d.Name
			}
		}
	}
	return ""
}

// drawDialogue paints a centered conversation box for the dialogue agent
func (r *HudRenderer) drawDialogue(g *engine.GameContext, b *Buffer) {
	a := g.DialogueAgent
	if a == nil {
		return
	}

	w := b.Width() * 2 / 3
	if w < 40 {
		w = b.Width() - 2
	}
	lines := wrapText(dialogueText(a), w-6)
	h := len(lines) + 5
	x := (b.Width() - w) / 2
	y := b.Height() - h - 2

	bg := tcell.StyleDefault.Background(labelBg)
	b.FillRect(x, y, w, h, ' ', bg)

	accent := bg.Foreground(VendorColor(a.Vendor))
	b.Text(x, y, strings.Repeat("▔", w), accent)

	glyph := string(AvatarGlyph(a.Name))
	title := fmt.Sprintf(" %s %s ", glyph, a.Name)
	b.Text(x+2, y+1, title, bg.Foreground(tcell.ColorWhite).Bold(true))
	badge := fmt.Sprintf("%s / %s", VendorLabel(a.Vendor), a.Model)
	b.Text(x+w-len(badge)-2, y+1, badge, accent)

	status := "● " + StatusLabel(a.Status)
	b.Text(x+2, y+2, status, bg.Foreground(StatusColor(a.Status)))

	for i, line := range lines {
		b.Text(x+3, y+3+i, line, bg.Foreground(tcell.NewHexColor(0xD1D5DB)))
	}

	hint := "[esc] close"
	b.Text(x+w-len(hint)-2, y+h-1, hint, bg.Foreground(barFg))
}

// dialogueText builds the agent's speech from its live state, mirroring the
// tone of an NPC greeting
func dialogueText(a *world.Agent) string {
	var sb strings.Builder
	switch a.Status {
	case world.StatusActive:
		sb.WriteString("I'm currently working on tasks. Things are running smoothly.")
	case world.StatusError:
		sb.WriteString("I've encountered an issue and need some attention.")
	default:
		sb.WriteString("Standing by and ready for new assignments.")
	}
	if len(a.Skills) > 0 {
		names := a.Skills
		suffix := "."
		if len(names) > 3 {
			suffix = fmt.Sprintf(" and %d more.", len(names)-3)
			names = names[:3]
		}
		sb.WriteString(" My skills: " + strings.Join(names, ", ") + suffix)
	}
	if a.MonthlyCost > 0 {
		sb.WriteString(" Monthly cost so far: " + FormatCurrency(a.MonthlyCost) + ".")
	}
	return sb.String()
}

// wrapText splits text into lines no wider than width runes
func wrapText(text string, width int) []string {
	if width < 1 {
		return nil
	}
	var lines []string
	var cur string
	for _, word := range strings.Fields(text) {
		if cur == "" {
			cur = word
			continue
		}
		if len([]rune(cur))+1+len([]rune(word)) > width {
			lines = append(lines, cur)
			cur = word
		} else {
			cur += " " + word
		}
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}
