package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/gmuffiness/agentfloor/constant"
	"github.com/gmuffiness/agentfloor/engine"
)

var (
	playerColor = tcell.NewHexColor(0x60A5FA)
	promptKeyFg = tcell.NewHexColor(0x60A5FA)
	promptKeyBg = tcell.NewHexColor(0x374151)
)

// playerGlyphs maps facing direction to the avatar rune; the side glyph is
// mirrored when facing left
var playerGlyphs = map[engine.PlayerDir]rune{
	engine.DirDown: '☻',
	engine.DirUp:   '☺',
	engine.DirSide: '☻',
}

// walkFeet is the foot glyph per walk-cycle frame: standing, step-A,
// standing, step-B
var walkFeet = [3]rune{'<', '^', '>'}

// PlayerRenderer paints the keyboard-driven character, its nameplate, and
// the interaction prompt shown while an agent is in range.
type PlayerRenderer struct{}

func NewPlayerRenderer() *PlayerRenderer { return &PlayerRenderer{} }

func (r *PlayerRenderer) Draw(g *engine.GameContext, b *Buffer) {
	p := &g.Player
	sx, sy := g.Camera.WorldToScreen(p.X, p.Y)

	style := tcell.StyleDefault.Foreground(playerColor).Bold(true)
	b.Set(sx, sy, playerGlyphs[p.Dir], style)

	// walk-cycle feet while moving
	if p.Moving {
		frame := constant.WalkCycle[p.Frame]
		foot := walkFeet[frame]
		if p.Dir == engine.DirSide && !p.FacingRight {
			// mirror the stepping feet when facing left
			switch foot {
			case '<':
				foot = '>'
			case '>':
				foot = '<'
			}
		}
		b.Set(sx, sy+1, foot, tcell.StyleDefault.Foreground(Dim(playerColor, 0.7)))
	}

	name := shortName(p.Name, 10)
	plate := tcell.StyleDefault.Foreground(playerColor).Background(labelBg).Bold(true)
	yLabel := sy + 1
	if p.Moving {
		yLabel = sy + 2
	}
	b.TextCentered(sx, yLabel, name, plate)

	// interaction prompt above the head while an agent is in range
	if p.Nearest != nil && !g.DialogueOpen() {
		key := tcell.StyleDefault.Foreground(promptKeyFg).Background(promptKeyBg).Bold(true)
		txt := tcell.StyleDefault.Foreground(labelFg).Background(labelBg)
		b.Text(sx-3, sy-2, " E ", key)
		b.Text(sx, sy-2, " Talk ", txt)
	}
}
