package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/gmuffiness/agentfloor/world"
)

// Ground palette
var (
	GrassColors = [3]tcell.Color{
		tcell.NewHexColor(0x4a7a3d),
		tcell.NewHexColor(0x528a45),
		tcell.NewHexColor(0x3d6b33),
	}
	PathColor    = tcell.NewHexColor(0xc4a882)
	TreeLeaves   = tcell.NewHexColor(0x2d5a1e)
	BushColor    = tcell.NewHexColor(0x3a6e2a)
	StoneColor   = tcell.NewHexColor(0x8a8a8a)
	FlowerColors = [4]tcell.Color{
		tcell.NewHexColor(0xe85d75),
		tcell.NewHexColor(0xf0c040),
		tcell.NewHexColor(0xd0d0ff),
		tcell.NewHexColor(0xff9944),
	}
)

// Room palette
var (
	WallColor       = tcell.NewHexColor(0x8B7355)
	WallOverBudget  = tcell.NewHexColor(0xB85450)
	FloorColor      = tcell.NewHexColor(0xF5E6D0)
	FloorColorAlt   = tcell.NewHexColor(0xEBD9BF)
	DoorColor       = tcell.NewHexColor(0x6B4226)
	SignColor       = tcell.NewHexColor(0x5C4033)
	SignTextColor   = tcell.NewHexColor(0xF5E6D0)
	HUDPanelColor   = tcell.NewHexColor(0x1A1A2E)
	OverBudgetColor = tcell.NewHexColor(0xEF4444)
	DarkPanel       = tcell.NewHexColor(0x1e293b)
)

// Status colors
var statusColors = map[world.Status]tcell.Color{
	world.StatusActive: tcell.NewHexColor(0x22C55E),
	world.StatusIdle:   tcell.NewHexColor(0xEAB308),
	world.StatusError:  tcell.NewHexColor(0xEF4444),
}

// StatusColor returns the indicator color for an agent status
func StatusColor(s world.Status) tcell.Color {
	if c, ok := statusColors[s]; ok {
		return c
	}
	return tcell.NewHexColor(0x9CA3AF)
}

// Vendor colors
var vendorColors = map[world.Vendor]tcell.Color{
	world.VendorAnthropic: tcell.NewHexColor(0xF97316),
	world.VendorOpenAI:    tcell.NewHexColor(0x22C55E),
	world.VendorGoogle:    tcell.NewHexColor(0x3B82F6),
}

// VendorColor returns the accent color for a vendor
func VendorColor(v world.Vendor) tcell.Color {
	if c, ok := vendorColors[v]; ok {
		return c
	}
	return tcell.NewHexColor(0x94A3B8)
}

// VendorLabel returns the display name for a vendor
func VendorLabel(v world.Vendor) string {
	switch v {
	case world.VendorAnthropic:
		return "Anthropic"
	case world.VendorOpenAI:
		return "OpenAI"
	case world.VendorGoogle:
		return "Google"
	default:
		return string(v)
	}
}

// Dim scales a color toward black by factor in [0,1]; used to express alpha
// on a terminal that has no real transparency
func Dim(c tcell.Color, factor float64) tcell.Color {
	if factor >= 1 {
		return c
	}
	if factor < 0 {
		factor = 0
	}
	r, g, b := c.RGB()
	return tcell.NewRGBColor(
		int32(float64(r)*factor),
		int32(float64(g)*factor),
		int32(float64(b)*factor),
	)
}
