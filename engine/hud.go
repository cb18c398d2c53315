package engine

import "github.com/gmuffiness/agentfloor/constant"

// MinimapBounds returns the minimap panel rectangle in terminal cells.
// Shared by the minimap renderer and pointer routing so clicks and pixels
// agree on the panel's footprint.
func (g *GameContext) MinimapBounds() (x, y, w, h int) {
	sw, _ := g.Screen.Size()
	w = constant.MinimapWidth
	h = constant.MinimapHeight
	x = sw - w - 1
	if x < 0 {
		x = 0
	}
	return x, 1, w, h
}
