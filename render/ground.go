package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/gmuffiness/agentfloor/constant"
	"github.com/gmuffiness/agentfloor/engine"
	"github.com/gmuffiness/agentfloor/vmath"
	"github.com/gmuffiness/agentfloor/world"
)

const (
	pathWidth   = 16.0
	pathMaxGap  = 140.0
	propSpacing = 3 // prop grid pitch in ground tiles
)

// GroundRenderer paints the grass tiling, the dirt paths between rooms, and
// the scattered decorations. Everything is derived deterministically from
// world coordinates so the ground never shimmers as the camera moves.
type GroundRenderer struct {
	paths []world.Rect
}

func NewGroundRenderer(geo world.Geometry) *GroundRenderer {
	return &GroundRenderer{paths: buildPaths(geo.Rooms)}
}

// buildPaths connects horizontally and vertically adjacent rooms with dirt
// path segments centered on their shared span
func buildPaths(rooms []world.RoomCollider) []world.Rect {
	var out []world.Rect
	for i := range rooms {
		for j := range rooms {
			if i == j {
				continue
			}
			a, b := rooms[i].Rect, rooms[j].Rect

			// a left of b, with vertical overlap
			if gap := b.X - a.Right(); gap > 0 && gap <= pathMaxGap {
				lo := math.Max(a.Y, b.Y)
				hi := math.Min(a.Bottom(), b.Bottom())
				if hi-lo >= pathWidth*2 {
					out = append(out, world.Rect{
						X: a.Right(), Y: (lo+hi)/2 - pathWidth/2,
						W: gap, H: pathWidth,
					})
				}
			}
			// a above b, with horizontal overlap
			if gap := b.Y - a.Bottom(); gap > 0 && gap <= pathMaxGap {
				lo := math.Max(a.X, b.X)
				hi := math.Min(a.Right(), b.Right())
				if hi-lo >= pathWidth*2 {
					out = append(out, world.Rect{
						X: (lo+hi)/2 - pathWidth/2, Y: a.Bottom(),
						W: pathWidth, H: gap,
					})
				}
			}
		}
	}
	return out
}

// GrassShade picks one of the three grass variants for a tile
func GrassShade(col, row int) int {
	shade := vmath.SeededRand(float64(col), float64(row))
	switch {
	case shade < 0.4:
		return 0
	case shade < 0.75:
		return 1
	default:
		return 2
	}
}

func (r *GroundRenderer) onPath(wx, wy float64) bool {
	for _, p := range r.paths {
		if p.Contains(wx, wy) {
			return true
		}
	}
	return false
}

func (r *GroundRenderer) Draw(g *engine.GameContext, b *Buffer) {
	cam := g.Camera
	for cy := 0; cy < b.Height(); cy++ {
		for cx := 0; cx < b.Width(); cx++ {
			wx, wy := cam.ScreenToWorld(cx, cy)

			var bg tcell.Color
			if r.onPath(wx, wy) {
				bg = PathColor
			} else {
				col := int(math.Floor(wx / constant.TileSize))
				row := int(math.Floor(wy / constant.TileSize))
				bg = GrassColors[GrassShade(col, row)]
			}

			glyph, fg := r.propAt(g, wx, wy, bg)
			b.Set(cx, cy, glyph, tcell.StyleDefault.Foreground(fg).Background(bg))
		}
	}
}

// propAt returns the decoration glyph covering a world point, or a blank
// cell. Props occupy one tile each on a coarse deterministic grid and are
// suppressed inside rooms and on paths.
func (r *GroundRenderer) propAt(g *engine.GameContext, wx, wy float64, bg tcell.Color) (rune, tcell.Color) {
	pitch := constant.TileSize * propSpacing
	px := math.Floor(wx / pitch)
	py := math.Floor(wy / pitch)

	roll := vmath.SeededRand(px*0.7+3.1, py*1.3+7.7)
	if roll < 0.55 {
		return ' ', bg
	}

	// prop anchor tile inside its grid cell, jittered deterministically
	jx := math.Floor(vmath.SeededRand(px, py) * propSpacing)
	jy := math.Floor(vmath.SeededRand(py, px) * propSpacing)
	ax := (px*propSpacing + jx) * constant.TileSize
	ay := (py*propSpacing + jy) * constant.TileSize
	if wx < ax || wx >= ax+constant.TileSize || wy < ay || wy >= ay+constant.TileSize {
		return ' ', bg
	}
	cx, cy := ax+constant.TileSize/2, ay+constant.TileSize/2
	if r.onPath(cx, cy) || g.RoomAt(cx, cy) != nil {
		return ' ', bg
	}

	switch {
	case roll < 0.70:
		return '♠', TreeLeaves
	case roll < 0.82:
		return '"', BushColor
	case roll < 0.93:
		i := int(vmath.SeededRand(px*5.0, py*9.0) * 4)
		if i > 3 {
			i = 3
		}
		return '*', FlowerColors[i]
	default:
		return 'o', StoneColor
	}
}
