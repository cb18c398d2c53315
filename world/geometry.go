package world

import (
	"github.com/gmuffiness/agentfloor/constant"
)

// Rect is an axis-aligned rectangle in world space
type Rect struct {
	X, Y, W, H float64
}

// Right returns the maximum x edge
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the maximum y edge
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Contains reports whether the point lies inside the rectangle
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Bottom()
}

// RoomCollider is the derived collision shape of a department: the outer
// rectangle plus the door gap centered on the bottom wall. Recomputed
// whenever department layout changes; never persisted.
type RoomCollider struct {
	Rect
	DoorX float64 // door center x
	DoorY float64 // bottom edge y
	DoorW float64

	DeptID string
}

// Geometry is the built world: bounds, room colliders, and the spawn point
type Geometry struct {
	Bounds    Rect
	Rooms     []RoomCollider
	Spawn     Position
	DeptRects map[string]Rect
}

// Build derives world geometry from organization data. Malformed departments
// are skipped; degenerate layout dimensions are clamped to MinRoomSize. An
// empty organization yields a default-sized empty world.
func Build(org *Organization) Geometry {
	g := Geometry{
		Bounds:    Rect{X: 0, Y: 0, W: constant.WorldWidth, H: constant.WorldHeight},
		DeptRects: make(map[string]Rect),
	}
	if org == nil {
		g.Spawn = Position{X: constant.WorldWidth / 2, Y: constant.WorldHeight / 2}
		return g
	}

	for _, d := range org.Departments {
		if d == nil || d.ID == "" {
			continue
		}
		r := clampLayout(d.Layout)
		g.DeptRects[d.ID] = r
		g.Rooms = append(g.Rooms, RoomCollider{
			Rect:   r,
			DoorX:  r.X + r.W/2,
			DoorY:  r.Bottom(),
			DoorW:  constant.DoorWidth,
			DeptID: d.ID,
		})

		// Grow world bounds to cover rooms placed past the default edge
		if r.Right()+constant.TileSize > g.Bounds.Right() {
			g.Bounds.W = r.Right() + constant.TileSize - g.Bounds.X
		}
		if r.Bottom()+constant.TileSize > g.Bounds.Bottom() {
			g.Bounds.H = r.Bottom() + constant.TileSize - g.Bounds.Y
		}
	}

	g.Spawn = spawnPoint(g)
	return g
}

// spawnPoint places the player just outside the first room's door, or at the
// world center when there are no rooms
func spawnPoint(g Geometry) Position {
	if len(g.Rooms) == 0 {
		return Position{X: g.Bounds.X + g.Bounds.W/2, Y: g.Bounds.Y + g.Bounds.H/2}
	}
	first := g.Rooms[0]
	return Position{X: first.DoorX, Y: first.DoorY + constant.SpawnDoorOffset}
}

func clampLayout(l Layout) Rect {
	w := l.Width
	h := l.Height
	if w < constant.MinRoomSize {
		w = constant.MinRoomSize
	}
	if h < constant.MinRoomSize {
		h = constant.MinRoomSize
	}
	return Rect{X: l.X, Y: l.Y, W: w, H: h}
}
