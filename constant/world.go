package constant

// World Geometry
const (
	// WorldWidth / WorldHeight are the default world dimensions in pixels.
	// The geometry builder expands them when department layouts reach past the edge.
	WorldWidth  = 1200.0
	WorldHeight = 600.0

	// TileSize is the ground tile edge length in pixels
	TileSize = 32.0

	// WallThickness is the room perimeter wall band in pixels
	WallThickness = 4.0

	// DoorWidth is the door gap on the bottom wall in pixels
	DoorWidth = 18.0

	// DoorSlack widens the passable gap beyond the drawn door on each side,
	// so the player's hitbox never pinches shut at pixel boundaries
	DoorSlack = 6.0

	// DoorBelowReach extends the bottom wall band below the outer edge,
	// keeping the door gap passable when approaching from outside
	DoorBelowReach = 2.0

	// MinRoomSize clamps degenerate department layouts to a usable rectangle
	MinRoomSize = 40.0

	// SpawnDoorOffset is the distance below the first room's door where the
	// player character spawns
	SpawnDoorOffset = 10.0
)
