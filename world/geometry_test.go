package world

import (
	"testing"

	"github.com/gmuffiness/agentfloor/constant"
)

// TestBuildEmptyOrganization verifies the default world for missing data
func TestBuildEmptyOrganization(t *testing.T) {
	g := Build(nil)
	if g.Bounds.W != constant.WorldWidth || g.Bounds.H != constant.WorldHeight {
		t.Errorf("expected default bounds, got %+v", g.Bounds)
	}
	if len(g.Rooms) != 0 {
		t.Errorf("expected no rooms, got %d", len(g.Rooms))
	}
	if g.Spawn.X != constant.WorldWidth/2 || g.Spawn.Y != constant.WorldHeight/2 {
		t.Errorf("expected centered spawn, got %+v", g.Spawn)
	}
}

// TestBuildSkipsMalformedDepartments verifies fail-soft on bad entries
func TestBuildSkipsMalformedDepartments(t *testing.T) {
	org := &Organization{
		ID: "org",
		Departments: []*Department{
			nil,
			{ID: "", Name: "no id"},
			{ID: "ok", Name: "good", Layout: Layout{X: 10, Y: 10, Width: 100, Height: 100}},
		},
	}
	g := Build(org)
	if len(g.Rooms) != 1 {
		t.Fatalf("expected 1 room, got %d", len(g.Rooms))
	}
	if g.Rooms[0].DeptID != "ok" {
		t.Errorf("expected room for dept ok, got %s", g.Rooms[0].DeptID)
	}
}

// TestBuildClampsDegenerateLayout verifies undersized rooms get a floor
func TestBuildClampsDegenerateLayout(t *testing.T) {
	org := &Organization{
		ID: "org",
		Departments: []*Department{
			{ID: "tiny", Layout: Layout{X: 0, Y: 0, Width: 1, Height: -5}},
		},
	}
	g := Build(org)
	r := g.Rooms[0]
	if r.W != constant.MinRoomSize || r.H != constant.MinRoomSize {
		t.Errorf("expected clamp to %v, got %vx%v", constant.MinRoomSize, r.W, r.H)
	}
}

// TestBuildGrowsBounds verifies rooms past the default edge expand the world
func TestBuildGrowsBounds(t *testing.T) {
	org := &Organization{
		ID: "org",
		Departments: []*Department{
			{ID: "far", Layout: Layout{X: 1400, Y: 800, Width: 200, Height: 100}},
		},
	}
	g := Build(org)
	if g.Bounds.Right() < 1600+constant.TileSize {
		t.Errorf("bounds right %v does not cover the far room", g.Bounds.Right())
	}
	if g.Bounds.Bottom() < 900+constant.TileSize {
		t.Errorf("bounds bottom %v does not cover the far room", g.Bounds.Bottom())
	}
}

// TestSpawnBelowFirstDoor verifies the spawn sits just outside the first
// room's door, on passable ground
func TestSpawnBelowFirstDoor(t *testing.T) {
	org := &Organization{
		ID: "org",
		Departments: []*Department{
			{ID: "d1", Layout: Layout{X: 50, Y: 50, Width: 300, Height: 240}},
			{ID: "d2", Layout: Layout{X: 400, Y: 50, Width: 270, Height: 220}},
		},
	}
	g := Build(org)
	first := g.Rooms[0]
	if g.Spawn.X != first.DoorX {
		t.Errorf("spawn x %v, want door x %v", g.Spawn.X, first.DoorX)
	}
	if g.Spawn.Y != first.DoorY+constant.SpawnDoorOffset {
		t.Errorf("spawn y %v, want %v", g.Spawn.Y, first.DoorY+constant.SpawnDoorOffset)
	}
	if Blocked(g.Spawn.X, g.Spawn.Y, g.Rooms) {
		t.Error("spawn point must not be inside a wall")
	}
}

// TestDoorCenteredOnBottomWall verifies door placement
func TestDoorCenteredOnBottomWall(t *testing.T) {
	org := &Organization{
		ID:          "org",
		Departments: []*Department{{ID: "d", Layout: Layout{X: 100, Y: 100, Width: 200, Height: 100}}},
	}
	g := Build(org)
	r := g.Rooms[0]
	if r.DoorX != 200 {
		t.Errorf("door x %v, want 200", r.DoorX)
	}
	if r.DoorY != 200 {
		t.Errorf("door y %v, want 200 (bottom edge)", r.DoorY)
	}
	if r.DoorW != constant.DoorWidth {
		t.Errorf("door width %v, want %v", r.DoorW, constant.DoorWidth)
	}
}
