package world

import (
	"testing"

	"github.com/gmuffiness/agentfloor/constant"
)

func testRoom() []RoomCollider {
	r := Rect{X: 0, Y: 0, W: 200, H: 150}
	return []RoomCollider{{
		Rect:  r,
		DoorX: r.X + r.W/2,
		DoorY: r.Bottom(),
		DoorW: constant.DoorWidth,
	}}
}

// TestBlockedOutsideRoom verifies free movement away from any room
func TestBlockedOutsideRoom(t *testing.T) {
	rooms := testRoom()
	points := [][2]float64{
		{300, 300},
		{-50, -50},
		{100, 300},
		{400, 75},
	}
	for _, p := range points {
		if Blocked(p[0], p[1], rooms) {
			t.Errorf("point (%v, %v) outside room should not be blocked", p[0], p[1])
		}
	}
}

// TestBlockedInsideInterior verifies free movement well inside a room
func TestBlockedInsideInterior(t *testing.T) {
	rooms := testRoom()
	if Blocked(100, 75, rooms) {
		t.Error("room interior should not be blocked")
	}
}

// TestBlockedOnWalls verifies each wall band stops the hitbox
func TestBlockedOnWalls(t *testing.T) {
	rooms := testRoom()
	cases := []struct {
		name string
		x, y float64
	}{
		{"top wall", 60, 0},
		{"left wall", 0, 75},
		{"right wall", 200, 75},
		{"bottom wall away from door", 30, 150},
	}
	for _, tc := range cases {
		if !Blocked(tc.x, tc.y, rooms) {
			t.Errorf("%s at (%v, %v) should block", tc.name, tc.x, tc.y)
		}
	}
}

// TestDoorGapPassable verifies the door gap in the bottom wall admits the
// hitbox from both sides
func TestDoorGapPassable(t *testing.T) {
	rooms := testRoom()
	doorX := rooms[0].DoorX

	// Walk a vertical path through the door center: every sample from just
	// outside to just inside must be free
	for y := 160.0; y >= 130.0; y -= 2.0 {
		if Blocked(doorX, y, rooms) {
			t.Fatalf("door center x=%v blocked at y=%v", doorX, y)
		}
	}
}

// TestDoorGapWidth verifies positions just beyond the widened gap block
func TestDoorGapWidth(t *testing.T) {
	rooms := testRoom()
	doorX := rooms[0].DoorX
	half := constant.DoorWidth/2 + constant.DoorSlack

	// On the bottom wall band, clearly past the passable gap
	farX := doorX + half + constant.PlayerHitboxHalfW + 2
	if !Blocked(farX, 150, rooms) {
		t.Errorf("x=%v on the bottom wall past the door should block", farX)
	}
}

// TestWallContainment verifies a hitbox inside cannot end up embedded in a
// side wall: every x position whose hitbox overlaps the left wall blocks
func TestWallContainment(t *testing.T) {
	rooms := testRoom()
	wall := constant.WallThickness

	for x := 1.0; x < wall+constant.PlayerHitboxHalfW; x += 0.5 {
		if !Blocked(x, 75, rooms) {
			t.Errorf("hitbox at x=%v overlaps the left wall band and should block", x)
		}
	}
}

// TestBlockedMultipleRooms verifies colliders are independent per room
func TestBlockedMultipleRooms(t *testing.T) {
	rooms := append(testRoom(), RoomCollider{
		Rect:  Rect{X: 400, Y: 0, W: 100, H: 100},
		DoorX: 450,
		DoorY: 100,
		DoorW: constant.DoorWidth,
	})

	if !Blocked(400, 50, rooms) {
		t.Error("second room's left wall should block")
	}
	if Blocked(300, 50, rooms) {
		t.Error("gap between rooms should not block")
	}
}
