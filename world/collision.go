package world

import (
	"github.com/gmuffiness/agentfloor/constant"
)

// Blocked reports whether the player hitbox centered at (px, py) is stopped
// by a room wall. Called once per axis each movement step so movement can
// slide along the unblocked axis.
//
// Each room is a hollow box: the hitbox moves freely when it does not touch
// the room's outer rectangle and when it is fully inside the interior (outer
// bounds shrunk by the wall thickness). In between lies the wall band, which
// blocks except through the door gap on the bottom wall. Boundary contact
// uses strict comparisons so a hitbox exactly on a wall or door edge is not
// blocked.
func Blocked(px, py float64, rooms []RoomCollider) bool {
	const (
		hw   = constant.PlayerHitboxHalfW
		hh   = constant.PlayerHitboxHalfH
		wall = constant.WallThickness
	)

	for i := range rooms {
		room := &rooms[i]
		rL := room.X
		rR := room.Right()
		rT := room.Y
		rB := room.Bottom()

		overlapX := px+hw > rL && px-hw < rR
		overlapY := py+hh > rT && py-hh < rB
		if !overlapX || !overlapY {
			continue
		}

		insideInterior := px-hw >= rL+wall &&
			px+hw <= rR-wall &&
			py-hh >= rT+wall &&
			py+hh <= rB-wall
		if insideInterior {
			continue
		}

		doorHalfW := room.DoorW/2 + constant.DoorSlack
		inDoorX := px > room.DoorX-doorHalfW && px < room.DoorX+doorHalfW
		inBottomWall := py+hh > rB-wall && py-hh < rB+constant.DoorBelowReach
		if inDoorX && inBottomWall {
			continue
		}

		return true
	}

	return false
}
