package vmath

import (
	"math"
	"testing"
)

// TestNormalize2D verifies unit length and the zero-vector guard
func TestNormalize2D(t *testing.T) {
	nx, ny := Normalize2D(3, 4)
	if math.Abs(Magnitude(nx, ny)-1) > 1e-12 {
		t.Errorf("normalized magnitude %v, want 1", Magnitude(nx, ny))
	}
	if nx, ny := Normalize2D(0, 0); nx != 0 || ny != 0 {
		t.Error("zero vector must normalize to zero")
	}
}

// TestClamp verifies both bounds and the pass-through case
func TestClamp(t *testing.T) {
	if Clamp(5, 0, 3) != 3 || Clamp(-1, 0, 3) != 0 || Clamp(2, 0, 3) != 2 {
		t.Error("clamp bounds wrong")
	}
}

// TestLerpEndpoints verifies interpolation endpoints and midpoint
func TestLerpEndpoints(t *testing.T) {
	if Lerp(10, 20, 0) != 10 || Lerp(10, 20, 1) != 20 || Lerp(10, 20, 0.5) != 15 {
		t.Error("lerp endpoints wrong")
	}
}

// TestEaseInOutSine verifies clamping and the symmetric midpoint
func TestEaseInOutSine(t *testing.T) {
	if EaseInOutSine(-1) != 0 || EaseInOutSine(2) != 1 {
		t.Error("ease must clamp outside [0,1]")
	}
	if math.Abs(EaseInOutSine(0.5)-0.5) > 1e-12 {
		t.Errorf("ease midpoint %v, want 0.5", EaseInOutSine(0.5))
	}
}

// TestSeededRandRange verifies determinism and the [0,1) range
func TestSeededRandRange(t *testing.T) {
	for x := 0; x < 25; x++ {
		for y := 0; y < 25; y++ {
			v := SeededRand(float64(x), float64(y))
			if v != SeededRand(float64(x), float64(y)) {
				t.Fatalf("not deterministic at (%d,%d)", x, y)
			}
			if v < 0 || v >= 1 {
				t.Fatalf("value %v at (%d,%d) outside [0,1)", v, x, y)
			}
		}
	}
}

// TestLinePointsEndpoints verifies inclusive traversal and connectivity
func TestLinePointsEndpoints(t *testing.T) {
	pts := LinePoints(0, 0, 5, 3)
	if pts[0] != (CellPoint{0, 0}) || pts[len(pts)-1] != (CellPoint{5, 3}) {
		t.Errorf("endpoints %v .. %v", pts[0], pts[len(pts)-1])
	}
	for i := 1; i < len(pts); i++ {
		dx := pts[i].X - pts[i-1].X
		dy := pts[i].Y - pts[i-1].Y
		if dx < -1 || dx > 1 || dy < -1 || dy > 1 || (dx == 0 && dy == 0) {
			t.Fatalf("discontinuity between %v and %v", pts[i-1], pts[i])
		}
	}

	if pts := LinePoints(2, 2, 2, 2); len(pts) != 1 {
		t.Errorf("degenerate line has %d points, want 1", len(pts))
	}
}
