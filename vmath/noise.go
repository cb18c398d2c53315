package vmath

import "math"

// SeededRand is a cheap deterministic hash noise in [0,1). The same (x, y)
// always yields the same value, which keeps procedural decoration stable
// across frames and processes.
func SeededRand(x, y float64) float64 {
	n := math.Sin(x*127.1+y*311.7) * 43758.5453
	return n - math.Floor(n)
}
