package vmath

import "math"

// EaseInOutSine maps linear progress t in [0,1] onto a sine ease curve.
// Used by camera animate-to so pans and zooms start and end gently.
func EaseInOutSine(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return -(math.Cos(math.Pi*t) - 1) / 2
}
