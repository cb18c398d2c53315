package vmath

// CellPoint is an integer cell coordinate produced by line traversal
type CellPoint struct {
	X, Y int
}

// LinePoints returns the Bresenham cells from (x0,y0) to (x1,y1) inclusive.
// Connector lines between parent and sub-agent avatars are drawn with it.
func LinePoints(x0, y0, x1, y1 int) []CellPoint {
	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy < 0 {
		dy = -dy
	}
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}

	pts := make([]CellPoint, 0, dx+dy+1)
	err := dx - dy
	x, y := x0, y0
	for {
		pts = append(pts, CellPoint{X: x, Y: y})
		if x == x1 && y == y1 {
			return pts
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}
