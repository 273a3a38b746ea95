package quilt

import "math"

// SnapValue rounds v to the nearest multiple of GridSize. Exact halves
// round up toward positive infinity: 25 snaps to 50 and -25 snaps to 0.
func SnapValue(v float64) float64 {
	return math.Floor(v/GridSize+0.5) * GridSize
}

// Snap aligns p to the grid on both axes.
func Snap(p Point) Point {
	return Point{SnapValue(p.X), SnapValue(p.Y)}
}
