package geompred

import "github.com/avplan/tourplanner/geom"

// ShorterArcLength returns the length of the shorter circular arc between
// p1 and p2 on the circle of the given radius centered at center. It is a
// thin wrapper over geom.ShorterAngleSweep for callers that only have the
// two boundary points and a radius, not an assembled geom.Arc.
// Complexity: O(1).
func ShorterArcLength(center geom.Point, radius float64, p1, p2 geom.Point) float64 {
	return radius * geom.ShorterAngleSweep(center, p1, p2)
}
