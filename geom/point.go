package geom

import "math"

// EpsPoint is the absolute tolerance used for coordinate equality and
// boundary-membership checks throughout the planner. Never compare Points
// with bitwise equality; always go through Equal or Distance.
const EpsPoint = 1e-5

// Point is a 2-D location with machine floating-point coordinates.
type Point struct {
	X, Y float64
}

// NewPoint constructs a Point. Points have no invariants to validate; the
// constructor exists for symmetry with the other primitives' constructors.
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Distance returns the Euclidean distance between a and b.
// Complexity: O(1).
func Distance(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y

	return math.Hypot(dx, dy)
}

// Equal reports whether a and b coincide within EpsPoint.
// Complexity: O(1).
func (a Point) Equal(b Point) bool {
	return Distance(a, b) <= EpsPoint
}
