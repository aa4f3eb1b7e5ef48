package geom

import "math"

// Arc is a circular-boundary path: a center Point, a radius, and two
// endpoints on the circle. Invariant: |Center−Start| = |Center−End| =
// Radius within EpsPoint. Angles are measured via atan2 relative to Center;
// Length always follows the shorter of the two possible angular sweeps
// between Start and End, reduced to [0, π].
type Arc struct {
	Center     Point
	Radius     float64
	Start, End Point
}

// NewArc validates and constructs an Arc.
// Stage 1 (Validate): radius positive, both endpoints on the circle.
// Stage 2 (Finalize): return the Arc value.
// Complexity: O(1).
func NewArc(center Point, radius float64, start, end Point) (Arc, error) {
	if radius <= 0 {
		return Arc{}, ErrInvalidRadius
	}
	if abs(Distance(center, start)-radius) > EpsPoint {
		return Arc{}, ErrInvalidArc
	}
	if abs(Distance(center, end)-radius) > EpsPoint {
		return Arc{}, ErrInvalidArc
	}

	return Arc{Center: center, Radius: radius, Start: start, End: end}, nil
}

// Length returns radius · |Δθ| where Δθ is the shorter angular sweep
// between Start and End, reduced to [0, π].
// Complexity: O(1).
func (a Arc) Length() float64 {
	return a.Radius * ShorterAngleSweep(a.Center, a.Start, a.End)
}

// ShorterAngleSweep returns the absolute angle between the rays from center
// to p1 and from center to p2, reduced to the range [0, π] — i.e. always
// the shorter of the two possible sweeps around the circle.
// Complexity: O(1).
func ShorterAngleSweep(center, p1, p2 Point) float64 {
	theta1 := math.Atan2(p1.Y-center.Y, p1.X-center.X)
	theta2 := math.Atan2(p2.Y-center.Y, p2.X-center.X)
	delta := theta2 - theta1
	// Reduce to (-π, π], then take the absolute value so either sweep
	// direction yields the same, shorter-arc length.
	for delta > math.Pi {
		delta -= 2 * math.Pi
	}
	for delta < -math.Pi {
		delta += 2 * math.Pi
	}

	return abs(delta)
}
