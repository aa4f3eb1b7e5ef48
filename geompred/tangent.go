package geompred

import (
	"math"

	"github.com/avplan/tourplanner/geom"
)

// TangentPoints returns the tangent touch points on disk as seen from
// external:
//
//   - If external lies strictly inside the disk, there are no tangents:
//     returns (zero value, 0, nil).
//   - If external lies on the boundary, the two tangents degenerate to a
//     single point (external itself): returns (t1==t2, 1, nil).
//   - Otherwise there are exactly two tangent points, touching the circle
//     at angles φ ± acos(clamp(radius/d, −1, 1)) relative to the ray from
//     the disk center to external, where φ is that ray's angle and d is
//     the distance from external to the center.
//
// Complexity: O(1).
func TangentPoints(external geom.Point, d geom.Disk) (t1, t2 geom.Point, count int, err error) {
	if d.Contains(external) {
		return geom.Point{}, geom.Point{}, 0, nil
	}

	dist := geom.Distance(external, d.Center)
	phi := math.Atan2(external.Y-d.Center.Y, external.X-d.Center.X)

	ratio := d.Radius / dist
	if ratio > 1 {
		ratio = 1
	}
	if ratio < -1 {
		ratio = -1
	}
	alpha := math.Acos(ratio)

	theta1 := phi + alpha
	theta2 := phi - alpha
	t1 = geom.Point{
		X: d.Center.X + d.Radius*math.Cos(theta1),
		Y: d.Center.Y + d.Radius*math.Sin(theta1),
	}
	t2 = geom.Point{
		X: d.Center.X + d.Radius*math.Cos(theta2),
		Y: d.Center.Y + d.Radius*math.Sin(theta2),
	}

	if d.OnBoundary(external) {
		// alpha ≈ 0: t1 and t2 both coincide with external. Report the
		// degenerate single-point case explicitly rather than relying on
		// callers to notice t1≈t2.
		return t1, t1, 1, nil
	}

	return t1, t2, 2, nil
}
