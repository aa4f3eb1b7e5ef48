package geompred

import "github.com/avplan/tourplanner/geom"

// ccw returns the signed area of the triangle (a, b, c): positive if a→b→c
// turns counter-clockwise, negative if clockwise, zero if collinear.
// Complexity: O(1).
func ccw(a, b, c geom.Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// SegmentIntersectsSegment reports whether s1 and s2 cross strictly — i.e.
// each segment's endpoints lie on opposite sides of the other. Endpoints
// merely touching (one segment's endpoint lying on the other) is NOT
// counted as an intersection: a path tangent to a polygon vertex is
// visible.
// Complexity: O(1).
func SegmentIntersectsSegment(s1, s2 geom.Segment) bool {
	d1 := ccw(s2.Start, s2.End, s1.Start)
	d2 := ccw(s2.Start, s2.End, s1.End)
	d3 := ccw(s1.Start, s1.End, s2.Start)
	d4 := ccw(s1.Start, s1.End, s2.End)

	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}
