package geompred

import (
	"math"

	"github.com/avplan/tourplanner/geom"
)

// SegmentClearsDisk reports whether seg stays clear of d — i.e. the closest
// point on seg to d.Center is no closer than d.Radius minus EpsClear.
// Tangent segments (closest distance within EpsClear of the radius) count
// as clearing: a visibility edge may legitimately graze the disk it was
// constructed to be tangent to.
// Complexity: O(1).
func SegmentClearsDisk(seg geom.Segment, d geom.Disk) bool {
	return distanceToSegment(d.Center, seg) >= d.Radius-EpsClear
}

// distanceToSegment returns the shortest distance from p to the segment s,
// via the clamped scalar projection of p onto the line through s.
func distanceToSegment(p geom.Point, s geom.Segment) float64 {
	dx := s.End.X - s.Start.X
	dy := s.End.Y - s.Start.Y
	lengthSq := dx*dx + dy*dy

	if lengthSq == 0 {
		return geom.Distance(p, s.Start)
	}

	t := ((p.X-s.Start.X)*dx + (p.Y-s.Start.Y)*dy) / lengthSq
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}

	proj := geom.Point{X: s.Start.X + t*dx, Y: s.Start.Y + t*dy}

	return math.Hypot(p.X-proj.X, p.Y-proj.Y)
}
