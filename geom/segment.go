package geom

// Segment is an ordered pair of points (Start, End). Orientation matters for
// some predicates (e.g. the CCW intersection test) but not for visibility —
// blocking is symmetric regardless of which endpoint is Start.
type Segment struct {
	Start, End Point
}

// NewSegment constructs a Segment from two points.
func NewSegment(start, end Point) Segment {
	return Segment{Start: start, End: end}
}

// Length returns the Euclidean length of the segment.
// Complexity: O(1).
func (s Segment) Length() float64 {
	return Distance(s.Start, s.End)
}
