package geom

// Disk is a circular obstacle: a center Point and a positive radius.
// Invariant: Radius > 0. Any coordinate-window bound on Center is enforced,
// if at all, by the caller — Disk itself only checks the radius invariant.
type Disk struct {
	Center Point
	Radius float64
}

// NewDisk validates and constructs a Disk.
// Stage 1 (Validate): radius must be strictly positive.
// Stage 2 (Finalize): return the Disk value.
// Complexity: O(1).
func NewDisk(center Point, radius float64) (Disk, error) {
	if radius <= 0 {
		return Disk{}, ErrInvalidRadius
	}

	return Disk{Center: center, Radius: radius}, nil
}

// OnBoundary reports whether p lies on the disk's boundary within EpsPoint.
// Complexity: O(1).
func (d Disk) OnBoundary(p Point) bool {
	dist := Distance(d.Center, p)

	return abs(dist-d.Radius) <= EpsPoint
}

// Contains reports whether p lies strictly inside the disk (beyond EpsPoint
// of the boundary). A point strictly inside a disk has no tangents onto it.
// Complexity: O(1).
func (d Disk) Contains(p Point) bool {
	return Distance(d.Center, p) < d.Radius-EpsPoint
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}

	return x
}
