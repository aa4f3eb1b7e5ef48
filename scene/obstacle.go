package scene

import "github.com/avplan/tourplanner/geom"

// Kind discriminates which geometry field of an Obstacle is populated.
type Kind int

const (
	// KindDisk marks an Obstacle whose Disk field is populated.
	KindDisk Kind = iota
	// KindSegment marks an Obstacle whose Segment field is populated.
	KindSegment
	// KindPolygon marks an Obstacle whose Polygon field is populated.
	KindPolygon
)

// Obstacle is a tagged union over the three obstacle shapes the planner
// understands. Exactly one of Disk, Segment, Polygon is meaningful,
// selected by Kind — a flat struct rather than an interface hierarchy, so
// the visibility builder can switch on Kind without type assertions.
type Obstacle struct {
	Kind    Kind
	Disk    geom.Disk
	Segment geom.Segment
	Polygon geom.Polygon
}

// NewDiskObstacle wraps d as a KindDisk Obstacle.
func NewDiskObstacle(d geom.Disk) Obstacle {
	return Obstacle{Kind: KindDisk, Disk: d}
}

// NewSegmentObstacle wraps s as a KindSegment Obstacle.
func NewSegmentObstacle(s geom.Segment) Obstacle {
	return Obstacle{Kind: KindSegment, Segment: s}
}

// NewPolygonObstacle wraps p as a KindPolygon Obstacle.
func NewPolygonObstacle(p geom.Polygon) Obstacle {
	return Obstacle{Kind: KindPolygon, Polygon: p}
}
