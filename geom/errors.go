package geom

import "errors"

// Sentinel errors for geometry primitive construction. Predicates assume
// their inputs already passed these checks; only constructors validate.
var (
	// ErrInvalidRadius indicates a Disk or Arc was given a non-positive radius.
	ErrInvalidRadius = errors.New("geom: radius must be positive")

	// ErrInvalidPolygon indicates fewer than three distinct vertices.
	ErrInvalidPolygon = errors.New("geom: polygon requires at least three distinct vertices")

	// ErrInvalidArc indicates an arc endpoint is not equidistant (within
	// EpsPoint) from the arc's center.
	ErrInvalidArc = errors.New("geom: arc endpoints must lie on the circle of the given radius")
)
