package scene

import "errors"

// Sentinel errors returned by Scene validation.
var (
	// ErrNoControlPoints indicates a scene with no control points to visit.
	ErrNoControlPoints = errors.New("scene: no control points")

	// ErrInvalidObstacle indicates an obstacle whose Kind does not match any
	// of the populated geometry fields, or whose geometry is itself invalid.
	ErrInvalidObstacle = errors.New("scene: invalid obstacle")

	// ErrNonConvexPolygon indicates a polygon obstacle that failed the
	// opt-in convexity check.
	ErrNonConvexPolygon = errors.New("scene: polygon obstacle is not convex")

	// ErrOutOfWindow indicates a coordinate outside the opt-in coordinate
	// window bound.
	ErrOutOfWindow = errors.New("scene: coordinate outside window")
)
