// Package geompred implements the geometric predicates the visibility graph
// builder relies on: strict segment–segment intersection, point-to-disk
// tangent construction, segment-to-disk clearance, and shorter-arc length.
//
// Numeric tolerances:
//
//	EpsClear = 1e-4 absorbs the round-off of a tangent line computed from
//	TangentPoints so it is not falsely reported as intersecting its own
//	disk. Coordinate/boundary tolerance (EpsPoint) lives in geom.
//
// Grey-zone policy: when a predicate's inputs are degenerate enough to sit
// on the edge of a tolerance band, the implementation errs toward reporting
// the edge as blocked — a false-negative on visibility costs optimality,
// not safety.
package geompred
