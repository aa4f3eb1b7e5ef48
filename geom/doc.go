// Package geom defines the planar geometry primitives shared by every layer
// of the tour planner: Point, Segment, Disk, Polygon, and Arc.
//
// These are value objects — created once from a scene and never mutated
// during planning (see the planner package for the call that owns them).
// Equality and boundary membership are always tolerance-based (EpsPoint),
// never bitwise, per the numeric-invariant discipline the rest of this
// module follows.
package geom
