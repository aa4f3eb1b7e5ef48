// Package route defines Route, the typed polyline the planner hands back
// to callers: an ordered sequence of Segment and Arc atoms, or the
// unreachable sentinel when no finite path exists between two points.
package route
