// Package scene defines the input boundary of the planner: a Scene (a
// start point, a list of control points to visit, and a set of obstacles)
// and the Obstacle tagged union over disk, segment, and polygon geometry.
package scene
