// Package visibility builds the tangent visibility graph for a single
// start/end pair against a scene's obstacle set: a node list (the start,
// the end, obstacle vertices, and disk tangent-touch points) plus a dense
// weight matrix whose finite entries are exactly the free-space hops a
// shortest-path solver may take.
package visibility
