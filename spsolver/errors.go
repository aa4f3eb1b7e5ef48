package spsolver

import "errors"

// Sentinel errors returned by Dijkstra for malformed input. An unreached
// sink is not one of these — it is reported via the ordinary (nil, +Inf,
// nil) result.
var (
	// ErrNilGraph indicates a nil *visibility.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("spsolver: graph is nil")

	// ErrVertexOutOfRange indicates source or sink is not a valid node
	// index for the given graph.
	ErrVertexOutOfRange = errors.New("spsolver: vertex index out of range")

	// ErrNegativeWeight indicates a finite negative edge weight was found
	// during the upfront scan; Dijkstra requires non-negative weights.
	ErrNegativeWeight = errors.New("spsolver: negative edge weight encountered")
)
