package tsp

import "errors"

// Sentinel errors shared by every solver and the multi-vehicle transform.
var (
	// ErrNonSquare indicates the distance matrix is not square.
	ErrNonSquare = errors.New("tsp: matrix is not square")

	// ErrTooFewVertices indicates a matrix of order less than 2 — no tour
	// is meaningful.
	ErrTooFewVertices = errors.New("tsp: fewer than two vertices")

	// ErrNegativeWeight indicates a finite negative distance, other than
	// the -1 alias-for-infinity sentinel.
	ErrNegativeWeight = errors.New("tsp: negative distance encountered")

	// ErrNonZeroDiagonal indicates some dist[i][i] != 0.
	ErrNonZeroDiagonal = errors.New("tsp: non-zero self-distance")

	// ErrStartOutOfRange indicates start is outside [0, n).
	ErrStartOutOfRange = errors.New("tsp: start vertex out of range")

	// ErrNoTourFound indicates every candidate tour was blocked by a +Inf
	// edge — the matrix has no Hamiltonian cycle through start.
	ErrNoTourFound = errors.New("tsp: no Hamiltonian cycle exists")

	// ErrInvalidVehicleCount indicates MultiVehicleExpand was asked for
	// fewer than one vehicle.
	ErrInvalidVehicleCount = errors.New("tsp: vehicle count must be at least 1")
)
