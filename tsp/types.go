package tsp

import "github.com/avplan/tourplanner/matrix"

// Solver is the common contract every TSP strategy implements: given a
// distance matrix and a start vertex, return a closed tour (beginning and
// ending at start, visiting every other vertex exactly once) and its
// total length.
type Solver interface {
	// Solve returns tour (len(tour) == dist.Rows()+1, tour[0] ==
	// tour[len(tour)-1] == start) and the sum of its consecutive edge
	// weights. If the matrix admits no Hamiltonian cycle through start,
	// Solve returns ErrNoTourFound.
	Solve(dist *matrix.Dense, start int) (tour []int, length float64, err error)
}
