package tsp

import (
	"math"

	"github.com/avplan/tourplanner/matrix"
)

// BruteForce solves TSP by exhaustive permutation enumeration over the
// non-start vertices: for each permutation, compute the closed-tour
// length start → π(1) → ... → π(n-1) → start, and keep the minimum.
// Complexity O((n-1)! · n); intended for small n and as ground truth in
// testing other solvers.
type BruteForce struct{}

// Solve implements Solver.
func (BruteForce) Solve(dist *matrix.Dense, start int) ([]int, float64, error) {
	normDist, n, err := normalize(dist, start)
	if err != nil {
		return nil, 0, err
	}

	order := nonStartVertices(n, start)

	var bestTour []int
	bestLength := math.Inf(1)

	permute(order, 0, func(perm []int) error {
		tour := closedTour(start, perm)
		length, err := tourLength(normDist, tour)
		if err != nil {
			return err
		}
		if length < bestLength {
			bestLength = length
			bestTour = append([]int(nil), tour...)
		}

		return nil
	})

	if bestTour == nil {
		return nil, 0, ErrNoTourFound
	}

	return bestTour, bestLength, nil
}

// permute generates every permutation of items[k:] in place (Heap's
// algorithm, iterative swap counters rather than recursion-per-swap),
// invoking visit on each complete permutation of items.
func permute(items []int, k int, visit func([]int) error) error {
	if k == len(items)-1 {
		return visit(items)
	}

	for i := k; i < len(items); i++ {
		items[k], items[i] = items[i], items[k]
		if err := permute(items, k+1, visit); err != nil {
			items[k], items[i] = items[i], items[k]

			return err
		}
		items[k], items[i] = items[i], items[k]
	}

	return nil
}
