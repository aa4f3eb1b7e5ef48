package tsp

import (
	"fmt"
	"math"

	"github.com/avplan/tourplanner/matrix"
)

// tourLength sums dist[tour[k]][tour[k+1]] across consecutive pairs.
// Returns +Inf if any hop is +Inf (the tour is infeasible).
//
// Complexity: O(len(tour)).
func tourLength(dist *matrix.Dense, tour []int) (float64, error) {
	var total float64
	for k := 0; k+1 < len(tour); k++ {
		w, err := dist.At(tour[k], tour[k+1])
		if err != nil {
			return 0, fmt.Errorf("tsp: %w", err)
		}
		if math.IsInf(w, 1) {
			return math.Inf(1), nil
		}
		total += w
	}

	return total, nil
}
