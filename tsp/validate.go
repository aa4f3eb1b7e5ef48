package tsp

import (
	"fmt"
	"math"

	"github.com/avplan/tourplanner/matrix"
)

// diagTol is the tolerance used when checking that a matrix's diagonal is
// zero.
const diagTol = 1e-9

// normalize validates dist's shape and start vertex, then returns a fresh
// *matrix.Dense of the same order with every -1 entry replaced by +Inf —
// the input matrix is never mutated.
//
// Complexity: O(n²).
func normalize(dist *matrix.Dense, start int) (*matrix.Dense, int, error) {
	if dist == nil {
		return nil, 0, fmt.Errorf("tsp: %w", ErrNonSquare)
	}

	n := dist.Rows()
	if dist.Cols() != n {
		return nil, 0, ErrNonSquare
	}
	if n < 2 {
		return nil, 0, ErrTooFewVertices
	}
	if start < 0 || start >= n {
		return nil, 0, ErrStartOutOfRange
	}

	out, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, 0, fmt.Errorf("tsp: %w", err)
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, err := dist.At(i, j)
			if err != nil {
				return nil, 0, fmt.Errorf("tsp: %w", err)
			}

			if i == j {
				if math.Abs(v) > diagTol {
					return nil, 0, ErrNonZeroDiagonal
				}
				if err := out.Set(i, j, 0); err != nil {
					return nil, 0, fmt.Errorf("tsp: %w", err)
				}

				continue
			}

			if v == -1 {
				v = math.Inf(1)
			} else if !math.IsInf(v, 1) && v < 0 {
				return nil, 0, fmt.Errorf("%w: (%d,%d)=%g", ErrNegativeWeight, i, j, v)
			}

			if err := out.Set(i, j, v); err != nil {
				return nil, 0, fmt.Errorf("tsp: %w", err)
			}
		}
	}

	return out, n, nil
}
