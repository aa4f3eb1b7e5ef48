package tsp

import (
	"math"

	"github.com/avplan/tourplanner/matrix"
)

// MultiVehicleExpand transforms a single-start distance matrix into one
// that lets a single-vehicle TSP solver produce a multi-vehicle tour: the
// start row and column are each replicated vehicles-1 times (clones of
// the start sharing its distances to/from every real point, but mutually
// unreachable via +Inf between clones), so one Hamiltonian cycle over the
// expanded matrix
// decomposes into `vehicles` subtours sharing the original start.
func MultiVehicleExpand(dist *matrix.Dense, start, vehicles int) (*matrix.Dense, error) {
	if vehicles < 1 {
		return nil, ErrInvalidVehicleCount
	}

	n := dist.Rows()
	if dist.Cols() != n {
		return nil, ErrNonSquare
	}
	if start < 0 || start >= n {
		return nil, ErrStartOutOfRange
	}
	if vehicles == 1 {
		return cloneDense(dist)
	}

	extra := vehicles - 1
	expanded, err := matrix.NewDense(n+extra, n+extra)
	if err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, err := dist.At(i, j)
			if err != nil {
				return nil, err
			}
			if err := expanded.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	for k := 0; k < extra; k++ {
		clone := n + k
		for i := 0; i < n; i++ {
			v, err := dist.At(start, i)
			if err != nil {
				return nil, err
			}
			if err := expanded.Set(clone, i, v); err != nil {
				return nil, err
			}

			v, err = dist.At(i, start)
			if err != nil {
				return nil, err
			}
			if err := expanded.Set(i, clone, v); err != nil {
				return nil, err
			}
		}
	}

	for k1 := 0; k1 < extra; k1++ {
		for k2 := 0; k2 < extra; k2++ {
			if k1 == k2 {
				continue
			}
			if err := expanded.Set(n+k1, n+k2, math.Inf(1)); err != nil {
				return nil, err
			}
		}
	}

	return expanded, nil
}

// MultiVehicleSplit demultiplexes a tour produced over a
// MultiVehicleExpand'd matrix back into per-vehicle subtours. pointCount
// is the original (pre-expansion) matrix order; any tour index >=
// pointCount is a start clone and marks a subtour boundary, exactly like
// encountering start itself.
func MultiVehicleSplit(tour []int, pointCount, start int) [][]int {
	isBoundary := func(v int) bool { return v == start || v >= pointCount }

	var subtours [][]int
	var current []int
	for _, v := range tour {
		if isBoundary(v) {
			if len(current) > 1 {
				current = append(current, start)
				subtours = append(subtours, current)
			}
			current = []int{start}

			continue
		}
		current = append(current, v)
	}
	if len(current) > 1 {
		current = append(current, start)
		subtours = append(subtours, current)
	}

	return subtours
}
