package tsp

// closedTour builds the closed-tour index sequence start → order[0] →
// order[1] → ... → start, where order is a permutation of the non-start
// vertices.
func closedTour(start int, order []int) []int {
	tour := make([]int, 0, len(order)+2)
	tour = append(tour, start)
	tour = append(tour, order...)
	tour = append(tour, start)

	return tour
}

// nonStartVertices returns [0, n) with start removed, preserving order.
func nonStartVertices(n, start int) []int {
	out := make([]int, 0, n-1)
	for v := 0; v < n; v++ {
		if v != start {
			out = append(out, v)
		}
	}

	return out
}
