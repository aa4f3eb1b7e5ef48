package connectivity

import (
	"fmt"
	"math"
	"sort"

	"github.com/avplan/tourplanner/matrix"
)

// Check verifies that the directed graph induced by dist's finite entries
// is strongly connected from start: start must reach every other vertex,
// and every other vertex must reach start.
//
// Implementation: two DFS passes (Kosaraju's approach, specialized to a
// single-source strong-connectivity check rather than full SCC
// enumeration) — one over the forward adjacency, one over the reverse
// adjacency, both rooted at start. A vertex missing from either pass's
// reachable set is unreachable.
//
// Complexity: O(V²) to build the adjacency lists from the dense matrix,
// O(V + E) per DFS pass.
func Check(dist *matrix.Dense, start int) error {
	n := dist.Rows()
	forward, err := adjacency(dist, n, false)
	if err != nil {
		return err
	}
	reverse, err := adjacency(dist, n, true)
	if err != nil {
		return err
	}

	reachableForward := dfs(forward, n, start)
	reachableReverse := dfs(reverse, n, start)

	var unreachable []int
	for v := 0; v < n; v++ {
		if !reachableForward[v] || !reachableReverse[v] {
			unreachable = append(unreachable, v)
		}
	}

	if len(unreachable) > 0 {
		sort.Ints(unreachable)

		return &UnreachableVerticesError{Indices: unreachable}
	}

	return nil
}

// adjacency builds an adjacency list from dist's finite off-diagonal
// entries. When reversed is true, edge i→j is recorded under j instead of
// i, yielding the transpose graph.
func adjacency(dist *matrix.Dense, n int, reversed bool) ([][]int, error) {
	adj := make([][]int, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			w, err := dist.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("connectivity: %w", err)
			}
			if math.IsInf(w, 1) {
				continue
			}
			if reversed {
				adj[j] = append(adj[j], i)
			} else {
				adj[i] = append(adj[i], j)
			}
		}
	}

	return adj, nil
}

// dfs walks adj from source, returning the set of vertices reached
// (including source itself).
func dfs(adj [][]int, n, source int) []bool {
	visited := make([]bool, n)
	var walk func(u int)
	walk = func(u int) {
		visited[u] = true
		for _, v := range adj[u] {
			if !visited[v] {
				walk(v)
			}
		}
	}
	walk(source)

	return visited
}
