package tsp

import (
	"container/heap"
	"math"

	"github.com/avplan/tourplanner/matrix"
)

// LittleBranchAndBound solves TSP by matrix-reduction branch-and-bound
// (Little's method): a search tree of nodes, each carrying a reduced cost
// matrix, a lower bound on any tour extending the node's committed edges,
// and the committed edge list itself. Nodes are explored best-first by
// lower bound via a min-heap; branching picks the zero-cost cell with the
// largest reduction penalty, forbidding premature sub-cycles as edges
// commit.
type LittleBranchAndBound struct{}

// Solve implements Solver.
func (LittleBranchAndBound) Solve(dist *matrix.Dense, start int) ([]int, float64, error) {
	original, n, err := normalize(dist, start)
	if err != nil {
		return nil, 0, err
	}

	root, err := bbMatrixFrom(original, n)
	if err != nil {
		return nil, 0, err
	}
	rootBound, err := reduceMatrixFull(root)
	if err != nil {
		return nil, 0, err
	}

	pq := make(bbHeap, 0, 64)
	heap.Init(&pq)
	heap.Push(&pq, &bbNode{m: root, bound: rootBound})

	incumbentLength := math.Inf(1)
	var incumbentTour []int

	for pq.Len() > 0 {
		node := heap.Pop(&pq).(*bbNode)

		if node.bound >= incumbentLength {
			break
		}

		if len(node.edges) == n-1 {
			closeU, closeV, ok := chainEnds(node.edges)
			if !ok {
				continue
			}
			edges := append(append([][2]int(nil), node.edges...), [2]int{closeU, closeV})
			tour, err := tourFromEdges(start, edges, n)
			if err != nil {
				continue
			}
			length, err := tourLength(original, tour)
			if err != nil {
				return nil, 0, err
			}
			if length < incumbentLength {
				incumbentLength = length
				incumbentTour = tour
			}

			continue
		}

		r, c, found := bestPenaltyCell(node.m, n)
		if !found {
			continue
		}

		left, err := bbLeftChild(node, r, c)
		if err != nil {
			return nil, 0, err
		}
		heap.Push(&pq, left)

		right, err := bbRightChild(node, r, c, n)
		if err != nil {
			return nil, 0, err
		}
		heap.Push(&pq, right)
	}

	if incumbentTour == nil {
		return nil, 0, ErrNoTourFound
	}

	return incumbentTour, incumbentLength, nil
}

// bbNode is one node of the branch-and-bound search tree.
type bbNode struct {
	m     *matrix.Dense
	bound float64
	edges [][2]int
}

// bbHeap is a min-heap of *bbNode ordered by ascending bound.
type bbHeap []*bbNode

func (h bbHeap) Len() int            { return len(h) }
func (h bbHeap) Less(i, j int) bool  { return h[i].bound < h[j].bound }
func (h bbHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *bbHeap) Push(x interface{}) { *h = append(*h, x.(*bbNode)) }
func (h *bbHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// bbMatrixFrom builds the working reduction matrix from the normalized
// distance matrix: identical off-diagonal, but with +Inf on the diagonal
// so self-loops can never be picked as a zero-cost branching cell.
func bbMatrixFrom(dist *matrix.Dense, n int) (*matrix.Dense, error) {
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				if err := m.Set(i, j, math.Inf(1)); err != nil {
					return nil, err
				}

				continue
			}
			v, err := dist.At(i, j)
			if err != nil {
				return nil, err
			}
			if err := m.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

func cloneDense(m *matrix.Dense) (*matrix.Dense, error) {
	n := m.Rows()
	cp, err := matrix.NewDense(n, m.Cols())
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			if err := cp.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return cp, nil
}

// reduceMatrixFull performs row reduction followed by column reduction
// over the entire matrix, returning the total value subtracted.
func reduceMatrixFull(m *matrix.Dense) (float64, error) {
	n := m.Rows()
	var total float64

	for i := 0; i < n; i++ {
		v, err := reduceRowOnly(m, i)
		if err != nil {
			return 0, err
		}
		total += v
	}
	for j := 0; j < n; j++ {
		v, err := reduceColOnly(m, j)
		if err != nil {
			return 0, err
		}
		total += v
	}

	return total, nil
}

// reduceRowOnly subtracts row r's minimum finite entry from every finite
// entry in row r, returning that minimum (0 if the row has no finite
// entry).
func reduceRowOnly(m *matrix.Dense, r int) (float64, error) {
	n := m.Cols()
	min := math.Inf(1)
	for j := 0; j < n; j++ {
		v, err := m.At(r, j)
		if err != nil {
			return 0, err
		}
		if v < min {
			min = v
		}
	}
	if math.IsInf(min, 1) || min == 0 {
		return 0, nil
	}
	for j := 0; j < n; j++ {
		v, err := m.At(r, j)
		if err != nil {
			return 0, err
		}
		if !math.IsInf(v, 1) {
			if err := m.Set(r, j, v-min); err != nil {
				return 0, err
			}
		}
	}

	return min, nil
}

// reduceColOnly is reduceRowOnly's column-wise counterpart.
func reduceColOnly(m *matrix.Dense, c int) (float64, error) {
	n := m.Rows()
	min := math.Inf(1)
	for i := 0; i < n; i++ {
		v, err := m.At(i, c)
		if err != nil {
			return 0, err
		}
		if v < min {
			min = v
		}
	}
	if math.IsInf(min, 1) || min == 0 {
		return 0, nil
	}
	for i := 0; i < n; i++ {
		v, err := m.At(i, c)
		if err != nil {
			return 0, err
		}
		if !math.IsInf(v, 1) {
			if err := m.Set(i, c, v-min); err != nil {
				return 0, err
			}
		}
	}

	return min, nil
}

// bestPenaltyCell finds the zero-cost cell with the largest reduction
// penalty: min(row r \ {c}) + min(column c \ {r}). Ties break by scan
// order (row-major, first strictly-greater wins).
func bestPenaltyCell(m *matrix.Dense, n int) (bestR, bestC int, found bool) {
	bestPenalty := math.Inf(-1)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			v, _ := m.At(i, j)
			if math.Abs(v) > diagTol {
				continue
			}

			penalty := rowMinExcluding(m, i, j, n) + colMinExcluding(m, j, i, n)
			if penalty > bestPenalty {
				bestPenalty = penalty
				bestR, bestC = i, j
				found = true
			}
		}
	}

	return bestR, bestC, found
}

func rowMinExcluding(m *matrix.Dense, r, skipCol, n int) float64 {
	min := math.Inf(1)
	for j := 0; j < n; j++ {
		if j == skipCol {
			continue
		}
		v, _ := m.At(r, j)
		if v < min {
			min = v
		}
	}

	return min
}

func colMinExcluding(m *matrix.Dense, c, skipRow, n int) float64 {
	min := math.Inf(1)
	for i := 0; i < n; i++ {
		if i == skipRow {
			continue
		}
		v, _ := m.At(i, c)
		if v < min {
			min = v
		}
	}

	return min
}

// bbLeftChild builds the "exclude edge r→c" child: copy the matrix, block
// (r,c), and re-reduce only row r and column c.
func bbLeftChild(parent *bbNode, r, c int) (*bbNode, error) {
	m, err := cloneDense(parent.m)
	if err != nil {
		return nil, err
	}
	if err := m.Set(r, c, math.Inf(1)); err != nil {
		return nil, err
	}

	incRow, err := reduceRowOnly(m, r)
	if err != nil {
		return nil, err
	}
	incCol, err := reduceColOnly(m, c)
	if err != nil {
		return nil, err
	}

	return &bbNode{
		m:     m,
		bound: parent.bound + incRow + incCol,
		edges: parent.edges,
	}, nil
}

// bbRightChild builds the "include edge r→c" child: copy the matrix, mask
// row r and column c, block the immediate reverse edge, forbid every
// edge that would close a premature sub-cycle given the new committed
// edge list, then re-reduce the full matrix.
func bbRightChild(parent *bbNode, r, c, n int) (*bbNode, error) {
	m, err := cloneDense(parent.m)
	if err != nil {
		return nil, err
	}

	for j := 0; j < n; j++ {
		if err := m.Set(r, j, math.Inf(1)); err != nil {
			return nil, err
		}
	}
	for i := 0; i < n; i++ {
		if err := m.Set(i, c, math.Inf(1)); err != nil {
			return nil, err
		}
	}
	if err := m.Set(c, r, math.Inf(1)); err != nil {
		return nil, err
	}

	edges := append(append([][2]int(nil), parent.edges...), [2]int{r, c})

	out := make(map[int]int, len(edges))
	in := make(map[int]int, len(edges))
	for _, e := range edges {
		out[e[0]] = e[1]
		in[e[1]] = e[0]
	}
	for _, e := range edges {
		tail := e[1]
		for next, ok := out[tail]; ok; next, ok = out[tail] {
			tail = next
		}
		head := e[0]
		for prev, ok := in[head]; ok; prev, ok = in[head] {
			head = prev
		}
		if tail != head {
			if err := m.Set(tail, head, math.Inf(1)); err != nil {
				return nil, err
			}
		}
	}

	inc, err := reduceMatrixFull(m)
	if err != nil {
		return nil, err
	}

	return &bbNode{
		m:     m,
		bound: parent.bound + inc,
		edges: edges,
	}, nil
}

// chainEnds walks the committed edges (which form disjoint simple paths,
// since every vertex has at most one outgoing and one incoming committed
// edge) and returns the single remaining implied closing edge once
// exactly n-1 edges are committed: the tail of the one chain and its
// head.
func chainEnds(edges [][2]int) (tail, head int, ok bool) {
	if len(edges) == 0 {
		return 0, 0, false
	}

	out := make(map[int]int, len(edges))
	in := make(map[int]int, len(edges))
	for _, e := range edges {
		out[e[0]] = e[1]
		in[e[1]] = e[0]
	}

	start := edges[0][0]
	for prev, ok := in[start]; ok; prev, ok = in[start] {
		start = prev
	}
	end := start
	for next, ok := out[end]; ok; next, ok = out[end] {
		end = next
	}

	return end, start, true
}

// tourFromEdges walks the fully committed edge set (n edges forming a
// single Hamiltonian cycle) starting at start, returning the closed tour.
func tourFromEdges(start int, edges [][2]int, n int) ([]int, error) {
	next := make(map[int]int, len(edges))
	for _, e := range edges {
		next[e[0]] = e[1]
	}

	tour := make([]int, 0, n+1)
	tour = append(tour, start)
	cur := start
	for i := 0; i < n; i++ {
		nv, ok := next[cur]
		if !ok {
			return nil, ErrNoTourFound
		}
		tour = append(tour, nv)
		cur = nv
	}

	return tour, nil
}
