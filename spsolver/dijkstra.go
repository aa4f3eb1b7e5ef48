package spsolver

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/avplan/tourplanner/visibility"
)

// Dijkstra computes the shortest path from source to sink in g. It returns
// the path as a sequence of node indices (source first, sink last,
// inclusive) and the path's total length.
//
// If sink is unreached, Dijkstra returns (nil, math.Inf(1), nil) — this is
// not an error. err is reserved for malformed input: a nil graph, an
// out-of-range source/sink, or a finite negative edge weight.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra(g *visibility.Graph, source, sink int) ([]int, float64, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}

	n := g.W.Rows()
	if source < 0 || source >= n || sink < 0 || sink >= n {
		return nil, 0, ErrVertexOutOfRange
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			w, err := g.W.At(i, j)
			if err != nil {
				return nil, 0, fmt.Errorf("spsolver: %w", err)
			}
			if !math.IsInf(w, 1) && w < 0 {
				return nil, 0, fmt.Errorf("%w: %d→%d weight=%g", ErrNegativeWeight, i, j, w)
			}
		}
	}

	r := &runner{
		g:       g,
		n:       n,
		dist:    make([]float64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
	}
	r.init(source)
	if err := r.process(); err != nil {
		return nil, 0, err
	}

	if math.IsInf(r.dist[sink], 1) {
		return nil, math.Inf(1), nil
	}

	return r.reconstruct(source, sink), r.dist[sink], nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *visibility.Graph
	n       int
	dist    []float64
	prev    []int
	visited []bool
	pq      nodePQ
}

func (r *runner) init(source int) {
	for i := 0; i < r.n; i++ {
		r.dist[i] = math.Inf(1)
		r.prev[i] = -1
	}
	r.dist[source] = 0

	r.pq = make(nodePQ, 0, r.n)
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: source, dist: 0})
}

func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		if r.visited[u] {
			continue
		}
		r.visited[u] = true

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

func (r *runner) relax(u int) error {
	for v := 0; v < r.n; v++ {
		if v == u {
			continue
		}

		w, err := r.g.W.At(u, v)
		if err != nil {
			return fmt.Errorf("spsolver: %w", err)
		}
		if math.IsInf(w, 1) {
			continue
		}

		newDist := r.dist[u] + w
		if newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}

	return nil
}

func (r *runner) reconstruct(source, sink int) []int {
	path := []int{sink}
	for cur := sink; cur != source; {
		cur = r.prev[cur]
		path = append(path, cur)
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// nodeItem is a (vertex, tentative distance) pair stored in the heap.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by ascending dist. A shorter
// distance found for an already-queued vertex is pushed as a new entry
// rather than updated in place; stale entries are skipped on pop via
// runner.visited.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
