package routetable

import (
	"fmt"
	"math"
	"sync"

	"github.com/avplan/tourplanner/geom"
	"github.com/avplan/tourplanner/matrix"
	"github.com/avplan/tourplanner/route"
	"github.com/avplan/tourplanner/scene"
	"github.com/avplan/tourplanner/spsolver"
	"github.com/avplan/tourplanner/visibility"
)

// Table holds the pairwise computation over a scene's point list: an N×N
// distance matrix (the TSP solver's input) and the N×N Route table the
// distances were derived from (used to materialize the final polyline).
type Table struct {
	Distances *matrix.Dense
	Routes    [][]route.Route
}

// Build computes the pairwise route table for pts against obstacles.
// Diagonal entries are the empty route (distance 0); off-diagonal entries
// invoke visibility.Build and spsolver.Dijkstra for the pair, then
// reconstruct the polyline: consecutive node pairs that touch the same
// disk become an arc, everything else becomes a straight segment.
// Unreachable pairs get the route.Unreachable() sentinel and a +Inf
// distance entry.
func Build(pts []geom.Point, obstacles []scene.Obstacle, opts Options) (*Table, error) {
	n := len(pts)
	dist, err := matrix.NewDenseFilled(n, n, math.Inf(1))
	if err != nil {
		return nil, fmt.Errorf("routetable: %w", err)
	}
	routes := make([][]route.Route, n)
	for i := range routes {
		routes[i] = make([]route.Route, n)
	}
	for i := 0; i < n; i++ {
		if err := dist.Set(i, i, 0); err != nil {
			return nil, fmt.Errorf("routetable: %w", err)
		}
	}

	type job struct{ i, j int }
	var jobs []job
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				jobs = append(jobs, job{i, j})
			}
		}
	}

	compute := func(j job) error {
		r, length, err := pairRoute(pts[j.i], pts[j.j], obstacles)
		if err != nil {
			return err
		}
		routes[j.i][j.j] = r
		if err := dist.Set(j.i, j.j, length); err != nil {
			return fmt.Errorf("routetable: %w", err)
		}

		return nil
	}

	if !opts.Parallel || len(jobs) == 0 {
		for _, j := range jobs {
			if err := compute(j); err != nil {
				return nil, err
			}
		}

		return &Table{Distances: dist, Routes: routes}, nil
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}

	// Buffered so the producer below never blocks even if workers bail out
	// early on an error.
	jobCh := make(chan job, len(jobs))
	errCh := make(chan error, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for j := range jobCh {
				if err := compute(j); err != nil {
					errCh <- err

					return
				}
			}
		}()
	}
	for _, j := range jobs {
		jobCh <- j
	}
	close(jobCh)
	wg.Wait()
	close(errCh)

	if err := <-errCh; err != nil {
		return nil, err
	}

	return &Table{Distances: dist, Routes: routes}, nil
}

// pairRoute computes the route and its length between from and to.
func pairRoute(from, to geom.Point, obstacles []scene.Obstacle) (route.Route, float64, error) {
	g, err := visibility.Build(from, to, obstacles)
	if err != nil {
		return route.Route{}, 0, fmt.Errorf("routetable: %w", err)
	}

	path, length, err := spsolver.Dijkstra(g, 0, 1)
	if err != nil {
		return route.Route{}, 0, fmt.Errorf("routetable: %w", err)
	}
	if math.IsInf(length, 1) {
		return route.Unreachable(), math.Inf(1), nil
	}

	var atoms []route.Atom
	for k := 0; k+1 < len(path); k++ {
		a, b := g.Nodes[path[k]], g.Nodes[path[k+1]]
		if a.DiskID >= 0 && a.DiskID == b.DiskID {
			disk := diskForID(obstacles, a.DiskID)
			arc, err := geom.NewArc(disk.Center, disk.Radius, a.Point, b.Point)
			if err != nil {
				return route.Route{}, 0, fmt.Errorf("routetable: %w", err)
			}
			atoms = append(atoms, route.NewArcAtom(arc))
		} else {
			atoms = append(atoms, route.NewSegmentAtom(geom.NewSegment(a.Point, b.Point)))
		}
	}

	return route.Route{Atoms: atoms}, length, nil
}

func diskForID(obstacles []scene.Obstacle, id int) geom.Disk {
	if id < 0 || id >= len(obstacles) {
		return geom.Disk{}
	}

	return obstacles[id].Disk
}
