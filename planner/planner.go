package planner

import (
	"fmt"

	"github.com/avplan/tourplanner/connectivity"
	"github.com/avplan/tourplanner/geom"
	"github.com/avplan/tourplanner/route"
	"github.com/avplan/tourplanner/routetable"
	"github.com/avplan/tourplanner/scene"
	"github.com/avplan/tourplanner/tsp"
)

// Algorithm selects which TSP solver Plan dispatches to.
type Algorithm int

const (
	// BruteForce enumerates every permutation of non-start control points.
	// Ground truth for small scenes; factorial time.
	BruteForce Algorithm = iota

	// LittleBranchAndBound runs the matrix-reduction branch-and-bound
	// solver. The practical default for larger scenes.
	LittleBranchAndBound
)

// Result is the outcome of a successful Plan call.
type Result struct {
	// TourIndices is the closed tour over control-point indices:
	// TourIndices[0] == TourIndices[len-1] == 0 (the start), and the
	// interior is a permutation of 1..N-1.
	TourIndices []int

	// TotalLength is the sum of the tour's consecutive edge weights.
	TotalLength float64

	// Route is the concatenated polyline realizing the tour.
	Route route.Route
}

// Plan computes the shortest obstacle-avoiding closed tour over s's
// control points, starting and ending at s.Start, using the solver algo
// selects.
//
// Plan validates s, builds the pairwise route table, verifies strong
// connectivity from the start, dispatches to the selected TSP solver, and
// assembles the final Route from the per-hop routes the table computed.
// On failure it returns a *ValidationError or a
// *connectivity.UnreachableVerticesError; any other error indicates an
// internal failure in one of the underlying packages.
func Plan(s scene.Scene, algo Algorithm) (Result, error) {
	if err := s.Validate(scene.DefaultValidateOptions()); err != nil {
		return Result{}, &ValidationError{Reason: err}
	}

	pts := make([]geom.Point, 0, len(s.ControlPoints)+1)
	pts = append(pts, s.Start)
	pts = append(pts, s.ControlPoints...)

	table, err := routetable.Build(pts, s.Obstacles, routetable.DefaultOptions())
	if err != nil {
		return Result{}, fmt.Errorf("planner: %w", err)
	}

	if err := connectivity.Check(table.Distances, 0); err != nil {
		return Result{}, err
	}

	solver := solverFor(algo)
	tour, length, err := solver.Solve(table.Distances, 0)
	if err != nil {
		return Result{}, fmt.Errorf("planner: %w", err)
	}

	return Result{
		TourIndices: tour,
		TotalLength: length,
		Route:       assembleRoute(table, tour),
	}, nil
}

func solverFor(algo Algorithm) tsp.Solver {
	if algo == BruteForce {
		return tsp.BruteForce{}
	}

	return tsp.LittleBranchAndBound{}
}

// assembleRoute concatenates the per-hop routes the route table computed
// for each consecutive pair in tour into a single polyline.
func assembleRoute(table *routetable.Table, tour []int) route.Route {
	var atoms []route.Atom
	for k := 0; k+1 < len(tour); k++ {
		atoms = append(atoms, table.Routes[tour[k]][tour[k+1]].Atoms...)
	}

	return route.Route{Atoms: atoms}
}
