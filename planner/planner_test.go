package planner_test

import (
	"testing"

	"github.com/avplan/tourplanner/connectivity"
	"github.com/avplan/tourplanner/geom"
	"github.com/avplan/tourplanner/planner"
	"github.com/avplan/tourplanner/scene"
	"github.com/stretchr/testify/require"
)

func TestPlanSquareNoObstacles(t *testing.T) {
	s := scene.Scene{
		Start: geom.NewPoint(0, 0),
		ControlPoints: []geom.Point{
			geom.NewPoint(10, 0), geom.NewPoint(10, 10), geom.NewPoint(0, 10),
		},
	}

	result, err := planner.Plan(s, planner.BruteForce)
	require.NoError(t, err)
	require.InDelta(t, 40.0, result.TotalLength, 1e-9)
	require.Equal(t, 0, result.TourIndices[0])
	require.Equal(t, 0, result.TourIndices[len(result.TourIndices)-1])
}

func TestPlanBothSolversAgree(t *testing.T) {
	s := scene.Scene{
		Start: geom.NewPoint(0, 0),
		ControlPoints: []geom.Point{
			geom.NewPoint(10, 0), geom.NewPoint(10, 10), geom.NewPoint(0, 10),
		},
	}

	bf, err := planner.Plan(s, planner.BruteForce)
	require.NoError(t, err)
	bb, err := planner.Plan(s, planner.LittleBranchAndBound)
	require.NoError(t, err)

	require.InDelta(t, bf.TotalLength, bb.TotalLength, 1e-6)
}

func TestPlanSquareWithCentralDisk(t *testing.T) {
	s := scene.Scene{
		Start: geom.NewPoint(0, 0),
		ControlPoints: []geom.Point{
			geom.NewPoint(10, 0), geom.NewPoint(10, 10), geom.NewPoint(0, 10),
		},
		Obstacles: []scene.Obstacle{
			scene.NewDiskObstacle(geom.Disk{Center: geom.NewPoint(5, 5), Radius: 1}),
		},
	}

	bf, err := planner.Plan(s, planner.BruteForce)
	require.NoError(t, err)
	bb, err := planner.Plan(s, planner.LittleBranchAndBound)
	require.NoError(t, err)

	// The disk only obstructs the diagonals; the optimal tour walks the
	// perimeter, untouched.
	require.InDelta(t, 40.0, bf.TotalLength, 1e-9)
	require.InDelta(t, bf.TotalLength, bb.TotalLength, 1e-5)
}

func TestPlanStartCoincidentWithControlPoint(t *testing.T) {
	s := scene.Scene{
		Start: geom.NewPoint(0, 0),
		ControlPoints: []geom.Point{
			geom.NewPoint(0, 0), geom.NewPoint(10, 0),
		},
	}

	result, err := planner.Plan(s, planner.BruteForce)
	require.NoError(t, err)
	require.InDelta(t, 20.0, result.TotalLength, 1e-9)
}

func TestPlanIsIdempotent(t *testing.T) {
	s := scene.Scene{
		Start: geom.NewPoint(0, 0),
		ControlPoints: []geom.Point{
			geom.NewPoint(10, 0), geom.NewPoint(10, 10), geom.NewPoint(0, 10),
		},
		Obstacles: []scene.Obstacle{
			scene.NewDiskObstacle(geom.Disk{Center: geom.NewPoint(5, 5), Radius: 1}),
		},
	}

	first, err := planner.Plan(s, planner.LittleBranchAndBound)
	require.NoError(t, err)
	second, err := planner.Plan(s, planner.LittleBranchAndBound)
	require.NoError(t, err)

	require.Equal(t, first.TotalLength, second.TotalLength)
}

func TestPlanRejectsEmptyScene(t *testing.T) {
	s := scene.Scene{Start: geom.NewPoint(0, 0)}

	_, err := planner.Plan(s, planner.BruteForce)
	var verr *planner.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestPlanSurfacesUnreachableControlPoint(t *testing.T) {
	s := scene.Scene{
		Start: geom.NewPoint(0, 0),
		ControlPoints: []geom.Point{
			geom.NewPoint(10, 0),
			geom.NewPoint(100, 100),
		},
		Obstacles: []scene.Obstacle{
			// A disk enclosing the lone far-away control point leaves it
			// unreachable from every other node.
			scene.NewDiskObstacle(geom.Disk{Center: geom.NewPoint(100, 100), Radius: 50}),
		},
	}

	_, err := planner.Plan(s, planner.BruteForce)
	var uerr *connectivity.UnreachableVerticesError
	require.ErrorAs(t, err, &uerr)
}
