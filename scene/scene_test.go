package scene_test

import (
	"testing"

	"github.com/avplan/tourplanner/geom"
	"github.com/avplan/tourplanner/scene"
	"github.com/stretchr/testify/require"
)

func TestValidateRejectsNoControlPoints(t *testing.T) {
	s := scene.Scene{Start: geom.NewPoint(0, 0)}
	err := s.Validate(scene.DefaultValidateOptions())
	require.ErrorIs(t, err, scene.ErrNoControlPoints)
}

func TestValidateAcceptsDefaultOptions(t *testing.T) {
	s := scene.Scene{
		Start:         geom.NewPoint(0, 0),
		ControlPoints: []geom.Point{geom.NewPoint(1, 1)},
		Obstacles: []scene.Obstacle{
			scene.NewDiskObstacle(geom.Disk{Center: geom.NewPoint(5, 5), Radius: 1}),
		},
	}
	require.NoError(t, s.Validate(scene.DefaultValidateOptions()))
}

func TestValidateEnforcesWindow(t *testing.T) {
	s := scene.Scene{
		Start:         geom.NewPoint(0, 0),
		ControlPoints: []geom.Point{geom.NewPoint(100, 100)},
	}
	opts := scene.ValidateOptions{EnforceWindow: true, MinX: 0, MaxX: 10, MinY: 0, MaxY: 10}
	err := s.Validate(opts)
	require.ErrorIs(t, err, scene.ErrOutOfWindow)
}

func TestValidateRequireConvexPolygonsRejectsConcave(t *testing.T) {
	concave, err := geom.NewPolygon([]geom.Point{
		geom.NewPoint(0, 0), geom.NewPoint(4, 0), geom.NewPoint(4, 4),
		geom.NewPoint(2, 1), geom.NewPoint(0, 4),
	})
	require.NoError(t, err)

	s := scene.Scene{
		Start:         geom.NewPoint(0, 0),
		ControlPoints: []geom.Point{geom.NewPoint(1, 1)},
		Obstacles:     []scene.Obstacle{scene.NewPolygonObstacle(concave)},
	}

	opts := scene.DefaultValidateOptions()
	opts.RequireConvexPolygons = true
	err = s.Validate(opts)
	require.ErrorIs(t, err, scene.ErrNonConvexPolygon)
}

func TestValidateAcceptsConvexPolygon(t *testing.T) {
	square, err := geom.NewPolygon([]geom.Point{
		geom.NewPoint(0, 0), geom.NewPoint(4, 0), geom.NewPoint(4, 4), geom.NewPoint(0, 4),
	})
	require.NoError(t, err)

	s := scene.Scene{
		Start:         geom.NewPoint(-1, -1),
		ControlPoints: []geom.Point{geom.NewPoint(5, 5)},
		Obstacles:     []scene.Obstacle{scene.NewPolygonObstacle(square)},
	}

	opts := scene.DefaultValidateOptions()
	opts.RequireConvexPolygons = true
	require.NoError(t, s.Validate(opts))
}
