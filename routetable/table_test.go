package routetable_test

import (
	"math"
	"testing"

	"github.com/avplan/tourplanner/geom"
	"github.com/avplan/tourplanner/route"
	"github.com/avplan/tourplanner/routetable"
	"github.com/avplan/tourplanner/scene"
	"github.com/stretchr/testify/require"
)

func TestBuildDiagonalIsZero(t *testing.T) {
	pts := []geom.Point{geom.NewPoint(0, 0), geom.NewPoint(10, 0)}
	tbl, err := routetable.Build(pts, nil, routetable.DefaultOptions())
	require.NoError(t, err)

	d, err := tbl.Distances.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 0.0, d)
}

func TestBuildSequentialMatchesDirectDistance(t *testing.T) {
	pts := []geom.Point{geom.NewPoint(0, 0), geom.NewPoint(3, 4)}
	tbl, err := routetable.Build(pts, nil, routetable.DefaultOptions())
	require.NoError(t, err)

	d, err := tbl.Distances.At(0, 1)
	require.NoError(t, err)
	require.InDelta(t, 5.0, d, 1e-9)
	require.InDelta(t, 5.0, tbl.Routes[0][1].Length(), 1e-9)
}

func TestBuildParallelMatchesSequential(t *testing.T) {
	pts := []geom.Point{
		geom.NewPoint(0, 0), geom.NewPoint(10, 0), geom.NewPoint(10, 10), geom.NewPoint(0, 10),
	}
	obstacles := []scene.Obstacle{
		scene.NewDiskObstacle(geom.Disk{Center: geom.NewPoint(5, 5), Radius: 1}),
	}

	seq, err := routetable.Build(pts, obstacles, routetable.DefaultOptions())
	require.NoError(t, err)

	opts := routetable.DefaultOptions()
	parOpt := routetable.WithParallel(4)
	parOpt(&opts)
	par, err := routetable.Build(pts, obstacles, opts)
	require.NoError(t, err)

	for i := range pts {
		for j := range pts {
			a, err := seq.Distances.At(i, j)
			require.NoError(t, err)
			b, err := par.Distances.At(i, j)
			require.NoError(t, err)
			require.InDelta(t, a, b, 1e-9)
		}
	}
}

func TestBuildDetoursAroundWall(t *testing.T) {
	pts := []geom.Point{geom.NewPoint(0, 50), geom.NewPoint(100, 50)}
	obstacles := []scene.Obstacle{
		scene.NewSegmentObstacle(geom.NewSegment(geom.NewPoint(50, 0), geom.NewPoint(50, 100))),
	}

	tbl, err := routetable.Build(pts, obstacles, routetable.DefaultOptions())
	require.NoError(t, err)

	// No direct visibility: the shortest route bends around either wall
	// endpoint, two straight legs of length sqrt(50²+50²) each.
	d, err := tbl.Distances.At(0, 1)
	require.NoError(t, err)
	require.InDelta(t, 2*math.Sqrt(50*50+50*50), d, 1e-9)

	r := tbl.Routes[0][1]
	require.Len(t, r.Atoms, 2)
	for _, a := range r.Atoms {
		require.Equal(t, route.AtomSegment, a.Kind)
	}
}

func TestBuildDetoursAroundDiskWithArc(t *testing.T) {
	pts := []geom.Point{geom.NewPoint(0, 0), geom.NewPoint(10, 0)}
	obstacles := []scene.Obstacle{
		scene.NewDiskObstacle(geom.Disk{Center: geom.NewPoint(5, 0), Radius: 1}),
	}

	tbl, err := routetable.Build(pts, obstacles, routetable.DefaultOptions())
	require.NoError(t, err)

	// Two tangent legs of length sqrt(5²-1²) each plus the boundary arc
	// between the touch points, which subtends 2·asin(1/5) at the center.
	want := 2*math.Sqrt(24) + 2*math.Asin(0.2)
	d, err := tbl.Distances.At(0, 1)
	require.NoError(t, err)
	require.InDelta(t, want, d, 1e-9)

	r := tbl.Routes[0][1]
	require.Len(t, r.Atoms, 3)
	require.Equal(t, route.AtomSegment, r.Atoms[0].Kind)
	require.Equal(t, route.AtomArc, r.Atoms[1].Kind)
	require.Equal(t, route.AtomSegment, r.Atoms[2].Kind)
	require.InDelta(t, want, r.Length(), 1e-9)
}

func TestBuildRoutesBetweenTangentDisks(t *testing.T) {
	pts := []geom.Point{geom.NewPoint(0, 0), geom.NewPoint(10, 0)}
	// Two unit disks touching at (5, 0) wall off the direct corridor.
	obstacles := []scene.Obstacle{
		scene.NewDiskObstacle(geom.Disk{Center: geom.NewPoint(4, 0), Radius: 1}),
		scene.NewDiskObstacle(geom.Disk{Center: geom.NewPoint(6, 0), Radius: 1}),
	}

	tbl, err := routetable.Build(pts, obstacles, routetable.DefaultOptions())
	require.NoError(t, err)

	d, err := tbl.Distances.At(0, 1)
	require.NoError(t, err)
	require.False(t, math.IsInf(d, 1))
	require.Greater(t, d, 10.0)

	arcs := 0
	for _, a := range tbl.Routes[0][1].Atoms {
		if a.Kind == route.AtomArc {
			arcs++
		}
	}
	require.Greater(t, arcs, 0)
}

func TestBuildControlPointOnDiskBoundary(t *testing.T) {
	// The destination sits on the disk's own boundary: its tangent set
	// collapses to itself and the final hop rides the same-disk rule.
	pts := []geom.Point{geom.NewPoint(0, 0), geom.NewPoint(6, 0)}
	obstacles := []scene.Obstacle{
		scene.NewDiskObstacle(geom.Disk{Center: geom.NewPoint(5, 0), Radius: 1}),
	}

	tbl, err := routetable.Build(pts, obstacles, routetable.DefaultOptions())
	require.NoError(t, err)

	d, err := tbl.Distances.At(0, 1)
	require.NoError(t, err)
	require.False(t, math.IsInf(d, 1))

	// Tangent leg from the start, then the short hop from the touch point
	// to the boundary destination.
	sweep := math.Pi - math.Acos(0.2)
	want := math.Sqrt(24) + 2*math.Sin(sweep/2)
	require.InDelta(t, want, d, 1e-9)
}

func TestBuildRecordsUnreachablePair(t *testing.T) {
	pts := []geom.Point{geom.NewPoint(0, 0), geom.NewPoint(10, 0)}
	// A disk so large it swallows both endpoints leaves no tangent escape.
	obstacles := []scene.Obstacle{
		scene.NewDiskObstacle(geom.Disk{Center: geom.NewPoint(5, 0), Radius: 100}),
	}

	tbl, err := routetable.Build(pts, obstacles, routetable.DefaultOptions())
	require.NoError(t, err)

	d, err := tbl.Distances.At(0, 1)
	require.NoError(t, err)
	require.True(t, math.IsInf(d, 1))
	require.True(t, tbl.Routes[0][1].Unreachable)
}
