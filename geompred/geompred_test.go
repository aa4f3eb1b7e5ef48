package geompred_test

import (
	"math"
	"testing"

	"github.com/avplan/tourplanner/geom"
	"github.com/avplan/tourplanner/geompred"
	"github.com/stretchr/testify/require"
)

func TestSegmentIntersectsSegmentCrossing(t *testing.T) {
	s1 := geom.NewSegment(geom.NewPoint(0, 0), geom.NewPoint(4, 4))
	s2 := geom.NewSegment(geom.NewPoint(0, 4), geom.NewPoint(4, 0))
	require.True(t, geompred.SegmentIntersectsSegment(s1, s2))
}

func TestSegmentIntersectsSegmentParallelDoesNotCross(t *testing.T) {
	s1 := geom.NewSegment(geom.NewPoint(0, 0), geom.NewPoint(4, 0))
	s2 := geom.NewSegment(geom.NewPoint(0, 1), geom.NewPoint(4, 1))
	require.False(t, geompred.SegmentIntersectsSegment(s1, s2))
}

func TestSegmentIntersectsSegmentTouchingEndpointNotCounted(t *testing.T) {
	s1 := geom.NewSegment(geom.NewPoint(0, 0), geom.NewPoint(2, 2))
	s2 := geom.NewSegment(geom.NewPoint(2, 2), geom.NewPoint(4, 0))
	require.False(t, geompred.SegmentIntersectsSegment(s1, s2))
}

func TestTangentPointsFromFarExternalPoint(t *testing.T) {
	d, err := geom.NewDisk(geom.NewPoint(0, 0), 1)
	require.NoError(t, err)

	t1, t2, count, err := geompred.TangentPoints(geom.NewPoint(10, 0), d)
	require.NoError(t, err)
	require.Equal(t, 2, count)

	require.InDelta(t, 1.0, geom.Distance(d.Center, t1), 1e-9)
	require.InDelta(t, 1.0, geom.Distance(d.Center, t2), 1e-9)
	require.False(t, t1.Equal(t2))
}

func TestTangentPointsFromPointInsideDiskIsEmpty(t *testing.T) {
	d, err := geom.NewDisk(geom.NewPoint(0, 0), 5)
	require.NoError(t, err)

	_, _, count, err := geompred.TangentPoints(geom.NewPoint(1, 1), d)
	require.NoError(t, err)
	require.Equal(t, 0, count)
}

func TestTangentPointsFromBoundaryPointDegenerates(t *testing.T) {
	d, err := geom.NewDisk(geom.NewPoint(0, 0), 1)
	require.NoError(t, err)

	ext := geom.NewPoint(1, 0)
	t1, t2, count, err := geompred.TangentPoints(ext, d)
	require.NoError(t, err)
	require.Equal(t, 1, count)
	require.True(t, t1.Equal(t2))
	require.True(t, t1.Equal(ext))
}

func TestSegmentClearsDiskTangentLineClears(t *testing.T) {
	d, err := geom.NewDisk(geom.NewPoint(0, 0), 1)
	require.NoError(t, err)

	seg := geom.NewSegment(geom.NewPoint(-2, 1), geom.NewPoint(2, 1))
	require.True(t, geompred.SegmentClearsDisk(seg, d))
}

func TestSegmentClearsDiskPiercingLineBlocked(t *testing.T) {
	d, err := geom.NewDisk(geom.NewPoint(0, 0), 1)
	require.NoError(t, err)

	seg := geom.NewSegment(geom.NewPoint(-2, 0), geom.NewPoint(2, 0))
	require.False(t, geompred.SegmentClearsDisk(seg, d))
}

func TestShorterArcLengthQuarterCircle(t *testing.T) {
	center := geom.NewPoint(0, 0)
	p1 := geom.NewPoint(1, 0)
	p2 := geom.NewPoint(0, 1)

	require.InDelta(t, math.Pi/2, geompred.ShorterArcLength(center, 1, p1, p2), 1e-9)
}
