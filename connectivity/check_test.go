package connectivity_test

import (
	"math"
	"testing"

	"github.com/avplan/tourplanner/connectivity"
	"github.com/avplan/tourplanner/matrix"
	"github.com/stretchr/testify/require"
)

func denseFrom(t *testing.T, n int, edges map[[2]int]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFilled(n, n, math.Inf(1))
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		require.NoError(t, m.Set(i, i, 0))
	}
	for k, v := range edges {
		require.NoError(t, m.Set(k[0], k[1], v))
	}

	return m
}

func TestCheckAcceptsStronglyConnectedGraph(t *testing.T) {
	m := denseFrom(t, 3, map[[2]int]float64{
		{0, 1}: 1, {1, 2}: 1, {2, 0}: 1,
	})

	require.NoError(t, connectivity.Check(m, 0))
}

func TestCheckRejectsUnreachableVertex(t *testing.T) {
	m := denseFrom(t, 3, map[[2]int]float64{
		{0, 1}: 1, {1, 0}: 1,
	})

	err := connectivity.Check(m, 0)
	require.Error(t, err)

	var uerr *connectivity.UnreachableVerticesError
	require.ErrorAs(t, err, &uerr)
	require.Contains(t, uerr.Indices, 2)
}

func TestCheckRejectsVertexThatCannotReturnToStart(t *testing.T) {
	m := denseFrom(t, 3, map[[2]int]float64{
		{0, 1}: 1, {0, 2}: 1,
	})

	err := connectivity.Check(m, 0)
	require.Error(t, err)

	var uerr *connectivity.UnreachableVerticesError
	require.ErrorAs(t, err, &uerr)
	require.ElementsMatch(t, []int{1, 2}, uerr.Indices)
}
