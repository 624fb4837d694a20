package hdbscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/seqmine/sequence"
	"gonum.org/v1/gonum/floats"
)

// three groups of five points and two outliers
func groupedPoints() [][]float64 {
	return [][]float64{
		{0.0, 0.0, 0.0}, {0.1, 0.1, 0.1}, {0.2, 0.2, 0.2}, {-0.1, -0.1, -0.1}, {0.15, 0.15, 0.15},
		{10.0, 10.0, 10.0}, {10.1, 10.1, 10.1}, {10.2, 10.2, 10.2}, {9.9, 9.9, 9.9}, {10.15, 10.15, 10.15},
		{20.0, 20.0, 20.0}, {20.1, 20.1, 20.1}, {20.2, 20.2, 20.2}, {19.9, 19.9, 19.9}, {20.15, 20.15, 20.15},
		{100.0, 100.0, 100.0}, {-50.0, -50.0, -50.0},
	}
}

func assertGroups(t *testing.T, labels []int) {
	t.Helper()
	require.Len(t, labels, 17)
	seen := map[int]bool{}
	for g := 0; g < 3; g++ {
		first := labels[g*5]
		assert.NotEqual(t, Noise, first)
		for i := g*5 + 1; i < g*5+5; i++ {
			assert.Equal(t, first, labels[i], "item %d", i)
		}
		assert.False(t, seen[first], "group %d shares label %d", g, first)
		seen[first] = true
	}
	assert.Equal(t, []int{0, 1, 2}, []int{labels[0], labels[5], labels[10]})
	for _, i := range []int{15, 16} {
		assert.False(t, seen[labels[i]], "outlier %d joined a group", i)
	}
}

func TestFit_Features(t *testing.T) {
	labels, err := Fit(groupedPoints(), Euclidean, Params{MinClusterSize: 3})
	require.NoError(t, err)
	assertGroups(t, labels)
}

func TestFit_Precomputed(t *testing.T) {
	points := groupedPoints()
	rows, dist := Precomputed(len(points), func(i, j int) float64 { return floats.Distance(points[i], points[j], 2) })
	labels, err := Fit(rows, dist, Params{MinClusterSize: 3, MinSamples: 3})
	require.NoError(t, err)
	assertGroups(t, labels)

	direct, err := Fit(points, Euclidean, Params{MinClusterSize: 3})
	require.NoError(t, err)
	assert.Equal(t, direct, labels)
}

func TestPrecomputed(t *testing.T) {
	rows, dist := Precomputed(3, func(i, j int) float64 { return float64(10*i + j) })
	assert.Equal(t, [][]float64{{0}, {1}, {2}}, rows)
	assert.Equal(t, 21.0, dist(rows[2], rows[1]))
	assert.Equal(t, 22.0, dist([]float64{7}, []float64{2}))
	assert.Equal(t, 0.0, dist([]float64{-1}, []float64{0.4}))
}

func TestFit_TooFewItems(t *testing.T) {
	labels, err := Fit([][]float64{{1}, {2}}, Euclidean, Params{MinClusterSize: 3})
	require.NoError(t, err)
	assert.Equal(t, []int{Noise, Noise}, labels)
}

func TestFit_Errors(t *testing.T) {
	_, err := Fit(nil, Euclidean, Params{MinClusterSize: 2})
	assert.ErrorIs(t, err, sequence.ErrInvalidInput)
	_, err = Fit(groupedPoints(), Euclidean, Params{MinClusterSize: 1})
	assert.ErrorIs(t, err, sequence.ErrInvalidInput)
	_, err = Fit(groupedPoints(), Euclidean, Params{MinClusterSize: 3, MinSamples: 2})
	assert.ErrorIs(t, err, sequence.ErrUnsupportedConfiguration)
}
