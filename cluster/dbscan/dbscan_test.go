package dbscan

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/seqmine/sequence"
)

func line(points ...float64) DistanceFunc {
	return func(i, j int) float64 { return math.Abs(points[i] - points[j]) }
}

func TestFit(t *testing.T) {
	testCases := []struct {
		name       string
		points     []float64
		eps        float64
		minSamples int
		expect     []int
	}{
		{
			name:       "two groups and noise",
			points:     []float64{0, 0.1, 0.2, 5, 5.1, 5.2, 20},
			eps:        0.15,
			minSamples: 2,
			expect:     []int{0, 0, 0, 1, 1, 1, Noise},
		},
		{
			name:       "border point joins cluster",
			points:     []float64{0, 0, 0, 1},
			eps:        1,
			minSamples: 4,
			expect:     []int{0, 0, 0, 0},
		},
		{
			name:       "all noise",
			points:     []float64{0, 10, 20},
			eps:        1,
			minSamples: 2,
			expect:     []int{Noise, Noise, Noise},
		},
		{
			name:       "noise later reached as border",
			points:     []float64{2, 0, 0.5, 1},
			eps:        1,
			minSamples: 3,
			expect:     []int{0, 0, 0, 0},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			labels, err := Fit(len(tc.points), line(tc.points...), tc.eps, tc.minSamples)
			require.NoError(t, err)
			assert.Equal(t, tc.expect, labels)
		})
	}
}

func TestFit_Errors(t *testing.T) {
	_, err := Fit(0, line(), 1, 1)
	assert.ErrorIs(t, err, sequence.ErrInvalidInput)
	_, err = Fit(2, line(0, 1), -1, 1)
	assert.ErrorIs(t, err, sequence.ErrInvalidInput)
	_, err = Fit(2, line(0, 1), 1, 0)
	assert.ErrorIs(t, err, sequence.ErrInvalidInput)
}
