package hdbscan

import (
	"fmt"
	"math"
	"sort"

	hdb "github.com/humilityai/hdbscan"
	"github.com/viant/seqmine/sequence"
)

// Noise labels items that belong to no cluster.
const Noise = -1

// DistanceFunc is the row distance used by the clustering.
type DistanceFunc = hdb.DistanceFunc

// Euclidean is the distance between feature rows.
var Euclidean DistanceFunc = hdb.EuclideanDistance

// Params configures Fit. The core distance neighbourhood is MinClusterSize
// items, so MinSamples is either zero or equal to MinClusterSize.
type Params struct {
	MinClusterSize int
	MinSamples     int
}

// Validate checks p.
func (p Params) Validate() error {
	if p.MinClusterSize < 2 {
		return fmt.Errorf("hdbscan: min cluster size must be at least 2, got %d: %w", p.MinClusterSize, sequence.ErrInvalidInput)
	}
	if p.MinSamples != 0 && p.MinSamples != p.MinClusterSize {
		return fmt.Errorf("hdbscan: min samples %d differs from min cluster size %d: %w",
			p.MinSamples, p.MinClusterSize, sequence.ErrUnsupportedConfiguration)
	}
	return nil
}

// Precomputed returns n index rows and a distance function reading at, so
// that a distance matrix can be clustered.
func Precomputed(n int, at func(i, j int) float64) ([][]float64, DistanceFunc) {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = []float64{float64(i)}
	}
	index := func(v []float64) int {
		i := int(math.Round(v[0]))
		switch {
		case i < 0:
			return 0
		case i >= n:
			return n - 1
		}
		return i
	}
	return rows, func(a, b []float64) float64 { return at(index(a), index(b)) }
}

// Fit labels every row.
func Fit(rows [][]float64, dist DistanceFunc, p Params) ([]int, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("hdbscan: no items: %w", sequence.ErrInvalidInput)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	labels := make([]int, len(rows))
	for i := range labels {
		labels[i] = Noise
	}
	if len(rows) < p.MinClusterSize {
		return labels, nil
	}

	c, err := hdb.NewClustering(rows, p.MinClusterSize)
	if err != nil {
		return nil, fmt.Errorf("hdbscan: %w", err)
	}
	if err := c.Run(dist, hdb.StabilityScore, true); err != nil {
		return nil, fmt.Errorf("hdbscan: %w", err)
	}

	var groups [][]int
	for _, cl := range c.Clusters {
		if len(cl.Points) == 0 {
			continue
		}
		members := append([]int(nil), cl.Points...)
		sort.Ints(members)
		groups = append(groups, members)
	}
	sort.SliceStable(groups, func(i, j int) bool { return groups[i][0] < groups[j][0] })

	label := 0
	for _, members := range groups {
		used := false
		for _, m := range members {
			if m >= 0 && m < len(labels) && labels[m] == Noise {
				labels[m] = label
				used = true
			}
		}
		if used {
			label++
		}
	}
	return labels, nil
}
