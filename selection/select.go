package selection

import (
	"fmt"

	"github.com/viant/seqmine/cluster"
	"github.com/viant/seqmine/matrix"
	"github.com/viant/seqmine/sequence"
	"github.com/viant/vec/search"
)

// Select returns, per cluster label, the members picked by opts. The
// medoid center reads dist; the centroid center reads features and needs a
// result whose clusters carry centroids.
func Select(result *cluster.Result, dist *matrix.Matrix, features [][]float32, opts Options) (map[int][]Entry, error) {
	if result == nil {
		return nil, fmt.Errorf("selection: nil result: %w", sequence.ErrInvalidInput)
	}
	if opts.N < 1 {
		return nil, fmt.Errorf("selection: n must be positive, got %d: %w", opts.N, sequence.ErrInvalidInput)
	}
	pick := nearest
	switch opts.Mode {
	case ModeIdentical:
		pick = identical
	case ModeNearest, "":
	default:
		return nil, fmt.Errorf("selection: unknown mode %q: %w", opts.Mode, sequence.ErrUnsupportedConfiguration)
	}
	distance, err := distanceTo(result, dist, features, opts.Center)
	if err != nil {
		return nil, err
	}
	out := make(map[int][]Entry, len(result.Clusters))
	for i := range result.Clusters {
		c := &result.Clusters[i]
		out[c.Label] = pick(c.Members, distance(c), opts.N)
	}
	return out, nil
}

func identical(members []int, measure func(int) float64, n int) []Entry {
	out := make([]Entry, 0, n)
	for _, m := range members {
		if measure(m) == 0 {
			out = append(out, Entry{Distance: 0, Item: m})
			if len(out) == n {
				break
			}
		}
	}
	return out
}

func nearest(members []int, measure func(int) float64, n int) []Entry {
	top := newTopK(n)
	for _, m := range members {
		top.offer(Entry{Distance: measure(m), Item: m})
	}
	return top.drain()
}

func distanceTo(result *cluster.Result, dist *matrix.Matrix, features [][]float32, center Center) (func(*cluster.Cluster) func(int) float64, error) {
	switch center {
	case CenterMedoid, "":
		if dist == nil {
			return nil, fmt.Errorf("selection: medoid center needs a distance matrix: %w", sequence.ErrUnsupportedConfiguration)
		}
		if dist.N() != len(result.Labels) {
			return nil, fmt.Errorf("selection: distance matrix has %d rows for %d items: %w", dist.N(), len(result.Labels), sequence.ErrInvalidInput)
		}
		return func(c *cluster.Cluster) func(int) float64 {
			return func(m int) float64 { return dist.At(c.Center, m) }
		}, nil
	case CenterCentroid:
		if features == nil {
			return nil, fmt.Errorf("selection: centroid center needs features: %w", sequence.ErrUnsupportedConfiguration)
		}
		if len(features) != len(result.Labels) {
			return nil, fmt.Errorf("selection: %d feature rows for %d items: %w", len(features), len(result.Labels), sequence.ErrInvalidInput)
		}
		for _, c := range result.Clusters {
			if c.Centroid == nil {
				return nil, fmt.Errorf("selection: %s result has no centroids: %w", result.Strategy, sequence.ErrUnsupportedConfiguration)
			}
			if len(c.Centroid) != len(features[0]) {
				return nil, fmt.Errorf("selection: centroid width %d, feature width %d: %w", len(c.Centroid), len(features[0]), sequence.ErrInvalidInput)
			}
		}
		return func(c *cluster.Cluster) func(int) float64 {
			centroid := make([]float32, len(c.Centroid))
			for i, v := range c.Centroid {
				centroid[i] = float32(v)
			}
			return func(m int) float64 {
				return float64(search.Float32s(features[m]).EuclideanDistance(centroid))
			}
		}, nil
	default:
		return nil, fmt.Errorf("selection: unknown center %q: %w", center, sequence.ErrUnsupportedConfiguration)
	}
}
