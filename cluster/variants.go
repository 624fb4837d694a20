package cluster

import (
	"context"
	"fmt"

	"github.com/viant/seqmine/cluster/dbscan"
	"github.com/viant/seqmine/cluster/hdbscan"
	"github.com/viant/seqmine/cluster/kmeans"
	"github.com/viant/seqmine/cluster/kmedoids"
	"github.com/viant/seqmine/cluster/meanshift"
	"github.com/viant/seqmine/cluster/overlap"
)

// KMedoids partitions the distance matrix around K medoids. Medoids is
// used when Init is kmedoids.InitExplicit.
type KMedoids struct {
	K         int
	MaxIter   int
	Init      kmedoids.Init
	Medoids   []int
	Criterion kmedoids.Criterion
	Seed      int64
}

func (KMedoids) Name() string { return NameKMedoids }
func (KMedoids) Shape() Shape { return ShapeDistances }

func (s KMedoids) validate(n int) error {
	if s.K < 1 || s.K > n {
		return fmt.Errorf("cluster: k=%d out of range [1,%d]: %w", s.K, n, ErrInvalidInput)
	}
	if s.MaxIter < 0 {
		return fmt.Errorf("cluster: negative max iterations %d: %w", s.MaxIter, ErrInvalidInput)
	}
	switch s.Init {
	case "", kmedoids.InitPlusPlus, kmedoids.InitRandom, kmedoids.InitExplicit:
	default:
		return fmt.Errorf("cluster: unknown k-medoids init %q: %w", s.Init, ErrUnsupportedConfiguration)
	}
	switch s.Criterion {
	case "", kmedoids.CriterionMedoids, kmedoids.CriterionMembers:
	default:
		return fmt.Errorf("cluster: unknown k-medoids criterion %q: %w", s.Criterion, ErrUnsupportedConfiguration)
	}
	if s.Init == kmedoids.InitExplicit || (s.Init == "" && len(s.Medoids) > 0) {
		if len(s.Medoids) != s.K {
			return fmt.Errorf("cluster: got %d explicit medoids for k=%d: %w", len(s.Medoids), s.K, ErrInvalidInput)
		}
		seen := make(map[int]bool, len(s.Medoids))
		for _, m := range s.Medoids {
			if m < 0 || m >= n {
				return fmt.Errorf("cluster: medoid %d out of range [0,%d): %w", m, n, ErrInvalidInput)
			}
			if seen[m] {
				return fmt.Errorf("cluster: duplicate medoid %d: %w", m, ErrInvalidInput)
			}
			seen[m] = true
		}
	}
	return nil
}

func (s KMedoids) partition(ctx context.Context, in *Input) (*raw, error) {
	p := kmedoids.Params{K: s.K, MaxIter: s.MaxIter, Init: s.Init, Medoids: s.Medoids, Criterion: s.Criterion, Seed: s.Seed}
	if p.MaxIter == 0 {
		p.MaxIter = DefaultMaxIter
	}
	if p.Init == "" && len(p.Medoids) > 0 {
		p.Init = kmedoids.InitExplicit
	}
	res, err := kmedoids.Fit(ctx, in.Distances.Raw(), p)
	if err != nil {
		return nil, fmt.Errorf("cluster: %w", err)
	}
	return &raw{
		labels:     res.Labels,
		centers:    res.Medoids,
		converged:  res.Converged,
		iterations: res.Iterations,
	}, nil
}

// DensityPrecomputed runs density clustering on the distance matrix:
// HDBSCAN when MinClusterSize is set, DBSCAN with Eps otherwise.
type DensityPrecomputed struct {
	Eps            float64
	MinSamples     int
	MinClusterSize int
}

func (DensityPrecomputed) Name() string { return NameDensityPrecomputed }
func (DensityPrecomputed) Shape() Shape { return ShapeDistances }

func (s DensityPrecomputed) validate(int) error {
	return validateDensity(s.Eps, s.MinSamples, s.MinClusterSize)
}

func (s DensityPrecomputed) partition(_ context.Context, in *Input) (*raw, error) {
	n := len(in.Corpus)
	if s.MinClusterSize > 0 {
		rows, dist := hdbscan.Precomputed(n, in.Distances.At)
		return hierarchical(rows, dist, s.MinSamples, s.MinClusterSize)
	}
	return density(n, in.Distances.At, s.Eps, s.MinSamples)
}

// DensityFeature runs density clustering on Euclidean distances between
// feature rows, with the same parameter rules as DensityPrecomputed.
type DensityFeature struct {
	Eps            float64
	MinSamples     int
	MinClusterSize int
}

func (DensityFeature) Name() string { return NameDensityFeature }
func (DensityFeature) Shape() Shape { return ShapeFeatures }

func (s DensityFeature) validate(int) error {
	return validateDensity(s.Eps, s.MinSamples, s.MinClusterSize)
}

func (s DensityFeature) partition(_ context.Context, in *Input) (*raw, error) {
	if s.MinClusterSize > 0 {
		return hierarchical(in.rows(), hdbscan.Euclidean, s.MinSamples, s.MinClusterSize)
	}
	return density(len(in.Corpus), in.euclidean, s.Eps, s.MinSamples)
}

func validateDensity(eps float64, minSamples, minClusterSize int) error {
	if eps < 0 {
		return fmt.Errorf("cluster: negative eps %v: %w", eps, ErrInvalidInput)
	}
	if minSamples < 0 {
		return fmt.Errorf("cluster: negative min samples %d: %w", minSamples, ErrInvalidInput)
	}
	if minClusterSize < 0 {
		return fmt.Errorf("cluster: negative min cluster size %d: %w", minClusterSize, ErrInvalidInput)
	}
	if minClusterSize > 0 {
		if err := (hdbscan.Params{MinClusterSize: minClusterSize, MinSamples: minSamples}).Validate(); err != nil {
			return fmt.Errorf("cluster: %w", err)
		}
	}
	return nil
}

func density(n int, dist func(i, j int) float64, eps float64, minSamples int) (*raw, error) {
	if minSamples == 0 {
		minSamples = DefaultMinSamples
	}
	labels, err := dbscan.Fit(n, dist, eps, minSamples)
	if err != nil {
		return nil, fmt.Errorf("cluster: %w", err)
	}
	return &raw{labels: labels, converged: true}, nil
}

func hierarchical(rows [][]float64, dist hdbscan.DistanceFunc, minSamples, minClusterSize int) (*raw, error) {
	labels, err := hdbscan.Fit(rows, dist, hdbscan.Params{MinClusterSize: minClusterSize, MinSamples: minSamples})
	if err != nil {
		return nil, fmt.Errorf("cluster: %w", err)
	}
	return &raw{labels: labels, converged: true}, nil
}

// CentroidFeature runs k-means++ on the feature rows.
type CentroidFeature struct {
	K       int
	MaxIter int
	Seed    int64
}

func (CentroidFeature) Name() string { return NameCentroidFeature }
func (CentroidFeature) Shape() Shape { return ShapeFeatures }

func (s CentroidFeature) validate(n int) error {
	if s.K < 1 || s.K > n {
		return fmt.Errorf("cluster: k=%d out of range [1,%d]: %w", s.K, n, ErrInvalidInput)
	}
	if s.MaxIter < 0 {
		return fmt.Errorf("cluster: negative max iterations %d: %w", s.MaxIter, ErrInvalidInput)
	}
	return nil
}

func (s CentroidFeature) partition(ctx context.Context, in *Input) (*raw, error) {
	p := kmeans.Params{K: s.K, MaxIter: s.MaxIter, Seed: s.Seed}
	if p.MaxIter == 0 {
		p.MaxIter = DefaultCentroidIter
	}
	res, err := kmeans.Fit(ctx, in.dense(), p)
	if err != nil {
		return nil, fmt.Errorf("cluster: %w", err)
	}
	labels, centroids := relabel(res.Labels, res.Centroids)
	return &raw{
		labels:     labels,
		centroids:  centroids,
		converged:  res.Converged,
		iterations: res.Iterations,
		inertia:    res.Inertia,
	}, nil
}

// ModeSeekingFeature runs flat-kernel mean shift on the feature rows. A
// Bandwidth that is not positive is estimated from the data.
type ModeSeekingFeature struct {
	Bandwidth float64
	MaxIter   int
}

func (ModeSeekingFeature) Name() string { return NameModeSeekingFeature }
func (ModeSeekingFeature) Shape() Shape { return ShapeFeatures }

func (s ModeSeekingFeature) validate(int) error {
	if s.MaxIter < 0 {
		return fmt.Errorf("cluster: negative max iterations %d: %w", s.MaxIter, ErrInvalidInput)
	}
	return nil
}

func (s ModeSeekingFeature) partition(ctx context.Context, in *Input) (*raw, error) {
	p := meanshift.Params{Bandwidth: s.Bandwidth, MaxIter: s.MaxIter}
	if p.MaxIter == 0 {
		p.MaxIter = DefaultModeSeekingIter
	}
	res, err := meanshift.Fit(ctx, in.dense(), p)
	if err != nil {
		return nil, fmt.Errorf("cluster: %w", err)
	}
	labels, modes := relabel(res.Labels, res.Modes)
	return &raw{labels: labels, centroids: modes, converged: res.Converged}, nil
}

// Overlapping builds one cluster per distinct sequence holding every item
// that contains it as a subsequence. Items may belong to several clusters.
type Overlapping struct{}

func (Overlapping) Name() string { return NameOverlapping }
func (Overlapping) Shape() Shape { return ShapeCorpus }

func (Overlapping) validate(int) error { return nil }

func (Overlapping) partition(ctx context.Context, in *Input) (*raw, error) {
	groups, err := overlap.Fit(ctx, in.Corpus)
	if err != nil {
		return nil, fmt.Errorf("cluster: %w", err)
	}
	out := &raw{overlapping: true, converged: true}
	for _, g := range groups {
		out.groups = append(out.groups, g.Members)
		out.centers = append(out.centers, g.Defining)
	}
	return out, nil
}

// relabel renumbers clusters in order of their first member and drops
// centroids that attracted no item.
func relabel(labels []int, centroids [][]float64) ([]int, [][]float64) {
	ordinal := map[int]int{}
	out := make([]int, len(labels))
	var kept [][]float64
	for i, l := range labels {
		o, ok := ordinal[l]
		if !ok {
			o = len(ordinal)
			ordinal[l] = o
			kept = append(kept, centroids[l])
		}
		out[i] = o
	}
	return out, kept
}
