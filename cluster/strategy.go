package cluster

import (
	"context"
	"fmt"
	"strings"

	"github.com/viant/seqmine/cluster/kmedoids"
)

// Strategy names.
const (
	NameKMedoids           = "k-medoids"
	NameDensityPrecomputed = "density-precomputed"
	NameDensityFeature     = "density-feature"
	NameCentroidFeature    = "centroid-feature"
	NameModeSeekingFeature = "mode-seeking-feature"
	NameOverlapping        = "overlapping-subsequence"
)

// Names lists every strategy name.
var Names = []string{
	NameKMedoids, NameDensityPrecomputed, NameDensityFeature,
	NameCentroidFeature, NameModeSeekingFeature, NameOverlapping,
}

// Defaults applied when a parameter is left at its zero value.
const (
	DefaultMaxIter         = 100
	DefaultMinSamples      = 5
	DefaultCentroidIter    = 300
	DefaultModeSeekingIter = 300
)

// Shape describes the input a strategy consumes.
type Shape int

const (
	ShapeCorpus Shape = iota
	ShapeDistances
	ShapeFeatures
)

func (s Shape) String() string {
	switch s {
	case ShapeDistances:
		return "distance matrix"
	case ShapeFeatures:
		return "feature matrix"
	default:
		return "corpus"
	}
}

// Strategy is one of the variants declared in this package.
type Strategy interface {
	// Name returns the strategy name.
	Name() string
	// Shape returns the input the strategy consumes.
	Shape() Shape
	validate(n int) error
	partition(ctx context.Context, in *Input) (*raw, error)
}

// Params is the flat parameter set accepted by ParseStrategy; each strategy
// reads the fields it understands.
type Params struct {
	K              int
	MaxIter        int
	Init           string
	Medoids        []int
	Criterion      string
	Seed           int64
	Eps            float64
	MinSamples     int
	MinClusterSize int
	Bandwidth      float64
}

// ParseStrategy builds the strategy registered under name.
func ParseStrategy(name string, p Params) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameKMedoids, "kmedoids":
		seeding, err := kmedoids.ParseInit(p.Init)
		if err != nil {
			return nil, err
		}
		medoids := p.Medoids
		if len(medoids) == 0 {
			medoids = nil
		} else if p.Init == "" {
			seeding = kmedoids.InitExplicit
		}
		criterion, err := kmedoids.ParseCriterion(p.Criterion)
		if err != nil {
			return nil, err
		}
		return KMedoids{K: p.K, MaxIter: p.MaxIter, Init: seeding, Medoids: medoids, Criterion: criterion, Seed: p.Seed}, nil
	case NameDensityPrecomputed:
		return DensityPrecomputed{Eps: p.Eps, MinSamples: p.MinSamples, MinClusterSize: p.MinClusterSize}, nil
	case NameDensityFeature:
		return DensityFeature{Eps: p.Eps, MinSamples: p.MinSamples, MinClusterSize: p.MinClusterSize}, nil
	case NameCentroidFeature:
		return CentroidFeature{K: p.K, MaxIter: p.MaxIter, Seed: p.Seed}, nil
	case NameModeSeekingFeature:
		return ModeSeekingFeature{Bandwidth: p.Bandwidth, MaxIter: p.MaxIter}, nil
	case NameOverlapping, "overlapping":
		return Overlapping{}, nil
	default:
		return nil, fmt.Errorf("cluster: unknown strategy %q: %w", name, ErrUnsupportedConfiguration)
	}
}
