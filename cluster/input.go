package cluster

import (
	"fmt"

	"github.com/viant/seqmine/matrix"
	"github.com/viant/seqmine/sequence"
	"github.com/viant/vec/search"
	"gonum.org/v1/gonum/mat"
)

// Input is the data a strategy runs on. Corpus is always required;
// Distances and Features only when the strategy's Shape asks for them.
type Input struct {
	Corpus    sequence.Corpus
	Distances *matrix.Matrix
	Features  [][]float32
}

func (in *Input) check(s Strategy) error {
	if err := in.Corpus.Validate(); err != nil {
		return err
	}
	n := len(in.Corpus)
	if in.Distances != nil && in.Distances.N() != n {
		return fmt.Errorf("cluster: distance matrix has %d rows for %d items: %w", in.Distances.N(), n, ErrInvalidInput)
	}
	if in.Features != nil {
		if len(in.Features) != n {
			return fmt.Errorf("cluster: %d feature rows for %d items: %w", len(in.Features), n, ErrInvalidInput)
		}
		width := len(in.Features[0])
		for i, row := range in.Features {
			if len(row) == 0 || len(row) != width {
				return fmt.Errorf("cluster: feature row %d has %d columns, want %d: %w", i, len(row), width, ErrInvalidInput)
			}
		}
	}
	switch s.Shape() {
	case ShapeDistances:
		if in.Distances == nil {
			return fmt.Errorf("cluster: %s needs a %v: %w", s.Name(), ShapeDistances, ErrUnsupportedConfiguration)
		}
	case ShapeFeatures:
		if in.Features == nil {
			return fmt.Errorf("cluster: %s needs a %v: %w", s.Name(), ShapeFeatures, ErrUnsupportedConfiguration)
		}
	}
	return nil
}

// dense copies the feature rows into a gonum matrix.
func (in *Input) dense() *mat.Dense {
	n, d := len(in.Features), len(in.Features[0])
	data := make([]float64, 0, n*d)
	for _, row := range in.Features {
		for _, v := range row {
			data = append(data, float64(v))
		}
	}
	return mat.NewDense(n, d, data)
}

// rows returns the feature rows as float64 slices.
func (in *Input) rows() [][]float64 {
	d := in.dense()
	out := make([][]float64, len(in.Features))
	for i := range out {
		out[i] = d.RawRowView(i)
	}
	return out
}

func (in *Input) euclidean(i, j int) float64 {
	return float64(search.Float32s(in.Features[i]).EuclideanDistance(in.Features[j]))
}

// identical reports whether items i and j are zero-distance neighbours:
// D[i][j] == 0 when a matrix is present, sequence equality otherwise.
func (in *Input) identical(i, j int) bool {
	if in.Distances != nil {
		return in.Distances.At(i, j) == 0
	}
	return in.Corpus[i].Equal(in.Corpus[j])
}
