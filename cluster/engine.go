package cluster

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/viant/seqmine/matrix"
	"github.com/viant/seqmine/sequence"
)

// Engine holds a corpus and its lazily built distance matrix. It keeps no
// partition state: every Partition call returns a fresh Result. An Engine is
// safe for concurrent use.
type Engine struct {
	corpus      sequence.Corpus
	metric      sequence.Metric
	features    [][]float32
	parallelism int
	logger      zerolog.Logger

	mu        sync.Mutex
	distances *matrix.Matrix
}

// EngineOption customises an Engine.
type EngineOption func(*Engine)

// WithMetric sets the metric used to build the distance matrix.
func WithMetric(m sequence.Metric) EngineOption { return func(e *Engine) { e.metric = m } }

// WithDistances supplies a precomputed distance matrix.
func WithDistances(d *matrix.Matrix) EngineOption { return func(e *Engine) { e.distances = d } }

// WithFeatures supplies one feature row per item for feature strategies.
func WithFeatures(rows [][]float32) EngineOption { return func(e *Engine) { e.features = rows } }

// WithParallelism sets how many matrix rows are computed concurrently.
func WithParallelism(n int) EngineOption { return func(e *Engine) { e.parallelism = n } }

// WithLogger sets the engine logger.
func WithLogger(l zerolog.Logger) EngineOption { return func(e *Engine) { e.logger = l } }

// NewEngine validates the corpus and any supplied matrix or features.
func NewEngine(corpus sequence.Corpus, opts ...EngineOption) (*Engine, error) {
	e := &Engine{corpus: corpus, metric: sequence.MetricLCS, parallelism: 1, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(e)
	}
	if e.metric.Function() == nil {
		return nil, fmt.Errorf("cluster: unknown metric %q: %w", e.metric, ErrUnsupportedConfiguration)
	}
	in := Input{Corpus: corpus, Distances: e.distances, Features: e.features}
	if err := in.check(Overlapping{}); err != nil {
		return nil, err
	}
	return e, nil
}

// Corpus returns the engine corpus.
func (e *Engine) Corpus() sequence.Corpus { return e.corpus }

// Metric returns the metric used for the distance matrix.
func (e *Engine) Metric() sequence.Metric { return e.metric }

// Features returns the feature rows, if any.
func (e *Engine) Features() [][]float32 { return e.features }

// Distances returns the distance matrix, building it on first use. A failed
// build is not cached.
func (e *Engine) Distances(ctx context.Context) (*matrix.Matrix, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.distances != nil {
		return e.distances, nil
	}
	d, err := matrix.Build(ctx, e.corpus, e.metric,
		matrix.WithParallelism(e.parallelism),
		matrix.WithLogger(e.logger))
	if err != nil {
		return nil, err
	}
	e.distances = d
	return d, nil
}

// Partition runs s against the engine corpus. Strategies that need a
// distance matrix trigger its construction; feature strategies fail with
// ErrUnsupportedConfiguration when the engine has no features.
func (e *Engine) Partition(ctx context.Context, s Strategy) (*Result, error) {
	if s == nil {
		return nil, fmt.Errorf("cluster: nil strategy: %w", ErrUnsupportedConfiguration)
	}
	in := Input{Corpus: e.corpus, Features: e.features}
	if s.Shape() == ShapeFeatures && e.features == nil {
		return nil, fmt.Errorf("cluster: %s needs a %v: %w", s.Name(), ShapeFeatures, ErrUnsupportedConfiguration)
	}
	if err := s.validate(len(e.corpus)); err != nil {
		return nil, err
	}
	if s.Shape() == ShapeDistances {
		d, err := e.Distances(ctx)
		if err != nil {
			return nil, err
		}
		in.Distances = d
	}
	res, err := Partition(ctx, in, s)
	if err != nil {
		return nil, err
	}
	if !res.Converged {
		e.logger.Warn().
			Str("strategy", res.Strategy).
			Int("iterations", res.Iterations).
			Msg("partition did not converge, returning best effort result")
	}
	e.logger.Debug().
		Str("strategy", res.Strategy).
		Int("clusters", len(res.Clusters)).
		Int("noise", len(res.Noise)).
		Msg("partition done")
	return res, nil
}
