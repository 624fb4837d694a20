package matrix

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/viant/seqmine/sequence"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

const instrumentationScope = "github.com/viant/seqmine/matrix"

var evaluations, _ = otel.Meter(instrumentationScope).Int64Counter(
	"seqmine.matrix.evaluations",
	metric.WithDescription("Number of pairwise sequence distance evaluations."),
	metric.WithUnit("{evaluation}"),
)

// ProgressFunc receives the number of completed rows out of total. It may be
// called from several goroutines but never concurrently.
type ProgressFunc func(done, total int)

type options struct {
	parallelism int
	progress    ProgressFunc
	logger      zerolog.Logger
}

// Option customises Build.
type Option func(*options)

// WithParallelism sets the number of rows computed concurrently. Values
// below 2 compute rows sequentially.
func WithParallelism(n int) Option { return func(o *options) { o.parallelism = n } }

// WithProgress registers a row-completion callback.
func WithProgress(fn ProgressFunc) Option { return func(o *options) { o.progress = fn } }

// WithLogger sets the logger used for build diagnostics.
func WithLogger(l zerolog.Logger) Option { return func(o *options) { o.logger = l } }

// Build computes D[i][j] = metric(corpus[i], corpus[j]) for every pair. Only
// cells with j < i are evaluated; the upper triangle is mirrored and the
// diagonal is zero without invoking the metric. The context is checked
// between rows.
func Build(ctx context.Context, corpus sequence.Corpus, m sequence.Metric, opts ...Option) (*Matrix, error) {
	fn := m.Function()
	if fn == nil {
		return nil, fmt.Errorf("matrix: unknown metric %q: %w", m, sequence.ErrUnsupportedConfiguration)
	}
	if err := corpus.Validate(); err != nil {
		return nil, err
	}
	o := options{parallelism: 1, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	n := len(corpus)
	started := time.Now()
	lower := make([][]float64, n)

	var mu sync.Mutex
	done := 0
	rowDone := func() {
		if o.progress == nil {
			return
		}
		mu.Lock()
		done++
		o.progress(done, n)
		mu.Unlock()
	}

	computeRow := func(i int) error {
		row := make([]float64, i)
		for j := 0; j < i; j++ {
			d, err := fn(corpus[i], corpus[j])
			if err != nil {
				return fmt.Errorf("matrix: cell (%d,%d): %w", i, j, err)
			}
			row[j] = d
		}
		lower[i] = row
		if i > 0 {
			evaluations.Add(ctx, int64(i), metric.WithAttributes(attribute.String("metric", string(m))))
		}
		rowDone()
		return nil
	}

	if o.parallelism < 2 {
		for i := 0; i < n; i++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if err := computeRow(i); err != nil {
				return nil, err
			}
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(o.parallelism)
		for i := n - 1; i >= 0; i-- {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				return computeRow(i)
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	sym := mat.NewSymDense(n, nil)
	for i := 1; i < n; i++ {
		for j, d := range lower[i] {
			sym.SetSym(i, j, d)
		}
	}
	o.logger.Debug().
		Str("metric", string(m)).
		Int("items", n).
		Int("evaluations", n*(n-1)/2).
		Dur("elapsed", time.Since(started)).
		Msg("distance matrix built")
	return &Matrix{sym: sym}, nil
}
