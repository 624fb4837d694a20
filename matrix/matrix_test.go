package matrix

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/seqmine/sequence"
)

func testCorpus() sequence.Corpus {
	return sequence.Corpus{
		{"open", "read", "close"},
		{"open", "read", "close"},
		{"open", "write", "close"},
		{"connect", "send", "recv", "close"},
		{"connect", "send"},
		{"open"},
	}
}

func TestBuild_SymmetricZeroDiagonal(t *testing.T) {
	corpus := testCorpus()
	for _, m := range sequence.Metrics {
		t.Run(string(m), func(t *testing.T) {
			mx, err := Build(context.Background(), corpus, m)
			require.NoError(t, err)
			require.Equal(t, len(corpus), mx.N())
			fn := m.Function()
			for i := range corpus {
				assert.Equal(t, 0.0, mx.At(i, i))
				for j := range corpus {
					assert.Equal(t, mx.At(i, j), mx.At(j, i))
					if i == j {
						continue
					}
					want, err := fn(corpus[i], corpus[j])
					require.NoError(t, err)
					if i > j {
						assert.Equal(t, want, mx.At(i, j))
					} else {
						assert.InDelta(t, want, mx.At(i, j), 1e-12)
					}
				}
			}
		})
	}
}

func TestBuild_ParallelMatchesSequential(t *testing.T) {
	corpus := testCorpus()
	seqMx, err := Build(context.Background(), corpus, sequence.MetricLevenshtein)
	require.NoError(t, err)

	calls := 0
	parMx, err := Build(context.Background(), corpus, sequence.MetricLevenshtein,
		WithParallelism(4),
		WithProgress(func(done, total int) {
			calls++
			assert.Equal(t, len(corpus), total)
			assert.Equal(t, calls, done)
		}))
	require.NoError(t, err)
	assert.Equal(t, len(corpus), calls)
	assert.Equal(t, seqMx.Dense(), parMx.Dense())
}

func TestBuild_Errors(t *testing.T) {
	_, err := Build(context.Background(), testCorpus(), sequence.Metric("cosine"))
	assert.ErrorIs(t, err, sequence.ErrUnsupportedConfiguration)

	_, err = Build(context.Background(), sequence.Corpus{{"a"}}, sequence.MetricLCS)
	assert.ErrorIs(t, err, sequence.ErrInvalidInput)

	_, err = Build(context.Background(), sequence.Corpus{{"a"}, {}}, sequence.MetricLCS)
	assert.ErrorIs(t, err, sequence.ErrInvalidInput)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Build(ctx, testCorpus(), sequence.MetricLCS)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFromDense(t *testing.T) {
	mx, err := FromDense([][]float64{{0, 0.5}, {0.5, 0}})
	require.NoError(t, err)
	assert.Equal(t, 0.5, mx.At(0, 1))
	assert.Equal(t, []float64{0.5, 0}, mx.Row(1))

	_, err = FromDense([][]float64{{0, 0.5}, {0.4, 0}})
	assert.ErrorIs(t, err, sequence.ErrInvalidInput)
	_, err = FromDense([][]float64{{1, 0}, {0, 0}})
	assert.ErrorIs(t, err, sequence.ErrInvalidInput)
	_, err = FromDense([][]float64{{0, 1}, {1}})
	assert.ErrorIs(t, err, sequence.ErrInvalidInput)
	_, err = FromDense([][]float64{{0}})
	assert.ErrorIs(t, err, sequence.ErrInvalidInput)
}

func TestUniqueRowsAndWithout(t *testing.T) {
	mx, err := Build(context.Background(), testCorpus(), sequence.MetricLCS)
	require.NoError(t, err)

	unique := mx.UniqueRows()
	assert.Equal(t, []int{2, 3, 4, 5}, unique)

	pruned, kept := mx.Without(unique)
	assert.Equal(t, []int{0, 1}, kept)
	require.Equal(t, 2, pruned.N())
	assert.Equal(t, 0.0, pruned.At(0, 1))

	empty, kept := mx.Without([]int{0, 1, 2, 3, 4, 5})
	assert.Empty(t, kept)
	assert.Equal(t, 0, empty.N())
}
