package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seq(tokens ...string) Sequence { return Sequence(tokens) }

func TestLCSLen(t *testing.T) {
	assert.Equal(t, 3, LCSLen(seq("a", "b", "c"), seq("a", "b", "c")))
	assert.Equal(t, 0, LCSLen(seq("a", "b"), seq("c", "d")))
	assert.Equal(t, 2, LCSLen(seq("a", "x", "b"), seq("b", "a", "y", "b")))
}

func TestMetrics_Values(t *testing.T) {
	tests := []struct {
		name   string
		metric Metric
		a, b   Sequence
		want   float64
	}{
		{name: "lcs", metric: MetricLCS, a: seq("a", "b", "c"), b: seq("a", "c"), want: 0.2},
		{name: "lcs_mod", metric: MetricLCSMod, a: seq("a", "b", "c"), b: seq("a", "c"), want: 0.2},
		{name: "lcs_min", metric: MetricLCSMin, a: seq("a", "b", "c"), b: seq("a", "c"), want: 0},
		{name: "lcs_ext", metric: MetricLCSExt, a: seq("a", "b", "c"), b: seq("a", "c"), want: 1 - 16.0/54.0},
		{name: "jaccard", metric: MetricJaccard, a: seq("a", "b", "c"), b: seq("b", "c", "d"), want: 0.5},
		{name: "jaccard multiplicity", metric: MetricJaccard, a: seq("a", "a", "b"), b: seq("b", "a"), want: 0},
		{name: "jaccard_min", metric: MetricJaccardMin, a: seq("a", "b", "c"), b: seq("b", "c", "d"), want: 1 - 2.0/3.0},
		{name: "gestalt", metric: MetricGestalt, a: seq("a", "b", "c", "d"), b: seq("a", "b", "x", "d"), want: 0.25},
		{name: "gestalt disjoint", metric: MetricGestalt, a: seq("a"), b: seq("b"), want: 1},
		{name: "seqsim", metric: MetricSeqSim, a: seq("a", "b"), b: seq("a", "c"), want: 1 - 1.0/7.0},
		{name: "levenshtein equal", metric: MetricLevenshtein, a: seq("a", "b", "c"), b: seq("a", "b", "c"), want: 0},
		{name: "levenshtein disjoint", metric: MetricLevenshtein, a: seq("a"), b: seq("b"), want: 1},
		{name: "levenshtein edits", metric: MetricLevenshtein, a: seq("a", "b", "c"), b: seq("a", "x", "c", "d"), want: 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.metric.Function()(tt.a, tt.b)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestMetrics_SymmetryAndSelfDistance(t *testing.T) {
	pairs := [][2]Sequence{
		{seq("a", "b", "c"), seq("a", "c")},
		{seq("x", "y"), seq("y", "x", "y", "z")},
		{seq("open", "read", "close"), seq("open", "write", "close", "open")},
		{seq("a"), seq("b", "a", "b", "a")},
	}
	for _, m := range Metrics {
		fn := m.Function()
		require.NotNil(t, fn, m)
		for _, p := range pairs {
			ab, err := fn(p[0], p[1])
			require.NoError(t, err)
			ba, err := fn(p[1], p[0])
			require.NoError(t, err)
			assert.InDelta(t, ab, ba, 1e-12, "%s(%v,%v)", m, p[0], p[1])
			assert.GreaterOrEqual(t, ab, 0.0)
			assert.LessOrEqual(t, ab, 1.0)

			self, err := fn(p[0], p[0])
			require.NoError(t, err)
			assert.Equal(t, 0.0, self, "%s self distance", m)
		}
	}
}

func TestMetrics_EmptyInput(t *testing.T) {
	for _, m := range Metrics {
		_, err := m.Function()(nil, seq("a"))
		assert.ErrorIs(t, err, ErrInvalidInput, m)
		_, err = m.Function()(seq("a"), Sequence{})
		assert.ErrorIs(t, err, ErrInvalidInput, m)
	}
}

func TestGestalt_PopularTokens(t *testing.T) {
	long := make(Sequence, 0, 300)
	for i := 0; i < 300; i++ {
		long = append(long, "x")
	}
	d, err := Gestalt(long, long)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)
}

func TestParseMetric(t *testing.T) {
	m, err := ParseMetric("lcs-mod")
	require.NoError(t, err)
	assert.Equal(t, MetricLCSMod, m)

	m, err = ParseMetric(" Jaccard_Min ")
	require.NoError(t, err)
	assert.Equal(t, MetricJaccardMin, m)

	_, err = ParseMetric("cosine")
	assert.ErrorIs(t, err, ErrUnsupportedConfiguration)
}
