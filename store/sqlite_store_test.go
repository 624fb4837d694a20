package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/seqmine/cluster"
	"github.com/viant/seqmine/engine"
	"github.com/viant/seqmine/selection"
	"github.com/viant/seqmine/sequence"
)

func newStore(t *testing.T) (*SQLiteStore, *sql.DB) {
	t.Helper()
	require.NoError(t, engine.RegisterSequenceFunctions())
	db, err := engine.Open(engine.MemoryDSN)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	s, err := NewSQLiteStore(context.Background(), db)
	require.NoError(t, err)
	return s, db
}

func TestSQLiteStore_Corpus(t *testing.T) {
	s, db := newStore(t)
	ctx := context.Background()
	items := []Item{
		{Caller: "Reader.load", Sequence: sequence.Sequence{"File.open", "File.read", "File.close"}},
		{Caller: "Writer.save", Sequence: sequence.Sequence{"File.open", "File.write", "File.close"}},
	}
	require.NoError(t, s.SaveCorpus(ctx, items))
	require.NoError(t, s.SaveCorpus(ctx, items))

	got, err := s.LoadCorpus(ctx)
	require.NoError(t, err)
	assert.Equal(t, items, got)

	var d float64
	require.NoError(t, db.QueryRow(`SELECT seq_distance(a.seq, b.seq, 'jaccard') FROM items a, items b WHERE a.id = 0 AND b.id = 1`).Scan(&d))
	assert.InDelta(t, 0.5, d, 1e-12)

	err = s.SaveCorpus(ctx, []Item{{Caller: "x"}})
	assert.ErrorIs(t, err, sequence.ErrInvalidInput)
}

func TestSQLiteStore_Runs(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	corpus := sequence.Corpus{{"a"}, {"a", "b"}, {"a", "b", "c"}}
	e, err := cluster.NewEngine(corpus)
	require.NoError(t, err)
	result, err := e.Partition(ctx, cluster.Overlapping{})
	require.NoError(t, err)

	run := &Run{
		Metric:    string(sequence.MetricLCS),
		Result:    result,
		Selection: map[int][]selection.Entry{0: {{Distance: 0, Item: 0}}, 1: {{Distance: 0.5, Item: 2}}},
	}
	id, err := s.SaveRun(ctx, run)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, id, run.ID)

	loaded, err := s.LoadRun(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, run.Metric, loaded.Metric)
	assert.Equal(t, run.Result, loaded.Result)
	assert.Equal(t, run.Selection, loaded.Selection)
	assert.True(t, run.CreatedAt.Equal(loaded.CreatedAt))

	members, err := s.Members(ctx, id, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, members)

	second, err := s.SaveRun(ctx, &Run{Result: result})
	require.NoError(t, err)
	ids, err := s.RunIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{id, second}, ids)

	_, err = s.LoadRun(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.SaveRun(ctx, &Run{})
	assert.ErrorIs(t, err, sequence.ErrInvalidInput)
}
