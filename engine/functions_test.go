package engine

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/seqmine/sequence"
)

func encode(t *testing.T, tokens ...string) []byte {
	t.Helper()
	b, err := sequence.EncodeSequence(tokens)
	require.NoError(t, err)
	return b
}

func TestRegisterSequenceFunctions(t *testing.T) {
	require.NoError(t, RegisterSequenceFunctions())
	require.NoError(t, RegisterSequenceFunctions())
	db, err := Open(MemoryDSN)
	require.NoError(t, err)
	defer db.Close()

	abc := encode(t, "a", "b", "c")
	ac := encode(t, "a", "c")
	xyz := encode(t, "x", "y", "z")

	var d float64
	require.NoError(t, db.QueryRow(`SELECT seq_distance(?, ?, 'levenshtein')`, abc, abc).Scan(&d))
	assert.Equal(t, 0.0, d)
	require.NoError(t, db.QueryRow(`SELECT seq_distance(?, ?, 'lcs')`, abc, xyz).Scan(&d))
	assert.Equal(t, 1.0, d)
	require.NoError(t, db.QueryRow(`SELECT seq_distance(?, ?, 'lcs-mod')`, abc, ac).Scan(&d))
	want, err := sequence.LCSMod(sequence.Sequence{"a", "b", "c"}, sequence.Sequence{"a", "c"})
	require.NoError(t, err)
	assert.InDelta(t, want, d, 1e-12)

	var in int
	require.NoError(t, db.QueryRow(`SELECT seq_subseq(?, ?)`, ac, abc).Scan(&in))
	assert.Equal(t, 1, in)
	require.NoError(t, db.QueryRow(`SELECT seq_subseq(?, ?)`, abc, ac).Scan(&in))
	assert.Equal(t, 0, in)

	var n int
	require.NoError(t, db.QueryRow(`SELECT seq_len(?)`, abc).Scan(&n))
	assert.Equal(t, 3, n)

	var null sql.NullFloat64
	require.NoError(t, db.QueryRow(`SELECT seq_distance(NULL, ?, 'lcs')`, abc).Scan(&null))
	assert.False(t, null.Valid)

	err = db.QueryRow(`SELECT seq_distance(?, ?, 'cosine')`, abc, ac).Scan(&d)
	assert.Error(t, err)
	err = db.QueryRow(`SELECT seq_distance('text', ?, 'lcs')`, abc).Scan(&d)
	assert.Error(t, err)
	err = db.QueryRow(`SELECT seq_len(?)`, []byte{0xff, 0xff, 0xff, 0xff}).Scan(&n)
	assert.Error(t, err)
}

func TestSequenceFunctionsInQuery(t *testing.T) {
	require.NoError(t, RegisterSequenceFunctions())
	db, err := Open(MemoryDSN)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE calls(id INTEGER PRIMARY KEY, seq BLOB)`)
	require.NoError(t, err)
	for _, s := range [][]string{{"open", "read", "close"}, {"open", "close"}, {"connect"}} {
		_, err = db.Exec(`INSERT INTO calls(seq) VALUES (?)`, encode(t, s...))
		require.NoError(t, err)
	}

	rows, err := db.Query(`SELECT id FROM calls WHERE seq_subseq(?, seq) = 1 ORDER BY id`, encode(t, "open", "close"))
	require.NoError(t, err)
	defer rows.Close()
	var ids []int
	for rows.Next() {
		var id int
		require.NoError(t, rows.Scan(&id))
		ids = append(ids, id)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []int{1, 2}, ids)
}
