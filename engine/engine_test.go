package engine

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenInMemory(t *testing.T) {
	db, err := Open(MemoryDSN)
	require.NoError(t, err)
	defer db.Close()
	assert.Equal(t, 1, db.Stats().MaxOpenConnections)

	_, err = db.Exec("CREATE TABLE t(x INTEGER)")
	require.NoError(t, err)
	_, err = db.Exec("INSERT INTO t(x) VALUES (1),(2),(3)")
	require.NoError(t, err)

	// the table must be visible on whatever connection serves the next query
	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM t").Scan(&count))
	assert.Equal(t, 3, count)
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seqmine.db")
	db, err := Open(path)
	require.NoError(t, err)
	_, err = db.Exec("CREATE TABLE t(x INTEGER)")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = Open(path)
	require.NoError(t, err)
	defer db.Close()
	var name string
	require.NoError(t, db.QueryRow("SELECT name FROM sqlite_master WHERE type = 'table'").Scan(&name))
	assert.Equal(t, "t", name)
}

func TestOpenMissingDirectory(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing", "seqmine.db"))
	assert.Error(t, err)
}
