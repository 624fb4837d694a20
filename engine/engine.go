package engine

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite" // register pure-Go SQLite driver
)

// MemoryDSN names a private in-memory database.
const MemoryDSN = ":memory:"

// Open opens a SQLite database using the modernc.org/sqlite driver and
// checks that it is reachable.
//
// For file-based databases pass a path like "./seqmine.db". An in-memory
// database lives per connection, so Open limits the pool to one connection
// for MemoryDSN.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("engine: open %q: %w", dsn, err)
	}
	if strings.HasPrefix(dsn, MemoryDSN) {
		db.SetMaxOpenConns(1)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("engine: ping %q: %w", dsn, err)
	}
	return db, nil
}
