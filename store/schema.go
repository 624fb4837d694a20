package store

import (
	"context"
	"database/sql"
)

var schema = []string{`
CREATE TABLE IF NOT EXISTS items (
    id INTEGER PRIMARY KEY,
    caller TEXT,
    seq BLOB NOT NULL
)`, `
CREATE TABLE IF NOT EXISTS runs (
    id TEXT PRIMARY KEY,
    strategy TEXT NOT NULL,
    metric TEXT,
    created_at INTEGER NOT NULL,
    result TEXT NOT NULL,
    selection TEXT
)`, `
CREATE TABLE IF NOT EXISTS cluster_members (
    run_id TEXT NOT NULL REFERENCES runs(id),
    label INTEGER NOT NULL,
    item INTEGER NOT NULL,
    is_center INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (run_id, label, item)
)`,
}

// EnsureSchema creates the store tables if they do not exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, ddl := range schema {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return err
		}
	}
	return nil
}
