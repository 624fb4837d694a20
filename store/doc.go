// Package store persists corpora and partition runs in SQLite. Sequences are
// stored as encoded BLOBs so the engine's seq_* SQL functions can query
// them; results are stored as JSON alongside a relational member table.
package store
