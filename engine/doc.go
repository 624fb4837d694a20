// Package engine opens SQLite databases through the modernc.org/sqlite
// driver and registers SQL scalar functions over encoded sequences, so
// distances and subsequence tests can run inside queries.
package engine
