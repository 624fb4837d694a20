package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/viant/seqmine/cluster"
	"github.com/viant/seqmine/selection"
	"github.com/viant/seqmine/sequence"
)

// ErrNotFound is returned by LoadRun for an unknown ID.
var ErrNotFound = errors.New("store: not found")

// SQLiteStore implements Store on a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates the schema in db if needed.
func NewSQLiteStore(ctx context.Context, db *sql.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, fmt.Errorf("store: db is nil")
	}
	if err := EnsureSchema(ctx, db); err != nil {
		return nil, fmt.Errorf("store: schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// SaveCorpus replaces the items table. Item ids are corpus indices.
func (s *SQLiteStore) SaveCorpus(ctx context.Context, items []Item) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM items`); err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO items(id, caller, seq) VALUES(?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for i, item := range items {
		if len(item.Sequence) == 0 {
			return fmt.Errorf("store: item %d is empty: %w", i, sequence.ErrInvalidInput)
		}
		blob, err := sequence.EncodeSequence(item.Sequence)
		if err != nil {
			return err
		}
		if _, err := stmt.ExecContext(ctx, i, item.Caller, blob); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// LoadCorpus returns the stored items ordered by id.
func (s *SQLiteStore) LoadCorpus(ctx context.Context) ([]Item, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT caller, seq FROM items ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Item
	for rows.Next() {
		var (
			caller sql.NullString
			blob   []byte
		)
		if err := rows.Scan(&caller, &blob); err != nil {
			return nil, err
		}
		seq, err := sequence.DecodeSequence(blob)
		if err != nil {
			return nil, err
		}
		out = append(out, Item{Caller: caller.String, Sequence: seq})
	}
	return out, rows.Err()
}

// SaveRun stores the run result as JSON and its cluster membership as rows.
func (s *SQLiteStore) SaveRun(ctx context.Context, run *Run) (string, error) {
	if run == nil || run.Result == nil {
		return "", fmt.Errorf("store: run without result: %w", sequence.ErrInvalidInput)
	}
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}
	result, err := json.Marshal(run.Result)
	if err != nil {
		return "", fmt.Errorf("store: encode result: %w", err)
	}
	var picked []byte
	if run.Selection != nil {
		if picked, err = json.Marshal(run.Selection); err != nil {
			return "", fmt.Errorf("store: encode selection: %w", err)
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs(id, strategy, metric, created_at, result, selection) VALUES(?, ?, ?, ?, ?, ?)`,
		run.ID, run.Result.Strategy, run.Metric, run.CreatedAt.UnixNano(), string(result), nullString(picked)); err != nil {
		return "", err
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO cluster_members(run_id, label, item, is_center) VALUES(?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer stmt.Close()
	for _, c := range run.Result.Clusters {
		for _, m := range c.Members {
			center := 0
			if m == c.Center {
				center = 1
			}
			if _, err := stmt.ExecContext(ctx, run.ID, c.Label, m, center); err != nil {
				return "", err
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return "", err
	}
	return run.ID, nil
}

// LoadRun reads a run saved by SaveRun.
func (s *SQLiteStore) LoadRun(ctx context.Context, id string) (*Run, error) {
	var (
		metric    sql.NullString
		createdAt int64
		result    string
		picked    sql.NullString
	)
	err := s.db.QueryRowContext(ctx, `SELECT metric, created_at, result, selection FROM runs WHERE id = ?`, id).
		Scan(&metric, &createdAt, &result, &picked)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("store: run %q: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	run := &Run{ID: id, Metric: metric.String, CreatedAt: time.Unix(0, createdAt).UTC(), Result: &cluster.Result{}}
	if err := json.Unmarshal([]byte(result), run.Result); err != nil {
		return nil, fmt.Errorf("store: decode result: %w", err)
	}
	if picked.Valid {
		run.Selection = map[int][]selection.Entry{}
		if err := json.Unmarshal([]byte(picked.String), &run.Selection); err != nil {
			return nil, fmt.Errorf("store: decode selection: %w", err)
		}
	}
	return run, nil
}

// RunIDs lists run ids by creation time.
func (s *SQLiteStore) RunIDs(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id FROM runs ORDER BY created_at, rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

// Members returns the items of one cluster of a stored run.
func (s *SQLiteStore) Members(ctx context.Context, runID string, label int) ([]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT item FROM cluster_members WHERE run_id = ? AND label = ? ORDER BY item`, runID, label)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []int
	for rows.Next() {
		var item int
		if err := rows.Scan(&item); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func nullString(b []byte) sql.NullString {
	if b == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: string(b), Valid: true}
}

// Ensure SQLiteStore satisfies the Store interface.
var _ Store = (*SQLiteStore)(nil)
