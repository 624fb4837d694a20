package store

import (
	"context"
	"time"

	"github.com/viant/seqmine/cluster"
	"github.com/viant/seqmine/selection"
	"github.com/viant/seqmine/sequence"
)

// Item is one corpus entry: the caller it was mined from and its calls.
type Item struct {
	Caller   string
	Sequence sequence.Sequence
}

// Run is one persisted partition call.
type Run struct {
	// ID is assigned on save when empty.
	ID        string
	Metric    string
	CreatedAt time.Time
	Result    *cluster.Result
	// Selection holds the representatives picked per cluster label, if any.
	Selection map[int][]selection.Entry
}

// Store persists corpora and runs.
type Store interface {
	// SaveCorpus replaces the stored corpus.
	SaveCorpus(ctx context.Context, items []Item) error

	// LoadCorpus returns the stored corpus in item order.
	LoadCorpus(ctx context.Context) ([]Item, error)

	// SaveRun stores run and returns its ID.
	SaveRun(ctx context.Context, run *Run) (string, error)

	// LoadRun returns the run with the given ID.
	LoadRun(ctx context.Context, id string) (*Run, error)

	// RunIDs lists stored runs, oldest first.
	RunIDs(ctx context.Context) ([]string, error)
}
