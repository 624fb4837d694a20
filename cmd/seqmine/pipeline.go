package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/viant/seqmine/cluster"
	"github.com/viant/seqmine/config"
	"github.com/viant/seqmine/features"
	"github.com/viant/seqmine/matrix"
	"github.com/viant/seqmine/selection"
	"github.com/viant/seqmine/sequence"
)

type reportItem struct {
	// Index is the position of the item in the corpus as read, before pruning.
	Index    int               `json:"index"`
	Caller   string            `json:"caller,omitempty"`
	Sequence sequence.Sequence `json:"sequence"`
}

type rankedPattern struct {
	Label    int               `json:"label"`
	Support  int               `json:"support"`
	Sequence sequence.Sequence `json:"sequence"`
}

// report is the JSON document written by the cluster command. Item indices
// in Result and Selection refer to Items.
type report struct {
	RunID     string                    `json:"run_id,omitempty"`
	Metric    string                    `json:"metric"`
	Items     []reportItem              `json:"items"`
	Result    *cluster.Result           `json:"result"`
	Selection map[int][]selection.Entry `json:"selection"`
	Ranking   []rankedPattern           `json:"ranking"`
}

// pipeline clusters the corpus read from the input and selects
// representatives as configured.
func pipeline(ctx context.Context, cfg *config.Config, callers []string, corpus sequence.Corpus, logger zerolog.Logger) (*report, error) {
	metric, err := cfg.ResolveMetric()
	if err != nil {
		return nil, err
	}
	strategy, err := cfg.ResolveStrategy()
	if err != nil {
		return nil, err
	}
	opts, err := cfg.ResolveSelection()
	if err != nil {
		return nil, err
	}
	if err := corpus.Validate(); err != nil {
		return nil, err
	}

	source := make([]int, len(corpus))
	for i := range source {
		source[i] = i
	}
	engineOpts := []cluster.EngineOption{
		cluster.WithMetric(metric),
		cluster.WithParallelism(cfg.Parallelism),
		cluster.WithLogger(logger),
	}
	if cfg.PruneUnique {
		full, err := matrix.Build(ctx, corpus, metric, matrix.WithParallelism(cfg.Parallelism), matrix.WithLogger(logger))
		if err != nil {
			return nil, err
		}
		pruned, kept := full.Without(full.UniqueRows())
		if len(kept) < 2 {
			return nil, fmt.Errorf("seqmine: %d items left after pruning unique sequences: %w", len(kept), sequence.ErrInvalidInput)
		}
		logger.Info().Int("items", len(corpus)).Int("kept", len(kept)).Msg("pruned unique sequences")
		corpus = corpus.Subset(kept)
		source = kept
		engineOpts = append(engineOpts, cluster.WithDistances(pruned))
	}

	var rows [][]float32
	if strategy.Shape() == cluster.ShapeFeatures || opts.Center == selection.CenterCentroid {
		var vocab *features.Vocabulary
		if vocab, rows, err = features.BagOfCalls(corpus); err != nil {
			return nil, err
		}
		logger.Debug().Int("columns", vocab.Len()).Msg("bag of calls built")
		engineOpts = append(engineOpts, cluster.WithFeatures(rows))
	}

	engine, err := cluster.NewEngine(corpus, engineOpts...)
	if err != nil {
		return nil, err
	}
	result, err := engine.Partition(ctx, strategy)
	if err != nil {
		return nil, err
	}

	var dist *matrix.Matrix
	if opts.Center == selection.CenterMedoid {
		if dist, err = engine.Distances(ctx); err != nil {
			return nil, err
		}
	}
	picked, err := selection.Select(result, dist, rows, opts)
	if err != nil {
		return nil, err
	}

	patterns := make([]sequence.Sequence, len(result.Clusters))
	for i, c := range result.Clusters {
		patterns[i] = c.Sequence
	}
	var ranking []rankedPattern
	for _, r := range selection.RankBySupport(patterns, corpus) {
		c := result.Clusters[r.Pattern]
		ranking = append(ranking, rankedPattern{Label: c.Label, Support: r.Support, Sequence: c.Sequence})
	}

	items := make([]reportItem, len(corpus))
	for i, s := range corpus {
		items[i] = reportItem{Index: source[i], Sequence: s}
		if source[i] < len(callers) {
			items[i].Caller = callers[source[i]]
		}
	}
	logger.Info().
		Str("strategy", result.Strategy).
		Int("clusters", len(result.Clusters)).
		Bool("converged", result.Converged).
		Msg("clustering complete")
	return &report{
		Metric:    string(metric),
		Items:     items,
		Result:    result,
		Selection: picked,
		Ranking:   ranking,
	}, nil
}
