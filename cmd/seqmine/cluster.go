package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/viant/seqmine/config"
	"github.com/viant/seqmine/engine"
	"github.com/viant/seqmine/sequence"
	"github.com/viant/seqmine/store"
)

var (
	configPath string
	inputPath  string
	dbPath     string
	outputPath string
	metricName string
)

var clusterCmd = &cobra.Command{
	Use:   "cluster",
	Short: "Cluster a corpus of call sequences",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if metricName != "" {
			cfg.Metric = metricName
		}
		callers, corpus, err := readInput(inputPath, cmd.InOrStdin())
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		rep, err := pipeline(ctx, cfg, callers, corpus, log.Logger)
		if err != nil {
			return err
		}
		if dbPath != "" {
			if rep.RunID, err = persist(ctx, dbPath, rep); err != nil {
				return err
			}
			log.Info().Str("run", rep.RunID).Str("db", dbPath).Msg("run stored")
		}
		return writeReport(outputPath, cmd.OutOrStdout(), rep)
	},
}

func init() {
	flags := clusterCmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	flags.StringVarP(&inputPath, "input", "i", "-", "corpus file, one sequence per line (- for stdin)")
	flags.StringVar(&dbPath, "db", "", "SQLite database to store the corpus and run in")
	flags.StringVarP(&outputPath, "output", "o", "-", "JSON report destination (- for stdout)")
	flags.StringVar(&metricName, "metric", "", "override the configured metric")
}

func readInput(path string, stdin io.Reader) ([]string, sequence.Corpus, error) {
	if path == "" || path == "-" {
		return sequence.ReadCorpus(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("seqmine: open input: %w", err)
	}
	defer f.Close()
	return sequence.ReadCorpus(f)
}

func writeReport(path string, stdout io.Writer, rep *report) error {
	w := stdout
	if path != "" && path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("seqmine: create output: %w", err)
		}
		defer f.Close()
		w = f
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

// persist stores the clustered items and the run, returning the run ID.
func persist(ctx context.Context, path string, rep *report) (string, error) {
	if err := engine.RegisterSequenceFunctions(); err != nil {
		return "", err
	}
	db, err := engine.Open(path)
	if err != nil {
		return "", err
	}
	defer db.Close()
	s, err := store.NewSQLiteStore(ctx, db)
	if err != nil {
		return "", err
	}
	items := make([]store.Item, len(rep.Items))
	for i, it := range rep.Items {
		items[i] = store.Item{Caller: it.Caller, Sequence: it.Sequence}
	}
	if err := s.SaveCorpus(ctx, items); err != nil {
		return "", err
	}
	return s.SaveRun(ctx, &store.Run{Metric: rep.Metric, Result: rep.Result, Selection: rep.Selection})
}
