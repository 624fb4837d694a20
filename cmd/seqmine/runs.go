package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/viant/seqmine/engine"
	"github.com/viant/seqmine/store"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List runs stored in a database",
	RunE: func(cmd *cobra.Command, args []string) error {
		if dbPath == "" {
			return fmt.Errorf("seqmine: --db is required")
		}
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		db, err := engine.Open(dbPath)
		if err != nil {
			return err
		}
		defer db.Close()
		s, err := store.NewSQLiteStore(ctx, db)
		if err != nil {
			return err
		}
		ids, err := s.RunIDs(ctx)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, id := range ids {
			run, err := s.LoadRun(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s\t%s\t%s\t%d clusters\t%s\n", run.ID, run.Result.Strategy, run.Metric,
				len(run.Result.Clusters), run.CreatedAt.Format("2006-01-02T15:04:05Z07:00"))
		}
		return nil
	},
}

func init() {
	runsCmd.Flags().StringVar(&dbPath, "db", "", "SQLite database holding stored runs")
}
