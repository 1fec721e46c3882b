package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/petrsovadina/biomcp/internal/bmerrors"
)

var enrichLimit int

var enrichCmd = &cobra.Command{
	Use:   "enrich <gene...>",
	Short: "Run a REAC-filtered g:Profiler pathway enrichment over a gene set",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > enrichLimit {
			return bmerrors.NewInvalidArgument("enrich accepts at most %d genes, got %d", enrichLimit, len(args))
		}
		results, err := withCache(rootCtx, func(ctx context.Context) (any, error) {
			return pivots.Engines.Gene.Sources.GProfiler.Enrich(ctx, "hsapiens", args, []string{"REAC"})
		})
		if err != nil {
			return err
		}
		emit(results)
		return nil
	},
}

func init() {
	enrichCmd.Flags().IntVar(&enrichLimit, "limit", 100, "Max genes accepted in one enrichment call")
	rootCmd.AddCommand(enrichCmd)
}
