package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
)

var batchSections []string

var batchCmd = &cobra.Command{
	Use:   "batch <entity> <id1,id2,...>",
	Short: "Fetch up to 10 records of one entity concurrently, all-or-nothing",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		entity := args[0]
		ids := strings.Split(args[1], ",")
		for i := range ids {
			ids[i] = strings.TrimSpace(ids[i])
		}

		result, err := withCache(rootCtx, func(ctx context.Context) ([]any, error) {
			return pivots.Batch(ctx, entity, ids, batchSections)
		})
		if err != nil {
			return err
		}
		emit(result)
		return nil
	},
}

func init() {
	batchCmd.Flags().StringSliceVar(&batchSections, "sections", nil, "Sections applied identically to every id in the batch")
	rootCmd.AddCommand(batchCmd)
}
