package main

import (
	"github.com/spf13/cobra"
)

var healthApisOnly bool

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Ping every wired upstream source and report reachability",
	RunE: func(cmd *cobra.Command, args []string) error {
		results := pivots.Engines.Gene.Sources.Health(rootCtx)
		if healthApisOnly {
			emit(results)
			return nil
		}
		allHealthy := true
		for _, r := range results {
			if !r.Healthy {
				allHealthy = false
				break
			}
		}
		emit(map[string]any{"healthy": allHealthy, "sources": results})
		return nil
	},
}

func init() {
	healthCmd.Flags().BoolVar(&healthApisOnly, "apis-only", false, "Only print the per-source results, omit the overall summary")
	rootCmd.AddCommand(healthCmd)
}
