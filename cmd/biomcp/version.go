package main

import "github.com/spf13/cobra"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		emit(map[string]string{"version": Version, "build": Build})
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
