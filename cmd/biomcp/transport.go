package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// mcp/serve/serve-http cover transport framing (stdio MCP protocol
// handshake, a long-running daemon, an HTTP listener) that spec §1
// leaves as an external collaborator's responsibility — the core
// exposes its engines as plain Go values and a one-shot CLI, not a
// protocol server. These subcommands exist so the documented command
// surface is complete and `biomcp --help` doesn't look like it's
// missing functionality, but they stop short of implementing a wire
// protocol.

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run as an MCP stdio server (not implemented by this core)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return transportNotImplemented("mcp", "wrap cross.Pivots/entities.Engines behind an MCP stdio transport")
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run as a long-lived daemon (not implemented by this core)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return transportNotImplemented("serve", "host cross.Pivots/entities.Engines behind a persistent process")
	},
}

var serveHTTPCmd = &cobra.Command{
	Use:   "serve-http",
	Short: "Run as an HTTP server (not implemented by this core)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return transportNotImplemented("serve-http", "expose cross.Pivots/entities.Engines over an HTTP handler")
	},
}

func transportNotImplemented(name, what string) error {
	fmt.Fprintf(os.Stderr, "%s: transport framing is outside this core; %s in a separate collaborator\n", name, what)
	return fmt.Errorf("%s: not implemented", name)
}

func init() {
	rootCmd.AddCommand(mcpCmd, serveCmd, serveHTTPCmd)
}
