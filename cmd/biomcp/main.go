package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/petrsovadina/biomcp/internal/biomcpconfig"
	"github.com/petrsovadina/biomcp/internal/biomcpdebug"
	"github.com/petrsovadina/biomcp/internal/bmerrors"
	"github.com/petrsovadina/biomcp/internal/cache"
	"github.com/petrsovadina/biomcp/internal/cross"
	"github.com/petrsovadina/biomcp/internal/entities"
	"github.com/petrsovadina/biomcp/internal/httpsubstrate"
)

// Version and Build are overridden at release-build time via
// -ldflags "-X main.Version=... -X main.Build=...", matching the
// teacher's build-metadata-injection convention (out of scope for the
// core itself per spec §1, carried only as a CLI display value).
var (
	Version = "dev"
	Build   = "unknown"
)

var (
	jsonOutput bool
	noCache    bool
	verboseFlag bool
	quietFlag  bool

	rootCtx    context.Context
	rootCancel context.CancelFunc

	pivots *cross.Pivots
)

var rootCmd = &cobra.Command{
	Use:   "biomcp",
	Short: "biomcp - federated biomedical query engine",
	Long:  "Presents a consistent query surface over public gene, variant, drug, trial, literature, pathway, protein, PGx, GWAS, and adverse-event APIs.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		rootCtx, rootCancel = signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		biomcpdebug.SetVerbose(verboseFlag)
		biomcpdebug.SetQuiet(quietFlag)

		noDbCommands := map[string]bool{"version": true, "completion": true, "help": true}
		if noDbCommands[cmd.Name()] {
			return
		}

		cfg, err := biomcpconfig.Load()
		if err != nil {
			fatal(err)
		}
		if cmd.Flags().Changed("no-cache") {
			cfg.NoCache = noCache
		}

		cacheDir := cfg.CacheDir
		if cacheDir == "" {
			home, _ := os.UserHomeDir()
			cacheDir = filepath.Join(home, ".biomcp", "cache")
		}
		store, err := cache.New(cacheDir)
		if err != nil {
			fatal(err)
		}

		httpClient, err := httpsubstrate.Shared(store, cfg.Substrate(), cfg.RateLimitOverridesMS)
		if err != nil {
			fatal(err)
		}

		sources := entities.NewSources(httpClient)
		engines := entities.NewEngines(sources, store)
		pivots = &cross.Pivots{Engines: engines}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if rootCancel != nil {
			rootCancel()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print JSON output compactly (default: indented)")
	rootCmd.PersistentFlags().BoolVar(&noCache, "no-cache", false, "Bypass the HTTP response cache for this invocation")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose diagnostic output")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "Suppress non-essential output")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fatal(err)
	}
}

// emit writes v as JSON to stdout: compact when --json is set, indented
// otherwise. Rendering a human-templated summary is out of scope per
// spec §1 ("terminal/JSON rendering templates" is an external
// collaborator contract) — biomcp's own stdout is always JSON.
func emit(v any) {
	var out []byte
	var err error
	if jsonOutput {
		out, err = json.Marshal(v)
	} else {
		out, err = json.MarshalIndent(v, "", "  ")
	}
	if err != nil {
		fatal(err)
	}
	fmt.Println(string(out))
}

// fatal prints err to stderr and exits with the taxonomy's mapped code
// (spec §6/§7): 1 for user error, 2 for upstream failure, 130 on
// interruption.
func fatal(err error) {
	if ctxErr := rootCtx.Err(); ctxErr != nil {
		fmt.Fprintln(os.Stderr, "interrupted")
		os.Exit(130)
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(bmerrors.ExitCode(err))
}

// withCache threads the --no-cache flag into ctx for the duration of fn,
// per spec §5's task-local "cache mode" contract.
func withCache[T any](ctx context.Context, fn func(context.Context) (T, error)) (T, error) {
	return httpsubstrate.WithNoCache(ctx, noCache, fn)
}
