// Package biomcpdebug is the engine's stderr diagnostics channel, gated by
// an env var exactly like the teacher's internal/debug package, so
// enrichment-call failures and cache hits/misses can be traced without
// polluting normal stdout output.
package biomcpdebug

import (
	"fmt"
	"os"
)

var (
	enabled     = os.Getenv("BIOMCP_DEBUG") != ""
	verboseMode = false
	quietMode   = false
)

func Enabled() bool {
	return enabled || verboseMode
}

// SetVerbose enables verbose/debug output regardless of BIOMCP_DEBUG.
func SetVerbose(verbose bool) {
	verboseMode = verbose
}

// SetQuiet suppresses non-essential stdout output.
func SetQuiet(quiet bool) {
	quietMode = quiet
}

func IsQuiet() bool {
	return quietMode
}

// Logf writes a debug line to stderr when debugging is enabled. Used by
// the HTTP substrate and orchestrators to log enrichment failures with
// context, per spec §4.D step 4.
func Logf(format string, args ...interface{}) {
	if enabled || verboseMode {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// PrintNormal prints to stdout unless quiet mode is enabled.
func PrintNormal(format string, args ...interface{}) {
	if !quietMode {
		fmt.Printf(format, args...)
	}
}

// PrintlnNormal prints a line to stdout unless quiet mode is enabled.
func PrintlnNormal(args ...interface{}) {
	if !quietMode {
		fmt.Println(args...)
	}
}
