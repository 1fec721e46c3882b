// Package bmerrors defines the flat error taxonomy shared by every layer of
// the federated query engine: HTTP substrate, source clients, transforms,
// and entity orchestrators. There is no exception-based control flow here —
// callers inspect the concrete error types with errors.As.
package bmerrors

import (
	"errors"
	"fmt"
)

// InvalidArgument is returned for validation failures with a concrete
// remedy in the message (bad identifier shape, out-of-range limit, unknown
// section/enum token, conflicting pagination flags, ...).
type InvalidArgument struct {
	Msg string
}

func (e *InvalidArgument) Error() string { return e.Msg }

// NewInvalidArgument builds an InvalidArgument from a format string.
func NewInvalidArgument(format string, args ...any) *InvalidArgument {
	return &InvalidArgument{Msg: fmt.Sprintf(format, args...)}
}

// NotFound indicates that an entity ID does not resolve against its source.
// Suggestion carries a concrete `search` remedy shown to the user.
type NotFound struct {
	Entity     string
	ID         string
	Suggestion string
}

func (e *NotFound) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%s %q not found; try: %s", e.Entity, e.ID, e.Suggestion)
	}
	return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
}

// Api wraps any upstream failure (4xx/5xx not otherwise classified,
// malformed body, timeout) with the logical API name so users see which
// source failed.
type Api struct {
	API     string
	Message string
	Err     error
}

func (e *Api) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.API, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.API, e.Message)
}

func (e *Api) Unwrap() error { return e.Err }

// NewApi builds an Api error, optionally wrapping a lower-level cause.
func NewApi(api, message string, cause error) *Api {
	return &Api{API: api, Message: message, Err: cause}
}

// ApiJson indicates an upstream returned a 2xx response whose body failed
// to parse as the expected shape.
type ApiJson struct {
	API    string
	Source error
}

func (e *ApiJson) Error() string {
	return fmt.Sprintf("%s: failed to parse response body: %v", e.API, e.Source)
}

func (e *ApiJson) Unwrap() error { return e.Source }

// HttpClientInit is a one-time initialization failure of the shared pooled
// HTTP client.
type HttpClientInit struct {
	Err error
}

func (e *HttpClientInit) Error() string {
	return fmt.Sprintf("failed to initialize shared HTTP client: %v", e.Err)
}

func (e *HttpClientInit) Unwrap() error { return e.Err }

// ExitCode maps an error from this taxonomy to the CLI exit code documented
// in spec §6/§7. Unrecognized errors default to 2 (upstream failure), which
// is the conservative choice — an error the core did not classify is more
// likely to originate from an upstream or transport fault than from user
// input the orchestrator already validated.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var invalid *InvalidArgument
	var notFound *NotFound
	switch {
	case errors.As(err, &invalid):
		return 1
	case errors.As(err, &notFound):
		// Entity resolution failures are user-correctable the same way
		// validation failures are (fix the ID, rerun search) — exit 1.
		return 1
	default:
		return 2
	}
}
