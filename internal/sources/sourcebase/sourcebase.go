// Package sourcebase is the common shape every package under
// internal/sources embeds: a base URL overridable by a per-source
// environment variable, a reference to the shared HTTP substrate, and
// small helpers for building query URLs and decoding JSON bodies. This is
// the generalized form of the teacher's per-tracker Client struct
// (internal/github.Client, internal/jira.Client, ...), which each hard-
// coded its own base URL and doRequest loop; here the retry/rate-
// limit/cache policy lives once in httpsubstrate and every source just
// supplies its name, default base URL, and env var.
package sourcebase

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/petrsovadina/biomcp/internal/httpsubstrate"
)

// Base is embedded by every source client.
type Base struct {
	Name    string // logical API name surfaced in errors, e.g. "MyGene"
	BaseURL string
	HTTP    *httpsubstrate.Client
}

// NewBase resolves BaseURL from envVar (falling back to defaultBaseURL)
// and wires the shared substrate, per spec §4.B ("Base URL is overridable
// by a per-source environment variable").
func NewBase(name, defaultBaseURL, envVar string, http *httpsubstrate.Client) Base {
	base := defaultBaseURL
	if v := os.Getenv(envVar); v != "" {
		base = v
	}
	return Base{Name: name, BaseURL: strings.TrimSuffix(base, "/"), HTTP: http}
}

// BuildURL joins path onto BaseURL and encodes query into the URL.
func (b Base) BuildURL(path string, query url.Values) string {
	u := b.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// GetJSON performs a cached, rate-limited, retried GET and decodes the
// response body into out.
func (b Base) GetJSON(ctx context.Context, path string, query url.Values, ttl time.Duration, out any) error {
	resp, err := b.HTTP.Do(ctx, httpsubstrate.Request{
		API:      b.Name,
		Method:   "GET",
		URL:      b.BuildURL(path, query),
		CacheTTL: ttl,
		Parse:    httpsubstrate.ParseJSON,
	})
	if err != nil {
		return err
	}
	return resp.JSON(b.Name, out)
}

// GetBytes performs a cached, rate-limited, retried GET and returns the
// raw response bytes (used for XML/bioc-json/full-text endpoints that the
// caller parses itself).
func (b Base) GetBytes(ctx context.Context, path string, query url.Values, ttl time.Duration) (*httpsubstrate.Response, error) {
	return b.HTTP.Do(ctx, httpsubstrate.Request{
		API:      b.Name,
		Method:   "GET",
		URL:      b.BuildURL(path, query),
		CacheTTL: ttl,
		Parse:    httpsubstrate.ParseBytes,
	})
}

// GetAbsoluteJSON performs a cached GET against a caller-supplied absolute
// URL (used for opaque next_page_token URLs and cross-linked resources).
func (b Base) GetAbsoluteJSON(ctx context.Context, absoluteURL string, ttl time.Duration, out any) error {
	resp, err := b.HTTP.Do(ctx, httpsubstrate.Request{
		API:      b.Name,
		Method:   "GET",
		URL:      absoluteURL,
		CacheTTL: ttl,
		Parse:    httpsubstrate.ParseJSON,
	})
	if err != nil {
		return err
	}
	return resp.JSON(b.Name, out)
}

// Ping issues a minimal GET against path to support the `health` command's
// per-source uniform capability (SPEC_FULL.md's supplemented health-check
// contract).
func (b Base) Ping(ctx context.Context, path string) error {
	_, err := b.HTTP.Do(ctx, httpsubstrate.Request{
		API:      b.Name,
		Method:   "GET",
		URL:      b.BuildURL(path, nil),
		CacheTTL: 0,
		Parse:    httpsubstrate.ParseBytes,
	})
	return err
}

// String implements fmt.Stringer for debug logging.
func (b Base) String() string {
	return fmt.Sprintf("%s(%s)", b.Name, b.BaseURL)
}
