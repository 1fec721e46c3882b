// Package httpsubstrate is component A of the federated query engine: a
// single shared, pooled HTTP client with per-host rate limiting, bounded
// retry with jittered backoff, response-size limits, gzip handling, and
// content-addressed on-disk caching, plus a process-wide "bypass cache"
// scope. Every source client in internal/sources builds on this package
// instead of calling net/http directly — mirroring the teacher's
// per-adapter doRequest loops (internal/github/client.go and siblings),
// generalized into one shared substrate so the retry/rate-limit/cache
// policy lives in exactly one place.
package httpsubstrate

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/petrsovadina/biomcp/internal/bmerrors"
	"github.com/petrsovadina/biomcp/internal/cache"
	"github.com/petrsovadina/biomcp/internal/ratelimit"
)

// Defaults mirror spec §4.A.
const (
	DefaultTimeout         = 30 * time.Second
	DefaultConnectTimeout  = 5 * time.Second
	DefaultMaxBodyBytes    = 16 << 20 // 16 MiB
	DefaultMaxRetries      = 3
	DefaultAnnotationTTL   = 12 * time.Hour
	DefaultSearchTTL       = 1 * time.Hour
	excerptLen             = 500
)

// Config controls the substrate's tunables. The zero value is not usable;
// call NewConfig for sensible defaults.
type Config struct {
	Timeout        time.Duration
	ConnectTimeout time.Duration
	MaxBodyBytes   int64
	MaxRetries     int
	// RateLimitOverridesMS holds per-host minimum intervals in
	// milliseconds for known-fragile APIs (spec §4.A).
	RateLimitOverridesMS map[string]int
}

// NewConfig returns the documented defaults.
func NewConfig() Config {
	return Config{
		Timeout:        DefaultTimeout,
		ConnectTimeout: DefaultConnectTimeout,
		MaxBodyBytes:   DefaultMaxBodyBytes,
		MaxRetries:     DefaultMaxRetries,
	}
}

// Client is the shared HTTP substrate. It is effectively immutable after
// construction and is safe to share across goroutines (spec §5).
type Client struct {
	http      *http.Client
	cache     *cache.Store
	limiters  *ratelimit.Registry
	cfg       Config
}

var (
	sharedOnce   sync.Once
	sharedClient *Client
	sharedErr    error
)

// Shared lazily constructs the process-wide client on first use and
// returns the same instance on every subsequent call, per spec §3's
// "process-wide state" ownership rule.
func Shared(cacheStore *cache.Store, cfg Config, rateOverrides map[string]int) (*Client, error) {
	sharedOnce.Do(func() {
		sharedClient, sharedErr = New(cacheStore, cfg, rateOverrides)
	})
	return sharedClient, sharedErr
}

// New constructs an independent Client (used by tests and by Shared).
func New(cacheStore *cache.Store, cfg Config, rateOverrides map[string]int) (*Client, error) {
	dialer := &net.Dialer{Timeout: cfg.ConnectTimeout}
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		DialContext:         dialer.DialContext,
	}
	hc := &http.Client{
		Timeout:   cfg.Timeout,
		Transport: transport,
	}
	return &Client{
		http:     hc,
		cache:    cacheStore,
		limiters: ratelimit.NewRegistry(rateOverrides),
		cfg:      cfg,
	}, nil
}

// noCacheKey scopes the process-wide "bypass cache" flag to the current
// task/request only, per spec §4.A and §5 ("task-local context").
type noCacheKey struct{}

// WithNoCache threads bypass into ctx for the duration of fn, mirroring
// the `with_no_cache(bool, F) -> F::Output` scope combinator in spec §4.A.
func WithNoCache[T any](ctx context.Context, bypass bool, fn func(context.Context) (T, error)) (T, error) {
	return fn(context.WithValue(ctx, noCacheKey{}, bypass))
}

// NoCache reports whether the bypass-cache flag is set on ctx.
func NoCache(ctx context.Context) bool {
	v, _ := ctx.Value(noCacheKey{}).(bool)
	return v
}

// ParseMode selects how Request.Do interprets a 2xx body.
type ParseMode int

const (
	ParseJSON ParseMode = iota
	ParseBytes
	ParseText
)

// Request describes a single logical HTTP call through the substrate.
type Request struct {
	API         string // logical API name, surfaced in Api{} errors.
	Method      string
	URL         string
	Header      http.Header
	Body        []byte            // request body, e.g. for POST; nil for none
	VaryHeaders map[string]string // subset of headers folded into the cache key
	CacheTTL    time.Duration     // 0 disables caching for this request
	Parse       ParseMode
}

// WithJSONBody returns a copy of req with body marshaled as JSON and the
// Content-Type header set, for POST-based endpoints like g:Profiler's
// enrichment API.
func (req Request) WithJSONBody(body any) (Request, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return req, fmt.Errorf("%s: marshal request body: %w", req.API, err)
	}
	req.Body = raw
	if req.Header == nil {
		req.Header = http.Header{}
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// Response is the result of a successful Do call.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte // raw bytes, gzip already decoded
}

// JSON unmarshals the response body into v, wrapping parse failures as
// ApiJson per spec §7.
func (r *Response) JSON(api string, v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return &bmerrors.ApiJson{API: api, Source: err}
	}
	return nil
}

// Do executes the request pipeline: cache -> rate limiter -> retry ->
// transport -> response handling, outermost first. A fresh cache hit
// returns before the rate limiter is consulted; only requests that go
// upstream wait for the host's turn.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	u, err := url.Parse(req.URL)
	if err != nil {
		return nil, bmerrors.NewInvalidArgument("invalid URL %q: %v", req.URL, err)
	}

	cacheable := strings.EqualFold(req.Method, http.MethodGet) && req.CacheTTL > 0 && c.cache != nil
	var key string
	if cacheable {
		key = cache.Key(req.Method, req.URL, req.VaryHeaders)
		if !NoCache(ctx) {
			if entry, ok := c.cache.Get(key); ok {
				return &Response{StatusCode: entry.Status, Header: http.Header(entry.Header), Body: entry.Body}, nil
			}
		}
	}

	if err := c.limiters.Wait(ctx, u.Host); err != nil {
		return nil, fmt.Errorf("%s: rate limiter wait: %w", req.API, err)
	}

	resp, err := c.doWithRetry(ctx, req)
	if err != nil {
		return nil, err
	}

	if cacheable && resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_ = c.cache.Put(key, resp.StatusCode, resp.Header, resp.Body, req.CacheTTL)
	}
	return resp, nil
}

// doWithRetry implements the bounded-retry-with-jittered-backoff layer.
// Transient failures (network error, 5xx, 429) are retried up to
// cfg.MaxRetries additional attempts; any other 4xx is surfaced
// immediately without retrying, per spec §4.A.
func (c *Client) doWithRetry(ctx context.Context, req Request) (*Response, error) {
	maxRetries := c.cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 250 * time.Millisecond
	bo.MaxInterval = 5 * time.Second
	bo.Multiplier = 2
	bo.RandomizationFactor = 0.5 // jitter

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		resp, retryable, err := c.attempt(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		if !retryable || attempt == maxRetries {
			break
		}

		delay := bo.NextBackOff()
		// Small extra jitter on top of the exponential backoff's own
		// randomization, matching the "exponential backoff + jitter"
		// requirement without relying solely on one jitter source.
		delay += time.Duration(rand.Int63n(int64(50 * time.Millisecond)))

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}
	return nil, bmerrors.NewApi(req.API, "request failed after retries", lastErr)
}

// attempt performs exactly one HTTP round trip and classifies the
// outcome. The bool return reports whether the caller should retry.
func (c *Client) attempt(ctx context.Context, req Request) (*Response, bool, error) {
	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, false, fmt.Errorf("%s: build request: %w", req.API, err)
	}
	for k, vs := range req.Header {
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}
	httpReq.Header.Set("Accept-Encoding", "gzip")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, true, fmt.Errorf("%s: %w", req.API, err)
	}
	defer resp.Body.Close()

	reader, err := maybeGunzip(resp)
	if err != nil {
		return nil, false, bmerrors.NewApi(req.API, "failed to decode gzip response", err)
	}

	limited := io.LimitReader(reader, c.maxBodyBytes()+1)
	raw, err := io.ReadAll(limited)
	if err != nil {
		return nil, true, bmerrors.NewApi(req.API, "failed to read response body", err)
	}
	if int64(len(raw)) > c.maxBodyBytes() {
		return nil, false, bmerrors.NewApi(req.API, fmt.Sprintf("response exceeded %d byte cap", c.maxBodyBytes()), nil)
	}

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		return nil, true, bmerrors.NewApi(req.API, fmt.Sprintf("upstream status %d: %s", resp.StatusCode, excerpt(raw)), nil)
	}
	if resp.StatusCode >= 400 {
		return nil, false, bmerrors.NewApi(req.API, fmt.Sprintf("upstream status %d: %s", resp.StatusCode, excerpt(raw)), nil)
	}

	return &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: raw}, false, nil
}

func (c *Client) maxBodyBytes() int64 {
	if c.cfg.MaxBodyBytes > 0 {
		return c.cfg.MaxBodyBytes
	}
	return DefaultMaxBodyBytes
}

// maybeGunzip auto-decodes gzip bodies when the Content-Encoding header or
// magic bytes indicate a gzip stream.
func maybeGunzip(resp *http.Response) (io.Reader, error) {
	br := bufio.NewReader(resp.Body)
	isGzip := strings.EqualFold(resp.Header.Get("Content-Encoding"), "gzip")
	if !isGzip {
		magic, err := br.Peek(2)
		isGzip = err == nil && magic[0] == 0x1f && magic[1] == 0x8b
	}
	if !isGzip {
		return br, nil
	}
	gz, err := gzip.NewReader(br)
	if err != nil {
		return nil, err
	}
	return gz, nil
}

// excerpt returns a short textual excerpt of a body for error diagnostics,
// per spec §4.A.
func excerpt(body []byte) string {
	s := string(body)
	s = strings.TrimSpace(s)
	if len(s) > excerptLen {
		return s[:excerptLen] + "…"
	}
	return s
}
