// Package ratelimit implements the per-host token bucket described in
// spec §4.A and §5: each host gets a minimum interval between requests,
// waiters queue FIFO, and the host map is read-mostly with lazy,
// compare-and-swap-style insertion on first use.
package ratelimit

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// Default minimum interval between requests to a single host, per spec
// §4.A ("default ~300ms").
const DefaultInterval = 300 // milliseconds, converted to a rate in limiterFor.

// Registry is a bounded, lazily populated host -> limiter map. The zero
// value is ready to use.
type Registry struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	// overrides holds per-host minimum intervals in milliseconds for
	// known-fragile upstream APIs (spec §4.A: "tunable per host").
	overrides map[string]int
}

// NewRegistry creates a Registry with per-host interval overrides
// (milliseconds, keyed by host).
func NewRegistry(overrides map[string]int) *Registry {
	return &Registry{
		limiters:  make(map[string]*rate.Limiter),
		overrides: overrides,
	}
}

// limiterFor returns the limiter for host, creating it on first use. The
// existence check and the insertion both run under one plain mutex, so
// at most one limiter is ever created per host; there is no RWMutex
// read-lock fast path, since a single host map insertion is cheap.
func (r *Registry) limiterFor(host string) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.limiters == nil {
		r.limiters = make(map[string]*rate.Limiter)
	}
	if l, ok := r.limiters[host]; ok {
		return l
	}

	intervalMS := DefaultInterval
	if r.overrides != nil {
		if v, ok := r.overrides[host]; ok {
			intervalMS = v
		}
	}
	// A token bucket with burst 1 and a refill rate of one token per
	// interval enforces "minimum interval between requests" exactly;
	// rate.Limiter.Wait already serves pending reservations in the
	// order they were requested, giving FIFO ordering among waiters on
	// the same host.
	everyPerSecond := 1000.0 / float64(intervalMS)
	l := rate.NewLimiter(rate.Limit(everyPerSecond), 1)
	r.limiters[host] = l
	return l
}

// Wait blocks until host's bucket yields a token, or ctx is canceled.
func (r *Registry) Wait(ctx context.Context, host string) error {
	return r.limiterFor(host).Wait(ctx)
}
