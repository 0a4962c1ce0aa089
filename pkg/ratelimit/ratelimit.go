// Package ratelimit provides a client-side throttle for the Trading212 API.
// The service enforces per-endpoint request quotas and answers 429 when they
// are exceeded; since the client never retries, callers that poll (pagination
// loops, watch loops) should pace themselves with a Limiter instead.
package ratelimit

import (
	"context"
	"strings"
	"sync"
	"time"
)

// Limiter admits requests at a bounded rate.
type Limiter interface {
	// Allow reports whether a request may proceed right now and, if so,
	// consumes one slot.
	Allow() bool
	// Wait blocks until a slot is available or ctx is done.
	Wait(ctx context.Context) error
}

// SlidingWindow admits at most limit requests per window.
type SlidingWindow struct {
	limit  int
	window time.Duration

	mu    sync.Mutex
	stamp []time.Time
}

// NewSlidingWindow returns a limiter admitting limit requests per window.
func NewSlidingWindow(limit int, window time.Duration) *SlidingWindow {
	return &SlidingWindow{limit: limit, window: window}
}

func (sw *SlidingWindow) Allow() bool {
	sw.mu.Lock()
	defer sw.mu.Unlock()

	cutoff := time.Now().Add(-sw.window)
	live := sw.stamp[:0]
	for _, ts := range sw.stamp {
		if ts.After(cutoff) {
			live = append(live, ts)
		}
	}
	sw.stamp = live

	if len(sw.stamp) >= sw.limit {
		return false
	}
	sw.stamp = append(sw.stamp, time.Now())
	return true
}

func (sw *SlidingWindow) Wait(ctx context.Context) error {
	for {
		if sw.Allow() {
			return nil
		}

		sw.mu.Lock()
		wait := 50 * time.Millisecond
		if len(sw.stamp) > 0 {
			if until := sw.window - time.Since(sw.stamp[0]); until > wait {
				wait = until
			}
		}
		sw.mu.Unlock()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

// PathLimiter routes each request path to the limiter with the longest
// matching prefix. Paths with no match pass through unthrottled.
type PathLimiter struct {
	mu       sync.RWMutex
	limiters map[string]Limiter
}

// NewPathLimiter returns an empty PathLimiter.
func NewPathLimiter() *PathLimiter {
	return &PathLimiter{limiters: make(map[string]Limiter)}
}

// Set installs a limiter for every path beginning with prefix.
func (pl *PathLimiter) Set(prefix string, l Limiter) {
	pl.mu.Lock()
	defer pl.mu.Unlock()
	pl.limiters[prefix] = l
}

func (pl *PathLimiter) match(path string) Limiter {
	pl.mu.RLock()
	defer pl.mu.RUnlock()

	var best string
	var found Limiter
	for prefix, l := range pl.limiters {
		if strings.HasPrefix(path, prefix) && len(prefix) > len(best) {
			best, found = prefix, l
		}
	}
	return found
}

// Wait blocks until the limiter matching path admits the request. Unmatched
// paths return immediately.
func (pl *PathLimiter) Wait(ctx context.Context, path string) error {
	if l := pl.match(path); l != nil {
		return l.Wait(ctx)
	}
	return nil
}

// Defaults returns a PathLimiter preloaded with the service's published
// per-endpoint quotas, rounded down where the documentation gives a range.
func Defaults() *PathLimiter {
	pl := NewPathLimiter()
	pl.Set("/equity/metadata", NewSlidingWindow(1, 30*time.Second))
	pl.Set("/equity/account/cash", NewSlidingWindow(1, 2*time.Second))
	pl.Set("/equity/account/info", NewSlidingWindow(1, 30*time.Second))
	pl.Set("/equity/portfolio", NewSlidingWindow(1, 5*time.Second))
	pl.Set("/equity/orders", NewSlidingWindow(1, 5*time.Second))
	pl.Set("/equity/pies", NewSlidingWindow(1, 5*time.Second))
	pl.Set("/equity/history/orders", NewSlidingWindow(6, time.Minute))
	pl.Set("/history/dividends", NewSlidingWindow(6, time.Minute))
	pl.Set("/history/transactions", NewSlidingWindow(6, time.Minute))
	pl.Set("/history/exports", NewSlidingWindow(1, 30*time.Second))
	return pl
}
