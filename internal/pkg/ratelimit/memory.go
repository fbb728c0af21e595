// Package ratelimit provides a process-local sliding-window rate limiter for
// keying contact-form submissions by source address. State lives for the
// process lifetime only; multi-instance deployments should use the
// Redis-backed limiter instead so the limit cannot be bypassed.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryLimiter keeps per-key submission timestamps and prunes entries older
// than the window on every check rather than resetting fixed buckets.
type MemoryLimiter struct {
	mu      sync.Mutex
	max     int
	window  time.Duration
	entries map[string][]time.Time

	now func() time.Time // overridable in tests
}

// NewMemoryLimiter creates a limiter allowing max accepted submissions per
// key within the sliding window.
func NewMemoryLimiter(max int, window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		max:     max,
		window:  window,
		entries: make(map[string][]time.Time),
		now:     time.Now,
	}
}

// Allow reports whether key may submit now. It prunes expired timestamps but
// does not consume quota.
func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	recent := l.prune(key)
	return len(recent) < l.max, nil
}

// Record counts one accepted submission for key.
func (l *MemoryLimiter) Record(_ context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries[key] = append(l.prune(key), l.now())
	return nil
}

// prune drops timestamps older than the window. Caller must hold mu.
func (l *MemoryLimiter) prune(key string) []time.Time {
	cutoff := l.now().Add(-l.window)
	kept := l.entries[key][:0]
	for _, ts := range l.entries[key] {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	if len(kept) == 0 {
		delete(l.entries, key)
		return nil
	}
	l.entries[key] = kept
	return kept
}
