package gateway

import (
	"context"
	"sync"
	"time"
)

type rateLimitEntry struct {
	count       int
	windowStart time.Time
}

// RateLimiter is a fixed-window request counter keyed by client identifier.
// It is an explicit state object injected into the request handlers, not a
// package-level singleton, so tests get clean state per case. Safe for
// concurrent use.
type RateLimiter struct {
	mu      sync.Mutex
	entries map[string]*rateLimitEntry
	max     int
	window  time.Duration
	now     func() time.Time
}

func NewRateLimiter(max int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		entries: make(map[string]*rateLimitEntry),
		max:     max,
		window:  window,
		now:     time.Now,
	}
}

// Allow records one request for key and reports whether it is within the
// limit. The count resets to 1 whenever the elapsed time since the window
// start exceeds the window; otherwise it increments until the maximum is
// reached.
func (l *RateLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	e, ok := l.entries[key]
	if !ok || now.Sub(e.windowStart) > l.window {
		l.entries[key] = &rateLimitEntry{count: 1, windowStart: now}
		return true
	}
	if e.count >= l.max {
		return false
	}
	e.count++
	return true
}

// StartSweeper periodically evicts entries whose window expired more than
// one full window ago, bounding the table across the process lifetime. Live
// windows are never touched, so the counting semantics are unaffected. The
// sweeper stops when ctx is cancelled.
func (l *RateLimiter) StartSweeper(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(l.window)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				l.sweep()
			}
		}
	}()
}

func (l *RateLimiter) sweep() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for key, e := range l.entries {
		if now.Sub(e.windowStart) > 2*l.window {
			delete(l.entries, key)
		}
	}
}
