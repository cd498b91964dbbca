package policy

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// ClientLimiter throttles mutating dispatches per originating client
// identity. Each client gets its own token bucket refilled at the configured
// per-minute rate; idle clients are evicted after the configured TTL so the
// map does not grow without bound.
type ClientLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientEntry

	limit rate.Limit
	burst int
	ttl   time.Duration

	lastSweep time.Time
}

type clientEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewClientLimiter creates a limiter allowing perMinute requests per client
// per rolling minute, with the given burst. Idle client state is dropped
// after idleTTL.
func NewClientLimiter(perMinute, burst int, idleTTL time.Duration) *ClientLimiter {
	if perMinute < 1 {
		perMinute = 30
	}
	if burst < 1 {
		burst = perMinute
	}
	if idleTTL <= 0 {
		idleTTL = 10 * time.Minute
	}
	return &ClientLimiter{
		clients:   make(map[string]*clientEntry),
		limit:     rate.Limit(float64(perMinute) / 60.0),
		burst:     burst,
		ttl:       idleTTL,
		lastSweep: time.Now(),
	}
}

// Allow reports whether the client identified by key may perform another
// mutating dispatch now. A fresh client is always allowed its burst.
func (l *ClientLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	l.maybeSweep(now)

	entry, ok := l.clients[key]
	if !ok {
		entry = &clientEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[key] = entry
	}
	entry.lastSeen = now

	return entry.limiter.Allow()
}

// RetryAfter returns a coarse hint of how long a rejected client should wait
// for the next token to become available.
func (l *ClientLimiter) RetryAfter() time.Duration {
	if l.limit <= 0 {
		return time.Minute
	}
	d := time.Duration(float64(time.Second) / float64(l.limit))
	if d < time.Second {
		d = time.Second
	}
	return d
}

// Len returns the number of tracked client identities.
func (l *ClientLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

// maybeSweep evicts idle clients. Must be called with the lock held.
func (l *ClientLimiter) maybeSweep(now time.Time) {
	if now.Sub(l.lastSweep) < l.ttl {
		return
	}
	for key, entry := range l.clients {
		if now.Sub(entry.lastSeen) > l.ttl {
			delete(l.clients, key)
		}
	}
	l.lastSweep = now
}
