// Package ratelimit provides token-bucket rate limiting for the public
// assistant endpoints.
package ratelimit

import (
	"sync"
	"time"
)

// tokenBucket allows a burst of requests with tokens refilling at a steady
// rate.
type tokenBucket struct {
	capacity   int
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
	mu         sync.Mutex
}

func newTokenBucket(capacity int, refillRate float64) *tokenBucket {
	return &tokenBucket{
		capacity:   capacity,
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// allow consumes a token when one is available.
func (tb *tokenBucket) allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill)
	tb.tokens = min(float64(tb.capacity), tb.tokens+elapsed.Seconds()*tb.refillRate)
	tb.lastRefill = now

	if tb.tokens >= 1.0 {
		tb.tokens -= 1.0
		return true
	}
	return false
}

// Limiter tracks a token bucket per client.
type Limiter struct {
	config  *Config
	buckets map[string]*clientBucket
	mu      sync.Mutex
	done    chan struct{}
}

type clientBucket struct {
	bucket   *tokenBucket
	lastSeen time.Time
}

// NewLimiter creates a limiter and starts its idle-bucket cleanup loop.
func NewLimiter(config *Config) *Limiter {
	l := &Limiter{
		config:  config,
		buckets: make(map[string]*clientBucket),
		done:    make(chan struct{}),
	}
	if config.Enabled {
		go l.cleanupLoop()
	}
	return l
}

// Allow reports whether the client may proceed.
func (l *Limiter) Allow(clientID string) bool {
	if !l.config.Enabled {
		return true
	}

	l.mu.Lock()
	cb, ok := l.buckets[clientID]
	if !ok {
		refillRate := float64(l.config.Limit) / l.config.Window.Seconds()
		cb = &clientBucket{bucket: newTokenBucket(l.config.Burst, refillRate)}
		l.buckets[clientID] = cb
	}
	cb.lastSeen = time.Now()
	l.mu.Unlock()

	return cb.bucket.allow()
}

// Stop terminates the cleanup loop.
func (l *Limiter) Stop() {
	close(l.done)
}

// cleanupLoop drops buckets for clients idle longer than the cleanup
// interval, so one-off visitors don't accumulate forever.
func (l *Limiter) cleanupLoop() {
	ticker := time.NewTicker(l.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-l.done:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-l.config.CleanupInterval)
			l.mu.Lock()
			for id, cb := range l.buckets {
				if cb.lastSeen.Before(cutoff) {
					delete(l.buckets, id)
				}
			}
			l.mu.Unlock()
		}
	}
}
