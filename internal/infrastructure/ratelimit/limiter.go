// Package ratelimit limits how many relay requests a client may send per window.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Decision is the outcome of one Allow call
type Decision struct {
	Allowed   bool
	Limit     int
	Remaining int
}

// Limiter decides whether a request identified by key may proceed
type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
}

// MemoryLimiter is a fixed window limiter held in process memory
type MemoryLimiter struct {
	mu          sync.Mutex
	clients     map[string]*client
	limit       int           // Maximum requests per window
	window      time.Duration // Time window
	cleanupTick time.Duration // Cleanup interval
	now         func() time.Time
	stop        chan struct{}
	stopOnce    sync.Once
}

type client struct {
	tokens    int
	lastReset time.Time
}

// NewMemoryLimiter creates a new in-memory limiter. Call Close to stop the
// cleanup goroutine.
func NewMemoryLimiter(limit int, window time.Duration) *MemoryLimiter {
	rl := &MemoryLimiter{
		clients:     make(map[string]*client),
		limit:       limit,
		window:      window,
		cleanupTick: window * 2, // Cleanup every 2 windows
		now:         time.Now,
		stop:        make(chan struct{}),
	}
	go rl.cleanup()
	return rl
}

// cleanup removes expired clients periodically
func (rl *MemoryLimiter) cleanup() {
	ticker := time.NewTicker(rl.cleanupTick)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.evictExpired()
		}
	}
}

func (rl *MemoryLimiter) evictExpired() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	now := rl.now()
	for key, c := range rl.clients {
		if now.Sub(c.lastReset) > rl.window*2 {
			delete(rl.clients, key)
		}
	}
}

// Allow consumes one token for key
func (rl *MemoryLimiter) Allow(_ context.Context, key string) (Decision, error) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	c, exists := rl.clients[key]

	if !exists || now.Sub(c.lastReset) >= rl.window {
		rl.clients[key] = &client{
			tokens:    rl.limit - 1,
			lastReset: now,
		}
		return Decision{Allowed: true, Limit: rl.limit, Remaining: rl.limit - 1}, nil
	}

	if c.tokens > 0 {
		c.tokens--
		return Decision{Allowed: true, Limit: rl.limit, Remaining: c.tokens}, nil
	}

	return Decision{Allowed: false, Limit: rl.limit, Remaining: 0}, nil
}

// Close stops the cleanup goroutine
func (rl *MemoryLimiter) Close() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

var _ Limiter = (*MemoryLimiter)(nil)
