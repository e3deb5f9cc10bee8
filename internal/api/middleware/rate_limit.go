package middleware

import (
	"net/http"
	"sync"
	"time"

	"shiftboard-backend/internal/config"

	"github.com/gin-gonic/gin"
)

// RateLimiter throttles requests per client IP over a fixed window. It is
// applied to the auth endpoints to slow down credential guessing.
type RateLimiter struct {
	mu       sync.Mutex
	requests map[string][]time.Time
	limit    int
	window   time.Duration
	stop     chan struct{}
}

// NewRateLimiter creates a rate limiter from the application config and
// starts its background cleanup loop.
func NewRateLimiter(cfg *config.Config) *RateLimiter {
	rl := &RateLimiter{
		requests: make(map[string][]time.Time),
		limit:    cfg.RateLimitRequests,
		window:   time.Duration(cfg.RateLimitWindowSec) * time.Second,
		stop:     make(chan struct{}),
	}

	go rl.cleanupLoop(time.Duration(cfg.RateLimitCleanupSec) * time.Second)

	return rl
}

// Middleware returns the gin handler enforcing the limit
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "too many requests, try again later",
			})
			return
		}
		c.Next()
	}
}

// Stop terminates the cleanup loop
func (rl *RateLimiter) Stop() {
	close(rl.stop)
}

func (rl *RateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := time.Now().Add(-rl.window)
	recent := rl.requests[key][:0]
	for _, t := range rl.requests[key] {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}

	if len(recent) >= rl.limit {
		rl.requests[key] = recent
		return false
	}

	rl.requests[key] = append(recent, time.Now())
	return true
}

// cleanupLoop drops idle client entries so the map does not grow unbounded
func (rl *RateLimiter) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-rl.window)
			rl.mu.Lock()
			for key, times := range rl.requests {
				active := false
				for _, t := range times {
					if t.After(cutoff) {
						active = true
						break
					}
				}
				if !active {
					delete(rl.requests, key)
				}
			}
			rl.mu.Unlock()
		}
	}
}
