package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiter keeps one token bucket per key. Idle buckets are evicted after maxAge.
type RateLimiter struct {
	limit  rate.Limit
	burst  int
	maxAge time.Duration

	mu    sync.Mutex
	store map[string]*limiterEntry
}

type limiterEntry struct {
	limiter *rate.Limiter
	updated time.Time
}

func NewRateLimiter(reqPerSec float64, burst int) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		limit:  rate.Limit(reqPerSec),
		burst:  burst,
		maxAge: 10 * time.Minute,
		store:  make(map[string]*limiterEntry),
	}
}

// Allow reports whether one more request for key fits the bucket
func (r *RateLimiter) Allow(key string) bool {
	return r.get(key).Allow()
}

func (r *RateLimiter) get(key string) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if entry, ok := r.store[key]; ok {
		entry.updated = now
		return entry.limiter
	}

	for k, entry := range r.store {
		if now.Sub(entry.updated) > r.maxAge {
			delete(r.store, k)
		}
	}

	lim := rate.NewLimiter(r.limit, r.burst)
	r.store[key] = &limiterEntry{limiter: lim, updated: now}
	return lim
}

// IPRateLimit rejects clients above the limit with 429
func IPRateLimit(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error":   "Muitas tentativas. Aguarde alguns segundos e tente novamente.",
			})
			return
		}
		c.Next()
	}
}
