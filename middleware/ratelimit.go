package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// staleAfter is how long an idle client's bucket is kept before pruning.
const staleAfter = 10 * time.Minute

// bucket is one client's token state.
type bucket struct {
	tokens     float64
	lastRefill time.Time
}

// RateLimiter applies a per-client-IP token bucket: burst capacity up front,
// refilled continuously at rate tokens per second.
type RateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	rate    float64
	burst   float64
}

func NewRateLimiter(rate, burst float64) *RateLimiter {
	return &RateLimiter{
		buckets: make(map[string]*bucket),
		rate:    rate,
		burst:   burst,
	}
}

// allow refills the client's bucket for the elapsed time and tries to take
// one token. Caller holds the mutex.
func (rl *RateLimiter) allow(ip string, now time.Time) bool {
	b, ok := rl.buckets[ip]
	if !ok {
		b = &bucket{tokens: rl.burst, lastRefill: now}
		rl.buckets[ip] = b
	}

	b.tokens += now.Sub(b.lastRefill).Seconds() * rl.rate
	if b.tokens > rl.burst {
		b.tokens = rl.burst
	}
	b.lastRefill = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

// prune drops buckets idle long enough to be full again anyway. Caller holds
// the mutex.
func (rl *RateLimiter) prune(now time.Time) {
	for ip, b := range rl.buckets {
		if now.Sub(b.lastRefill) > staleAfter {
			delete(rl.buckets, ip)
		}
	}
}

func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		now := time.Now()

		rl.mu.Lock()
		if len(rl.buckets) > 1024 {
			rl.prune(now)
		}
		ok := rl.allow(c.ClientIP(), now)
		rl.mu.Unlock()

		if !ok {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error":   "Rate limit exceeded. Please try again later.",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
