package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"hypnoraffle/config"
	"hypnoraffle/metrics"
	"hypnoraffle/utils/response"

	"github.com/gin-gonic/gin"
)

type RateLimiter struct {
	name     string
	visitors map[string]*Visitor
	mu       sync.Mutex
	rate     int           // Tokens added per interval
	burst    int           // Burst capacity
	interval time.Duration // Refill interval
	now      func() time.Time
}

type Visitor struct {
	tokens      int
	lastUpdated time.Time
}

func NewRateLimiter(name string, cfg config.RateLimitConfig) *RateLimiter {
	interval := cfg.Interval
	if interval <= 0 {
		interval = time.Minute
	}
	return &RateLimiter{
		name:     name,
		visitors: make(map[string]*Visitor),
		rate:     cfg.Rate,
		burst:    cfg.Burst,
		interval: interval,
		now:      time.Now,
	}
}

// Allow takes one token from the visitor's bucket, refilling it first
func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	visitor, exists := rl.visitors[ip]
	if !exists {
		visitor = &Visitor{tokens: rl.burst, lastUpdated: now}
		rl.visitors[ip] = visitor
	}

	elapsed := now.Sub(visitor.lastUpdated)
	refill := int(elapsed / rl.interval)
	if refill > 0 {
		visitor.tokens += refill * rl.rate
		if visitor.tokens > rl.burst {
			visitor.tokens = rl.burst
		}
		visitor.lastUpdated = now
	}

	if visitor.tokens > 0 {
		visitor.tokens--
		return true
	}
	return false
}

// Cleanup forgets visitors idle for longer than maxIdle
func (rl *RateLimiter) Cleanup(maxIdle time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for ip, visitor := range rl.visitors {
		if now.Sub(visitor.lastUpdated) > maxIdle {
			delete(rl.visitors, ip)
		}
	}
}

// idleWindow is how long a visitor takes to refill a full bucket; past it the entry is
// indistinguishable from a new visitor
func (rl *RateLimiter) idleWindow() time.Duration {
	if rl.rate <= 0 {
		return rl.interval
	}
	intervals := (rl.burst + rl.rate - 1) / rl.rate
	if intervals < 1 {
		intervals = 1
	}
	return time.Duration(intervals) * rl.interval
}

// StartCleanup prunes idle visitors every period until ctx is done
func (rl *RateLimiter) StartCleanup(ctx context.Context, period time.Duration) {
	go func() {
		ticker := time.NewTicker(period)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				rl.Cleanup(rl.idleWindow())
			}
		}
	}()
}

func (rl *RateLimiter) visitorCount() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.visitors)
}

func RateLimiterMiddleware(rl *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(c.ClientIP()) {
			metrics.RateLimiterRejections.WithLabelValues(rl.name).Inc()

			response.Abort(c, http.StatusTooManyRequests, "Too many requests. Please try again later.")
			return
		}
		c.Next()
	}
}
