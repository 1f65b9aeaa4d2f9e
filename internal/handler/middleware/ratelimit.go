package middleware

import (
	"net/http"
	"sync"
	"time"

	"fervo/internal/handler/httperr"
	"fervo/internal/pkg/config"
	"fervo/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

var errRateLimited = errs.New("rate limit exceeded")

const defaultLimiterIdleTTL = 10 * time.Minute

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per caller. Callers are keyed by user id
// when authenticated and by client IP otherwise.
type RateLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*limiterEntry
	limit     rate.Limit
	burst     int
	enabled   bool
	idleTTL   time.Duration
	now       func() time.Time
	lastSweep time.Time
}

func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	idleTTL := cfg.IdleTTL
	if idleTTL <= 0 {
		idleTTL = defaultLimiterIdleTTL
	}
	return &RateLimiter{
		limiters: make(map[string]*limiterEntry),
		limit:    rate.Limit(cfg.RPS),
		burst:    cfg.Burst,
		enabled:  cfg.Enabled,
		idleTTL:  idleTTL,
		now:      time.Now,
	}
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.enabled {
			c.Next()
			return
		}

		key := c.ClientIP()
		if id, ok := GetUserID(c); ok {
			key = id.String()
		}

		if !rl.allow(key) {
			c.Header("Retry-After", "1")
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, "Too many requests", nil)
			return
		}
		c.Next()
	}
}

func (rl *RateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if now.Sub(rl.lastSweep) > rl.idleTTL {
		for k, e := range rl.limiters {
			if now.Sub(e.lastSeen) > rl.idleTTL {
				delete(rl.limiters, k)
			}
		}
		rl.lastSweep = now
	}

	e, ok := rl.limiters[key]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.limiters[key] = e
	}
	e.lastSeen = now
	return e.limiter.AllowN(now, 1)
}
