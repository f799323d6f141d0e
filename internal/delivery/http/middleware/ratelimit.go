package middleware

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"github.com/eco-travel-service/internal/pkg/errors"
	"github.com/eco-travel-service/internal/pkg/monitoring"
	"github.com/eco-travel-service/internal/pkg/utils"
)

const (
	maxVisitors = 10000
	visitorTTL  = 3 * time.Minute
)

// RateLimiter - token bucket на каждый IP. A bucket lives visitorTTL from its
// creation; past maxVisitors the least recently used one is evicted.
type RateLimiter struct {
	mu       sync.Mutex // Get+Add должны быть одной операцией
	visitors *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func NewRateLimiter(rps float64, burst int) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		visitors: expirable.NewLRU[string, *rate.Limiter](maxVisitors, nil, visitorTTL),
		rate:     rate.Limit(rps),
		burst:    burst,
	}
}

func (rl *RateLimiter) limiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if l, ok := rl.visitors.Get(key); ok {
		return l
	}
	l := rate.NewLimiter(rl.rate, rl.burst)
	rl.visitors.Add(key, l)
	return l
}

// Allow reports whether a request from key fits in its bucket.
func (rl *RateLimiter) Allow(key string) bool {
	return rl.limiter(key).Allow()
}

func (rl *RateLimiter) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if rl.Allow(c.IP()) {
			return c.Next()
		}

		monitoring.RecordRateLimitExceeded(c.Path())
		c.Set(fiber.HeaderRetryAfter, "1")
		return utils.SendError(c, errors.ErrRateLimited)
	}
}
