package http

import (
	"sync"
	"time"

	"resume-builder/internal/logger"
	"resume-builder/pkg/metrics"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

// RequestLogger attaches the global logger to each request context and logs
// one line per request.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		c.SetUserContext(logger.WithContext(c.UserContext()))
		err := c.Next()
		logger.Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("latency", time.Since(start)).
			Msg("http request")
		return err
	}
}

// limiterIdle is how long an unused bucket is kept.
const limiterIdle = 10 * time.Minute

type bucket struct {
	lim  *rate.Limiter
	seen time.Time
}

// ipLimiter holds one token bucket per remote IP and drops buckets idle for
// longer than idle, sweeping at most once per idle period.
type ipLimiter struct {
	rps   rate.Limit
	burst int
	idle  time.Duration
	now   func() time.Time

	mu        sync.Mutex
	buckets   map[string]*bucket
	lastSweep time.Time
}

func newIPLimiter(rps float64, burst int) *ipLimiter {
	if burst < 1 {
		burst = 1
	}
	return &ipLimiter{
		rps:     rate.Limit(rps),
		burst:   burst,
		idle:    limiterIdle,
		now:     time.Now,
		buckets: map[string]*bucket{},
	}
}

func (l *ipLimiter) allow(ip string) bool {
	now := l.now()
	l.mu.Lock()
	defer l.mu.Unlock()
	if now.Sub(l.lastSweep) >= l.idle {
		for k, b := range l.buckets {
			if now.Sub(b.seen) >= l.idle {
				delete(l.buckets, k)
			}
		}
		l.lastSweep = now
	}
	b, ok := l.buckets[ip]
	if !ok {
		b = &bucket{lim: rate.NewLimiter(l.rps, l.burst)}
		l.buckets[ip] = b
	}
	b.seen = now
	return b.lim.AllowN(now, 1)
}

func (l *ipLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

// RateLimit applies a token bucket per remote IP. Caller-supplied headers
// such as X-Client-ID do not select the bucket. rps <= 0 disables it.
func RateLimit(route string, rps float64, burst int) fiber.Handler {
	if rps <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	return rateLimit(route, newIPLimiter(rps, burst))
}

func rateLimit(route string, l *ipLimiter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !l.allow(c.IP()) {
			metrics.RateLimited.WithLabelValues(route).Inc()
			c.Set(fiber.HeaderRetryAfter, "1")
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "Too many requests. Please try again shortly."})
		}
		return c.Next()
	}
}
