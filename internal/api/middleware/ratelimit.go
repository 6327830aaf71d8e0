package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/donaldgifford/watch-price-tracker/internal/metrics"
)

// idleClientTTL is how long an unused per-client bucket is kept.
const idleClientTTL = 10 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter hands out a token bucket per client IP.
type RateLimiter struct {
	perSecond rate.Limit
	burst     int
	nowFunc   func() time.Time

	mu      sync.Mutex
	clients map[string]*clientLimiter
}

// RateLimiterOption configures the RateLimiter.
type RateLimiterOption func(*RateLimiter)

// WithRateLimiterNowFunc overrides the time function for testing.
func WithRateLimiterNowFunc(f func() time.Time) RateLimiterOption {
	return func(r *RateLimiter) {
		r.nowFunc = f
	}
}

// NewRateLimiter creates a limiter allowing perSecond requests per client
// with the given burst.
func NewRateLimiter(perSecond float64, burst int, opts ...RateLimiterOption) *RateLimiter {
	r := &RateLimiter{
		perSecond: rate.Limit(perSecond),
		burst:     burst,
		nowFunc:   time.Now,
		clients:   make(map[string]*clientLimiter),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Allow reports whether a request from client may proceed now.
func (r *RateLimiter) Allow(client string) bool {
	now := r.nowFunc()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.evictIdle(now)

	cl, ok := r.clients[client]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(r.perSecond, r.burst)}
		r.clients[client] = cl
	}
	cl.lastSeen = now
	return cl.limiter.AllowN(now, 1)
}

// Clients returns the number of tracked clients.
func (r *RateLimiter) Clients() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.clients)
}

func (r *RateLimiter) evictIdle(now time.Time) {
	for k, cl := range r.clients {
		if now.Sub(cl.lastSeen) > idleClientTTL {
			delete(r.clients, k)
		}
	}
}

// RateLimit returns Echo middleware that rejects requests over the limit
// with 429 Too Many Requests. Only requests accepted by match are limited;
// a nil match limits every request.
func RateLimit(rl *RateLimiter, match func(echo.Context) bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if match != nil && !match(c) {
				return next(c)
			}

			if !rl.Allow(c.RealIP()) {
				metrics.HTTPRateLimitedTotal.WithLabelValues(c.Path()).Inc()
				c.Response().Header().Set("Retry-After", "1")
				return c.JSON(http.StatusTooManyRequests, map[string]string{
					"error": "rate limit exceeded",
				})
			}
			return next(c)
		}
	}
}

// MethodAndPath matches requests with the given method and route template.
func MethodAndPath(method, path string) func(echo.Context) bool {
	return func(c echo.Context) bool {
		return c.Request().Method == method && c.Path() == path
	}
}
