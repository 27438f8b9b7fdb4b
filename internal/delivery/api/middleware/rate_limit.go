package middleware

import (
	"sync"
	"time"

	"curator/config"
	"curator/internal/delivery/api/response"
	domainerrors "curator/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	defaultRequestsPerMinute = 10
	defaultBurst             = 5
	defaultIdleTTL           = 5 * time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimitMiddleware limits requests per client IP with a token bucket per visitor.
type RateLimitMiddleware struct {
	enabled bool
	limit   rate.Limit
	burst   int
	idleTTL time.Duration
	now     func() time.Time

	mu        sync.Mutex
	visitors  map[string]*visitor
	lastSweep time.Time
}

// NewRateLimitMiddleware builds the limiter from the rateLimit config section.
func NewRateLimitMiddleware(cfg *config.Config) *RateLimitMiddleware {
	enabled, rpm, burst, idleTTL := false, defaultRequestsPerMinute, defaultBurst, defaultIdleTTL
	if rl := cfg.RateLimit; rl != nil {
		enabled = rl.Enabled
		if rl.RequestsPerMinute > 0 {
			rpm = rl.RequestsPerMinute
		}
		if rl.Burst > 0 {
			burst = rl.Burst
		}
		if rl.IdleTTL > 0 {
			idleTTL = rl.IdleTTL
		}
	}

	return &RateLimitMiddleware{
		enabled:  enabled,
		limit:    rate.Every(time.Minute / time.Duration(rpm)),
		burst:    burst,
		idleTTL:  idleTTL,
		now:      time.Now,
		visitors: make(map[string]*visitor),
	}
}

// Limit rejects a client with 429 once its bucket is empty.
func (m *RateLimitMiddleware) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.enabled {
			return next(c)
		}

		if !m.allow(c.RealIP()) {
			c.Response().Header().Set("Retry-After", "60")

			return response.HandleAppError(c, domainerrors.ErrTooManyRequests)
		}

		return next(c)
	}
}

func (m *RateLimitMiddleware) allow(ip string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	m.sweep(now)

	v, ok := m.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(m.limit, m.burst)}
		m.visitors[ip] = v
	}
	v.lastSeen = now

	return v.limiter.AllowN(now, 1)
}

// sweep forgets visitors idle for longer than idleTTL. Callers hold mu.
func (m *RateLimitMiddleware) sweep(now time.Time) {
	if now.Sub(m.lastSweep) < m.idleTTL {
		return
	}
	m.lastSweep = now

	for ip, v := range m.visitors {
		if now.Sub(v.lastSeen) > m.idleTTL {
			delete(m.visitors, ip)
		}
	}
}
