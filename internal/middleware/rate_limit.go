package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"hiring-orchestrator/pkg/response"
)

// RateLimit rejects requests from a client that exceeded its per-minute budget.
// Clients are keyed by gin's ClientIP.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if !m.allow(key) {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: rate limit exceeded for %s", key)
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

func (m Middleware) allow(key string) bool {
	limiter, ok := m.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(m.rate, m.burst)
		m.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}
