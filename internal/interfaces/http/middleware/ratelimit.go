package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"centro/internal/infrastructure/ratelimit"
	"centro/internal/shared/logger"
	"centro/internal/shared/utils"
)

// RateLimitMiddleware throttles auth-sensitive routes per client IP using
// the shared redis limiter, so the limit holds across instances.
type RateLimitMiddleware struct {
	limiter ratelimit.RateLimiter
	config  ratelimit.RateLimitConfig
	logger  logger.Interface
}

func NewRateLimitMiddleware(
	limiter ratelimit.RateLimiter,
	config ratelimit.RateLimitConfig,
	logger logger.Interface,
) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
		config:  config,
		logger:  logger,
	}
}

func (m *RateLimitMiddleware) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("ip:%s", c.ClientIP())

		allowed, err := m.limiter.Allow(key, m.config)
		if err != nil {
			// A broken limiter must not take the API down with it.
			m.logger.Warnw("rate limiter unavailable", "error", err)
			c.Next()
			return
		}

		if !allowed {
			m.logger.Warnw("rate limit exceeded", "client_ip", c.ClientIP(), "path", c.Request.URL.Path)
			utils.ErrorResponse(c, http.StatusTooManyRequests, "too many requests, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
