package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"centro/internal/shared/constants"
	"centro/internal/shared/logger"
)

func Logger(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)

		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", latency,
			"client_ip", c.ClientIP(),
		}

		if requestID := c.GetHeader(constants.HeaderXRequestID); requestID != "" {
			args = append(args, "request_id", requestID)
		}

		if userSID := c.GetString(constants.ContextKeyUserID); userSID != "" {
			args = append(args, "user_sid", userSID)
		}

		if _, impersonating := c.Get(constants.ContextKeyActingAs); impersonating {
			args = append(args, "impersonating", true)
		}

		status := c.Writer.Status()
		switch {
		case status >= 500:
			log.Errorw("HTTP request completed", args...)
		case status >= 400:
			log.Warnw("HTTP request completed", args...)
		default:
			log.Debugw("HTTP request completed", args...)
		}
	}
}
