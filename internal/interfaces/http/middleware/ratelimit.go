package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campus/internal/infrastructure/ratelimit"
	"campus/internal/shared/logger"
	"campus/internal/shared/utils"
)

// RateLimit throttles requests per client IP and route. When the limiter
// fails the request is let through.
func RateLimit(limiter ratelimit.RateLimiter, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.FullPath() + ":" + c.ClientIP()
		allowed, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			log.Warnw("rate limiter unavailable", "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
