package middleware

import (
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"campus/internal/shared/config"
)

// CORS answers cross-origin requests from server.allowed_origins. A "*"
// entry echoes any origin. Unlisted origins get an empty allow header.
func CORS(cfg config.ServerConfig) gin.HandlerFunc {
	headers := strings.Join(cfg.AllowedHeaders, ", ")
	methods := strings.Join(cfg.AllowedMethods, ", ")
	exposed := strings.Join(cfg.ExposedHeaders, ", ")
	maxAge := strconv.Itoa(cfg.CORSMaxAge)

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		c.Header("Access-Control-Allow-Origin", allowedOrigin(origin, cfg.AllowedOrigins))
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Vary", "Origin")
		if headers != "" {
			c.Header("Access-Control-Allow-Headers", headers)
		}
		if methods != "" {
			c.Header("Access-Control-Allow-Methods", methods)
		}
		if exposed != "" {
			c.Header("Access-Control-Expose-Headers", exposed)
		}
		if cfg.CORSMaxAge > 0 {
			c.Header("Access-Control-Max-Age", maxAge)
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func allowedOrigin(origin string, allowed []string) string {
	if origin == "" {
		return ""
	}
	if slices.Contains(allowed, origin) || slices.Contains(allowed, "*") {
		return origin
	}
	return ""
}

// SecurityHeaders sets the static response hardening headers.
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Header("Content-Security-Policy", "default-src 'self'")
		c.Next()
	}
}
