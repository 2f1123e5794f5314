package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gradchat/gradchat/internal/pkg/logger"
	"github.com/gradchat/gradchat/internal/pkg/metrics"
)

// RequestLogger logs each handled request with its outcome and duration
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("clientIP", c.ClientIP()).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("Request handled")
	}
}

// RequestMetrics counts handled requests by method and status
func RequestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		metrics.HTTPRequestsTotal.
			WithLabelValues(c.Request.Method, strconv.Itoa(c.Writer.Status())).
			Inc()
	}
}
