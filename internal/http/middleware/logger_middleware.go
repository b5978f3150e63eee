package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/flipside/internal/infrastructure/logger"
)

// LoggerMiddleware creates a middleware that logs HTTP requests in structured format
func LoggerMiddleware(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		latency := time.Since(start)

		dataLength := c.Writer.Size()
		if dataLength < 0 {
			dataLength = 0
		}

		log.WithRequest(
			c.Request.Context(),
			c.Request.Method,
			c.Request.URL.Path,
			c.ClientIP(),
			c.Writer.Status(),
			latency.String(),
			dataLength,
		).Info("HTTP Request Processed")
	}
}
