package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/predictor/internal/infrastructure/logger"
)

// LoggerMiddleware creates a middleware that logs HTTP requests in structured format
func LoggerMiddleware(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := log.WithRequest(
			c.Request.Context(),
			c.Request.Method,
			c.Request.URL.Path,
			c.ClientIP(),
			c.Writer.Status(),
			time.Since(start).String(),
			c.Writer.Size(),
		)

		switch status := c.Writer.Status(); {
		case status >= 500:
			entry.Error("HTTP Request Processed")
		case status >= 400:
			entry.Warn("HTTP Request Processed")
		default:
			entry.Info("HTTP Request Processed")
		}
	}
}
