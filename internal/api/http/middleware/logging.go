package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/archeolens/archeolens-server/internal/logger"
)

// Logging logs HTTP requests and their results.
type Logging struct {
	logger *logger.Logger
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

// Handle logs method, path, duration and status for each request.
func (l *Logging) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestLogger := l.logger.With(
			"method", c.Request.Method,
			"path", c.FullPath())

		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()

		requestLogger.Info("HTTP request completed",
			"duration_ms", duration.Milliseconds(),
			"status", status)

		if len(c.Errors) > 0 {
			requestLogger.Error("HTTP request failed",
				"error", c.Errors.String(),
				"status", status)
		}
	}
}
