package middleware

import (
	"time"

	"mascot-chat/pkg/logger"

	"github.com/gin-gonic/gin"
)

// LoggingMiddleware emits one line per request: correlation token, method,
// path, status and latency. Health probes are excluded; bodies are never
// logged.
func LoggingMiddleware(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		if path == "/health" || l == nil {
			return
		}

		latency := time.Since(start)
		status := c.Writer.Status()
		l.WithContext(c.Request.Context()).Sugar().Infof("%s %s %d %s", method, path, status, latency.String())
	}
}
