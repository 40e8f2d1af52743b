package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"quickblog/logger"
)

// RequestLogging logs method, path, status, and elapsed time per request.
func RequestLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		durationMillis := time.Since(start).Milliseconds()

		logger.Log.Infof(
			"api_request method=%s path=%s status=%d duration_ms=%d request_id=%s",
			method,
			path,
			status,
			durationMillis,
			RequestIDFromContext(c.Request.Context()),
		)
	}
}
