package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"fulfillment_service/internal/infrastructure/logger"
)

// Logging writes one event when a request starts and one when it completes.
func Logging(logg *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if logg == nil {
			c.Next()
			return
		}

		ctx := logg.WithFields(c.Request.Context(), map[string]any{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		})
		c.Request = c.Request.WithContext(ctx)

		start := time.Now()
		logg.Info(ctx, "request.start")

		c.Next()

		// Auth may have enriched the request context with caller fields.
		ctx = logg.WithFields(c.Request.Context(), map[string]any{
			"status":      c.Writer.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
		})
		if len(c.Errors) > 0 {
			logg.Warn(logg.WithField(ctx, "errors", c.Errors.String()), "request.complete")
			return
		}
		logg.Info(ctx, "request.complete")
	}
}
