package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fulfillment_service/internal/infrastructure/logger"
)

const RequestIDHeader = "X-Request-Id"

func RequestID(logg *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader(RequestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}

		c.Header(RequestIDHeader, reqID)

		ctx := context.WithValue(c.Request.Context(), ctxRequestID, reqID)
		if logg != nil {
			ctx = logg.WithRequestID(ctx, reqID)
		}
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
