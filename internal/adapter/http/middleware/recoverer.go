package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"fulfillment_service/internal/infrastructure/logger"
	"fulfillment_service/pkg"
)

func Recoverer(logg *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				err := fmt.Errorf("panic: %v", rec)
				if logg != nil {
					ctx := logg.WithFields(c.Request.Context(), map[string]any{"panic": fmt.Sprint(rec)})
					logg.Error(ctx, "panic.recovered", err)
				}
				abort(c, pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError).WithKind("INTERNAL"))
			}
		}()
		c.Next()
	}
}

func abort(c *gin.Context, appErr *pkg.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
