package handlers

import (
	"os"
	"testing"

	"github.com/gin-gonic/gin"

	request "fulfillment_service/internal/adapter/http/dto/request"
	"fulfillment_service/internal/adapter/http/middleware"
	"fulfillment_service/internal/infrastructure/auth"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := request.RegisterValidators(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

const testOrderID = "5f0c7c2e-8d36-4a8e-9a3c-1b0f3f5f6a01"

// asPrincipal stands in for middleware.Auth in handler tests.
func asPrincipal(p auth.Principal) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(middleware.WithPrincipal(c.Request.Context(), p))
		c.Next()
	}
}
