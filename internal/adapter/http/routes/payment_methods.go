package routes

import (
	"github.com/gin-gonic/gin"

	"fulfillment_service/internal/adapter/http/handlers"
	"fulfillment_service/internal/adapter/http/middleware"
	"fulfillment_service/internal/infrastructure/auth"
)

const (
	PathPaymentMethods = "/payment-methods"
)

func addPaymentMethodRoutes(rg *gin.RouterGroup, h *handlers.PaymentMethodHandler) {
	methods := rg.Group(PathPaymentMethods, middleware.RequireRole(auth.RoleAdmin))
	{
		methods.POST("", h.Create)
		methods.GET("", h.List)
		methods.GET("/:id", h.Get)
		methods.PUT("/:id", h.Update)
		methods.DELETE("/:id", h.Delete)
		methods.POST("/:id/load", h.Load)
		methods.POST("/:id/transfer", h.Transfer)
		methods.GET("/:id/transactions", h.Transactions)
	}
}
