package routes

import (
	"github.com/gin-gonic/gin"

	"fulfillment_service/internal/adapter/http/handlers"
	"fulfillment_service/internal/adapter/http/middleware"
	"fulfillment_service/internal/infrastructure/auth"
)

const (
	PathOrders = "/orders"
)

func addOrderRoutes(
	rg *gin.RouterGroup,
	orderHandler *handlers.OrderHandler,
	trackerHandler *handlers.StageTrackerHandler,
	ledgerHandler *handlers.PaymentLedgerHandler,
) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:id", orderHandler.GetOrder)

		orders.PATCH("/:id/payment", ledgerHandler.RecordPayment)
		orders.GET("/:id/payment/history", ledgerHandler.History)
		orders.GET("/:id/payment/audit", ledgerHandler.Audit)
		orders.PUT("/:id/payment/totalize", middleware.RequirePermission(auth.PermissionTotalize), ledgerHandler.Totalize)
	}

	tracking := orders.Group("", middleware.RequireRole(auth.RoleAdmin))
	{
		tracking.PUT("/:id/status", trackerHandler.SetOverallStatus)
		tracking.PUT("/:id/stages/:ordinal", trackerHandler.AdvanceStage)
		tracking.PUT("/:id/stages/:ordinal/finalize", trackerHandler.FinalizeStage)
		tracking.PUT("/:id/stages/:ordinal/assignments", trackerHandler.UpdateAssignment)
	}
}
