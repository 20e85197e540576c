package routes

import (
	"github.com/gin-gonic/gin"

	"fulfillment_service/internal/adapter/http/handlers"
	"fulfillment_service/internal/adapter/http/middleware"
	"fulfillment_service/internal/infrastructure/auth"
)

const (
	PathReports = "/reports"
)

func addReportRoutes(rg *gin.RouterGroup, h *handlers.ReportHandler) {
	reports := rg.Group(PathReports, middleware.RequireRole(auth.RoleAdmin))
	{
		reports.GET("/commissions/completed", h.CompletedWork)
		reports.GET("/commissions/pending", h.PendingWork)
		reports.GET("/commissions/in-progress", h.InProgressWork)
		reports.GET("/revenue/daily", h.DailyRevenue)
		reports.GET("/payments", h.PaymentsSummary)
	}
}
