package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "fulfillment_service/internal/adapter/http/dto/request"
	response "fulfillment_service/internal/adapter/http/dto/response"
	"fulfillment_service/internal/usecase"
)

// ReportHandler serves the read-only commission and revenue reports.
type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

// CompletedWork godoc
// @Summary      Completed work grouped by employee
// @Tags         reports
// @Produce      json
// @Param        employee_id  query     string  false  "Employee ID"
// @Param        from         query     string  false  "YYYY-MM-DD"
// @Param        to           query     string  false  "YYYY-MM-DD"
// @Success      200          {array}   response.EmployeeWorkResponse
// @Security     Bearer
// @Router       /reports/commissions/completed [get]
func (h *ReportHandler) CompletedWork(c *gin.Context) {
	query, ok := bindReportQuery(c)
	if !ok {
		return
	}
	r, err := query.DateRange()
	if err != nil {
		writeError(c, mapKindError(err))
		return
	}
	groups, err := h.usecase.CompletedWork(c.Request.Context(), query.EmployeeID, r)
	if err != nil {
		writeError(c, mapKindError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEmployeeWork(groups))
}

// PendingWork godoc
// @Summary      Pending assignments of an employee
// @Tags         reports
// @Produce      json
// @Param        employee_id  query     string  true  "Employee ID"
// @Success      200          {array}   response.WorkEntryResponse
// @Security     Bearer
// @Router       /reports/commissions/pending [get]
func (h *ReportHandler) PendingWork(c *gin.Context) {
	query, ok := bindReportQuery(c)
	if !ok {
		return
	}
	entries, err := h.usecase.PendingWork(c.Request.Context(), query.EmployeeID)
	if err != nil {
		writeError(c, mapKindError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWorkEntries(entries))
}

// InProgressWork godoc
// @Summary      In-progress assignments of an employee with item detail
// @Tags         reports
// @Produce      json
// @Param        employee_id  query     string  true  "Employee ID"
// @Success      200          {array}   response.WorkEntryResponse
// @Security     Bearer
// @Router       /reports/commissions/in-progress [get]
func (h *ReportHandler) InProgressWork(c *gin.Context) {
	query, ok := bindReportQuery(c)
	if !ok {
		return
	}
	entries, err := h.usecase.InProgressWork(c.Request.Context(), query.EmployeeID)
	if err != nil {
		writeError(c, mapKindError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWorkEntries(entries))
}

// DailyRevenue godoc
// @Summary      Payments received, with totals per method
// @Tags         reports
// @Produce      json
// @Param        from  query     string  false  "YYYY-MM-DD"
// @Param        to    query     string  false  "YYYY-MM-DD"
// @Success      200   {object}  response.DailyRevenueResponse
// @Security     Bearer
// @Router       /reports/revenue/daily [get]
func (h *ReportHandler) DailyRevenue(c *gin.Context) {
	query, ok := bindReportQuery(c)
	if !ok {
		return
	}
	r, err := query.DateRange()
	if err != nil {
		writeError(c, mapKindError(err))
		return
	}
	report, err := h.usecase.DailyRevenue(c.Request.Context(), r)
	if err != nil {
		writeError(c, mapKindError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDailyRevenue(report))
}

// PaymentsSummary godoc
// @Summary      Payment status and outstanding amount per order
// @Tags         reports
// @Produce      json
// @Param        from  query     string  false  "YYYY-MM-DD"
// @Param        to    query     string  false  "YYYY-MM-DD"
// @Success      200   {array}   response.PaymentSummaryResponse
// @Security     Bearer
// @Router       /reports/payments [get]
func (h *ReportHandler) PaymentsSummary(c *gin.Context) {
	query, ok := bindReportQuery(c)
	if !ok {
		return
	}
	r, err := query.DateRange()
	if err != nil {
		writeError(c, mapKindError(err))
		return
	}
	rows, err := h.usecase.PaymentsSummary(c.Request.Context(), r)
	if err != nil {
		writeError(c, mapKindError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentsSummary(rows))
}

func bindReportQuery(c *gin.Context) (request.ReportQuery, bool) {
	var query request.ReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		writeError(c, errInvalidPayload)
		return query, false
	}
	return query, true
}
