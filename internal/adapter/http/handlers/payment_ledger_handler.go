package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "fulfillment_service/internal/adapter/http/dto/request"
	response "fulfillment_service/internal/adapter/http/dto/response"
	"fulfillment_service/internal/domain/entities"
	"fulfillment_service/internal/infrastructure/logger"
	"fulfillment_service/internal/usecase"
	"fulfillment_service/pkg"
)

// PaymentLedgerHandler records payments against orders.
type PaymentLedgerHandler struct {
	usecase usecase.IPaymentLedgerUseCase
	log     *logger.Logger
}

func NewPaymentLedgerHandler(uc usecase.IPaymentLedgerUseCase, log *logger.Logger) *PaymentLedgerHandler {
	return &PaymentLedgerHandler{usecase: uc, log: log}
}

// RecordPayment godoc
// @Summary      Set the payment status and optionally append a payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id       path      string                        true  "Order ID"
// @Param        payload  body      request.RecordPaymentRequest  true  "Payment"
// @Success      200      {object}  response.PaymentRecordResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /orders/{id}/payment [patch]
func (h *PaymentLedgerHandler) RecordPayment(c *gin.Context) {
	var payload request.RecordPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	rec, err := h.usecase.RecordPayment(c.Request.Context(), payload.ToInput(c.Param("id")))
	if err != nil {
		h.log.Warn(c.Request.Context(), "[ledger][handler] record payment failed: "+err.Error())
		writeError(c, mapLedgerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentRecord(rec))
}

// Totalize godoc
// @Summary      Force an order to paid
// @Tags         payments
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  response.OrderResponse
// @Failure      403  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /orders/{id}/payment/totalize [put]
func (h *PaymentLedgerHandler) Totalize(c *gin.Context) {
	order, err := h.usecase.Totalize(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapLedgerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// History godoc
// @Summary      Payment history of an order
// @Tags         payments
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {array}   response.PaymentEventResponse
// @Security     Bearer
// @Router       /orders/{id}/payment/history [get]
func (h *PaymentLedgerHandler) History(c *gin.Context) {
	events, err := h.usecase.History(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapLedgerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentEvents(events))
}

// Audit godoc
// @Summary      Compare the settled total with the ledger sum
// @Tags         payments
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  response.PaymentAuditResponse
// @Security     Bearer
// @Router       /orders/{id}/payment/audit [get]
func (h *PaymentLedgerHandler) Audit(c *gin.Context) {
	audit, err := h.usecase.Audit(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapLedgerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentAudit(audit))
}

func mapLedgerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAmount):
		return coded("INVALID_AMOUNT", http.StatusBadRequest, err)
	case errors.Is(err, entities.ErrInvalidPaymentStatus):
		return coded("INVALID_PAYMENT_STATUS", http.StatusBadRequest, err)
	case errors.Is(err, usecase.ErrPaymentMethodNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_METHOD_NOT_FOUND", "Payment method not found", http.StatusNotFound).WithKind("NOT_FOUND")
	default:
		return mapOrderError(err)
	}
}
