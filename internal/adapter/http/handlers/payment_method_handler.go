package handlers

import (
	"context"
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

// PaymentMethodHandler manages the payment method catalog.
type PaymentMethodHandler struct {
	usecase usecase.IPaymentMethodUseCase
	log     *logger.Logger
}

func NewPaymentMethodHandler(uc usecase.IPaymentMethodUseCase, log *logger.Logger) *PaymentMethodHandler {
	return &PaymentMethodHandler{usecase: uc, log: log}
}

// Create godoc
// @Summary      Create a payment method
// @Tags         payment-methods
// @Accept       json
// @Produce      json
// @Param        payload  body      request.PaymentMethodRequest  true  "Payment method"
// @Success      201      {object}  response.PaymentMethodResponse
// @Failure      409      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /payment-methods [post]
func (h *PaymentMethodHandler) Create(c *gin.Context) {
	var payload request.PaymentMethodRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	m, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, mapPaymentMethodError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromPaymentMethod(m))
}

// List godoc
// @Summary      List payment methods
// @Tags         payment-methods
// @Produce      json
// @Success      200  {array}  response.PaymentMethodResponse
// @Security     Bearer
// @Router       /payment-methods [get]
func (h *PaymentMethodHandler) List(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapPaymentMethodError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentMethods(list))
}

// Get godoc
// @Summary      Get a payment method
// @Tags         payment-methods
// @Produce      json
// @Param        id   path      string  true  "Payment method ID"
// @Success      200  {object}  response.PaymentMethodResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /payment-methods/{id} [get]
func (h *PaymentMethodHandler) Get(c *gin.Context) {
	m, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapPaymentMethodError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentMethod(m))
}

// Update godoc
// @Summary      Update a payment method
// @Tags         payment-methods
// @Accept       json
// @Produce      json
// @Param        id       path      string                        true  "Payment method ID"
// @Param        payload  body      request.PaymentMethodRequest  true  "Payment method"
// @Success      200      {object}  response.PaymentMethodResponse
// @Security     Bearer
// @Router       /payment-methods/{id} [put]
func (h *PaymentMethodHandler) Update(c *gin.Context) {
	var payload request.PaymentMethodRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	m, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, mapPaymentMethodError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentMethod(m))
}

// Delete godoc
// @Summary      Delete a payment method
// @Tags         payment-methods
// @Param        id   path  string  true  "Payment method ID"
// @Success      204
// @Security     Bearer
// @Router       /payment-methods/{id} [delete]
func (h *PaymentMethodHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapPaymentMethodError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// Load godoc
// @Summary      Add funds to a payment method
// @Tags         payment-methods
// @Accept       json
// @Produce      json
// @Param        id       path      string                            true  "Payment method ID"
// @Param        payload  body      request.MethodTransactionRequest  true  "Amount"
// @Success      200      {object}  response.PaymentMethodResponse
// @Security     Bearer
// @Router       /payment-methods/{id}/load [post]
func (h *PaymentMethodHandler) Load(c *gin.Context) {
	h.applyTransaction(c, h.usecase.Load)
}

// Transfer godoc
// @Summary      Move funds out of a payment method
// @Tags         payment-methods
// @Accept       json
// @Produce      json
// @Param        id       path      string                            true  "Payment method ID"
// @Param        payload  body      request.MethodTransactionRequest  true  "Amount"
// @Success      200      {object}  response.PaymentMethodResponse
// @Failure      409      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /payment-methods/{id}/transfer [post]
func (h *PaymentMethodHandler) Transfer(c *gin.Context) {
	h.applyTransaction(c, h.usecase.Transfer)
}

// Transactions godoc
// @Summary      Transactions of a payment method, newest first
// @Tags         payment-methods
// @Produce      json
// @Param        id   path      string  true  "Payment method ID"
// @Success      200  {array}   response.MethodTransactionResponse
// @Security     Bearer
// @Router       /payment-methods/{id}/transactions [get]
func (h *PaymentMethodHandler) Transactions(c *gin.Context) {
	txs, err := h.usecase.Transactions(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapPaymentMethodError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMethodTransactions(txs))
}

func (h *PaymentMethodHandler) applyTransaction(
	c *gin.Context,
	apply func(ctx context.Context, id string, in usecase.MethodTransactionInput) (entities.PaymentMethod, error),
) {
	var payload request.MethodTransactionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	m, err := apply(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		h.log.Warn(c.Request.Context(), "[methods][handler] transaction failed: "+err.Error())
		writeError(c, mapPaymentMethodError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentMethod(m))
}

func mapPaymentMethodError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidMethodID), errors.Is(err, usecase.ErrInvalidMethodInput):
		return coded("INVALID_PAYMENT_METHOD", http.StatusBadRequest, err)
	case errors.Is(err, usecase.ErrInvalidAmount):
		return coded("INVALID_AMOUNT", http.StatusBadRequest, err)
	case errors.Is(err, usecase.ErrPaymentMethodNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_METHOD_NOT_FOUND", "Payment method not found", http.StatusNotFound).WithKind("NOT_FOUND")
	case errors.Is(err, entities.ErrDuplicateMethodName):
		return pkg.NewDomainErrorSimple("PAYMENT_METHOD_NAME_TAKEN", "A payment method with this name already exists", http.StatusConflict).WithKind("CONFLICT")
	case errors.Is(err, entities.ErrInsufficientBalance):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_BALANCE", "Insufficient balance", http.StatusConflict).WithKind("CONFLICT")
	default:
		return mapKindError(err)
	}
}
