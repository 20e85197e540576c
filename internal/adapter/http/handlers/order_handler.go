package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "fulfillment_service/internal/adapter/http/dto/request"
	response "fulfillment_service/internal/adapter/http/dto/response"
	"fulfillment_service/internal/adapter/http/middleware"
	"fulfillment_service/internal/infrastructure/logger"
	"fulfillment_service/internal/usecase"
	"fulfillment_service/pkg"
)

// OrderHandler exposes order creation and the query facade.
type OrderHandler struct {
	usecase usecase.IOrderUseCase
	log     *logger.Logger
}

func NewOrderHandler(uc usecase.IOrderUseCase, log *logger.Logger) *OrderHandler {
	return &OrderHandler{usecase: uc, log: log}
}

// CreateOrder godoc
// @Summary      Create an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        payload  body      request.CreateOrderRequest  true  "Order"
// @Success      201      {object}  response.OrderResponse
// @Failure      400      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c.Request.Context())
	if !ok {
		writeError(c, errUnauthorized)
		return
	}

	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	createdBy := principal.Username
	if createdBy == "" {
		createdBy = principal.UserID
	}
	order, err := h.usecase.Create(c.Request.Context(), payload.ToInput(), createdBy)
	if err != nil {
		h.log.Warn(c.Request.Context(), "[order][handler] create failed: "+err.Error())
		writeError(c, mapOrderError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromOrder(order))
}

// GetOrder godoc
// @Summary      Get an order
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  response.OrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// ListOrders godoc
// @Summary      List orders by overall status and creation date
// @Tags         orders
// @Produce      json
// @Param        status  query     []string  false  "Overall status (repeatable)"  collectionFormat(multi)
// @Param        from    query     string    false  "YYYY-MM-DD"
// @Param        to      query     string    false  "YYYY-MM-DD"
// @Success      200     {array}   response.OrderResponse
// @Security     Bearer
// @Router       /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	var query request.OrderListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	filter, err := query.ToFilter()
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}

	orders, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID):
		return coded("INVALID_ORDER_ID", http.StatusBadRequest, err)
	case errors.Is(err, usecase.ErrInvalidOrderInput):
		return coded("INVALID_ORDER_INPUT", http.StatusBadRequest, err)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound).WithKind("NOT_FOUND")
	default:
		return mapKindError(err)
	}
}
