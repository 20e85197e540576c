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

// StageTrackerHandler handles stage, assignment and overall status changes.
type StageTrackerHandler struct {
	usecase usecase.IStageTrackerUseCase
	log     *logger.Logger
}

func NewStageTrackerHandler(uc usecase.IStageTrackerUseCase, log *logger.Logger) *StageTrackerHandler {
	return &StageTrackerHandler{usecase: uc, log: log}
}

// AdvanceStage godoc
// @Summary      Advance a stage
// @Tags         tracking
// @Accept       json
// @Produce      json
// @Param        id       path      string                       true  "Order ID"
// @Param        ordinal  path      int                          true  "Stage ordinal"
// @Param        payload  body      request.AdvanceStageRequest  true  "Stage change"
// @Success      200      {object}  response.OrderResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /orders/{id}/stages/{ordinal} [put]
func (h *StageTrackerHandler) AdvanceStage(c *gin.Context) {
	ordinal, ok := parseOrdinal(c)
	if !ok {
		writeError(c, errInvalidOrdinal)
		return
	}
	var payload request.AdvanceStageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	order, err := h.usecase.AdvanceStage(c.Request.Context(), payload.ToInput(c.Param("id"), ordinal))
	if err != nil {
		h.log.Warn(c.Request.Context(), "[tracker][handler] advance failed: "+err.Error())
		writeError(c, mapTrackerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// FinalizeStage godoc
// @Summary      Mark a stage done, backfilling missing timestamps
// @Tags         tracking
// @Accept       json
// @Produce      json
// @Param        id       path      string                        true   "Order ID"
// @Param        ordinal  path      int                           true   "Stage ordinal"
// @Param        payload  body      request.FinalizeStageRequest  false  "Overall status"
// @Success      200      {object}  response.OrderResponse
// @Security     Bearer
// @Router       /orders/{id}/stages/{ordinal}/finalize [put]
func (h *StageTrackerHandler) FinalizeStage(c *gin.Context) {
	ordinal, ok := parseOrdinal(c)
	if !ok {
		writeError(c, errInvalidOrdinal)
		return
	}
	var payload request.FinalizeStageRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			writeError(c, errInvalidPayload)
			return
		}
	}

	order, err := h.usecase.FinalizeStage(c.Request.Context(), c.Param("id"), ordinal, payload.OverallStatus)
	if err != nil {
		h.log.Warn(c.Request.Context(), "[tracker][handler] finalize failed: "+err.Error())
		writeError(c, mapTrackerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// UpdateAssignment godoc
// @Summary      Complete or update one assignment of a stage
// @Tags         tracking
// @Accept       json
// @Produce      json
// @Param        id       path      string                           true  "Order ID"
// @Param        ordinal  path      int                              true  "Stage ordinal"
// @Param        payload  body      request.UpdateAssignmentRequest  true  "Assignment"
// @Success      200      {object}  response.OrderResponse
// @Security     Bearer
// @Router       /orders/{id}/stages/{ordinal}/assignments [put]
func (h *StageTrackerHandler) UpdateAssignment(c *gin.Context) {
	ordinal, ok := parseOrdinal(c)
	if !ok {
		writeError(c, errInvalidOrdinal)
		return
	}
	var payload request.UpdateAssignmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	order, err := h.usecase.UpdateAssignment(c.Request.Context(), payload.ToInput(c.Param("id"), ordinal))
	if err != nil {
		h.log.Warn(c.Request.Context(), "[tracker][handler] assignment update failed: "+err.Error())
		writeError(c, mapTrackerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// SetOverallStatus godoc
// @Summary      Set the overall status label of an order
// @Tags         tracking
// @Accept       json
// @Produce      json
// @Param        id       path      string                        true  "Order ID"
// @Param        payload  body      request.OverallStatusRequest  true  "Status"
// @Success      200      {object}  response.OrderResponse
// @Security     Bearer
// @Router       /orders/{id}/status [put]
func (h *StageTrackerHandler) SetOverallStatus(c *gin.Context) {
	var payload request.OverallStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	order, err := h.usecase.SetOverallStatus(c.Request.Context(), c.Param("id"), payload.Status)
	if err != nil {
		writeError(c, mapTrackerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

func mapTrackerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrStageNotFound):
		return pkg.NewDomainErrorSimple("STAGE_NOT_FOUND", "Stage not found", http.StatusNotFound).WithKind("NOT_FOUND")
	case errors.Is(err, usecase.ErrAssignmentNotFound):
		return pkg.NewDomainErrorSimple("ASSIGNMENT_NOT_FOUND", "Assignment not found", http.StatusNotFound).WithKind("NOT_FOUND")
	case errors.Is(err, entities.ErrInvalidTransition):
		return coded("INVALID_TRANSITION", http.StatusBadRequest, err)
	case errors.Is(err, entities.ErrDuplicateAssignment):
		return coded("DUPLICATE_ASSIGNMENT", http.StatusBadRequest, err)
	default:
		return mapOrderError(err)
	}
}
