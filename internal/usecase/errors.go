package usecase

import (
	"fmt"

	"fulfillment_service/internal/domain/entities"
)

var (
	ErrInvalidOrderID        = fmt.Errorf("%w: invalid order id", entities.ErrInvalidArgument)
	ErrInvalidOrderInput     = fmt.Errorf("%w: invalid order payload", entities.ErrInvalidArgument)
	ErrOrderNotFound         = fmt.Errorf("%w: order not found", entities.ErrNotFound)
	ErrStageNotFound         = fmt.Errorf("%w: stage not found", entities.ErrNotFound)
	ErrAssignmentNotFound    = fmt.Errorf("%w: assignment not found", entities.ErrNotFound)
	ErrEmptyTracking         = fmt.Errorf("%w: order has no tracking stages", entities.ErrInvalidTransition)
	ErrInvalidAmount         = fmt.Errorf("%w: amount must be greater than zero", entities.ErrInvalidArgument)
	ErrInvalidMethodID       = fmt.Errorf("%w: invalid payment method id", entities.ErrInvalidArgument)
	ErrInvalidMethodInput    = fmt.Errorf("%w: invalid payment method payload", entities.ErrInvalidArgument)
	ErrPaymentMethodNotFound = fmt.Errorf("%w: payment method not found", entities.ErrNotFound)
	ErrInvalidEmployeeID     = fmt.Errorf("%w: employee id is required", entities.ErrInvalidArgument)
	ErrInvalidOverallStatus  = fmt.Errorf("%w: overall status is required", entities.ErrInvalidArgument)
)
