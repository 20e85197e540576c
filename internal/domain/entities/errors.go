package entities

import (
	"errors"
	"fmt"
)

// Error kinds. Every error surfaced by the service wraps exactly one of them so the
// transport layer can map failures to a stable kind without knowing every sentinel.
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrConflict        = errors.New("conflict")
	ErrStorageFailure  = errors.New("storage failure")
)

var (
	ErrInvalidTransition         = fmt.Errorf("%w: invalid transition", ErrInvalidArgument)
	ErrInvalidTimestampDirective = fmt.Errorf("%w: timestamp directive must be start, end or empty", ErrInvalidArgument)
	ErrInvalidStageStatus        = fmt.Errorf("%w: invalid stage status", ErrInvalidArgument)
	ErrInvalidAssignmentStatus   = fmt.Errorf("%w: invalid assignment status", ErrInvalidArgument)
	ErrInvalidPaymentStatus      = fmt.Errorf("%w: invalid payment status", ErrInvalidArgument)
	ErrDuplicateAssignment       = fmt.Errorf("%w: duplicate assignment", ErrInvalidArgument)
	ErrInvalidAssignment         = fmt.Errorf("%w: assignment requires item id and employee id", ErrInvalidArgument)
	ErrInvalidStageOrdinal       = fmt.Errorf("%w: stage ordinals must be positive and unique", ErrInvalidArgument)
	ErrInvalidTransactionType    = fmt.Errorf("%w: invalid transaction type", ErrInvalidArgument)
	ErrInvalidDateRange          = fmt.Errorf("%w: invalid date range", ErrInvalidArgument)

	ErrDuplicateMethodName = fmt.Errorf("%w: payment method name already exists", ErrConflict)
	ErrInsufficientBalance = fmt.Errorf("%w: insufficient balance", ErrConflict)
)

type ErrorKind string

const (
	KindNotFound        ErrorKind = "NOT_FOUND"
	KindInvalidArgument ErrorKind = "INVALID_ARGUMENT"
	KindConflict        ErrorKind = "CONFLICT"
	KindStorageFailure  ErrorKind = "STORAGE_FAILURE"
	KindInternal        ErrorKind = "INTERNAL"
)

// KindOf classifies err into the service error taxonomy.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrInvalidArgument):
		return KindInvalidArgument
	case errors.Is(err, ErrConflict):
		return KindConflict
	case errors.Is(err, ErrStorageFailure):
		return KindStorageFailure
	default:
		return KindInternal
	}
}

// StorageFailure wraps an I/O error coming from the document store. The cause stays
// reachable through errors.Is / errors.As for logging.
func StorageFailure(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s: %w", ErrStorageFailure, op, err)
}
