package interfaces

import (
	"context"
	"time"

	"fulfillment_service/internal/domain/entities"
)

// OrderUpdate lists the top-level fields replaced by UpdateFields. Nil fields are
// left untouched; each provided field is replaced as a whole in one atomic write.
type OrderUpdate struct {
	Stages        []entities.Stage
	OverallStatus *string
	PaymentStatus *entities.PaymentStatus
	TotalizedAt   *time.Time
}

// OrderFilter composes with AND semantics. Empty Statuses and nil Range match all.
type OrderFilter struct {
	Statuses []string
	Range    *entities.DateRange
}

// IOrderRepository abstracts the order document store.
//
// Missing orders are reported as a zero Order (empty ID) and a nil error, the same
// way the other repositories do. Storage errors are returned as-is; the use cases
// wrap them into the StorageFailure kind.
type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	// UpdateFields returns the number of matched documents (0 or 1).
	UpdateFields(ctx context.Context, id string, upd OrderUpdate) (int64, error)
	// AppendPayment sets the payment status and, when event is not nil, appends it to
	// the history and increments the settled total by its amount, all in one write.
	AppendPayment(ctx context.Context, id string, status entities.PaymentStatus, event *entities.PaymentEvent) (entities.Order, error)
	List(ctx context.Context, filter OrderFilter) ([]entities.Order, error)
}
