package interfaces

import (
	"context"

	"fulfillment_service/internal/domain/entities"
)

// IPaymentMethodRepository abstracts persistence of the payment method catalog.
//
//   - Create and Update return entities.ErrDuplicateMethodName when the name is taken.
//   - ApplyTransaction returns entities.ErrInsufficientBalance when a transfer would
//     leave a negative balance.
//   - Missing methods are reported as a zero PaymentMethod and a nil error.
type IPaymentMethodRepository interface {
	Create(ctx context.Context, method entities.PaymentMethod) (entities.PaymentMethod, error)
	GetByID(ctx context.Context, id string) (entities.PaymentMethod, error)
	GetByName(ctx context.Context, name string) (entities.PaymentMethod, error)
	List(ctx context.Context) ([]entities.PaymentMethod, error)
	Update(ctx context.Context, method entities.PaymentMethod) (entities.PaymentMethod, error)
	Delete(ctx context.Context, id string) (bool, error)
	ApplyTransaction(ctx context.Context, id string, tx entities.MethodTransaction) (entities.PaymentMethod, error)
}
