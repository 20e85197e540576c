package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"fulfillment_service/internal/domain/entities"
	"fulfillment_service/internal/usecase/interfaces"
)

// parseOrderID rejects malformed ids before any I/O is attempted.
func parseOrderID(raw string) (string, error) {
	id := strings.TrimSpace(raw)
	if id == "" {
		return "", ErrInvalidOrderID
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidOrderID, raw)
	}
	return parsed.String(), nil
}

func storageErr(op string, err error) error {
	return entities.StorageFailure(op, err)
}

// lockOrder takes the per-order write lock. Lock errors surface as StorageFailure
// because the lock backend is part of the store boundary.
func lockOrder(ctx context.Context, locker interfaces.IOrderLocker, orderID string) (func(), error) {
	if locker == nil {
		return func() {}, nil
	}
	unlock, err := locker.Lock(ctx, "order:"+orderID)
	if err != nil {
		return nil, storageErr("lock order", err)
	}
	return unlock, nil
}

// loadOrder fetches an order and turns the zero value into ErrOrderNotFound.
func loadOrder(ctx context.Context, repo interfaces.IOrderRepository, orderID string) (entities.Order, error) {
	o, err := repo.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, storageErr("get order", err)
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func utcNow() time.Time {
	return time.Now().UTC()
}
