// Package memory holds in-process implementations of the repositories, selected
// with STORE_DRIVER=memory and used by tests.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"fulfillment_service/internal/domain/entities"
	"fulfillment_service/internal/usecase/interfaces"
)

// OrderStore keeps orders in a map. Every read and write copies the document,
// so callers never share embedded slices with the store.
type OrderStore struct {
	mu     sync.RWMutex
	orders map[string]entities.Order
	now    func() time.Time
}

var _ interfaces.IOrderRepository = (*OrderStore)(nil)

func NewOrderStore() *OrderStore {
	return &OrderStore{
		orders: make(map[string]entities.Order),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *OrderStore) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	if err := ctx.Err(); err != nil {
		return entities.Order{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.orders[o.ID]; exists {
		return entities.Order{}, errAlreadyExists
	}
	s.orders[o.ID] = o.Clone()
	return o.Clone(), nil
}

func (s *OrderStore) GetByID(ctx context.Context, id string) (entities.Order, error) {
	if err := ctx.Err(); err != nil {
		return entities.Order{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orders[id]
	if !ok {
		return entities.Order{}, nil
	}
	return o.Clone(), nil
}

func (s *OrderStore) UpdateFields(ctx context.Context, id string, upd interfaces.OrderUpdate) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return 0, nil
	}
	if upd.Stages != nil {
		o.Stages = entities.Order{Stages: upd.Stages}.Clone().Stages
	}
	if upd.OverallStatus != nil {
		o.OverallStatus = *upd.OverallStatus
	}
	if upd.PaymentStatus != nil {
		o.PaymentStatus = *upd.PaymentStatus
	}
	if upd.TotalizedAt != nil {
		t := *upd.TotalizedAt
		o.TotalizedAt = &t
	}
	o.UpdatedAt = s.now()
	s.orders[id] = o
	return 1, nil
}

func (s *OrderStore) AppendPayment(ctx context.Context, id string, status entities.PaymentStatus, event *entities.PaymentEvent) (entities.Order, error) {
	if err := ctx.Err(); err != nil {
		return entities.Order{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return entities.Order{}, nil
	}
	o = o.Clone()
	o.PaymentStatus = status
	if event != nil {
		o.PaymentHistory = append(o.PaymentHistory, *event)
		o.TotalSettled = o.TotalSettled.Add(event.Amount)
	}
	o.UpdatedAt = s.now()
	s.orders[id] = o
	return o.Clone(), nil
}

func (s *OrderStore) List(ctx context.Context, filter interfaces.OrderFilter) ([]entities.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.Order, 0, len(s.orders))
	for _, o := range s.orders {
		if len(filter.Statuses) > 0 && !slices.Contains(filter.Statuses, o.OverallStatus) {
			continue
		}
		if !filter.Range.Contains(o.CreatedAt) {
			continue
		}
		out = append(out, o.Clone())
	}
	return out, nil
}
