package memory

import (
	"context"
	"errors"
	"sync"

	"fulfillment_service/internal/domain/entities"
	"fulfillment_service/internal/usecase/interfaces"
)

var errAlreadyExists = errors.New("item already exists")

// PaymentMethodStore keeps the catalog in memory with a name index that plays the
// role of the uniqueness guard.
type PaymentMethodStore struct {
	mu      sync.RWMutex
	methods map[string]entities.PaymentMethod
	names   map[string]string
}

var _ interfaces.IPaymentMethodRepository = (*PaymentMethodStore)(nil)

func NewPaymentMethodStore() *PaymentMethodStore {
	return &PaymentMethodStore{
		methods: make(map[string]entities.PaymentMethod),
		names:   make(map[string]string),
	}
}

func (s *PaymentMethodStore) Create(ctx context.Context, m entities.PaymentMethod) (entities.PaymentMethod, error) {
	if err := ctx.Err(); err != nil {
		return entities.PaymentMethod{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.methods[m.ID]; exists {
		return entities.PaymentMethod{}, errAlreadyExists
	}
	key := entities.NormalizeMethodName(m.Name)
	if _, taken := s.names[key]; taken {
		return entities.PaymentMethod{}, entities.ErrDuplicateMethodName
	}
	s.methods[m.ID] = cloneMethod(m)
	s.names[key] = m.ID
	return cloneMethod(m), nil
}

func (s *PaymentMethodStore) GetByID(ctx context.Context, id string) (entities.PaymentMethod, error) {
	if err := ctx.Err(); err != nil {
		return entities.PaymentMethod{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.methods[id]
	if !ok {
		return entities.PaymentMethod{}, nil
	}
	return cloneMethod(m), nil
}

func (s *PaymentMethodStore) GetByName(ctx context.Context, name string) (entities.PaymentMethod, error) {
	if err := ctx.Err(); err != nil {
		return entities.PaymentMethod{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.names[entities.NormalizeMethodName(name)]
	if !ok {
		return entities.PaymentMethod{}, nil
	}
	return cloneMethod(s.methods[id]), nil
}

func (s *PaymentMethodStore) List(ctx context.Context) ([]entities.PaymentMethod, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.PaymentMethod, 0, len(s.methods))
	for _, m := range s.methods {
		out = append(out, cloneMethod(m))
	}
	return out, nil
}

func (s *PaymentMethodStore) Update(ctx context.Context, m entities.PaymentMethod) (entities.PaymentMethod, error) {
	if err := ctx.Err(); err != nil {
		return entities.PaymentMethod{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.methods[m.ID]
	if !ok {
		return entities.PaymentMethod{}, nil
	}
	oldKey, newKey := entities.NormalizeMethodName(cur.Name), entities.NormalizeMethodName(m.Name)
	if oldKey != newKey {
		if _, taken := s.names[newKey]; taken {
			return entities.PaymentMethod{}, entities.ErrDuplicateMethodName
		}
		delete(s.names, oldKey)
		s.names[newKey] = m.ID
	}
	cur.Name = m.Name
	cur.Bank = m.Bank
	cur.AccountNumber = m.AccountNumber
	cur.Holder = m.Holder
	cur.NationalID = m.NationalID
	cur.Currency = m.Currency
	cur.Kind = m.Kind
	cur.UpdatedAt = m.UpdatedAt
	s.methods[m.ID] = cur
	return cloneMethod(cur), nil
}

func (s *PaymentMethodStore) Delete(ctx context.Context, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.methods[id]
	if !ok {
		return false, nil
	}
	delete(s.methods, id)
	delete(s.names, entities.NormalizeMethodName(m.Name))
	return true, nil
}

func (s *PaymentMethodStore) ApplyTransaction(ctx context.Context, id string, tx entities.MethodTransaction) (entities.PaymentMethod, error) {
	if err := ctx.Err(); err != nil {
		return entities.PaymentMethod{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.methods[id]
	if !ok {
		return entities.PaymentMethod{}, nil
	}
	next := m.Balance.Add(tx.Signed())
	if next.IsNegative() {
		return entities.PaymentMethod{}, entities.ErrInsufficientBalance
	}
	m = cloneMethod(m)
	m.Balance = next
	m.Transactions = append(m.Transactions, tx)
	m.UpdatedAt = tx.At
	s.methods[id] = m
	return cloneMethod(m), nil
}

func cloneMethod(m entities.PaymentMethod) entities.PaymentMethod {
	if m.Transactions != nil {
		m.Transactions = append([]entities.MethodTransaction(nil), m.Transactions...)
	}
	return m
}
