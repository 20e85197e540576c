package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"fulfillment_service/internal/domain/entities"
	"fulfillment_service/internal/infrastructure/logger"
	"fulfillment_service/internal/usecase/interfaces"
)

const defaultOverallStatus = "orden1"

// CreateOrderInput is the command accepted by OrderUseCase.Create.
// StageNames defaults to entities.DefaultPipeline when empty.
type CreateOrderInput struct {
	ClientID      string
	ClientName    string
	OverallStatus string
	Items         []entities.LineItem
	StageNames    []string
}

// IOrderUseCase covers creation and retrieval of orders.
type IOrderUseCase interface {
	Create(ctx context.Context, in CreateOrderInput, createdBy string) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	List(ctx context.Context, filter interfaces.OrderFilter) ([]entities.Order, error)
}

type OrderUseCase struct {
	repo interfaces.IOrderRepository
	log  *logger.Logger
	now  func() time.Time
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository, log *logger.Logger) *OrderUseCase {
	return &OrderUseCase{repo: repo, log: log, now: utcNow}
}

func (u *OrderUseCase) Create(ctx context.Context, in CreateOrderInput, createdBy string) (entities.Order, error) {
	if strings.TrimSpace(in.ClientID) == "" || strings.TrimSpace(in.ClientName) == "" {
		return entities.Order{}, fmt.Errorf("%w: client id and name are required", ErrInvalidOrderInput)
	}
	if len(in.Items) == 0 {
		return entities.Order{}, fmt.Errorf("%w: at least one item is required", ErrInvalidOrderInput)
	}

	items := make([]entities.LineItem, 0, len(in.Items))
	seen := make(map[string]struct{}, len(in.Items))
	for _, it := range in.Items {
		it.ID = strings.TrimSpace(it.ID)
		if it.ID == "" {
			it.ID = uuid.NewString()
		}
		if _, dup := seen[it.ID]; dup {
			return entities.Order{}, fmt.Errorf("%w: duplicate item id %s", ErrInvalidOrderInput, it.ID)
		}
		seen[it.ID] = struct{}{}
		if it.Quantity <= 0 {
			it.Quantity = 1
		}
		if it.Price.IsNegative() || it.Cost.IsNegative() || it.ProductionCost.IsNegative() {
			return entities.Order{}, fmt.Errorf("%w: item %s has a negative amount", ErrInvalidOrderInput, it.ID)
		}
		if it.Images == nil {
			it.Images = []string{}
		}
		items = append(items, it)
	}

	names := in.StageNames
	if len(names) == 0 {
		names = entities.DefaultPipeline()
	}
	for _, n := range names {
		if strings.TrimSpace(n) == "" {
			return entities.Order{}, fmt.Errorf("%w: stage names must not be empty", ErrInvalidOrderInput)
		}
	}

	status := strings.TrimSpace(in.OverallStatus)
	if status == "" {
		status = defaultOverallStatus
	}

	now := u.now()
	order := entities.Order{
		ID:             uuid.NewString(),
		ClientID:       strings.TrimSpace(in.ClientID),
		ClientName:     strings.TrimSpace(in.ClientName),
		CreatedBy:      createdBy,
		CreatedAt:      now,
		UpdatedAt:      now,
		OverallStatus:  status,
		Items:          items,
		Stages:         entities.NewPipeline(names),
		PaymentStatus:  entities.PaymentStatusUnpaid,
		PaymentHistory: []entities.PaymentEvent{},
		TotalSettled:   decimal.Zero,
	}
	if err := order.Validate(); err != nil {
		return entities.Order{}, err
	}

	ctx = u.log.WithOrderID(ctx, order.ID)
	created, err := u.repo.Create(ctx, order)
	if err != nil {
		u.log.Error(ctx, "[order][usecase] create failed", err)
		return entities.Order{}, storageErr("create order", err)
	}
	u.log.Info(ctx, "[order][usecase] order created")
	return created, nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	orderID, err := parseOrderID(id)
	if err != nil {
		return entities.Order{}, err
	}
	return loadOrder(ctx, u.repo, orderID)
}

func (u *OrderUseCase) List(ctx context.Context, filter interfaces.OrderFilter) ([]entities.Order, error) {
	statuses := make([]string, 0, len(filter.Statuses))
	for _, s := range filter.Statuses {
		if s = strings.TrimSpace(s); s != "" {
			statuses = append(statuses, s)
		}
	}
	filter.Statuses = statuses

	orders, err := u.repo.List(ctx, filter)
	if err != nil {
		u.log.Error(ctx, "[order][usecase] list failed", err)
		return nil, storageErr("list orders", err)
	}
	if orders == nil {
		orders = []entities.Order{}
	}
	return orders, nil
}
