package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"fulfillment_service/internal/domain/entities"
	"fulfillment_service/internal/infrastructure/logger"
	"fulfillment_service/internal/infrastructure/metrics"
	"fulfillment_service/internal/usecase/interfaces"
)

// RecordPaymentInput sets the payment status of an order and, when Amount is
// present, appends a payment event. Method is a catalog id or name.
type RecordPaymentInput struct {
	OrderID string
	Status  string
	Amount  *decimal.Decimal
	Method  string
}

// PaymentRecord is the outcome of RecordPayment. Event is nil for status-only updates.
type PaymentRecord struct {
	Order entities.Order
	Event *entities.PaymentEvent
}

// PaymentAudit compares the running total against the sum of the ledger.
type PaymentAudit struct {
	OrderID      string
	TotalSettled decimal.Decimal
	LedgerSum    decimal.Decimal
	Events       int
	Consistent   bool
}

// IPaymentLedgerUseCase records money received for an order.
//
// The settled total is only ever incremented by the store in the same write that
// appends the event, so it always equals the sum of the history.
type IPaymentLedgerUseCase interface {
	RecordPayment(ctx context.Context, in RecordPaymentInput) (PaymentRecord, error)
	Totalize(ctx context.Context, orderID string) (entities.Order, error)
	History(ctx context.Context, orderID string) ([]entities.PaymentEvent, error)
	Audit(ctx context.Context, orderID string) (PaymentAudit, error)
}

type PaymentLedgerUseCase struct {
	repo    interfaces.IOrderRepository
	methods interfaces.IPaymentMethodRepository
	log     *logger.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

var _ IPaymentLedgerUseCase = (*PaymentLedgerUseCase)(nil)

func NewPaymentLedgerUseCase(repo interfaces.IOrderRepository, methods interfaces.IPaymentMethodRepository, log *logger.Logger, m *metrics.Metrics) *PaymentLedgerUseCase {
	return &PaymentLedgerUseCase{repo: repo, methods: methods, log: log, metrics: m, now: utcNow}
}

func (u *PaymentLedgerUseCase) RecordPayment(ctx context.Context, in RecordPaymentInput) (PaymentRecord, error) {
	orderID, err := parseOrderID(in.OrderID)
	if err != nil {
		return PaymentRecord{}, err
	}
	status, err := entities.ParsePaymentStatus(in.Status)
	if err != nil {
		return PaymentRecord{}, err
	}
	ctx = u.log.WithOrderID(ctx, orderID)

	var event *entities.PaymentEvent
	if in.Amount != nil {
		if !in.Amount.IsPositive() {
			return PaymentRecord{}, ErrInvalidAmount
		}
		event = &entities.PaymentEvent{
			At:     u.now(),
			Amount: *in.Amount,
			Status: status,
		}
		if ref := strings.TrimSpace(in.Method); ref != "" {
			method, err := resolveMethod(ctx, u.methods, ref)
			if err != nil {
				u.log.Warn(ctx, "[ledger][usecase] payment method not resolved ref="+ref)
				return PaymentRecord{}, err
			}
			event.MethodID = method.ID
			event.MethodName = method.Name
		}
	}

	order, err := u.repo.AppendPayment(ctx, orderID, status, event)
	if err != nil {
		u.log.Error(ctx, "[ledger][usecase] append payment failed", err)
		return PaymentRecord{}, storageErr("append payment", err)
	}
	if order.ID == "" {
		return PaymentRecord{}, ErrOrderNotFound
	}

	amount := decimal.Zero
	if event != nil {
		amount = event.Amount
	}
	u.metrics.PaymentRecorded(string(status), amount)
	u.log.Info(ctx, "[ledger][usecase] payment recorded status="+string(status)+" amount="+amount.String()+" total_settled="+order.TotalSettled.String())
	return PaymentRecord{Order: order, Event: event}, nil
}

// Totalize force-sets the order to paid and stamps the finalization time without
// requiring a matching amount. Callers must be separately authorized for it.
func (u *PaymentLedgerUseCase) Totalize(ctx context.Context, orderID string) (entities.Order, error) {
	id, err := parseOrderID(orderID)
	if err != nil {
		return entities.Order{}, err
	}
	ctx = u.log.WithOrderID(ctx, id)

	now := u.now()
	paid := entities.PaymentStatusPaid
	matched, err := u.repo.UpdateFields(ctx, id, interfaces.OrderUpdate{PaymentStatus: &paid, TotalizedAt: &now})
	if err != nil {
		u.log.Error(ctx, "[ledger][usecase] totalize failed", err)
		return entities.Order{}, storageErr("totalize order", err)
	}
	if matched == 0 {
		return entities.Order{}, ErrOrderNotFound
	}

	order, err := loadOrder(ctx, u.repo, id)
	if err != nil {
		return entities.Order{}, err
	}
	u.metrics.PaymentRecorded(string(paid), decimal.Zero)
	u.log.Warn(ctx, "[ledger][usecase] order totalized total_settled="+order.TotalSettled.String()+" total="+order.Total().String())
	return order, nil
}

func (u *PaymentLedgerUseCase) History(ctx context.Context, orderID string) ([]entities.PaymentEvent, error) {
	id, err := parseOrderID(orderID)
	if err != nil {
		return nil, err
	}
	order, err := loadOrder(ctx, u.repo, id)
	if err != nil {
		return nil, err
	}
	if order.PaymentHistory == nil {
		return []entities.PaymentEvent{}, nil
	}
	return order.PaymentHistory, nil
}

func (u *PaymentLedgerUseCase) Audit(ctx context.Context, orderID string) (PaymentAudit, error) {
	id, err := parseOrderID(orderID)
	if err != nil {
		return PaymentAudit{}, err
	}
	order, err := loadOrder(ctx, u.repo, id)
	if err != nil {
		return PaymentAudit{}, err
	}
	sum := order.LedgerSum()
	audit := PaymentAudit{
		OrderID:      order.ID,
		TotalSettled: order.TotalSettled,
		LedgerSum:    sum,
		Events:       len(order.PaymentHistory),
		Consistent:   sum.Equal(order.TotalSettled),
	}
	if !audit.Consistent {
		u.log.Warn(u.log.WithOrderID(ctx, id), "[ledger][usecase] ledger drift detected total_settled="+order.TotalSettled.String()+" ledger_sum="+sum.String())
	}
	return audit, nil
}

// resolveMethod looks a catalog entry up by id first and by name second.
func resolveMethod(ctx context.Context, repo interfaces.IPaymentMethodRepository, ref string) (entities.PaymentMethod, error) {
	if repo == nil {
		return entities.PaymentMethod{}, ErrPaymentMethodNotFound
	}
	m, err := repo.GetByID(ctx, ref)
	if err != nil {
		return entities.PaymentMethod{}, storageErr("get payment method", err)
	}
	if m.ID != "" {
		return m, nil
	}
	m, err = repo.GetByName(ctx, ref)
	if err != nil {
		return entities.PaymentMethod{}, storageErr("get payment method by name", err)
	}
	if m.ID == "" {
		return entities.PaymentMethod{}, ErrPaymentMethodNotFound
	}
	return m, nil
}
