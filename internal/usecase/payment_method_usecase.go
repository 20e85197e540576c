package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"fulfillment_service/internal/domain/entities"
	"fulfillment_service/internal/infrastructure/logger"
	"fulfillment_service/internal/usecase/interfaces"
)

const defaultMethodCurrency = "USD"

type PaymentMethodInput struct {
	Name          string
	Bank          string
	AccountNumber string
	Holder        string
	NationalID    string
	Currency      string
	Kind          string
}

type MethodTransactionInput struct {
	Amount  decimal.Decimal
	Concept string
}

// IPaymentMethodUseCase manages the payment method catalog and its balances.
type IPaymentMethodUseCase interface {
	Create(ctx context.Context, in PaymentMethodInput) (entities.PaymentMethod, error)
	Get(ctx context.Context, id string) (entities.PaymentMethod, error)
	List(ctx context.Context) ([]entities.PaymentMethod, error)
	Update(ctx context.Context, id string, in PaymentMethodInput) (entities.PaymentMethod, error)
	Delete(ctx context.Context, id string) error
	Load(ctx context.Context, id string, in MethodTransactionInput) (entities.PaymentMethod, error)
	Transfer(ctx context.Context, id string, in MethodTransactionInput) (entities.PaymentMethod, error)
	Transactions(ctx context.Context, id string) ([]entities.MethodTransaction, error)
}

type PaymentMethodUseCase struct {
	repo interfaces.IPaymentMethodRepository
	log  *logger.Logger
	now  func() time.Time
}

var _ IPaymentMethodUseCase = (*PaymentMethodUseCase)(nil)

func NewPaymentMethodUseCase(repo interfaces.IPaymentMethodRepository, log *logger.Logger) *PaymentMethodUseCase {
	return &PaymentMethodUseCase{repo: repo, log: log, now: utcNow}
}

func (u *PaymentMethodUseCase) Create(ctx context.Context, in PaymentMethodInput) (entities.PaymentMethod, error) {
	in, err := normalizeMethodInput(in)
	if err != nil {
		return entities.PaymentMethod{}, err
	}
	now := u.now()
	m := entities.PaymentMethod{
		ID:            uuid.NewString(),
		Name:          in.Name,
		Bank:          in.Bank,
		AccountNumber: in.AccountNumber,
		Holder:        in.Holder,
		NationalID:    in.NationalID,
		Currency:      in.Currency,
		Kind:          in.Kind,
		Balance:       decimal.Zero,
		Transactions:  []entities.MethodTransaction{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	created, err := u.repo.Create(ctx, m)
	if err != nil {
		return entities.PaymentMethod{}, u.repoErr(ctx, "create payment method", err)
	}
	u.log.Info(u.log.WithField(ctx, "method_id", created.ID), "[methods][usecase] payment method created")
	return created, nil
}

func (u *PaymentMethodUseCase) Get(ctx context.Context, id string) (entities.PaymentMethod, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PaymentMethod{}, ErrInvalidMethodID
	}
	m, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.PaymentMethod{}, storageErr("get payment method", err)
	}
	if m.ID == "" {
		return entities.PaymentMethod{}, ErrPaymentMethodNotFound
	}
	return m, nil
}

func (u *PaymentMethodUseCase) List(ctx context.Context) ([]entities.PaymentMethod, error) {
	list, err := u.repo.List(ctx)
	if err != nil {
		return nil, storageErr("list payment methods", err)
	}
	if list == nil {
		list = []entities.PaymentMethod{}
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (u *PaymentMethodUseCase) Update(ctx context.Context, id string, in PaymentMethodInput) (entities.PaymentMethod, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PaymentMethod{}, ErrInvalidMethodID
	}
	in, err := normalizeMethodInput(in)
	if err != nil {
		return entities.PaymentMethod{}, err
	}
	updated, err := u.repo.Update(ctx, entities.PaymentMethod{
		ID:            id,
		Name:          in.Name,
		Bank:          in.Bank,
		AccountNumber: in.AccountNumber,
		Holder:        in.Holder,
		NationalID:    in.NationalID,
		Currency:      in.Currency,
		Kind:          in.Kind,
		UpdatedAt:     u.now(),
	})
	if err != nil {
		return entities.PaymentMethod{}, u.repoErr(ctx, "update payment method", err)
	}
	if updated.ID == "" {
		return entities.PaymentMethod{}, ErrPaymentMethodNotFound
	}
	return updated, nil
}

func (u *PaymentMethodUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidMethodID
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return storageErr("delete payment method", err)
	}
	if !deleted {
		return ErrPaymentMethodNotFound
	}
	u.log.Info(u.log.WithField(ctx, "method_id", id), "[methods][usecase] payment method deleted")
	return nil
}

func (u *PaymentMethodUseCase) Load(ctx context.Context, id string, in MethodTransactionInput) (entities.PaymentMethod, error) {
	return u.apply(ctx, id, entities.TransactionTypeLoad, in)
}

func (u *PaymentMethodUseCase) Transfer(ctx context.Context, id string, in MethodTransactionInput) (entities.PaymentMethod, error) {
	return u.apply(ctx, id, entities.TransactionTypeTransfer, in)
}

func (u *PaymentMethodUseCase) Transactions(ctx context.Context, id string) ([]entities.MethodTransaction, error) {
	m, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	txs := append([]entities.MethodTransaction(nil), m.Transactions...)
	sort.SliceStable(txs, func(i, j int) bool { return txs[i].At.After(txs[j].At) })
	return txs, nil
}

func (u *PaymentMethodUseCase) apply(ctx context.Context, id string, typ entities.TransactionType, in MethodTransactionInput) (entities.PaymentMethod, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PaymentMethod{}, ErrInvalidMethodID
	}
	if !in.Amount.IsPositive() {
		return entities.PaymentMethod{}, ErrInvalidAmount
	}
	tx := entities.MethodTransaction{
		ID:      uuid.NewString(),
		Type:    typ,
		Amount:  in.Amount,
		Concept: strings.TrimSpace(in.Concept),
		At:      u.now(),
	}

	ctx = u.log.WithField(ctx, "method_id", id)
	m, err := u.repo.ApplyTransaction(ctx, id, tx)
	if err != nil {
		return entities.PaymentMethod{}, u.repoErr(ctx, "apply method transaction", err)
	}
	if m.ID == "" {
		return entities.PaymentMethod{}, ErrPaymentMethodNotFound
	}
	u.log.Info(ctx, "[methods][usecase] "+string(typ)+" applied amount="+tx.Amount.String()+" balance="+m.Balance.String())
	return m, nil
}

// repoErr keeps domain conflicts intact and wraps everything else as a storage failure.
func (u *PaymentMethodUseCase) repoErr(ctx context.Context, op string, err error) error {
	if errors.Is(err, entities.ErrConflict) {
		u.log.Warn(ctx, "[methods][usecase] "+op+": "+err.Error())
		return err
	}
	u.log.Error(ctx, "[methods][usecase] "+op+" failed", err)
	return storageErr(op, err)
}

func normalizeMethodInput(in PaymentMethodInput) (PaymentMethodInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return in, fmt.Errorf("%w: name is required", ErrInvalidMethodInput)
	}
	in.Bank = strings.TrimSpace(in.Bank)
	in.AccountNumber = strings.TrimSpace(in.AccountNumber)
	in.Holder = strings.TrimSpace(in.Holder)
	in.NationalID = strings.TrimSpace(in.NationalID)
	in.Kind = strings.ToLower(strings.TrimSpace(in.Kind))
	in.Currency = strings.ToUpper(strings.TrimSpace(in.Currency))
	if in.Currency == "" {
		in.Currency = defaultMethodCurrency
	}
	return in, nil
}
