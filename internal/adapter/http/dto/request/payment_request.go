package request

import (
	"github.com/shopspring/decimal"

	"fulfillment_service/internal/usecase"
)

// RecordPaymentRequest sets the payment status. When Amount is present a ledger
// event is appended; Method is a catalog id or name.
type RecordPaymentRequest struct {
	Status string           `json:"status" binding:"required,payment_status"`
	Amount *decimal.Decimal `json:"amount"`
	Method string           `json:"method"`
}

func (r RecordPaymentRequest) ToInput(orderID string) usecase.RecordPaymentInput {
	return usecase.RecordPaymentInput{
		OrderID: orderID,
		Status:  r.Status,
		Amount:  r.Amount,
		Method:  r.Method,
	}
}

type PaymentMethodRequest struct {
	Name          string `json:"name" binding:"required"`
	Bank          string `json:"bank"`
	AccountNumber string `json:"account_number"`
	Holder        string `json:"holder"`
	NationalID    string `json:"national_id"`
	Currency      string `json:"currency"`
	Kind          string `json:"kind"`
}

func (r PaymentMethodRequest) ToInput() usecase.PaymentMethodInput {
	return usecase.PaymentMethodInput{
		Name:          r.Name,
		Bank:          r.Bank,
		AccountNumber: r.AccountNumber,
		Holder:        r.Holder,
		NationalID:    r.NationalID,
		Currency:      r.Currency,
		Kind:          r.Kind,
	}
}

type MethodTransactionRequest struct {
	Amount  decimal.Decimal `json:"amount"`
	Concept string          `json:"concept"`
}

func (r MethodTransactionRequest) ToInput() usecase.MethodTransactionInput {
	return usecase.MethodTransactionInput{Amount: r.Amount, Concept: r.Concept}
}
