package response

import (
	"time"

	"github.com/shopspring/decimal"

	"fulfillment_service/internal/domain/entities"
	"fulfillment_service/internal/usecase"
)

type PaymentRecordResponse struct {
	Order OrderResponse         `json:"order"`
	Event *PaymentEventResponse `json:"event,omitempty"`
}

func FromPaymentRecord(r usecase.PaymentRecord) PaymentRecordResponse {
	out := PaymentRecordResponse{Order: FromOrder(r.Order)}
	if r.Event != nil {
		ev := FromPaymentEvent(*r.Event)
		out.Event = &ev
	}
	return out
}

type PaymentAuditResponse struct {
	OrderID      string          `json:"order_id"`
	TotalSettled decimal.Decimal `json:"total_settled"`
	LedgerSum    decimal.Decimal `json:"ledger_sum"`
	Events       int             `json:"events"`
	Consistent   bool            `json:"consistent"`
}

func FromPaymentAudit(a usecase.PaymentAudit) PaymentAuditResponse {
	return PaymentAuditResponse{
		OrderID:      a.OrderID,
		TotalSettled: a.TotalSettled,
		LedgerSum:    a.LedgerSum,
		Events:       a.Events,
		Consistent:   a.Consistent,
	}
}

type MethodTransactionResponse struct {
	ID      string          `json:"id"`
	Type    string          `json:"type"`
	Amount  decimal.Decimal `json:"amount"`
	Concept string          `json:"concept"`
	At      time.Time       `json:"at"`
}

type PaymentMethodResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Bank          string          `json:"bank"`
	AccountNumber string          `json:"account_number"`
	Holder        string          `json:"holder"`
	NationalID    string          `json:"national_id,omitempty"`
	Currency      string          `json:"currency"`
	Kind          string          `json:"kind"`
	Balance       decimal.Decimal `json:"balance"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func FromPaymentMethod(m entities.PaymentMethod) PaymentMethodResponse {
	return PaymentMethodResponse{
		ID:            m.ID,
		Name:          m.Name,
		Bank:          m.Bank,
		AccountNumber: m.AccountNumber,
		Holder:        m.Holder,
		NationalID:    m.NationalID,
		Currency:      m.Currency,
		Kind:          m.Kind,
		Balance:       m.Balance,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func FromPaymentMethods(methods []entities.PaymentMethod) []PaymentMethodResponse {
	out := make([]PaymentMethodResponse, 0, len(methods))
	for _, m := range methods {
		out = append(out, FromPaymentMethod(m))
	}
	return out
}

func FromMethodTransactions(txs []entities.MethodTransaction) []MethodTransactionResponse {
	out := make([]MethodTransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, MethodTransactionResponse{
			ID:      tx.ID,
			Type:    string(tx.Type),
			Amount:  tx.Amount,
			Concept: tx.Concept,
			At:      tx.At,
		})
	}
	return out
}
