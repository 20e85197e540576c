package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is a named settlement channel (bank account, zelle, cash box)
// with its own balance. Name is unique across the catalog.
type PaymentMethod struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	Bank          string              `json:"bank"`
	AccountNumber string              `json:"account_number"`
	Holder        string              `json:"holder"`
	NationalID    string              `json:"national_id,omitempty"`
	Currency      string              `json:"currency"`
	Kind          string              `json:"kind"`
	Balance       decimal.Decimal     `json:"balance"`
	Transactions  []MethodTransaction `json:"transactions"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

type TransactionType string

const (
	TransactionTypeLoad     TransactionType = "load"
	TransactionTypeTransfer TransactionType = "transfer"
)

func ParseTransactionType(value string) (TransactionType, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "load", "carga":
		return TransactionTypeLoad, nil
	case "transfer", "transferencia":
		return TransactionTypeTransfer, nil
	}
	return "", fmt.Errorf("%w %q", ErrInvalidTransactionType, value)
}

// MethodTransaction moves money in (load) or out (transfer) of a payment method.
type MethodTransaction struct {
	ID      string          `json:"id"`
	Type    TransactionType `json:"type"`
	Amount  decimal.Decimal `json:"amount"`
	Concept string          `json:"concept"`
	At      time.Time       `json:"at"`
}

// Signed returns the balance delta of the transaction.
func (t MethodTransaction) Signed() decimal.Decimal {
	if t.Type == TransactionTypeTransfer {
		return t.Amount.Neg()
	}
	return t.Amount
}

// NetBalance recomputes the balance from the transaction log.
func (m PaymentMethod) NetBalance() decimal.Decimal {
	sum := decimal.Zero
	for _, tx := range m.Transactions {
		sum = sum.Add(tx.Signed())
	}
	return sum
}

// NormalizeMethodName is the key used for the uniqueness guard.
func NormalizeMethodName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
