package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentEvent is one append-only entry of an order's payment ledger.
//
// New events carry the canonical MethodID plus a MethodName snapshot taken at write
// time. Events written by older clients may only carry MethodRef, which can be an
// id, a stringified id or a display name; readers resolve it through the catalog.
type PaymentEvent struct {
	At         time.Time       `json:"at"`
	Amount     decimal.Decimal `json:"amount"`
	Status     PaymentStatus   `json:"status"`
	MethodID   string          `json:"method_id,omitempty"`
	MethodName string          `json:"method_name,omitempty"`
	MethodRef  string          `json:"method_ref,omitempty"`
}

// Reference is the best raw reference available for catalog resolution.
func (e PaymentEvent) Reference() string {
	if e.MethodID != "" {
		return e.MethodID
	}
	return e.MethodRef
}
