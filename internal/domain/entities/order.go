package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a customer production job moving through pipeline stages.
//
// Storage model (DynamoDB):
//   - PK: id
//   - stages, items and payment_history are embedded lists
//
// Ledger:
//   - TotalSettled is a running total incremented atomically by the store.
//     It must always equal the sum of PaymentHistory amounts (see Order.LedgerSum).
type Order struct {
	ID            string     `json:"id"`
	ClientID      string     `json:"client_id"`
	ClientName    string     `json:"client_name"`
	CreatedBy     string     `json:"created_by"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	OverallStatus string     `json:"overall_status"`
	Items         []LineItem `json:"items"`
	Stages        []Stage    `json:"stages"`

	PaymentStatus  PaymentStatus   `json:"payment_status"`
	PaymentHistory []PaymentEvent  `json:"payment_history"`
	TotalSettled   decimal.Decimal `json:"total_settled"`
	TotalizedAt    *time.Time      `json:"totalized_at,omitempty"`
}

// LineItem is immutable once the order is created.
type LineItem struct {
	ID             string          `json:"id"`
	Code           string          `json:"code"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Category       string          `json:"category"`
	Price          decimal.Decimal `json:"price"`
	Cost           decimal.Decimal `json:"cost"`
	ProductionCost decimal.Decimal `json:"production_cost"`
	Quantity       int             `json:"quantity"`
	Active         bool            `json:"active"`
	Detail         string          `json:"detail"`
	Images         []string        `json:"images"`
}

// DefaultPipeline lists the stage names seeded when an order is created
// without an explicit pipeline.
func DefaultPipeline() []string {
	return []string{
		"Herreria / soldadura",
		"Masillar / Pintura",
		"Preparacion / Verificacion",
		"Facturacion",
		"Despacho",
		"sin definir 1",
	}
}

// NewPipeline seeds one pending stage per name, ordinals starting at 1.
func NewPipeline(names []string) []Stage {
	stages := make([]Stage, 0, len(names))
	for i, name := range names {
		stages = append(stages, Stage{
			Ordinal:     i + 1,
			Name:        name,
			Status:      StageStatusPending,
			Assignments: []Assignment{},
		})
	}
	return stages
}

// Validate checks the structural invariants fixed at creation.
func (o Order) Validate() error {
	seen := make(map[int]struct{}, len(o.Stages))
	for _, s := range o.Stages {
		if s.Ordinal <= 0 {
			return ErrInvalidStageOrdinal
		}
		if _, dup := seen[s.Ordinal]; dup {
			return ErrInvalidStageOrdinal
		}
		seen[s.Ordinal] = struct{}{}
	}
	return nil
}

// StageByOrdinal returns a pointer into o.Stages so callers can mutate in place.
func (o *Order) StageByOrdinal(ordinal int) (*Stage, bool) {
	for i := range o.Stages {
		if o.Stages[i].Ordinal == ordinal {
			return &o.Stages[i], true
		}
	}
	return nil, false
}

func (o Order) ItemByID(id string) (LineItem, bool) {
	for _, it := range o.Items {
		if it.ID == id {
			return it, true
		}
	}
	return LineItem{}, false
}

// Total is the order value: sum of price x quantity over all line items.
func (o Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

// LedgerSum recomputes the settled amount from the payment history.
func (o Order) LedgerSum() decimal.Decimal {
	sum := decimal.Zero
	for _, ev := range o.PaymentHistory {
		sum = sum.Add(ev.Amount)
	}
	return sum
}

// Clone returns a deep copy. Stores hand out clones so callers never share
// the embedded slices.
func (o Order) Clone() Order {
	out := o
	out.TotalizedAt = cloneTime(o.TotalizedAt)
	if o.Items != nil {
		out.Items = make([]LineItem, len(o.Items))
		for i, it := range o.Items {
			it.Images = append([]string(nil), it.Images...)
			out.Items[i] = it
		}
	}
	if o.Stages != nil {
		out.Stages = make([]Stage, len(o.Stages))
		for i, s := range o.Stages {
			out.Stages[i] = s.Clone()
		}
	}
	if o.PaymentHistory != nil {
		out.PaymentHistory = append([]PaymentEvent(nil), o.PaymentHistory...)
	}
	return out
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
