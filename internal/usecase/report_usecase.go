package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"fulfillment_service/internal/domain/entities"
	"fulfillment_service/internal/infrastructure/logger"
	"fulfillment_service/internal/usecase/interfaces"
)

const unknownMethod = "unknown"

type ClientSnapshot struct {
	ID   string
	Name string
}

// WorkEntry is one assignment as seen by the commission reports.
type WorkEntry struct {
	OrderID        string
	StageOrdinal   int
	StageName      string
	StageStatus    entities.StageStatus
	StageStartedAt *time.Time
	StageEndedAt   *time.Time

	ItemID          string
	EmployeeID      string
	EmployeeName    string
	Status          entities.AssignmentStatus
	StartedAt       *time.Time
	EndedAt         *time.Time
	ItemDescription string
	ProductionCost  decimal.Decimal

	// Looked up from the order line items; 1 and 0 when the item is gone.
	Quantity   int
	ItemPrice  decimal.Decimal
	Commission decimal.Decimal

	// In-progress report only.
	Detail string
	Images []string
	Client *ClientSnapshot
}

type EmployeeWork struct {
	EmployeeID      string
	EmployeeName    string
	Entries         []WorkEntry
	TotalCommission decimal.Decimal
}

type RevenueEntry struct {
	OrderID    string
	ClientName string
	At         time.Time
	Amount     decimal.Decimal
	Status     entities.PaymentStatus
	Method     string
}

type DailyRevenue struct {
	Total    decimal.Decimal
	Entries  []RevenueEntry
	ByMethod map[string]decimal.Decimal
}

type PaymentSummary struct {
	OrderID       string
	ClientID      string
	ClientName    string
	CreatedAt     time.Time
	PaymentStatus entities.PaymentStatus
	TotalSettled  decimal.Decimal
	OrderTotal    decimal.Decimal
	Outstanding   decimal.Decimal
	History       []entities.PaymentEvent
}

// IReportUseCase is the read side: commission and revenue aggregation across orders.
type IReportUseCase interface {
	CompletedWork(ctx context.Context, employeeID string, r *entities.DateRange) ([]EmployeeWork, error)
	PendingWork(ctx context.Context, employeeID string) ([]WorkEntry, error)
	InProgressWork(ctx context.Context, employeeID string) ([]WorkEntry, error)
	DailyRevenue(ctx context.Context, r *entities.DateRange) (DailyRevenue, error)
	PaymentsSummary(ctx context.Context, r *entities.DateRange) ([]PaymentSummary, error)
}

// ReportUseCase only reads. It never writes to either repository.
type ReportUseCase struct {
	orders  interfaces.IOrderRepository
	methods interfaces.IPaymentMethodRepository
	log     *logger.Logger
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(orders interfaces.IOrderRepository, methods interfaces.IPaymentMethodRepository, log *logger.Logger) *ReportUseCase {
	return &ReportUseCase{orders: orders, methods: methods, log: log}
}

func (u *ReportUseCase) CompletedWork(ctx context.Context, employeeID string, r *entities.DateRange) ([]EmployeeWork, error) {
	employeeID = strings.TrimSpace(employeeID)
	orders, err := u.allOrders(ctx, interfaces.OrderFilter{})
	if err != nil {
		return nil, err
	}

	groups := map[string]*EmployeeWork{}
	var order []string
	u.scan(orders, func(o entities.Order, s entities.Stage, a entities.Assignment) bool {
		if entities.NormalizeStageStatus(string(s.Status)) != entities.StageStatusDone ||
			entities.NormalizeAssignmentStatus(string(a.Status)) != entities.AssignmentStatusCompleted {
			return false
		}
		if employeeID != "" && a.EmployeeID != employeeID {
			return false
		}
		if !r.ContainsPtr(a.EndedAt) {
			return false
		}
		g, ok := groups[a.EmployeeID]
		if !ok {
			g = &EmployeeWork{EmployeeID: a.EmployeeID, EmployeeName: a.EmployeeName, Entries: []WorkEntry{}, TotalCommission: decimal.Zero}
			groups[a.EmployeeID] = g
			order = append(order, a.EmployeeID)
		}
		entry := newWorkEntry(o, s, a)
		g.Entries = append(g.Entries, entry)
		g.TotalCommission = g.TotalCommission.Add(entry.Commission)
		return true
	})

	out := make([]EmployeeWork, 0, len(order))
	for _, id := range order {
		out = append(out, *groups[id])
	}
	return out, nil
}

func (u *ReportUseCase) PendingWork(ctx context.Context, employeeID string) ([]WorkEntry, error) {
	return u.workByStatus(ctx, employeeID, entities.AssignmentStatusPending, false)
}

func (u *ReportUseCase) InProgressWork(ctx context.Context, employeeID string) ([]WorkEntry, error) {
	return u.workByStatus(ctx, employeeID, entities.AssignmentStatusInProcess, true)
}

func (u *ReportUseCase) workByStatus(ctx context.Context, employeeID string, status entities.AssignmentStatus, withDetail bool) ([]WorkEntry, error) {
	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" {
		return nil, ErrInvalidEmployeeID
	}
	orders, err := u.allOrders(ctx, interfaces.OrderFilter{})
	if err != nil {
		return nil, err
	}

	out := []WorkEntry{}
	u.scan(orders, func(o entities.Order, s entities.Stage, a entities.Assignment) bool {
		if a.EmployeeID != employeeID || entities.NormalizeAssignmentStatus(string(a.Status)) != status {
			return false
		}
		entry := newWorkEntry(o, s, a)
		if withDetail {
			if item, ok := o.ItemByID(a.ItemID); ok {
				entry.Detail = item.Detail
				entry.Images = append([]string{}, item.Images...)
			} else {
				entry.Images = []string{}
			}
			entry.Client = &ClientSnapshot{ID: o.ClientID, Name: o.ClientName}
		}
		out = append(out, entry)
		return true
	})
	return out, nil
}

func (u *ReportUseCase) DailyRevenue(ctx context.Context, r *entities.DateRange) (DailyRevenue, error) {
	orders, err := u.allOrders(ctx, interfaces.OrderFilter{})
	if err != nil {
		return DailyRevenue{}, err
	}
	catalog, err := u.methods.List(ctx)
	if err != nil {
		u.log.Error(ctx, "[report][usecase] list payment methods failed", err)
		return DailyRevenue{}, storageErr("list payment methods", err)
	}
	resolve := newMethodResolver(catalog)

	report := DailyRevenue{Total: decimal.Zero, Entries: []RevenueEntry{}, ByMethod: map[string]decimal.Decimal{}}
	for _, o := range orders {
		for _, ev := range o.PaymentHistory {
			if !r.Contains(ev.At) {
				continue
			}
			name := resolve.name(ev)
			report.Entries = append(report.Entries, RevenueEntry{
				OrderID:    o.ID,
				ClientName: o.ClientName,
				At:         ev.At,
				Amount:     ev.Amount,
				Status:     ev.Status,
				Method:     name,
			})
			report.Total = report.Total.Add(ev.Amount)
			report.ByMethod[name] = report.ByMethod[name].Add(ev.Amount)
		}
	}
	sort.SliceStable(report.Entries, func(i, j int) bool {
		a, b := report.Entries[i], report.Entries[j]
		if !a.At.Equal(b.At) {
			return a.At.After(b.At)
		}
		return a.OrderID < b.OrderID
	})
	return report, nil
}

func (u *ReportUseCase) PaymentsSummary(ctx context.Context, r *entities.DateRange) ([]PaymentSummary, error) {
	orders, err := u.allOrders(ctx, interfaces.OrderFilter{Range: r})
	if err != nil {
		return nil, err
	}
	out := make([]PaymentSummary, 0, len(orders))
	for _, o := range orders {
		total := o.Total()
		history := o.PaymentHistory
		if history == nil {
			history = []entities.PaymentEvent{}
		}
		out = append(out, PaymentSummary{
			OrderID:       o.ID,
			ClientID:      o.ClientID,
			ClientName:    o.ClientName,
			CreatedAt:     o.CreatedAt,
			PaymentStatus: o.PaymentStatus,
			TotalSettled:  o.TotalSettled,
			OrderTotal:    total,
			Outstanding:   total.Sub(o.TotalSettled),
			History:       history,
		})
	}
	return out, nil
}

func (u *ReportUseCase) allOrders(ctx context.Context, filter interfaces.OrderFilter) ([]entities.Order, error) {
	orders, err := u.orders.List(ctx, filter)
	if err != nil {
		u.log.Error(ctx, "[report][usecase] list orders failed", err)
		return nil, storageErr("list orders", err)
	}
	sort.SliceStable(orders, func(i, j int) bool {
		if !orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].CreatedAt.Before(orders[j].CreatedAt)
		}
		return orders[i].ID < orders[j].ID
	})
	return orders, nil
}

type workKey struct {
	orderID    string
	ordinal    int
	itemID     string
	employeeID string
}

// scan offers every assignment to visit and reports at most one accepted row per
// (order, stage, item, employee) key. A key is claimed only when visit returns
// true, so a rejected legacy duplicate never hides a later matching one.
func (u *ReportUseCase) scan(orders []entities.Order, visit func(entities.Order, entities.Stage, entities.Assignment) bool) {
	seen := map[workKey]struct{}{}
	for _, o := range orders {
		for _, s := range o.Stages {
			for _, a := range s.Assignments {
				k := workKey{orderID: o.ID, ordinal: s.Ordinal, itemID: a.ItemID, employeeID: a.EmployeeID}
				if _, dup := seen[k]; dup {
					continue
				}
				if visit(o, s, a) {
					seen[k] = struct{}{}
				}
			}
		}
	}
}

func newWorkEntry(o entities.Order, s entities.Stage, a entities.Assignment) WorkEntry {
	qty, price := 1, decimal.Zero
	if item, ok := o.ItemByID(a.ItemID); ok {
		qty, price = item.Quantity, item.Price
	}
	return WorkEntry{
		OrderID:         o.ID,
		StageOrdinal:    s.Ordinal,
		StageName:       s.Name,
		StageStatus:     s.Status,
		StageStartedAt:  s.StartedAt,
		StageEndedAt:    s.EndedAt,
		ItemID:          a.ItemID,
		EmployeeID:      a.EmployeeID,
		EmployeeName:    a.EmployeeName,
		Status:          a.Status,
		StartedAt:       a.StartedAt,
		EndedAt:         a.EndedAt,
		ItemDescription: a.ItemDescription,
		ProductionCost:  a.ProductionCost,
		Quantity:        qty,
		ItemPrice:       price,
		Commission:      a.ProductionCost.Mul(decimal.NewFromInt(int64(qty))),
	}
}

// methodResolver maps a stored reference to a display name: id, then the id
// compared as plain text, then name. Unresolved references keep their raw value.
type methodResolver struct {
	byID     map[string]string
	byIDText map[string]string
	byName   map[string]string
}

func newMethodResolver(catalog []entities.PaymentMethod) methodResolver {
	r := methodResolver{
		byID:     make(map[string]string, len(catalog)),
		byIDText: make(map[string]string, len(catalog)),
		byName:   make(map[string]string, len(catalog)),
	}
	for _, m := range catalog {
		r.byID[m.ID] = m.Name
		r.byIDText[strings.ToLower(strings.TrimSpace(m.ID))] = m.Name
		r.byName[entities.NormalizeMethodName(m.Name)] = m.Name
	}
	return r
}

func (r methodResolver) name(ev entities.PaymentEvent) string {
	if ev.MethodID != "" {
		if n, ok := r.byID[ev.MethodID]; ok {
			return n
		}
		if ev.MethodName != "" {
			return ev.MethodName
		}
	}
	ref := ev.Reference()
	if ref == "" {
		return unknownMethod
	}
	if n, ok := r.byID[ref]; ok {
		return n
	}
	if n, ok := r.byIDText[strings.ToLower(strings.TrimSpace(ref))]; ok {
		return n
	}
	if n, ok := r.byName[entities.NormalizeMethodName(ref)]; ok {
		return n
	}
	return ref
}
