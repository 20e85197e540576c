package response

import (
	"time"

	"github.com/shopspring/decimal"

	"fulfillment_service/internal/usecase"
)

type ClientSnapshotResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type WorkEntryResponse struct {
	OrderID        string     `json:"order_id"`
	StageOrdinal   int        `json:"stage_ordinal"`
	StageName      string     `json:"stage_name"`
	StageStatus    string     `json:"stage_status"`
	StageStartedAt *time.Time `json:"stage_started_at,omitempty"`
	StageEndedAt   *time.Time `json:"stage_ended_at,omitempty"`

	ItemID          string          `json:"item_id"`
	EmployeeID      string          `json:"employee_id"`
	EmployeeName    string          `json:"employee_name"`
	Status          string          `json:"status"`
	StartedAt       *time.Time      `json:"started_at,omitempty"`
	EndedAt         *time.Time      `json:"ended_at,omitempty"`
	ItemDescription string          `json:"item_description"`
	ProductionCost  decimal.Decimal `json:"production_cost"`
	Quantity        int             `json:"quantity"`
	ItemPrice       decimal.Decimal `json:"item_price"`
	Commission      decimal.Decimal `json:"commission"`

	Detail string                  `json:"detail,omitempty"`
	Images []string                `json:"images,omitempty"`
	Client *ClientSnapshotResponse `json:"client,omitempty"`
}

type EmployeeWorkResponse struct {
	EmployeeID      string              `json:"employee_id"`
	EmployeeName    string              `json:"employee_name"`
	Entries         []WorkEntryResponse `json:"entries"`
	TotalCommission decimal.Decimal     `json:"total_commission"`
}

type RevenueEntryResponse struct {
	OrderID    string          `json:"order_id"`
	ClientName string          `json:"client_name"`
	At         time.Time       `json:"at"`
	Amount     decimal.Decimal `json:"amount"`
	Status     string          `json:"status"`
	Method     string          `json:"method"`
}

type DailyRevenueResponse struct {
	Total    decimal.Decimal            `json:"total"`
	Entries  []RevenueEntryResponse     `json:"entries"`
	ByMethod map[string]decimal.Decimal `json:"by_method"`
}

type PaymentSummaryResponse struct {
	OrderID       string                 `json:"order_id"`
	ClientID      string                 `json:"client_id"`
	ClientName    string                 `json:"client_name"`
	CreatedAt     time.Time              `json:"created_at"`
	PaymentStatus string                 `json:"payment_status"`
	TotalSettled  decimal.Decimal        `json:"total_settled"`
	OrderTotal    decimal.Decimal        `json:"order_total"`
	Outstanding   decimal.Decimal        `json:"outstanding"`
	History       []PaymentEventResponse `json:"history"`
}

func FromWorkEntries(entries []usecase.WorkEntry) []WorkEntryResponse {
	out := make([]WorkEntryResponse, 0, len(entries))
	for _, e := range entries {
		w := WorkEntryResponse{
			OrderID:         e.OrderID,
			StageOrdinal:    e.StageOrdinal,
			StageName:       e.StageName,
			StageStatus:     string(e.StageStatus),
			StageStartedAt:  e.StageStartedAt,
			StageEndedAt:    e.StageEndedAt,
			ItemID:          e.ItemID,
			EmployeeID:      e.EmployeeID,
			EmployeeName:    e.EmployeeName,
			Status:          string(e.Status),
			StartedAt:       e.StartedAt,
			EndedAt:         e.EndedAt,
			ItemDescription: e.ItemDescription,
			ProductionCost:  e.ProductionCost,
			Quantity:        e.Quantity,
			ItemPrice:       e.ItemPrice,
			Commission:      e.Commission,
			Detail:          e.Detail,
			Images:          e.Images,
		}
		if e.Client != nil {
			w.Client = &ClientSnapshotResponse{ID: e.Client.ID, Name: e.Client.Name}
		}
		out = append(out, w)
	}
	return out
}

func FromEmployeeWork(groups []usecase.EmployeeWork) []EmployeeWorkResponse {
	out := make([]EmployeeWorkResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, EmployeeWorkResponse{
			EmployeeID:      g.EmployeeID,
			EmployeeName:    g.EmployeeName,
			Entries:         FromWorkEntries(g.Entries),
			TotalCommission: g.TotalCommission,
		})
	}
	return out
}

func FromDailyRevenue(d usecase.DailyRevenue) DailyRevenueResponse {
	entries := make([]RevenueEntryResponse, 0, len(d.Entries))
	for _, e := range d.Entries {
		entries = append(entries, RevenueEntryResponse{
			OrderID:    e.OrderID,
			ClientName: e.ClientName,
			At:         e.At,
			Amount:     e.Amount,
			Status:     string(e.Status),
			Method:     e.Method,
		})
	}
	byMethod := d.ByMethod
	if byMethod == nil {
		byMethod = map[string]decimal.Decimal{}
	}
	return DailyRevenueResponse{Total: d.Total, Entries: entries, ByMethod: byMethod}
}

func FromPaymentsSummary(rows []usecase.PaymentSummary) []PaymentSummaryResponse {
	out := make([]PaymentSummaryResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, PaymentSummaryResponse{
			OrderID:       r.OrderID,
			ClientID:      r.ClientID,
			ClientName:    r.ClientName,
			CreatedAt:     r.CreatedAt,
			PaymentStatus: string(r.PaymentStatus),
			TotalSettled:  r.TotalSettled,
			OrderTotal:    r.OrderTotal,
			Outstanding:   r.Outstanding,
			History:       FromPaymentEvents(r.History),
		})
	}
	return out
}
