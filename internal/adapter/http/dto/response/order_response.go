package response

import (
	"time"

	"github.com/shopspring/decimal"

	"fulfillment_service/internal/domain/entities"
)

type LineItemResponse struct {
	ID             string          `json:"id"`
	Code           string          `json:"code,omitempty"`
	Name           string          `json:"name"`
	Description    string          `json:"description,omitempty"`
	Category       string          `json:"category,omitempty"`
	Price          decimal.Decimal `json:"price"`
	Cost           decimal.Decimal `json:"cost"`
	ProductionCost decimal.Decimal `json:"production_cost"`
	Quantity       int             `json:"quantity"`
	Active         bool            `json:"active"`
	Detail         string          `json:"detail,omitempty"`
	Images         []string        `json:"images"`
}

type AssignmentResponse struct {
	ItemID          string          `json:"item_id"`
	EmployeeID      string          `json:"employee_id"`
	EmployeeName    string          `json:"employee_name"`
	ItemDescription string          `json:"item_description"`
	ProductionCost  decimal.Decimal `json:"production_cost"`
	Status          string          `json:"status"`
	StartedAt       *time.Time      `json:"started_at,omitempty"`
	EndedAt         *time.Time      `json:"ended_at,omitempty"`
}

type StageResponse struct {
	Ordinal     int                  `json:"ordinal"`
	Name        string               `json:"name"`
	Status      string               `json:"status"`
	StartedAt   *time.Time           `json:"started_at,omitempty"`
	EndedAt     *time.Time           `json:"ended_at,omitempty"`
	Assignments []AssignmentResponse `json:"assignments"`
}

type PaymentEventResponse struct {
	At         time.Time       `json:"at"`
	Amount     decimal.Decimal `json:"amount"`
	Status     string          `json:"status"`
	MethodID   string          `json:"method_id,omitempty"`
	MethodName string          `json:"method_name,omitempty"`
	MethodRef  string          `json:"method_ref,omitempty"`
}

type OrderResponse struct {
	ID             string                 `json:"id"`
	ClientID       string                 `json:"client_id"`
	ClientName     string                 `json:"client_name"`
	CreatedBy      string                 `json:"created_by"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
	OverallStatus  string                 `json:"overall_status"`
	Items          []LineItemResponse     `json:"items"`
	Stages         []StageResponse        `json:"stages"`
	PaymentStatus  string                 `json:"payment_status"`
	PaymentHistory []PaymentEventResponse `json:"payment_history"`
	TotalSettled   decimal.Decimal        `json:"total_settled"`
	Total          decimal.Decimal        `json:"total"`
	TotalizedAt    *time.Time             `json:"totalized_at,omitempty"`
}

func FromOrder(o entities.Order) OrderResponse {
	items := make([]LineItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		images := it.Images
		if images == nil {
			images = []string{}
		}
		items = append(items, LineItemResponse{
			ID:             it.ID,
			Code:           it.Code,
			Name:           it.Name,
			Description:    it.Description,
			Category:       it.Category,
			Price:          it.Price,
			Cost:           it.Cost,
			ProductionCost: it.ProductionCost,
			Quantity:       it.Quantity,
			Active:         it.Active,
			Detail:         it.Detail,
			Images:         images,
		})
	}
	stages := make([]StageResponse, 0, len(o.Stages))
	for _, s := range o.Stages {
		stages = append(stages, FromStage(s))
	}
	return OrderResponse{
		ID:             o.ID,
		ClientID:       o.ClientID,
		ClientName:     o.ClientName,
		CreatedBy:      o.CreatedBy,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
		OverallStatus:  o.OverallStatus,
		Items:          items,
		Stages:         stages,
		PaymentStatus:  string(o.PaymentStatus),
		PaymentHistory: FromPaymentEvents(o.PaymentHistory),
		TotalSettled:   o.TotalSettled,
		Total:          o.Total(),
		TotalizedAt:    o.TotalizedAt,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}

func FromStage(s entities.Stage) StageResponse {
	assignments := make([]AssignmentResponse, 0, len(s.Assignments))
	for _, a := range s.Assignments {
		assignments = append(assignments, AssignmentResponse{
			ItemID:          a.ItemID,
			EmployeeID:      a.EmployeeID,
			EmployeeName:    a.EmployeeName,
			ItemDescription: a.ItemDescription,
			ProductionCost:  a.ProductionCost,
			Status:          string(a.Status),
			StartedAt:       a.StartedAt,
			EndedAt:         a.EndedAt,
		})
	}
	return StageResponse{
		Ordinal:     s.Ordinal,
		Name:        s.Name,
		Status:      string(s.Status),
		StartedAt:   s.StartedAt,
		EndedAt:     s.EndedAt,
		Assignments: assignments,
	}
}

func FromPaymentEvents(events []entities.PaymentEvent) []PaymentEventResponse {
	out := make([]PaymentEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, FromPaymentEvent(e))
	}
	return out
}

func FromPaymentEvent(e entities.PaymentEvent) PaymentEventResponse {
	return PaymentEventResponse{
		At:         e.At,
		Amount:     e.Amount,
		Status:     string(e.Status),
		MethodID:   e.MethodID,
		MethodName: e.MethodName,
		MethodRef:  e.MethodRef,
	}
}
