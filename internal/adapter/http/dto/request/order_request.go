package request

import (
	"strings"

	"github.com/shopspring/decimal"

	"fulfillment_service/internal/domain/entities"
	"fulfillment_service/internal/usecase"
	"fulfillment_service/internal/usecase/interfaces"
)

type LineItemRequest struct {
	ID             string          `json:"id"`
	Code           string          `json:"code"`
	Name           string          `json:"name" binding:"required"`
	Description    string          `json:"description"`
	Category       string          `json:"category"`
	Price          decimal.Decimal `json:"price"`
	Cost           decimal.Decimal `json:"cost"`
	ProductionCost decimal.Decimal `json:"production_cost"`
	Quantity       int             `json:"quantity" binding:"gte=0"`
	Active         *bool           `json:"active"`
	Detail         string          `json:"detail"`
	Images         []string        `json:"images"`
}

type CreateOrderRequest struct {
	ClientID      string            `json:"client_id" binding:"required"`
	ClientName    string            `json:"client_name" binding:"required"`
	OverallStatus string            `json:"overall_status"`
	Items         []LineItemRequest `json:"items" binding:"dive"`
	Stages        []string          `json:"stages"`
}

func (r CreateOrderRequest) ToInput() usecase.CreateOrderInput {
	items := make([]entities.LineItem, 0, len(r.Items))
	for _, it := range r.Items {
		active := true
		if it.Active != nil {
			active = *it.Active
		}
		items = append(items, entities.LineItem{
			ID:             strings.TrimSpace(it.ID),
			Code:           it.Code,
			Name:           it.Name,
			Description:    it.Description,
			Category:       it.Category,
			Price:          it.Price,
			Cost:           it.Cost,
			ProductionCost: it.ProductionCost,
			Quantity:       it.Quantity,
			Active:         active,
			Detail:         it.Detail,
			Images:         it.Images,
		})
	}
	return usecase.CreateOrderInput{
		ClientID:      r.ClientID,
		ClientName:    r.ClientName,
		OverallStatus: r.OverallStatus,
		Items:         items,
		StageNames:    r.Stages,
	}
}

// OrderListQuery is bound from ?status=a&status=b&from=YYYY-MM-DD&to=YYYY-MM-DD.
type OrderListQuery struct {
	Status []string `form:"status"`
	From   string   `form:"from" binding:"omitempty,ymd"`
	To     string   `form:"to" binding:"omitempty,ymd"`
}

func (q OrderListQuery) ToFilter() (interfaces.OrderFilter, error) {
	r, err := entities.ParseOrderDateRange(q.From, q.To)
	if err != nil {
		return interfaces.OrderFilter{}, err
	}
	return interfaces.OrderFilter{Statuses: q.Status, Range: r}, nil
}
