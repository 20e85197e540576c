package repository

import (
	"fulfillment_service/internal/domain/entities"
)

type orderItem struct {
	ID             string             `dynamodbav:"id"`
	ClientID       string             `dynamodbav:"client_id"`
	ClientName     string             `dynamodbav:"client_name"`
	CreatedBy      string             `dynamodbav:"created_by"`
	CreatedAt      flexTime           `dynamodbav:"created_at"`
	UpdatedAt      flexTime           `dynamodbav:"updated_at"`
	OverallStatus  string             `dynamodbav:"overall_status"`
	Items          []lineItemItem     `dynamodbav:"items"`
	Stages         []stageItem        `dynamodbav:"stages"`
	PaymentStatus  string             `dynamodbav:"payment_status"`
	PaymentHistory []paymentEventItem `dynamodbav:"payment_history"`
	TotalSettled   money              `dynamodbav:"total_settled"`
	TotalizedAt    *flexTime          `dynamodbav:"totalized_at,omitempty"`
}

type lineItemItem struct {
	ID             string   `dynamodbav:"id"`
	Code           string   `dynamodbav:"code"`
	Name           string   `dynamodbav:"name"`
	Description    string   `dynamodbav:"description"`
	Category       string   `dynamodbav:"category"`
	Price          money    `dynamodbav:"price"`
	Cost           money    `dynamodbav:"cost"`
	ProductionCost money    `dynamodbav:"production_cost"`
	Quantity       int      `dynamodbav:"quantity"`
	Active         bool     `dynamodbav:"active"`
	Detail         string   `dynamodbav:"detail"`
	Images         []string `dynamodbav:"images"`
}

type stageItem struct {
	Ordinal     int              `dynamodbav:"ordinal"`
	Name        string           `dynamodbav:"name"`
	Status      string           `dynamodbav:"status"`
	StartedAt   *flexTime        `dynamodbav:"started_at,omitempty"`
	EndedAt     *flexTime        `dynamodbav:"ended_at,omitempty"`
	Assignments []assignmentItem `dynamodbav:"assignments"`
}

type assignmentItem struct {
	ItemID          string    `dynamodbav:"item_id"`
	EmployeeID      string    `dynamodbav:"employee_id"`
	EmployeeName    string    `dynamodbav:"employee_name"`
	Status          string    `dynamodbav:"status"`
	ItemDescription string    `dynamodbav:"item_description"`
	ProductionCost  money     `dynamodbav:"production_cost"`
	StartedAt       *flexTime `dynamodbav:"started_at,omitempty"`
	EndedAt         *flexTime `dynamodbav:"ended_at,omitempty"`
}

type paymentEventItem struct {
	At         flexTime `dynamodbav:"at"`
	Amount     money    `dynamodbav:"amount"`
	Status     string   `dynamodbav:"status"`
	MethodID   string   `dynamodbav:"method_id,omitempty"`
	MethodName string   `dynamodbav:"method_name,omitempty"`
	MethodRef  string   `dynamodbav:"method_ref,omitempty"`
}

func toOrderItem(o entities.Order) orderItem {
	it := orderItem{
		ID:             o.ID,
		ClientID:       o.ClientID,
		ClientName:     o.ClientName,
		CreatedBy:      o.CreatedBy,
		CreatedAt:      newFlexTime(o.CreatedAt),
		UpdatedAt:      newFlexTime(o.UpdatedAt),
		OverallStatus:  o.OverallStatus,
		Items:          make([]lineItemItem, 0, len(o.Items)),
		Stages:         toStageItems(o.Stages),
		PaymentStatus:  string(o.PaymentStatus),
		PaymentHistory: make([]paymentEventItem, 0, len(o.PaymentHistory)),
		TotalSettled:   newMoney(o.TotalSettled),
		TotalizedAt:    newFlexTimePtr(o.TotalizedAt),
	}
	for _, li := range o.Items {
		images := li.Images
		if images == nil {
			images = []string{}
		}
		it.Items = append(it.Items, lineItemItem{
			ID:             li.ID,
			Code:           li.Code,
			Name:           li.Name,
			Description:    li.Description,
			Category:       li.Category,
			Price:          newMoney(li.Price),
			Cost:           newMoney(li.Cost),
			ProductionCost: newMoney(li.ProductionCost),
			Quantity:       li.Quantity,
			Active:         li.Active,
			Detail:         li.Detail,
			Images:         images,
		})
	}
	for _, ev := range o.PaymentHistory {
		it.PaymentHistory = append(it.PaymentHistory, toPaymentEventItem(ev))
	}
	return it
}

func toStageItems(stages []entities.Stage) []stageItem {
	out := make([]stageItem, 0, len(stages))
	for _, s := range stages {
		si := stageItem{
			Ordinal:     s.Ordinal,
			Name:        s.Name,
			Status:      string(s.Status),
			StartedAt:   newFlexTimePtr(s.StartedAt),
			EndedAt:     newFlexTimePtr(s.EndedAt),
			Assignments: make([]assignmentItem, 0, len(s.Assignments)),
		}
		for _, a := range s.Assignments {
			si.Assignments = append(si.Assignments, assignmentItem{
				ItemID:          a.ItemID,
				EmployeeID:      a.EmployeeID,
				EmployeeName:    a.EmployeeName,
				Status:          string(a.Status),
				ItemDescription: a.ItemDescription,
				ProductionCost:  newMoney(a.ProductionCost),
				StartedAt:       newFlexTimePtr(a.StartedAt),
				EndedAt:         newFlexTimePtr(a.EndedAt),
			})
		}
		out = append(out, si)
	}
	return out
}

func toPaymentEventItem(ev entities.PaymentEvent) paymentEventItem {
	return paymentEventItem{
		At:         newFlexTime(ev.At),
		Amount:     newMoney(ev.Amount),
		Status:     string(ev.Status),
		MethodID:   ev.MethodID,
		MethodName: ev.MethodName,
		MethodRef:  ev.MethodRef,
	}
}

// fromOrderItem maps a stored document back to the entity. Status values written
// by older clients (Spanish labels, mixed case) are normalized here.
func fromOrderItem(it orderItem) entities.Order {
	o := entities.Order{
		ID:             it.ID,
		ClientID:       it.ClientID,
		ClientName:     it.ClientName,
		CreatedBy:      it.CreatedBy,
		CreatedAt:      it.CreatedAt.Time,
		UpdatedAt:      it.UpdatedAt.Time,
		OverallStatus:  it.OverallStatus,
		Items:          make([]entities.LineItem, 0, len(it.Items)),
		Stages:         make([]entities.Stage, 0, len(it.Stages)),
		PaymentStatus:  entities.NormalizePaymentStatus(it.PaymentStatus),
		PaymentHistory: make([]entities.PaymentEvent, 0, len(it.PaymentHistory)),
		TotalSettled:   it.TotalSettled.Decimal,
		TotalizedAt:    it.TotalizedAt.ptr(),
	}
	for _, li := range it.Items {
		o.Items = append(o.Items, entities.LineItem{
			ID:             li.ID,
			Code:           li.Code,
			Name:           li.Name,
			Description:    li.Description,
			Category:       li.Category,
			Price:          li.Price.Decimal,
			Cost:           li.Cost.Decimal,
			ProductionCost: li.ProductionCost.Decimal,
			Quantity:       li.Quantity,
			Active:         li.Active,
			Detail:         li.Detail,
			Images:         li.Images,
		})
	}
	for _, si := range it.Stages {
		s := entities.Stage{
			Ordinal:     si.Ordinal,
			Name:        si.Name,
			Status:      entities.NormalizeStageStatus(si.Status),
			StartedAt:   si.StartedAt.ptr(),
			EndedAt:     si.EndedAt.ptr(),
			Assignments: make([]entities.Assignment, 0, len(si.Assignments)),
		}
		for _, a := range si.Assignments {
			s.Assignments = append(s.Assignments, entities.Assignment{
				ItemID:          a.ItemID,
				EmployeeID:      a.EmployeeID,
				EmployeeName:    a.EmployeeName,
				Status:          entities.NormalizeAssignmentStatus(a.Status),
				ItemDescription: a.ItemDescription,
				ProductionCost:  a.ProductionCost.Decimal,
				StartedAt:       a.StartedAt.ptr(),
				EndedAt:         a.EndedAt.ptr(),
			})
		}
		o.Stages = append(o.Stages, s)
	}
	for _, ev := range it.PaymentHistory {
		o.PaymentHistory = append(o.PaymentHistory, entities.PaymentEvent{
			At:         ev.At.Time,
			Amount:     ev.Amount.Decimal,
			Status:     entities.NormalizePaymentStatus(ev.Status),
			MethodID:   ev.MethodID,
			MethodName: ev.MethodName,
			MethodRef:  ev.MethodRef,
		})
	}
	return o
}
