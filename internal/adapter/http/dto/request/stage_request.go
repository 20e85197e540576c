package request

import (
	"github.com/shopspring/decimal"

	"fulfillment_service/internal/domain/entities"
	"fulfillment_service/internal/usecase"
)

type AssignmentRequest struct {
	ItemID          string          `json:"item_id" binding:"required"`
	EmployeeID      string          `json:"employee_id" binding:"required"`
	EmployeeName    string          `json:"employee_name"`
	ItemDescription string          `json:"item_description"`
	ProductionCost  decimal.Decimal `json:"production_cost"`
	Status          string          `json:"status"`
}

// AdvanceStageRequest moves a stage. Timestamp is "start", "end" or empty.
type AdvanceStageRequest struct {
	Status        string              `json:"status" binding:"required,stage_status"`
	Timestamp     string              `json:"timestamp" binding:"omitempty,oneof=start end inicio fin"`
	Assignments   []AssignmentRequest `json:"assignments" binding:"dive"`
	OverallStatus *string             `json:"overall_status"`
}

func (r AdvanceStageRequest) ToInput(orderID string, ordinal int) usecase.AdvanceStageInput {
	assignments := make([]entities.Assignment, 0, len(r.Assignments))
	for _, a := range r.Assignments {
		assignments = append(assignments, entities.Assignment{
			ItemID:          a.ItemID,
			EmployeeID:      a.EmployeeID,
			EmployeeName:    a.EmployeeName,
			ItemDescription: a.ItemDescription,
			ProductionCost:  a.ProductionCost,
			Status:          entities.AssignmentStatus(a.Status),
		})
	}
	return usecase.AdvanceStageInput{
		OrderID:       orderID,
		Ordinal:       ordinal,
		Status:        r.Status,
		Directive:     r.Timestamp,
		Assignments:   assignments,
		OverallStatus: r.OverallStatus,
	}
}

type FinalizeStageRequest struct {
	OverallStatus *string `json:"overall_status"`
}

// UpdateAssignmentRequest defaults Status to completed when empty.
type UpdateAssignmentRequest struct {
	ItemID     string `json:"item_id" binding:"required"`
	EmployeeID string `json:"employee_id" binding:"required"`
	Status     string `json:"status"`
}

func (r UpdateAssignmentRequest) ToInput(orderID string, ordinal int) usecase.UpdateAssignmentInput {
	return usecase.UpdateAssignmentInput{
		OrderID:    orderID,
		Ordinal:    ordinal,
		ItemID:     r.ItemID,
		EmployeeID: r.EmployeeID,
		Status:     r.Status,
	}
}

type OverallStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
