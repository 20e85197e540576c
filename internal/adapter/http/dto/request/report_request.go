package request

import "fulfillment_service/internal/domain/entities"

type ReportQuery struct {
	EmployeeID string `form:"employee_id"`
	From       string `form:"from" binding:"omitempty,ymd"`
	To         string `form:"to" binding:"omitempty,ymd"`
}

func (q ReportQuery) DateRange() (*entities.DateRange, error) {
	return entities.ParseDateRange(q.From, q.To)
}
