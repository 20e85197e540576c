package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"fulfillment_service/internal/adapter/http/handlers/mocks"
	"fulfillment_service/internal/domain/entities"
	"fulfillment_service/internal/usecase"
)

func newReportRouter(h *ReportHandler) *gin.Engine {
	r := gin.New()
	g := r.Group("/v1/reports")
	g.GET("/commissions/completed", h.CompletedWork)
	g.GET("/commissions/pending", h.PendingWork)
	g.GET("/commissions/in-progress", h.InProgressWork)
	g.GET("/revenue/daily", h.DailyRevenue)
	g.GET("/payments", h.PaymentsSummary)
	return r
}

func TestReportHandler_CompletedWork(t *testing.T) {
	t.Run("range and employee forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportUseCase(ctrl)
		h := NewReportHandler(uc)

		uc.EXPECT().CompletedWork(gomock.Any(), "emp-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, r *entities.DateRange) ([]usecase.EmployeeWork, error) {
				if r == nil || r.From.Format(entities.DateLayout) != "2024-03-01" {
					t.Fatalf("unexpected range: %+v", r)
				}
				return []usecase.EmployeeWork{{EmployeeID: "emp-1", TotalCommission: decimal.NewFromInt(30)}}, nil
			})

		w := doJSON(newReportRouter(h), http.MethodGet, "/v1/reports/commissions/completed?employee_id=emp-1&from=2024-03-01&to=2024-03-31", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if len(body) != 1 || body[0]["total_commission"] != "30" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("bad date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewReportHandler(mocks.NewMockIReportUseCase(ctrl))

		w := doJSON(newReportRouter(h), http.MethodGet, "/v1/reports/commissions/completed?to=tomorrow", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestReportHandler_WorkByEmployee(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIReportUseCase(ctrl)
	h := NewReportHandler(uc)
	r := newReportRouter(h)

	uc.EXPECT().PendingWork(gomock.Any(), "").Return(nil, usecase.ErrInvalidEmployeeID)
	uc.EXPECT().InProgressWork(gomock.Any(), "emp-1").Return([]usecase.WorkEntry{
		{OrderID: testOrderID, EmployeeID: "emp-1", Client: &usecase.ClientSnapshot{ID: "c-1", Name: "ACME"}, Images: []string{"a.png"}},
	}, nil)

	if w := doJSON(r, http.MethodGet, "/v1/reports/commissions/pending", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("pending: expected 400, got %d", w.Code)
	}

	w := doJSON(r, http.MethodGet, "/v1/reports/commissions/in-progress?employee_id=emp-1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("in-progress: expected 200, got %d", w.Code)
	}
	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	client, _ := body[0]["client"].(map[string]any)
	if client["name"] != "ACME" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestReportHandler_Revenue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIReportUseCase(ctrl)
	h := NewReportHandler(uc)
	r := newReportRouter(h)

	uc.EXPECT().DailyRevenue(gomock.Any(), (*entities.DateRange)(nil)).Return(usecase.DailyRevenue{
		Total:    decimal.NewFromInt(15),
		ByMethod: map[string]decimal.Decimal{"Zelle": decimal.NewFromInt(15)},
	}, nil)
	uc.EXPECT().PaymentsSummary(gomock.Any(), gomock.Any()).Return(nil, entities.StorageFailure("list orders", errors.New("down")))

	w := doJSON(r, http.MethodGet, "/v1/reports/revenue/daily", "")
	if w.Code != http.StatusOK {
		t.Fatalf("revenue: expected 200, got %d", w.Code)
	}
	var revenue map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &revenue); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if revenue["total"] != "15" {
		t.Fatalf("unexpected body: %v", revenue)
	}

	if w := doJSON(r, http.MethodGet, "/v1/reports/payments?from=2024-01-01", ""); w.Code != http.StatusServiceUnavailable {
		t.Fatalf("payments: expected 503, got %d", w.Code)
	}
}
