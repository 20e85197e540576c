package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"fulfillment_service/internal/domain/entities"
	"fulfillment_service/internal/usecase"
)

func TestFromOrder(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	o := entities.Order{
		ID:            "ord-1",
		ClientID:      "cli-1",
		ClientName:    "ACME",
		CreatedAt:     now,
		UpdatedAt:     now,
		OverallStatus: "orden1",
		Items: []entities.LineItem{
			{ID: "it-1", Name: "Gate", Price: decimal.RequireFromString("100.50"), Quantity: 2},
		},
		Stages: []entities.Stage{
			{Ordinal: 1, Name: "Herreria", Status: entities.StageStatusInProgress, StartedAt: &now,
				Assignments: []entities.Assignment{{ItemID: "it-1", EmployeeID: "emp-1", Status: entities.AssignmentStatusPending}}},
		},
		PaymentStatus: entities.PaymentStatusPartial,
		PaymentHistory: []entities.PaymentEvent{
			{At: now, Amount: decimal.RequireFromString("50"), Status: entities.PaymentStatusPartial, MethodID: "m-1", MethodName: "Zelle"},
		},
		TotalSettled: decimal.RequireFromString("50"),
	}

	res := FromOrder(o)
	if res.ID != "ord-1" || res.ClientName != "ACME" || res.PaymentStatus != "partial" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if !res.Total.Equal(decimal.RequireFromString("201")) {
		t.Fatalf("unexpected total: %s", res.Total)
	}
	if len(res.Items) != 1 || res.Items[0].Images == nil {
		t.Fatalf("expected items with non-nil images: %+v", res.Items)
	}
	if len(res.Stages) != 1 || res.Stages[0].Status != "in_progress" || len(res.Stages[0].Assignments) != 1 {
		t.Fatalf("unexpected stages: %+v", res.Stages)
	}
	if len(res.PaymentHistory) != 1 || res.PaymentHistory[0].MethodName != "Zelle" {
		t.Fatalf("unexpected history: %+v", res.PaymentHistory)
	}

	body, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(body), `"total_settled":"50"`) {
		t.Fatalf("expected decimal string amounts, got %s", body)
	}
	if strings.Contains(string(body), "totalized_at") {
		t.Fatalf("expected totalized_at to be omitted, got %s", body)
	}
}

func TestFromPaymentRecord(t *testing.T) {
	rec := FromPaymentRecord(usecase.PaymentRecord{Order: entities.Order{ID: "ord-1"}})
	if rec.Event != nil {
		t.Fatalf("expected no event for status-only update")
	}

	ev := entities.PaymentEvent{Amount: decimal.RequireFromString("10.10"), Status: entities.PaymentStatusPaid}
	rec = FromPaymentRecord(usecase.PaymentRecord{Order: entities.Order{ID: "ord-1"}, Event: &ev})
	if rec.Event == nil || rec.Event.Status != "paid" || !rec.Event.Amount.Equal(ev.Amount) {
		t.Fatalf("unexpected event: %+v", rec.Event)
	}
}

func TestFromDailyRevenue_NilMap(t *testing.T) {
	res := FromDailyRevenue(usecase.DailyRevenue{Total: decimal.Zero})
	if res.ByMethod == nil || res.Entries == nil {
		t.Fatalf("expected empty collections, got %+v", res)
	}
}
