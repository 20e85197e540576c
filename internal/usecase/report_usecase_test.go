package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"fulfillment_service/internal/adapter/persistence/memory"
	"fulfillment_service/internal/domain/entities"
	"fulfillment_service/internal/infrastructure/logger"
	"fulfillment_service/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(day, hour int) *time.Time {
	t := time.Date(2024, 3, day, hour, 0, 0, 0, time.UTC)
	return &t
}

// seedWorkOrders stores two orders covering done, in-process and pending work.
func seedWorkOrders(t *testing.T, store *memory.OrderStore) {
	t.Helper()
	ctx := context.Background()

	first := entities.Order{
		ID:         "00000000-0000-0000-0000-000000000001",
		ClientID:   "C-1",
		ClientName: "Acme",
		CreatedAt:  *at(1, 8),
		Items: []entities.LineItem{
			{ID: "I-1", Price: decimal.NewFromInt(100), Quantity: 3, Detail: "blue", Images: []string{"a.png"}},
			{ID: "I-2", Price: decimal.NewFromInt(40), Quantity: 1},
		},
		Stages: []entities.Stage{
			{
				Ordinal: 1, Name: "Cut", Status: entities.StageStatusDone, StartedAt: at(1, 9), EndedAt: at(2, 9),
				Assignments: []entities.Assignment{
					{ItemID: "I-1", EmployeeID: "E-1", EmployeeName: "Ana", Status: entities.AssignmentStatusCompleted, ProductionCost: decimal.NewFromInt(5), EndedAt: at(2, 9)},
					// Same key twice in legacy data must be counted once.
					{ItemID: "I-1", EmployeeID: "E-1", EmployeeName: "Ana", Status: entities.AssignmentStatusCompleted, ProductionCost: decimal.NewFromInt(5), EndedAt: at(2, 9)},
					{ItemID: "I-2", EmployeeID: "E-2", EmployeeName: "Luis", Status: entities.AssignmentStatusCompleted, ProductionCost: decimal.NewFromInt(7), EndedAt: at(5, 9)},
				},
			},
			{
				Ordinal: 2, Name: "Paint", Status: entities.StageStatusInProgress, StartedAt: at(3, 9),
				Assignments: []entities.Assignment{
					{ItemID: "I-1", EmployeeID: "E-1", EmployeeName: "Ana", Status: entities.AssignmentStatusInProcess, ProductionCost: decimal.NewFromInt(2)},
					{ItemID: "I-2", EmployeeID: "E-1", EmployeeName: "Ana", Status: entities.AssignmentStatusPending},
				},
			},
		},
	}
	second := entities.Order{
		ID:         "00000000-0000-0000-0000-000000000002",
		ClientID:   "C-2",
		ClientName: "Globex",
		CreatedAt:  *at(4, 8),
		Items:      []entities.LineItem{{ID: "I-9", Price: decimal.NewFromInt(10), Quantity: 2}},
		Stages: []entities.Stage{
			{
				Ordinal: 1, Name: "Cut", Status: entities.StageStatusInProgress,
				Assignments: []entities.Assignment{
					// Completed but the stage is still open: not yet billable.
					{ItemID: "I-9", EmployeeID: "E-1", EmployeeName: "Ana", Status: entities.AssignmentStatusCompleted, ProductionCost: decimal.NewFromInt(1), EndedAt: at(4, 9)},
					// Item removed from the order: quantity falls back to 1.
					{ItemID: "I-gone", EmployeeID: "E-1", EmployeeName: "Ana", Status: entities.AssignmentStatusInProcess},
				},
			},
		},
	}
	for _, o := range []entities.Order{first, second} {
		_, err := store.Create(ctx, o)
		require.NoError(t, err)
	}
}

func newReports(t *testing.T) (*usecase.ReportUseCase, *memory.OrderStore, *memory.PaymentMethodStore) {
	orders := memory.NewOrderStore()
	methods := memory.NewPaymentMethodStore()
	seedWorkOrders(t, orders)
	return usecase.NewReportUseCase(orders, methods, logger.Nop()), orders, methods
}

func TestReport_CompletedWork(t *testing.T) {
	reports, _, _ := newReports(t)

	got, err := reports.CompletedWork(context.Background(), "", nil)
	require.NoError(t, err)
	require.Len(t, got, 2)

	ana := got[0]
	assert.Equal(t, "E-1", ana.EmployeeID)
	require.Len(t, ana.Entries, 1)
	assert.Equal(t, 3, ana.Entries[0].Quantity)
	assert.True(t, ana.Entries[0].ItemPrice.Equal(decimal.NewFromInt(100)))
	assert.True(t, ana.TotalCommission.Equal(decimal.NewFromInt(15)))

	assert.Equal(t, "E-2", got[1].EmployeeID)
	assert.True(t, got[1].TotalCommission.Equal(decimal.NewFromInt(7)))
}

func TestReport_CompletedWork_FiltersByEmployeeAndEndDate(t *testing.T) {
	reports, _, _ := newReports(t)
	rng, err := entities.ParseDateRange("2024-03-05", "2024-03-05")
	require.NoError(t, err)

	got, err := reports.CompletedWork(context.Background(), "", rng)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "E-2", got[0].EmployeeID)

	got, err = reports.CompletedWork(context.Background(), "E-1", rng)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReport_CompletedWork_PendingDuplicateDoesNotHideCompletedRow(t *testing.T) {
	orders := memory.NewOrderStore()
	_, err := orders.Create(context.Background(), entities.Order{
		ID:        "00000000-0000-0000-0000-000000000003",
		CreatedAt: *at(6, 8),
		Items:     []entities.LineItem{{ID: "I-1", Price: decimal.NewFromInt(30), Quantity: 2}},
		Stages: []entities.Stage{
			{
				Ordinal: 1, Name: "Cut", Status: entities.StageStatusDone, StartedAt: at(6, 9), EndedAt: at(7, 9),
				Assignments: []entities.Assignment{
					{ItemID: "I-1", EmployeeID: "E-1", EmployeeName: "Ana", Status: entities.AssignmentStatusPending, ProductionCost: decimal.NewFromInt(4)},
					{ItemID: "I-1", EmployeeID: "E-1", EmployeeName: "Ana", Status: entities.AssignmentStatusCompleted, ProductionCost: decimal.NewFromInt(4), EndedAt: at(7, 9)},
					{ItemID: "I-1", EmployeeID: "E-1", EmployeeName: "Ana", Status: entities.AssignmentStatusCompleted, ProductionCost: decimal.NewFromInt(4), EndedAt: at(7, 9)},
				},
			},
		},
	})
	require.NoError(t, err)
	reports := usecase.NewReportUseCase(orders, memory.NewPaymentMethodStore(), logger.Nop())

	got, err := reports.CompletedWork(context.Background(), "", nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Len(t, got[0].Entries, 1)
	assert.True(t, got[0].TotalCommission.Equal(decimal.NewFromInt(8)))
}

func TestReport_PendingAndInProgress(t *testing.T) {
	reports, _, _ := newReports(t)
	ctx := context.Background()

	pending, err := reports.PendingWork(ctx, "E-1")
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "I-2", pending[0].ItemID)
	assert.Nil(t, pending[0].Client)

	inProgress, err := reports.InProgressWork(ctx, "E-1")
	require.NoError(t, err)
	require.Len(t, inProgress, 2)
	assert.Equal(t, "blue", inProgress[0].Detail)
	assert.Equal(t, []string{"a.png"}, inProgress[0].Images)
	require.NotNil(t, inProgress[0].Client)
	assert.Equal(t, "Acme", inProgress[0].Client.Name)

	gone := inProgress[1]
	assert.Equal(t, "I-gone", gone.ItemID)
	assert.Equal(t, 1, gone.Quantity)
	assert.True(t, gone.ItemPrice.IsZero())
	assert.Equal(t, []string{}, gone.Images)

	_, err = reports.PendingWork(ctx, " ")
	assert.True(t, errors.Is(err, usecase.ErrInvalidEmployeeID))
}

func TestReport_DailyRevenue(t *testing.T) {
	reports, orders, methods := newReports(t)
	ctx := context.Background()
	_, err := methods.Create(ctx, entities.PaymentMethod{ID: "m-1", Name: "Zelle"})
	require.NoError(t, err)

	events := []struct {
		orderID string
		ev      entities.PaymentEvent
	}{
		{"00000000-0000-0000-0000-000000000001", entities.PaymentEvent{At: *at(2, 10), Amount: decimal.NewFromInt(50), MethodID: "m-1"}},
		{"00000000-0000-0000-0000-000000000002", entities.PaymentEvent{At: *at(2, 12), Amount: decimal.NewFromInt(20), MethodRef: "efectivo"}},
		{"00000000-0000-0000-0000-000000000002", entities.PaymentEvent{At: *at(3, 12), Amount: decimal.NewFromInt(5)}},
		{"00000000-0000-0000-0000-000000000001", entities.PaymentEvent{At: *at(2, 11), Amount: decimal.NewFromInt(7), MethodID: "m-deleted", MethodName: "Old Bank"}},
	}
	for _, e := range events {
		ev := e.ev
		ev.Status = entities.PaymentStatusPartial
		_, err := orders.AppendPayment(ctx, e.orderID, entities.PaymentStatusPartial, &ev)
		require.NoError(t, err)
	}

	rng, err := entities.ParseDateRange("2024-03-02", "2024-03-02")
	require.NoError(t, err)
	got, err := reports.DailyRevenue(ctx, rng)
	require.NoError(t, err)

	assert.True(t, got.Total.Equal(decimal.NewFromInt(77)))
	require.Len(t, got.Entries, 3)
	assert.Equal(t, "efectivo", got.Entries[0].Method)
	assert.Equal(t, "Globex", got.Entries[0].ClientName)
	assert.Equal(t, "Old Bank", got.Entries[1].Method)
	assert.Equal(t, "Zelle", got.Entries[2].Method)
	assert.True(t, got.ByMethod["Zelle"].Equal(decimal.NewFromInt(50)))

	all, err := reports.DailyRevenue(ctx, nil)
	require.NoError(t, err)
	assert.True(t, all.ByMethod["unknown"].Equal(decimal.NewFromInt(5)))
}

func TestReport_PaymentsSummary(t *testing.T) {
	reports, orders, _ := newReports(t)
	ctx := context.Background()
	_, err := orders.AppendPayment(ctx, "00000000-0000-0000-0000-000000000001", entities.PaymentStatusPartial,
		&entities.PaymentEvent{At: *at(2, 10), Amount: decimal.NewFromInt(300), Status: entities.PaymentStatusPartial})
	require.NoError(t, err)

	rng, err := entities.ParseDateRange("2024-03-01", "2024-03-02")
	require.NoError(t, err)
	got, err := reports.PaymentsSummary(ctx, rng)
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.True(t, got[0].OrderTotal.Equal(decimal.NewFromInt(340)))
	assert.True(t, got[0].TotalSettled.Equal(decimal.NewFromInt(300)))
	assert.True(t, got[0].Outstanding.Equal(decimal.NewFromInt(40)))
	assert.Len(t, got[0].History, 1)
}
