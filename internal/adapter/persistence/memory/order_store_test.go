package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fulfillment_service/internal/domain/entities"
	"fulfillment_service/internal/usecase/interfaces"
)

func sampleOrder(id, status string, created time.Time) entities.Order {
	return entities.Order{
		ID:            id,
		ClientID:      "c1",
		ClientName:    "ACME",
		CreatedAt:     created,
		UpdatedAt:     created,
		OverallStatus: status,
		Items: []entities.LineItem{
			{ID: "i1", Price: decimal.NewFromInt(100), Quantity: 2, Images: []string{"a.png"}},
		},
		Stages:        entities.NewPipeline([]string{"cut", "paint"}),
		PaymentStatus: entities.PaymentStatusUnpaid,
		TotalSettled:  decimal.Zero,
	}
}

func TestOrderStore_CreateGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewOrderStore()
	o := sampleOrder("o1", "orden1", time.Now().UTC())

	_, err := s.Create(ctx, o)
	require.NoError(t, err)
	_, err = s.Create(ctx, o)
	require.Error(t, err)

	got, err := s.GetByID(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, o.Items, got.Items)
	require.Len(t, got.Stages, 2)
	assert.Equal(t, 1, got.Stages[0].Ordinal)

	got.Items[0].Images[0] = "mutated"
	again, _ := s.GetByID(ctx, "o1")
	assert.Equal(t, "a.png", again.Items[0].Images[0])

	missing, err := s.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}

func TestOrderStore_UpdateFields(t *testing.T) {
	ctx := context.Background()
	s := NewOrderStore()
	_, _ = s.Create(ctx, sampleOrder("o1", "orden1", time.Now().UTC()))

	status := "orden2"
	stages := entities.NewPipeline([]string{"only"})
	n, err := s.UpdateFields(ctx, "o1", interfaces.OrderUpdate{OverallStatus: &status, Stages: stages})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, _ := s.GetByID(ctx, "o1")
	assert.Equal(t, "orden2", got.OverallStatus)
	require.Len(t, got.Stages, 1)

	n, err = s.UpdateFields(ctx, "missing", interfaces.OrderUpdate{OverallStatus: &status})
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestOrderStore_AppendPaymentKeepsLedgerInvariant(t *testing.T) {
	ctx := context.Background()
	s := NewOrderStore()
	_, _ = s.Create(ctx, sampleOrder("o1", "orden1", time.Now().UTC()))

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ev := &entities.PaymentEvent{At: time.Now(), Amount: decimal.NewFromInt(int64(i%7 + 1)), Status: entities.PaymentStatusPartial}
			_, err := s.AppendPayment(ctx, "o1", entities.PaymentStatusPartial, ev)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	got, _ := s.GetByID(ctx, "o1")
	assert.Len(t, got.PaymentHistory, 100)
	assert.True(t, got.LedgerSum().Equal(got.TotalSettled), "sum=%s total=%s", got.LedgerSum(), got.TotalSettled)

	statusOnly, err := s.AppendPayment(ctx, "o1", entities.PaymentStatusPaid, nil)
	require.NoError(t, err)
	assert.Equal(t, entities.PaymentStatusPaid, statusOnly.PaymentStatus)
	assert.Len(t, statusOnly.PaymentHistory, 100)

	missing, err := s.AppendPayment(ctx, "nope", entities.PaymentStatusPaid, nil)
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}

func TestOrderStore_ListFilters(t *testing.T) {
	ctx := context.Background()
	s := NewOrderStore()
	day := func(d int) time.Time { return time.Date(2024, 3, d, 12, 0, 0, 0, time.UTC) }
	_, _ = s.Create(ctx, sampleOrder("o1", "stage1", day(1)))
	_, _ = s.Create(ctx, sampleOrder("o2", "stage1", day(2)))
	_, _ = s.Create(ctx, sampleOrder("o3", "stage2", day(4)))
	_, _ = s.Create(ctx, sampleOrder("o4", "stage3", day(4)))

	r, err := entities.ParseDateRange("2024-03-02", "2024-03-04")
	require.NoError(t, err)
	got, err := s.List(ctx, interfaces.OrderFilter{Statuses: []string{"stage1", "stage2"}, Range: r})
	require.NoError(t, err)

	ids := make([]string, 0, len(got))
	for _, o := range got {
		ids = append(ids, o.ID)
	}
	assert.ElementsMatch(t, []string{"o2", "o3"}, ids)

	all, err := s.List(ctx, interfaces.OrderFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 4)
}
