package request

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	v.SetTagName("binding")
	require.NoError(t, registerOn(v))
	return v
}

func TestValidators_PaymentStatus(t *testing.T) {
	v := newValidator(t)

	assert.NoError(t, v.Struct(RecordPaymentRequest{Status: "partial"}))
	assert.NoError(t, v.Struct(RecordPaymentRequest{Status: "Pagado"}))
	assert.Error(t, v.Struct(RecordPaymentRequest{Status: "refunded"}))
	assert.Error(t, v.Struct(RecordPaymentRequest{}))
}

func TestValidators_StageStatus(t *testing.T) {
	v := newValidator(t)

	assert.NoError(t, v.Struct(AdvanceStageRequest{Status: "in_progress", Timestamp: "start"}))
	assert.NoError(t, v.Struct(AdvanceStageRequest{Status: "terminado"}))
	assert.Error(t, v.Struct(AdvanceStageRequest{Status: "paused"}))
	assert.Error(t, v.Struct(AdvanceStageRequest{Status: "done", Timestamp: "later"}))
}

func TestValidators_DateQuery(t *testing.T) {
	v := newValidator(t)

	assert.NoError(t, v.Struct(ReportQuery{}))
	assert.NoError(t, v.Struct(ReportQuery{From: "2024-03-01", To: "2024-03-31"}))
	assert.Error(t, v.Struct(ReportQuery{From: "03/01/2024"}))
	assert.Error(t, v.Struct(OrderListQuery{To: "2024-02-30"}))
}

func TestOrderListQuery_ToFilter(t *testing.T) {
	f, err := OrderListQuery{Status: []string{"orden1"}, From: "2024-03-01", To: "2024-03-02"}.ToFilter()
	require.NoError(t, err)
	assert.Equal(t, []string{"orden1"}, f.Statuses)
	require.NotNil(t, f.Range)
	assert.Equal(t, "2024-03-03", f.Range.To.Format("2006-01-02"))

	_, err = OrderListQuery{From: "2024-03-05", To: "2024-03-01"}.ToFilter()
	assert.Error(t, err)

	single, err := OrderListQuery{From: "2024-03-05"}.ToFilter()
	require.NoError(t, err)
	require.NotNil(t, single.Range)
	assert.Equal(t, "2024-03-06", single.Range.To.Format("2006-01-02"))
}

func TestCreateOrderRequest_ToInputDefaultsActive(t *testing.T) {
	inactive := false
	in := CreateOrderRequest{
		ClientID:   "c-1",
		ClientName: "ACME",
		Items: []LineItemRequest{
			{ID: " it-1 ", Name: "Gate", Quantity: 2},
			{ID: "it-2", Name: "Rail", Active: &inactive},
		},
	}.ToInput()

	require.Len(t, in.Items, 2)
	assert.Equal(t, "it-1", in.Items[0].ID)
	assert.True(t, in.Items[0].Active)
	assert.False(t, in.Items[1].Active)
}
