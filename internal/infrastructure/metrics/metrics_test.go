package metrics

import (
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/shopspring/decimal"
)

func TestMetricsExportsCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.PaymentRecorded("partial", decimal.NewFromInt(100))
	m.PaymentRecorded("partial", decimal.NewFromInt(50))
	m.PaymentRecorded("paid", decimal.Zero)
	m.StageTransition("done")
	m.AssignmentUpdated("")
	m.ObserveLockWait(5 * time.Millisecond)

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	if got, err := counterValue(mfs, "fulfillment_payments_recorded_total", "status", "partial"); err != nil || got != 2 {
		t.Fatalf("expected partial=2, got %f err=%v", got, err)
	}
	if got, err := counterValue(mfs, "fulfillment_payment_amount_total", "", ""); err != nil || got != 150 {
		t.Fatalf("expected amount=150, got %f err=%v", got, err)
	}
	if got, err := counterValue(mfs, "fulfillment_stage_transitions_total", "status", "done"); err != nil || got != 1 {
		t.Fatalf("expected done=1, got %f err=%v", got, err)
	}
	if got, err := counterValue(mfs, "fulfillment_assignment_updates_total", "status", "unknown"); err != nil || got != 1 {
		t.Fatalf("expected unknown=1, got %f err=%v", got, err)
	}
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.PaymentRecorded("paid", decimal.NewFromInt(1))
	m.StageTransition("done")
	m.ObserveLockWait(time.Second)

	New(nil).StageTransition("done")
}

func counterValue(mfs []*dto.MetricFamily, name, label, value string) (float64, error) {
	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
		for _, metric := range mf.GetMetric() {
			if label == "" {
				return metric.GetCounter().GetValue(), nil
			}
			for _, lp := range metric.GetLabel() {
				if lp.GetName() == label && lp.GetValue() == value {
					return metric.GetCounter().GetValue(), nil
				}
			}
		}
		return 0, fmt.Errorf("metric %q has no %s=%s", name, label, value)
	}
	return 0, fmt.Errorf("metric %q not found", name)
}
