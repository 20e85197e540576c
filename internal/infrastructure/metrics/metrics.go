package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

// Metrics records fulfillment and ledger activity. A nil *Metrics is a no-op so
// use cases can run without a registry in tests.
type Metrics struct {
	paymentsRecorded  *prometheus.CounterVec
	paymentAmount     prometheus.Counter
	stageTransitions  *prometheus.CounterVec
	assignmentUpdates *prometheus.CounterVec
	lockWait          prometheus.Histogram
}

// New registers the service metrics on the provided registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		return &Metrics{}
	}
	paymentsRecorded := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fulfillment_payments_recorded_total",
		Help: "Payment ledger writes by resulting payment status.",
	}, []string{"status"})
	paymentAmount := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "fulfillment_payment_amount_total",
		Help: "Sum of recorded payment amounts.",
	})
	stageTransitions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fulfillment_stage_transitions_total",
		Help: "Stage writes by target status.",
	}, []string{"status"})
	assignmentUpdates := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fulfillment_assignment_updates_total",
		Help: "Assignment writes by target status.",
	}, []string{"status"})
	lockWait := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "fulfillment_order_lock_wait_seconds",
		Help:    "Time spent waiting for the per-order write lock.",
		Buckets: prometheus.DefBuckets,
	})
	reg.MustRegister(paymentsRecorded, paymentAmount, stageTransitions, assignmentUpdates, lockWait)
	return &Metrics{
		paymentsRecorded:  paymentsRecorded,
		paymentAmount:     paymentAmount,
		stageTransitions:  stageTransitions,
		assignmentUpdates: assignmentUpdates,
		lockWait:          lockWait,
	}
}

func (m *Metrics) PaymentRecorded(status string, amount decimal.Decimal) {
	if m == nil || m.paymentsRecorded == nil {
		return
	}
	m.paymentsRecorded.WithLabelValues(normalizeLabel(status)).Inc()
	if amount.IsPositive() {
		m.paymentAmount.Add(amount.InexactFloat64())
	}
}

func (m *Metrics) StageTransition(status string) {
	if m == nil || m.stageTransitions == nil {
		return
	}
	m.stageTransitions.WithLabelValues(normalizeLabel(status)).Inc()
}

func (m *Metrics) AssignmentUpdated(status string) {
	if m == nil || m.assignmentUpdates == nil {
		return
	}
	m.assignmentUpdates.WithLabelValues(normalizeLabel(status)).Inc()
}

func (m *Metrics) ObserveLockWait(d time.Duration) {
	if m == nil || m.lockWait == nil {
		return
	}
	m.lockWait.Observe(d.Seconds())
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
