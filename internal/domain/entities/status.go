package entities

import (
	"fmt"
	"strings"
)

// StageStatus is the state of one production stage.
//
//	pending ──> in_progress ──> done
//
// Transitions only move forward; done is terminal.
type StageStatus string

const (
	StageStatusPending    StageStatus = "pending"
	StageStatusInProgress StageStatus = "in_progress"
	StageStatusDone       StageStatus = "done"
)

var stageStatusRank = map[StageStatus]int{
	StageStatusPending:    0,
	StageStatusInProgress: 1,
	StageStatusDone:       2,
}

// Values written by older clients.
var stageStatusAliases = map[string]StageStatus{
	"pendiente":   StageStatusPending,
	"en_proceso":  StageStatusInProgress,
	"en proceso":  StageStatusInProgress,
	"terminado":   StageStatusDone,
	"completado":  StageStatusDone,
	"completed":   StageStatusDone,
	"in_process":  StageStatusInProgress,
	"in progress": StageStatusInProgress,
}

func (s StageStatus) IsValid() bool {
	_, ok := stageStatusRank[s]
	return ok
}

func (s StageStatus) String() string {
	return string(s)
}

func ParseStageStatus(value string) (StageStatus, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if s := StageStatus(v); s.IsValid() {
		return s, nil
	}
	if s, ok := stageStatusAliases[v]; ok {
		return s, nil
	}
	return "", fmt.Errorf("%w %q", ErrInvalidStageStatus, value)
}

// NormalizeStageStatus maps stored values to the canonical enum, keeping unknown
// values untouched so they are never silently reinterpreted.
func NormalizeStageStatus(value string) StageStatus {
	if s, err := ParseStageStatus(value); err == nil {
		return s
	}
	return StageStatus(value)
}

// AssignmentStatus is the state of one item/employee binding inside a stage.
type AssignmentStatus string

const (
	AssignmentStatusPending   AssignmentStatus = "pending"
	AssignmentStatusInProcess AssignmentStatus = "in_process"
	AssignmentStatusCompleted AssignmentStatus = "terminado"
)

var assignmentStatusRank = map[AssignmentStatus]int{
	AssignmentStatusPending:   0,
	AssignmentStatusInProcess: 1,
	AssignmentStatusCompleted: 2,
}

var assignmentStatusAliases = map[string]AssignmentStatus{
	"pendiente":   AssignmentStatusPending,
	"en_proceso":  AssignmentStatusInProcess,
	"en proceso":  AssignmentStatusInProcess,
	"in_progress": AssignmentStatusInProcess,
	"completed":   AssignmentStatusCompleted,
	"completado":  AssignmentStatusCompleted,
	"done":        AssignmentStatusCompleted,
}

func (s AssignmentStatus) IsValid() bool {
	_, ok := assignmentStatusRank[s]
	return ok
}

func (s AssignmentStatus) String() string {
	return string(s)
}

func ParseAssignmentStatus(value string) (AssignmentStatus, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if s := AssignmentStatus(v); s.IsValid() {
		return s, nil
	}
	if s, ok := assignmentStatusAliases[v]; ok {
		return s, nil
	}
	return "", fmt.Errorf("%w %q", ErrInvalidAssignmentStatus, value)
}

func NormalizeAssignmentStatus(value string) AssignmentStatus {
	if s, err := ParseAssignmentStatus(value); err == nil {
		return s
	}
	return AssignmentStatus(value)
}

// PaymentStatus is the caller-declared settlement state of an order.
type PaymentStatus string

const (
	PaymentStatusUnpaid  PaymentStatus = "unpaid"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusPaid    PaymentStatus = "paid"
)

var validPaymentStatuses = []PaymentStatus{
	PaymentStatusUnpaid,
	PaymentStatusPartial,
	PaymentStatusPaid,
}

var paymentStatusAliases = map[string]PaymentStatus{
	"sin pago": PaymentStatusUnpaid,
	"abonado":  PaymentStatusPartial,
	"pagado":   PaymentStatusPaid,
}

func (p PaymentStatus) IsValid() bool {
	for _, candidate := range validPaymentStatuses {
		if candidate == p {
			return true
		}
	}
	return false
}

func (p PaymentStatus) String() string {
	return string(p)
}

func ParsePaymentStatus(value string) (PaymentStatus, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if p := PaymentStatus(v); p.IsValid() {
		return p, nil
	}
	if p, ok := paymentStatusAliases[v]; ok {
		return p, nil
	}
	return "", fmt.Errorf("%w %q", ErrInvalidPaymentStatus, value)
}

func NormalizePaymentStatus(value string) PaymentStatus {
	if p, err := ParsePaymentStatus(value); err == nil {
		return p
	}
	return PaymentStatus(value)
}

// TimestampDirective tells an advance which stage timestamp to stamp, if any.
type TimestampDirective string

const (
	TimestampNone  TimestampDirective = ""
	TimestampStart TimestampDirective = "start"
	TimestampEnd   TimestampDirective = "end"
)

func ParseTimestampDirective(value string) (TimestampDirective, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "":
		return TimestampNone, nil
	case "start", "inicio":
		return TimestampStart, nil
	case "end", "fin":
		return TimestampEnd, nil
	}
	return "", fmt.Errorf("%w: got %q", ErrInvalidTimestampDirective, value)
}
