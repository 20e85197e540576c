package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Stage is one ordinal step of the production pipeline.
//
// StartedAt is set at most once, on the first advance into in_progress with a start
// directive. EndedAt is set at most once and never precedes StartedAt.
type Stage struct {
	Ordinal     int          `json:"ordinal"`
	Name        string       `json:"name"`
	Status      StageStatus  `json:"status"`
	StartedAt   *time.Time   `json:"started_at,omitempty"`
	EndedAt     *time.Time   `json:"ended_at,omitempty"`
	Assignments []Assignment `json:"assignments"`
}

// Assignment binds one line item to one employee within a stage.
type Assignment struct {
	ItemID          string           `json:"item_id"`
	EmployeeID      string           `json:"employee_id"`
	EmployeeName    string           `json:"employee_name"`
	StartedAt       *time.Time       `json:"started_at,omitempty"`
	Status          AssignmentStatus `json:"status"`
	ItemDescription string           `json:"item_description"`
	ProductionCost  decimal.Decimal  `json:"production_cost"`
	EndedAt         *time.Time       `json:"ended_at,omitempty"`
}

type assignmentKey struct {
	itemID     string
	employeeID string
}

func (a Assignment) key() assignmentKey {
	return assignmentKey{itemID: a.ItemID, employeeID: a.EmployeeID}
}

// Advance moves the stage to target, optionally stamping a timestamp.
//
// Same-state advances are legal (they are used to attach assignments); backward
// moves are not. A start directive is only accepted together with in_progress and
// an end directive only together with done.
func (s *Stage) Advance(target StageStatus, directive TimestampDirective, now time.Time) error {
	if !target.IsValid() {
		return fmt.Errorf("%w %q", ErrInvalidStageStatus, target)
	}
	current := NormalizeStageStatus(string(s.Status))
	if current.IsValid() && stageStatusRank[target] < stageStatusRank[current] {
		return fmt.Errorf("%w: stage %d cannot move from %s to %s", ErrInvalidTransition, s.Ordinal, current, target)
	}

	switch directive {
	case TimestampNone:
	case TimestampStart:
		if target != StageStatusInProgress {
			return fmt.Errorf("%w: start requires %s", ErrInvalidTimestampDirective, StageStatusInProgress)
		}
	case TimestampEnd:
		if target != StageStatusDone {
			return fmt.Errorf("%w: end requires %s", ErrInvalidTimestampDirective, StageStatusDone)
		}
	default:
		return ErrInvalidTimestampDirective
	}

	s.Status = target
	switch directive {
	case TimestampStart:
		if s.StartedAt == nil {
			t := now
			s.StartedAt = &t
		}
	case TimestampEnd:
		s.stampEnd(now)
	}
	return nil
}

// Finalize forces the stage to done, stamps the end time and copies it onto every
// assignment that has none. Assignment statuses are left untouched.
func (s *Stage) Finalize(now time.Time) {
	s.Status = StageStatusDone
	s.stampEnd(now)
	for i := range s.Assignments {
		if s.Assignments[i].EndedAt == nil {
			s.Assignments[i].EndedAt = cloneTime(s.EndedAt)
		}
	}
}

func (s *Stage) stampEnd(now time.Time) {
	if s.EndedAt != nil {
		return
	}
	t := now
	if s.StartedAt != nil && t.Before(*s.StartedAt) {
		t = *s.StartedAt
	}
	s.EndedAt = &t
}

// MergeAssignments upserts incoming assignments keyed by (item id, employee id).
//
// The whole batch is validated before anything is applied. A key repeated inside
// the batch is rejected. Existing assignments never move backwards and never lose
// their end time.
func (s *Stage) MergeAssignments(incoming []Assignment, now time.Time) error {
	normalized := make([]Assignment, 0, len(incoming))
	seen := make(map[assignmentKey]struct{}, len(incoming))
	for _, a := range incoming {
		if a.ItemID == "" || a.EmployeeID == "" {
			return ErrInvalidAssignment
		}
		if a.Status == "" {
			a.Status = AssignmentStatusPending
		}
		status, err := ParseAssignmentStatus(string(a.Status))
		if err != nil {
			return err
		}
		a.Status = status
		if _, dup := seen[a.key()]; dup {
			return fmt.Errorf("%w: item %s employee %s", ErrDuplicateAssignment, a.ItemID, a.EmployeeID)
		}
		seen[a.key()] = struct{}{}
		normalized = append(normalized, a)
	}

	for _, in := range normalized {
		existing, ok := s.AssignmentFor(in.ItemID, in.EmployeeID)
		if !ok {
			if in.StartedAt == nil {
				t := now
				in.StartedAt = &t
			}
			if in.Status == AssignmentStatusCompleted && in.EndedAt == nil {
				t := now
				in.EndedAt = &t
			}
			s.Assignments = append(s.Assignments, in)
			continue
		}

		if in.EmployeeName != "" {
			existing.EmployeeName = in.EmployeeName
		}
		if in.ItemDescription != "" {
			existing.ItemDescription = in.ItemDescription
		}
		if !in.ProductionCost.IsZero() {
			existing.ProductionCost = in.ProductionCost
		}
		if existing.StartedAt == nil && in.StartedAt != nil {
			existing.StartedAt = cloneTime(in.StartedAt)
		}
		if assignmentStatusRank[in.Status] > assignmentStatusRank[NormalizeAssignmentStatus(string(existing.Status))] {
			at := now
			if in.EndedAt != nil {
				at = *in.EndedAt
			}
			if _, err := existing.Transition(in.Status, at); err != nil {
				return err
			}
		}
	}
	return nil
}

// AssignmentFor returns a pointer into s.Assignments for the given key.
func (s *Stage) AssignmentFor(itemID, employeeID string) (*Assignment, bool) {
	for i := range s.Assignments {
		if s.Assignments[i].ItemID == itemID && s.Assignments[i].EmployeeID == employeeID {
			return &s.Assignments[i], true
		}
	}
	return nil, false
}

func (s Stage) Clone() Stage {
	out := s
	out.StartedAt = cloneTime(s.StartedAt)
	out.EndedAt = cloneTime(s.EndedAt)
	if s.Assignments != nil {
		out.Assignments = make([]Assignment, len(s.Assignments))
		for i, a := range s.Assignments {
			a.StartedAt = cloneTime(a.StartedAt)
			a.EndedAt = cloneTime(a.EndedAt)
			out.Assignments[i] = a
		}
	}
	return out
}

// Transition moves the assignment forward. Re-applying the current status is a
// no-op reported as changed=false, so completing twice keeps the first end time.
func (a *Assignment) Transition(target AssignmentStatus, at time.Time) (changed bool, err error) {
	if !target.IsValid() {
		return false, fmt.Errorf("%w %q", ErrInvalidAssignmentStatus, target)
	}
	current := NormalizeAssignmentStatus(string(a.Status))
	if current == target {
		return false, nil
	}
	if current.IsValid() && assignmentStatusRank[target] < assignmentStatusRank[current] {
		return false, fmt.Errorf("%w: assignment cannot move from %s to %s", ErrInvalidTransition, current, target)
	}

	a.Status = target
	switch target {
	case AssignmentStatusInProcess:
		if a.StartedAt == nil {
			t := at
			a.StartedAt = &t
		}
	case AssignmentStatusCompleted:
		if a.EndedAt == nil {
			t := at
			a.EndedAt = &t
		}
	}
	return true, nil
}
