package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"fulfillment_service/internal/domain/entities"
	"fulfillment_service/internal/infrastructure/logger"
	"fulfillment_service/internal/usecase/interfaces"
	mock_interfaces "fulfillment_service/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func trackedOrder() entities.Order {
	return entities.Order{
		ID:            testOrderID,
		OverallStatus: "orden1",
		Items:         []entities.LineItem{{ID: "I-1", Quantity: 1}},
		Stages:        entities.NewPipeline([]string{"Cut", "Paint", "Ship"}),
	}
}

type trackerFixture struct {
	repo     *mock_interfaces.MockIOrderRepository
	locker   *mock_interfaces.MockIOrderLocker
	uc       *StageTrackerUseCase
	unlocked *bool
}

func newTrackerFixture(t *testing.T) trackerFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	repo := mock_interfaces.NewMockIOrderRepository(ctrl)
	locker := mock_interfaces.NewMockIOrderLocker(ctrl)
	uc := NewStageTrackerUseCase(repo, locker, logger.Nop(), nil)
	uc.now = func() time.Time { return fixedNow }
	return trackerFixture{repo: repo, locker: locker, uc: uc, unlocked: new(bool)}
}

func (f trackerFixture) expectLock() {
	f.locker.EXPECT().Lock(gomock.Any(), "order:"+testOrderID).Return(func() { *f.unlocked = true }, nil)
}

func TestStageTracker_AdvanceStage_Validations(t *testing.T) {
	cases := []struct {
		name string
		in   AdvanceStageInput
		want error
	}{
		{"bad order id", AdvanceStageInput{OrderID: "x", Ordinal: 1, Status: "in_progress"}, ErrInvalidOrderID},
		{"bad status", AdvanceStageInput{OrderID: testOrderID, Ordinal: 1, Status: "paused"}, entities.ErrInvalidStageStatus},
		{"bad directive", AdvanceStageInput{OrderID: testOrderID, Ordinal: 1, Status: "in_progress", Directive: "now"}, entities.ErrInvalidTimestampDirective},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newTrackerFixture(t)
			_, err := f.uc.AdvanceStage(context.Background(), tc.in)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestStageTracker_AdvanceStage_PersistsStagesUnderLock(t *testing.T) {
	f := newTrackerFixture(t)
	f.expectLock()
	f.repo.EXPECT().GetByID(gomock.Any(), testOrderID).Return(trackedOrder(), nil)

	var written interfaces.OrderUpdate
	f.repo.EXPECT().UpdateFields(gomock.Any(), testOrderID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, upd interfaces.OrderUpdate) (int64, error) {
			written = upd
			return 1, nil
		})

	overall := " orden2 "
	got, err := f.uc.AdvanceStage(context.Background(), AdvanceStageInput{
		OrderID:       testOrderID,
		Ordinal:       2,
		Status:        "en_proceso",
		Directive:     "inicio",
		Assignments:   []entities.Assignment{{ItemID: "I-1", EmployeeID: "E-1", EmployeeName: "Ana"}},
		OverallStatus: &overall,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !*f.unlocked {
		t.Fatalf("expected lock to be released")
	}
	if len(written.Stages) != 3 || written.OverallStatus == nil || *written.OverallStatus != "orden2" {
		t.Fatalf("unexpected update: %+v", written)
	}
	stage := written.Stages[1]
	if stage.Status != entities.StageStatusInProgress || stage.StartedAt == nil || !stage.StartedAt.Equal(fixedNow) {
		t.Fatalf("unexpected stage: %+v", stage)
	}
	if len(stage.Assignments) != 1 || stage.Assignments[0].Status != entities.AssignmentStatusPending {
		t.Fatalf("unexpected assignments: %+v", stage.Assignments)
	}
	if written.Stages[0].Status != entities.StageStatusPending {
		t.Fatalf("sibling stage must be untouched, got %s", written.Stages[0].Status)
	}
	if got.OverallStatus != "orden2" {
		t.Fatalf("expected overall status in result, got %q", got.OverallStatus)
	}
}

func TestStageTracker_AdvanceStage_RejectsBackwardMove(t *testing.T) {
	f := newTrackerFixture(t)
	f.expectLock()
	o := trackedOrder()
	o.Stages[0].Status = entities.StageStatusDone
	f.repo.EXPECT().GetByID(gomock.Any(), testOrderID).Return(o, nil)

	_, err := f.uc.AdvanceStage(context.Background(), AdvanceStageInput{OrderID: testOrderID, Ordinal: 1, Status: "pending"})
	if !errors.Is(err, entities.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if !*f.unlocked {
		t.Fatalf("expected lock to be released on error")
	}
}

func TestStageTracker_AdvanceStage_LookupErrors(t *testing.T) {
	t.Run("unknown ordinal", func(t *testing.T) {
		f := newTrackerFixture(t)
		f.expectLock()
		f.repo.EXPECT().GetByID(gomock.Any(), testOrderID).Return(trackedOrder(), nil)

		_, err := f.uc.AdvanceStage(context.Background(), AdvanceStageInput{OrderID: testOrderID, Ordinal: 9, Status: "done"})
		if !errors.Is(err, ErrStageNotFound) {
			t.Fatalf("expected ErrStageNotFound, got %v", err)
		}
	})

	t.Run("no tracking", func(t *testing.T) {
		f := newTrackerFixture(t)
		f.expectLock()
		f.repo.EXPECT().GetByID(gomock.Any(), testOrderID).Return(entities.Order{ID: testOrderID}, nil)

		_, err := f.uc.AdvanceStage(context.Background(), AdvanceStageInput{OrderID: testOrderID, Ordinal: 1, Status: "done"})
		if !errors.Is(err, ErrEmptyTracking) || !errors.Is(err, entities.ErrInvalidTransition) {
			t.Fatalf("expected ErrEmptyTracking, got %v", err)
		}
	})

	t.Run("order vanished before write", func(t *testing.T) {
		f := newTrackerFixture(t)
		f.expectLock()
		f.repo.EXPECT().GetByID(gomock.Any(), testOrderID).Return(trackedOrder(), nil)
		f.repo.EXPECT().UpdateFields(gomock.Any(), testOrderID, gomock.Any()).Return(int64(0), nil)

		_, err := f.uc.AdvanceStage(context.Background(), AdvanceStageInput{OrderID: testOrderID, Ordinal: 1, Status: "in_progress"})
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("lock unavailable", func(t *testing.T) {
		f := newTrackerFixture(t)
		f.locker.EXPECT().Lock(gomock.Any(), "order:"+testOrderID).Return(nil, context.DeadlineExceeded)

		_, err := f.uc.AdvanceStage(context.Background(), AdvanceStageInput{OrderID: testOrderID, Ordinal: 1, Status: "in_progress"})
		if entities.KindOf(err) != entities.KindStorageFailure {
			t.Fatalf("expected storage failure, got %v", err)
		}
	})
}

func TestStageTracker_FinalizeStage_BackfillsAssignments(t *testing.T) {
	f := newTrackerFixture(t)
	f.expectLock()
	o := trackedOrder()
	started := fixedNow.Add(-time.Hour)
	o.Stages[0].Status = entities.StageStatusInProgress
	o.Stages[0].StartedAt = &started
	o.Stages[0].Assignments = []entities.Assignment{{ItemID: "I-1", EmployeeID: "E-1", Status: entities.AssignmentStatusInProcess, StartedAt: &started}}
	f.repo.EXPECT().GetByID(gomock.Any(), testOrderID).Return(o, nil)

	var written interfaces.OrderUpdate
	f.repo.EXPECT().UpdateFields(gomock.Any(), testOrderID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, upd interfaces.OrderUpdate) (int64, error) {
			written = upd
			return 1, nil
		})

	_, err := f.uc.FinalizeStage(context.Background(), testOrderID, 1, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stage := written.Stages[0]
	if stage.Status != entities.StageStatusDone || stage.EndedAt == nil || !stage.EndedAt.Equal(fixedNow) {
		t.Fatalf("unexpected stage: %+v", stage)
	}
	a := stage.Assignments[0]
	if a.EndedAt == nil || !a.EndedAt.Equal(fixedNow) {
		t.Fatalf("expected backfilled assignment end, got %+v", a)
	}
	if a.Status != entities.AssignmentStatusInProcess {
		t.Fatalf("finalize must not change assignment status, got %s", a.Status)
	}
	if written.OverallStatus != nil {
		t.Fatalf("overall status must be untouched")
	}
}

func TestStageTracker_UpdateAssignment(t *testing.T) {
	withAssignment := func(status entities.AssignmentStatus) entities.Order {
		o := trackedOrder()
		o.Stages[0].Assignments = []entities.Assignment{{ItemID: "I-1", EmployeeID: "E-1", Status: status}}
		return o
	}

	t.Run("completes and stamps end", func(t *testing.T) {
		f := newTrackerFixture(t)
		f.expectLock()
		f.repo.EXPECT().GetByID(gomock.Any(), testOrderID).Return(withAssignment(entities.AssignmentStatusInProcess), nil)
		f.repo.EXPECT().UpdateFields(gomock.Any(), testOrderID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, upd interfaces.OrderUpdate) (int64, error) {
				a := upd.Stages[0].Assignments[0]
				if a.Status != entities.AssignmentStatusCompleted || a.EndedAt == nil {
					t.Fatalf("unexpected assignment: %+v", a)
				}
				return 1, nil
			})

		_, err := f.uc.UpdateAssignment(context.Background(), UpdateAssignmentInput{OrderID: testOrderID, Ordinal: 1, ItemID: "I-1", EmployeeID: "E-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("repeat is a no-op without a write", func(t *testing.T) {
		f := newTrackerFixture(t)
		f.expectLock()
		f.repo.EXPECT().GetByID(gomock.Any(), testOrderID).Return(withAssignment(entities.AssignmentStatusCompleted), nil)

		_, err := f.uc.UpdateAssignment(context.Background(), UpdateAssignmentInput{OrderID: testOrderID, Ordinal: 1, ItemID: "I-1", EmployeeID: "E-1", Status: "terminado"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown key", func(t *testing.T) {
		f := newTrackerFixture(t)
		f.expectLock()
		f.repo.EXPECT().GetByID(gomock.Any(), testOrderID).Return(withAssignment(entities.AssignmentStatusPending), nil)

		_, err := f.uc.UpdateAssignment(context.Background(), UpdateAssignmentInput{OrderID: testOrderID, Ordinal: 1, ItemID: "I-1", EmployeeID: "E-404"})
		if !errors.Is(err, ErrAssignmentNotFound) {
			t.Fatalf("expected ErrAssignmentNotFound, got %v", err)
		}
	})

	t.Run("missing key fields", func(t *testing.T) {
		f := newTrackerFixture(t)
		_, err := f.uc.UpdateAssignment(context.Background(), UpdateAssignmentInput{OrderID: testOrderID, Ordinal: 1, ItemID: "I-1"})
		if !errors.Is(err, entities.ErrInvalidAssignment) {
			t.Fatalf("expected ErrInvalidAssignment, got %v", err)
		}
	})
}

func TestStageTracker_SetOverallStatus(t *testing.T) {
	t.Run("blank status", func(t *testing.T) {
		f := newTrackerFixture(t)
		_, err := f.uc.SetOverallStatus(context.Background(), testOrderID, "  ")
		if !errors.Is(err, ErrInvalidOverallStatus) {
			t.Fatalf("expected ErrInvalidOverallStatus, got %v", err)
		}
	})

	t.Run("writes only the overall status", func(t *testing.T) {
		f := newTrackerFixture(t)
		f.expectLock()
		f.repo.EXPECT().GetByID(gomock.Any(), testOrderID).Return(trackedOrder(), nil)
		status := "cancelado"
		f.repo.EXPECT().UpdateFields(gomock.Any(), testOrderID, interfaces.OrderUpdate{OverallStatus: &status}).Return(int64(1), nil)

		got, err := f.uc.SetOverallStatus(context.Background(), testOrderID, "cancelado")
		if err != nil || got.OverallStatus != "cancelado" {
			t.Fatalf("unexpected result: %q %v", got.OverallStatus, err)
		}
	})
}
