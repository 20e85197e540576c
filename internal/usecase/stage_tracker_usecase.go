package usecase

import (
	"context"
	"strings"
	"time"

	"fulfillment_service/internal/domain/entities"
	"fulfillment_service/internal/infrastructure/logger"
	"fulfillment_service/internal/infrastructure/metrics"
	"fulfillment_service/internal/usecase/interfaces"
)

// AdvanceStageInput moves one stage and optionally merges assignments and sets
// the caller-declared overall status, all in a single write.
type AdvanceStageInput struct {
	OrderID       string
	Ordinal       int
	Status        string
	Directive     string
	Assignments   []entities.Assignment
	OverallStatus *string
}

// UpdateAssignmentInput addresses one assignment by (stage, item, employee).
// Status defaults to terminado.
type UpdateAssignmentInput struct {
	OrderID    string
	Ordinal    int
	ItemID     string
	EmployeeID string
	Status     string
}

// IStageTrackerUseCase drives the production pipeline of an order.
//
// Every mutation is a read-modify-write of the stage list performed under the
// per-order lock, so concurrent edits of sibling stages never overwrite each other.
type IStageTrackerUseCase interface {
	AdvanceStage(ctx context.Context, in AdvanceStageInput) (entities.Order, error)
	FinalizeStage(ctx context.Context, orderID string, ordinal int, overallStatus *string) (entities.Order, error)
	UpdateAssignment(ctx context.Context, in UpdateAssignmentInput) (entities.Order, error)
	SetOverallStatus(ctx context.Context, orderID, status string) (entities.Order, error)
}

type StageTrackerUseCase struct {
	repo    interfaces.IOrderRepository
	locker  interfaces.IOrderLocker
	log     *logger.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

var _ IStageTrackerUseCase = (*StageTrackerUseCase)(nil)

func NewStageTrackerUseCase(repo interfaces.IOrderRepository, locker interfaces.IOrderLocker, log *logger.Logger, m *metrics.Metrics) *StageTrackerUseCase {
	return &StageTrackerUseCase{repo: repo, locker: locker, log: log, metrics: m, now: utcNow}
}

func (u *StageTrackerUseCase) AdvanceStage(ctx context.Context, in AdvanceStageInput) (entities.Order, error) {
	orderID, err := parseOrderID(in.OrderID)
	if err != nil {
		return entities.Order{}, err
	}
	target, err := entities.ParseStageStatus(in.Status)
	if err != nil {
		return entities.Order{}, err
	}
	directive, err := entities.ParseTimestampDirective(in.Directive)
	if err != nil {
		return entities.Order{}, err
	}
	overall := normalizeOverall(in.OverallStatus)

	ctx = u.log.WithFields(ctx, map[string]any{"order_id": orderID, "ordinal": in.Ordinal})
	return u.mutateStage(ctx, orderID, in.Ordinal, overall, func(_ *entities.Order, stage *entities.Stage, now time.Time) (bool, error) {
		if err := stage.Advance(target, directive, now); err != nil {
			return false, err
		}
		if len(in.Assignments) > 0 {
			if err := stage.MergeAssignments(in.Assignments, now); err != nil {
				return false, err
			}
		}
		u.metrics.StageTransition(string(target))
		u.log.Info(ctx, "[tracker][usecase] stage advanced status="+string(target))
		return true, nil
	})
}

func (u *StageTrackerUseCase) FinalizeStage(ctx context.Context, orderID string, ordinal int, overallStatus *string) (entities.Order, error) {
	id, err := parseOrderID(orderID)
	if err != nil {
		return entities.Order{}, err
	}
	overall := normalizeOverall(overallStatus)

	ctx = u.log.WithFields(ctx, map[string]any{"order_id": id, "ordinal": ordinal})
	return u.mutateStage(ctx, id, ordinal, overall, func(_ *entities.Order, stage *entities.Stage, now time.Time) (bool, error) {
		stage.Finalize(now)
		u.metrics.StageTransition(string(entities.StageStatusDone))
		u.log.Info(ctx, "[tracker][usecase] stage finalized")
		return true, nil
	})
}

func (u *StageTrackerUseCase) UpdateAssignment(ctx context.Context, in UpdateAssignmentInput) (entities.Order, error) {
	orderID, err := parseOrderID(in.OrderID)
	if err != nil {
		return entities.Order{}, err
	}
	itemID, employeeID := strings.TrimSpace(in.ItemID), strings.TrimSpace(in.EmployeeID)
	if itemID == "" || employeeID == "" {
		return entities.Order{}, entities.ErrInvalidAssignment
	}
	raw := in.Status
	if strings.TrimSpace(raw) == "" {
		raw = string(entities.AssignmentStatusCompleted)
	}
	target, err := entities.ParseAssignmentStatus(raw)
	if err != nil {
		return entities.Order{}, err
	}

	ctx = u.log.WithFields(ctx, map[string]any{"order_id": orderID, "ordinal": in.Ordinal, "item_id": itemID, "employee_id": employeeID})
	return u.mutateStage(ctx, orderID, in.Ordinal, nil, func(_ *entities.Order, stage *entities.Stage, now time.Time) (bool, error) {
		a, ok := stage.AssignmentFor(itemID, employeeID)
		if !ok {
			return false, ErrAssignmentNotFound
		}
		changed, err := a.Transition(target, now)
		if err != nil {
			return false, err
		}
		if !changed {
			u.log.Debug(ctx, "[tracker][usecase] assignment already "+string(target))
			return false, nil
		}
		u.metrics.AssignmentUpdated(string(target))
		u.log.Info(ctx, "[tracker][usecase] assignment updated status="+string(target))
		return true, nil
	})
}

func (u *StageTrackerUseCase) SetOverallStatus(ctx context.Context, orderID, status string) (entities.Order, error) {
	id, err := parseOrderID(orderID)
	if err != nil {
		return entities.Order{}, err
	}
	status = strings.TrimSpace(status)
	if status == "" {
		return entities.Order{}, ErrInvalidOverallStatus
	}

	ctx = u.log.WithOrderID(ctx, id)
	unlock, err := lockOrder(ctx, u.locker, id)
	if err != nil {
		return entities.Order{}, err
	}
	defer unlock()

	order, err := loadOrder(ctx, u.repo, id)
	if err != nil {
		return entities.Order{}, err
	}
	if err := u.write(ctx, id, interfaces.OrderUpdate{OverallStatus: &status}); err != nil {
		return entities.Order{}, err
	}
	order.OverallStatus = status
	order.UpdatedAt = u.now()
	u.log.Info(ctx, "[tracker][usecase] overall status set status="+status)
	return order, nil
}

// mutateStage runs fn against one stage under the order lock and persists the
// whole stage list when fn reports a change.
func (u *StageTrackerUseCase) mutateStage(
	ctx context.Context,
	orderID string,
	ordinal int,
	overall *string,
	fn func(order *entities.Order, stage *entities.Stage, now time.Time) (bool, error),
) (entities.Order, error) {
	unlock, err := lockOrder(ctx, u.locker, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	defer unlock()

	order, err := loadOrder(ctx, u.repo, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if len(order.Stages) == 0 {
		return entities.Order{}, ErrEmptyTracking
	}
	stage, ok := order.StageByOrdinal(ordinal)
	if !ok {
		return entities.Order{}, ErrStageNotFound
	}

	now := u.now()
	changed, err := fn(&order, stage, now)
	if err != nil {
		u.log.Warn(ctx, "[tracker][usecase] rejected: "+err.Error())
		return entities.Order{}, err
	}
	if !changed && overall == nil {
		return order, nil
	}

	upd := interfaces.OrderUpdate{OverallStatus: overall}
	if changed {
		upd.Stages = order.Stages
	}
	if err := u.write(ctx, orderID, upd); err != nil {
		return entities.Order{}, err
	}
	if overall != nil {
		order.OverallStatus = *overall
	}
	order.UpdatedAt = now
	return order, nil
}

func (u *StageTrackerUseCase) write(ctx context.Context, orderID string, upd interfaces.OrderUpdate) error {
	matched, err := u.repo.UpdateFields(ctx, orderID, upd)
	if err != nil {
		u.log.Error(ctx, "[tracker][usecase] update failed", err)
		return storageErr("update order", err)
	}
	if matched == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func normalizeOverall(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
