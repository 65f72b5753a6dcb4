package payroll

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/roamops/roamops/application/port/inbound"
	"github.com/roamops/roamops/application/port/outbound"
	"github.com/roamops/roamops/domain"
)

type ToggleLockUseCase struct {
	store outbound.PrivilegedStore
}

func NewToggleLockUseCase(store outbound.PrivilegedStore) *ToggleLockUseCase {
	return &ToggleLockUseCase{store: store}
}

// Execute freezes or unfreezes the ISO week containing WeekStart. Store
// uniqueness keeps at most one lock per week.
func (uc *ToggleLockUseCase) Execute(ctx context.Context, actorID string, req inbound.ToggleLockRequest) (*inbound.PayrollResult, error) {
	period := domain.PeriodForDate(req.WeekStart)

	switch req.Action {
	case inbound.LockActionLock:
		lock := domain.NewPayrollLock(uuid.New().String(), actorID, req.WeekStart)
		err := uc.store.WithinTx(ctx, func(tx outbound.PrivilegedStore) error {
			if err := tx.PayrollLocks().Create(ctx, lock); err != nil {
				return err
			}
			locked := domain.NewAuditLog(
				uuid.New().String(), actorID, domain.ActionLockPayrollWeek,
				"payroll_reports", lock.ID,
				map[string]interface{}{
					"period_start": lock.PeriodStart,
					"period_end":   lock.PeriodEnd,
				},
			)
			return tx.AuditLogs().Create(ctx, locked)
		})
		if err != nil {
			if errors.Is(err, domain.ErrWeekAlreadyLocked) {
				return failure(lockedMessage(req.WeekStart)), nil
			}
			return nil, fmt.Errorf("failed to lock payroll week: %w", err)
		}
		return success(fmt.Sprintf("Locked payroll week %s - %s",
			period.Start.Format("2006-01-02"), period.End.Format("2006-01-02"))), nil

	case inbound.LockActionUnlock:
		err := uc.store.WithinTx(ctx, func(tx outbound.PrivilegedStore) error {
			if err := tx.PayrollLocks().Delete(ctx, period.Start, period.End); err != nil {
				return err
			}
			unlocked := domain.NewAuditLog(
				uuid.New().String(), actorID, domain.ActionUnlockPayrollWeek,
				"payroll_reports", "",
				map[string]interface{}{
					"period_start": period.Start,
					"period_end":   period.End,
				},
			)
			return tx.AuditLogs().Create(ctx, unlocked)
		})
		if err != nil {
			if errors.Is(err, domain.ErrWeekNotLocked) {
				return failure("Payroll week is not locked"), nil
			}
			return nil, fmt.Errorf("failed to unlock payroll week: %w", err)
		}
		return success(fmt.Sprintf("Unlocked payroll week %s - %s",
			period.Start.Format("2006-01-02"), period.End.Format("2006-01-02"))), nil

	default:
		return failure(fmt.Sprintf("Unknown lock action: %s", req.Action)), nil
	}
}
