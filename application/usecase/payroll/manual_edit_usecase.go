package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/roamops/roamops/application/port/inbound"
	"github.com/roamops/roamops/application/port/outbound"
	"github.com/roamops/roamops/domain"
)

type ManualEditUseCase struct {
	store  outbound.PrivilegedStore
	locker outbound.EmployeeLocker
}

func NewManualEditUseCase(store outbound.PrivilegedStore, locker outbound.EmployeeLocker) *ManualEditUseCase {
	return &ManualEditUseCase{store: store, locker: locker}
}

// Execute rewrites a time entry's interval in place. ResumeShift is the
// undo-an-accidental-clock-out affordance: the end time is forced open no
// matter what the caller supplied. The period-lock guard runs against the
// ORIGINAL start, so an entry cannot be edited out of a frozen week.
func (uc *ManualEditUseCase) Execute(ctx context.Context, actorID string, req inbound.ManualEditRequest) (*inbound.PayrollResult, error) {
	entry, err := uc.store.TimeEntries().FindByID(ctx, req.EntryID)
	if err != nil {
		if errors.Is(err, domain.ErrEntryNotFound) {
			return failure("Time entry not found"), nil
		}
		return nil, fmt.Errorf("failed to load time entry: %w", err)
	}

	newEnd := req.NewEnd
	if req.ResumeShift {
		newEnd = nil
	}
	if newEnd != nil && newEnd.Before(req.NewStart) {
		return failure(domain.ErrInvalidInterval.Error()), nil
	}

	locked, err := periodLocked(ctx, uc.store, entry.StartTime)
	if err != nil {
		return nil, err
	}
	if locked {
		return failure(lockedMessage(entry.StartTime)), nil
	}

	release, err := uc.locker.Acquire(ctx, entry.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire payroll lock for employee: %w", err)
	}
	defer release()

	conflicts, err := findConflicts(ctx, uc.store, entry.UserID, req.NewStart, newEnd, entry.ID, time.Now())
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		return conflictResult(conflicts[0]), nil
	}

	oldRange := entry.RangeString()
	if err := entry.SetInterval(req.NewStart, newEnd); err != nil {
		return failure(err.Error()), nil
	}
	change := fmt.Sprintf("%s -> %s", oldRange, entry.RangeString())
	if req.ResumeShift {
		change = "RESUMED SHIFT"
	}
	entry.AppendAuditEvent(actorID, req.Reason, change)

	err = uc.store.WithinTx(ctx, func(tx outbound.PrivilegedStore) error {
		if err := tx.TimeEntries().Update(ctx, entry); err != nil {
			return fmt.Errorf("failed to update time entry: %w", err)
		}
		edit := domain.NewAuditLog(
			uuid.New().String(), actorID, domain.ActionManualTimeEdit,
			"time_entries", entry.ID,
			map[string]interface{}{
				"old_range":    oldRange,
				"new_range":    entry.RangeString(),
				"reason":       req.Reason,
				"resume_shift": req.ResumeShift,
			},
		)
		return tx.AuditLogs().Create(ctx, edit)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to edit time entry: %w", err)
	}

	if req.ResumeShift {
		return success("Shift resumed; entry is active again"), nil
	}
	return success("Time entry updated"), nil
}
