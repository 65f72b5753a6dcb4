package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/roamops/roamops/application/port/inbound"
	"github.com/roamops/roamops/application/port/outbound"
	"github.com/roamops/roamops/domain"
)

// LocationManualEntry labels entries inserted directly by an administrator
const LocationManualEntry = "Manual Entry"

type AddEntryUseCase struct {
	store  outbound.PrivilegedStore
	locker outbound.EmployeeLocker
}

func NewAddEntryUseCase(store outbound.PrivilegedStore, locker outbound.EmployeeLocker) *AddEntryUseCase {
	return &AddEntryUseCase{store: store, locker: locker}
}

// Execute inserts a time entry outside the normal clock-in/out flow. An
// open entry (no end) is created active with no duration.
func (uc *AddEntryUseCase) Execute(ctx context.Context, actorID string, req inbound.AddEntryRequest) (*inbound.PayrollResult, error) {
	if req.End != nil && req.End.Before(req.Start) {
		return failure(domain.ErrInvalidInterval.Error()), nil
	}

	locked, err := periodLocked(ctx, uc.store, req.Start)
	if err != nil {
		return nil, err
	}
	if locked {
		return failure(lockedMessage(req.Start)), nil
	}

	release, err := uc.locker.Acquire(ctx, req.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire payroll lock for employee: %w", err)
	}
	defer release()

	conflicts, err := findConflicts(ctx, uc.store, req.EmployeeID, req.Start, req.End, "", time.Now())
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		return conflictResult(conflicts[0]), nil
	}

	entry, err := domain.NewTimeEntry(
		uuid.New().String(), req.EmployeeID, req.Start, req.End,
		LocationManualEntry, domain.RoleEmployee, req.Reason,
	)
	if err != nil {
		return failure(err.Error()), nil
	}
	entry.AppendAuditEvent(actorID, req.Reason, "Created Manual Entry")

	err = uc.store.WithinTx(ctx, func(tx outbound.PrivilegedStore) error {
		if err := tx.TimeEntries().Create(ctx, entry); err != nil {
			return fmt.Errorf("failed to create time entry: %w", err)
		}
		created := domain.NewAuditLog(
			uuid.New().String(), actorID, domain.ActionManualEntryCreate,
			"time_entries", entry.ID,
			map[string]interface{}{
				"user_id":    entry.UserID,
				"start_time": entry.StartTime,
				"end_time":   entry.EndTime,
				"reason":     req.Reason,
			},
		)
		return tx.AuditLogs().Create(ctx, created)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add time entry: %w", err)
	}

	return success(fmt.Sprintf("Created time entry %s", entry.ID)), nil
}
