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

type ApproveRequestUseCase struct {
	store  outbound.PrivilegedStore
	locker outbound.EmployeeLocker
}

func NewApproveRequestUseCase(store outbound.PrivilegedStore, locker outbound.EmployeeLocker) *ApproveRequestUseCase {
	return &ApproveRequestUseCase{store: store, locker: locker}
}

// Execute approves a pending correction request. Without forceOverride a
// detected conflict is returned for a human decision and nothing mutates.
// With forceOverride every conflicting entry is deleted before the new one
// is written: overwrite semantics, not partial resolution.
func (uc *ApproveRequestUseCase) Execute(ctx context.Context, actorID, requestID string, forceOverride bool) (*inbound.PayrollResult, error) {
	request, err := uc.store.Requests().FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, domain.ErrRequestNotFound) {
			return failure("Correction request not found"), nil
		}
		return nil, fmt.Errorf("failed to load correction request: %w", err)
	}
	if request.Status != domain.RequestStatusPending {
		return failure("Correction request already resolved"), nil
	}
	if request.EndTime.Before(request.StartTime) {
		return failure(domain.ErrInvalidInterval.Error()), nil
	}

	locked, err := periodLocked(ctx, uc.store, request.StartTime)
	if err != nil {
		return nil, err
	}
	if locked {
		return failure(lockedMessage(request.StartTime)), nil
	}

	release, err := uc.locker.Acquire(ctx, request.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire payroll lock for employee: %w", err)
	}
	defer release()

	end := request.EndTime
	conflicts, err := findConflicts(ctx, uc.store, request.UserID, request.StartTime, &end, "", time.Now())
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 && !forceOverride {
		return conflictResult(conflicts[0]), nil
	}

	var entryID string
	err = uc.store.WithinTx(ctx, func(tx outbound.PrivilegedStore) error {
		if len(conflicts) > 0 {
			overwrite := domain.NewAuditLog(
				uuid.New().String(), actorID, domain.ActionOverwriteConflict,
				"time_entries", request.ID,
				map[string]interface{}{
					"request_id":      request.ID,
					"deleted_entries": conflicts,
				},
			)
			if err := tx.AuditLogs().Create(ctx, overwrite); err != nil {
				return fmt.Errorf("failed to record conflict overwrite: %w", err)
			}
			for _, conflict := range conflicts {
				if err := tx.TimeEntries().Delete(ctx, conflict.ID); err != nil {
					return fmt.Errorf("failed to delete conflicting entry %s: %w", conflict.ID, err)
				}
			}
		}

		entry, err := domain.NewTimeEntry(
			uuid.New().String(), request.UserID, request.StartTime, &end,
			domain.LocationAdminCorrection, domain.RoleEmployee,
			"Approved correction request: "+request.Reason,
		)
		if err != nil {
			return err
		}
		entry.AppendAuditEvent(actorID, request.Reason, "Created from approved correction request "+request.ID)
		if err := tx.TimeEntries().Create(ctx, entry); err != nil {
			return fmt.Errorf("failed to create time entry: %w", err)
		}
		entryID = entry.ID

		if err := request.Accept(); err != nil {
			return err
		}
		if err := tx.Requests().UpdateStatus(ctx, request.ID, request.Status); err != nil {
			return fmt.Errorf("failed to update request status: %w", err)
		}
		if err := tx.Employees().IncrementCorrectionCount(ctx, request.UserID); err != nil {
			return fmt.Errorf("failed to increment correction count: %w", err)
		}

		approval := domain.NewAuditLog(
			uuid.New().String(), actorID, domain.ActionApproveTimeRequest,
			"time_sheet_requests", request.ID,
			map[string]interface{}{
				"entry_id":   entry.ID,
				"start_time": request.StartTime,
				"end_time":   request.EndTime,
				"reason":     request.Reason,
			},
		)
		return tx.AuditLogs().Create(ctx, approval)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to approve correction request: %w", err)
	}

	return success(fmt.Sprintf("Correction request approved; created time entry %s", entryID)), nil
}
