package payroll

import (
	"context"
	"time"

	"github.com/roamops/roamops/application/port/inbound"
	"github.com/roamops/roamops/application/port/outbound"
	"github.com/roamops/roamops/domain"
)

// PayrollUseCaseImpl is the workflow boundary: expected conditions come back
// as results from the individual use cases, and unexpected store errors are
// converted into the same result shape here instead of crashing the caller.
type PayrollUseCaseImpl struct {
	store                 outbound.PrivilegedStore
	approveRequestUseCase *ApproveRequestUseCase
	denyRequestUseCase    *DenyRequestUseCase
	manualEditUseCase     *ManualEditUseCase
	addEntryUseCase       *AddEntryUseCase
	deleteEntryUseCase    *DeleteEntryUseCase
	toggleLockUseCase     *ToggleLockUseCase
}

func NewPayrollUseCase(store outbound.PrivilegedStore, locker outbound.EmployeeLocker) inbound.PayrollUseCase {
	return &PayrollUseCaseImpl{
		store:                 store,
		approveRequestUseCase: NewApproveRequestUseCase(store, locker),
		denyRequestUseCase:    NewDenyRequestUseCase(store),
		manualEditUseCase:     NewManualEditUseCase(store, locker),
		addEntryUseCase:       NewAddEntryUseCase(store, locker),
		deleteEntryUseCase:    NewDeleteEntryUseCase(store),
		toggleLockUseCase:     NewToggleLockUseCase(store),
	}
}

func (uc *PayrollUseCaseImpl) ApproveRequest(ctx context.Context, actorID, requestID string, forceOverride bool) *inbound.PayrollResult {
	if actorID == "" {
		return failure("Unauthorized: no acting session")
	}
	result, err := uc.approveRequestUseCase.Execute(ctx, actorID, requestID, forceOverride)
	if err != nil {
		return storeFailure(err)
	}
	return result
}

func (uc *PayrollUseCaseImpl) DenyRequest(ctx context.Context, actorID, requestID string) *inbound.PayrollResult {
	if actorID == "" {
		return failure("Unauthorized: no acting session")
	}
	result, err := uc.denyRequestUseCase.Execute(ctx, actorID, requestID)
	if err != nil {
		return storeFailure(err)
	}
	return result
}

func (uc *PayrollUseCaseImpl) ManualEdit(ctx context.Context, actorID string, req inbound.ManualEditRequest) *inbound.PayrollResult {
	if actorID == "" {
		return failure("Unauthorized: no acting session")
	}
	result, err := uc.manualEditUseCase.Execute(ctx, actorID, req)
	if err != nil {
		return storeFailure(err)
	}
	return result
}

func (uc *PayrollUseCaseImpl) AddEntry(ctx context.Context, actorID string, req inbound.AddEntryRequest) *inbound.PayrollResult {
	if actorID == "" {
		return failure("Unauthorized: no acting session")
	}
	result, err := uc.addEntryUseCase.Execute(ctx, actorID, req)
	if err != nil {
		return storeFailure(err)
	}
	return result
}

func (uc *PayrollUseCaseImpl) DeleteEntry(ctx context.Context, actorID, entryID, reason string) *inbound.PayrollResult {
	if actorID == "" {
		return failure("Unauthorized: no acting session")
	}
	result, err := uc.deleteEntryUseCase.Execute(ctx, actorID, entryID, reason)
	if err != nil {
		return storeFailure(err)
	}
	return result
}

func (uc *PayrollUseCaseImpl) ToggleLock(ctx context.Context, actorID string, req inbound.ToggleLockRequest) *inbound.PayrollResult {
	if actorID == "" {
		return failure("Unauthorized: no acting session")
	}
	result, err := uc.toggleLockUseCase.Execute(ctx, actorID, req)
	if err != nil {
		return storeFailure(err)
	}
	return result
}

func (uc *PayrollUseCaseImpl) ListPendingRequests(ctx context.Context, limit int) ([]*domain.TimeSheetRequest, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return uc.store.Requests().ListByStatus(ctx, domain.RequestStatusPending, limit)
}

func (uc *PayrollUseCaseImpl) ListEntries(ctx context.Context, employeeID string, from, to time.Time) ([]*domain.TimeEntry, error) {
	return uc.store.TimeEntries().ListForRange(ctx, employeeID, from, to)
}

func (uc *PayrollUseCaseImpl) LockStatus(ctx context.Context, date time.Time) (*inbound.LockStatusResponse, error) {
	period := domain.PeriodForDate(date)
	lock, err := uc.store.PayrollLocks().Find(ctx, period.Start, period.End)
	if err != nil {
		return nil, err
	}
	return &inbound.LockStatusResponse{
		PeriodStart: period.Start,
		PeriodEnd:   period.End,
		Locked:      lock != nil,
	}, nil
}

func (uc *PayrollUseCaseImpl) ListAuditLogs(ctx context.Context, tableName, recordID string, limit int) ([]*domain.AuditLog, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return uc.store.AuditLogs().ListByRecord(ctx, tableName, recordID, limit)
}

// storeFailure converts an unexpected persistence error into the uniform
// result shape. The store message rides along; it is never swallowed.
func storeFailure(err error) *inbound.PayrollResult {
	return &inbound.PayrollResult{
		Success: false,
		Message: "Store operation failed: " + err.Error(),
	}
}
