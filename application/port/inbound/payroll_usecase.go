package inbound

import (
	"context"
	"time"

	"github.com/roamops/roamops/domain"
)

// PayrollResult is the uniform shape every payroll workflow returns.
// Expected failure conditions (lock, overlap, not-found) are reported here
// rather than raised; only the message is meant for direct display.
type PayrollResult struct {
	Success          bool              `json:"success"`
	Message          string            `json:"message"`
	IsConflict       bool              `json:"is_conflict,omitempty"`
	ConflictingEntry *domain.TimeEntry `json:"conflicting_entry,omitempty"`
}

type ManualEditRequest struct {
	EntryID     string     `json:"-"`
	NewStart    time.Time  `json:"start_time" validate:"required"`
	NewEnd      *time.Time `json:"end_time"`
	Reason      string     `json:"reason" validate:"required"`
	ResumeShift bool       `json:"resume_shift"`
}

type AddEntryRequest struct {
	EmployeeID string     `json:"user_id" validate:"required"`
	Start      time.Time  `json:"start_time" validate:"required"`
	End        *time.Time `json:"end_time"`
	Reason     string     `json:"reason" validate:"required"`
}

// Payroll lock actions
const (
	LockActionLock   = "lock"
	LockActionUnlock = "unlock"
)

type ToggleLockRequest struct {
	WeekStart time.Time `json:"week_start" validate:"required"`
	Action    string    `json:"action" validate:"required"`
}

// PayrollUseCase exposes the payroll correction and conflict-resolution
// workflows. Every operation requires an acting admin; actorID identifies
// the session established by the auth middleware.
type PayrollUseCase interface {
	ApproveRequest(ctx context.Context, actorID, requestID string, forceOverride bool) *PayrollResult
	DenyRequest(ctx context.Context, actorID, requestID string) *PayrollResult
	ManualEdit(ctx context.Context, actorID string, req ManualEditRequest) *PayrollResult
	AddEntry(ctx context.Context, actorID string, req AddEntryRequest) *PayrollResult
	DeleteEntry(ctx context.Context, actorID, entryID, reason string) *PayrollResult
	ToggleLock(ctx context.Context, actorID string, req ToggleLockRequest) *PayrollResult

	ListPendingRequests(ctx context.Context, limit int) ([]*domain.TimeSheetRequest, error)
	ListEntries(ctx context.Context, employeeID string, from, to time.Time) ([]*domain.TimeEntry, error)
	LockStatus(ctx context.Context, date time.Time) (*LockStatusResponse, error)
	ListAuditLogs(ctx context.Context, tableName, recordID string, limit int) ([]*domain.AuditLog, error)
}

type LockStatusResponse struct {
	PeriodStart time.Time `json:"period_start"`
	PeriodEnd   time.Time `json:"period_end"`
	Locked      bool      `json:"locked"`
}
