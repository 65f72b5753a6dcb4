package payroll

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/roamops/roamops/application/port/inbound"
	"github.com/roamops/roamops/domain"
)

func TestToggleLock_LockWeek(t *testing.T) {
	store := newMockStore()
	uc := NewToggleLockUseCase(store)

	period := domain.PeriodForDate(testTime(9))
	store.locks.On("Create", mock.Anything, mock.MatchedBy(func(lock *domain.PayrollLock) bool {
		return lock.PeriodStart.Equal(period.Start) &&
			lock.PeriodEnd.Equal(period.End) &&
			lock.GeneratedBy == "admin-1" &&
			lock.Status == domain.LockStatusLocked
	})).Return(nil)
	store.auditLogs.On("Create", mock.Anything, mock.MatchedBy(func(log *domain.AuditLog) bool {
		return log.Action == domain.ActionLockPayrollWeek
	})).Return(nil)

	result, err := uc.Execute(context.Background(), "admin-1", inbound.ToggleLockRequest{
		WeekStart: testTime(9),
		Action:    inbound.LockActionLock,
	})

	assert.NoError(t, err)
	assert.True(t, result.Success)
	store.assertExpectations(t)
}

func TestToggleLock_AlreadyLocked(t *testing.T) {
	store := newMockStore()
	uc := NewToggleLockUseCase(store)

	store.locks.On("Create", mock.Anything, mock.Anything).Return(domain.ErrWeekAlreadyLocked)

	result, err := uc.Execute(context.Background(), "admin-1", inbound.ToggleLockRequest{
		WeekStart: testTime(9),
		Action:    inbound.LockActionLock,
	})

	assert.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "locked")
}

func TestToggleLock_UnlockWeek(t *testing.T) {
	store := newMockStore()
	uc := NewToggleLockUseCase(store)

	period := domain.PeriodForDate(testTime(9))
	store.locks.On("Delete", mock.Anything, period.Start, period.End).Return(nil)
	store.auditLogs.On("Create", mock.Anything, mock.MatchedBy(func(log *domain.AuditLog) bool {
		return log.Action == domain.ActionUnlockPayrollWeek
	})).Return(nil)

	result, err := uc.Execute(context.Background(), "admin-1", inbound.ToggleLockRequest{
		WeekStart: testTime(9),
		Action:    inbound.LockActionUnlock,
	})

	assert.NoError(t, err)
	assert.True(t, result.Success)
	store.assertExpectations(t)
}

func TestToggleLock_UnlockWhenNotLocked(t *testing.T) {
	store := newMockStore()
	uc := NewToggleLockUseCase(store)

	period := domain.PeriodForDate(testTime(9))
	store.locks.On("Delete", mock.Anything, period.Start, period.End).Return(domain.ErrWeekNotLocked)

	result, err := uc.Execute(context.Background(), "admin-1", inbound.ToggleLockRequest{
		WeekStart: testTime(9),
		Action:    inbound.LockActionUnlock,
	})

	assert.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "not locked")
}

func TestToggleLock_UnknownAction(t *testing.T) {
	store := newMockStore()
	uc := NewToggleLockUseCase(store)

	result, err := uc.Execute(context.Background(), "admin-1", inbound.ToggleLockRequest{
		WeekStart: testTime(9),
		Action:    "freeze",
	})

	assert.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "Unknown lock action")
}
