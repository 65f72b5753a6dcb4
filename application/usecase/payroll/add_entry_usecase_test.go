package payroll

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/roamops/roamops/application/port/inbound"
	"github.com/roamops/roamops/domain"
)

func TestAddEntry_CreatesCompletedEntry(t *testing.T) {
	store := newMockStore()
	uc := NewAddEntryUseCase(store, noopLocker{})

	store.expectWeekUnlocked(testTime(9))
	store.timeEntries.On("FindStartingNear", mock.Anything, "emp-1", testTime(9), conflictWindow).
		Return([]*domain.TimeEntry{}, nil)
	store.timeEntries.On("Create", mock.Anything, mock.MatchedBy(func(entry *domain.TimeEntry) bool {
		return entry.UserID == "emp-1" &&
			entry.Location == LocationManualEntry &&
			entry.Status == domain.TimeEntryStatusCompleted &&
			len(entry.AuditTrail) == 1
	})).Return(nil)
	store.auditLogs.On("Create", mock.Anything, mock.MatchedBy(func(log *domain.AuditLog) bool {
		return log.Action == domain.ActionManualEntryCreate
	})).Return(nil)

	result, err := uc.Execute(context.Background(), "admin-1", inbound.AddEntryRequest{
		EmployeeID: "emp-1",
		Start:      testTime(9),
		End:        timePtr(testTime(17)),
		Reason:     "missed shift entry",
	})

	assert.NoError(t, err)
	assert.True(t, result.Success)
	store.assertExpectations(t)
}

func TestAddEntry_OpenEntryStaysActive(t *testing.T) {
	store := newMockStore()
	uc := NewAddEntryUseCase(store, noopLocker{})

	store.expectWeekUnlocked(testTime(9))
	store.timeEntries.On("FindStartingNear", mock.Anything, "emp-1", testTime(9), conflictWindow).
		Return([]*domain.TimeEntry{}, nil)
	store.timeEntries.On("Create", mock.Anything, mock.MatchedBy(func(entry *domain.TimeEntry) bool {
		return entry.IsOpen() && entry.Status == domain.TimeEntryStatusActive && entry.Duration == nil
	})).Return(nil)
	store.auditLogs.On("Create", mock.Anything, mock.Anything).Return(nil)

	result, err := uc.Execute(context.Background(), "admin-1", inbound.AddEntryRequest{
		EmployeeID: "emp-1",
		Start:      testTime(9),
		Reason:     "shift still running",
	})

	assert.NoError(t, err)
	assert.True(t, result.Success)
}

func TestAddEntry_Overlap(t *testing.T) {
	store := newMockStore()
	uc := NewAddEntryUseCase(store, noopLocker{})

	existing, _ := domain.NewTimeEntry("entry-1", "emp-1", testTime(8), timePtr(testTime(12)), "Front Desk", "employee", "")

	store.expectWeekUnlocked(testTime(9))
	store.timeEntries.On("FindStartingNear", mock.Anything, "emp-1", testTime(9), conflictWindow).
		Return([]*domain.TimeEntry{existing}, nil)

	result, err := uc.Execute(context.Background(), "admin-1", inbound.AddEntryRequest{
		EmployeeID: "emp-1",
		Start:      testTime(9),
		End:        timePtr(testTime(17)),
		Reason:     "double booked",
	})

	assert.NoError(t, err)
	assert.False(t, result.Success)
	assert.True(t, result.IsConflict)
	assert.Equal(t, "entry-1", result.ConflictingEntry.ID)
	store.timeEntries.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAddEntry_InvalidInterval(t *testing.T) {
	store := newMockStore()
	uc := NewAddEntryUseCase(store, noopLocker{})

	result, err := uc.Execute(context.Background(), "admin-1", inbound.AddEntryRequest{
		EmployeeID: "emp-1",
		Start:      testTime(17),
		End:        timePtr(testTime(9)),
		Reason:     "backwards",
	})

	assert.NoError(t, err)
	assert.False(t, result.Success)
	store.locks.AssertNotCalled(t, "Find", mock.Anything, mock.Anything, mock.Anything)
}

func TestAddEntry_LockedWeek(t *testing.T) {
	store := newMockStore()
	uc := NewAddEntryUseCase(store, noopLocker{})

	store.expectWeekLocked(testTime(9))

	result, err := uc.Execute(context.Background(), "admin-1", inbound.AddEntryRequest{
		EmployeeID: "emp-1",
		Start:      testTime(9),
		End:        timePtr(testTime(17)),
		Reason:     "into a frozen week",
	})

	assert.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "locked")
}
