package payroll

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/roamops/roamops/domain"
)

func TestDeleteEntry_BacksUpRow(t *testing.T) {
	store := newMockStore()
	uc := NewDeleteEntryUseCase(store)

	entry := existingEntry()
	store.timeEntries.On("FindByID", mock.Anything, "entry-1").Return(entry, nil)
	store.expectWeekUnlocked(entry.StartTime)
	store.timeEntries.On("Delete", mock.Anything, "entry-1").Return(nil)
	store.auditLogs.On("Create", mock.Anything, mock.MatchedBy(func(log *domain.AuditLog) bool {
		if log.Action != domain.ActionDeleteTimeEntry {
			return false
		}
		var payload struct {
			Backup *domain.TimeEntry `json:"backup"`
			Reason string            `json:"reason"`
		}
		if err := json.Unmarshal(log.NewData, &payload); err != nil {
			return false
		}
		return payload.Backup != nil && payload.Backup.ID == "entry-1" && payload.Reason == "duplicate entry"
	})).Return(nil)

	result, err := uc.Execute(context.Background(), "admin-1", "entry-1", "duplicate entry")

	assert.NoError(t, err)
	assert.True(t, result.Success)
	store.assertExpectations(t)
}

func TestDeleteEntry_LockedWeek(t *testing.T) {
	store := newMockStore()
	uc := NewDeleteEntryUseCase(store)

	entry := existingEntry()
	store.timeEntries.On("FindByID", mock.Anything, "entry-1").Return(entry, nil)
	store.expectWeekLocked(entry.StartTime)

	result, err := uc.Execute(context.Background(), "admin-1", "entry-1", "should not happen")

	assert.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "locked")
	store.timeEntries.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteEntry_NotFound(t *testing.T) {
	store := newMockStore()
	uc := NewDeleteEntryUseCase(store)

	store.timeEntries.On("FindByID", mock.Anything, "missing").Return(nil, domain.ErrEntryNotFound)

	result, err := uc.Execute(context.Background(), "admin-1", "missing", "gone already")

	assert.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "not found")
}
