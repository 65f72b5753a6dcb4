package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/roamops/roamops/application/port/inbound"
	"github.com/roamops/roamops/application/port/outbound"
	"github.com/roamops/roamops/domain"
)

// conflictWindow bounds the candidate set for overlap detection: only
// entries starting within a day of the proposed start can intersect a
// same-day interval.
const conflictWindow = 24 * time.Hour

// periodLocked reports whether the ISO week containing date is frozen.
// Must be consulted before any mutation; the lock is never bypassable.
func periodLocked(ctx context.Context, store outbound.PrivilegedStore, date time.Time) (bool, error) {
	period := domain.PeriodForDate(date)
	lock, err := store.PayrollLocks().Find(ctx, period.Start, period.End)
	if err != nil {
		return false, fmt.Errorf("failed to check payroll lock: %w", err)
	}
	return lock != nil && lock.Status == domain.LockStatusLocked, nil
}

// findConflicts returns every existing entry of the employee that intersects
// the proposed interval. The coarse candidate window comes from the store;
// the precise half-open interval test is domain logic.
func findConflicts(ctx context.Context, store outbound.PrivilegedStore, userID string, start time.Time, end *time.Time, excludeID string, now time.Time) ([]*domain.TimeEntry, error) {
	candidates, err := store.TimeEntries().FindStartingNear(ctx, userID, start, conflictWindow)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate entries: %w", err)
	}
	return domain.Conflicts(candidates, start, end, excludeID, now), nil
}

func lockedMessage(date time.Time) string {
	period := domain.PeriodForDate(date)
	return fmt.Sprintf("Payroll week %s - %s is locked",
		period.Start.Format("2006-01-02"), period.End.Format("2006-01-02"))
}

func conflictResult(conflict *domain.TimeEntry) *inbound.PayrollResult {
	return &inbound.PayrollResult{
		Success:          false,
		Message:          fmt.Sprintf("Proposed interval overlaps existing time entry %s", conflict.RangeString()),
		IsConflict:       true,
		ConflictingEntry: conflict,
	}
}

func failure(message string) *inbound.PayrollResult {
	return &inbound.PayrollResult{Success: false, Message: message}
}

func success(message string) *inbound.PayrollResult {
	return &inbound.PayrollResult{Success: true, Message: message}
}
