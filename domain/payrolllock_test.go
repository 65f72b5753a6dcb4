package domain

import (
	"testing"
	"time"
)

func TestPeriodForDate(t *testing.T) {
	cases := []struct {
		name      string
		date      time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "Wednesday",
			date:      time.Date(2026, 3, 11, 15, 30, 0, 0, time.UTC),
			wantStart: time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "MondayMidnight",
			date:      time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
			wantStart: time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "SundayBelongsToPrecedingMonday",
			date:      time.Date(2026, 3, 15, 23, 59, 0, 0, time.UTC),
			wantStart: time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "YearBoundary",
			date:      time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC), // Thursday
			wantStart: time.Date(2025, 12, 29, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, 1, 4, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			period := PeriodForDate(tc.date)
			if !period.Start.Equal(tc.wantStart) {
				t.Errorf("Start = %v, want %v", period.Start, tc.wantStart)
			}
			if !period.End.Equal(tc.wantEnd) {
				t.Errorf("End = %v, want %v", period.End, tc.wantEnd)
			}
		})
	}
}

func TestPeriodContains(t *testing.T) {
	period := PeriodForDate(time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC))

	if !period.Contains(time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)) {
		t.Error("Monday midnight should be inside the week")
	}
	if !period.Contains(time.Date(2026, 3, 15, 23, 59, 59, 0, time.UTC)) {
		t.Error("late Sunday should be inside the week")
	}
	if period.Contains(time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)) {
		t.Error("next Monday should be outside the week")
	}
	if period.Contains(time.Date(2026, 3, 8, 23, 0, 0, 0, time.UTC)) {
		t.Error("previous Sunday should be outside the week")
	}
}

func TestNewPayrollLock(t *testing.T) {
	// any day of the week resolves to the same lock bounds
	wednesday := time.Date(2026, 3, 11, 16, 45, 0, 0, time.UTC)
	lock := NewPayrollLock("lock-1", "admin-1", wednesday)

	if lock.Status != LockStatusLocked {
		t.Errorf("status = %s, want %s", lock.Status, LockStatusLocked)
	}
	if !lock.PeriodStart.Equal(time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("period start = %v", lock.PeriodStart)
	}
	if !lock.PeriodEnd.Equal(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("period end = %v", lock.PeriodEnd)
	}
	if lock.GeneratedBy != "admin-1" {
		t.Errorf("generated by = %s", lock.GeneratedBy)
	}
}
