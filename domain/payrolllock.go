package domain

import "time"

// LockStatusLocked is the only status a payroll lock row carries; the row's
// presence is what freezes the week.
const LockStatusLocked = "locked"

// PayrollPeriod is one ISO week, Monday through Sunday. Both bounds are
// dates at midnight UTC.
type PayrollPeriod struct {
	Start time.Time `json:"period_start"`
	End   time.Time `json:"period_end"`
}

// PeriodForDate returns the ISO week containing t.
func PeriodForDate(t time.Time) PayrollPeriod {
	t = t.UTC()
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	monday := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, -daysSinceMonday)
	return PayrollPeriod{
		Start: monday,
		End:   monday.AddDate(0, 0, 6),
	}
}

// Contains reports whether t falls within the period's Monday-Sunday range.
func (p PayrollPeriod) Contains(t time.Time) bool {
	t = t.UTC()
	return !t.Before(p.Start) && t.Before(p.End.AddDate(0, 0, 1))
}

// PayrollLock marks an ISO week as frozen against time-entry edits.
// At most one lock exists per (period_start, period_end) pair.
type PayrollLock struct {
	ID          string    `json:"id"`
	PeriodStart time.Time `json:"period_start"`
	PeriodEnd   time.Time `json:"period_end"`
	GeneratedBy string    `json:"generated_by"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewPayrollLock creates a lock for the ISO week containing weekStart
func NewPayrollLock(id, generatedBy string, weekStart time.Time) *PayrollLock {
	period := PeriodForDate(weekStart)
	return &PayrollLock{
		ID:          id,
		PeriodStart: period.Start,
		PeriodEnd:   period.End,
		GeneratedBy: generatedBy,
		Status:      LockStatusLocked,
		CreatedAt:   time.Now(),
	}
}
