package domain

import (
	"fmt"
	"math"
	"time"
)

// TimeEntryStatus represents the status of a time entry
type TimeEntryStatus string

const (
	TimeEntryStatusActive    TimeEntryStatus = "active"
	TimeEntryStatusCompleted TimeEntryStatus = "completed"
)

// LocationAdminCorrection labels entries created by approving a correction request
const LocationAdminCorrection = "Admin Correction"

// AuditEvent is one line of a time entry's embedded audit trail.
// The trail is append-only; events are never edited or removed.
type AuditEvent struct {
	Editor    string    `json:"editor"`
	Timestamp time.Time `json:"timestamp"`
	Note      string    `json:"note"`
	Change    string    `json:"change"`
}

// TimeEntry represents one clock-in/clock-out interval for an employee.
// A nil EndTime means the shift is still open; Duration stays nil until
// the entry is closed.
type TimeEntry struct {
	ID         string          `json:"id"`
	UserID     string          `json:"user_id"`
	StartTime  time.Time       `json:"start_time"`
	EndTime    *time.Time      `json:"end_time,omitempty"`
	Duration   *float64        `json:"duration,omitempty"`
	Status     TimeEntryStatus `json:"status"`
	Location   string          `json:"location"`
	Role       string          `json:"role"`
	Notes      string          `json:"notes"`
	AuditTrail []AuditEvent    `json:"audit_trail"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// NewTimeEntry creates a new time entry. An entry with an end time is
// completed with a derived duration; an open entry stays active with no
// duration.
func NewTimeEntry(id, userID string, start time.Time, end *time.Time, location, role, notes string) (*TimeEntry, error) {
	now := time.Now()
	entry := &TimeEntry{
		ID:         id,
		UserID:     userID,
		StartTime:  start,
		Location:   location,
		Role:       role,
		Notes:      notes,
		AuditTrail: []AuditEvent{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := entry.SetInterval(start, end); err != nil {
		return nil, err
	}
	return entry, nil
}

// SetInterval replaces the entry's interval, recomputing duration and status.
// Rejects intervals whose end precedes their start.
func (e *TimeEntry) SetInterval(start time.Time, end *time.Time) error {
	if end != nil && end.Before(start) {
		return ErrInvalidInterval
	}
	e.StartTime = start
	e.EndTime = end
	if end == nil {
		e.Duration = nil
		e.Status = TimeEntryStatusActive
	} else {
		d := DurationHours(start, *end)
		e.Duration = &d
		e.Status = TimeEntryStatusCompleted
	}
	e.UpdatedAt = time.Now()
	return nil
}

// Resume reopens the entry: the end time is cleared and the shift becomes
// active again regardless of its previous state.
func (e *TimeEntry) Resume() {
	e.EndTime = nil
	e.Duration = nil
	e.Status = TimeEntryStatusActive
	e.UpdatedAt = time.Now()
}

// IsOpen reports whether the shift has no end time yet.
func (e *TimeEntry) IsOpen() bool {
	return e.EndTime == nil
}

// AppendAuditEvent appends a change description to the entry's audit trail.
func (e *TimeEntry) AppendAuditEvent(editor, note, change string) {
	e.AuditTrail = append(e.AuditTrail, AuditEvent{
		Editor:    editor,
		Timestamp: time.Now(),
		Note:      note,
		Change:    change,
	})
}

// OverlapsInterval reports whether the entry's interval intersects
// [start, end) using half-open semantics. Open intervals on either side are
// compared as if they ended at now.
func (e *TimeEntry) OverlapsInterval(start time.Time, end *time.Time, now time.Time) bool {
	proposedEnd := now
	if end != nil {
		proposedEnd = *end
	}
	existingEnd := now
	if e.EndTime != nil {
		existingEnd = *e.EndTime
	}
	return start.Before(existingEnd) && proposedEnd.After(e.StartTime)
}

// RangeString formats the entry's interval for user-facing messages.
func (e *TimeEntry) RangeString() string {
	if e.EndTime == nil {
		return fmt.Sprintf("%s - (open)", e.StartTime.Format(time.RFC3339))
	}
	return fmt.Sprintf("%s - %s", e.StartTime.Format(time.RFC3339), e.EndTime.Format(time.RFC3339))
}

// DurationHours returns the span between start and end in hours, rounded to
// two decimal places.
func DurationHours(start, end time.Time) float64 {
	hours := end.Sub(start).Hours()
	return math.Round(hours*100) / 100
}

// Conflicts filters candidates down to the entries that temporally intersect
// the proposed interval. The entry identified by excludeID is skipped so an
// in-place edit does not flag itself. All matches are returned; callers
// decide whether to surface one or all of them.
func Conflicts(candidates []*TimeEntry, start time.Time, end *time.Time, excludeID string, now time.Time) []*TimeEntry {
	var conflicts []*TimeEntry
	for _, candidate := range candidates {
		if excludeID != "" && candidate.ID == excludeID {
			continue
		}
		if candidate.OverlapsInterval(start, end, now) {
			conflicts = append(conflicts, candidate)
		}
	}
	return conflicts
}
