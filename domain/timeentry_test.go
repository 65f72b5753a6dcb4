package domain

import (
	"testing"
	"time"
)

func ts(hour int) time.Time {
	return time.Date(2026, 3, 10, hour, 0, 0, 0, time.UTC)
}

func tsp(hour int) *time.Time {
	t := ts(hour)
	return &t
}

func TestNewTimeEntry(t *testing.T) {
	t.Run("CompletedEntry", func(t *testing.T) {
		entry, err := NewTimeEntry("e1", "u1", ts(9), tsp(17), "Front Desk", "employee", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if entry.Status != TimeEntryStatusCompleted {
			t.Errorf("expected completed status, got %s", entry.Status)
		}
		if entry.Duration == nil || *entry.Duration != 8.0 {
			t.Errorf("expected duration 8.0, got %v", entry.Duration)
		}
	})

	t.Run("OpenEntry", func(t *testing.T) {
		entry, err := NewTimeEntry("e1", "u1", ts(9), nil, "Front Desk", "employee", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if entry.Status != TimeEntryStatusActive {
			t.Errorf("expected active status, got %s", entry.Status)
		}
		if entry.Duration != nil {
			t.Errorf("open entry should have nil duration, got %v", *entry.Duration)
		}
		if !entry.IsOpen() {
			t.Error("entry should report open")
		}
	})

	t.Run("EndBeforeStart", func(t *testing.T) {
		_, err := NewTimeEntry("e1", "u1", ts(17), tsp(9), "Front Desk", "employee", "")
		if err != ErrInvalidInterval {
			t.Errorf("expected ErrInvalidInterval, got %v", err)
		}
	})
}

func TestDurationHours(t *testing.T) {
	start := ts(9)
	end := start.Add(7*time.Hour + 37*time.Minute)
	// 7.616... rounds to 7.62
	if got := DurationHours(start, end); got != 7.62 {
		t.Errorf("expected 7.62, got %v", got)
	}
	if got := DurationHours(start, start); got != 0 {
		t.Errorf("zero-width interval should have duration 0, got %v", got)
	}
}

func TestSetIntervalRecomputes(t *testing.T) {
	entry, _ := NewTimeEntry("e1", "u1", ts(9), tsp(17), "Front Desk", "employee", "")

	if err := entry.SetInterval(ts(10), tsp(12)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.Duration == nil || *entry.Duration != 2.0 {
		t.Errorf("expected duration 2.0, got %v", entry.Duration)
	}

	if err := entry.SetInterval(ts(12), tsp(10)); err != ErrInvalidInterval {
		t.Errorf("expected ErrInvalidInterval, got %v", err)
	}

	// clearing the end reopens the shift
	if err := entry.SetInterval(ts(10), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.Status != TimeEntryStatusActive || entry.Duration != nil {
		t.Error("entry with nil end should be active with nil duration")
	}
}

func TestResume(t *testing.T) {
	entry, _ := NewTimeEntry("e1", "u1", ts(9), tsp(17), "Front Desk", "employee", "")
	entry.Resume()
	if !entry.IsOpen() {
		t.Error("resumed entry should be open")
	}
	if entry.Status != TimeEntryStatusActive {
		t.Errorf("resumed entry should be active, got %s", entry.Status)
	}
	if entry.Duration != nil {
		t.Error("resumed entry should have nil duration")
	}
}

func TestOverlapsInterval(t *testing.T) {
	now := ts(20)
	entry, _ := NewTimeEntry("e1", "u1", ts(9), tsp(17), "Front Desk", "employee", "")

	cases := []struct {
		name  string
		start time.Time
		end   *time.Time
		want  bool
	}{
		{"FullyInside", ts(10), tsp(12), true},
		{"SpansEntry", ts(8), tsp(18), true},
		{"PartialHead", ts(8), tsp(10), true},
		{"PartialTail", ts(16), tsp(18), true},
		{"TouchingEndIsNotOverlap", ts(17), tsp(18), false},
		{"TouchingStartIsNotOverlap", ts(8), tsp(9), false},
		{"Disjoint", ts(18), tsp(19), false},
		{"OpenProposedOverlaps", ts(16), nil, true},
		{"OpenProposedAfterEnd", ts(18), nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := entry.OverlapsInterval(tc.start, tc.end, now); got != tc.want {
				t.Errorf("OverlapsInterval(%v, %v) = %v, want %v", tc.start, tc.end, got, tc.want)
			}
		})
	}

	t.Run("OpenExistingComparedAsNow", func(t *testing.T) {
		open, _ := NewTimeEntry("e2", "u1", ts(9), nil, "Front Desk", "employee", "")
		if !open.OverlapsInterval(ts(18), tsp(19), now) {
			t.Error("open entry should overlap later interval before now")
		}
		if open.OverlapsInterval(ts(21), tsp(22), now) {
			t.Error("open entry should not overlap interval after now")
		}
	})
}

func TestConflicts(t *testing.T) {
	now := ts(20)
	a, _ := NewTimeEntry("a", "u1", ts(9), tsp(12), "Front Desk", "employee", "")
	b, _ := NewTimeEntry("b", "u1", ts(13), tsp(15), "Front Desk", "employee", "")
	c, _ := NewTimeEntry("c", "u1", ts(18), tsp(19), "Front Desk", "employee", "")
	candidates := []*TimeEntry{a, b, c}

	conflicts := Conflicts(candidates, ts(11), tsp(14), "", now)
	if len(conflicts) != 2 {
		t.Fatalf("expected 2 conflicts, got %d", len(conflicts))
	}
	if conflicts[0].ID != "a" || conflicts[1].ID != "b" {
		t.Errorf("unexpected conflict order: %s, %s", conflicts[0].ID, conflicts[1].ID)
	}

	// an edit must not conflict with itself
	conflicts = Conflicts(candidates, ts(11), tsp(12), "a", now)
	if len(conflicts) != 0 {
		t.Errorf("expected no conflicts after exclusion, got %d", len(conflicts))
	}
}

func TestAppendAuditEvent(t *testing.T) {
	entry, _ := NewTimeEntry("e1", "u1", ts(9), tsp(17), "Front Desk", "employee", "")
	entry.AppendAuditEvent("admin-1", "fix clock out", "old -> new")
	entry.AppendAuditEvent("admin-2", "second fix", "again")

	if len(entry.AuditTrail) != 2 {
		t.Fatalf("expected 2 audit events, got %d", len(entry.AuditTrail))
	}
	if entry.AuditTrail[0].Editor != "admin-1" {
		t.Errorf("first event editor = %s", entry.AuditTrail[0].Editor)
	}
	if entry.AuditTrail[1].Change != "again" {
		t.Errorf("second event change = %s", entry.AuditTrail[1].Change)
	}
}
