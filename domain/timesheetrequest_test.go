package domain

import (
	"testing"
	"time"
)

func TestTimeSheetRequestTransitions(t *testing.T) {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	end := start.Add(8 * time.Hour)

	t.Run("AcceptPending", func(t *testing.T) {
		req := NewTimeSheetRequest("r1", "u1", start, end, "forgot to clock out")
		if err := req.Accept(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.Status != RequestStatusAccepted {
			t.Errorf("status = %s, want accepted", req.Status)
		}
	})

	t.Run("RejectPending", func(t *testing.T) {
		req := NewTimeSheetRequest("r1", "u1", start, end, "forgot to clock out")
		if err := req.Reject(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.Status != RequestStatusRejected {
			t.Errorf("status = %s, want rejected", req.Status)
		}
	})

	t.Run("ResolveTwice", func(t *testing.T) {
		req := NewTimeSheetRequest("r1", "u1", start, end, "forgot to clock out")
		if err := req.Accept(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := req.Accept(); err != ErrRequestAlreadyResolved {
			t.Errorf("second accept: got %v, want ErrRequestAlreadyResolved", err)
		}
		if err := req.Reject(); err != ErrRequestAlreadyResolved {
			t.Errorf("reject after accept: got %v, want ErrRequestAlreadyResolved", err)
		}
	})
}
