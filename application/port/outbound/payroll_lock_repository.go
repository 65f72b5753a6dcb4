package outbound

import (
	"context"
	"time"

	"github.com/roamops/roamops/domain"
)

type PayrollLockRepository interface {
	// Find retrieves the lock for the exact week boundaries, or nil if the
	// week is not locked
	Find(ctx context.Context, periodStart, periodEnd time.Time) (*domain.PayrollLock, error)

	// Create inserts a lock row. Returns domain.ErrWeekAlreadyLocked when a
	// lock for the same boundaries exists (store-level uniqueness).
	Create(ctx context.Context, lock *domain.PayrollLock) error

	// Delete removes the lock matching the exact boundaries. Returns
	// domain.ErrWeekNotLocked when no such lock exists.
	Delete(ctx context.Context, periodStart, periodEnd time.Time) error
}
