package outbound

import (
	"context"
	"time"

	"github.com/roamops/roamops/domain"
)

type TimeEntryRepository interface {
	// Create saves a new time entry
	Create(ctx context.Context, entry *domain.TimeEntry) error

	// FindByID retrieves a time entry by its ID
	FindByID(ctx context.Context, id string) (*domain.TimeEntry, error)

	// Update updates an existing time entry, including its audit trail
	Update(ctx context.Context, entry *domain.TimeEntry) error

	// Delete removes a time entry permanently
	Delete(ctx context.Context, id string) error

	// FindStartingNear retrieves an employee's entries whose start time falls
	// within the window around the given instant. This is the coarse
	// candidate pre-filter for overlap detection; precise filtering happens
	// in the domain.
	FindStartingNear(ctx context.Context, userID string, around time.Time, window time.Duration) ([]*domain.TimeEntry, error)

	// ListForRange retrieves an employee's entries starting within [from, to]
	ListForRange(ctx context.Context, userID string, from, to time.Time) ([]*domain.TimeEntry, error)
}
