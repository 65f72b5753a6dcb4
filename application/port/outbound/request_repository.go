package outbound

import (
	"context"

	"github.com/roamops/roamops/domain"
)

type TimeSheetRequestRepository interface {
	// Create saves a new correction request
	Create(ctx context.Context, request *domain.TimeSheetRequest) error

	// FindByID retrieves a correction request by its ID
	FindByID(ctx context.Context, id string) (*domain.TimeSheetRequest, error)

	// UpdateStatus persists a status transition
	UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) error

	// ListByStatus retrieves requests with the given status, oldest first
	ListByStatus(ctx context.Context, status domain.RequestStatus, limit int) ([]*domain.TimeSheetRequest, error)
}
