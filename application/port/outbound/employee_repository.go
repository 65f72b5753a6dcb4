package outbound

import (
	"context"

	"github.com/roamops/roamops/domain"
)

type EmployeeRepository interface {
	// Create saves a new employee profile
	Create(ctx context.Context, employee *domain.Employee) error

	// FindByID retrieves an employee by ID
	FindByID(ctx context.Context, id string) (*domain.Employee, error)

	// FindByEmail retrieves an employee by email, or nil if absent
	FindByEmail(ctx context.Context, email string) (*domain.Employee, error)

	// IncrementCorrectionCount bumps the employee's lifetime correction count
	IncrementCorrectionCount(ctx context.Context, id string) error
}
