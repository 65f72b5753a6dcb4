package domain

import "time"

// Employee roles
const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// Employee is the operational profile payroll actions act on. The
// CorrectionCount field is lifetime bookkeeping, bumped each time one of the
// employee's correction requests is approved.
type Employee struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Password        string    `json:"-"`
	Role            string    `json:"role"`
	Status          string    `json:"status"`
	CorrectionCount int       `json:"correction_count"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// NewEmployee creates an active employee profile
func NewEmployee(id, name, email, hashedPassword, role string) *Employee {
	now := time.Now()
	return &Employee{
		ID:        id,
		Name:      name,
		Email:     email,
		Password:  hashedPassword,
		Role:      role,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsAdmin reports whether the employee may perform payroll actions.
func (e *Employee) IsAdmin() bool {
	return e.Role == RoleAdmin
}
