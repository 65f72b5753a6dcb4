package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roamops/roamops/domain"
)

type EmployeeRepositoryAdapter struct {
	q querier
}

const employeeColumns = `id, name, email, password, role, status, correction_count, created_at, updated_at`

func (r *EmployeeRepositoryAdapter) Create(ctx context.Context, employee *domain.Employee) error {
	if employee == nil {
		return fmt.Errorf("employee cannot be nil")
	}
	if employee.ID == "" || employee.Email == "" {
		return fmt.Errorf("employee ID and email are required")
	}

	query := `
		INSERT INTO employees (` + employeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.q.ExecContext(ctx, query,
		employee.ID,
		employee.Name,
		employee.Email,
		employee.Password,
		employee.Role,
		employee.Status,
		employee.CorrectionCount,
		employee.CreatedAt,
		employee.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}
	return nil
}

func (r *EmployeeRepositoryAdapter) FindByID(ctx context.Context, id string) (*domain.Employee, error) {
	if id == "" {
		return nil, fmt.Errorf("employee ID cannot be empty")
	}

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE id = $1
	`
	employee, err := scanEmployee(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to find employee: %w", err)
	}
	return employee, nil
}

func (r *EmployeeRepositoryAdapter) FindByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	if email == "" {
		return nil, fmt.Errorf("email cannot be empty")
	}

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE email = $1
		LIMIT 1
	`
	employee, err := scanEmployee(r.q.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // employee not found
		}
		return nil, fmt.Errorf("failed to find employee by email: %w", err)
	}
	return employee, nil
}

func (r *EmployeeRepositoryAdapter) IncrementCorrectionCount(ctx context.Context, id string) error {
	result, err := r.q.ExecContext(ctx,
		`UPDATE employees SET correction_count = correction_count + 1, updated_at = NOW() WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to increment correction count: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

func scanEmployee(row rowScanner) (*domain.Employee, error) {
	var employee domain.Employee
	err := row.Scan(
		&employee.ID,
		&employee.Name,
		&employee.Email,
		&employee.Password,
		&employee.Role,
		&employee.Status,
		&employee.CorrectionCount,
		&employee.CreatedAt,
		&employee.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &employee, nil
}
