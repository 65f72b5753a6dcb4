package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/roamops/roamops/domain"
)

// uniqueViolation is the PostgreSQL error code for a unique constraint hit.
const uniqueViolation = "23505"

type PayrollLockRepositoryAdapter struct {
	q querier
}

func (r *PayrollLockRepositoryAdapter) Find(ctx context.Context, periodStart, periodEnd time.Time) (*domain.PayrollLock, error) {
	query := `
		SELECT id, period_start, period_end, generated_by, status, created_at
		FROM payroll_reports
		WHERE period_start = $1 AND period_end = $2
		LIMIT 1
	`
	var lock domain.PayrollLock
	err := r.q.QueryRowContext(ctx, query, periodStart, periodEnd).Scan(
		&lock.ID,
		&lock.PeriodStart,
		&lock.PeriodEnd,
		&lock.GeneratedBy,
		&lock.Status,
		&lock.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // week not locked
		}
		return nil, fmt.Errorf("failed to find payroll lock: %w", err)
	}
	return &lock, nil
}

func (r *PayrollLockRepositoryAdapter) Create(ctx context.Context, lock *domain.PayrollLock) error {
	if lock == nil {
		return fmt.Errorf("payroll lock cannot be nil")
	}

	query := `
		INSERT INTO payroll_reports (id, period_start, period_end, generated_by, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.q.ExecContext(ctx, query,
		lock.ID,
		lock.PeriodStart,
		lock.PeriodEnd,
		lock.GeneratedBy,
		lock.Status,
		lock.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return domain.ErrWeekAlreadyLocked
		}
		return fmt.Errorf("failed to create payroll lock: %w", err)
	}
	return nil
}

func (r *PayrollLockRepositoryAdapter) Delete(ctx context.Context, periodStart, periodEnd time.Time) error {
	result, err := r.q.ExecContext(ctx,
		`DELETE FROM payroll_reports WHERE period_start = $1 AND period_end = $2`,
		periodStart, periodEnd,
	)
	if err != nil {
		return fmt.Errorf("failed to delete payroll lock: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrWeekNotLocked
	}
	return nil
}
