package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/roamops/roamops/domain"
)

type TimeEntryRepositoryAdapter struct {
	q querier
}

const timeEntryColumns = `id, user_id, start_time, end_time, duration, status, location, role, notes, audit_trail, created_at, updated_at`

func (r *TimeEntryRepositoryAdapter) Create(ctx context.Context, entry *domain.TimeEntry) error {
	if entry == nil {
		return fmt.Errorf("time entry cannot be nil")
	}

	auditJSON, err := json.Marshal(entry.AuditTrail)
	if err != nil {
		return fmt.Errorf("failed to marshal audit trail: %w", err)
	}

	query := `
		INSERT INTO time_entries (` + timeEntryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err = r.q.ExecContext(ctx, query,
		entry.ID,
		entry.UserID,
		entry.StartTime,
		entry.EndTime,
		entry.Duration,
		string(entry.Status),
		entry.Location,
		entry.Role,
		entry.Notes,
		auditJSON,
		entry.CreatedAt,
		entry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create time entry: %w", err)
	}
	return nil
}

func (r *TimeEntryRepositoryAdapter) FindByID(ctx context.Context, id string) (*domain.TimeEntry, error) {
	if id == "" {
		return nil, fmt.Errorf("time entry ID cannot be empty")
	}

	query := `
		SELECT ` + timeEntryColumns + `
		FROM time_entries
		WHERE id = $1
	`
	entry, err := scanTimeEntry(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to find time entry: %w", err)
	}
	return entry, nil
}

func (r *TimeEntryRepositoryAdapter) Update(ctx context.Context, entry *domain.TimeEntry) error {
	if entry == nil {
		return fmt.Errorf("time entry cannot be nil")
	}

	auditJSON, err := json.Marshal(entry.AuditTrail)
	if err != nil {
		return fmt.Errorf("failed to marshal audit trail: %w", err)
	}

	query := `
		UPDATE time_entries
		SET start_time = $2, end_time = $3, duration = $4, status = $5,
		    location = $6, role = $7, notes = $8, audit_trail = $9, updated_at = $10
		WHERE id = $1
	`
	result, err := r.q.ExecContext(ctx, query,
		entry.ID,
		entry.StartTime,
		entry.EndTime,
		entry.Duration,
		string(entry.Status),
		entry.Location,
		entry.Role,
		entry.Notes,
		auditJSON,
		entry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update time entry: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEntryNotFound
	}
	return nil
}

func (r *TimeEntryRepositoryAdapter) Delete(ctx context.Context, id string) error {
	result, err := r.q.ExecContext(ctx, `DELETE FROM time_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete time entry: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEntryNotFound
	}
	return nil
}

func (r *TimeEntryRepositoryAdapter) FindStartingNear(ctx context.Context, userID string, around time.Time, window time.Duration) ([]*domain.TimeEntry, error) {
	query := `
		SELECT ` + timeEntryColumns + `
		FROM time_entries
		WHERE user_id = $1 AND start_time >= $2 AND start_time <= $3
		ORDER BY start_time
	`
	return r.queryEntries(ctx, query, userID, around.Add(-window), around.Add(window))
}

func (r *TimeEntryRepositoryAdapter) ListForRange(ctx context.Context, userID string, from, to time.Time) ([]*domain.TimeEntry, error) {
	query := `
		SELECT ` + timeEntryColumns + `
		FROM time_entries
		WHERE user_id = $1 AND start_time >= $2 AND start_time <= $3
		ORDER BY start_time
	`
	return r.queryEntries(ctx, query, userID, from, to)
}

func (r *TimeEntryRepositoryAdapter) queryEntries(ctx context.Context, query string, args ...interface{}) ([]*domain.TimeEntry, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query time entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.TimeEntry
	for rows.Next() {
		entry, err := scanTimeEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate time entries: %w", err)
	}
	return entries, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTimeEntry(row rowScanner) (*domain.TimeEntry, error) {
	var entry domain.TimeEntry
	var endTime sql.NullTime
	var duration sql.NullFloat64
	var auditJSON []byte

	err := row.Scan(
		&entry.ID,
		&entry.UserID,
		&entry.StartTime,
		&endTime,
		&duration,
		&entry.Status,
		&entry.Location,
		&entry.Role,
		&entry.Notes,
		&auditJSON,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if endTime.Valid {
		entry.EndTime = &endTime.Time
	}
	if duration.Valid {
		entry.Duration = &duration.Float64
	}
	if len(auditJSON) > 0 {
		if err := json.Unmarshal(auditJSON, &entry.AuditTrail); err != nil {
			return nil, fmt.Errorf("failed to unmarshal audit trail: %w", err)
		}
	}
	return &entry, nil
}
