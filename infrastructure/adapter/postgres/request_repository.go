package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roamops/roamops/domain"
)

type TimeSheetRequestRepositoryAdapter struct {
	q querier
}

func (r *TimeSheetRequestRepositoryAdapter) Create(ctx context.Context, request *domain.TimeSheetRequest) error {
	if request == nil {
		return fmt.Errorf("correction request cannot be nil")
	}

	query := `
		INSERT INTO time_sheet_requests (id, user_id, start_time, end_time, reason, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.q.ExecContext(ctx, query,
		request.ID,
		request.UserID,
		request.StartTime,
		request.EndTime,
		request.Reason,
		string(request.Status),
		request.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create correction request: %w", err)
	}
	return nil
}

func (r *TimeSheetRequestRepositoryAdapter) FindByID(ctx context.Context, id string) (*domain.TimeSheetRequest, error) {
	if id == "" {
		return nil, fmt.Errorf("request ID cannot be empty")
	}

	query := `
		SELECT id, user_id, start_time, end_time, reason, status, created_at
		FROM time_sheet_requests
		WHERE id = $1
	`
	var request domain.TimeSheetRequest
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&request.ID,
		&request.UserID,
		&request.StartTime,
		&request.EndTime,
		&request.Reason,
		&request.Status,
		&request.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to find correction request: %w", err)
	}
	return &request, nil
}

func (r *TimeSheetRequestRepositoryAdapter) UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) error {
	result, err := r.q.ExecContext(ctx,
		`UPDATE time_sheet_requests SET status = $2 WHERE id = $1`,
		id, string(status),
	)
	if err != nil {
		return fmt.Errorf("failed to update request status: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrRequestNotFound
	}
	return nil
}

func (r *TimeSheetRequestRepositoryAdapter) ListByStatus(ctx context.Context, status domain.RequestStatus, limit int) ([]*domain.TimeSheetRequest, error) {
	query := `
		SELECT id, user_id, start_time, end_time, reason, status, created_at
		FROM time_sheet_requests
		WHERE status = $1
		ORDER BY created_at
		LIMIT $2
	`
	rows, err := r.q.QueryContext(ctx, query, string(status), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list correction requests: %w", err)
	}
	defer rows.Close()

	var requests []*domain.TimeSheetRequest
	for rows.Next() {
		var request domain.TimeSheetRequest
		err := rows.Scan(
			&request.ID,
			&request.UserID,
			&request.StartTime,
			&request.EndTime,
			&request.Reason,
			&request.Status,
			&request.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan correction request: %w", err)
		}
		requests = append(requests, &request)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate correction requests: %w", err)
	}
	return requests, nil
}
