package postgres

import (
	"context"
	"fmt"

	"github.com/roamops/roamops/domain"
)

type AuditLogRepositoryAdapter struct {
	q querier
}

func (r *AuditLogRepositoryAdapter) Create(ctx context.Context, entry *domain.AuditLog) error {
	if entry == nil {
		return fmt.Errorf("audit entry cannot be nil")
	}

	query := `
		INSERT INTO audit_logs (id, user_id, action, table_name, record_id, new_data, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	var payload interface{}
	if len(entry.NewData) > 0 {
		payload = []byte(entry.NewData)
	}
	_, err := r.q.ExecContext(ctx, query,
		entry.ID,
		entry.UserID,
		entry.Action,
		entry.TableName,
		entry.RecordID,
		payload,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create audit entry: %w", err)
	}
	return nil
}

func (r *AuditLogRepositoryAdapter) ListByRecord(ctx context.Context, tableName, recordID string, limit int) ([]*domain.AuditLog, error) {
	query := `
		SELECT id, user_id, action, table_name, record_id, new_data, created_at
		FROM audit_logs
		WHERE table_name = $1 AND record_id = $2
		ORDER BY created_at DESC
		LIMIT $3
	`
	rows, err := r.q.QueryContext(ctx, query, tableName, recordID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.AuditLog
	for rows.Next() {
		var entry domain.AuditLog
		var payload []byte
		err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.Action,
			&entry.TableName,
			&entry.RecordID,
			&payload,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan audit entry: %w", err)
		}
		entry.NewData = payload
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate audit entries: %w", err)
	}
	return entries, nil
}
