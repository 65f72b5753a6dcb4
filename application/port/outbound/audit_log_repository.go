package outbound

import (
	"context"

	"github.com/roamops/roamops/domain"
)

// AuditLogRepository is append-only: entries are created and listed, never
// updated or deleted.
type AuditLogRepository interface {
	// Create appends a new audit entry
	Create(ctx context.Context, entry *domain.AuditLog) error

	// ListByRecord retrieves audit entries for a record, newest first
	ListByRecord(ctx context.Context, tableName, recordID string, limit int) ([]*domain.AuditLog, error)
}
