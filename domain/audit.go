package domain

import (
	"encoding/json"
	"time"
)

// Audit action kinds
const (
	ActionApproveTimeRequest = "APPROVE_TIME_REQUEST"
	ActionDenyTimeRequest    = "DENY_TIME_REQUEST"
	ActionManualTimeEdit     = "MANUAL_TIME_EDIT"
	ActionManualEntryCreate  = "MANUAL_ENTRY_CREATE"
	ActionDeleteTimeEntry    = "DELETE_TIME_ENTRY"
	ActionOverwriteConflict  = "OVERWRITE_CONFLICT"
	ActionLockPayrollWeek    = "LOCK_PAYROLL_WEEK"
	ActionUnlockPayrollWeek  = "UNLOCK_PAYROLL_WEEK"
)

// AuditLog is one append-only record of a payroll mutation. Entries are
// never updated or deleted; for destructive operations NewData carries a
// full backup of the affected row as the only recovery path.
type AuditLog struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Action    string          `json:"action"`
	TableName string          `json:"table_name"`
	RecordID  string          `json:"record_id"`
	NewData   json.RawMessage `json:"new_data,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// NewAuditLog creates an audit entry with payload marshalled to JSON.
// A payload that cannot be marshalled is recorded as null rather than
// dropping the entry.
func NewAuditLog(id, userID, action, tableName, recordID string, payload interface{}) *AuditLog {
	var data json.RawMessage
	if payload != nil {
		if raw, err := json.Marshal(payload); err == nil {
			data = raw
		}
	}
	return &AuditLog{
		ID:        id,
		UserID:    userID,
		Action:    action,
		TableName: tableName,
		RecordID:  recordID,
		NewData:   data,
		CreatedAt: time.Now(),
	}
}
