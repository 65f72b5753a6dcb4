package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/roamops/roamops/application/port/outbound"
)

// querier is satisfied by both *sql.DB and *sql.Tx so the repositories work
// unchanged inside and outside a transaction.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// PrivilegedStoreAdapter implements outbound.PrivilegedStore over PostgreSQL.
type PrivilegedStoreAdapter struct {
	db *sql.DB // nil when the adapter is transaction-scoped
	q  querier
}

func NewPrivilegedStore(db *sql.DB) outbound.PrivilegedStore {
	return &PrivilegedStoreAdapter{db: db, q: db}
}

func (s *PrivilegedStoreAdapter) TimeEntries() outbound.TimeEntryRepository {
	return &TimeEntryRepositoryAdapter{q: s.q}
}

func (s *PrivilegedStoreAdapter) Requests() outbound.TimeSheetRequestRepository {
	return &TimeSheetRequestRepositoryAdapter{q: s.q}
}

func (s *PrivilegedStoreAdapter) PayrollLocks() outbound.PayrollLockRepository {
	return &PayrollLockRepositoryAdapter{q: s.q}
}

func (s *PrivilegedStoreAdapter) AuditLogs() outbound.AuditLogRepository {
	return &AuditLogRepositoryAdapter{q: s.q}
}

func (s *PrivilegedStoreAdapter) Employees() outbound.EmployeeRepository {
	return &EmployeeRepositoryAdapter{q: s.q}
}

// WithinTx runs fn against a transaction-scoped store. A nested call reuses
// the enclosing transaction rather than opening a second one.
func (s *PrivilegedStoreAdapter) WithinTx(ctx context.Context, fn func(tx outbound.PrivilegedStore) error) error {
	if s.db == nil {
		return fn(s)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txStore := &PrivilegedStoreAdapter{q: tx}
	if err := fn(txStore); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && rbErr != sql.ErrTxDone {
			return fmt.Errorf("rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
