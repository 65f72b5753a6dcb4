package outbound

import "context"

// PrivilegedStore bundles the payroll repositories behind one elevated-access
// handle. Payroll workflows read and write across employees, which normal
// caller-scoped access would block, so the capability is passed explicitly
// into workflow constructors instead of living in a package-level singleton.
type PrivilegedStore interface {
	TimeEntries() TimeEntryRepository
	Requests() TimeSheetRequestRepository
	PayrollLocks() PayrollLockRepository
	AuditLogs() AuditLogRepository
	Employees() EmployeeRepository

	// WithinTx runs fn against a transaction-scoped view of the store.
	// Every mutation fn performs commits or rolls back as one unit.
	WithinTx(ctx context.Context, fn func(tx PrivilegedStore) error) error
}
