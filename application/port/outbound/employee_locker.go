package outbound

import "context"

// EmployeeLocker serializes detect-conflicts-then-write sequences per
// employee so two concurrent approvals against the same window cannot both
// pass the overlap check before either has written.
type EmployeeLocker interface {
	// Acquire blocks until the employee's payroll lock is held or ctx is
	// done. The returned release function must be called exactly once.
	Acquire(ctx context.Context, employeeID string) (release func(), err error)
}
