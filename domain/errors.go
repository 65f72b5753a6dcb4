package domain

// DomainError represents a domain-specific error
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(message string) *DomainError {
	return &DomainError{Message: message}
}

// Custom errors
var (
	ErrEntryNotFound          = NewDomainError("time entry not found")
	ErrRequestNotFound        = NewDomainError("correction request not found")
	ErrEmployeeNotFound       = NewDomainError("employee not found")
	ErrPeriodLocked           = NewDomainError("payroll period is locked")
	ErrInvalidInterval        = NewDomainError("end time must not precede start time")
	ErrRequestAlreadyResolved = NewDomainError("correction request already resolved")
	ErrWeekAlreadyLocked      = NewDomainError("payroll week is already locked")
	ErrWeekNotLocked          = NewDomainError("payroll week is not locked")
)
