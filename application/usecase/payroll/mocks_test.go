package payroll

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/roamops/roamops/application/port/outbound"
	"github.com/roamops/roamops/domain"
)

type MockTimeEntryRepository struct {
	mock.Mock
}

func (m *MockTimeEntryRepository) Create(ctx context.Context, entry *domain.TimeEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockTimeEntryRepository) FindByID(ctx context.Context, id string) (*domain.TimeEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TimeEntry), args.Error(1)
}

func (m *MockTimeEntryRepository) Update(ctx context.Context, entry *domain.TimeEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockTimeEntryRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTimeEntryRepository) FindStartingNear(ctx context.Context, userID string, around time.Time, window time.Duration) ([]*domain.TimeEntry, error) {
	args := m.Called(ctx, userID, around, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TimeEntry), args.Error(1)
}

func (m *MockTimeEntryRepository) ListForRange(ctx context.Context, userID string, from, to time.Time) ([]*domain.TimeEntry, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TimeEntry), args.Error(1)
}

type MockTimeSheetRequestRepository struct {
	mock.Mock
}

func (m *MockTimeSheetRequestRepository) Create(ctx context.Context, request *domain.TimeSheetRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockTimeSheetRequestRepository) FindByID(ctx context.Context, id string) (*domain.TimeSheetRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TimeSheetRequest), args.Error(1)
}

func (m *MockTimeSheetRequestRepository) UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockTimeSheetRequestRepository) ListByStatus(ctx context.Context, status domain.RequestStatus, limit int) ([]*domain.TimeSheetRequest, error) {
	args := m.Called(ctx, status, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TimeSheetRequest), args.Error(1)
}

type MockPayrollLockRepository struct {
	mock.Mock
}

func (m *MockPayrollLockRepository) Find(ctx context.Context, periodStart, periodEnd time.Time) (*domain.PayrollLock, error) {
	args := m.Called(ctx, periodStart, periodEnd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PayrollLock), args.Error(1)
}

func (m *MockPayrollLockRepository) Create(ctx context.Context, lock *domain.PayrollLock) error {
	args := m.Called(ctx, lock)
	return args.Error(0)
}

func (m *MockPayrollLockRepository) Delete(ctx context.Context, periodStart, periodEnd time.Time) error {
	args := m.Called(ctx, periodStart, periodEnd)
	return args.Error(0)
}

type MockAuditLogRepository struct {
	mock.Mock
}

func (m *MockAuditLogRepository) Create(ctx context.Context, entry *domain.AuditLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditLogRepository) ListByRecord(ctx context.Context, tableName, recordID string, limit int) ([]*domain.AuditLog, error) {
	args := m.Called(ctx, tableName, recordID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.AuditLog), args.Error(1)
}

type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) Create(ctx context.Context, employee *domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) FindByID(ctx context.Context, id string) (*domain.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) IncrementCorrectionCount(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// mockStore hands the same repository mocks back for both direct access and
// transactional access, so expectations cover both paths.
type mockStore struct {
	timeEntries *MockTimeEntryRepository
	requests    *MockTimeSheetRequestRepository
	locks       *MockPayrollLockRepository
	auditLogs   *MockAuditLogRepository
	employees   *MockEmployeeRepository
}

func newMockStore() *mockStore {
	return &mockStore{
		timeEntries: new(MockTimeEntryRepository),
		requests:    new(MockTimeSheetRequestRepository),
		locks:       new(MockPayrollLockRepository),
		auditLogs:   new(MockAuditLogRepository),
		employees:   new(MockEmployeeRepository),
	}
}

func (s *mockStore) TimeEntries() outbound.TimeEntryRepository        { return s.timeEntries }
func (s *mockStore) Requests() outbound.TimeSheetRequestRepository    { return s.requests }
func (s *mockStore) PayrollLocks() outbound.PayrollLockRepository     { return s.locks }
func (s *mockStore) AuditLogs() outbound.AuditLogRepository           { return s.auditLogs }
func (s *mockStore) Employees() outbound.EmployeeRepository           { return s.employees }

func (s *mockStore) WithinTx(ctx context.Context, fn func(tx outbound.PrivilegedStore) error) error {
	return fn(s)
}

func (s *mockStore) assertExpectations(t mock.TestingT) {
	s.timeEntries.AssertExpectations(t)
	s.requests.AssertExpectations(t)
	s.locks.AssertExpectations(t)
	s.auditLogs.AssertExpectations(t)
	s.employees.AssertExpectations(t)
}

// noopLocker satisfies the employee locker without real serialization.
type noopLocker struct{}

func (noopLocker) Acquire(ctx context.Context, employeeID string) (func(), error) {
	return func() {}, nil
}

// expectWeekUnlocked stubs the lock lookup for the week containing date.
func (s *mockStore) expectWeekUnlocked(date time.Time) {
	period := domain.PeriodForDate(date)
	s.locks.On("Find", mock.Anything, period.Start, period.End).Return(nil, nil)
}

// expectWeekLocked stubs an existing lock for the week containing date.
func (s *mockStore) expectWeekLocked(date time.Time) {
	period := domain.PeriodForDate(date)
	s.locks.On("Find", mock.Anything, period.Start, period.End).Return(&domain.PayrollLock{
		ID:          "lock-1",
		PeriodStart: period.Start,
		PeriodEnd:   period.End,
		GeneratedBy: "admin-1",
		Status:      domain.LockStatusLocked,
	}, nil)
}
