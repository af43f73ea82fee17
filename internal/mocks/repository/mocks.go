// Package repository provides hand-written testify mocks for the domain
// repository interfaces.
package repository

import (
	"context"
	"testing"

	"payroll/internal/domain/entity"
	"payroll/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockTransactionManager mocks repository.TransactionManager.
type MockTransactionManager struct {
	mock.Mock
}

// NewMockTransactionManager creates a mock that asserts its expectations on cleanup.
func NewMockTransactionManager(t *testing.T) *MockTransactionManager {
	m := &MockTransactionManager{}
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)

	return args.Error(0)
}

// MockRepositoryFactory mocks repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

// NewMockRepositoryFactory creates a mock that asserts its expectations on cleanup.
func NewMockRepositoryFactory(t *testing.T) *MockRepositoryFactory {
	m := &MockRepositoryFactory{}
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRepositoryFactory) AccountRepo() repository.AccountRepository {
	args := m.Called()

	return args.Get(0).(repository.AccountRepository)
}

func (m *MockRepositoryFactory) DepartmentRepo() repository.DepartmentRepository {
	args := m.Called()

	return args.Get(0).(repository.DepartmentRepository)
}

func (m *MockRepositoryFactory) EmployeeRepo() repository.EmployeeRepository {
	args := m.Called()

	return args.Get(0).(repository.EmployeeRepository)
}

func (m *MockRepositoryFactory) SalaryRepo() repository.SalaryRepository {
	args := m.Called()

	return args.Get(0).(repository.SalaryRepository)
}

// MockAccountRepository mocks repository.AccountRepository.
type MockAccountRepository struct {
	mock.Mock
}

// NewMockAccountRepository creates a mock that asserts its expectations on cleanup.
func NewMockAccountRepository(t *testing.T) *MockAccountRepository {
	m := &MockAccountRepository{}
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAccountRepository) FindByUsername(ctx context.Context, username string) (*entity.Account, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Account), args.Error(1)
}

func (m *MockAccountRepository) FindByID(ctx context.Context, id int64) (*entity.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Account), args.Error(1)
}

func (m *MockAccountRepository) Create(ctx context.Context, account *entity.Account) error {
	args := m.Called(ctx, account)

	return args.Error(0)
}

func (m *MockAccountRepository) List(ctx context.Context) ([]*entity.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Account), args.Error(1)
}

// MockDepartmentRepository mocks repository.DepartmentRepository.
type MockDepartmentRepository struct {
	mock.Mock
}

// NewMockDepartmentRepository creates a mock that asserts its expectations on cleanup.
func NewMockDepartmentRepository(t *testing.T) *MockDepartmentRepository {
	m := &MockDepartmentRepository{}
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockDepartmentRepository) Create(ctx context.Context, department *entity.Department) error {
	args := m.Called(ctx, department)

	return args.Error(0)
}

func (m *MockDepartmentRepository) FindByID(ctx context.Context, id int64) (*entity.Department, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Department), args.Error(1)
}

func (m *MockDepartmentRepository) List(ctx context.Context) ([]*entity.Department, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Department), args.Error(1)
}

func (m *MockDepartmentRepository) Update(ctx context.Context, department *entity.Department) error {
	args := m.Called(ctx, department)

	return args.Error(0)
}

func (m *MockDepartmentRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// MockEmployeeRepository mocks repository.EmployeeRepository.
type MockEmployeeRepository struct {
	mock.Mock
}

// NewMockEmployeeRepository creates a mock that asserts its expectations on cleanup.
func NewMockEmployeeRepository(t *testing.T) *MockEmployeeRepository {
	m := &MockEmployeeRepository{}
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockEmployeeRepository) Create(ctx context.Context, employee *entity.Employee) error {
	args := m.Called(ctx, employee)

	return args.Error(0)
}

func (m *MockEmployeeRepository) FindByID(ctx context.Context, id int64) (*entity.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) List(ctx context.Context) ([]*entity.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) Update(ctx context.Context, employee *entity.Employee) error {
	args := m.Called(ctx, employee)

	return args.Error(0)
}

func (m *MockEmployeeRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// MockSalaryRepository mocks repository.SalaryRepository.
type MockSalaryRepository struct {
	mock.Mock
}

// NewMockSalaryRepository creates a mock that asserts its expectations on cleanup.
func NewMockSalaryRepository(t *testing.T) *MockSalaryRepository {
	m := &MockSalaryRepository{}
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockSalaryRepository) Create(ctx context.Context, salary *entity.Salary) error {
	args := m.Called(ctx, salary)

	return args.Error(0)
}

func (m *MockSalaryRepository) FindByID(ctx context.Context, id int64) (*entity.Salary, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Salary), args.Error(1)
}

func (m *MockSalaryRepository) List(ctx context.Context) ([]*entity.Salary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Salary), args.Error(1)
}

func (m *MockSalaryRepository) Update(ctx context.Context, salary *entity.Salary) error {
	args := m.Called(ctx, salary)

	return args.Error(0)
}

func (m *MockSalaryRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *MockSalaryRepository) ListMonthlyPayroll(ctx context.Context, month string) ([]*entity.PayrollEntry, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.PayrollEntry), args.Error(1)
}
