package impl

import (
	"context"
	"testing"

	"payroll/internal/domain/entity"
	domainerrors "payroll/internal/domain/errors"
	"payroll/internal/domain/repository"
	mockRepo "payroll/internal/mocks/repository"
	"payroll/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// employeeServiceFixtures holds all test dependencies for employee service tests.
type employeeServiceFixtures struct {
	service      usecase.EmployeeUsecase
	txManager    *mockRepo.MockTransactionManager
	employeeRepo *mockRepo.MockEmployeeRepository
}

func createTestEmployeeService(t *testing.T) employeeServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	employeeRepo := mockRepo.NewMockEmployeeRepository(t)

	service := NewEmployeeService(EmployeeServiceParams{
		TxManager:    txManager,
		EmployeeRepo: employeeRepo,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return employeeServiceFixtures{
		service:      service,
		txManager:    txManager,
		employeeRepo: employeeRepo,
	}
}

func newEmployeeInput() *usecase.CreateEmployeeInput {
	return &usecase.CreateEmployeeInput{
		EmployeeNumber: "E-100",
		FirstName:      "Ada",
		LastName:       "Lovelace",
		Position:       "Engineer",
		Address:        "12 Analytical Way",
		Telephone:      "555-0100",
		DepartmentID:   3,
	}
}

func TestEmployeeService_Create(t *testing.T) {
	fx := createTestEmployeeService(t)

	txDepartmentRepo := mockRepo.NewMockDepartmentRepository(t)
	txEmployeeRepo := mockRepo.NewMockEmployeeRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("DepartmentRepo").Return(txDepartmentRepo)
	factory.On("EmployeeRepo").Return(txEmployeeRepo)

	txDepartmentRepo.On("FindByID", mock.Anything, int64(3)).
		Return(&entity.Department{ID: 3, DepartmentCode: "ENG"}, nil)
	txEmployeeRepo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Employee).ID = 11
		}).Return(nil)

	fx.txManager.On("Execute", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(repository.RepositoryFactory) error)
			_ = fn(factory)
		}).Return(nil)

	fx.employeeRepo.On("FindByID", mock.Anything, int64(11)).Return(&entity.Employee{
		ID:             11,
		EmployeeNumber: "E-100",
		DepartmentID:   3,
		DepartmentName: "Engineering",
		GrossSalary:    90000,
	}, nil)

	employee, err := fx.service.Create(context.Background(), newEmployeeInput())
	require.NoError(t, err)
	assert.Equal(t, int64(11), employee.ID)
	assert.Equal(t, "Engineering", employee.DepartmentName)
}

func TestEmployeeService_Create_UnknownDepartment(t *testing.T) {
	fx := createTestEmployeeService(t)

	txDepartmentRepo := mockRepo.NewMockDepartmentRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("DepartmentRepo").Return(txDepartmentRepo)

	txDepartmentRepo.On("FindByID", mock.Anything, int64(3)).
		Return(nil, repository.ErrDepartmentNotFound)

	fx.txManager.On("Execute", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(repository.RepositoryFactory) error)
			_ = fn(factory)
		}).Return(domainerrors.ErrUnknownDepartment)

	employee, err := fx.service.Create(context.Background(), newEmployeeInput())
	assert.Nil(t, employee)
	assert.ErrorIs(t, err, domainerrors.ErrUnknownDepartment)
}

func TestEmployeeService_Create_DuplicateNumber(t *testing.T) {
	fx := createTestEmployeeService(t)

	fx.txManager.On("Execute", mock.Anything, mock.Anything).
		Return(repository.ErrDuplicateEmployeeNumber)

	employee, err := fx.service.Create(context.Background(), newEmployeeInput())
	assert.Nil(t, employee)
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateEmployeeNumber)
}

func TestEmployeeService_Get_NotFound(t *testing.T) {
	fx := createTestEmployeeService(t)

	fx.employeeRepo.On("FindByID", mock.Anything, int64(99)).
		Return(nil, repository.ErrEmployeeNotFound)

	employee, err := fx.service.Get(context.Background(), 99)
	assert.Nil(t, employee)
	assert.ErrorIs(t, err, domainerrors.ErrEmployeeNotFound)
}

func TestEmployeeService_Update_UnknownDepartment(t *testing.T) {
	fx := createTestEmployeeService(t)

	fx.employeeRepo.On("Update", mock.Anything, mock.Anything).
		Return(repository.ErrDepartmentReferenceInvalid)

	input := &usecase.UpdateEmployeeInput{
		ID:             11,
		EmployeeNumber: "E-100",
		FirstName:      "Ada",
		LastName:       "Lovelace",
		Position:       "Engineer",
		Address:        "12 Analytical Way",
		Telephone:      "555-0100",
		DepartmentID:   99,
	}
	employee, err := fx.service.Update(context.Background(), input)
	assert.Nil(t, employee)
	assert.ErrorIs(t, err, domainerrors.ErrUnknownDepartment)
}

func TestEmployeeService_Delete(t *testing.T) {
	fx := createTestEmployeeService(t)

	fx.employeeRepo.On("Delete", mock.Anything, int64(11)).Return(nil)

	assert.NoError(t, fx.service.Delete(context.Background(), 11))
}
