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

// salaryServiceFixtures holds all test dependencies for salary service tests.
type salaryServiceFixtures struct {
	service    usecase.SalaryUsecase
	txManager  *mockRepo.MockTransactionManager
	salaryRepo *mockRepo.MockSalaryRepository
}

func createTestSalaryService(t *testing.T) salaryServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	salaryRepo := mockRepo.NewMockSalaryRepository(t)

	service := NewSalaryService(SalaryServiceParams{
		TxManager:  txManager,
		SalaryRepo: salaryRepo,
		Config:     newTestConfig(),
		Logger:     newDiscardLogger(),
	})

	return salaryServiceFixtures{
		service:    service,
		txManager:  txManager,
		salaryRepo: salaryRepo,
	}
}

func TestSalaryService_Create(t *testing.T) {
	fx := createTestSalaryService(t)

	txEmployeeRepo := mockRepo.NewMockEmployeeRepository(t)
	txSalaryRepo := mockRepo.NewMockSalaryRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("EmployeeRepo").Return(txEmployeeRepo)
	factory.On("SalaryRepo").Return(txSalaryRepo)

	txEmployeeRepo.On("FindByID", mock.Anything, int64(11)).
		Return(&entity.Employee{ID: 11, EmployeeNumber: "E-100"}, nil)
	txSalaryRepo.On("Create", mock.Anything, mock.MatchedBy(func(s *entity.Salary) bool {
		return s.EmployeeID == 11 && s.Month == "2026-08"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Salary).ID = 5
	}).Return(nil)

	fx.txManager.On("Execute", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(repository.RepositoryFactory) error)
			_ = fn(factory)
		}).Return(nil)

	salary, err := fx.service.Create(context.Background(), &usecase.CreateSalaryInput{
		TotalDeduction: 500,
		NetSalary:      4500,
		Month:          "2026-08",
		EmployeeID:     11,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), salary.ID)
}

func TestSalaryService_Create_UnknownEmployee(t *testing.T) {
	fx := createTestSalaryService(t)

	fx.txManager.On("Execute", mock.Anything, mock.Anything).
		Return(domainerrors.ErrUnknownEmployee)

	salary, err := fx.service.Create(context.Background(), &usecase.CreateSalaryInput{
		TotalDeduction: 500,
		NetSalary:      4500,
		Month:          "2026-08",
		EmployeeID:     99,
	})
	assert.Nil(t, salary)
	assert.ErrorIs(t, err, domainerrors.ErrUnknownEmployee)
}

func TestSalaryService_Get_NotFound(t *testing.T) {
	fx := createTestSalaryService(t)

	fx.salaryRepo.On("FindByID", mock.Anything, int64(99)).
		Return(nil, repository.ErrSalaryNotFound)

	salary, err := fx.service.Get(context.Background(), 99)
	assert.Nil(t, salary)
	assert.ErrorIs(t, err, domainerrors.ErrSalaryNotFound)
}

func TestSalaryService_Update(t *testing.T) {
	fx := createTestSalaryService(t)

	fx.salaryRepo.On("Update", mock.Anything, mock.MatchedBy(func(s *entity.Salary) bool {
		return s.ID == 5 && s.NetSalary == 4800
	})).Return(nil)
	fx.salaryRepo.On("FindByID", mock.Anything, int64(5)).Return(&entity.Salary{
		ID:        5,
		NetSalary: 4800,
		Month:     "2026-08",
	}, nil)

	salary, err := fx.service.Update(context.Background(), &usecase.UpdateSalaryInput{
		ID:             5,
		TotalDeduction: 200,
		NetSalary:      4800,
		Month:          "2026-08",
	})
	require.NoError(t, err)
	assert.Equal(t, 4800.0, salary.NetSalary)
}

func TestSalaryService_Delete_NotFound(t *testing.T) {
	fx := createTestSalaryService(t)

	fx.salaryRepo.On("Delete", mock.Anything, int64(99)).
		Return(repository.ErrSalaryNotFound)

	err := fx.service.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, domainerrors.ErrSalaryNotFound)
}

func TestSalaryService_List_StoreTimeout(t *testing.T) {
	fx := createTestSalaryService(t)

	fx.salaryRepo.On("List", mock.Anything).Return(nil, context.DeadlineExceeded)

	salaries, err := fx.service.List(context.Background())
	assert.Nil(t, salaries)
	assert.ErrorIs(t, err, domainerrors.ErrStoreUnavailable)
}
