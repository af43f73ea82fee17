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

func createTestDepartmentService(t *testing.T) (usecase.DepartmentUsecase, *mockRepo.MockDepartmentRepository) {
	departmentRepo := mockRepo.NewMockDepartmentRepository(t)

	service := NewDepartmentService(DepartmentServiceParams{
		DepartmentRepo: departmentRepo,
		Config:         newTestConfig(),
		Logger:         newDiscardLogger(),
	})

	return service, departmentRepo
}

func TestDepartmentService_Create(t *testing.T) {
	service, departmentRepo := createTestDepartmentService(t)

	departmentRepo.On("Create", mock.Anything, mock.MatchedBy(func(d *entity.Department) bool {
		return d.DepartmentCode == "ENG" && d.GrossSalary == 90000
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Department).ID = 3
	}).Return(nil)

	department, err := service.Create(context.Background(), &usecase.CreateDepartmentInput{
		DepartmentCode: "ENG",
		DepartmentName: "Engineering",
		GrossSalary:    90000,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), department.ID)
}

func TestDepartmentService_Create_DuplicateCode(t *testing.T) {
	service, departmentRepo := createTestDepartmentService(t)

	departmentRepo.On("Create", mock.Anything, mock.Anything).
		Return(repository.ErrDuplicateDepartmentCode)

	department, err := service.Create(context.Background(), &usecase.CreateDepartmentInput{
		DepartmentCode: "ENG",
		DepartmentName: "Engineering",
		GrossSalary:    90000,
	})
	assert.Nil(t, department)
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateDepartmentCode)
}

func TestDepartmentService_Get_NotFound(t *testing.T) {
	service, departmentRepo := createTestDepartmentService(t)

	departmentRepo.On("FindByID", mock.Anything, int64(99)).
		Return(nil, repository.ErrDepartmentNotFound)

	department, err := service.Get(context.Background(), 99)
	assert.Nil(t, department)
	assert.ErrorIs(t, err, domainerrors.ErrDepartmentNotFound)
}

func TestDepartmentService_Update(t *testing.T) {
	service, departmentRepo := createTestDepartmentService(t)

	departmentRepo.On("Update", mock.Anything, mock.MatchedBy(func(d *entity.Department) bool {
		return d.ID == 3 && d.DepartmentName == "Platform Engineering"
	})).Return(nil)
	departmentRepo.On("FindByID", mock.Anything, int64(3)).Return(&entity.Department{
		ID:             3,
		DepartmentCode: "ENG",
		DepartmentName: "Platform Engineering",
		GrossSalary:    95000,
	}, nil)

	department, err := service.Update(context.Background(), &usecase.UpdateDepartmentInput{
		ID:             3,
		DepartmentCode: "ENG",
		DepartmentName: "Platform Engineering",
		GrossSalary:    95000,
	})
	require.NoError(t, err)
	assert.Equal(t, "Platform Engineering", department.DepartmentName)
}

func TestDepartmentService_Delete_NotFound(t *testing.T) {
	service, departmentRepo := createTestDepartmentService(t)

	departmentRepo.On("Delete", mock.Anything, int64(99)).
		Return(repository.ErrDepartmentNotFound)

	err := service.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, domainerrors.ErrDepartmentNotFound)
}

func TestDepartmentService_List_StoreTimeout(t *testing.T) {
	service, departmentRepo := createTestDepartmentService(t)

	departmentRepo.On("List", mock.Anything).Return(nil, context.DeadlineExceeded)

	departments, err := service.List(context.Background())
	assert.Nil(t, departments)
	assert.ErrorIs(t, err, domainerrors.ErrStoreUnavailable)
}
