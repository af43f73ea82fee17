package impl

import (
	"context"
	"testing"

	"payroll/internal/domain/entity"
	domainerrors "payroll/internal/domain/errors"
	mockRepo "payroll/internal/mocks/repository"
	"payroll/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestReportService(t *testing.T) (usecase.ReportUsecase, *mockRepo.MockSalaryRepository) {
	salaryRepo := mockRepo.NewMockSalaryRepository(t)

	service := NewReportService(ReportServiceParams{
		SalaryRepo: salaryRepo,
		Config:     newTestConfig(),
		Logger:     newDiscardLogger(),
	})

	return service, salaryRepo
}

func TestReportService_MonthlyPayroll(t *testing.T) {
	service, salaryRepo := createTestReportService(t)

	salaryRepo.On("ListMonthlyPayroll", mock.Anything, "2026-08").Return([]*entity.PayrollEntry{
		{FirstName: "Ada", LastName: "Lovelace", Position: "Engineer", DepartmentName: "Engineering", NetSalary: 4500, Month: "2026-08"},
	}, nil)

	output, err := service.MonthlyPayroll(context.Background(), &usecase.MonthlyPayrollInput{Month: "2026-08"})
	require.NoError(t, err)
	assert.Equal(t, "2026-08", output.Month)
	require.Len(t, output.Entries, 1)
	assert.Equal(t, "Lovelace", output.Entries[0].LastName)
}

func TestReportService_MonthlyPayroll_MissingMonth(t *testing.T) {
	service, _ := createTestReportService(t)

	output, err := service.MonthlyPayroll(context.Background(), &usecase.MonthlyPayrollInput{})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestReportService_MonthlyPayroll_EmptyMonthResult(t *testing.T) {
	service, salaryRepo := createTestReportService(t)

	salaryRepo.On("ListMonthlyPayroll", mock.Anything, "1999-01").
		Return([]*entity.PayrollEntry{}, nil)

	output, err := service.MonthlyPayroll(context.Background(), &usecase.MonthlyPayrollInput{Month: "1999-01"})
	require.NoError(t, err)
	assert.Empty(t, output.Entries)
}
