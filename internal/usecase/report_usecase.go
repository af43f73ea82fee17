package usecase

import (
	"context"

	"payroll/internal/domain/entity"
)

// MonthlyPayrollInput carries the report filter taken from the query string.
type MonthlyPayrollInput struct {
	Month string `json:"month" validate:"required,max=20"`
}

// MonthlyPayrollOutput is the monthly payroll report.
type MonthlyPayrollOutput struct {
	Month   string                 `json:"month"`
	Entries []*entity.PayrollEntry `json:"entries"`
}

// ReportUsecase defines the interface for payroll reporting.
type ReportUsecase interface {
	MonthlyPayroll(ctx context.Context, input *MonthlyPayrollInput) (*MonthlyPayrollOutput, error)
}
