package usecase

import (
	"context"

	"payroll/internal/domain/entity"
)

// CreateSalaryInput defines the data required to record a monthly salary.
type CreateSalaryInput struct {
	TotalDeduction float64 `json:"totalDeduction" validate:"gte=0"`
	NetSalary      float64 `json:"netSalary" validate:"gte=0"`
	Month          string  `json:"month" validate:"required,max=20"`
	EmployeeID     int64   `json:"employeeId" validate:"required,gt=0"`
}

// UpdateSalaryInput defines the data required to update a salary record.
// The ID comes from the URL; the employee reference is immutable.
type UpdateSalaryInput struct {
	ID             int64   `json:"-"`
	TotalDeduction float64 `json:"totalDeduction" validate:"gte=0"`
	NetSalary      float64 `json:"netSalary" validate:"gte=0"`
	Month          string  `json:"month" validate:"required,max=20"`
}

// SalaryUsecase defines the interface for salary record operations.
type SalaryUsecase interface {
	Create(ctx context.Context, input *CreateSalaryInput) (*entity.Salary, error)
	Get(ctx context.Context, id int64) (*entity.Salary, error)
	List(ctx context.Context) ([]*entity.Salary, error)
	Update(ctx context.Context, input *UpdateSalaryInput) (*entity.Salary, error)
	Delete(ctx context.Context, id int64) error
}
