package usecase

import (
	"context"

	"payroll/internal/domain/entity"
)

// CreateDepartmentInput defines the data required to create a department.
type CreateDepartmentInput struct {
	DepartmentCode string  `json:"departmentCode" validate:"required,max=50"`
	DepartmentName string  `json:"departmentName" validate:"required,max=100"`
	GrossSalary    float64 `json:"grossSalary" validate:"gte=0"`
}

// UpdateDepartmentInput defines the data required to update a department.
// The ID comes from the URL, not the body.
type UpdateDepartmentInput struct {
	ID             int64   `json:"-"`
	DepartmentCode string  `json:"departmentCode" validate:"required,max=50"`
	DepartmentName string  `json:"departmentName" validate:"required,max=100"`
	GrossSalary    float64 `json:"grossSalary" validate:"gte=0"`
}

// DepartmentUsecase defines the interface for department CRUD operations.
type DepartmentUsecase interface {
	Create(ctx context.Context, input *CreateDepartmentInput) (*entity.Department, error)
	Get(ctx context.Context, id int64) (*entity.Department, error)
	List(ctx context.Context) ([]*entity.Department, error)
	Update(ctx context.Context, input *UpdateDepartmentInput) (*entity.Department, error)
	Delete(ctx context.Context, id int64) error
}
