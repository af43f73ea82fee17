package usecase

import (
	"context"

	"payroll/internal/domain/entity"
)

// CreateEmployeeInput defines the data required to create an employee.
type CreateEmployeeInput struct {
	EmployeeNumber string `json:"employeeNumber" validate:"required,max=50"`
	FirstName      string `json:"firstName" validate:"required,max=100"`
	LastName       string `json:"lastName" validate:"required,max=100"`
	Position       string `json:"position" validate:"required,max=100"`
	Address        string `json:"address" validate:"required,max=255"`
	Telephone      string `json:"telephone" validate:"required,max=50"`
	DepartmentID   int64  `json:"departmentId" validate:"required,gt=0"`
}

// UpdateEmployeeInput defines the data required to update an employee.
// The ID comes from the URL, not the body.
type UpdateEmployeeInput struct {
	ID             int64  `json:"-"`
	EmployeeNumber string `json:"employeeNumber" validate:"required,max=50"`
	FirstName      string `json:"firstName" validate:"required,max=100"`
	LastName       string `json:"lastName" validate:"required,max=100"`
	Position       string `json:"position" validate:"required,max=100"`
	Address        string `json:"address" validate:"required,max=255"`
	Telephone      string `json:"telephone" validate:"required,max=50"`
	DepartmentID   int64  `json:"departmentId" validate:"required,gt=0"`
}

// EmployeeUsecase defines the interface for employee CRUD operations.
type EmployeeUsecase interface {
	Create(ctx context.Context, input *CreateEmployeeInput) (*entity.Employee, error)
	Get(ctx context.Context, id int64) (*entity.Employee, error)
	List(ctx context.Context) ([]*entity.Employee, error)
	Update(ctx context.Context, input *UpdateEmployeeInput) (*entity.Employee, error)
	Delete(ctx context.Context, id int64) error
}
