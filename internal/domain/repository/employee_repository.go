// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"payroll/internal/domain/entity"
)

// Domain-specific errors for employee persistence.
var (
	// ErrEmployeeNotFound is returned when no employee matches the identifier.
	ErrEmployeeNotFound = errors.New("employee not found")
	// ErrDuplicateEmployeeNumber is returned when the unique constraint on
	// the employee number fires.
	ErrDuplicateEmployeeNumber = errors.New("employee number already exists")
	// ErrDepartmentReferenceInvalid is returned when the referenced
	// department does not exist (foreign key violation).
	ErrDepartmentReferenceInvalid = errors.New("referenced department does not exist")
)

// EmployeeRepository defines the standard operations for employee persistence.
type EmployeeRepository interface {
	// Create persists a new employee.
	Create(ctx context.Context, employee *entity.Employee) error

	// FindByID retrieves a single employee, including joined department fields.
	FindByID(ctx context.Context, id int64) (*entity.Employee, error)

	// List retrieves all employees with their department name and gross salary joined.
	List(ctx context.Context) ([]*entity.Employee, error)

	// Update modifies an existing employee. Returns ErrEmployeeNotFound when
	// no row was affected.
	Update(ctx context.Context, employee *entity.Employee) error

	// Delete removes an employee by its identifier. Returns
	// ErrEmployeeNotFound when no row was affected.
	Delete(ctx context.Context, id int64) error
}
