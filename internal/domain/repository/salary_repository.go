// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"payroll/internal/domain/entity"
)

// Domain-specific errors for salary persistence.
var (
	// ErrSalaryNotFound is returned when no salary record matches the identifier.
	ErrSalaryNotFound = errors.New("salary record not found")
	// ErrEmployeeReferenceInvalid is returned when the referenced employee
	// does not exist (foreign key violation).
	ErrEmployeeReferenceInvalid = errors.New("referenced employee does not exist")
)

// SalaryRepository defines the standard operations for salary persistence,
// plus the monthly payroll aggregate used by the report endpoint.
type SalaryRepository interface {
	// Create persists a new salary record.
	Create(ctx context.Context, salary *entity.Salary) error

	// FindByID retrieves a single salary record.
	FindByID(ctx context.Context, id int64) (*entity.Salary, error)

	// List retrieves all salary records with employee and department fields joined.
	List(ctx context.Context) ([]*entity.Salary, error)

	// Update modifies the deduction, net salary and month of an existing
	// record. Returns ErrSalaryNotFound when no row was affected.
	Update(ctx context.Context, salary *entity.Salary) error

	// Delete removes a salary record by its identifier. Returns
	// ErrSalaryNotFound when no row was affected.
	Delete(ctx context.Context, id int64) error

	// ListMonthlyPayroll returns the payroll report rows for one month.
	ListMonthlyPayroll(ctx context.Context, month string) ([]*entity.PayrollEntry, error)
}
