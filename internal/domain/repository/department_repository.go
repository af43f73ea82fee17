// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"payroll/internal/domain/entity"
)

// Domain-specific errors for department persistence.
var (
	// ErrDepartmentNotFound is returned when no department matches the identifier.
	ErrDepartmentNotFound = errors.New("department not found")
	// ErrDuplicateDepartmentCode is returned when the unique constraint on
	// the department code fires.
	ErrDuplicateDepartmentCode = errors.New("department code already exists")
)

// DepartmentRepository defines the standard operations for department persistence.
type DepartmentRepository interface {
	// Create persists a new department.
	Create(ctx context.Context, department *entity.Department) error

	// FindByID retrieves a single department by its identifier.
	FindByID(ctx context.Context, id int64) (*entity.Department, error)

	// List retrieves all departments.
	List(ctx context.Context) ([]*entity.Department, error)

	// Update modifies an existing department. Returns ErrDepartmentNotFound
	// when no row was affected.
	Update(ctx context.Context, department *entity.Department) error

	// Delete removes a department by its identifier. Returns
	// ErrDepartmentNotFound when no row was affected.
	Delete(ctx context.Context, id int64) error
}
