// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"payroll/internal/domain/entity"
)

// Domain-specific errors for account persistence. The application layer
// matches on these instead of database driver errors.
var (
	// ErrAccountNotFound is returned when no account matches the lookup key.
	ErrAccountNotFound = errors.New("account not found")
	// ErrDuplicateUsername is returned when the storage-level uniqueness
	// constraint on the username fires. The constraint is the authoritative
	// guard; callers must not pre-check existence.
	ErrDuplicateUsername = errors.New("username already registered")
)

// AccountRepository defines the standard operations for account persistence.
type AccountRepository interface {
	// FindByUsername retrieves a single account by its exact, case-sensitive username.
	FindByUsername(ctx context.Context, username string) (*entity.Account, error)

	// FindByID retrieves a single account by its system-assigned identifier.
	FindByID(ctx context.Context, id int64) (*entity.Account, error)

	// Create persists a new account. The storage uniqueness constraint on the
	// username decides duplicates atomically; a violation surfaces as ErrDuplicateUsername.
	Create(ctx context.Context, account *entity.Account) error

	// List retrieves all accounts.
	List(ctx context.Context) ([]*entity.Account, error)
}
