// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"payroll/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Username string `json:"username" validate:"required,min=1,max=100"`
	Password string `json:"password" validate:"required,min=1"`
	Role     string `json:"role" validate:"omitempty,oneof=admin staff"`
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account's public view.
type RegisterOutput struct {
	Account *entity.AccountView `json:"account"`
}

// LoginOutput returns the bearer token after a successful login.
type LoginOutput struct {
	Token   string              `json:"token"`
	Account *entity.AccountView `json:"account"`
}

// AuthUsecase defines the interface for authentication and account operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	ListAccounts(ctx context.Context) ([]*entity.AccountView, error)
	GetAccount(ctx context.Context, id int64) (*entity.AccountView, error)
}
