// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	domainerrors "payroll/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// Validator wraps a single validator instance for reuse across requests.
type Validator struct {
	validate *validator.Validate
}

// New creates the echo validator backed by go-playground/validator.
func New() *Validator {
	return &Validator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate checks the struct tags and converts failures into the domain's
// validation error so the error middleware renders a consistent 400.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
