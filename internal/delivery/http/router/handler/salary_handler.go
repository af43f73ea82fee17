package handler

import (
	"log/slog"
	"net/http"

	"payroll/internal/delivery/http/response"
	"payroll/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SalaryHandler holds dependencies for salary handlers.
type SalaryHandler struct {
	uc     usecase.SalaryUsecase
	logger *slog.Logger
}

// NewSalaryHandler is the constructor for SalaryHandler, injected by Fx.
func NewSalaryHandler(uc usecase.SalaryUsecase, logger *slog.Logger) *SalaryHandler {
	return &SalaryHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles the salary creation request.
func (h *SalaryHandler) Create(c echo.Context) error {
	var input usecase.CreateSalaryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid salary input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	salary, err := h.uc.Create(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, salary, "Salary record created successfully")
}

// Get returns a single salary record.
func (h *SalaryHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	salary, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, salary, "")
}

// List returns all salary records with employee fields joined.
func (h *SalaryHandler) List(c echo.Context) error {
	salaries, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, salaries, "")
}

// Update handles the salary update request.
func (h *SalaryHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input usecase.UpdateSalaryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid salary input")
	}
	input.ID = id
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	salary, err := h.uc.Update(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, salary, "Salary record updated successfully")
}

// Delete removes a salary record.
func (h *SalaryHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Salary record deleted successfully")
}
