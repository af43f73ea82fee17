package handler

import (
	"log/slog"
	"net/http"

	"payroll/internal/delivery/http/response"
	"payroll/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DepartmentHandler holds dependencies for department handlers.
type DepartmentHandler struct {
	uc     usecase.DepartmentUsecase
	logger *slog.Logger
}

// NewDepartmentHandler is the constructor for DepartmentHandler, injected by Fx.
func NewDepartmentHandler(uc usecase.DepartmentUsecase, logger *slog.Logger) *DepartmentHandler {
	return &DepartmentHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles the department creation request.
func (h *DepartmentHandler) Create(c echo.Context) error {
	var input usecase.CreateDepartmentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid department input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	department, err := h.uc.Create(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, department, "Department created successfully")
}

// Get returns a single department.
func (h *DepartmentHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	department, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, department, "")
}

// List returns all departments.
func (h *DepartmentHandler) List(c echo.Context) error {
	departments, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, departments, "")
}

// Update handles the department update request.
func (h *DepartmentHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input usecase.UpdateDepartmentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid department input")
	}
	input.ID = id
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	department, err := h.uc.Update(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, department, "Department updated successfully")
}

// Delete removes a department.
func (h *DepartmentHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Department deleted successfully")
}
