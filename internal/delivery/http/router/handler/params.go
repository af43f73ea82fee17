// Package handler contains the HTTP handlers for the application.
package handler

import (
	"strconv"

	domainerrors "payroll/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// parseIDParam reads a positive integer path parameter.
func parseIDParam(c echo.Context, name string) (int64, error) {
	raw := c.Param(name)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails("path parameter '" + name + "' must be a positive integer")
	}

	return id, nil
}
