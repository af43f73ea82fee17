package handler

import (
	"log/slog"
	"net/http"

	"payroll/internal/delivery/http/response"
	"payroll/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReportHandler holds dependencies for payroll report handlers.
type ReportHandler struct {
	uc     usecase.ReportUsecase
	logger *slog.Logger
}

// NewReportHandler is the constructor for ReportHandler, injected by Fx.
func NewReportHandler(uc usecase.ReportUsecase, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{
		uc:     uc,
		logger: logger,
	}
}

// MonthlyPayroll returns the payroll report for the month in the query string.
func (h *ReportHandler) MonthlyPayroll(c echo.Context) error {
	input := usecase.MonthlyPayrollInput{
		Month: c.QueryParam("month"),
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.MonthlyPayroll(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}
