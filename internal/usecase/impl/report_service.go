package impl

import (
	"context"
	"log/slog"
	"time"

	"payroll/config"
	deliverycontext "payroll/internal/delivery/context"
	domainerrors "payroll/internal/domain/errors"
	"payroll/internal/domain/repository"
	"payroll/internal/usecase"

	"go.uber.org/fx"
)

// reportService implements the ReportUsecase interface.
type reportService struct {
	salaryRepo   repository.SalaryRepository
	storeTimeout time.Duration
	logger       *slog.Logger
}

// ReportServiceParams holds dependencies for reportService, injected by Fx.
type ReportServiceParams struct {
	fx.In

	SalaryRepo repository.SalaryRepository
	Config     *config.Config
	Logger     *slog.Logger
}

// NewReportService is the constructor for reportService.
func NewReportService(params ReportServiceParams) usecase.ReportUsecase {
	storeTimeout := time.Duration(0)
	if params.Config != nil && params.Config.Auth != nil {
		storeTimeout = params.Config.Auth.StoreTimeout
	}

	return &reportService{
		salaryRepo:   params.SalaryRepo,
		storeTimeout: storeTimeout,
		logger:       params.Logger,
	}
}

func (srv *reportService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// MonthlyPayroll builds the payroll report for one month. A month with no
// salary records yields an empty report, not an error.
func (srv *reportService) MonthlyPayroll(ctx context.Context, input *usecase.MonthlyPayrollInput) (*usecase.MonthlyPayrollOutput, error) {
	if input.Month == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("month query parameter is required")
	}

	srv.log(ctx).Debug("Building monthly payroll report", slog.String("month", input.Month))

	storeCtx, cancel := storeContext(ctx, srv.storeTimeout)
	defer cancel()

	entries, err := srv.salaryRepo.ListMonthlyPayroll(storeCtx, input.Month)
	if err != nil {
		srv.log(ctx).Error("Failed to build monthly payroll report", slog.String("month", input.Month), slog.Any("error", err))

		return nil, mapStoreError(err)
	}

	return &usecase.MonthlyPayrollOutput{
		Month:   input.Month,
		Entries: entries,
	}, nil
}
