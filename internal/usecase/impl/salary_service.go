package impl

import (
	"context"
	"log/slog"
	"time"

	"payroll/config"
	deliverycontext "payroll/internal/delivery/context"
	"payroll/internal/domain/entity"
	domainerrors "payroll/internal/domain/errors"
	"payroll/internal/domain/repository"
	"payroll/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// salaryService implements the SalaryUsecase interface.
type salaryService struct {
	txManager    repository.TransactionManager
	salaryRepo   repository.SalaryRepository
	storeTimeout time.Duration
	logger       *slog.Logger
}

// SalaryServiceParams holds dependencies for salaryService, injected by Fx.
type SalaryServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	SalaryRepo repository.SalaryRepository
	Config     *config.Config
	Logger     *slog.Logger
}

// NewSalaryService is the constructor for salaryService.
func NewSalaryService(params SalaryServiceParams) usecase.SalaryUsecase {
	storeTimeout := time.Duration(0)
	if params.Config != nil && params.Config.Auth != nil {
		storeTimeout = params.Config.Auth.StoreTimeout
	}

	return &salaryService{
		txManager:    params.TxManager,
		salaryRepo:   params.SalaryRepo,
		storeTimeout: storeTimeout,
		logger:       params.Logger,
	}
}

func (srv *salaryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create records a monthly salary. The employee check and the insert run in
// one transaction so the referenced employee cannot disappear in between.
func (srv *salaryService) Create(ctx context.Context, input *usecase.CreateSalaryInput) (*entity.Salary, error) {
	srv.log(ctx).Info("Creating salary record", slog.Int64("employeeID", input.EmployeeID), slog.String("month", input.Month))

	salary := &entity.Salary{
		TotalDeduction: input.TotalDeduction,
		NetSalary:      input.NetSalary,
		Month:          input.Month,
		EmployeeID:     input.EmployeeID,
	}

	storeCtx, cancel := storeContext(ctx, srv.storeTimeout)
	defer cancel()

	err := srv.txManager.Execute(storeCtx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.EmployeeRepo().FindByID(storeCtx, input.EmployeeID); err != nil {
			if errors.Is(err, repository.ErrEmployeeNotFound) {
				return errors.Wrap(domainerrors.ErrUnknownEmployee, "salary creation failed")
			}

			return errors.Wrap(err, "failed to verify employee for salary creation")
		}

		return repoFactory.SalaryRepo().Create(storeCtx, salary)
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEmployeeReferenceInvalid):
			return nil, errors.Wrap(domainerrors.ErrUnknownEmployee, "salary creation failed")
		case errors.Is(err, domainerrors.ErrUnknownEmployee):
			return nil, err
		}

		srv.log(ctx).Error("Failed to create salary record", slog.Int64("employeeID", input.EmployeeID), slog.Any("error", err))

		return nil, mapStoreError(err)
	}

	return salary, nil
}

// Get retrieves a single salary record.
func (srv *salaryService) Get(ctx context.Context, id int64) (*entity.Salary, error) {
	storeCtx, cancel := storeContext(ctx, srv.storeTimeout)
	defer cancel()

	salary, err := srv.salaryRepo.FindByID(storeCtx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSalaryNotFound) {
			return nil, errors.Wrap(domainerrors.ErrSalaryNotFound, "salary lookup failed")
		}

		srv.log(ctx).Error("Failed to load salary record", slog.Int64("salaryID", id), slog.Any("error", err))

		return nil, mapStoreError(err)
	}

	return salary, nil
}

// List retrieves all salary records with employee fields joined.
func (srv *salaryService) List(ctx context.Context) ([]*entity.Salary, error) {
	storeCtx, cancel := storeContext(ctx, srv.storeTimeout)
	defer cancel()

	salaries, err := srv.salaryRepo.List(storeCtx)
	if err != nil {
		srv.log(ctx).Error("Failed to list salary records", slog.Any("error", err))

		return nil, mapStoreError(err)
	}

	return salaries, nil
}

// Update modifies the deduction, net salary and month of an existing record.
func (srv *salaryService) Update(ctx context.Context, input *usecase.UpdateSalaryInput) (*entity.Salary, error) {
	srv.log(ctx).Info("Updating salary record", slog.Int64("salaryID", input.ID))

	salary := &entity.Salary{
		ID:             input.ID,
		TotalDeduction: input.TotalDeduction,
		NetSalary:      input.NetSalary,
		Month:          input.Month,
	}

	storeCtx, cancel := storeContext(ctx, srv.storeTimeout)
	defer cancel()

	if err := srv.salaryRepo.Update(storeCtx, salary); err != nil {
		if errors.Is(err, repository.ErrSalaryNotFound) {
			return nil, errors.Wrap(domainerrors.ErrSalaryNotFound, "salary update failed")
		}

		srv.log(ctx).Error("Failed to update salary record", slog.Int64("salaryID", input.ID), slog.Any("error", err))

		return nil, mapStoreError(err)
	}

	return srv.Get(ctx, input.ID)
}

// Delete removes a salary record.
func (srv *salaryService) Delete(ctx context.Context, id int64) error {
	srv.log(ctx).Info("Deleting salary record", slog.Int64("salaryID", id))

	storeCtx, cancel := storeContext(ctx, srv.storeTimeout)
	defer cancel()

	if err := srv.salaryRepo.Delete(storeCtx, id); err != nil {
		if errors.Is(err, repository.ErrSalaryNotFound) {
			return errors.Wrap(domainerrors.ErrSalaryNotFound, "salary deletion failed")
		}

		srv.log(ctx).Error("Failed to delete salary record", slog.Int64("salaryID", id), slog.Any("error", err))

		return mapStoreError(err)
	}

	return nil
}
