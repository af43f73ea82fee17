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

// departmentService implements the DepartmentUsecase interface.
type departmentService struct {
	departmentRepo repository.DepartmentRepository
	storeTimeout   time.Duration
	logger         *slog.Logger
}

// DepartmentServiceParams holds dependencies for departmentService, injected by Fx.
type DepartmentServiceParams struct {
	fx.In

	DepartmentRepo repository.DepartmentRepository
	Config         *config.Config
	Logger         *slog.Logger
}

// NewDepartmentService is the constructor for departmentService.
func NewDepartmentService(params DepartmentServiceParams) usecase.DepartmentUsecase {
	storeTimeout := time.Duration(0)
	if params.Config != nil && params.Config.Auth != nil {
		storeTimeout = params.Config.Auth.StoreTimeout
	}

	return &departmentService{
		departmentRepo: params.DepartmentRepo,
		storeTimeout:   storeTimeout,
		logger:         params.Logger,
	}
}

func (srv *departmentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create adds a new department. The unique constraint on the department code
// is the single authority on duplicates.
func (srv *departmentService) Create(ctx context.Context, input *usecase.CreateDepartmentInput) (*entity.Department, error) {
	srv.log(ctx).Info("Creating department", slog.String("departmentCode", input.DepartmentCode))

	department := &entity.Department{
		DepartmentCode: input.DepartmentCode,
		DepartmentName: input.DepartmentName,
		GrossSalary:    input.GrossSalary,
	}

	storeCtx, cancel := storeContext(ctx, srv.storeTimeout)
	defer cancel()

	if err := srv.departmentRepo.Create(storeCtx, department); err != nil {
		if errors.Is(err, repository.ErrDuplicateDepartmentCode) {
			return nil, errors.Wrap(domainerrors.ErrDuplicateDepartmentCode, "department creation failed")
		}

		srv.log(ctx).Error("Failed to create department", slog.String("departmentCode", input.DepartmentCode), slog.Any("error", err))

		return nil, mapStoreError(err)
	}

	return department, nil
}

// Get retrieves a single department.
func (srv *departmentService) Get(ctx context.Context, id int64) (*entity.Department, error) {
	storeCtx, cancel := storeContext(ctx, srv.storeTimeout)
	defer cancel()

	department, err := srv.departmentRepo.FindByID(storeCtx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDepartmentNotFound) {
			return nil, errors.Wrap(domainerrors.ErrDepartmentNotFound, "department lookup failed")
		}

		srv.log(ctx).Error("Failed to load department", slog.Int64("departmentID", id), slog.Any("error", err))

		return nil, mapStoreError(err)
	}

	return department, nil
}

// List retrieves all departments.
func (srv *departmentService) List(ctx context.Context) ([]*entity.Department, error) {
	storeCtx, cancel := storeContext(ctx, srv.storeTimeout)
	defer cancel()

	departments, err := srv.departmentRepo.List(storeCtx)
	if err != nil {
		srv.log(ctx).Error("Failed to list departments", slog.Any("error", err))

		return nil, mapStoreError(err)
	}

	return departments, nil
}

// Update modifies an existing department.
func (srv *departmentService) Update(ctx context.Context, input *usecase.UpdateDepartmentInput) (*entity.Department, error) {
	srv.log(ctx).Info("Updating department", slog.Int64("departmentID", input.ID))

	department := &entity.Department{
		ID:             input.ID,
		DepartmentCode: input.DepartmentCode,
		DepartmentName: input.DepartmentName,
		GrossSalary:    input.GrossSalary,
	}

	storeCtx, cancel := storeContext(ctx, srv.storeTimeout)
	defer cancel()

	if err := srv.departmentRepo.Update(storeCtx, department); err != nil {
		switch {
		case errors.Is(err, repository.ErrDepartmentNotFound):
			return nil, errors.Wrap(domainerrors.ErrDepartmentNotFound, "department update failed")
		case errors.Is(err, repository.ErrDuplicateDepartmentCode):
			return nil, errors.Wrap(domainerrors.ErrDuplicateDepartmentCode, "department update failed")
		}

		srv.log(ctx).Error("Failed to update department", slog.Int64("departmentID", input.ID), slog.Any("error", err))

		return nil, mapStoreError(err)
	}

	return srv.Get(ctx, input.ID)
}

// Delete removes a department.
func (srv *departmentService) Delete(ctx context.Context, id int64) error {
	srv.log(ctx).Info("Deleting department", slog.Int64("departmentID", id))

	storeCtx, cancel := storeContext(ctx, srv.storeTimeout)
	defer cancel()

	if err := srv.departmentRepo.Delete(storeCtx, id); err != nil {
		if errors.Is(err, repository.ErrDepartmentNotFound) {
			return errors.Wrap(domainerrors.ErrDepartmentNotFound, "department deletion failed")
		}

		srv.log(ctx).Error("Failed to delete department", slog.Int64("departmentID", id), slog.Any("error", err))

		return mapStoreError(err)
	}

	return nil
}
