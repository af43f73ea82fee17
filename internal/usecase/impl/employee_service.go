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

// employeeService implements the EmployeeUsecase interface.
type employeeService struct {
	txManager    repository.TransactionManager
	employeeRepo repository.EmployeeRepository
	storeTimeout time.Duration
	logger       *slog.Logger
}

// EmployeeServiceParams holds dependencies for employeeService, injected by Fx.
type EmployeeServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	EmployeeRepo repository.EmployeeRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// NewEmployeeService is the constructor for employeeService.
func NewEmployeeService(params EmployeeServiceParams) usecase.EmployeeUsecase {
	storeTimeout := time.Duration(0)
	if params.Config != nil && params.Config.Auth != nil {
		storeTimeout = params.Config.Auth.StoreTimeout
	}

	return &employeeService{
		txManager:    params.TxManager,
		employeeRepo: params.EmployeeRepo,
		storeTimeout: storeTimeout,
		logger:       params.Logger,
	}
}

func (srv *employeeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create adds a new employee. The department check and the insert run in one
// transaction so the referenced department cannot disappear in between.
func (srv *employeeService) Create(ctx context.Context, input *usecase.CreateEmployeeInput) (*entity.Employee, error) {
	srv.log(ctx).Info("Creating employee", slog.String("employeeNumber", input.EmployeeNumber))

	employee := &entity.Employee{
		EmployeeNumber: input.EmployeeNumber,
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Position:       input.Position,
		Address:        input.Address,
		Telephone:      input.Telephone,
		DepartmentID:   input.DepartmentID,
	}

	storeCtx, cancel := storeContext(ctx, srv.storeTimeout)
	defer cancel()

	err := srv.txManager.Execute(storeCtx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.DepartmentRepo().FindByID(storeCtx, input.DepartmentID); err != nil {
			if errors.Is(err, repository.ErrDepartmentNotFound) {
				return errors.Wrap(domainerrors.ErrUnknownDepartment, "employee creation failed")
			}

			return errors.Wrap(err, "failed to verify department for employee creation")
		}

		return repoFactory.EmployeeRepo().Create(storeCtx, employee)
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEmployeeNumber):
			return nil, errors.Wrap(domainerrors.ErrDuplicateEmployeeNumber, "employee creation failed")
		case errors.Is(err, repository.ErrDepartmentReferenceInvalid):
			return nil, errors.Wrap(domainerrors.ErrUnknownDepartment, "employee creation failed")
		case errors.Is(err, domainerrors.ErrUnknownDepartment):
			return nil, err
		}

		srv.log(ctx).Error("Failed to create employee", slog.String("employeeNumber", input.EmployeeNumber), slog.Any("error", err))

		return nil, mapStoreError(err)
	}

	return srv.Get(ctx, employee.ID)
}

// Get retrieves a single employee with its department fields joined.
func (srv *employeeService) Get(ctx context.Context, id int64) (*entity.Employee, error) {
	storeCtx, cancel := storeContext(ctx, srv.storeTimeout)
	defer cancel()

	employee, err := srv.employeeRepo.FindByID(storeCtx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return nil, errors.Wrap(domainerrors.ErrEmployeeNotFound, "employee lookup failed")
		}

		srv.log(ctx).Error("Failed to load employee", slog.Int64("employeeID", id), slog.Any("error", err))

		return nil, mapStoreError(err)
	}

	return employee, nil
}

// List retrieves all employees with their department fields joined.
func (srv *employeeService) List(ctx context.Context) ([]*entity.Employee, error) {
	storeCtx, cancel := storeContext(ctx, srv.storeTimeout)
	defer cancel()

	employees, err := srv.employeeRepo.List(storeCtx)
	if err != nil {
		srv.log(ctx).Error("Failed to list employees", slog.Any("error", err))

		return nil, mapStoreError(err)
	}

	return employees, nil
}

// Update modifies an existing employee.
func (srv *employeeService) Update(ctx context.Context, input *usecase.UpdateEmployeeInput) (*entity.Employee, error) {
	srv.log(ctx).Info("Updating employee", slog.Int64("employeeID", input.ID))

	employee := &entity.Employee{
		ID:             input.ID,
		EmployeeNumber: input.EmployeeNumber,
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Position:       input.Position,
		Address:        input.Address,
		Telephone:      input.Telephone,
		DepartmentID:   input.DepartmentID,
	}

	storeCtx, cancel := storeContext(ctx, srv.storeTimeout)
	defer cancel()

	if err := srv.employeeRepo.Update(storeCtx, employee); err != nil {
		switch {
		case errors.Is(err, repository.ErrEmployeeNotFound):
			return nil, errors.Wrap(domainerrors.ErrEmployeeNotFound, "employee update failed")
		case errors.Is(err, repository.ErrDuplicateEmployeeNumber):
			return nil, errors.Wrap(domainerrors.ErrDuplicateEmployeeNumber, "employee update failed")
		case errors.Is(err, repository.ErrDepartmentReferenceInvalid):
			return nil, errors.Wrap(domainerrors.ErrUnknownDepartment, "employee update failed")
		}

		srv.log(ctx).Error("Failed to update employee", slog.Int64("employeeID", input.ID), slog.Any("error", err))

		return nil, mapStoreError(err)
	}

	return srv.Get(ctx, input.ID)
}

// Delete removes an employee.
func (srv *employeeService) Delete(ctx context.Context, id int64) error {
	srv.log(ctx).Info("Deleting employee", slog.Int64("employeeID", id))

	storeCtx, cancel := storeContext(ctx, srv.storeTimeout)
	defer cancel()

	if err := srv.employeeRepo.Delete(storeCtx, id); err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return errors.Wrap(domainerrors.ErrEmployeeNotFound, "employee deletion failed")
		}

		srv.log(ctx).Error("Failed to delete employee", slog.Int64("employeeID", id), slog.Any("error", err))

		return mapStoreError(err)
	}

	return nil
}
