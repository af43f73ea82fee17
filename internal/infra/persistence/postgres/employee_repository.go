package postgres

import (
	"context"

	"payroll/internal/domain/entity"
	domainerrors "payroll/internal/domain/errors"
	"payroll/internal/domain/repository"
	"payroll/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// employeeRepository implements the repository.EmployeeRepository interface using GORM.
type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository is the constructor for employeeRepository.
func NewEmployeeRepository(db *gorm.DB) repository.EmployeeRepository {
	return &employeeRepository{
		db: db,
	}
}

// employeeRow is the flat scan target for queries that join employees with
// their department.
type employeeRow struct {
	model.EmployeeModel
	DepartmentName string
	GrossSalary    float64
}

// Create persists a new employee. The foreign key to departments decides
// whether the referenced department exists.
func (repo *employeeRepository) Create(ctx context.Context, employee *entity.Employee) error {
	employeeM := fromEmployeeDomain(employee)

	if err := repo.db.WithContext(ctx).Create(employeeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmployeeNumber
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrDepartmentReferenceInvalid
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required employee information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create employee")
	}

	employee.ID = employeeM.ID
	employee.CreatedAt = employeeM.CreatedAt
	employee.UpdatedAt = employeeM.UpdatedAt

	return nil
}

// FindByID retrieves a single employee with its department fields joined.
func (repo *employeeRepository) FindByID(ctx context.Context, id int64) (*entity.Employee, error) {
	var row employeeRow

	if err := repo.db.WithContext(ctx).
		Model(&model.EmployeeModel{}).
		Select("employees.*, departments.department_name, departments.gross_salary").
		Joins("JOIN departments ON departments.id = employees.department_id").
		Where("employees.id = ?", id).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEmployeeNotFound
		}

		return nil, errors.Wrap(err, "failed to find employee by id")
	}

	return toEmployeeDomain(&row), nil
}

// List retrieves all employees with their department name and gross salary joined.
func (repo *employeeRepository) List(ctx context.Context) ([]*entity.Employee, error) {
	var rows []*employeeRow

	if err := repo.db.WithContext(ctx).
		Model(&model.EmployeeModel{}).
		Select("employees.*, departments.department_name, departments.gross_salary").
		Joins("JOIN departments ON departments.id = employees.department_id").
		Order("employees.id").
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list employees")
	}

	employees := make([]*entity.Employee, 0, len(rows))
	for _, row := range rows {
		employees = append(employees, toEmployeeDomain(row))
	}

	return employees, nil
}

// Update modifies the mutable fields of an existing employee.
func (repo *employeeRepository) Update(ctx context.Context, employee *entity.Employee) error {
	result := repo.db.WithContext(ctx).
		Model(&model.EmployeeModel{}).
		Where("id = ?", employee.ID).
		Updates(map[string]any{
			"employee_number": employee.EmployeeNumber,
			"first_name":      employee.FirstName,
			"last_name":       employee.LastName,
			"position":        employee.Position,
			"address":         employee.Address,
			"telephone":       employee.Telephone,
			"department_id":   employee.DepartmentID,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateEmployeeNumber
		}
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrDepartmentReferenceInvalid
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update employee")
	}

	if result.RowsAffected == 0 {
		return repository.ErrEmployeeNotFound
	}

	return nil
}

// Delete removes an employee by its identifier.
func (repo *employeeRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.EmployeeModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete employee")
	}

	if result.RowsAffected == 0 {
		return repository.ErrEmployeeNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toEmployeeDomain(data *employeeRow) *entity.Employee {
	if data == nil {
		return nil
	}

	return &entity.Employee{
		ID:             data.ID,
		EmployeeNumber: data.EmployeeNumber,
		FirstName:      data.FirstName,
		LastName:       data.LastName,
		Position:       data.Position,
		Address:        data.Address,
		Telephone:      data.Telephone,
		DepartmentID:   data.DepartmentID,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
		DepartmentName: data.DepartmentName,
		GrossSalary:    data.GrossSalary,
	}
}

func fromEmployeeDomain(data *entity.Employee) *model.EmployeeModel {
	if data == nil {
		return nil
	}

	return &model.EmployeeModel{
		ID:             data.ID,
		EmployeeNumber: data.EmployeeNumber,
		FirstName:      data.FirstName,
		LastName:       data.LastName,
		Position:       data.Position,
		Address:        data.Address,
		Telephone:      data.Telephone,
		DepartmentID:   data.DepartmentID,
	}
}
