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

// salaryRepository implements the repository.SalaryRepository interface using GORM.
type salaryRepository struct {
	db *gorm.DB
}

// NewSalaryRepository is the constructor for salaryRepository.
func NewSalaryRepository(db *gorm.DB) repository.SalaryRepository {
	return &salaryRepository{
		db: db,
	}
}

// salaryRow is the flat scan target for queries that join salaries with the
// employee and the employee's department.
type salaryRow struct {
	model.SalaryModel
	FirstName      string
	LastName       string
	Position       string
	DepartmentName string
}

// Create persists a new salary record. The foreign key to employees decides
// whether the referenced employee exists.
func (repo *salaryRepository) Create(ctx context.Context, salary *entity.Salary) error {
	salaryM := fromSalaryDomain(salary)

	if err := repo.db.WithContext(ctx).Create(salaryM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrEmployeeReferenceInvalid
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required salary information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create salary record")
	}

	salary.ID = salaryM.ID
	salary.CreatedAt = salaryM.CreatedAt
	salary.UpdatedAt = salaryM.UpdatedAt

	return nil
}

// FindByID retrieves a single salary record.
func (repo *salaryRepository) FindByID(ctx context.Context, id int64) (*entity.Salary, error) {
	var salaryM model.SalaryModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&salaryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSalaryNotFound
		}

		return nil, errors.Wrap(err, "failed to find salary record by id")
	}

	return toSalaryDomain(&salaryRow{SalaryModel: salaryM}), nil
}

// List retrieves all salary records with employee and department fields joined.
func (repo *salaryRepository) List(ctx context.Context) ([]*entity.Salary, error) {
	var rows []*salaryRow

	if err := repo.db.WithContext(ctx).
		Model(&model.SalaryModel{}).
		Select("salaries.*, employees.first_name, employees.last_name, employees.position, departments.department_name").
		Joins("JOIN employees ON employees.id = salaries.employee_id").
		Joins("JOIN departments ON departments.id = employees.department_id").
		Order("salaries.id").
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list salary records")
	}

	salaries := make([]*entity.Salary, 0, len(rows))
	for _, row := range rows {
		salaries = append(salaries, toSalaryDomain(row))
	}

	return salaries, nil
}

// Update modifies the deduction, net salary and month of an existing record.
func (repo *salaryRepository) Update(ctx context.Context, salary *entity.Salary) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SalaryModel{}).
		Where("id = ?", salary.ID).
		Updates(map[string]any{
			"total_deduction": salary.TotalDeduction,
			"net_salary":      salary.NetSalary,
			"month":           salary.Month,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update salary record")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSalaryNotFound
	}

	return nil
}

// Delete removes a salary record by its identifier.
func (repo *salaryRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.SalaryModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete salary record")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSalaryNotFound
	}

	return nil
}

// ListMonthlyPayroll returns the payroll report rows for one month, ordered
// by employee name.
func (repo *salaryRepository) ListMonthlyPayroll(ctx context.Context, month string) ([]*entity.PayrollEntry, error) {
	var entries []*entity.PayrollEntry

	if err := repo.db.WithContext(ctx).
		Model(&model.SalaryModel{}).
		Select("employees.first_name, employees.last_name, employees.position, departments.department_name, salaries.net_salary, salaries.month").
		Joins("JOIN employees ON employees.id = salaries.employee_id").
		Joins("JOIN departments ON departments.id = employees.department_id").
		Where("salaries.month = ?", month).
		Order("employees.last_name, employees.first_name").
		Find(&entries).Error; err != nil {
		return nil, errors.Wrap(err, "failed to build monthly payroll report")
	}

	return entries, nil
}

// --- Mapper Functions ---

func toSalaryDomain(data *salaryRow) *entity.Salary {
	if data == nil {
		return nil
	}

	return &entity.Salary{
		ID:             data.ID,
		TotalDeduction: data.TotalDeduction,
		NetSalary:      data.NetSalary,
		Month:          data.Month,
		EmployeeID:     data.EmployeeID,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
		FirstName:      data.FirstName,
		LastName:       data.LastName,
		Position:       data.Position,
		DepartmentName: data.DepartmentName,
	}
}

func fromSalaryDomain(data *entity.Salary) *model.SalaryModel {
	if data == nil {
		return nil
	}

	return &model.SalaryModel{
		ID:             data.ID,
		TotalDeduction: data.TotalDeduction,
		NetSalary:      data.NetSalary,
		Month:          data.Month,
		EmployeeID:     data.EmployeeID,
	}
}
