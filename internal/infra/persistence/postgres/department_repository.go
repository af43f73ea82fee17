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

// departmentRepository implements the repository.DepartmentRepository interface using GORM.
type departmentRepository struct {
	db *gorm.DB
}

// NewDepartmentRepository is the constructor for departmentRepository.
func NewDepartmentRepository(db *gorm.DB) repository.DepartmentRepository {
	return &departmentRepository{
		db: db,
	}
}

// Create persists a new department.
func (repo *departmentRepository) Create(ctx context.Context, department *entity.Department) error {
	departmentM := fromDepartmentDomain(department)

	if err := repo.db.WithContext(ctx).Create(departmentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateDepartmentCode
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required department information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create department")
	}

	department.ID = departmentM.ID
	department.CreatedAt = departmentM.CreatedAt
	department.UpdatedAt = departmentM.UpdatedAt

	return nil
}

// FindByID retrieves a single department by its identifier.
func (repo *departmentRepository) FindByID(ctx context.Context, id int64) (*entity.Department, error) {
	var departmentM model.DepartmentModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&departmentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDepartmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find department by id")
	}

	return toDepartmentDomain(&departmentM), nil
}

// List retrieves all departments ordered by code.
func (repo *departmentRepository) List(ctx context.Context) ([]*entity.Department, error) {
	var departmentModels []*model.DepartmentModel

	if err := repo.db.WithContext(ctx).
		Order("department_code").
		Find(&departmentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list departments")
	}

	departments := make([]*entity.Department, 0, len(departmentModels))
	for _, departmentM := range departmentModels {
		departments = append(departments, toDepartmentDomain(departmentM))
	}

	return departments, nil
}

// Update modifies the mutable fields of an existing department.
func (repo *departmentRepository) Update(ctx context.Context, department *entity.Department) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DepartmentModel{}).
		Where("id = ?", department.ID).
		Updates(map[string]any{
			"department_code": department.DepartmentCode,
			"department_name": department.DepartmentName,
			"gross_salary":    department.GrossSalary,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateDepartmentCode
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update department")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDepartmentNotFound
	}

	return nil
}

// Delete removes a department by its identifier.
func (repo *departmentRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.DepartmentModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete department")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDepartmentNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toDepartmentDomain(data *model.DepartmentModel) *entity.Department {
	if data == nil {
		return nil
	}

	return &entity.Department{
		ID:             data.ID,
		DepartmentCode: data.DepartmentCode,
		DepartmentName: data.DepartmentName,
		GrossSalary:    data.GrossSalary,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromDepartmentDomain(data *entity.Department) *model.DepartmentModel {
	if data == nil {
		return nil
	}

	return &model.DepartmentModel{
		ID:             data.ID,
		DepartmentCode: data.DepartmentCode,
		DepartmentName: data.DepartmentName,
		GrossSalary:    data.GrossSalary,
	}
}
