package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"payroll/internal/domain/entity"
	"payroll/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func employeeRowColumns() []string {
	return []string{
		"id", "employee_number", "first_name", "last_name", "position",
		"address", "telephone", "department_id", "created_at", "updated_at",
		"department_name", "gross_salary",
	}
}

func TestEmployeeRepository_FindByID_JoinsDepartmentFields(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewEmployeeRepository(db)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT employees.*, departments.department_name, departments.gross_salary FROM "employees" JOIN departments ON departments.id = employees.department_id WHERE employees.id = $1`)).
		WithArgs(int64(5), 1).
		WillReturnRows(sqlmock.NewRows(employeeRowColumns()).
			AddRow(int64(5), "EMP-005", "Ada", "Lovelace", "Engineer",
				"12 Crescent Rd", "555-0100", int64(3), now, now,
				"Engineering", 90000.0))

	employee, err := repo.FindByID(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "EMP-005", employee.EmployeeNumber)
	assert.Equal(t, "Engineering", employee.DepartmentName)
	assert.Equal(t, 90000.0, employee.GrossSalary)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_FindByID_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewEmployeeRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM "employees" JOIN departments`)).
		WithArgs(int64(99), 1).
		WillReturnRows(sqlmock.NewRows(employeeRowColumns()))

	employee, err := repo.FindByID(context.Background(), 99)
	assert.Nil(t, employee)
	assert.ErrorIs(t, err, repository.ErrEmployeeNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_Create_UnknownDepartment(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewEmployeeRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "employees"`)).
		WillReturnError(errors.New(`ERROR: insert or update on table "employees" violates foreign key constraint "fk_employees_department" (SQLSTATE 23503)`))

	err := repo.Create(context.Background(), &entity.Employee{
		EmployeeNumber: "EMP-005",
		FirstName:      "Ada",
		LastName:       "Lovelace",
		Position:       "Engineer",
		DepartmentID:   999,
	})
	assert.ErrorIs(t, err, repository.ErrDepartmentReferenceInvalid)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_Create_DuplicateNumber(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewEmployeeRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "employees"`)).
		WillReturnError(errors.New(`ERROR: duplicate key value violates unique constraint "idx_employees_employee_number" (SQLSTATE 23505)`))

	err := repo.Create(context.Background(), &entity.Employee{
		EmployeeNumber: "EMP-005",
		FirstName:      "Ada",
		LastName:       "Lovelace",
		Position:       "Engineer",
		DepartmentID:   3,
	})
	assert.ErrorIs(t, err, repository.ErrDuplicateEmployeeNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_Update_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewEmployeeRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "employees"`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &entity.Employee{
		ID:             99,
		EmployeeNumber: "EMP-099",
		FirstName:      "Ada",
		LastName:       "Lovelace",
		Position:       "Engineer",
		DepartmentID:   3,
	})
	assert.ErrorIs(t, err, repository.ErrEmployeeNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_Delete(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewEmployeeRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "employees" WHERE id = $1`)).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(context.Background(), 5))
	assert.NoError(t, mock.ExpectationsWereMet())
}
