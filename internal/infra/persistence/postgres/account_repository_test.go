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
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a GORM connection backed by sqlmock so repository queries
// can be asserted without a real database.
func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func accountColumns() []string {
	return []string{"id", "username", "password_hash", "role", "created_at", "updated_at"}
}

func TestAccountRepository_FindByUsername(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAccountRepository(db)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "accounts" WHERE username = $1`)).
		WithArgs("alice", 1).
		WillReturnRows(sqlmock.NewRows(accountColumns()).
			AddRow(int64(7), "alice", "$2a$10$digest", "admin", now, now))

	account, err := repo.FindByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(7), account.ID)
	assert.Equal(t, "alice", account.Username)
	assert.Equal(t, entity.RoleAdmin, account.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_FindByUsername_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAccountRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "accounts" WHERE username = $1`)).
		WithArgs("ghost", 1).
		WillReturnRows(sqlmock.NewRows(accountColumns()))

	account, err := repo.FindByUsername(context.Background(), "ghost")
	assert.Nil(t, account)
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_Create(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAccountRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "accounts"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

	account := &entity.Account{
		Username:     "bob",
		PasswordHash: "$2a$10$digest",
		Role:         entity.RoleStaff,
	}
	require.NoError(t, repo.Create(context.Background(), account))
	assert.Equal(t, int64(42), account.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_Create_DuplicateUsername(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAccountRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "accounts"`)).
		WillReturnError(errors.New(`ERROR: duplicate key value violates unique constraint "idx_accounts_username" (SQLSTATE 23505)`))

	account := &entity.Account{
		Username:     "bob",
		PasswordHash: "$2a$10$digest",
		Role:         entity.RoleStaff,
	}
	err := repo.Create(context.Background(), account)
	assert.ErrorIs(t, err, repository.ErrDuplicateUsername)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_List(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAccountRepository(db)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "accounts" ORDER BY id`)).
		WillReturnRows(sqlmock.NewRows(accountColumns()).
			AddRow(int64(1), "alice", "h1", "admin", now, now).
			AddRow(int64(2), "bob", "h2", "staff", now, now))

	accounts, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "alice", accounts[0].Username)
	assert.Equal(t, "bob", accounts[1].Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}
