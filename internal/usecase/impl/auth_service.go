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
	"payroll/internal/domain/service"
	"payroll/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	storeTimeout time.Duration
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	storeTimeout := time.Duration(0)
	if params.Config != nil && params.Config.Auth != nil {
		storeTimeout = params.Config.Auth.StoreTimeout
	}

	return &authService{
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		storeTimeout: storeTimeout,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// unknownAccountDigest is a bcrypt digest of a throwaway value. The
// unknown-username login path compares against it so both failure paths pay
// one bcrypt verification.
const unknownAccountDigest = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Register creates a new account. The unique constraint on the username is
// the single authority on duplicates; there is no lookup before the insert.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting account registration", slog.String("username", input.Username))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	account := &entity.Account{
		Username:     input.Username,
		PasswordHash: hashedPassword,
		Role:         entity.Role(input.Role),
	}

	storeCtx, cancel := storeContext(ctx, srv.storeTimeout)
	defer cancel()

	if err := srv.accountRepo.Create(storeCtx, account); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			srv.log(ctx).Warn("Registration rejected for duplicate username", slog.String("username", input.Username))

			return nil, errors.Wrap(domainerrors.ErrDuplicateUsername, "registration failed")
		}

		srv.log(ctx).Error("Failed to create account", slog.String("username", input.Username), slog.Any("error", err))

		return nil, mapStoreError(err)
	}

	srv.log(ctx).Debug("Account registered", slog.Int64("accountID", account.ID))

	return &usecase.RegisterOutput{Account: account.View()}, nil
}

// Login verifies the credentials and issues a bearer token. A wrong password
// is an authentication failure, never a success with an error payload.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("username", input.Username))

	storeCtx, cancel := storeContext(ctx, srv.storeTimeout)
	defer cancel()

	account, err := srv.accountRepo.FindByUsername(storeCtx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.hasher.Check(input.Password, unknownAccountDigest)
			srv.log(ctx).Warn("Login failed, unknown username", slog.String("username", input.Username))

			return nil, errors.Wrap(domainerrors.ErrAccountNotFound, "login failed")
		}

		srv.log(ctx).Error("Failed to load account for login", slog.String("username", input.Username), slog.Any("error", err))

		return nil, mapStoreError(err)
	}

	// Check password outside any store call (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Login failed, wrong password", slog.String("username", input.Username))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	token, err := srv.tokenService.Issue(account.ID, account.Username, account.Role)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.Int64("accountID", account.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token during login")
	}

	srv.log(ctx).Debug("Login succeeded", slog.Int64("accountID", account.ID))

	return &usecase.LoginOutput{
		Token:   token,
		Account: account.View(),
	}, nil
}

// ListAccounts returns the public view of every account.
func (srv *authService) ListAccounts(ctx context.Context) ([]*entity.AccountView, error) {
	storeCtx, cancel := storeContext(ctx, srv.storeTimeout)
	defer cancel()

	accounts, err := srv.accountRepo.List(storeCtx)
	if err != nil {
		srv.log(ctx).Error("Failed to list accounts", slog.Any("error", err))

		return nil, mapStoreError(err)
	}

	views := make([]*entity.AccountView, 0, len(accounts))
	for _, account := range accounts {
		views = append(views, account.View())
	}

	return views, nil
}

// GetAccount returns the public view of a single account.
func (srv *authService) GetAccount(ctx context.Context, id int64) (*entity.AccountView, error) {
	storeCtx, cancel := storeContext(ctx, srv.storeTimeout)
	defer cancel()

	account, err := srv.accountRepo.FindByID(storeCtx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAccountNotFound, "account lookup failed")
		}

		srv.log(ctx).Error("Failed to load account", slog.Int64("accountID", id), slog.Any("error", err))

		return nil, mapStoreError(err)
	}

	return account.View(), nil
}
