package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"payroll/internal/domain/entity"
	domainerrors "payroll/internal/domain/errors"
	"payroll/internal/domain/service"
	mockSvc "payroll/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(t *testing.T, authorization string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/departments", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c, _ := newAuthTestContext(t, "")
	err := m.Authenticate(okHandler)(c)

	assert.ErrorIs(t, err, domainerrors.ErrTokenMissing)
}

func TestAuthMiddleware_NotBearerScheme(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c, _ := newAuthTestContext(t, "Basic YWxpY2U6cGFzcw==")
	err := m.Authenticate(okHandler)(c)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "TOKEN_MALFORMED", appErr.ErrorCode())
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.On("Verify", "expired.token").Return(nil, domainerrors.ErrTokenExpired)
	m := NewAuthMiddleware(tokenSvc)

	c, _ := newAuthTestContext(t, "Bearer expired.token")
	err := m.Authenticate(okHandler)(c)

	assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
}

func TestAuthMiddleware_BadSignature(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.On("Verify", "forged.token").Return(nil, domainerrors.ErrTokenSignatureInvalid)
	m := NewAuthMiddleware(tokenSvc)

	c, _ := newAuthTestContext(t, "Bearer forged.token")
	err := m.Authenticate(okHandler)(c)

	assert.ErrorIs(t, err, domainerrors.ErrTokenSignatureInvalid)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.On("Verify", "valid.token").Return(&service.Claims{
		AccountID: 7,
		Username:  "alice",
		Role:      entity.RoleAdmin,
	}, nil)
	m := NewAuthMiddleware(tokenSvc)

	c, rec := newAuthTestContext(t, "Bearer valid.token")
	err := m.Authenticate(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), c.Get(ContextKeyAccountID))
	assert.Equal(t, "alice", c.Get(ContextKeyUsername))
	assert.Equal(t, entity.RoleAdmin, c.Get(ContextKeyRole))
}
