// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"payroll/config"
	"payroll/internal/domain/entity"
	domainerrors "payroll/internal/domain/errors"
	"payroll/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// The signing secret is read once at construction and never mutated afterwards.
type jwtService struct {
	secret   string
	tokenTTL time.Duration
}

// NewJWTService is the constructor for jwtService. A missing signing secret
// is a startup precondition failure, not a per-request error: the constructor
// errors and fx aborts the process before any request is served.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg == nil || cfg.Auth == nil || cfg.Auth.TokenSecret == "" {
		return nil, errors.New("jwt signing secret must be provided")
	}

	ttl := cfg.Auth.TokenTTL
	if ttl <= 0 {
		ttl = 48 * time.Hour
	}

	return &jwtService{
		secret:   cfg.Auth.TokenSecret,
		tokenTTL: ttl,
	}, nil
}

// Issue creates a signed HS256 token asserting the account's identity.
func (s *jwtService) Issue(accountID int64, username string, role entity.Role) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		AccountID: accountID,
		Username:  username,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify checks the token's signature and expiry and returns its claims.
// The three failure modes stay distinct so the client can tell a stale login
// (expired) from a tampered or garbage token.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, domainerrors.ErrTokenExpired.WrapMessage("token verification failed")
		case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrSignatureInvalid):
			return nil, domainerrors.ErrTokenSignatureInvalid.WrapMessage("token verification failed")
		default:
			return nil, domainerrors.ErrTokenMalformed.WrapMessage("token verification failed")
		}
	}

	if !token.Valid {
		return nil, domainerrors.ErrTokenSignatureInvalid.WrapMessage("token verification failed")
	}

	return claims, nil
}

// TokenTTL returns the configured token lifetime.
func (s *jwtService) TokenTTL() time.Duration {
	return s.tokenTTL
}
