package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"payroll/internal/domain/entity"
)

// Claims defines the custom claims carried by every issued token.
// All request-time identity is read from here; the server keeps no session state.
type Claims struct {
	AccountID int64       `json:"accountId"`
	Username  string      `json:"username"`
	Role      entity.Role `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying signed tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a signed token asserting the given account identity,
	// expiring after the configured TTL.
	Issue(accountID int64, username string, role entity.Role) (string, error)

	// Verify checks the token's signature and expiry and returns its claims.
	// Failures map onto the domain taxonomy: malformed, bad signature, expired.
	Verify(tokenString string) (*Claims, error)

	// TokenTTL returns the configured token lifetime.
	TokenTTL() time.Duration
}
