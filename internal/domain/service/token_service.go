package service

import (
	"time"

	"storefront/internal/domain/entity"
)

// SessionClaims is the identity information carried by a session token.
type SessionClaims struct {
	UserID    string
	SessionID string
	Role      entity.Role
}

// TokenService defines the interface for issuing and validating session tokens.
// This abstracts the token format (JWT) from the use cases and middleware.
type TokenService interface {
	// Generate creates a signed token binding the user to a session.
	Generate(userID, sessionID string, role entity.Role) (string, error)

	// Validate checks a token string and returns its claims.
	Validate(tokenString string) (*SessionClaims, error)

	// TTL returns the configured session token lifetime.
	TTL() time.Duration
}
