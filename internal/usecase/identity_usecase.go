// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
)

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SessionOutput returns the session token and user after login or register.
// ExpiresAt is when the token stops being accepted; clients can use it to
// schedule re-login.
type SessionOutput struct {
	Token     string       `json:"token"`
	User      *entity.User `json:"user"`
	ExpiresAt time.Time    `json:"expiresAt"`
}

// IdentityUsecase defines the interface for identity and session operations.
type IdentityUsecase interface {
	// Register creates a user-role account and logs it in.
	Register(ctx context.Context, input RegisterInput) (*SessionOutput, error)

	// Login verifies credentials and opens a session.
	// Invalid credentials are rejected, never downgraded to a guest login.
	Login(ctx context.Context, input LoginInput) (*SessionOutput, error)

	// Logout removes the persisted session record.
	Logout(ctx context.Context, sessionID string) error

	// CurrentUser reflects the persisted session record.
	// An absent record is the logged-out state: (nil, nil).
	CurrentUser(ctx context.Context, sessionID string) (*entity.User, error)

	// BootstrapAdmin ensures the configured administrative account exists.
	BootstrapAdmin(ctx context.Context) error
}
