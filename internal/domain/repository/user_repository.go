// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrEmailTaken is returned when creating an account with an email that is
// already registered.
var ErrEmailTaken = errors.New("email already registered")

// Credentials pairs a user account with its password hash. The hash stays
// inside the repository and authentication flow; it is never serialized into
// session records or API responses.
type Credentials struct {
	User         entity.User
	PasswordHash string
}

// UserRepository defines the standard operations for account persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByEmail retrieves the credentials registered for an email address.
	FindByEmail(ctx context.Context, email string) (*Credentials, error)

	// Create persists a new account. Returns ErrEmailTaken when the email is
	// already registered.
	Create(ctx context.Context, creds Credentials) error
}
