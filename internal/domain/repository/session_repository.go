// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// SessionRepository persists the "who is logged in" record for each session
// in an external key-value collaborator. Absence of a record is the logged-out
// state, not an error; I/O faults are surfaced to the caller and never
// retried silently.
type SessionRepository interface {
	// Find loads the user record stored for the session.
	// Returns (nil, nil) when no record exists.
	Find(ctx context.Context, sessionID string) (*entity.User, error)

	// Store writes the user record for the session, replacing any previous one.
	Store(ctx context.Context, sessionID string, user *entity.User) error

	// Remove deletes the stored record; removing an absent record is a no-op.
	Remove(ctx context.Context, sessionID string) error
}
