package memory

import (
	"context"
	"strings"
	"sync"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

// userRepository keeps registered accounts in memory, indexed by lowercased
// email. The password hash stays inside this repository and the login flow.
type userRepository struct {
	mu      sync.RWMutex
	byEmail map[string]repository.Credentials
	byID    map[string]repository.Credentials
}

// NewUserRepository creates the in-memory account repository.
func NewUserRepository() repository.UserRepository {
	return &userRepository{
		byEmail: make(map[string]repository.Credentials),
		byID:    make(map[string]repository.Credentials),
	}
}

// FindByID retrieves a single user by their unique ID.
func (r *userRepository) FindByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	creds, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	user := creds.User

	return &user, nil
}

// FindByEmail retrieves the credentials registered for an email address.
func (r *userRepository) FindByEmail(_ context.Context, email string) (*repository.Credentials, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	creds, ok := r.byEmail[normalizeEmail(email)]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return &creds, nil
}

// Create persists a new account, rejecting duplicate email addresses.
func (r *userRepository) Create(_ context.Context, creds repository.Credentials) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := normalizeEmail(creds.User.Email)
	if _, exists := r.byEmail[key]; exists {
		return repository.ErrEmailTaken
	}

	r.byEmail[key] = creds
	r.byID[creds.User.ID] = creds

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
