package memory

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	creds := repository.Credentials{
		User: entity.User{
			ID:    "u1",
			Name:  "Shopper",
			Email: "shopper@example.com",
			Role:  entity.RoleUser,
		},
		PasswordHash: "hash",
	}
	require.NoError(t, repo.Create(ctx, creds))

	byEmail, err := repo.FindByEmail(ctx, "shopper@example.com")
	require.NoError(t, err)
	assert.Equal(t, creds, *byEmail)

	byID, err := repo.FindByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, creds.User, *byID)
}

func TestUserRepository_FindByEmail_IsCaseInsensitive(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, repository.Credentials{
		User: entity.User{ID: "u1", Email: "Shopper@Example.com", Role: entity.RoleUser},
	}))

	_, err := repo.FindByEmail(ctx, "shopper@example.com")
	assert.NoError(t, err)
}

func TestUserRepository_Create_RejectsDuplicateEmail(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, repository.Credentials{
		User: entity.User{ID: "u1", Email: "shopper@example.com", Role: entity.RoleUser},
	}))

	err := repo.Create(ctx, repository.Credentials{
		User: entity.User{ID: "u2", Email: "SHOPPER@example.com", Role: entity.RoleUser},
	})
	assert.ErrorIs(t, err, repository.ErrEmailTaken)
}

func TestUserRepository_FindUnknown(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	_, err := repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}
