package blob

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestSessionRepo(t *testing.T) repository.SessionRepository {
	t.Helper()

	cfg := &config.Config{}
	cfg.Session.BucketURL = "mem://"
	cfg.Session.KeyPrefix = "sessions/"

	lc := fxtest.NewLifecycle(t)
	repo, err := NewSessionRepository(SessionRepositoryParams{
		Lifecycle: lc,
		Ctx:       context.Background(),
		Config:    cfg,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	lc.RequireStart()
	t.Cleanup(lc.RequireStop)

	return repo
}

func TestSessionRepository_StoreAndFind(t *testing.T) {
	repo := newTestSessionRepo(t)
	ctx := context.Background()

	user := &entity.User{ID: "u1", Name: "Admin User", Email: "admin@klfc.com", Role: entity.RoleAdmin}
	require.NoError(t, repo.Store(ctx, "sid-1", user))

	found, err := repo.Find(ctx, "sid-1")
	require.NoError(t, err)
	assert.Equal(t, user, found)
}

func TestSessionRepository_Find_AbsentIsLoggedOut(t *testing.T) {
	repo := newTestSessionRepo(t)

	user, err := repo.Find(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestSessionRepository_Remove(t *testing.T) {
	repo := newTestSessionRepo(t)
	ctx := context.Background()

	user := &entity.User{ID: "u1", Role: entity.RoleUser}
	require.NoError(t, repo.Store(ctx, "sid-1", user))
	require.NoError(t, repo.Remove(ctx, "sid-1"))

	found, err := repo.Find(ctx, "sid-1")
	require.NoError(t, err)
	assert.Nil(t, found)

	// Removing an absent record is a no-op.
	assert.NoError(t, repo.Remove(ctx, "sid-1"))
}

func TestSessionRepository_Store_Replaces(t *testing.T) {
	repo := newTestSessionRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Store(ctx, "sid-1", &entity.User{ID: "u1", Role: entity.RoleUser}))
	require.NoError(t, repo.Store(ctx, "sid-1", &entity.User{ID: "u2", Role: entity.RoleAdmin}))

	found, err := repo.Find(ctx, "sid-1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "u2", found.ID)
	assert.Equal(t, entity.RoleAdmin, found.Role)
}
