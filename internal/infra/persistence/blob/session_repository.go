// Package blob implements the session record store over a gocloud.dev blob
// bucket. The storefront consumes the bucket as a plain key-value
// collaborator: get, set and remove of a serialized user record.
package blob

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Drivers for the bucket URLs supported by configuration.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

// sessionRepository stores one serialized entity.User per session key.
type sessionRepository struct {
	bucket *blob.Bucket
	prefix string
	logger *slog.Logger
}

// SessionRepositoryParams holds dependencies for the session store, injected by Fx.
type SessionRepositoryParams struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewSessionRepository opens the configured bucket and returns the session store.
func NewSessionRepository(params SessionRepositoryParams) (repository.SessionRepository, error) {
	bucket, err := blob.OpenBucket(params.Ctx, params.Config.Session.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open session bucket %s", params.Config.Session.BucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	params.Logger.Info("Session store ready",
		slog.String("bucket", params.Config.Session.BucketURL),
	)

	return &sessionRepository{
		bucket: bucket,
		prefix: params.Config.Session.KeyPrefix,
		logger: params.Logger,
	}, nil
}

// Find loads the user record stored for the session.
// A missing record means "logged out" and returns (nil, nil).
func (r *sessionRepository) Find(ctx context.Context, sessionID string) (*entity.User, error) {
	data, err := r.bucket.ReadAll(ctx, r.key(sessionID))
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, nil
		}

		return nil, errors.Wrap(err, "read session record")
	}

	var user entity.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, errors.Wrap(err, "decode session record")
	}

	return &user, nil
}

// Store writes the user record for the session, replacing any previous one.
func (r *sessionRepository) Store(ctx context.Context, sessionID string, user *entity.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return errors.Wrap(err, "encode session record")
	}

	if err := r.bucket.WriteAll(ctx, r.key(sessionID), data, nil); err != nil {
		return errors.Wrap(err, "write session record")
	}

	return nil
}

// Remove deletes the stored record; removing an absent record is a no-op.
func (r *sessionRepository) Remove(ctx context.Context, sessionID string) error {
	err := r.bucket.Delete(ctx, r.key(sessionID))
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrap(err, "remove session record")
	}

	return nil
}

func (r *sessionRepository) key(sessionID string) string {
	return r.prefix + sessionID
}
