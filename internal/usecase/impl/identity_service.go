package impl

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// identityService implements the IdentityUsecase interface.
type identityService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	hasher      service.PasswordHasher
	tokenSvc    service.TokenService
	cfg         *config.Config
	logger      *slog.Logger
}

// IdentityServiceParams holds dependencies for identityService, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	SessionRepo repository.SessionRepository
	Hasher      service.PasswordHasher
	TokenSvc    service.TokenService
	Config      *config.Config
	Logger      *slog.Logger
}

// NewIdentityService is the constructor for identityService.
func NewIdentityService(params IdentityServiceParams) usecase.IdentityUsecase {
	return &identityService{
		userRepo:    params.UserRepo,
		sessionRepo: params.SessionRepo,
		hasher:      params.Hasher,
		tokenSvc:    params.TokenSvc,
		cfg:         params.Config,
		logger:      params.Logger,
	}
}

// Register creates a user-role account and immediately opens a session for it.
func (srv *identityService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.SessionOutput, error) {
	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	user := entity.User{
		ID:    uuid.NewString(),
		Name:  input.Name,
		Email: input.Email,
		Role:  entity.RoleUser,
	}

	err = srv.userRepo.Create(ctx, repository.Credentials{User: user, PasswordHash: hash})
	if errors.Is(err, repository.ErrEmailTaken) {
		return nil, domainerrors.ErrEmailTaken
	}
	if err != nil {
		return nil, errors.Wrap(err, "create account")
	}

	srv.logger.Info("Account registered", slog.String("user_id", user.ID))

	return srv.openSession(ctx, &user)
}

// Login verifies credentials against the account repository and opens a
// session. Unknown accounts and wrong passwords are indistinguishable to the
// caller; both reject with invalid credentials.
func (srv *identityService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.SessionOutput, error) {
	creds, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "find account")
	}

	if !srv.hasher.Check(input.Password, creds.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	user := creds.User
	srv.logger.Info("Login succeeded",
		slog.String("user_id", user.ID),
		slog.String("role", user.Role.String()),
	)

	return srv.openSession(ctx, &user)
}

// Logout removes the persisted session record. Logging out an already absent
// session is a no-op.
func (srv *identityService) Logout(ctx context.Context, sessionID string) error {
	if err := srv.sessionRepo.Remove(ctx, sessionID); err != nil {
		return domainerrors.ErrSessionStorage.WrapMessage(err.Error())
	}

	return nil
}

// CurrentUser reflects the persisted session record; (nil, nil) when logged out.
func (srv *identityService) CurrentUser(ctx context.Context, sessionID string) (*entity.User, error) {
	user, err := srv.sessionRepo.Find(ctx, sessionID)
	if err != nil {
		return nil, domainerrors.ErrSessionStorage.WrapMessage(err.Error())
	}

	return user, nil
}

// BootstrapAdmin ensures the configured administrative account exists.
// An already registered admin email is fine; anything else is surfaced.
func (srv *identityService) BootstrapAdmin(ctx context.Context) error {
	if srv.cfg.Auth == nil || srv.cfg.Auth.AdminEmail == "" || srv.cfg.Auth.AdminPassword == "" {
		srv.logger.Warn("No admin account configured, catalog administration is unavailable")

		return nil
	}

	hash, err := srv.hasher.Hash(srv.cfg.Auth.AdminPassword)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	admin := entity.User{
		ID:    uuid.NewString(),
		Name:  srv.cfg.Auth.AdminName,
		Email: srv.cfg.Auth.AdminEmail,
		Role:  entity.RoleAdmin,
	}

	err = srv.userRepo.Create(ctx, repository.Credentials{User: admin, PasswordHash: hash})
	if errors.Is(err, repository.ErrEmailTaken) {
		existing, findErr := srv.userRepo.FindByEmail(ctx, admin.Email)
		if findErr == nil && !existing.User.IsAdmin() {
			srv.logger.Warn("Admin email is registered as a regular account, catalog administration is unavailable",
				slog.String("email", admin.Email),
			)
		}

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "bootstrap admin account")
	}

	srv.logger.Info("Admin account bootstrapped", slog.String("email", admin.Email))

	return nil
}

// openSession persists the user record under a fresh session key and issues
// the matching token. A session is only open once both halves exist: a
// persistence fault surfaces to the caller, and a token fault discards the
// record again so no orphaned session is left behind.
func (srv *identityService) openSession(ctx context.Context, user *entity.User) (*usecase.SessionOutput, error) {
	sessionID := uuid.NewString()

	if err := srv.sessionRepo.Store(ctx, sessionID, user); err != nil {
		return nil, domainerrors.ErrSessionStorage.WrapMessage(err.Error())
	}

	token, err := srv.tokenSvc.Generate(user.ID, sessionID, user.Role)
	if err != nil {
		if removeErr := srv.sessionRepo.Remove(ctx, sessionID); removeErr != nil {
			srv.logger.Warn("Failed to discard session record",
				slog.String("session_id", sessionID),
				slog.Any("error", removeErr),
			)
		}

		return nil, errors.Wrap(err, "issue session token")
	}

	return &usecase.SessionOutput{
		Token:     token,
		User:      user,
		ExpiresAt: time.Now().Add(srv.tokenSvc.TTL()),
	}, nil
}
