package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/infra/auth"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthMiddleware(t *testing.T) (*AuthMiddleware, service.TokenService) {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"
	cfg.Auth = &config.AuthConfig{SessionTTL: time.Hour}

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return NewAuthMiddleware(tokenSvc), tokenSvc
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func invokeChain(t *testing.T, chain echo.HandlerFunc, token string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/products", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, chain(c))

	return rec
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	m, _ := newTestAuthMiddleware(t)

	rec := invokeChain(t, m.Authenticate(okHandler), "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_RejectsBadToken(t *testing.T) {
	m, _ := newTestAuthMiddleware(t)

	rec := invokeChain(t, m.Authenticate(okHandler), "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_SetsIdentityContext(t *testing.T) {
	m, tokenSvc := newTestAuthMiddleware(t)

	token, err := tokenSvc.Generate("user-1", "session-1", entity.RoleUser)
	require.NoError(t, err)

	inspect := func(c echo.Context) error {
		assert.Equal(t, "user-1", c.Get(ContextKeyUserID))
		assert.Equal(t, "session-1", c.Get(ContextKeySessionID))
		assert.Equal(t, entity.RoleUser, c.Get(ContextKeyRole))

		return c.NoContent(http.StatusOK)
	}

	rec := invokeChain(t, m.Authenticate(inspect), token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_RequireRole_DeniesUserRoleToken(t *testing.T) {
	m, tokenSvc := newTestAuthMiddleware(t)

	token, err := tokenSvc.Generate("user-1", "session-1", entity.RoleUser)
	require.NoError(t, err)

	chain := m.Authenticate(m.RequireRole(entity.RoleAdmin)(okHandler))
	rec := invokeChain(t, chain, token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthMiddleware_RequireRole_AllowsAdminToken(t *testing.T) {
	m, tokenSvc := newTestAuthMiddleware(t)

	token, err := tokenSvc.Generate("admin-1", "session-1", entity.RoleAdmin)
	require.NoError(t, err)

	chain := m.Authenticate(m.RequireRole(entity.RoleAdmin)(okHandler))
	rec := invokeChain(t, chain, token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_RequireRole_DeniesWithoutIdentity(t *testing.T) {
	m, _ := newTestAuthMiddleware(t)

	// RequireRole without Authenticate in front: no role on the context.
	rec := invokeChain(t, m.RequireRole(entity.RoleAdmin)(okHandler), "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
