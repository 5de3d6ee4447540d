package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionHandler holds dependencies for identity/session handlers.
type SessionHandler struct {
	uc     usecase.IdentityUsecase
	logger *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(uc usecase.IdentityUsecase, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles POST /session/register.
func (h *SessionHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "User registered successfully")
}

// Login handles POST /session/login.
func (h *SessionHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// Logout handles DELETE /session.
func (h *SessionHandler) Logout(c echo.Context) error {
	sessionID, ok := c.Get(middleware.ContextKeySessionID).(string)
	if !ok || sessionID == "" {
		return response.Unauthorized(c, "UNAUTHORIZED", "No active session")
	}

	if err := h.uc.Logout(c.Request().Context(), sessionID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"}, "Logout successful")
}

// Current handles GET /session, reflecting the persisted session record.
// A valid token whose record was removed reads as logged out, not an error.
func (h *SessionHandler) Current(c echo.Context) error {
	sessionID, ok := c.Get(middleware.ContextKeySessionID).(string)
	if !ok || sessionID == "" {
		return response.Unauthorized(c, "UNAUTHORIZED", "No active session")
	}

	user, err := h.uc.CurrentUser(c.Request().Context(), sessionID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "")
}
