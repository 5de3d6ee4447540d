package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// cartCookieName scopes a cart to one browser session.
const cartCookieName = "cart_id"

// CartHandler holds dependencies for cart-related handlers.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		uc:     uc,
		logger: logger,
	}
}

// Get handles GET /cart.
func (h *CartHandler) Get(c echo.Context) error {
	cart, err := h.uc.GetCart(c.Request().Context(), h.cartID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "")
}

// AddItem handles POST /cart/items.
func (h *CartHandler) AddItem(c echo.Context) error {
	var input usecase.AddCartItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}
	if input.Quantity == 0 {
		input.Quantity = 1 // default quantity, matching "add one to cart"
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	cart, err := h.uc.AddItem(c.Request().Context(), h.cartID(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Item added to cart")
}

// UpdateItem handles PATCH /cart/items/:productID.
// A quantity of zero removes the item.
func (h *CartHandler) UpdateItem(c echo.Context) error {
	var input usecase.UpdateCartItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	cart, err := h.uc.UpdateItem(c.Request().Context(), h.cartID(c), c.Param("productID"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Cart updated")
}

// RemoveItem handles DELETE /cart/items/:productID.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	cart, err := h.uc.RemoveItem(c.Request().Context(), h.cartID(c), c.Param("productID"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Item removed from cart")
}

// Checkout handles POST /cart/checkout. Requires an authenticated session.
func (h *CartHandler) Checkout(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextKeyUserID).(string)
	if !ok || userID == "" {
		return response.Unauthorized(c, "UNAUTHORIZED", "Checkout requires an active session")
	}

	order, err := h.uc.Checkout(c.Request().Context(), h.cartID(c), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order placed successfully")
}

// cartID returns the cart identifier for this browser session, minting a
// fresh one (and setting the cookie) on first contact.
func (h *CartHandler) cartID(c echo.Context) string {
	if cookie, err := c.Cookie(cartCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	id := uuid.NewString()
	c.SetCookie(&http.Cookie{
		Name:     cartCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return id
}
