// Package router contains routing setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProductHandler *handler.ProductHandler
	CartHandler    *handler.CartHandler
	SessionHandler *handler.SessionHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	productHandler *handler.ProductHandler
	cartHandler    *handler.CartHandler
	sessionHandler *handler.SessionHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		productHandler: params.ProductHandler,
		cartHandler:    params.CartHandler,
		sessionHandler: params.SessionHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Catalog reads are public
	e.GET("/products", r.productHandler.List)
	e.GET("/products/:id", r.productHandler.Get)

	// Catalog mutations require authentication and the "admin" role
	adminGroup := e.Group("/products")
	adminGroup.Use(r.authMiddleware.Authenticate)                  // First, check if logged in
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin)) // Then, check for the role
	{
		adminGroup.POST("", r.productHandler.Create)
		adminGroup.PATCH("/:id", r.productHandler.Update)
		adminGroup.DELETE("/:id", r.productHandler.Delete)
	}

	// Cart routes are scoped by the cart cookie; no login required to shop
	cartGroup := e.Group("/cart")
	{
		cartGroup.GET("", r.cartHandler.Get)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PATCH("/items/:productID", r.cartHandler.UpdateItem)
		cartGroup.DELETE("/items/:productID", r.cartHandler.RemoveItem)
	}

	// Checkout requires an active session
	e.POST("/cart/checkout", r.cartHandler.Checkout, r.authMiddleware.Authenticate)

	// Session routes
	sessionGroup := e.Group("/session")
	{
		sessionGroup.POST("/register", r.sessionHandler.Register)
		sessionGroup.POST("/login", r.sessionHandler.Login)
		sessionGroup.GET("", r.sessionHandler.Current, r.authMiddleware.Authenticate)
		sessionGroup.DELETE("", r.sessionHandler.Logout, r.authMiddleware.Authenticate)
	}
}
