// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// AddCartItemInput defines the data required to put a product in the cart.
type AddCartItemInput struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gte=1"`
}

// UpdateCartItemInput sets an item's quantity directly.
// Zero (or less) removes the item; that is the documented contract, not an error.
type UpdateCartItemInput struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

// CartOutput is the cart view returned to the delivery layer, with the
// derived totals precomputed.
type CartOutput struct {
	Items      []entity.CartItem `json:"items"`
	TotalItems int               `json:"totalItems"`
	TotalPrice float64           `json:"totalPrice"`
}

// CartUsecase defines the interface for cart business operations. Every
// operation is scoped to a single cart identifier; carts never interact.
type CartUsecase interface {
	GetCart(ctx context.Context, cartID string) (*CartOutput, error)
	AddItem(ctx context.Context, cartID string, input AddCartItemInput) (*CartOutput, error)
	UpdateItem(ctx context.Context, cartID, productID string, input UpdateCartItemInput) (*CartOutput, error)
	RemoveItem(ctx context.Context, cartID, productID string) (*CartOutput, error)

	// Checkout turns the cart into an order for the given user and clears it.
	Checkout(ctx context.Context, cartID, userID string) (*entity.Order, error)
}
