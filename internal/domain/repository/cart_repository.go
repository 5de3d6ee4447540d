// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// CartRepository tracks one cart per browser session. Carts never cross
// session boundaries, so implementations only need to guard the lookup table,
// not individual carts.
type CartRepository interface {
	// Load returns the cart for the given cart identifier, creating an empty
	// cart when none exists yet.
	Load(ctx context.Context, cartID string) (*entity.Cart, error)

	// Save persists the cart under its identifier.
	Save(ctx context.Context, cart *entity.Cart) error

	// Delete discards the cart for the given identifier; no-op when absent.
	Delete(ctx context.Context, cartID string) error
}
