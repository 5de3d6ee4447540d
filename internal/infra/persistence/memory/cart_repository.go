package memory

import (
	"context"
	"sync"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

// cartRepository keeps one cart per cart identifier. Only the lookup table is
// guarded; each cart is exclusively owned by its session's request context.
type cartRepository struct {
	mu    sync.Mutex
	carts map[string]*entity.Cart
}

// NewCartRepository creates the in-memory cart repository.
func NewCartRepository() repository.CartRepository {
	return &cartRepository{carts: make(map[string]*entity.Cart)}
}

// Load returns the cart for the identifier, creating an empty one when absent.
func (r *cartRepository) Load(_ context.Context, cartID string) (*entity.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cart, ok := r.carts[cartID]; ok {
		return cart, nil
	}

	cart := entity.NewCart(cartID)
	r.carts[cartID] = cart

	return cart, nil
}

// Save persists the cart under its identifier.
func (r *cartRepository) Save(_ context.Context, cart *entity.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.carts[cart.ID] = cart

	return nil
}

// Delete discards the cart for the identifier; no-op when absent.
func (r *cartRepository) Delete(_ context.Context, cartID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, cartID)

	return nil
}
