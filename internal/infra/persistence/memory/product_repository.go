// Package memory provides in-process implementations of the repository
// contracts. The storefront's catalog and carts live entirely in memory by
// design; a single lock per repository is sufficient at expected load.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

// productRepository owns the catalog sequence. All reads return copies so no
// caller ever holds a mutable reference into the repository's state.
type productRepository struct {
	mu       sync.RWMutex
	products []entity.Product
}

// NewProductRepository creates the catalog repository, optionally seeded with
// the built-in demo catalog.
func NewProductRepository(cfg *config.Config) repository.ProductRepository {
	repo := &productRepository{}
	if cfg.Catalog.Seed {
		repo.products = append(repo.products, seedProducts()...)
	}

	return repo
}

// List returns all products in stable insertion order.
func (r *productRepository) List(_ context.Context) ([]entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.Product, len(r.products))
	copy(out, r.products)

	return out, nil
}

// FindByID retrieves a single product by its identifier.
func (r *productRepository) FindByID(_ context.Context, id string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.products {
		if r.products[i].ID == id {
			product := r.products[i]

			return &product, nil
		}
	}

	return nil, repository.ErrProductNotFound
}

// FindFeatured returns products flagged for promotional display.
func (r *productRepository) FindFeatured(_ context.Context) ([]entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []entity.Product
	for _, product := range r.products {
		if product.Featured {
			out = append(out, product)
		}
	}

	return out, nil
}

// FindByCategory returns products matching the category exactly.
// Unknown categories yield an empty slice, not an error.
func (r *productRepository) FindByCategory(_ context.Context, category entity.Category) ([]entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []entity.Product
	for _, product := range r.products {
		if product.Category == category {
			out = append(out, product)
		}
	}

	return out, nil
}

// Create assigns a fresh identifier and appends the product to the sequence.
func (r *productRepository) Create(_ context.Context, product entity.Product) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product.ID = uuid.NewString()
	r.products = append(r.products, product)

	return &product, nil
}

// Update merges the patch over the matching record. Unknown identifiers
// return ErrProductNotFound and mutate nothing.
func (r *productRepository) Update(_ context.Context, id string, patch entity.ProductPatch) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID != id {
			continue
		}

		patch.Apply(&r.products[i])
		updated := r.products[i]

		return &updated, nil
	}

	return nil, repository.ErrProductNotFound
}

// Delete removes the matching record and reports whether a removal occurred.
func (r *productRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)

			return true, nil
		}
	}

	return false, nil
}
