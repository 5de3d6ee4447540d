// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository is the single source of truth for the catalog within one
// running process. Implementations own the product sequence exclusively and
// must serialize mutating operations; returned values are copies, never
// references into internal state.
type ProductRepository interface {
	// List returns all products in stable insertion order.
	List(ctx context.Context) ([]entity.Product, error)

	// FindByID retrieves a single product by its identifier.
	// Returns ErrProductNotFound when no product has that identifier.
	FindByID(ctx context.Context, id string) (*entity.Product, error)

	// FindFeatured returns products flagged for promotional display,
	// preserving insertion order.
	FindFeatured(ctx context.Context) ([]entity.Product, error)

	// FindByCategory returns products whose category matches exactly,
	// preserving insertion order. Unknown categories yield an empty slice.
	FindByCategory(ctx context.Context, category entity.Category) ([]entity.Product, error)

	// Create assigns a fresh unique identifier, appends the product to the
	// end of the sequence and returns the stored record.
	Create(ctx context.Context, product entity.Product) (*entity.Product, error)

	// Update merges the patch over the record matching id and returns the
	// updated record. Returns ErrProductNotFound and performs no mutation
	// when the identifier is unknown. The identifier itself is immutable.
	Update(ctx context.Context, id string, patch entity.ProductPatch) (*entity.Product, error)

	// Delete removes the record matching id and reports whether a removal
	// occurred. Deleting an unknown identifier is not an error.
	Delete(ctx context.Context, id string) (bool, error)
}
