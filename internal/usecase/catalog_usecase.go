// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// --- Input DTOs ---

// ListProductsInput defines optional catalog filters.
// Nil fields mean "no filter".
type ListProductsInput struct {
	Category *entity.Category
	Featured *bool
}

// AddProductInput defines the data required to add a catalog product.
// The identifier is assigned by the repository.
type AddProductInput struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description" validate:"required"`
	Price       float64         `json:"price" validate:"gte=0"`
	Image       string          `json:"image"`
	Category    entity.Category `json:"category" validate:"required"`
	Featured    bool            `json:"featured"`
}

// UpdateProductInput defines a partial update; nil fields are untouched.
type UpdateProductInput struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *float64         `json:"price" validate:"omitempty,gte=0"`
	Image       *string          `json:"image"`
	Category    *entity.Category `json:"category"`
	Featured    *bool            `json:"featured"`
}

// CatalogUsecase defines the interface for catalog business operations.
// This is the contract that the delivery layer (API handlers) depends on.
type CatalogUsecase interface {
	ListProducts(ctx context.Context, input ListProductsInput) ([]entity.Product, error)
	GetProduct(ctx context.Context, id string) (*entity.Product, error)
	AddProduct(ctx context.Context, input AddProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id string, input UpdateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}
