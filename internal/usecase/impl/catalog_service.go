// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo repository.ProductRepository
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: params.ProductRepo,
		publisher:   params.Publisher,
		logger:      params.Logger,
	}
}

// ListProducts returns the catalog, optionally filtered by category or
// featured flag. The featured filter matches the flag's value either way, so
// featured=false selects the non-featured products. An unknown category is
// not an error; it matches nothing.
func (srv *catalogService) ListProducts(ctx context.Context, input usecase.ListProductsInput) ([]entity.Product, error) {
	switch {
	case input.Category != nil:
		products, err := srv.productRepo.FindByCategory(ctx, *input.Category)
		if err != nil {
			return nil, errors.Wrap(err, "list products by category")
		}
		if input.Featured != nil {
			products = filterFeatured(products, *input.Featured)
		}

		return products, nil

	case input.Featured != nil && *input.Featured:
		products, err := srv.productRepo.FindFeatured(ctx)

		return products, errors.Wrap(err, "list featured products")

	case input.Featured != nil:
		products, err := srv.productRepo.List(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "list products")
		}

		return filterFeatured(products, *input.Featured), nil

	default:
		products, err := srv.productRepo.List(ctx)

		return products, errors.Wrap(err, "list products")
	}
}

// GetProduct returns a single product by identifier.
func (srv *catalogService) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "get product")
	}

	return product, nil
}

// AddProduct stores a new product and notifies subscribers.
func (srv *catalogService) AddProduct(ctx context.Context, input usecase.AddProductInput) (*entity.Product, error) {
	if !input.Category.IsValid() {
		return nil, domainerrors.ErrInvalidCategory.WithDetails("category must be one of: specialty, coffee, tea")
	}
	if input.Price < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("price must be non-negative")
	}

	product, err := srv.productRepo.Create(ctx, entity.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Image:       input.Image,
		Category:    input.Category,
		Featured:    input.Featured,
	})
	if err != nil {
		return nil, errors.Wrap(err, "add product")
	}

	srv.publish(ctx, service.CatalogEventCreated, product)

	return product, nil
}

// UpdateProduct merges the supplied fields over the existing record.
func (srv *catalogService) UpdateProduct(ctx context.Context, id string, input usecase.UpdateProductInput) (*entity.Product, error) {
	if input.Category != nil && !input.Category.IsValid() {
		return nil, domainerrors.ErrInvalidCategory.WithDetails("category must be one of: specialty, coffee, tea")
	}
	if input.Price != nil && *input.Price < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("price must be non-negative")
	}

	product, err := srv.productRepo.Update(ctx, id, entity.ProductPatch{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Image:       input.Image,
		Category:    input.Category,
		Featured:    input.Featured,
	})
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "update product")
	}

	srv.publish(ctx, service.CatalogEventUpdated, product)

	return product, nil
}

// DeleteProduct removes a product. Deleting an identifier that no longer
// exists reports not-found, preserving delete idempotence for callers that
// inspect the outcome.
func (srv *catalogService) DeleteProduct(ctx context.Context, id string) error {
	removed, err := srv.productRepo.Delete(ctx, id)
	if err != nil {
		return errors.Wrap(err, "delete product")
	}
	if !removed {
		return domainerrors.ErrProductNotFound
	}

	srv.publish(ctx, service.CatalogEventDeleted, &entity.Product{ID: id})

	return nil
}

// publish sends a catalog change notification. Publishing is best-effort:
// a failed notification must never roll back or fail the catalog mutation.
func (srv *catalogService) publish(ctx context.Context, eventType string, product *entity.Product) {
	event := &service.CatalogEvent{
		Type:       eventType,
		ProductID:  product.ID,
		Name:       product.Name,
		Category:   product.Category.String(),
		OccurredAt: time.Now().UTC(),
	}

	if err := srv.publisher.PublishCatalogEvent(ctx, event); err != nil {
		srv.logger.Warn("Failed to publish catalog event",
			slog.String("type", eventType),
			slog.String("product_id", product.ID),
			slog.Any("error", err),
		)
	}
}

func filterFeatured(products []entity.Product, featured bool) []entity.Product {
	var out []entity.Product
	for _, product := range products {
		if product.Featured == featured {
			out = append(out, product)
		}
	}

	return out
}
