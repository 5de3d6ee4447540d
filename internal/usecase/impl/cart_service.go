package impl

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
//
// Items carry the product snapshot captured at add-time: the cart does not
// re-query the catalog afterwards, so later price changes do not affect items
// already in a cart.
type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for cartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

// GetCart returns the cart view with derived totals.
func (srv *cartService) GetCart(ctx context.Context, cartID string) (*usecase.CartOutput, error) {
	cart, err := srv.cartRepo.Load(ctx, cartID)
	if err != nil {
		return nil, errors.Wrap(err, "load cart")
	}

	return cartOutput(cart), nil
}

// AddItem snapshots the referenced product and merges the quantity into the
// cart. Non-positive quantities are rejected as a caller error.
func (srv *cartService) AddItem(ctx context.Context, cartID string, input usecase.AddCartItemInput) (*usecase.CartOutput, error) {
	if input.Quantity < 1 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must be a positive integer")
	}

	product, err := srv.productRepo.FindByID(ctx, input.ProductID)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "find product for cart")
	}

	cart, err := srv.cartRepo.Load(ctx, cartID)
	if err != nil {
		return nil, errors.Wrap(err, "load cart")
	}

	cart.Add(*product, input.Quantity)
	if err := srv.cartRepo.Save(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "save cart")
	}

	return cartOutput(cart), nil
}

// UpdateItem sets an item's quantity directly; zero removes the item and an
// unknown product identifier is a no-op.
func (srv *cartService) UpdateItem(ctx context.Context, cartID, productID string, input usecase.UpdateCartItemInput) (*usecase.CartOutput, error) {
	cart, err := srv.cartRepo.Load(ctx, cartID)
	if err != nil {
		return nil, errors.Wrap(err, "load cart")
	}

	cart.UpdateQuantity(productID, input.Quantity)
	if err := srv.cartRepo.Save(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "save cart")
	}

	return cartOutput(cart), nil
}

// RemoveItem removes the matching item if present; no-op otherwise.
func (srv *cartService) RemoveItem(ctx context.Context, cartID, productID string) (*usecase.CartOutput, error) {
	cart, err := srv.cartRepo.Load(ctx, cartID)
	if err != nil {
		return nil, errors.Wrap(err, "load cart")
	}

	cart.Remove(productID)
	if err := srv.cartRepo.Save(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "save cart")
	}

	return cartOutput(cart), nil
}

// Checkout freezes the cart into an order for the authenticated user and
// clears the cart. Checking out an empty cart is a caller error.
func (srv *cartService) Checkout(ctx context.Context, cartID, userID string) (*entity.Order, error) {
	cart, err := srv.cartRepo.Load(ctx, cartID)
	if err != nil {
		return nil, errors.Wrap(err, "load cart")
	}

	if len(cart.Items) == 0 {
		return nil, domainerrors.ErrCartEmpty
	}

	items := make([]entity.CartItem, len(cart.Items))
	copy(items, cart.Items)

	order := &entity.Order{
		ID:       uuid.NewString(),
		UserID:   userID,
		Items:    items,
		Total:    cart.TotalPrice(),
		PlacedAt: time.Now().UTC(),
	}

	cart.Clear()
	if err := srv.cartRepo.Save(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "clear cart after checkout")
	}

	srv.logger.Info("Order placed",
		slog.String("order_id", order.ID),
		slog.String("user_id", userID),
		slog.Int("items", len(order.Items)),
	)

	return order, nil
}

func cartOutput(cart *entity.Cart) *usecase.CartOutput {
	items := make([]entity.CartItem, len(cart.Items))
	copy(items, cart.Items)

	return &usecase.CartOutput{
		Items:      items,
		TotalItems: cart.TotalItems(),
		TotalPrice: cart.TotalPrice(),
	}
}
