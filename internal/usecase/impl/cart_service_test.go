package impl

import (
	"context"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/memory"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCartService() (usecase.CartUsecase, repository.ProductRepository) {
	cfg := &config.Config{}
	cfg.Catalog.Seed = true
	productRepo := memory.NewProductRepository(cfg)

	svc := NewCartService(CartServiceParams{
		CartRepo:    memory.NewCartRepository(),
		ProductRepo: productRepo,
		Logger:      testLogger(),
	})

	return svc, productRepo
}

func TestCartService_AddItem_MergesQuantities(t *testing.T) {
	svc, _ := newTestCartService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "cart-1", usecase.AddCartItemInput{ProductID: "1", Quantity: 2})
	require.NoError(t, err)

	cart, err := svc.AddItem(ctx, "cart-1", usecase.AddCartItemInput{ProductID: "1", Quantity: 3})
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, 5, cart.TotalItems)
}

func TestCartService_AddItem_Totals(t *testing.T) {
	svc, _ := newTestCartService()
	ctx := context.Background()

	// Coffee Jelly at 120, Hot Brew at 90.
	_, err := svc.AddItem(ctx, "cart-1", usecase.AddCartItemInput{ProductID: "1", Quantity: 2})
	require.NoError(t, err)

	cart, err := svc.AddItem(ctx, "cart-1", usecase.AddCartItemInput{ProductID: "4", Quantity: 1})
	require.NoError(t, err)

	assert.Equal(t, 3, cart.TotalItems)
	assert.InDelta(t, 330.0, cart.TotalPrice, 1e-9)
}

func TestCartService_AddItem_UnknownProduct(t *testing.T) {
	svc, _ := newTestCartService()

	_, err := svc.AddItem(context.Background(), "cart-1", usecase.AddCartItemInput{ProductID: "missing", Quantity: 1})
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCartService_AddItem_RejectsNonPositiveQuantity(t *testing.T) {
	svc, _ := newTestCartService()

	_, err := svc.AddItem(context.Background(), "cart-1", usecase.AddCartItemInput{ProductID: "1", Quantity: 0})
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestCartService_ItemsKeepPriceSnapshot(t *testing.T) {
	svc, productRepo := newTestCartService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "cart-1", usecase.AddCartItemInput{ProductID: "1", Quantity: 1})
	require.NoError(t, err)

	newPrice := 999.0
	_, err = productRepo.Update(ctx, "1", entity.ProductPatch{Price: &newPrice})
	require.NoError(t, err)

	cart, err := svc.GetCart(ctx, "cart-1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.InDelta(t, 120.0, cart.Items[0].Product.Price, 1e-9)
}

func TestCartService_UpdateItem(t *testing.T) {
	svc, _ := newTestCartService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "cart-1", usecase.AddCartItemInput{ProductID: "1", Quantity: 2})
	require.NoError(t, err)

	cart, err := svc.UpdateItem(ctx, "cart-1", "1", usecase.UpdateCartItemInput{Quantity: 4})
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 4, cart.Items[0].Quantity)

	// Zero removes the item.
	cart, err = svc.UpdateItem(ctx, "cart-1", "1", usecase.UpdateCartItemInput{Quantity: 0})
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	// Unknown product identifier is a no-op.
	cart, err = svc.UpdateItem(ctx, "cart-1", "missing", usecase.UpdateCartItemInput{Quantity: 3})
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCartService_RemoveItem(t *testing.T) {
	svc, _ := newTestCartService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "cart-1", usecase.AddCartItemInput{ProductID: "1", Quantity: 1})
	require.NoError(t, err)

	cart, err := svc.RemoveItem(ctx, "cart-1", "1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	// Removing again is a no-op.
	cart, err = svc.RemoveItem(ctx, "cart-1", "1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCartService_Checkout(t *testing.T) {
	svc, _ := newTestCartService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "cart-1", usecase.AddCartItemInput{ProductID: "1", Quantity: 2})
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "cart-1", usecase.AddCartItemInput{ProductID: "4", Quantity: 1})
	require.NoError(t, err)

	order, err := svc.Checkout(ctx, "cart-1", "user-1")
	require.NoError(t, err)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, "user-1", order.UserID)
	assert.Len(t, order.Items, 2)
	assert.InDelta(t, 330.0, order.Total, 1e-9)
	assert.False(t, order.PlacedAt.IsZero())

	// Checkout clears the cart, so a second checkout finds it empty.
	_, err = svc.Checkout(ctx, "cart-1", "user-1")
	assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)
}

func TestCartService_Checkout_EmptyCart(t *testing.T) {
	svc, _ := newTestCartService()

	_, err := svc.Checkout(context.Background(), "cart-1", "user-1")
	assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)
}
