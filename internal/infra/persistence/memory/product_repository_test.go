package memory

import (
	"context"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEmptyProductRepo() repository.ProductRepository {
	return NewProductRepository(&config.Config{})
}

func newSeededProductRepo() repository.ProductRepository {
	cfg := &config.Config{}
	cfg.Catalog.Seed = true

	return NewProductRepository(cfg)
}

func TestProductRepository_CreateAssignsID(t *testing.T) {
	repo := newEmptyProductRepo()
	ctx := context.Background()

	created, err := repo.Create(ctx, entity.Product{
		Name:     "Matcha Latte",
		Price:    130,
		Category: entity.CategoryTea,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, *created, *found)
}

func TestProductRepository_FindByID_NotFound(t *testing.T) {
	repo := newEmptyProductRepo()

	_, err := repo.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestProductRepository_List_PreservesInsertionOrder(t *testing.T) {
	repo := newEmptyProductRepo()
	ctx := context.Background()

	first, err := repo.Create(ctx, entity.Product{Name: "A", Category: entity.CategoryCoffee})
	require.NoError(t, err)
	second, err := repo.Create(ctx, entity.Product{Name: "B", Category: entity.CategoryTea})
	require.NoError(t, err)

	products, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, first.ID, products[0].ID)
	assert.Equal(t, second.ID, products[1].ID)
}

func TestProductRepository_ListReturnsCopies(t *testing.T) {
	repo := newSeededProductRepo()
	ctx := context.Background()

	products, err := repo.List(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, products)

	// Mutating the returned slice must not leak into the repository.
	products[0].Name = "Tampered"

	reread, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, "Tampered", reread[0].Name)
}

func TestProductRepository_FindByCategory(t *testing.T) {
	repo := newSeededProductRepo()
	ctx := context.Background()

	coffee, err := repo.FindByCategory(ctx, entity.CategoryCoffee)
	require.NoError(t, err)
	require.NotEmpty(t, coffee)
	for _, product := range coffee {
		assert.Equal(t, entity.CategoryCoffee, product.Category)
	}

	// Seed order is preserved: Coffee Moca before Hot Brew before Vanilla Coffee.
	assert.Equal(t, "Coffee Moca", coffee[0].Name)
	assert.Equal(t, "Hot Brew", coffee[1].Name)
	assert.Equal(t, "Vanilla Coffee", coffee[2].Name)
}

func TestProductRepository_FindByCategory_UnknownYieldsEmpty(t *testing.T) {
	repo := newSeededProductRepo()

	products, err := repo.FindByCategory(context.Background(), entity.Category("smoothie"))
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestProductRepository_FindFeatured(t *testing.T) {
	repo := newSeededProductRepo()

	featured, err := repo.FindFeatured(context.Background())
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, "Coffee Jelly", featured[0].Name)
}

func TestProductRepository_Update_MergesOnlySuppliedFields(t *testing.T) {
	repo := newSeededProductRepo()
	ctx := context.Background()

	before, err := repo.FindByID(ctx, "1")
	require.NoError(t, err)

	newPrice := 150.0
	updated, err := repo.Update(ctx, "1", entity.ProductPatch{Price: &newPrice})
	require.NoError(t, err)

	assert.InDelta(t, 150.0, updated.Price, 0.001)
	assert.Equal(t, before.ID, updated.ID)
	assert.Equal(t, before.Name, updated.Name)
	assert.Equal(t, before.Description, updated.Description)
	assert.Equal(t, before.Category, updated.Category)
	assert.Equal(t, before.Featured, updated.Featured)
}

func TestProductRepository_Update_NotFound(t *testing.T) {
	repo := newEmptyProductRepo()

	name := "Renamed"
	_, err := repo.Update(context.Background(), "missing", entity.ProductPatch{Name: &name})
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestProductRepository_Delete_Idempotence(t *testing.T) {
	repo := newSeededProductRepo()
	ctx := context.Background()

	removed, err := repo.Delete(ctx, "1")
	require.NoError(t, err)
	assert.True(t, removed)

	_, err = repo.FindByID(ctx, "1")
	assert.ErrorIs(t, err, repository.ErrProductNotFound)

	removed, err = repo.Delete(ctx, "1")
	require.NoError(t, err)
	assert.False(t, removed)
}
