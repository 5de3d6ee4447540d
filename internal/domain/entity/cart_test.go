package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProduct(id string, price float64) Product {
	return Product{
		ID:       id,
		Name:     "Product " + id,
		Price:    price,
		Category: CategoryCoffee,
	}
}

func TestCart_Add_MergesQuantities(t *testing.T) {
	cart := NewCart("cart-1")
	product := testProduct("p1", 120)

	cart.Add(product, 2)
	cart.Add(product, 3)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, 5, cart.TotalItems())
}

func TestCart_Add_ClampsNonPositiveQuantity(t *testing.T) {
	cart := NewCart("cart-1")

	cart.Add(testProduct("p1", 100), 0)
	cart.Add(testProduct("p2", 100), -4)

	require.Len(t, cart.Items, 2)
	assert.Equal(t, 1, cart.Items[0].Quantity)
	assert.Equal(t, 1, cart.Items[1].Quantity)
}

func TestCart_Add_PreservesInsertionOrder(t *testing.T) {
	cart := NewCart("cart-1")

	cart.Add(testProduct("p1", 100), 1)
	cart.Add(testProduct("p2", 100), 1)
	cart.Add(testProduct("p1", 100), 1)

	require.Len(t, cart.Items, 2)
	assert.Equal(t, "p1", cart.Items[0].Product.ID)
	assert.Equal(t, "p2", cart.Items[1].Product.ID)
}

func TestCart_UpdateQuantity_ZeroRemovesItem(t *testing.T) {
	cart := NewCart("cart-1")
	cart.Add(testProduct("p1", 100), 2)
	cart.Add(testProduct("p2", 100), 1)

	cart.UpdateQuantity("p1", 0)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, "p2", cart.Items[0].Product.ID)
	assert.Equal(t, 1, cart.TotalItems())
}

func TestCart_UpdateQuantity_UnknownProductIsNoop(t *testing.T) {
	cart := NewCart("cart-1")
	cart.Add(testProduct("p1", 100), 2)

	cart.UpdateQuantity("missing", 7)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestCart_Remove(t *testing.T) {
	cart := NewCart("cart-1")
	cart.Add(testProduct("p1", 100), 2)

	cart.Remove("p1")
	assert.Empty(t, cart.Items)

	// Removing again is a no-op.
	cart.Remove("p1")
	assert.Empty(t, cart.Items)
}

func TestCart_TotalPrice(t *testing.T) {
	cart := NewCart("cart-1")
	cart.Add(testProduct("p1", 120), 2)
	cart.Add(testProduct("p2", 90), 1)

	assert.InDelta(t, 330.0, cart.TotalPrice(), 0.001)
	assert.Equal(t, 3, cart.TotalItems())
}

func TestCart_SnapshotSemantics(t *testing.T) {
	cart := NewCart("cart-1")
	product := testProduct("p1", 120)
	cart.Add(product, 1)

	// Mutating the caller's copy after adding must not affect the cart.
	product.Price = 999

	assert.InDelta(t, 120.0, cart.TotalPrice(), 0.001)
}

func TestCart_Clear(t *testing.T) {
	cart := NewCart("cart-1")
	cart.Add(testProduct("p1", 100), 2)

	cart.Clear()

	assert.Empty(t, cart.Items)
	assert.Equal(t, 0, cart.TotalItems())
	assert.InDelta(t, 0.0, cart.TotalPrice(), 0.001)
}
