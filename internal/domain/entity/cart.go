// Package entity contains the core business objects of the project.
package entity

// CartItem pairs a product snapshot with a purchase quantity.
//
// The Product value is the snapshot captured when the item was added: later
// catalog changes (price edits, deletion) do not retroactively affect items
// already in the cart.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"` // Always >= 1; a quantity of 0 removes the item.
}

// Cart is the session-scoped collection of chosen products and quantities.
// It holds at most one CartItem per product identifier, in insertion order.
type Cart struct {
	ID    string     `json:"id"`
	Items []CartItem `json:"items"`
}

// NewCart creates an empty cart with the given identifier.
func NewCart(id string) *Cart {
	return &Cart{ID: id}
}

// Add merges the given quantity into the item for product.ID, appending a new
// item when none exists. Non-positive quantities are clamped to 1; rejecting
// them is the caller's responsibility.
func (c *Cart) Add(product Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	for i := range c.Items {
		if c.Items[i].Product.ID == product.ID {
			c.Items[i].Quantity += quantity

			return
		}
	}

	c.Items = append(c.Items, CartItem{Product: product, Quantity: quantity})
}

// UpdateQuantity sets the quantity for the item matching productID.
// A quantity of zero or less removes the item entirely. Unknown product
// identifiers are a no-op, not an error.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	for i := range c.Items {
		if c.Items[i].Product.ID != productID {
			continue
		}

		if quantity <= 0 {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)

			return
		}

		c.Items[i].Quantity = quantity

		return
	}
}

// Remove deletes the item matching productID if present; no-op otherwise.
func (c *Cart) Remove(productID string) {
	c.UpdateQuantity(productID, 0)
}

// TotalItems returns the sum of all quantities in the cart.
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}

	return total
}

// TotalPrice returns the sum of snapshot price times quantity over all items.
func (c *Cart) TotalPrice() float64 {
	total := 0.0
	for _, item := range c.Items {
		total += item.Product.Price * float64(item.Quantity)
	}

	return total
}

// Clear removes every item from the cart.
func (c *Cart) Clear() {
	c.Items = nil
}
