// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Product represents a single item in the storefront catalog.
type Product struct {
	ID          string   `json:"id"`          // Unique identifier, assigned by the repository on creation.
	Name        string   `json:"name"`        // Display name of the product.
	Description string   `json:"description"` // Short marketing description.
	Price       float64  `json:"price"`       // Unit price, non-negative.
	Image       string   `json:"image"`       // Image reference (path or URI) used by the presentation layer.
	Category    Category `json:"category"`    // Catalog category the product belongs to.
	Featured    bool     `json:"featured"`    // Marks the product for promotional display.
}

// ProductPatch describes a partial update to a product.
// Nil fields are left unchanged; the identifier can never be patched.
type ProductPatch struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price"`
	Image       *string   `json:"image"`
	Category    *Category `json:"category"`
	Featured    *bool     `json:"featured"`
}

// Apply merges the patch over the product, field by field.
func (p ProductPatch) Apply(product *Product) {
	if p.Name != nil {
		product.Name = *p.Name
	}
	if p.Description != nil {
		product.Description = *p.Description
	}
	if p.Price != nil {
		product.Price = *p.Price
	}
	if p.Image != nil {
		product.Image = *p.Image
	}
	if p.Category != nil {
		product.Category = *p.Category
	}
	if p.Featured != nil {
		product.Featured = *p.Featured
	}
}
