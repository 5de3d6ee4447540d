// Package entity contains the core business objects of the project.
package entity

// Category represents the catalog category a product belongs to.
type Category string

const (
	// CategorySpecialty indicates a specialty drink.
	CategorySpecialty Category = "specialty"
	// CategoryCoffee indicates a coffee drink.
	CategoryCoffee Category = "coffee"
	// CategoryTea indicates a tea drink.
	CategoryTea Category = "tea"
)

// String returns the string representation of the Category.
func (c Category) String() string {
	return string(c)
}

// IsValid checks if the Category is a valid value.
func (c Category) IsValid() bool {
	switch c {
	case CategorySpecialty, CategoryCoffee, CategoryTea:
		return true
	default:
		return false
	}
}
