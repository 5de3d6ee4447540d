package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductPatch_Apply_PartialMerge(t *testing.T) {
	product := Product{
		ID:          "p1",
		Name:        "Coffee Jelly",
		Description: "Specialty jelly",
		Price:       120,
		Image:       "/images/coffee-jelly.png",
		Category:    CategorySpecialty,
		Featured:    true,
	}

	newPrice := 150.0
	ProductPatch{Price: &newPrice}.Apply(&product)

	assert.InDelta(t, 150.0, product.Price, 0.001)
	// Everything else is untouched.
	assert.Equal(t, "p1", product.ID)
	assert.Equal(t, "Coffee Jelly", product.Name)
	assert.Equal(t, "Specialty jelly", product.Description)
	assert.Equal(t, CategorySpecialty, product.Category)
	assert.True(t, product.Featured)
}

func TestProductPatch_Apply_EmptyPatchIsNoop(t *testing.T) {
	product := Product{ID: "p1", Name: "Hot Brew", Price: 90, Category: CategoryCoffee}
	original := product

	ProductPatch{}.Apply(&product)

	assert.Equal(t, original, product)
}

func TestCategory_IsValid(t *testing.T) {
	assert.True(t, CategorySpecialty.IsValid())
	assert.True(t, CategoryCoffee.IsValid())
	assert.True(t, CategoryTea.IsValid())
	assert.False(t, Category("smoothie").IsValid())
	assert.False(t, Category("").IsValid())
}

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleUser.IsValid())
	assert.True(t, RoleAdmin.IsValid())
	assert.False(t, Role("merchant").IsValid())
}

func TestUser_IsAdmin(t *testing.T) {
	admin := &User{Role: RoleAdmin}
	user := &User{Role: RoleUser}
	var nobody *User

	assert.True(t, admin.IsAdmin())
	assert.False(t, user.IsAdmin())
	assert.False(t, nobody.IsAdmin())
}
