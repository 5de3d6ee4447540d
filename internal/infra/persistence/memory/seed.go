package memory

import "storefront/internal/domain/entity"

// seedProducts returns the built-in demo catalog, loaded when catalog.seed is
// enabled. Identifiers are fixed so the demo data is stable across restarts.
func seedProducts() []entity.Product {
	return []entity.Product{
		{
			ID:          "1",
			Name:        "Coffee Jelly",
			Description: "Our specialty coffee jelly with whipped cream topping",
			Price:       120,
			Image:       "/images/coffee-jelly.png",
			Category:    entity.CategorySpecialty,
			Featured:    true,
		},
		{
			ID:          "2",
			Name:        "Coffee Moca",
			Description: "Rich mocha coffee with whipped cream",
			Price:       110,
			Image:       "/images/coffee-moca.png",
			Category:    entity.CategoryCoffee,
		},
		{
			ID:          "3",
			Name:        "Cheesecake",
			Description: "Creamy cheesecake flavored drink",
			Price:       130,
			Image:       "/images/cheesecake.png",
			Category:    entity.CategorySpecialty,
		},
		{
			ID:          "4",
			Name:        "Hot Brew",
			Description: "Classic hot brewed coffee",
			Price:       90,
			Image:       "/images/hotbrew.png",
			Category:    entity.CategoryCoffee,
		},
		{
			ID:          "5",
			Name:        "Okinawa",
			Description: "Special Okinawa-style milk tea",
			Price:       125,
			Image:       "/images/okinawa.png",
			Category:    entity.CategoryTea,
		},
		{
			ID:          "6",
			Name:        "Cookies & Cream",
			Description: "Creamy drink with cookie crumbles",
			Price:       135,
			Image:       "/images/cookies-cream.png",
			Category:    entity.CategorySpecialty,
		},
		{
			ID:          "7",
			Name:        "Taro Cream",
			Description: "Smooth taro-flavored cream drink",
			Price:       140,
			Image:       "/images/taro-cream.png",
			Category:    entity.CategorySpecialty,
		},
		{
			ID:          "8",
			Name:        "Vanilla Coffee",
			Description: "Coffee with vanilla flavor and whipped cream",
			Price:       115,
			Image:       "/images/vanilla-coffee.png",
			Category:    entity.CategoryCoffee,
		},
		{
			ID:          "9",
			Name:        "Strawberry Cream",
			Description: "Sweet strawberry cream drink",
			Price:       130,
			Image:       "/images/strawberry-cream.png",
			Category:    entity.CategorySpecialty,
		},
	}
}
