// Package entity contains the core business objects of the project.
package entity

import "time"

// Order is the receipt produced by checking out a cart.
// It freezes the cart's item snapshots and total at the time of checkout.
type Order struct {
	ID       string     `json:"id"`
	UserID   string     `json:"userId"`
	Items    []CartItem `json:"items"`
	Total    float64    `json:"total"`
	PlacedAt time.Time  `json:"placedAt"`
}
