package service

import (
	"context"
	"time"
)

// Catalog event types published on repository mutations.
const (
	CatalogEventCreated = "product.created"
	CatalogEventUpdated = "product.updated"
	CatalogEventDeleted = "product.deleted"
)

// CatalogEvent notifies subscribers (e.g., a presentation layer keeping its
// views fresh) that the catalog changed.
type CatalogEvent struct {
	Type       string    `json:"type"`
	ProductID  string    `json:"product_id"`
	Name       string    `json:"name,omitempty"`
	Category   string    `json:"category,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing catalog change events.
type EventPublisher interface {
	// PublishCatalogEvent publishes a catalog change notification.
	PublishCatalogEvent(ctx context.Context, event *CatalogEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
