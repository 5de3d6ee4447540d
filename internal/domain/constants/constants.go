// Package constants holds shared domain-level constant values.
package constants

// Pub/Sub provider names selectable through configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
