// Package constants holds configuration values shared across layers.
package constants

// Pub/Sub providers selectable through pubsub.provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// EnvDevelop is the env.env value of local development.
const EnvDevelop = "develop"

// Pub/Sub message attributes carried next to a password reset event.
const (
	AttrEventID   = "event_id"
	AttrUserID    = "user_id"
	AttrRequestID = "request_id"
)
