// Package constants holds string constants shared between configuration and wiring.
package constants

const (
	// EnvDevelop is the env name used for local development.
	EnvDevelop = "develop"
	// EnvProduction is the env name used for deployed services.
	EnvProduction = "production"
)

// Pub/Sub provider names accepted by the pubsub.provider config key.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Record store backends accepted by the store.driver config key.
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)
