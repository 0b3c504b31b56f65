// Package constants holds configuration values shared across layers.
package constants

const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

const (
	StorageDriverMongo    = "mongo"
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)
