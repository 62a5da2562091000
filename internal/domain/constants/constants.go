// Package constants collects string identifiers shared by config and infra.
package constants

// Environments.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Event publisher providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderKafka  = "kafka"
	PubSubProviderNoop   = "noop"
)

// Storage drivers.
const (
	StorageDriverMemory   = "memory"
	StorageDriverPostgres = "postgres"
)

// Offline queue backends.
const (
	QueueBackendFile   = "file"
	QueueBackendRedis  = "redis"
	QueueBackendMemory = "memory"
)

// Connectivity probe modes.
const (
	ConnectivityModeStatic = "static"
	ConnectivityModeHTTP   = "http"
)

// AuthorityTopic is the FCM topic every authority device subscribes to.
const AuthorityTopic = "sos-authority"
