// Package constants defines shared provider and environment names.
package constants

// Runtime environment names.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Durable queue provider names.
const (
	QueueProviderMemory = "memory"
	QueueProviderRedis  = "redis"
)

// Event bridge provider names.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
