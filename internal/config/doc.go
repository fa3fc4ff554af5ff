// Package config handles configuration loading, parsing, and validation
// from environment variables and an optional YAML file. It provides type-safe
// access to the settings needed by the HTTP and gRPC listeners, PostgreSQL,
// Redis and the event publisher.
package config
