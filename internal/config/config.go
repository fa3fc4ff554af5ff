package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Cache    CacheConfig    `mapstructure:"cache"    validate:"required"`
	Events   EventsConfig   `mapstructure:"events"   validate:"required"`
}

// ServerConfig contains the listener and process settings.
type ServerConfig struct {
	Port            int           `mapstructure:"port"             validate:"required,gt=0,lt=65536"`
	GRPCPort        int           `mapstructure:"grpc_port"        validate:"required,gt=0,lt=65536,nefield=Port"`
	LogLevel        string        `mapstructure:"log_level"        validate:"required,oneof=debug info warn error"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL              string        `mapstructure:"url"               validate:"required,url"`
	MaxOpenConns     int           `mapstructure:"max_open_conns"    validate:"gt=0"`
	MigrationRetries int           `mapstructure:"migration_retries" validate:"gt=0"`
	MigrationDelay   time.Duration `mapstructure:"migration_delay"   validate:"gt=0"`
}

// CacheConfig contains the Redis connection and entry lifetime settings.
type CacheConfig struct {
	Addrs    []string      `mapstructure:"addrs"    validate:"required,min=1,dive,hostname_port"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"       validate:"gte=0"`
	Prefix   string        `mapstructure:"prefix"`
	TTL      time.Duration `mapstructure:"ttl"      validate:"gt=0"`
}

// EventsConfig selects and configures the status-change publisher.
type EventsConfig struct {
	Driver   string `mapstructure:"driver"   validate:"required,oneof=rabbitmq memory"`
	URL      string `mapstructure:"url"      validate:"required_if=Driver rabbitmq"`
	Exchange string `mapstructure:"exchange" validate:"required"`
}
