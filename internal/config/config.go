package config

import (
	env "github.com/caarlos0/env/v11"
)

type DatabaseType string

const (
	DatabaseTypeMongoDB DatabaseType = "mongodb"
	DatabaseTypeMemory  DatabaseType = "memory"
)

// EnvPrefix is prepended to every variable read by NewConfig.
const EnvPrefix = "CODEFLY_SERVICE_"

// Config holds the application configuration
type Config struct {
	ServerAddress  string       `env:"SERVER_ADDRESS" envDefault:":8080"`
	DatabaseType   DatabaseType `env:"DATABASE_TYPE" envDefault:"memory"`
	DatabaseURL    string       `env:"DATABASE_URL" envDefault:"mongodb://localhost:27017"`
	DatabaseName   string       `env:"DATABASE_NAME" envDefault:"service"`
	CollectionName string       `env:"COLLECTION_NAME" envDefault:"items"`

	// Service identity
	Manifest string `env:"MANIFEST" envDefault:"service.codefly.yaml"`

	// OpenAPI export
	OpenAPIOutput  string `env:"OPENAPI_OUTPUT" envDefault:"../openapi/api.json"`
	OpenAPIFormat  string `env:"OPENAPI_FORMAT" envDefault:"json"`
	OpenAPIVersion string `env:"OPENAPI_VERSION" envDefault:"3.1"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
}

// NewConfig creates a new configuration with default values
func NewConfig() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load parses the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	err := env.ParseWithOptions(&cfg, env.Options{
		Prefix: EnvPrefix,
	})
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
