package config

import (
	"github.com/caarlos0/env/v11"

	"adforge/internal/config/configs"
)

// Storage backends selectable via the STORAGE environment variable.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// The nested structs are tagged with envPrefix so their fields are parsed
// with the given prefix. See the individual types in the configs package
// for default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// Storage selects the campaign store backend: "memory" (default) or
	// "postgres".
	Storage string `env:"STORAGE" envDefault:"memory"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the optional PostgreSQL campaign store. Environment
	// variables prefixed with PSQL_ will populate this struct.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Session configures cookie session signing.
	Session configs.Session `envPrefix:"SESSION_"`

	// Uploads configures banner file storage.
	Uploads configs.Uploads `envPrefix:"UPLOADS_"`

	// AdCopy configures the external text-generation service. Environment
	// variables prefixed with AI_ will populate this struct.
	AdCopy configs.AdCopy `envPrefix:"AI_"`

	// Admin seeds the single valid account.
	Admin configs.Admin `envPrefix:"ADMIN_"`
}

// Load reads configuration from environment variables into a Config. If
// parsing fails, an error is returned. All fields are loaded with their
// specified defaults when no environment variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
