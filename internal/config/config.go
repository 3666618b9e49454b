package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the configuration for the recommendation service, loaded from
// environment variables with defaults.
type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	CatalogPath string `env:"CATALOG_PATH" envDefault:"./data/perfumes.json"`
	ResultCount int    `env:"RESULT_COUNT" envDefault:"4"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
