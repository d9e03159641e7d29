package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	ContentRoot string `env:"ALCHEMY_CONTENT_ROOT" envDefault:"data/alchemy"`
	// EffectsFile is an optional JSON array of known effect ids
	EffectsFile string `env:"ALCHEMY_EFFECTS_FILE"`
	// Seed fixes the simulation seed; nil uses a random one
	Seed        *int64 `env:"ALCHEMY_SEED"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text"`
	LogSource   bool   `env:"LOG_ADD_SOURCE"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf(ErrFmtParseEnv, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
