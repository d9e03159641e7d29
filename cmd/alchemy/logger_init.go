package main

import (
	"os"

	"github.com/mosberg/alchemy/internal/config"
	"github.com/mosberg/alchemy/internal/logger"
)

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) {
	logger.InitLoggerWithWriter(loggerConfig(cfg), os.Stderr)
}

// loggerConfig starts from the logger defaults for the environment and
// applies the configured values on top
func loggerConfig(cfg *config.Config) logger.Config {
	if cfg == nil {
		return logger.DefaultConfig()
	}

	base := logger.DefaultConfig()
	if cfg.Environment == logger.EnvironmentDev {
		// Source locations are always on in dev
		base = logger.DevelopmentConfig()
	}

	if cfg.LogLevel != "" {
		base.Level = cfg.LogLevel
	}
	if cfg.LogFormat != "" {
		base.Format = cfg.LogFormat
	}
	if cfg.Environment != "" {
		base.Environment = cfg.Environment
	}
	base.Version = version
	base.AddSource = base.AddSource || cfg.LogSource

	return base
}
