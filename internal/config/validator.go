package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Validate rejects values the rest of the program cannot use
func (c *Config) Validate() error {
	if strings.TrimSpace(c.ContentRoot) == "" {
		return errors.New(ErrMsgEmptyRoot)
	}

	switch strings.ToLower(c.LogFormat) {
	case "json", "text":
	default:
		return fmt.Errorf(ErrFmtInvalidFormat, EnvLogFormat, c.LogFormat)
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf(ErrFmtInvalidLevel, EnvLogLevel, c.LogLevel)
	}

	return nil
}

// Warnings returns non-critical issues, such as paths that do not exist yet
func (c *Config) Warnings() []string {
	var warnings []string

	if _, err := os.Stat(c.ContentRoot); err != nil {
		warnings = append(warnings, fmt.Sprintf(WarnFmtMissingRoot, c.ContentRoot))
	}

	if c.EffectsFile != "" {
		if _, err := os.Stat(c.EffectsFile); err != nil {
			warnings = append(warnings, fmt.Sprintf(WarnFmtMissingEffects, c.EffectsFile))
		}
	}

	return warnings
}
