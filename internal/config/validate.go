package config

import (
	"fmt"
	"strings"

	"sdhtool/internal/sdh"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateCleaning(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateCleaning() error {
	if _, ok := sdh.Preset(c.Cleaning.Preset); !ok {
		return fmt.Errorf("cleaning.preset: unknown preset %q (available: %s)",
			c.Cleaning.Preset, strings.Join(sdh.PresetNames(), ", "))
	}
	// Surface bad override keys at load time rather than mid-conversion.
	if _, err := c.CleaningConfig(); err != nil {
		return fmt.Errorf("cleaning.overrides: %w", err)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
