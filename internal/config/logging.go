package config

import (
	"fmt"

	"go.uber.org/zap/zapcore"
)

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL"`   // debug, info, warn, error
	Format string `yaml:"format" env:"LOG_FORMAT"` // console, json

	// Per-category toggles (load, group, resolve, write, inspect, boot).
	// Missing categories are enabled.
	Categories map[string]bool `yaml:"categories,omitempty"`
}

// ValidLogFormats lists the supported log encodings.
var ValidLogFormats = []string{"console", "json"}

// Validate checks the level and encoding names.
func (c *LoggingConfig) Validate() error {
	if _, err := zapcore.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	for _, f := range ValidLogFormats {
		if c.Format == f {
			return nil
		}
	}
	return fmt.Errorf("logging.format: invalid format %q (valid: %v)", c.Format, ValidLogFormats)
}
