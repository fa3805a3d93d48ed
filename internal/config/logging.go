package config

import (
	"fmt"
	"strings"

	"go.uber.org/zap/zapcore"
)

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level      string          `yaml:"level" toml:"level"`   // debug, info, warn, error, off
	Format     string          `yaml:"format" toml:"format"` // json, text
	Categories map[string]bool `yaml:"categories,omitempty" toml:"categories,omitempty"`
}

// IsCategoryEnabled returns whether logging is enabled for a category.
// Categories not listed are enabled.
func (c *LoggingConfig) IsCategoryEnabled(category string) bool {
	if c.Categories == nil {
		return true
	}
	enabled, exists := c.Categories[category]
	if !exists {
		return true
	}
	return enabled
}

// ParseLevel maps a configured level name onto a zap level.
// "off" maps above fatal so nothing is emitted.
func ParseLevel(raw string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "info":
		return zapcore.InfoLevel, nil
	case "debug", "trace":
		return zapcore.DebugLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	case "off", "none", "disabled":
		return zapcore.FatalLevel + 1, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("invalid logging level %q", raw)
	}
}
