// Package logging builds the zap loggers used by the idioms CLI and runner.
// Logs go to stderr so they never interleave with demo output on stdout.
// Each subsystem asks for a category logger; categories switched off in
// config get a no-op logger.
package logging

import (
	"fmt"

	"idioms/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/system
type Category string

const (
	CategoryCLI      Category = "cli"      // Command parsing and startup
	CategoryConfig   Category = "config"   // Config load/save
	CategoryRunner   Category = "runner"   // Scenario selection and ordering
	CategoryScenario Category = "scenario" // Per-scenario progress
)

// Loggers hands out category loggers sharing one core.
type Loggers struct {
	base *zap.Logger
	cfg  config.LoggingConfig
}

// New builds loggers from config. verbose forces debug level regardless of
// the configured level.
func New(cfg config.LoggingConfig, verbose bool) (*Loggers, error) {
	level, err := config.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Sampling = nil
	if cfg.Format != "json" {
		zc.Encoding = "console"
		zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}

	base, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return &Loggers{base: base, cfg: cfg}, nil
}

// Wrap builds loggers around an existing zap logger, e.g. zap.NewNop() or
// an observer in tests.
func Wrap(base *zap.Logger, cfg config.LoggingConfig) *Loggers {
	if base == nil {
		base = zap.NewNop()
	}
	return &Loggers{base: base, cfg: cfg}
}

// Get returns the logger for a category.
func (l *Loggers) Get(category Category) *zap.Logger {
	if l == nil || !l.cfg.IsCategoryEnabled(string(category)) {
		return zap.NewNop()
	}
	return l.base.Named(string(category))
}

// Sync flushes buffered entries. Errors from syncing a console are ignored
// by callers the same way the CLI ignores them on exit.
func (l *Loggers) Sync() error {
	if l == nil {
		return nil
	}
	return l.base.Sync()
}
