// Package logging builds the zap loggers used by wordpools.
// Logs go to stderr so stdout only carries command output.
// Each pipeline stage logs under its own category, and categories can be
// switched off individually from the config file.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot    Category = "boot"    // Startup, config resolution
	CategoryLoad    Category = "load"    // Reading and shaping input
	CategoryGroup   Category = "group"   // Grouping words by length
	CategoryResolve Category = "resolve" // Output target decisions
	CategoryWrite   Category = "write"   // Serialization to disk
	CategoryInspect Category = "inspect" // Reading pools back
)

// Options controls logger construction.
type Options struct {
	Level      string          // debug, info, warn, error
	Format     string          // console, json
	Verbose    bool            // forces debug level
	Categories map[string]bool // per-category toggles; missing means enabled
	OutputPath string          // defaults to stderr
}

// Logger is a base zap logger plus category toggles.
type Logger struct {
	base       *zap.Logger
	categories map[string]bool
}

// New builds a Logger from opts.
func New(opts Options) (*Logger, error) {
	level, err := zapcore.ParseLevel(opts.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	if opts.Verbose {
		level = zapcore.DebugLevel
	}

	var config zap.Config
	switch opts.Format {
	case "", "console":
		config = zap.NewDevelopmentConfig()
		config.Development = false
		config.DisableStacktrace = true
	case "json":
		config = zap.NewProductionConfig()
		config.Sampling = nil
	default:
		return nil, fmt.Errorf("invalid log format: %q", opts.Format)
	}
	config.Level = zap.NewAtomicLevelAt(level)

	out := opts.OutputPath
	if out == "" {
		out = "stderr"
	}
	config.OutputPaths = []string{out}
	config.ErrorOutputPaths = []string{"stderr"}

	base, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return Wrap(base, opts.Categories), nil
}

// Wrap adopts an existing zap logger.
func Wrap(base *zap.Logger, categories map[string]bool) *Logger {
	if base == nil {
		base = zap.NewNop()
	}
	return &Logger{base: base, categories: categories}
}

// Nop returns a Logger that discards everything.
func Nop() *Logger {
	return Wrap(zap.NewNop(), nil)
}

// IsCategoryEnabled returns whether a specific category is enabled
func (l *Logger) IsCategoryEnabled(category Category) bool {
	if l.categories == nil {
		return true
	}
	enabled, exists := l.categories[string(category)]
	if !exists {
		return true
	}
	return enabled
}

// Get returns the named logger for a category, or a no-op logger when the
// category is disabled.
func (l *Logger) Get(category Category) *zap.Logger {
	if !l.IsCategoryEnabled(category) {
		return zap.NewNop()
	}
	return l.base.Named(string(category))
}

// Base returns the uncategorized logger.
func (l *Logger) Base() *zap.Logger {
	return l.base
}

// Sync flushes buffered entries.
func (l *Logger) Sync() error {
	return l.base.Sync()
}
