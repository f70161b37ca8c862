// Package logging constructs the zap loggers used across the pipeline.
package logging

import (
	"fmt"

	"go.uber.org/zap"
)

// New builds a logger for the given level ("debug", "info", "warn",
// "error"). The development environment gets human-readable console output,
// anything else structured JSON.
func New(level, env string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level %q: %w", level, err)
	}

	var cfg zap.Config
	if env == "development" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = lvl

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger, nil
}
