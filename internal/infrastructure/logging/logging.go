// Package logging builds the zap logger shared by the showcase binaries.
package logging

import (
	"fmt"

	"github.com/younwookim/mgui/internal/infrastructure/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a logger from cfg. A nil cfg uses config.DefaultLogging.
func New(cfg *config.LoggingConfig) (*zap.Logger, error) {
	if cfg == nil {
		cfg = config.DefaultLogging()
	}

	zcfg, err := Config(cfg)
	if err != nil {
		return nil, err
	}

	l, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return l, nil
}

// Config translates cfg into a zap.Config without building it
func Config(cfg *config.LoggingConfig) (zap.Config, error) {
	var zcfg zap.Config
	if cfg.Development {
		zcfg = zap.NewDevelopmentConfig()
	} else {
		zcfg = zap.NewProductionConfig()
		zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	if cfg.Level != "" {
		level, err := zap.ParseAtomicLevel(cfg.Level)
		if err != nil {
			return zap.Config{}, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
		zcfg.Level = level
	}

	switch cfg.Encoding {
	case "":
	case "json", "console":
		zcfg.Encoding = cfg.Encoding
	default:
		return zap.Config{}, fmt.Errorf("invalid log encoding %q", cfg.Encoding)
	}

	return zcfg, nil
}
