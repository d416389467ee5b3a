// Package logging builds the arcade's zap loggers.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"mindful-arcade/internal/config"
)

// New returns a JSON logger writing to cfg.Path, or to fallback when the
// path is empty. With neither, logging is discarded: the terminal UI owns
// the screen and must not be written over.
func New(cfg config.Log, fallback string) (*zap.Logger, error) {
	sink := cfg.Path
	if sink == "" {
		sink = fallback
	}
	if sink == "" {
		return zap.NewNop(), nil
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{sink}
	zc.ErrorOutputPaths = []string{sink}
	zc.EncoderConfig.TimeKey = "time"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.Sampling = nil

	log, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return log, nil
}
