// Package logger builds the process-wide zap logger. Status lines and
// diagnostics go to stdout with console encoding so the tool stays
// readable when run by hand.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a sugared console logger at info level.
func New(service string) *zap.SugaredLogger {
	return NewWithLevel(service, zapcore.InfoLevel, false)
}

// NewWithLevel returns a sugared console logger at the given level.
// Development mode switches to the more verbose development encoder.
func NewWithLevel(service string, level zapcore.Level, development bool) *zap.SugaredLogger {
	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}

	cfg.Encoding = "console"
	cfg.OutputPaths = []string{"stdout"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return zap.Must(cfg.Build()).Named(service).Sugar()
}
