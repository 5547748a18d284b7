// Package logging provides the structured logger used across the miner.
// Components depend on the Logger interface and receive an instance via
// constructor injection; only this package touches go.uber.org/zap.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the service-wide logging contract.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
}

// Config controls logger construction.
type Config struct {
	// Level is the minimum severity: "debug", "info", "warn", "error".
	Level string `yaml:"level"`
	// Format selects the encoding: "json" or "console".
	Format string `yaml:"format"`
}

// zapLogger implements Logger over a zap SugaredLogger.
type zapLogger struct {
	sugar *zap.SugaredLogger
}

// New builds a Logger from config.
func New(cfg Config) (Logger, error) {
	level, err := zapcore.ParseLevel(defaultString(cfg.Level, "info"))
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	var zc zap.Config
	if cfg.Format == "console" {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	base, err := zc.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return &zapLogger{sugar: base.Sugar()}, nil
}

func (l *zapLogger) Debug(msg string, keysAndValues ...any) {
	l.sugar.Debugw(msg, keysAndValues...)
}

func (l *zapLogger) Info(msg string, keysAndValues ...any) {
	l.sugar.Infow(msg, keysAndValues...)
}

func (l *zapLogger) Warn(msg string, keysAndValues ...any) {
	l.sugar.Warnw(msg, keysAndValues...)
}

func (l *zapLogger) Error(msg string, keysAndValues ...any) {
	l.sugar.Errorw(msg, keysAndValues...)
}

// Nop returns a logger that discards everything. Used in tests.
func Nop() Logger {
	return &zapLogger{sugar: zap.NewNop().Sugar()}
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
