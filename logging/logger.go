// Package logging provides a structured logging wrapper around log/slog,
// with file rotation via lumberjack and a dynamically adjustable level.
package logging

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	defaultLogger *Logger
	once          sync.Once
	level         = new(slog.LevelVar)
)

// Config configures a Logger.
type Config struct {
	Service    string
	Module     string
	Level      string
	File       string // empty means stdout only
	MaxSize    int    // MB per rotated file
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

// Logger wraps *slog.Logger with the service/module identity attached to
// every record it emits.
type Logger struct {
	*slog.Logger
	Service string
	Module  string
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewFromConfig builds a Logger. When cfg.File is set, records are written
// to both stdout and the rotated file via a fan-out handler.
func NewFromConfig(cfg Config) *Logger {
	level.Set(parseLevel(cfg.Level))

	replaceAttr := func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.TimeKey {
			a.Key = "timestamp"
		}
		return a
	}
	opts := &slog.HandlerOptions{Level: level, ReplaceAttr: replaceAttr}

	stdoutHandler := slog.NewJSONHandler(os.Stdout, opts)

	var handler slog.Handler = stdoutHandler
	if cfg.File != "" {
		fileWriter := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
		fileHandler := slog.NewJSONHandler(fileWriter, opts)
		handler = newMultiHandler(stdoutHandler, fileHandler)
	}

	logger := slog.New(handler).With(
		slog.String("service", cfg.Service),
		slog.String("module", cfg.Module),
	)

	return &Logger{Logger: logger, Service: cfg.Service, Module: cfg.Module}
}

// NewLogger is a convenience constructor for the common case of no file
// rotation.
func NewLogger(service, module string, lvl ...string) *Logger {
	l := "info"
	if len(lvl) > 0 {
		l = lvl[0]
	}
	return NewFromConfig(Config{Service: service, Module: module, Level: l})
}

// SetLevel adjusts the level of every Logger built from this package without
// rebuilding handlers — used by config.Load's hot-reload callback.
func SetLevel(lvl string) {
	level.Set(parseLevel(lvl))
}

// InitLogger initializes the package-level default logger once.
func InitLogger(service, module string, lvl ...string) {
	once.Do(func() {
		l := "info"
		if len(lvl) > 0 {
			l = lvl[0]
		}
		defaultLogger = NewFromConfig(Config{Service: service, Module: module, Level: l})
		slog.SetDefault(defaultLogger.Logger)
	})
}

// EnsureDefaultLogger initializes the default logger with fallback values if
// InitLogger was never called.
func EnsureDefaultLogger() {
	if defaultLogger == nil {
		InitLogger("levelancestor", "default", "info")
	}
}

// Default returns the package-level default Logger.
func Default() *Logger {
	EnsureDefaultLogger()
	return defaultLogger
}

func Info(ctx context.Context, msg string, args ...any) {
	EnsureDefaultLogger()
	defaultLogger.InfoContext(ctx, msg, args...)
}

func Warn(ctx context.Context, msg string, args ...any) {
	EnsureDefaultLogger()
	defaultLogger.WarnContext(ctx, msg, args...)
}

func Error(ctx context.Context, msg string, args ...any) {
	EnsureDefaultLogger()
	defaultLogger.ErrorContext(ctx, msg, args...)
}

func Debug(ctx context.Context, msg string, args ...any) {
	EnsureDefaultLogger()
	defaultLogger.DebugContext(ctx, msg, args...)
}

// LogDuration logs how long the enclosing operation took when the returned
// func is deferred.
func LogDuration(ctx context.Context, operation string, args ...any) func() {
	start := time.Now()
	return func() {
		logArgs := append(args, "duration", time.Since(start))
		Info(ctx, fmt.Sprintf("%s finished", operation), logArgs...)
	}
}

// GetLogger returns the default Logger, initializing it with fallback
// values if necessary.
func GetLogger() *Logger {
	if defaultLogger == nil {
		return NewFromConfig(Config{Service: "unknown", Module: "unknown"})
	}
	return defaultLogger
}
