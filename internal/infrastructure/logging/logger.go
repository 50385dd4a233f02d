package logging

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	slogmulti "github.com/samber/slog-multi"

	"github.com/steinerthomas/easy2homeassistant/internal/infrastructure/config"
)

// LevelCritical is the CRITICAL level of the CLI contract. slog defines no
// critical level of its own; one step above error keeps the ordering.
const LevelCritical = slog.Level(slog.LevelError + 4)

// Logger wraps slog.Logger for the conversion pipeline.
//
// It provides structured logging with level-based filtering, mirrored to a
// coloured console handler and, when configured, a plain-text log file.
type Logger struct {
	*slog.Logger
}

// New creates a Logger from the logging configuration.
//
// Console output goes to stdout, coloured unless disabled. When cfg.File is
// set, every record is also appended to that file in plain text; both
// handlers share the configured level.
//
// Returns an error when the log file cannot be opened.
func New(cfg config.LoggingConfig) (*Logger, error) {
	level := parseLevel(cfg.Level)

	console := tint.NewHandler(os.Stdout, &tint.Options{
		Level:      level,
		TimeFormat: time.DateTime,
		NoColor:    cfg.NoColor,
	})

	if cfg.File == "" {
		return &Logger{Logger: slog.New(console)}, nil
	}

	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	file := slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})

	return &Logger{Logger: slog.New(slogmulti.Fanout(console, file))}, nil
}

// parseLevel converts a CLI level name to a slog.Level.
//
// Supported names: DEBUG, INFO, WARNING (or WARN), ERROR, CRITICAL,
// case-insensitive. Defaults to info if unrecognised.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "critical":
		return LevelCritical
	default:
		return slog.LevelInfo
	}
}

// With returns a new Logger with additional default attributes.
//
// Example:
//
//	parserLogger := logger.With("component", "parser")
//	parserLogger.Info("project parsed") // Includes component=parser
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		Logger: l.Logger.With(args...),
	}
}

// Default creates a console-only logger at info level for use before the
// configuration is loaded.
func Default() *Logger {
	logger, _ := New(config.LoggingConfig{Level: "INFO"})
	return logger
}
