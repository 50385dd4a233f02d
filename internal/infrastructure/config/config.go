package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/urfave/cli/v2"
)

// Flag names shared between the CLI definition and Load.
const (
	FlagInput    = "input"
	FlagOutput   = "output"
	FlagLogLevel = "loglevel"
	FlagSort     = "sort"
)

// Log level names accepted on the command line.
var logLevels = []string{"DEBUG", "INFO", "WARNING", "ERROR", "CRITICAL"}

// Config is the runtime configuration for one conversion run.
type Config struct {
	// Input is the path of the easy project archive (.txa).
	Input string

	// Output is the path of the Home Assistant YAML file to write.
	Output string

	// Sort orders every output collection by entity name.
	Sort bool

	// MaxFileSize overrides the size cap applied to the archive and its
	// members, in bytes. Zero keeps the parser default.
	MaxFileSize int64 `env:"EASY2HA_MAX_FILE_SIZE"`

	// Logging configures the console and file log handlers.
	Logging LoggingConfig
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	// Level filters both handlers. One of DEBUG, INFO, WARNING, ERROR,
	// CRITICAL (case-insensitive).
	Level string

	// File receives a plain-text copy of the conversion log. Empty
	// disables file logging.
	File string `env:"EASY2HA_LOG_FILE"`

	// NoColor disables coloured console output.
	NoColor bool `env:"EASY2HA_NO_COLOR"`
}

// Load assembles the configuration for a CLI invocation.
//
// The loading order is:
//  1. Default values (hardcoded)
//  2. Environment variables (override defaults, EASY2HA_* keys)
//  3. Command line flags (override everything)
//
// Returns the validated configuration, or an error describing every
// validation failure at once.
func Load(ctx *cli.Context) (*Config, error) {
	cfg := defaultConfig()

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	// env.Parse skips empty values, but an explicitly empty EASY2HA_LOG_FILE
	// means "no log file", not "keep the default".
	if v, ok := os.LookupEnv("EASY2HA_LOG_FILE"); ok && v == "" {
		cfg.Logging.File = ""
	}

	applyFlags(cfg, ctx)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns a Config with the tool's defaults. The log file
// matches the name the conversion log has always been written to.
func defaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level: "INFO",
			File:  "easy2homeassistant.log",
		},
	}
}

// applyFlags copies flag values over the environment-derived settings.
func applyFlags(cfg *Config, ctx *cli.Context) {
	cfg.Input = ctx.String(FlagInput)
	cfg.Output = ctx.String(FlagOutput)
	cfg.Sort = ctx.Bool(FlagSort)

	if ctx.IsSet(FlagLogLevel) {
		cfg.Logging.Level = ctx.String(FlagLogLevel)
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []string

	if c.Input == "" {
		errs = append(errs, "input path is required")
	}

	if c.Output == "" {
		errs = append(errs, "output path is required")
	}

	if !validLogLevel(c.Logging.Level) {
		errs = append(errs, fmt.Sprintf("unknown log level %q (expected one of %s)",
			c.Logging.Level, strings.Join(logLevels, ", ")))
	}

	if c.MaxFileSize < 0 {
		errs = append(errs, "max file size must not be negative")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}

	return nil
}

func validLogLevel(level string) bool {
	for _, known := range logLevels {
		if strings.EqualFold(level, known) {
			return true
		}
	}
	return false
}
