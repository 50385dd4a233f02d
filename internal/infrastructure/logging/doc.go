// Package logging provides structured logging for easy2homeassistant.
//
// This package wraps Go's standard log/slog package so every stage of the
// conversion logs through one configuration.
//
// # Features
//
//   - Coloured console output (tint handler, colour optional)
//   - Plain-text copy of the run appended to the conversion log file
//   - Level-based filtering (DEBUG, INFO, WARNING, ERROR, CRITICAL)
//   - Component sub-loggers via With()
//   - Thread-safe for concurrent use
//
// # Configuration
//
// Logging is configured through config.LoggingConfig: the level comes from
// the --loglevel flag, the file path and colour switch from the EASY2HA_*
// environment. An empty file path disables file logging entirely.
//
// # Usage
//
//	log, err := logging.New(cfg.Logging)
//	if err != nil {
//	    return err
//	}
//	log.Info("starting conversion", "input", cfg.Input)
//
//	parserLog := log.With("component", "parser")
//	parserLog.Warn("skipping invalid group address", "address", "abc")
package logging
