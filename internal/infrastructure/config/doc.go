// Package config handles loading and validating the easy2homeassistant
// run configuration.
//
// This package manages:
//   - Default value handling
//   - Overriding with EASY2HA_* environment variables
//   - Overriding with command line flags
//   - Validation of required fields
//
// Flags carry the per-run choices (input, output, loglevel, sort);
// environment variables carry the ambient settings nobody wants to type on
// every run (log file path, colour, size cap). A .env file loaded by the
// CLI feeds the same variables.
//
// Usage:
//
//	func action(ctx *cli.Context) error {
//	    cfg, err := config.Load(ctx)
//	    if err != nil {
//	        return err
//	    }
//	    ...
//	}
package config
