// easy2homeassistant - KNX easy project converter
//
// This is the command line entry point. It takes a proprietary KNX "easy"
// project export (a .txa archive produced by the vendor's configuration
// tool) and converts the device channels found inside into a Home Assistant
// KNX YAML configuration:
//
//	easy2homeassistant --input export.txa --output knx.yaml --sort
//
// The conversion is a one-shot, single pass pipeline: read the archive,
// validate and parse the configuration documents into the intermediate
// project model, resolve the channels into typed entities, write the YAML.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/carlmjohnson/versioninfo"
	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v2"

	"github.com/steinerthomas/easy2homeassistant/internal/easy"
	"github.com/steinerthomas/easy2homeassistant/internal/homeassistant"
	"github.com/steinerthomas/easy2homeassistant/internal/infrastructure/config"
	"github.com/steinerthomas/easy2homeassistant/internal/infrastructure/logging"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newApp builds the CLI surface: the conversion flags and the action
// running the pipeline. Separated from main for testability.
func newApp() *cli.App {
	return &cli.App{
		Name:    "easy2homeassistant",
		Usage:   "convert a KNX easy project export into a Home Assistant KNX configuration",
		Version: versioninfo.Short(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     config.FlagInput,
				Aliases:  []string{"i"},
				Usage:    "path to the input easy project (txa) `FILE`",
				Required: true,
			},
			&cli.StringFlag{
				Name:     config.FlagOutput,
				Aliases:  []string{"o"},
				Usage:    "path to the output Home Assistant yaml `FILE`",
				Required: true,
			},
			&cli.StringFlag{
				Name:    config.FlagLogLevel,
				Aliases: []string{"l"},
				Usage:   "logging `LEVEL` (DEBUG, INFO, WARNING, ERROR, CRITICAL)",
				Value:   "INFO",
				EnvVars: []string{"EASY2HA_LOG_LEVEL"},
			},
			&cli.BoolFlag{
				Name:  config.FlagSort,
				Usage: "sort the output entities of every kind by name",
			},
		},
		Action: func(ctx *cli.Context) error {
			cfg, err := config.Load(ctx)
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}
}

// run executes one conversion: parse the archive into the project model,
// resolve the entities, write the YAML configuration.
func run(cfg *config.Config) error {
	log, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}

	log.Info("starting easy2homeassistant",
		"version", versioninfo.Short(),
		"input", cfg.Input,
		"output", cfg.Output,
	)

	parser := easy.NewParser()
	parser.SetLogger(log.With("component", "parser"))
	parser.SetMaxFileSize(cfg.MaxFileSize)

	project, err := parser.ParseArchive(cfg.Input)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", cfg.Input, err)
	}

	converter := homeassistant.NewConverter()
	converter.SetLogger(log.With("component", "converter"))

	result := converter.Convert(filepath.Base(cfg.Input), project)
	if cfg.Sort {
		result.Entities.Sort()
	}

	log.Info("exporting entities", "output", cfg.Output, "entities", result.Entities.Total())
	if err := homeassistant.WriteFile(cfg.Output, &result.Entities); err != nil {
		return err
	}

	log.Info("conversion complete",
		"conversion_id", result.ConversionID,
		"channels_seen", result.Stats.ChannelsSeen,
		"channels_empty", result.Stats.ChannelsEmpty,
		"channels_unmapped", result.Stats.ChannelsUnmapped,
		"datapoints_mapped", result.Stats.DatapointsMapped,
		"datapoints_unmapped", result.Stats.DatapointsUnmapped,
		"entities_discarded", result.Stats.EntitiesDiscarded,
		"lights", len(result.Entities.Lights),
		"covers", len(result.Entities.Covers),
		"sensors", len(result.Entities.Sensors),
		"climates", len(result.Entities.Climates),
		"weathers", len(result.Entities.Weathers),
		"entities", result.Entities.Total(),
	)
	return nil
}
