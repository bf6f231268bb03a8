// =============================================================================
// PNL Generator - Configuration Module
// =============================================================================
//
// This module loads the application configuration from a YAML file. The
// configuration covers the output locations, logging, the manifest layout
// offsets, and the default flight identification strings for the Avio
// pipeline. Every value has a production default so the tool runs with no
// config file at all.
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration loaded from config.yaml.
type Config struct {
	// =========================================================================
	// DIRECTORY SETTINGS
	// =========================================================================

	// OutputDir is the directory where generated export files are placed.
	// Default: "./output"
	OutputDir string `yaml:"output_dir"`

	// ArchiveDir is the directory where generated exports are copied for
	// long-term storage. Default: "./archive"
	ArchiveDir string `yaml:"archive_dir"`

	// =========================================================================
	// LOGGING SETTINGS
	// =========================================================================

	// LogLevel controls logging verbosity: "debug", "info", "warn", "error".
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// =========================================================================
	// MANIFEST LAYOUT SETTINGS
	// =========================================================================

	// AeroHeaderRow is the 0-based row index of the standard Aero layout's
	// header row. Default: 3
	AeroHeaderRow int `yaml:"aero_header_row"`

	// AeroFallbackSkipRows is the number of leading rows the positional Aero
	// fallback layout skips. Default: 3
	AeroFallbackSkipRows int `yaml:"aero_fallback_skip_rows"`

	// AvioSkipRows is the number of preamble rows above the Avio data block,
	// including the column label row. Default: 5
	AvioSkipRows int `yaml:"avio_skip_rows"`

	// =========================================================================
	// AVIO DEFAULTS
	// =========================================================================

	// FlightDesignator is the default flight designator line of the PNL
	// message, overridable per run with --flight.
	FlightDesignator string `yaml:"flight_designator"`

	// FlightCode is the default flight code line of the PNL message,
	// overridable per run with --code.
	FlightCode string `yaml:"flight_code"`
}

// Load reads the configuration from a YAML file and applies defaults. A
// missing file is not an error: the defaults alone form a valid
// configuration.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// No config file; run on defaults.
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// applyDefaults sets production defaults for any unset option. The layout
// offsets use -1 sentinels only implicitly: a zero offset is not a valid
// production layout, so zero means unset.
func applyDefaults(cfg *Config) {
	if cfg.OutputDir == "" {
		cfg.OutputDir = "./output"
	}
	if cfg.ArchiveDir == "" {
		cfg.ArchiveDir = "./archive"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.AeroHeaderRow == 0 {
		cfg.AeroHeaderRow = 3
	}
	if cfg.AeroFallbackSkipRows == 0 {
		cfg.AeroFallbackSkipRows = 3
	}
	if cfg.AvioSkipRows == 0 {
		cfg.AvioSkipRows = 5
	}
	if cfg.FlightDesignator == "" {
		cfg.FlightDesignator = "CAI198/01JUL TZL PART1"
	}
	if cfg.FlightCode == "" {
		cfg.FlightCode = "-AYT025Y"
	}
}
