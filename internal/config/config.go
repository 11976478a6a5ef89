// Package config loads and validates the kaya CLI configuration. Settings
// come from a YAML file with shallow section merging, then environment
// overrides, then command-line flags, in that order of increasing
// precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/kayatools/kayadata"
)

// Environment variables honoured by the CLI.
const (
	// EnvConfigPath overrides the config file location.
	EnvConfigPath = "KAYA_CONFIG"
	// EnvLogLevel overrides logging.level.
	EnvLogLevel = "KAYA_LOG_LEVEL"
	// EnvLogFormat overrides logging.format.
	EnvLogFormat = "KAYA_LOG_FORMAT"
	// EnvOutputFormat overrides output.format.
	EnvOutputFormat = "KAYA_OUTPUT_FORMAT"
)

// Output format names accepted by output.format and --output.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatCSV   = "csv"
)

// Config is the root kaya configuration.
type Config struct {
	Output  OutputConfig  `yaml:"output" json:"output"`
	Query   QueryConfig   `yaml:"query" json:"query"`
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// OutputConfig controls how query results are rendered.
type OutputConfig struct {
	// Format is table, json, or csv.
	Format string `yaml:"format" json:"format"`
}

// QueryConfig carries default query parameters applied when the
// corresponding flags are not given.
type QueryConfig struct {
	// GDP is the default GDP convention, "MER" or "PPP".
	GDP string `yaml:"gdp" json:"gdp"`
	// CollapseRenewables folds Hydro into Renewables in fuel-mix output
	// by default.
	CollapseRenewables bool `yaml:"collapse_renewables" json:"collapse_renewables"`
}

// LoggingConfig configures the CLI logger.
type LoggingConfig struct {
	// Level is a zerolog level name.
	Level string `yaml:"level" json:"level"`
	// Format is "console" or "json".
	Format string `yaml:"format" json:"format"`
	// File, when set, routes log output to a file instead of stderr.
	File string `yaml:"file" json:"file"`
}

// New returns the built-in defaults: table output, MER convention, info
// level console logging to stderr.
func New() *Config {
	return &Config{
		Output:  OutputConfig{Format: FormatTable},
		Query:   QueryConfig{GDP: kayadata.MER.String()},
		Logging: LoggingConfig{Level: "info", Format: "console"},
	}
}

// Path returns the config file location: $KAYA_CONFIG when set, otherwise
// ~/.config/kaya/config.yaml.
func Path() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "kaya", "config.yaml")
}

// Load builds the effective configuration: defaults, overlaid by the config
// file when one exists, overlaid by environment variables. A missing file is
// not an error; a malformed one is. Fields left empty by the overlays mean
// "use the default", not "invalid".
func Load() (*Config, error) {
	cfg := New()

	path := Path()
	if _, err := os.Stat(path); err == nil {
		if err := ShallowMergeYAML(cfg, path); err != nil {
			return nil, err
		}
	}

	cfg.ApplyEnv()
	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// fillDefaults restores built-in defaults for fields the overlays left
// empty. A config file that sets part of a section replaces the whole
// section, so its untouched fields arrive as zero values here.
func (c *Config) fillDefaults() {
	def := New()
	if c.Output.Format == "" {
		c.Output.Format = def.Output.Format
	}
	if c.Query.GDP == "" {
		c.Query.GDP = def.Query.GDP
	}
	if c.Logging.Level == "" {
		c.Logging.Level = def.Logging.Level
	}
	if c.Logging.Format == "" {
		c.Logging.Format = def.Logging.Format
	}
}

// ApplyEnv overlays the KAYA_* environment variables onto the config.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv(EnvOutputFormat); v != "" {
		c.Output.Format = v
	}
}

// Validate rejects values the CLI could not act on: unknown output formats
// and GDP conventions. Logging levels are not validated here because the
// logger falls back to info on its own.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatTable, FormatJSON, FormatCSV:
	default:
		return fmt.Errorf("invalid output.format %q (want %s, %s, or %s)",
			c.Output.Format, FormatTable, FormatJSON, FormatCSV)
	}
	if _, err := kayadata.ParseGDPConvention(c.Query.GDP); err != nil {
		return fmt.Errorf("invalid query.gdp: %w", err)
	}
	return nil
}

// GDPConvention parses the configured default convention. Call Validate
// first; an invalid value degrades to MER here.
func (c *Config) GDPConvention() kayadata.GDPConvention {
	conv, err := kayadata.ParseGDPConvention(c.Query.GDP)
	if err != nil {
		return kayadata.MER
	}
	return conv
}

// Save writes the configuration to path in YAML, creating parent
// directories as needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
