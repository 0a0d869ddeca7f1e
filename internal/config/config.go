// Package config loads footprint settings from ~/.footprint/config.yaml,
// an optional project overlay and FOOTPRINT_* environment variables.
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rshade/footprint/internal/factors"
	"github.com/rshade/footprint/internal/layout"
	"github.com/rshade/footprint/internal/logging"
	"github.com/rshade/footprint/internal/report"
)

// Environment variables that override file settings.
const (
	EnvHome         = "FOOTPRINT_HOME"
	EnvProjectDir   = "FOOTPRINT_PROJECT_DIR"
	EnvLogLevel     = "FOOTPRINT_LOG_LEVEL"
	EnvLogFormat    = "FOOTPRINT_LOG_FORMAT"
	EnvOutputDir    = "FOOTPRINT_OUTPUT_DIR"
	EnvFactorsFile  = "FOOTPRINT_FACTORS_FILE"
	configFileName  = "config.yaml"
	defaultParallel = 4
)

// Config is the complete footprint configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Report  ReportConfig  `yaml:"report"`
	Factors FactorsConfig `yaml:"factors"`

	configPath string
	loadErr    error
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file,omitempty"`
}

// ReportConfig controls rendering and output of reports.
type ReportConfig struct {
	// Kind is the report kind used in file names.
	Kind             string  `yaml:"kind"`
	OutputDir        string  `yaml:"output_dir"`
	WatermarkOpacity float64 `yaml:"watermark_opacity"`
	LicenseLine      string  `yaml:"license_line,omitempty"`
	Parallel         int     `yaml:"parallel"`
}

// FactorsConfig points at an alternative factor table.
type FactorsConfig struct {
	File string `yaml:"file,omitempty"`
}

// Default returns the built-in configuration without reading any file.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info", Format: "console"},
		Report: ReportConfig{
			Kind:             report.DefaultKind,
			OutputDir:        ".",
			WatermarkOpacity: layout.DefaultWatermarkOpacity,
			Parallel:         defaultParallel,
		},
	}
}

// New returns the default configuration overlaid with the user config file,
// when present, and the environment. A config file that cannot be read or
// parsed is logged as a warning through the context logger and the defaults
// are used instead; LoadErr reports it.
func New(ctx context.Context) *Config {
	cfg := Default()

	dir, err := GetConfigDir()
	if err == nil {
		path := filepath.Join(dir, configFileName)
		loaded, loadErr := Load(path)
		switch {
		case loadErr == nil:
			cfg = loaded
		case errors.Is(loadErr, fs.ErrNotExist):
			cfg.configPath = path
		default:
			cfg.configPath = path
			cfg.loadErr = loadErr
			logger := logging.FromContext(ctx)
			logger.Warn().
				Str("component", "config").
				Str("operation", "load_config").
				Err(loadErr).
				Str("config_path", path).
				Msg("failed to load config file, using defaults")
		}
	}

	cfg.applyEnv()
	return cfg
}

// LoadErr returns the error that made New ignore the user config file.
func (c *Config) LoadErr() error {
	return c.loadErr
}

// Load reads path on top of the defaults. Environment overrides are not
// applied.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := Default()
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.configPath = path
	return cfg, nil
}

// Path returns the file the configuration was loaded from or will be saved to.
func (c *Config) Path() string {
	return c.configPath
}

// Save writes the configuration to its path.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("config has no file path")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to path, creating its directory.
func (c *Config) SaveTo(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err = os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	tmpPath := path + ".tmp"
	if writeErr := os.WriteFile(tmpPath, data, 0600); writeErr != nil {
		return fmt.Errorf("failed to write config file: %w", writeErr)
	}
	if renameErr := os.Rename(tmpPath, path); renameErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename config file: %w", renameErr)
	}
	c.configPath = path
	return nil
}

// Validate reports settings that cannot work.
func (c *Config) Validate() error {
	var errs []error
	switch strings.ToLower(c.Logging.Format) {
	case "", "console", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format %q: want console or json", c.Logging.Format))
	}
	if c.Report.WatermarkOpacity < 0 || c.Report.WatermarkOpacity > 1 {
		errs = append(errs, fmt.Errorf("report.watermark_opacity %v: want a value in [0, 1]", c.Report.WatermarkOpacity))
	}
	if c.Report.Parallel < 0 {
		errs = append(errs, fmt.Errorf("report.parallel %d: must not be negative", c.Report.Parallel))
	}
	if strings.ContainsAny(c.Report.Kind, `/\`) {
		errs = append(errs, fmt.Errorf("report.kind %q: must not contain path separators", c.Report.Kind))
	}
	return errors.Join(errs...)
}

// LayoutOptions returns the layout options for the configured report.
func (c *Config) LayoutOptions() layout.Options {
	opts := layout.DefaultOptions()
	if c.Report.WatermarkOpacity > 0 {
		opts.WatermarkOpacity = c.Report.WatermarkOpacity
	}
	if c.Report.LicenseLine != "" {
		opts.LicenseLine = c.Report.LicenseLine
	}
	return opts
}

// FactorTable loads the configured factor table, or the built-in one.
func (c *Config) FactorTable() (*factors.Table, error) {
	if c.Factors.File == "" {
		return factors.Default(), nil
	}
	return factors.LoadFile(c.Factors.File)
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv(EnvOutputDir); v != "" {
		c.Report.OutputDir = v
	}
	if v := os.Getenv(EnvFactorsFile); v != "" {
		c.Factors.File = v
	}
}
