// Package config loads handeval settings from an HCL file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// DefaultFile is the config file looked up when none is given
const DefaultFile = "handeval.hcl"

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config represents the complete handeval configuration
type Config struct {
	Output  *OutputSettings  `hcl:"output,block"`
	Logging *LoggingSettings `hcl:"logging,block"`
	Batch   *BatchSettings   `hcl:"batch,block"`
}

// OutputSettings controls how evaluations are rendered
type OutputSettings struct {
	Format string `hcl:"format,optional"`
	Color  *bool  `hcl:"color,optional"`
}

// LoggingSettings controls the logger
type LoggingSettings struct {
	Level string `hcl:"level,optional"`
}

// BatchSettings controls batch evaluation
type BatchSettings struct {
	Workers int `hcl:"workers,optional"`
}

// Default returns the default configuration
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source, applies defaults and validates the result
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Output == nil {
		c.Output = &OutputSettings{}
	}
	if c.Output.Format == "" {
		c.Output.Format = FormatText
	}
	if c.Output.Color == nil {
		color := true
		c.Output.Color = &color
	}

	if c.Logging == nil {
		c.Logging = &LoggingSettings{}
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	if c.Batch == nil {
		c.Batch = &BatchSettings{}
	}
	if c.Batch.Workers == 0 {
		c.Batch.Workers = 4
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("invalid output format %q (want %q or %q)", c.Output.Format, FormatText, FormatJSON)
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level %q", c.Logging.Level)
	}

	if c.Batch.Workers < 1 || c.Batch.Workers > 256 {
		return fmt.Errorf("batch workers must be between 1 and 256, got %d", c.Batch.Workers)
	}
	return nil
}

// ColorEnabled reports whether styled output is wanted
func (c *Config) ColorEnabled() bool {
	return c.Output.Color == nil || *c.Output.Color
}
