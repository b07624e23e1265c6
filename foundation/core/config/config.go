// File: config.go
// Title: Configuration Loading
// Description: Loads the devmon configuration from TOML or YAML files and
//              applies environment overrides on top of the defaults.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/devmon/foundation/core/error"
	mdwstringx "github.com/msto63/devmon/foundation/utils/stringx"
)

// DefaultEnvPrefix prefixes environment overrides, e.g. DEVMON_LOG_LEVEL
const DefaultEnvPrefix = "DEVMON"

// Format represents the configuration file format
type Format int

const (
	// FormatAuto auto-detects format from file extension (default)
	FormatAuto Format = iota

	// FormatTOML represents TOML format
	FormatTOML

	// FormatYAML represents YAML format
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config is the complete devmon configuration
type Config struct {
	Monitor MonitorConfig `toml:"monitor" yaml:"monitor"`
	Log     LogConfig     `toml:"log" yaml:"log"`

	// Source is the file the configuration was read from, if any
	Source string `toml:"-" yaml:"-"`
}

// MonitorConfig configures command execution and rendering
type MonitorConfig struct {
	NumberMode    string   `toml:"number_mode" yaml:"number_mode"`         // hex, decimal or both
	ZeroPad       bool     `toml:"zero_pad" yaml:"zero_pad"`               // Pad hex numbers to their type width
	MaxChainDepth int      `toml:"max_chain_depth" yaml:"max_chain_depth"` // 0 selects the built-in limit
	Usings        []string `toml:"usings" yaml:"usings"`                   // Prefixes retried on a device miss
}

// LogConfig configures the process logger
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format    Format                      // File format (default: auto-detect)
	EnvPrefix string                      // Environment variable prefix (default: none)
	LookupEnv func(string) (string, bool) // Environment source (default: os.LookupEnv)
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Monitor: MonitorConfig{
			NumberMode: "hex",
			Usings:     []string{"sysbus."},
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load loads configuration from a file with DEVMON_ overrides
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{
		Format:    FormatAuto,
		EnvPrefix: DefaultEnvPrefix,
	})
}

// LoadWithOptions loads configuration from a file with custom options
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	if mdwstringx.IsBlank(filePath) {
		return nil, mdwerror.New("config file path cannot be empty").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("config.LoadWithOptions")
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		code := mdwerror.CodeConfigError
		if os.IsNotExist(err) {
			code = mdwerror.CodeMissingConfig
		}
		return nil, mdwerror.Wrap(err, "failed to read config file").
			WithCode(code).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	cfg, err := decode(content, format)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config file").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath).
			WithDetail("format", format.String())
	}
	cfg.Source = filePath

	if err := cfg.finish(options); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromString loads configuration from a string with specified format
func LoadFromString(content string, format Format) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}
	cfg, err := decode([]byte(content), format)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config from string").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.LoadFromString").
			WithDetail("format", format.String())
	}
	if err := cfg.finish(LoadOptions{}); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromEnv returns the defaults with environment overrides applied
func FromEnv(options LoadOptions) (*Config, error) {
	if options.EnvPrefix == "" {
		options.EnvPrefix = DefaultEnvPrefix
	}
	cfg := Default()
	if err := cfg.finish(options); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) finish(options LoadOptions) error {
	if options.EnvPrefix != "" {
		lookup := options.LookupEnv
		if lookup == nil {
			lookup = os.LookupEnv
		}
		if err := c.ApplyEnv(options.EnvPrefix, lookup); err != nil {
			return err
		}
	}
	return c.Validate().Err()
}

// detectFormat determines the configuration format from file extension
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// decode parses content over the defaults, so absent keys keep their
// default values
func decode(content []byte, format Format) (*Config, error) {
	cfg := Default()

	switch format {
	case FormatTOML:
		md, err := toml.NewDecoder(bytes.NewReader(content)).Decode(cfg)
		if err != nil {
			return nil, mdwerror.Wrap(err, "TOML parse error").
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.decode")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, mdwerror.New(fmt.Sprintf("unknown configuration key %s", undecoded[0])).
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.decode")
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, mdwerror.Wrap(err, "YAML parse error").
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.decode")
		}
	default:
		return nil, mdwerror.New(fmt.Sprintf("unsupported format: %s", format)).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("config.decode").
			WithDetail("format", format.String())
	}
	return cfg, nil
}
