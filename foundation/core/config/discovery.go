// File: discovery.go
// Title: Configuration File Discovery
// Description: Finds the configuration file when none is given explicitly.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	mdwerror "github.com/msto63/devmon/foundation/core/error"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string // Directories to search for config files
	Filenames  []string // Base filenames to look for (without extension)
	Extensions []string // File extensions to try (.toml, .yaml, .yml)
	EnvPrefix  string   // Environment variable prefix for overrides
	Required   bool     // Whether finding a config file is required
}

// DefaultDiscoveryOptions searches the working directory and the user
// configuration directory for devmon.toml, devmon.yaml or devmon.yml
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "devmon"))
	}
	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"devmon"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  DefaultEnvPrefix,
	}
}

// Discover loads the first configuration file found. Without a file it
// returns the defaults with environment overrides, unless Required is set.
func Discover(options DiscoveryOptions) (*Config, error) {
	path, err := FindConfigFile(options)
	if err == nil {
		cfg, err := LoadWithOptions(path, LoadOptions{Format: FormatAuto, EnvPrefix: options.EnvPrefix})
		if err != nil {
			return nil, mdwerror.Wrap(err, fmt.Sprintf("found config file %s but failed to load", path)).
				WithOperation("config.Discover").
				WithDetail("configPath", path)
		}
		return cfg, nil
	}
	if options.Required {
		return nil, err
	}
	return FromEnv(LoadOptions{EnvPrefix: options.EnvPrefix})
}

// FindConfigFile searches for a configuration file without loading it
func FindConfigFile(options DiscoveryOptions) (string, error) {
	candidates := make([]string, 0, len(options.Paths)*len(options.Filenames)*len(options.Extensions))
	for _, path := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				configPath := filepath.Join(path, filename+ext)
				if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
					return configPath, nil
				}
				candidates = append(candidates, configPath)
			}
		}
	}
	return "", mdwerror.New(fmt.Sprintf("no configuration file found in paths: %s", strings.Join(candidates, ", "))).
		WithCode(mdwerror.CodeMissingConfig).
		WithOperation("config.FindConfigFile").
		WithDetail("searchPaths", candidates)
}
