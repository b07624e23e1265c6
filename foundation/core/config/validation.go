// File: validation.go
// Title: Configuration Validation
// Description: Checks a configuration for values the monitor cannot use.
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
	"strings"

	mdwerror "github.com/msto63/devmon/foundation/core/error"
	mdwlog "github.com/msto63/devmon/foundation/core/log"
	mdwstringx "github.com/msto63/devmon/foundation/utils/stringx"
)

// MaxChainDepthLimit is the largest accepted monitor.max_chain_depth
const MaxChainDepthLimit = 1024

// NumberModes lists the accepted monitor.number_mode values
var NumberModes = []string{"hex", "hexadecimal", "decimal", "dec", "both"}

// ValidationResult contains the results of configuration validation
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Err returns nil for a valid result, otherwise an INVALID_CONFIG error
// listing every problem
func (r *ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return mdwerror.New("invalid configuration: "+strings.Join(r.Errors, "; ")).
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("errors", r.Errors)
}

// Validate validates the configuration
func (c *Config) Validate() *ValidationResult {
	result := &ValidationResult{Valid: true, Errors: make([]string, 0)}
	fail := func(format string, args ...interface{}) {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf(format, args...))
	}

	if !contains(NumberModes, strings.ToLower(c.Monitor.NumberMode)) {
		fail("monitor.number_mode %q is not one of %s", c.Monitor.NumberMode, strings.Join(NumberModes, ", "))
	}
	if c.Monitor.MaxChainDepth < 0 || c.Monitor.MaxChainDepth > MaxChainDepthLimit {
		fail("monitor.max_chain_depth %d is outside [0, %d]", c.Monitor.MaxChainDepth, MaxChainDepthLimit)
	}
	for i, using := range c.Monitor.Usings {
		if mdwstringx.IsBlank(using) || !strings.HasSuffix(using, ".") {
			fail("monitor.usings[%d] %q must be a path ending in '.'", i, using)
		}
	}
	if _, err := mdwlog.ParseLevel(c.Log.Level); err != nil {
		fail("log.level: %v", err)
	}
	if _, err := mdwlog.ParseFormat(c.Log.Format); err != nil {
		fail("log.format: %v", err)
	}
	return result
}

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}
