// File: env.go
// Title: Environment Overrides
// Description: Applies <PREFIX>_<SECTION>_<KEY> environment variables to a
//              loaded configuration.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package config

import (
	"strconv"
	"strings"

	mdwerror "github.com/msto63/devmon/foundation/core/error"
)

// EnvKey returns the environment variable that overrides key, e.g.
// EnvKey("DEVMON", "monitor.number_mode") is DEVMON_MONITOR_NUMBER_MODE.
func EnvKey(prefix, key string) string {
	name := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	if prefix == "" {
		return name
	}
	return strings.ToUpper(prefix) + "_" + name
}

// ApplyEnv overrides values from the environment. Usings are comma separated.
func (c *Config) ApplyEnv(prefix string, lookup func(string) (string, bool)) error {
	get := func(key string) (string, bool) {
		v, ok := lookup(EnvKey(prefix, key))
		return strings.TrimSpace(v), ok
	}

	if v, ok := get("monitor.number_mode"); ok {
		c.Monitor.NumberMode = v
	}
	if v, ok := get("monitor.zero_pad"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return envError(prefix, "monitor.zero_pad", v, err)
		}
		c.Monitor.ZeroPad = b
	}
	if v, ok := get("monitor.max_chain_depth"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return envError(prefix, "monitor.max_chain_depth", v, err)
		}
		c.Monitor.MaxChainDepth = n
	}
	if v, ok := get("monitor.usings"); ok {
		c.Monitor.Usings = nil
		for _, using := range strings.Split(v, ",") {
			if using = strings.TrimSpace(using); using != "" {
				c.Monitor.Usings = append(c.Monitor.Usings, using)
			}
		}
	}
	if v, ok := get("log.level"); ok {
		c.Log.Level = v
	}
	if v, ok := get("log.format"); ok {
		c.Log.Format = v
	}
	return nil
}

func envError(prefix, key, value string, err error) error {
	return mdwerror.Wrap(err, "invalid environment override").
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("config.ApplyEnv").
		WithDetail("variable", EnvKey(prefix, key)).
		WithDetail("value", value)
}
