// File: doc.go
// Title: Configuration Package Documentation
// Description: Typed devmon configuration with TOML and YAML files,
//              environment overrides and validation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

/*
Package config loads the devmon configuration.

Package: config
Title: devmon Configuration
Description: The configuration is read from a TOML or YAML file, chosen by
             extension (TOML when in doubt), decoded over the defaults and
             then overridden from DEVMON_* environment variables. Unknown
             keys and invalid values are rejected with INVALID_CONFIG errors.
Author: msto63
Version: v0.1.0
Created: 2026-10-14
Modified: 2026-10-14

Change History:
- 2026-10-14 v0.1.0: Initial implementation

Keys:

	[monitor]
	number_mode     = "hex"        # hex, decimal or both
	zero_pad        = false        # pad hex numbers to twice their byte size
	max_chain_depth = 0            # 0 selects the built-in limit
	usings          = ["sysbus."]  # prefixes retried when a device is not found

	[log]
	level  = "info"                # trace, debug, info, warn, error
	format = "text"                # text or json

Environment:

	DEVMON_MONITOR_NUMBER_MODE=decimal
	DEVMON_MONITOR_USINGS=sysbus.,soc.
	DEVMON_LOG_LEVEL=debug

Example:

	cfg, err := config.Load("devmon.toml")
	if err != nil {
	    return err
	}
	mode := cfg.Monitor.NumberMode
*/
package config
