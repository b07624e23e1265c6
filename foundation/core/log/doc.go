// Package log provides structured, leveled logging for devmon.
//
// Package: log
// Title: devmon Structured Logging
// Description: A small structured logger with persistent context fields, text
//              and JSON output and operation timers. Components derive their own
//              logger with WithField("component", ...) from the process default.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2026-10-14 v0.2.0: Dropped async output and console/logfmt formats
//
// Usage:
//
//	import mdwlog "github.com/msto63/devmon/foundation/core/log"
//
//	logger := mdwlog.GetDefault().WithField("component", "dispatch")
//	logger.Debug("member resolved", mdwlog.Fields{"member": "Configure"})
//
//	timer := logger.StartTimer("execute")
//	defer timer.Stop()
package log
