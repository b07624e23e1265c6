// Package error provides structured error handling for devmon.
//
// Package: error
// Title: devmon Error Handling Framework
// Description: Structured errors carrying a code, a severity, free-form details
//              and the failing operation. Configuration loading and the monitor
//              engine report failures through this type; the recoverable command
//              faults in foundation/monitor/fault map onto its codes.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-14 v0.2.0: Reduced to the monitor code set, dropped localization
//
// Usage:
//
//	import mdwerror "github.com/msto63/devmon/foundation/core/error"
//
//	err := mdwerror.New("unsupported config format").
//		WithCode(mdwerror.CodeInvalidConfig).
//		WithDetail("path", path).
//		WithOperation("config.Load")
//
//	if mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
//		// fall back to defaults
//	}
package error
