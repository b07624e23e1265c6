// File: codes.go
// Title: Error Code Definitions
// Description: Standardized error codes for classifying devmon failures. The
//              monitor codes mirror the recoverable command fault kinds.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-14 v0.2.0: Replaced service codes with monitor command codes

package error

import "strings"

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Monitor command codes
	CodeMonitorSyntax             Code = "MONITOR_SYNTAX"
	CodeMonitorResolution         Code = "MONITOR_RESOLUTION"
	CodeMonitorAmbiguousOverload  Code = "MONITOR_AMBIGUOUS_OVERLOAD"
	CodeMonitorParametersMismatch Code = "MONITOR_PARAMETERS_MISMATCH"
	CodeMonitorConversion         Code = "MONITOR_CONVERSION"
	CodeMonitorAccess             Code = "MONITOR_ACCESS"
	CodeMonitorInvocation         Code = "MONITOR_INVOCATION"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid reports whether the code is one of the predefined codes
func (c Code) IsValid() bool {
	_, ok := codeSeverity[c]
	return ok
}

// Category returns the category prefix of the code
func (c Code) Category() string {
	switch {
	case strings.HasPrefix(string(c), "MONITOR_"):
		return "monitor"
	case strings.HasSuffix(string(c), "_CONFIG") || c == CodeConfigError:
		return "config"
	default:
		return "generic"
	}
}
