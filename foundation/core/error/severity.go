// File: severity.go
// Title: Error Severity Levels
// Description: Severity levels used to prioritize errors in logs.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-14 v0.2.0: Severity table for monitor codes

package error

// Severity ranks errors from user mistakes to fatal failures
type Severity int

const (
	SeverityLow      Severity = iota // the command was wrong, e.g. a mistyped device name
	SeverityMedium                   // a member failed while running
	SeverityHigh                     // the tool is misconfigured
	SeverityCritical                 // the process cannot continue
)

var severityNames = [...]string{"low", "medium", "high", "critical"}

// codeSeverity is the default severity of every known code
var codeSeverity = map[Code]Severity{
	CodeUnknown:                   SeverityMedium,
	CodeInternal:                  SeverityCritical,
	CodeNotFound:                  SeverityLow,
	CodeInvalidInput:              SeverityLow,
	CodeMonitorSyntax:             SeverityLow,
	CodeMonitorResolution:         SeverityLow,
	CodeMonitorAmbiguousOverload:  SeverityLow,
	CodeMonitorParametersMismatch: SeverityLow,
	CodeMonitorConversion:         SeverityLow,
	CodeMonitorAccess:             SeverityLow,
	CodeMonitorInvocation:         SeverityMedium,
	CodeConfigError:               SeverityHigh,
	CodeMissingConfig:             SeverityHigh,
	CodeInvalidConfig:             SeverityHigh,
}

func (s Severity) String() string {
	if s < SeverityLow || int(s) >= len(severityNames) {
		return "unknown"
	}
	return severityNames[s]
}

// ShouldAlert reports whether errors of this severity are logged as errors
// rather than warnings
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode returns the default severity of code; unknown codes
// are medium
func GetSeverityFromCode(code Code) Severity {
	if s, ok := codeSeverity[code]; ok {
		return s
	}
	return SeverityMedium
}
