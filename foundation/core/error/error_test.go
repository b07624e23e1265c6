// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes and severity.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2026-10-14 v0.2.0: Adapted to the monitor code set

package error

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New("test error message")

	if err.Error() != "test error message" {
		t.Errorf("Error() = %q, want %q", err.Error(), "test error message")
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		message  string
		wantNil  bool
		wantMsg  string
		wantCode Code
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:     "wrap standard error",
			err:      errors.New("original error"),
			message:  "wrapper message",
			wantMsg:  "wrapper message: original error",
			wantCode: CodeUnknown,
		},
		{
			name:     "wrap devmon error keeps code",
			err:      New("bad token").WithCode(CodeMonitorSyntax),
			message:  "command failed",
			wantMsg:  "command failed: bad token",
			wantCode: CodeMonitorSyntax,
		},
		{
			name:     "wrap through fmt.Errorf keeps code",
			err:      fmt.Errorf("outer: %w", New("missing").WithCode(CodeMissingConfig)),
			message:  "load",
			wantMsg:  "load: outer: missing",
			wantCode: CodeMissingConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := Wrap(tt.err, tt.message)
			if tt.wantNil {
				if wrapped != nil {
					t.Errorf("Wrap() = %v, want nil", wrapped)
				}
				return
			}
			if wrapped.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", wrapped.Error(), tt.wantMsg)
			}
			if wrapped.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", wrapped.Code(), tt.wantCode)
			}
			if !errors.Is(wrapped, tt.err) {
				t.Error("errors.Is() should find the wrapped error")
			}
		})
	}
}

func TestWrapTruncatesDeepChains(t *testing.T) {
	err := error(New("root"))
	for i := 0; i < MaxErrorChainDepth+2; i++ {
		err = Wrap(err, fmt.Sprintf("level %d", i))
	}

	if chainDepth(err) > MaxErrorChainDepth+1 {
		t.Errorf("chain depth = %d, want <= %d", chainDepth(err), MaxErrorChainDepth+1)
	}
	if !strings.Contains(err.Error(), "root") {
		t.Errorf("Error() = %q, should mention the root cause", err.Error())
	}
}

func TestWithCodeAdjustsSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeMonitorResolution, SeverityLow},
		{CodeMonitorParametersMismatch, SeverityLow},
		{CodeInvalidConfig, SeverityHigh},
		{CodeInternal, SeverityCritical},
		{CodeMonitorInvocation, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			err := New("x").WithCode(tt.code)
			if err.Severity() != tt.want {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tt.want)
			}
		})
	}

	explicit := New("x").WithSeverity(SeverityCritical).WithCode(CodeMonitorSyntax)
	if explicit.Severity() != SeverityCritical {
		t.Errorf("explicit severity was overridden: %v", explicit.Severity())
	}
}

func TestHasCodeAndGetCode(t *testing.T) {
	base := New("no such device").WithCode(CodeMonitorResolution)
	wrapped := fmt.Errorf("exec: %w", base)

	if !HasCode(wrapped, CodeMonitorResolution) {
		t.Error("HasCode() = false, want true")
	}
	if HasCode(wrapped, CodeMonitorSyntax) {
		t.Error("HasCode() = true for a foreign code")
	}
	if got := GetCode(wrapped); got != CodeMonitorResolution {
		t.Errorf("GetCode() = %v, want %v", got, CodeMonitorResolution)
	}
	if got := GetCode(errors.New("plain")); got != CodeUnknown {
		t.Errorf("GetCode(plain) = %v, want %v", got, CodeUnknown)
	}
}

func TestFields(t *testing.T) {
	err := New("bad value").
		WithCode(CodeInvalidConfig).
		WithOperation("config.Load").
		WithDetail("key", "monitor.number_mode")

	fields := err.Fields()
	want := map[string]interface{}{
		"error_code":     "INVALID_CONFIG",
		"error_severity": "high",
		"operation":      "config.Load",
		"detail_key":     "monitor.number_mode",
		"error":          "bad value",
	}
	for k, v := range want {
		if fields[k] != v {
			t.Errorf("Fields()[%q] = %v, want %v", k, fields[k], v)
		}
	}
}

func TestCodeCategory(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeMonitorAccess, "monitor"},
		{CodeInvalidConfig, "config"},
		{CodeConfigError, "config"},
		{CodeNotFound, "generic"},
	}
	for _, tt := range tests {
		if got := tt.code.Category(); got != tt.want {
			t.Errorf("%s.Category() = %q, want %q", tt.code, got, tt.want)
		}
		if !tt.code.IsValid() {
			t.Errorf("%s.IsValid() = false", tt.code)
		}
	}
	if Code("BOGUS").IsValid() {
		t.Error("IsValid() = true for an unknown code")
	}
}
