// File: level.go
// Title: Log Level Definitions
// Description: Log levels, their textual forms and parsing.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with standard log levels
// - 2026-10-14 v0.2.0: Table-driven names, trace level, no color codes

package log

import (
	"strings"
)

// Level represents the importance level of a log message
type Level int

const (
	LevelTrace Level = iota // dispatch steps of a single command
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
	LevelAudit // logged regardless of the minimum level
)

// levelNames holds the long name, the short tag and accepted aliases per level
var levelNames = [...]struct {
	long, short string
	aliases     []string
}{
	LevelTrace: {"trace", "TRC", []string{"trc"}},
	LevelDebug: {"debug", "DBG", []string{"dbg"}},
	LevelInfo:  {"info", "INF", []string{"inf", "information"}},
	LevelWarn:  {"warn", "WRN", []string{"wrn", "warning"}},
	LevelError: {"error", "ERR", []string{"err"}},
	LevelFatal: {"fatal", "FTL", []string{"ftl"}},
	LevelAudit: {"audit", "AUD", []string{"aud"}},
}

func (l Level) valid() bool {
	return l >= LevelTrace && int(l) < len(levelNames)
}

// String returns the lower-case name used in configuration files
func (l Level) String() string {
	if !l.valid() {
		return "unknown"
	}
	return levelNames[l].long
}

// ShortString returns the three-letter tag printed by the text formatter
func (l Level) ShortString() string {
	if !l.valid() {
		return "???"
	}
	return levelNames[l].short
}

// ShouldLog reports whether a message at l passes minLevel
func (l Level) ShouldLog(minLevel Level) bool {
	return l == LevelAudit || l >= minLevel
}

// ParseLevel accepts a level name, its tag or an alias, ignoring case
func ParseLevel(level string) (Level, error) {
	s := strings.ToLower(strings.TrimSpace(level))
	for l, names := range levelNames {
		if s == names.long || s == strings.ToLower(names.short) {
			return Level(l), nil
		}
		for _, alias := range names.aliases {
			if s == alias {
				return Level(l), nil
			}
		}
	}
	return LevelInfo, &ParseError{Input: level, Type: "level"}
}

// ParseError reports an unparsable level or format
type ParseError struct {
	Input string
	Type  string
}

func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}

// DefaultLevel is the level of New loggers
func DefaultLevel() Level {
	return LevelWarn
}
