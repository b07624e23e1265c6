// File: number.go
// Title: Number Modes
// Description: How integer results are printed.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package render

import (
	"fmt"
	"strconv"
	"strings"
)

// NumberMode selects the notation of integer results
type NumberMode int

const (
	Hexadecimal NumberMode = iota
	Decimal
	Both
)

// String returns the configuration name of the mode
func (m NumberMode) String() string {
	switch m {
	case Hexadecimal:
		return "hex"
	case Decimal:
		return "decimal"
	case Both:
		return "both"
	default:
		return "unknown"
	}
}

// ParseNumberMode parses "hex", "decimal" or "both"
func ParseNumberMode(s string) (NumberMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hex", "hexadecimal":
		return Hexadecimal, nil
	case "decimal", "dec":
		return Decimal, nil
	case "both":
		return Both, nil
	default:
		return Hexadecimal, fmt.Errorf("invalid number mode %q", s)
	}
}

// integer reports whether v has an exact predeclared integer type and
// returns its bits masked to the type size together with the size in bytes.
func integer(v interface{}) (bits uint64, size int, ok bool) {
	switch n := v.(type) {
	case int:
		return uint64(n), strconv.IntSize / 8, true
	case int8:
		return uint64(uint8(n)), 1, true
	case int16:
		return uint64(uint16(n)), 2, true
	case int32:
		return uint64(uint32(n)), 4, true
	case int64:
		return uint64(n), 8, true
	case uint:
		return uint64(n), strconv.IntSize / 8, true
	case uint8:
		return uint64(n), 1, true
	case uint16:
		return uint64(n), 2, true
	case uint32:
		return uint64(n), 4, true
	case uint64:
		return n, 8, true
	}
	return 0, 0, false
}

func (r *Renderer) number(v interface{}, bits uint64, size int) string {
	hex := fmt.Sprintf("0x%X", bits)
	if r.ZeroPad {
		hex = fmt.Sprintf("0x%0*X", 2*size, bits)
	}
	switch r.Mode {
	case Decimal:
		return fmt.Sprintf("%d", v)
	case Both:
		return fmt.Sprintf("%s (%d)", hex, v)
	default:
		return hex
	}
}
