// File: enum.go
// Title: Enumerations
// Description: Interfaces named integer types implement to behave as enums.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package coerce

import (
	"reflect"
)

// EnumValue is one named value of an enum
type EnumValue struct {
	Name  string
	Value int64
}

// Enum is implemented, on the value receiver, by integer types with a closed
// set of named values.
type Enum interface {
	EnumValues() []EnumValue
}

// Flags marks an enum whose values combine bitwise, so numbers outside the
// declared set are accepted.
type Flags interface {
	Enum
	IsFlags() bool
}

var enumType = reflect.TypeOf((*Enum)(nil)).Elem()

// EnumValuesOf returns the declared values of t, or nil when t is not an enum
func EnumValuesOf(t reflect.Type) []EnumValue {
	if t == nil || !t.Implements(enumType) || !isInteger(t.Kind()) {
		return nil
	}
	return reflect.Zero(t).Interface().(Enum).EnumValues()
}

// EnumNames returns the declared names of t in declaration order
func EnumNames(t reflect.Type) []string {
	values := EnumValuesOf(t)
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = v.Name
	}
	return names
}

// IsEnum reports whether t is an enum type
func IsEnum(t reflect.Type) bool {
	return EnumValuesOf(t) != nil
}

func isFlags(t reflect.Type) bool {
	f, ok := reflect.Zero(t).Interface().(Flags)
	return ok && f.IsFlags()
}

func isInteger(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}
