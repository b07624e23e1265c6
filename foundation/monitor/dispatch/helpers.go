// File: helpers.go
// Title: Dispatcher Helpers
// Description: Chaining rules and fault construction shared by the handlers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package dispatch

import (
	"encoding"
	"reflect"
	"strings"

	"github.com/msto63/devmon/foundation/monitor/coerce"
	"github.com/msto63/devmon/foundation/monitor/fault"
	"github.com/msto63/devmon/foundation/monitor/token"
)

var textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()

// chainable reports whether a member of type t holds an object that further
// command segments can address. Enums, scalars, strings and types parsed
// from text are values, not objects.
func chainable(t reflect.Type) bool {
	if t == nil || coerce.IsEnum(t) || reflect.PointerTo(t).Implements(textUnmarshalerType) {
		return false
	}
	switch t.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Struct, reflect.Map, reflect.Slice, reflect.Array:
		return true
	}
	return false
}

func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

func parseFailure(what string, tokens []token.Token, cause error) *fault.Error {
	f := fault.Syntaxf("Failed to parse %s: %s", what, join(tokens))
	f.Err = cause
	return f
}

func conversionFailure(group token.Group, t reflect.Type, cause error) *fault.Error {
	f := fault.Conversionf("Could not convert %s to %s", group, t)
	f.Err = cause
	if inner, ok := fault.As(cause); ok && len(inner.Valid) > 0 {
		f.Message = inner.Message
		f.Valid = inner.Valid
	}
	return f
}

func join(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = t.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
