// File: converter.go
// Title: Value Conversion
// Description: Converts a single token or value into a target Go type.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package coerce

import (
	"encoding"
	"math"
	"reflect"
	"strconv"
	"time"

	"github.com/msto63/devmon/foundation/monitor/fault"
	"github.com/msto63/devmon/foundation/monitor/token"
)

// Namespace resolves live objects by name. Converters consult their namespaces
// in order and take the first object assignable to the target type.
type Namespace interface {
	Lookup(name string) (interface{}, bool)
}

// NamespaceFunc adapts a function to Namespace
type NamespaceFunc func(name string) (interface{}, bool)

// Lookup calls f
func (f NamespaceFunc) Lookup(name string) (interface{}, bool) {
	return f(name)
}

// Converter converts tokens to typed values
type Converter struct {
	namespaces []Namespace
}

// New creates a converter that resolves object names through namespaces, in
// order: peripherals, peripheral groups, host interfaces, externals.
func New(namespaces ...Namespace) *Converter {
	return &Converter{namespaces: namespaces}
}

var (
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
	durationType        = reflect.TypeOf(time.Duration(0))
)

// Convert converts one token into target
func (c *Converter) Convert(tok token.Token, target reflect.Type) (interface{}, error) {
	switch tok.Kind {
	case token.Variable:
		return nil, fault.Conversionf("Variable $%s was not expanded", tok.Text)
	case token.LeftBrace, token.RightBrace, token.Comma, token.Equality:
		return nil, fault.Conversionf("Unexpected %q where a value of type %s was expected", tok.Text, target)
	}
	return c.ConvertValue(tok.Value(), target)
}

// ConvertValue converts a token payload (string, int64, uint64, float64, bool
// or nil) into target.
func (c *Converter) ConvertValue(value interface{}, target reflect.Type) (interface{}, error) {
	if value == nil {
		if Nullable(target) {
			return reflect.Zero(target).Interface(), nil
		}
		return nil, fault.Conversionf("null cannot be converted to %s", target)
	}

	vt := reflect.TypeOf(value)
	if vt.Kind() == reflect.Bool && !acceptsBool(target) {
		return nil, fault.Conversionf("Could not convert %v to %s", value, target)
	}
	if vt.AssignableTo(target) {
		return value, nil
	}

	if name, ok := value.(string); ok && mayHoldObject(target) {
		for _, ns := range c.namespaces {
			if obj, found := ns.Lookup(name); found && obj != nil && reflect.TypeOf(obj).AssignableTo(target) {
				return obj, nil
			}
		}
	}

	if IsEnum(target) {
		return convertEnum(value, target)
	}

	if target.Kind() == reflect.Ptr {
		inner, err := c.ConvertValue(value, target.Elem())
		if err != nil {
			return nil, err
		}
		p := reflect.New(target.Elem())
		p.Elem().Set(reflect.ValueOf(inner))
		return p.Interface(), nil
	}

	return parse(value, target)
}

// Nullable reports whether null converts to t
func Nullable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
		return true
	}
	return false
}

func acceptsBool(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool:
		return true
	case reflect.Ptr:
		return t.Elem().Kind() == reflect.Bool
	case reflect.Interface:
		return t.NumMethod() == 0
	}
	return false
}

func mayHoldObject(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Struct, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	}
	return false
}

func convertEnum(value interface{}, t reflect.Type) (interface{}, error) {
	values := EnumValuesOf(t)
	switch v := value.(type) {
	case string:
		for _, ev := range values {
			if ev.Name == v {
				return integerOf(ev.Value, t)
			}
		}
	case int64:
		if declared(values, v) || isFlags(t) {
			if out, err := integerOf(v, t); err == nil {
				return out, nil
			}
		}
	case uint64:
		if v <= math.MaxInt64 && (declared(values, int64(v)) || isFlags(t)) {
			if out, err := integerOf(int64(v), t); err == nil {
				return out, nil
			}
		}
	}
	return nil, fault.EnumConversion(value, t, EnumNames(t))
}

func declared(values []EnumValue, n int64) bool {
	for _, ev := range values {
		if ev.Value == n {
			return true
		}
	}
	return false
}

func integerOf(n int64, t reflect.Type) (interface{}, error) {
	rv := reflect.New(t).Elem()
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if rv.OverflowInt(n) {
			return nil, fault.Conversionf("Value %d is out of range for %s", n, t)
		}
		rv.SetInt(n)
	default:
		if n < 0 || rv.OverflowUint(uint64(n)) {
			return nil, fault.Conversionf("Value %d is out of range for %s", n, t)
		}
		rv.SetUint(uint64(n))
	}
	return rv.Interface(), nil
}

func conversionFailed(value interface{}, t reflect.Type) error {
	if s, ok := value.(string); ok {
		return fault.Conversionf("Could not convert %q to %s", s, t)
	}
	return fault.Conversionf("Could not convert %v to %s", value, t)
}

// parse is the generic conversion for everything the earlier rules missed
func parse(value interface{}, t reflect.Type) (interface{}, error) {
	if s, ok := value.(string); ok {
		if reflect.PointerTo(t).Implements(textUnmarshalerType) {
			p := reflect.New(t)
			if err := p.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(s)); err != nil {
				return nil, &fault.Error{Kind: fault.KindConversion, Message: conversionFailed(s, t).Error(), Err: err}
			}
			return p.Elem().Interface(), nil
		}
		if t == durationType {
			d, err := time.ParseDuration(s)
			if err != nil {
				return nil, conversionFailed(s, t)
			}
			return d, nil
		}
	}

	rv := reflect.New(t).Elem()
	switch t.Kind() {
	case reflect.Bool:
		s, ok := value.(string)
		if !ok {
			return nil, conversionFailed(value, t)
		}
		b, err := strconv.ParseBool(s)
		if err != nil {
			return nil, conversionFailed(value, t)
		}
		rv.SetBool(b)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, ok := toInt64(value, t.Bits())
		if !ok || rv.OverflowInt(n) {
			return nil, conversionFailed(value, t)
		}
		rv.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, ok := toUint64(value, t.Bits())
		if !ok || rv.OverflowUint(n) {
			return nil, conversionFailed(value, t)
		}
		rv.SetUint(n)

	case reflect.Float32, reflect.Float64:
		f, ok := toFloat64(value, t.Bits())
		if !ok || rv.OverflowFloat(f) {
			return nil, conversionFailed(value, t)
		}
		rv.SetFloat(f)

	case reflect.String:
		s, ok := value.(string)
		if !ok {
			return nil, conversionFailed(value, t)
		}
		rv.SetString(s)

	case reflect.Slice:
		s, ok := value.(string)
		if !ok || t.Elem().Kind() != reflect.Uint8 {
			return nil, conversionFailed(value, t)
		}
		rv.SetBytes([]byte(s))

	default:
		return nil, conversionFailed(value, t)
	}
	return rv.Interface(), nil
}

func toInt64(value interface{}, bits int) (int64, bool) {
	switch v := value.(type) {
	case int64:
		return v, true
	case uint64:
		return int64(v), v <= math.MaxInt64
	case float64:
		if v != math.Trunc(v) || v < math.MinInt64 || v >= math.MaxInt64 {
			return 0, false
		}
		return int64(v), true
	case string:
		n, err := strconv.ParseInt(v, 0, bits)
		return n, err == nil
	}
	return 0, false
}

func toUint64(value interface{}, bits int) (uint64, bool) {
	switch v := value.(type) {
	case int64:
		return uint64(v), v >= 0
	case uint64:
		return v, true
	case float64:
		if v != math.Trunc(v) || v < 0 || v >= math.MaxUint64 {
			return 0, false
		}
		return uint64(v), true
	case string:
		n, err := strconv.ParseUint(v, 0, bits)
		return n, err == nil
	}
	return 0, false
}

func toFloat64(value interface{}, bits int) (float64, bool) {
	switch v := value.(type) {
	case int64:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float64:
		return v, true
	case string:
		f, err := strconv.ParseFloat(v, bits)
		return f, err == nil
	}
	return 0, false
}
