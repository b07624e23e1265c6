// File: member.go
// Title: Member Descriptors
// Description: The Member tagged union and its invoke, get and set operations.
//              The closures are captured when the owning type is inspected, so
//              dispatch never walks the type again.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package member

import (
	"fmt"
	"reflect"
	"strings"
)

// Kind identifies the variant of a Member
type Kind int

const (
	KindMethod Kind = iota
	KindField
	KindProperty
	KindIndexer
	KindExtension
)

// String returns the name of the kind
func (k Kind) String() string {
	switch k {
	case KindMethod:
		return "method"
	case KindField:
		return "field"
	case KindProperty:
		return "property"
	case KindIndexer:
		return "indexer"
	case KindExtension:
		return "extension"
	default:
		return "unknown"
	}
}

// Parameter describes one parameter of a method, extension or indexer
type Parameter struct {
	Name        string
	Position    int
	Type        reflect.Type // For variadic parameters, the slice type
	Optional    bool
	Default     interface{}
	Variadic    bool
	Auto        bool
	Description string
}

// IsString reports whether the parameter takes text
func (p Parameter) IsString() bool {
	return p.Type.Kind() == reflect.String
}

// Member is one resolvable member of a type
type Member struct {
	Kind        Kind
	Name        string       // Command name
	GoName      string       // Underlying Go method or field name
	Owner       reflect.Type // Type the member was resolved on
	Type        reflect.Type // Value type; the first result for methods, nil if none
	Parameters  []Parameter
	Readable    bool
	Writable    bool
	Pseudo      bool // Select or ForEach synthesized for an enumerable type
	Description string

	invoke func(target reflect.Value, args []reflect.Value) (interface{}, error)
	get    func(target reflect.Value, index []reflect.Value) (interface{}, error)
	set    func(target reflect.Value, index []reflect.Value, value reflect.Value) error
	chain  func(target reflect.Value) (interface{}, error)
}

// Signature returns the full signature used for deduplication and messages,
// e.g. "Configure(int, bool)".
func (m *Member) Signature() string {
	types := make([]string, len(m.Parameters))
	for i, p := range m.Parameters {
		if p.Variadic {
			types[i] = "..." + p.Type.Elem().String()
		} else {
			types[i] = p.Type.String()
		}
	}
	switch m.Kind {
	case KindField, KindProperty:
		return m.Name
	case KindIndexer:
		return m.Name + "[" + strings.Join(types, ", ") + "]"
	default:
		return m.Name + "(" + strings.Join(types, ", ") + ")"
	}
}

// StringParameterCount returns the number of text parameters. Overload
// ordering prefers candidates with fewer of them.
func (m *Member) StringParameterCount() int {
	n := 0
	for _, p := range m.Parameters {
		if p.IsString() {
			n++
		}
	}
	return n
}

// IsVariadic reports whether the last parameter is variadic
func (m *Member) IsVariadic() bool {
	return len(m.Parameters) > 0 && m.Parameters[len(m.Parameters)-1].Variadic
}

// Invoke calls a method or extension on target. args holds one value per
// parameter; a variadic tail is passed as a single slice. Errors returned by
// the member are passed through unchanged.
func (m *Member) Invoke(target interface{}, args []interface{}) (interface{}, error) {
	if m.invoke == nil {
		return nil, fmt.Errorf("%s %s cannot be invoked", m.Kind, m.Name)
	}
	if len(args) != len(m.Parameters) {
		return nil, fmt.Errorf("%s expects %d arguments, got %d", m.Signature(), len(m.Parameters), len(args))
	}
	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		in[i] = valueOf(arg, m.Parameters[i].Type)
	}
	return m.invoke(reflect.ValueOf(target), in)
}

// Get reads a field, property or indexer. index holds one value per index
// parameter.
func (m *Member) Get(target interface{}, index ...interface{}) (interface{}, error) {
	if m.get == nil || !m.Readable {
		return nil, fmt.Errorf("%s %s is not readable", m.Kind, m.Name)
	}
	return m.get(reflect.ValueOf(target), m.indexValues(index))
}

// Set writes a field, property or indexer
func (m *Member) Set(target interface{}, value interface{}, index ...interface{}) error {
	if m.set == nil || !m.Writable {
		return fmt.Errorf("%s %s is not writable", m.Kind, m.Name)
	}
	return m.set(reflect.ValueOf(target), m.indexValues(index), valueOf(value, m.Type))
}

// Chain reads the member for further dispatch. Struct-valued fields of an
// addressable owner are returned by pointer so chained writes reach the owner.
func (m *Member) Chain(target interface{}) (interface{}, error) {
	if m.chain != nil {
		return m.chain(reflect.ValueOf(target))
	}
	return m.Get(target)
}

func (m *Member) indexValues(index []interface{}) []reflect.Value {
	values := make([]reflect.Value, len(index))
	for i, v := range index {
		var t reflect.Type
		if i < len(m.Parameters) {
			t = m.Parameters[i].Type
		}
		values[i] = valueOf(v, t)
	}
	return values
}

// valueOf converts an argument to a reflect.Value of type t. nil becomes the
// zero value; named types convertible to t are converted.
func valueOf(arg interface{}, t reflect.Type) reflect.Value {
	if arg == nil {
		if t == nil {
			return reflect.Value{}
		}
		return reflect.Zero(t)
	}
	v := reflect.ValueOf(arg)
	if t != nil && !v.Type().AssignableTo(t) && v.Type().ConvertibleTo(t) {
		return v.Convert(t)
	}
	return v
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// splitResults maps a call's results onto (value, error). Nil pointers and
// interfaces become a nil value.
func splitResults(out []reflect.Value) (interface{}, error) {
	if n := len(out); n > 0 && out[n-1].Type() == errorType {
		if !out[n-1].IsNil() {
			return nil, out[n-1].Interface().(error)
		}
		out = out[:n-1]
	}
	if len(out) == 0 {
		return nil, nil
	}
	v := out[0]
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return nil, nil
		}
	}
	return v.Interface(), nil
}

// resultType returns the first non-error result type of fn, or nil
func resultType(fn reflect.Type) reflect.Type {
	for i := 0; i < fn.NumOut(); i++ {
		if fn.Out(i) != errorType {
			return fn.Out(i)
		}
	}
	return nil
}

// validResults reports whether fn returns nothing, T, error or (T, error)
func validResults(fn reflect.Type) bool {
	switch fn.NumOut() {
	case 0, 1:
		return true
	case 2:
		return fn.Out(1) == errorType && fn.Out(0) != errorType
	default:
		return false
	}
}
