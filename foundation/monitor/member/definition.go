// File: definition.go
// Title: Member Definitions
// Description: Optional annotations a type returns from MonitorMembers to name
//              parameters, declare defaults, expose methods under another
//              command name, and declare properties and indexers over accessor
//              methods.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package member

import "reflect"

// Describer is implemented by types that annotate their members. The method is
// called on a zero value and must not depend on receiver state.
type Describer interface {
	MonitorMembers() *Definition
}

// Definition describes the monitor surface of a type. All keys are Go member
// names.
type Definition struct {
	Description string                         // Type description for usage help
	Methods     map[string]*MethodDefinition   // Per-method annotations
	Properties  map[string]*PropertyDefinition // Property name -> accessors
	Indexers    map[string]*IndexerDefinition  // Indexer key -> accessors
	Hidden      []string                       // Methods or fields that are not callable
}

// MethodDefinition annotates one Go method
type MethodDefinition struct {
	Name        string                // Command name, defaults to the Go name
	Description string                // Method description
	Parameters  []ParameterDefinition // One entry per declared parameter, in order
}

// PropertyDefinition declares a property over accessor methods. Either accessor
// may be empty.
type PropertyDefinition struct {
	Getter      string // func() T or func() (T, error)
	Setter      string // func(T) or func(T) error
	Description string
}

// IndexerDefinition declares an indexer over accessor methods. The getter takes
// the index parameters, the setter takes the index parameters followed by the
// value. Overloaded indexers use distinct keys and share a Name.
type IndexerDefinition struct {
	Name        string // Indexer name, defaults to the key
	Getter      string
	Setter      string
	Description string
	Parameters  []ParameterDefinition // Index parameters
}

// ParameterDefinition annotates one parameter
type ParameterDefinition struct {
	Name        string      // Parameter name used for named arguments
	Optional    bool        // May be omitted
	Default     interface{} // Value used when omitted; zero value if nil
	Auto        bool        // Injected from the ambient value, never bound from tokens
	Description string
}

var describerType = reflect.TypeOf((*Describer)(nil)).Elem()

// definitionFor returns the definition of t, or an empty one
func definitionFor(t reflect.Type) *Definition {
	var d Describer
	switch {
	case t.Kind() == reflect.Ptr && t.Implements(describerType):
		d = reflect.New(t.Elem()).Interface().(Describer)
	case t.Implements(describerType):
		d = reflect.Zero(t).Interface().(Describer)
	case reflect.PointerTo(t).Implements(describerType):
		d = reflect.New(t).Interface().(Describer)
	}
	if d != nil {
		if def := d.MonitorMembers(); def != nil {
			return def
		}
	}
	return &Definition{}
}
