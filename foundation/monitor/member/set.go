// File: set.go
// Title: Member Sets
// Description: The resolved members of one type with lookups by command name.
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
)

// Pseudo-method names added to enumerable types
const (
	SelectName  = "Select"
	ForEachName = "ForEach"
)

// Set holds the members of one type. A Set is immutable once built and may be
// shared between goroutines.
type Set struct {
	Type        reflect.Type
	Description string
	Methods     []*Member
	Fields      []*Member
	Properties  []*Member
	Indexers    []*Member
	Extensions  []*Member

	enumerate func(target reflect.Value) ([]interface{}, error)
}

// MethodsNamed returns the method overloads with the given command name
func (s *Set) MethodsNamed(name string) []*Member {
	return named(s.Methods, name)
}

// ExtensionsNamed returns the extensions with the given command name
func (s *Set) ExtensionsNamed(name string) []*Member {
	return named(s.Extensions, name)
}

// IndexersNamed returns the indexers with the given name
func (s *Set) IndexersNamed(name string) []*Member {
	return named(s.Indexers, name)
}

// Field returns the field with the given name, or nil
func (s *Set) Field(name string) *Member {
	if m := named(s.Fields, name); len(m) > 0 {
		return m[0]
	}
	return nil
}

// Property returns the property with the given name, or nil
func (s *Set) Property(name string) *Member {
	if m := named(s.Properties, name); len(m) > 0 {
		return m[0]
	}
	return nil
}

// DefaultIndexers returns all indexers when they share one name, so that a
// bare "[index]" command can address them. Otherwise it returns nil.
func (s *Set) DefaultIndexers() []*Member {
	if len(s.Indexers) == 0 {
		return nil
	}
	name := s.Indexers[0].Name
	for _, m := range s.Indexers[1:] {
		if m.Name != name {
			return nil
		}
	}
	return s.Indexers
}

// Enumerable reports whether Select and ForEach apply to values of the type
func (s *Set) Enumerable() bool {
	return s.enumerate != nil
}

// Pseudo reports whether name resolves to a synthesized Select or ForEach
// rather than a method the type declares
func (s *Set) Pseudo(name string) bool {
	for _, m := range s.MethodsNamed(name) {
		if m.Pseudo {
			return true
		}
	}
	return false
}

// Elements returns the elements of an enumerable target
func (s *Set) Elements(target interface{}) ([]interface{}, error) {
	if s.enumerate == nil {
		return nil, fmt.Errorf("%s is not enumerable", s.Type)
	}
	return s.enumerate(reflect.ValueOf(target))
}

// Has reports whether any member carries the given name
func (s *Set) Has(name string) bool {
	return len(s.MethodsNamed(name)) > 0 || len(s.ExtensionsNamed(name)) > 0 ||
		s.Field(name) != nil || s.Property(name) != nil || len(s.IndexersNamed(name)) > 0
}

func named(members []*Member, name string) []*Member {
	var out []*Member
	for _, m := range members {
		if m.Name == name {
			out = append(out, m)
		}
	}
	return out
}
