// File: extension.go
// Title: Extension Registry
// Description: Functions registered as extra commands of every type assignable
//              to their first parameter.
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
	"sync"

	mdwlog "github.com/msto63/devmon/foundation/core/log"
)

type extension struct {
	name        string
	fn          reflect.Value
	receiver    reflect.Type
	params      []ParameterDefinition
	description string
}

// Extensions is a registry of extension functions. Registering does not touch
// any member cache; clear caches afterwards to make new extensions visible.
type Extensions struct {
	mu    sync.RWMutex
	items []*extension
}

// NewExtensions creates an empty registry
func NewExtensions() *Extensions {
	return &Extensions{}
}

// Register adds fn as command name. The first parameter of fn is the receiver;
// params, when given, annotate the remaining parameters.
func (e *Extensions) Register(name string, fn interface{}, params ...ParameterDefinition) error {
	return e.RegisterWithDescription(name, "", fn, params...)
}

// RegisterWithDescription is Register with a usage description
func (e *Extensions) RegisterWithDescription(name, description string, fn interface{}, params ...ParameterDefinition) error {
	v := reflect.ValueOf(fn)
	if name == "" {
		return fmt.Errorf("extension name must not be empty")
	}
	if v.Kind() != reflect.Func || v.IsNil() {
		return fmt.Errorf("extension %s: %T is not a function", name, fn)
	}
	ft := v.Type()
	if ft.NumIn() == 0 || (ft.IsVariadic() && ft.NumIn() == 1) {
		return fmt.Errorf("extension %s: function needs a receiver parameter", name)
	}
	if len(params) > 0 && len(params) != ft.NumIn()-1 {
		return fmt.Errorf("extension %s: %d parameter definitions for %d parameters", name, len(params), ft.NumIn()-1)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.items = append(e.items, &extension{
		name:        name,
		fn:          v,
		receiver:    ft.In(0),
		params:      params,
		description: description,
	})
	return nil
}

// Len returns the number of registered extensions
func (e *Extensions) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.items)
}

func (e *Extensions) membersFor(t reflect.Type, options Options) []*Member {
	e.mu.RLock()
	defer e.mu.RUnlock()

	var out []*Member
	for _, ext := range e.items {
		if !t.AssignableTo(ext.receiver) {
			continue
		}
		var defs []ParameterDefinition
		if len(ext.params) > 0 {
			defs = ext.params
		}
		params, err := describeParameters(ext.fn.Type(), 1, defs, options.AmbientType)
		if err != nil {
			if options.Logger != nil {
				options.Logger.Warn("extension skipped", mdwlog.Fields{"extension": ext.name, "error": err.Error()})
			}
			continue
		}
		fn := ext.fn
		variadic := fn.Type().IsVariadic()
		out = append(out, &Member{
			Kind:        KindExtension,
			Name:        ext.name,
			GoName:      ext.name,
			Owner:       t,
			Type:        resultType(fn.Type()),
			Parameters:  params,
			Description: ext.description,
			invoke: func(target reflect.Value, args []reflect.Value) (interface{}, error) {
				in := append([]reflect.Value{target}, args...)
				if variadic {
					return splitResults(fn.CallSlice(in))
				}
				return splitResults(fn.Call(in))
			},
		})
	}
	return out
}
