// File: fit.go
// Title: Argument Fitting
// Description: Fits an argument group onto a parameter type. Scalar groups
//              bind scalar parameters, array groups bind slices and arrays.
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

	"github.com/msto63/devmon/foundation/monitor/fault"
	"github.com/msto63/devmon/foundation/monitor/token"
)

var (
	stringType = reflect.TypeOf("")
	boolType   = reflect.TypeOf(false)
)

// admissible lists, for exact types, the token kinds that may bind to them.
// Types not listed accept any token and rely on conversion alone.
var admissible = map[reflect.Type][]token.Kind{
	stringType:               {token.String, token.Path},
	reflect.TypeOf(int(0)):   {token.DecimalInteger},
	reflect.TypeOf(int16(0)): {token.DecimalInteger},
	reflect.TypeOf(int32(0)): {token.DecimalInteger},
	reflect.TypeOf(int64(0)): {token.DecimalInteger},
	boolType:                 {token.Boolean},
}

// Admissible reports whether tok may bind to a parameter of type t. Null is
// always admissible; conversion decides whether t can hold it. Pointer
// targets are checked against the type they point to.
func Admissible(tok token.Token, t reflect.Type) bool {
	if tok.Kind == token.Null {
		return true
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	kinds, ok := admissible[t]
	if !ok {
		return true
	}
	for _, k := range kinds {
		if k == tok.Kind {
			return true
		}
	}
	return false
}

// Fit converts group into a value of type t. An array group requires a slice
// or array type and vice versa; a fixed size array also requires the element
// count to match.
func (c *Converter) Fit(group token.Group, t reflect.Type) (interface{}, error) {
	elem, collection := elementType(t)
	if group.IsArray != collection {
		return nil, fault.Conversionf("Argument %s does not fit %s", group, t)
	}

	if !collection {
		tok, ok := group.First()
		if !ok {
			return nil, fault.Conversionf("Missing value for %s", t)
		}
		return c.fitToken(tok, t)
	}

	n := len(group.Tokens)
	var out reflect.Value
	if t.Kind() == reflect.Array {
		if n != t.Len() {
			return nil, fault.Conversionf("Array of %d elements does not fit %s", n, t)
		}
		out = reflect.New(t).Elem()
	} else {
		out = reflect.MakeSlice(t, n, n)
	}
	for i, tok := range group.Tokens {
		v, err := c.fitToken(tok, elem)
		if err != nil {
			return nil, err
		}
		if v == nil {
			continue
		}
		out.Index(i).Set(reflect.ValueOf(v))
	}
	return out.Interface(), nil
}

func (c *Converter) fitToken(tok token.Token, t reflect.Type) (interface{}, error) {
	if !Admissible(tok, t) {
		return nil, fault.Conversionf("%s %s cannot bind to %s", tok.Kind, tok, t)
	}
	return c.Convert(tok, t)
}

func elementType(t reflect.Type) (reflect.Type, bool) {
	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		return t.Elem(), true
	}
	return nil, false
}
