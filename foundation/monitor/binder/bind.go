// File: bind.go
// Title: Argument Binding
// Description: Binds one token sequence onto one parameter list.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package binder

import (
	"reflect"

	"github.com/msto63/devmon/foundation/monitor/coerce"
	"github.com/msto63/devmon/foundation/monitor/fault"
	"github.com/msto63/devmon/foundation/monitor/member"
	"github.com/msto63/devmon/foundation/monitor/token"
)

// Binder binds argument tokens onto member parameters
type Binder struct {
	conv *coerce.Converter
}

// New creates a binder converting values with conv
func New(conv *coerce.Converter) *Binder {
	return &Binder{conv: conv}
}

// Converter returns the converter used for argument values
func (b *Binder) Converter() *coerce.Converter {
	return b.conv
}

// Bind binds tokens onto params and returns one value per parameter, ready for
// member.Invoke. A variadic parameter receives a single slice. A leading
// ambient parameter is filled with ambient when its type allows.
//
// Any error means the candidate does not bind; it is not a reason to stop
// trying other overloads.
func (b *Binder) Bind(tokens []token.Token, params []member.Parameter, ambient interface{}) ([]interface{}, error) {
	result := make([]interface{}, 0, len(params))
	if len(params) > 0 && params[0].Auto {
		result = append(result, ambientFor(params[0], ambient))
		params = params[1:]
	}

	var rest *member.Parameter
	if n := len(params); n > 0 && params[n-1].Variadic {
		rest = &params[n-1]
		params = params[:n-1]
	}

	indexed := make(map[int]token.Group)
	allowPositional := true
	for i, pos := 0, 0; i < len(tokens); i, pos = i+1, pos+1 {
		if i < len(tokens)-2 && tokens[i].Kind == token.Literal && tokens[i+1].Kind == token.Equality {
			name := tokens[i].Text
			idx := indexOf(params, name)
			if rest != nil && name == rest.Name {
				idx = len(params)
			}
			if idx < 0 {
				return nil, fault.Syntaxf("Unknown parameter %q", name)
			}
			if _, dup := indexed[idx]; dup {
				return nil, fault.Syntaxf("Parameter %q is given more than once", name)
			}
			allowPositional = allowPositional && idx == pos

			group, last, err := token.ParseArgument(tokens, i+2)
			if err != nil {
				return nil, err
			}
			indexed[idx] = group
			i = last
			continue
		}

		// Once every declared slot is filled, trailing values go to the variadic
		// parameter regardless of earlier named arguments.
		if !allowPositional && pos < len(params) {
			return nil, fault.Syntaxf("Positional argument %s follows an out of place named argument", tokens[i])
		}
		group, last, err := token.ParseArgument(tokens, i)
		if err != nil {
			return nil, err
		}
		indexed[pos] = group
		i = last
	}

	count := len(indexed)
	if count > len(params) && rest == nil {
		return nil, fault.Syntaxf("Too many arguments, expected at most %d", len(params))
	}

	positional := make([]token.Group, 0, count)
	for i := 0; i < count; i++ {
		group, ok := indexed[i]
		if !ok {
			break
		}
		delete(indexed, i)
		positional = append(positional, group)
	}

	var tail []restValue
	i := 0
	for ; i < len(positional); i++ {
		if i < len(params) {
			v, err := b.conv.Fit(positional[i], params[i].Type)
			if err != nil {
				return nil, err
			}
			result = append(result, v)
			continue
		}
		v, err := b.fitRest(positional[i], rest)
		if err != nil {
			return nil, err
		}
		tail = append(tail, v)
	}

	for ; i < len(params); i++ {
		if group, ok := indexed[i]; ok {
			v, err := b.conv.Fit(group, params[i].Type)
			if err != nil {
				return nil, err
			}
			result = append(result, v)
		} else if params[i].Optional {
			result = append(result, params[i].Default)
		} else {
			return nil, fault.Syntaxf("Missing value for parameter %q", params[i].Name)
		}
	}

	if rest == nil {
		return result, nil
	}
	if group, ok := indexed[len(params)]; ok && len(tail) == 0 {
		v, err := b.fitRest(group, rest)
		if err != nil {
			return nil, err
		}
		tail = append(tail, v)
	}
	slice, err := collect(tail, rest.Type)
	if err != nil {
		return nil, err
	}
	return append(result, slice), nil
}

type restValue struct {
	value   interface{}
	isArray bool
}

// fitRest converts one variadic value. An array group supplies the whole
// slice, anything else is one element.
func (b *Binder) fitRest(group token.Group, rest *member.Parameter) (restValue, error) {
	t := rest.Type.Elem()
	if group.IsArray {
		t = rest.Type
	}
	v, err := b.conv.Fit(group, t)
	if err != nil {
		return restValue{}, err
	}
	return restValue{value: v, isArray: group.IsArray}, nil
}

func collect(tail []restValue, sliceType reflect.Type) (interface{}, error) {
	if len(tail) == 1 && tail[0].isArray {
		return tail[0].value, nil
	}
	out := reflect.MakeSlice(sliceType, 0, len(tail))
	for _, v := range tail {
		if v.isArray {
			return nil, fault.Syntaxf("An array cannot be mixed with other variadic values")
		}
		if v.value == nil {
			out = reflect.Append(out, reflect.Zero(sliceType.Elem()))
			continue
		}
		out = reflect.Append(out, reflect.ValueOf(v.value))
	}
	return out.Interface(), nil
}

func ambientFor(p member.Parameter, ambient interface{}) interface{} {
	if ambient != nil && reflect.TypeOf(ambient).AssignableTo(p.Type) {
		return ambient
	}
	return nil
}

func indexOf(params []member.Parameter, name string) int {
	for i, p := range params {
		if p.Name == name {
			return i
		}
	}
	return -1
}
