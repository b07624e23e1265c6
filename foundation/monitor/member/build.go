// File: build.go
// Title: Type Inspection
// Description: Builds the member Set of a type: methods from the method set
//              (promoted methods of embedded structs included), visible exported
//              fields, properties and indexers over accessor methods, the
//              synthesized Item indexer of slices and maps, Select and ForEach
//              on enumerable types, and applicable extensions.
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
	"sort"
	"strings"
)

type builder struct {
	t       reflect.Type
	def     *Definition
	options Options

	hidden    map[string]bool
	accessors map[string]bool
}

// Inspect builds the member set of t without caching
func Inspect(t reflect.Type, options Options) (*Set, error) {
	b := &builder{
		t:         t,
		def:       definitionFor(t),
		options:   options,
		hidden:    map[string]bool{"MonitorMembers": true},
		accessors: map[string]bool{},
	}
	for _, name := range b.def.Hidden {
		b.hidden[name] = true
	}
	return b.build()
}

func (b *builder) build() (*Set, error) {
	set := &Set{Type: b.t, Description: b.def.Description}

	properties, err := b.properties()
	if err != nil {
		return nil, err
	}
	indexers, err := b.indexers()
	if err != nil {
		return nil, err
	}
	methods, err := b.methods()
	if err != nil {
		return nil, err
	}
	if item := b.itemIndexer(); item != nil {
		indexers = append(indexers, item)
	}

	set.Properties = properties
	set.Indexers = indexers
	set.Methods = methods
	set.Fields = b.fields()

	if enumerate := b.enumerator(); enumerate != nil {
		set.enumerate = enumerate
		set.Methods = append(set.Methods, b.pseudoMethods(set)...)
	}

	if b.options.Extensions != nil {
		set.Extensions = b.options.Extensions.membersFor(b.t, b.options)
	}

	for _, list := range []*[]*Member{&set.Methods, &set.Fields, &set.Properties, &set.Indexers, &set.Extensions} {
		*list = dedupe(*list)
		sort.SliceStable(*list, func(i, j int) bool { return (*list)[i].Name < (*list)[j].Name })
	}
	return set, nil
}

func (b *builder) methods() ([]*Member, error) {
	var out []*Member
	for i := 0; i < b.t.NumMethod(); i++ {
		m := b.t.Method(i)
		if b.hidden[m.Name] || b.accessors[m.Name] {
			continue
		}
		member, err := b.methodMember(m, b.def.Methods[m.Name])
		if err != nil {
			return nil, err
		}
		out = append(out, member)
	}
	for goName := range b.def.Methods {
		if _, ok := b.t.MethodByName(goName); !ok {
			return nil, fmt.Errorf("definition of %s names unknown method %s", b.t, goName)
		}
	}
	return out, nil
}

func (b *builder) methodMember(m reflect.Method, def *MethodDefinition) (*Member, error) {
	var defs []ParameterDefinition
	name, description := m.Name, ""
	if def != nil {
		defs = def.Parameters
		description = def.Description
		if def.Name != "" {
			name = def.Name
		}
	}
	params, err := b.parameters(m.Type, 1, defs, m.Name)
	if err != nil {
		return nil, err
	}

	fn := m.Func
	variadic := m.Type.IsVariadic()
	return &Member{
		Kind:        KindMethod,
		Name:        name,
		GoName:      m.Name,
		Owner:       b.t,
		Type:        resultType(m.Type),
		Parameters:  params,
		Description: description,
		invoke: func(target reflect.Value, args []reflect.Value) (interface{}, error) {
			in := append([]reflect.Value{target}, args...)
			if variadic {
				return splitResults(fn.CallSlice(in))
			}
			return splitResults(fn.Call(in))
		},
	}, nil
}

// parameters describes the inputs of fn starting at skip (the receiver)
func (b *builder) parameters(fn reflect.Type, skip int, defs []ParameterDefinition, owner string) ([]Parameter, error) {
	n := fn.NumIn() - skip
	if defs != nil && len(defs) != n {
		return nil, fmt.Errorf("definition of %s.%s lists %d parameters, the method takes %d", b.t, owner, len(defs), n)
	}
	return describeParameters(fn, skip, defs, b.options.AmbientType)
}

func describeParameters(fn reflect.Type, skip int, defs []ParameterDefinition, ambient reflect.Type) ([]Parameter, error) {
	n := fn.NumIn() - skip
	params := make([]Parameter, n)
	for i := 0; i < n; i++ {
		p := Parameter{
			Name:     fmt.Sprintf("arg%d", i),
			Position: i,
			Type:     fn.In(i + skip),
			Variadic: fn.IsVariadic() && i == n-1,
		}
		if i < len(defs) {
			d := defs[i]
			if d.Name != "" {
				p.Name = d.Name
			}
			p.Optional = d.Optional
			p.Auto = d.Auto
			p.Description = d.Description
			if p.Optional {
				value, err := defaultValue(d.Default, p.Type)
				if err != nil {
					return nil, fmt.Errorf("parameter %s: %w", p.Name, err)
				}
				p.Default = value
			}
		}
		if i == 0 && isAmbient(p.Type, ambient) {
			p.Auto = true
		}
		params[i] = p
	}
	return params, nil
}

func isAmbient(t, ambient reflect.Type) bool {
	if ambient == nil {
		return false
	}
	if t == ambient {
		return true
	}
	return t.Kind() == reflect.Interface && t.NumMethod() > 0 && ambient.Implements(t)
}

func defaultValue(value interface{}, t reflect.Type) (interface{}, error) {
	if value == nil {
		return reflect.Zero(t).Interface(), nil
	}
	v := reflect.ValueOf(value)
	switch {
	case v.Type().AssignableTo(t):
		return value, nil
	case v.Type().ConvertibleTo(t) && convertibleKinds(v.Kind(), t.Kind()):
		return v.Convert(t).Interface(), nil
	default:
		return nil, fmt.Errorf("default %v (%s) does not fit %s", value, v.Type(), t)
	}
}

// convertibleKinds rejects the number-to-string conversion reflect allows
func convertibleKinds(from, to reflect.Kind) bool {
	return !(to == reflect.String && from != reflect.String)
}

func (b *builder) fields() []*Member {
	st, addressable := b.t, false
	if st.Kind() == reflect.Ptr {
		st, addressable = st.Elem(), true
	}
	if st.Kind() != reflect.Struct {
		return nil
	}

	var out []*Member
	for _, f := range reflect.VisibleFields(st) {
		if !f.IsExported() || f.Anonymous || b.hidden[f.Name] {
			continue
		}
		tag := f.Tag.Get("monitor")
		if tag == "-" {
			continue
		}
		out = append(out, fieldMember(b.t, f, addressable, !hasOption(tag, "readonly")))
	}
	return out
}

func hasOption(tag, option string) bool {
	for _, part := range strings.Split(tag, ",") {
		if strings.TrimSpace(part) == option {
			return true
		}
	}
	return false
}

func fieldMember(owner reflect.Type, f reflect.StructField, addressable, settable bool) *Member {
	index := f.Index
	access := func(target reflect.Value) (reflect.Value, error) {
		v := target
		if addressable {
			if v.IsNil() {
				return reflect.Value{}, fmt.Errorf("nil %s", owner)
			}
			v = v.Elem()
		}
		fv, err := v.FieldByIndexErr(index)
		if err != nil {
			return reflect.Value{}, err
		}
		if !fv.CanInterface() {
			return reflect.Value{}, fmt.Errorf("field %s of %s is not accessible", f.Name, owner)
		}
		return fv, nil
	}

	m := &Member{
		Kind:     KindField,
		Name:     f.Name,
		GoName:   f.Name,
		Owner:    owner,
		Type:     f.Type,
		Readable: true,
		Writable: addressable && settable,
		get: func(target reflect.Value, _ []reflect.Value) (interface{}, error) {
			fv, err := access(target)
			if err != nil {
				return nil, err
			}
			return fv.Interface(), nil
		},
		set: func(target reflect.Value, _ []reflect.Value, value reflect.Value) error {
			fv, err := access(target)
			if err != nil {
				return err
			}
			if !fv.CanSet() {
				return fmt.Errorf("field %s of %s cannot be set", f.Name, owner)
			}
			fv.Set(value)
			return nil
		},
	}
	if addressable && f.Type.Kind() == reflect.Struct {
		m.chain = func(target reflect.Value) (interface{}, error) {
			fv, err := access(target)
			if err != nil {
				return nil, err
			}
			return fv.Addr().Interface(), nil
		}
	}
	return m
}

func (b *builder) properties() ([]*Member, error) {
	var out []*Member
	for name, pd := range b.def.Properties {
		m, err := b.propertyMember(name, pd.Getter, pd.Setter)
		if err != nil {
			return nil, err
		}
		m.Description = pd.Description
		out = append(out, m)
	}

	// X() / SetX(v) pairs
	for i := 0; i < b.t.NumMethod(); i++ {
		setter := b.t.Method(i)
		name := strings.TrimPrefix(setter.Name, "Set")
		if name == setter.Name || name == "" || b.def.Properties[name] != nil || b.hidden[setter.Name] || b.hidden[name] {
			continue
		}
		getter, ok := b.t.MethodByName(name)
		if !ok || !isGetter(getter.Type, 0) || !isSetter(setter.Type, 0) {
			continue
		}
		if resultType(getter.Type) != setter.Type.In(1) {
			continue
		}
		m, err := b.propertyMember(name, name, setter.Name)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

// isGetter checks func(recv, index x n) T or (T, error)
func isGetter(fn reflect.Type, index int) bool {
	return fn.NumIn() == 1+index && !fn.IsVariadic() && resultType(fn) != nil && validResults(fn)
}

// isSetter checks func(recv, index x n, value) or error
func isSetter(fn reflect.Type, index int) bool {
	if fn.NumIn() != 2+index || fn.IsVariadic() {
		return false
	}
	return fn.NumOut() == 0 || (fn.NumOut() == 1 && fn.Out(0) == errorType)
}

func (b *builder) accessor(name string, check func(reflect.Type) bool, what string) (reflect.Method, error) {
	m, ok := b.t.MethodByName(name)
	if !ok {
		return m, fmt.Errorf("%s of %s: no method %s", what, b.t, name)
	}
	if !check(m.Type) {
		return m, fmt.Errorf("%s of %s: method %s has signature %s", what, b.t, name, m.Type)
	}
	b.accessors[name] = true
	return m, nil
}

func (b *builder) propertyMember(name, getterName, setterName string) (*Member, error) {
	m := &Member{Kind: KindProperty, Name: name, GoName: name, Owner: b.t}
	what := "property " + name

	if getterName != "" {
		getter, err := b.accessor(getterName, func(fn reflect.Type) bool { return isGetter(fn, 0) }, what)
		if err != nil {
			return nil, err
		}
		fn := getter.Func
		m.Type = resultType(getter.Type)
		m.Readable = true
		m.get = func(target reflect.Value, _ []reflect.Value) (interface{}, error) {
			return splitResults(fn.Call([]reflect.Value{target}))
		}
	}
	if setterName != "" {
		setter, err := b.accessor(setterName, func(fn reflect.Type) bool { return isSetter(fn, 0) }, what)
		if err != nil {
			return nil, err
		}
		if m.Type != nil && m.Type != setter.Type.In(1) {
			return nil, fmt.Errorf("%s of %s: getter returns %s, setter takes %s", what, b.t, m.Type, setter.Type.In(1))
		}
		fn := setter.Func
		m.Type = setter.Type.In(1)
		m.Writable = true
		m.set = func(target reflect.Value, _ []reflect.Value, value reflect.Value) error {
			_, err := splitResults(fn.Call([]reflect.Value{target, value}))
			return err
		}
	}
	if m.Type == nil {
		return nil, fmt.Errorf("%s of %s has no accessors", what, b.t)
	}
	return m, nil
}

func (b *builder) indexers() ([]*Member, error) {
	var out []*Member
	keys := make([]string, 0, len(b.def.Indexers))
	for key := range b.def.Indexers {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		id := b.def.Indexers[key]
		name := id.Name
		if name == "" {
			name = key
		}
		m, err := b.indexerMember(name, id)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func (b *builder) indexerMember(name string, id *IndexerDefinition) (*Member, error) {
	m := &Member{Kind: KindIndexer, Name: name, GoName: name, Owner: b.t, Description: id.Description}
	what := "indexer " + name

	var indexTypes []reflect.Type
	var accessorType reflect.Type
	if id.Getter != "" {
		getter, err := b.accessor(id.Getter, func(fn reflect.Type) bool {
			return fn.NumIn() >= 2 && isGetter(fn, fn.NumIn()-1)
		}, what)
		if err != nil {
			return nil, err
		}
		accessorType = getter.Type
		for i := 1; i < getter.Type.NumIn(); i++ {
			indexTypes = append(indexTypes, getter.Type.In(i))
		}
		fn := getter.Func
		m.Type = resultType(getter.Type)
		m.Readable = true
		m.get = func(target reflect.Value, index []reflect.Value) (interface{}, error) {
			return splitResults(fn.Call(append([]reflect.Value{target}, index...)))
		}
	}
	if id.Setter != "" {
		setter, err := b.accessor(id.Setter, func(fn reflect.Type) bool {
			return fn.NumIn() >= 3 && isSetter(fn, fn.NumIn()-2)
		}, what)
		if err != nil {
			return nil, err
		}
		n := setter.Type.NumIn()
		valueType := setter.Type.In(n - 1)
		if m.Type != nil {
			if m.Type != valueType || len(indexTypes) != n-2 {
				return nil, fmt.Errorf("%s of %s: getter and setter signatures disagree", what, b.t)
			}
			for i, it := range indexTypes {
				if setter.Type.In(i+1) != it {
					return nil, fmt.Errorf("%s of %s: index parameter %d differs between getter and setter", what, b.t, i)
				}
			}
		} else {
			accessorType = setter.Type
		}
		fn := setter.Func
		m.Type = valueType
		m.Writable = true
		m.set = func(target reflect.Value, index []reflect.Value, value reflect.Value) error {
			in := append([]reflect.Value{target}, index...)
			_, err := splitResults(fn.Call(append(in, value)))
			return err
		}
	}
	if accessorType == nil {
		return nil, fmt.Errorf("%s of %s has no accessors", what, b.t)
	}

	count := accessorType.NumIn() - 1
	if !m.Readable {
		count--
	}
	if id.Parameters != nil && len(id.Parameters) != count {
		return nil, fmt.Errorf("definition of %s lists %d index parameters, the accessor takes %d", what, len(id.Parameters), count)
	}
	params, err := describeParameters(accessorType, 1, id.Parameters, nil)
	if err != nil {
		return nil, err
	}
	m.Parameters = params[:count]
	return m, nil
}

// itemIndexer synthesizes the default indexer of slice, array and map types
func (b *builder) itemIndexer() *Member {
	t := b.t
	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		m := &Member{
			Kind: KindIndexer, Name: "Item", GoName: "Item", Owner: t, Type: t.Elem(),
			Parameters: []Parameter{{Name: "index", Type: reflect.TypeOf(0)}},
			Readable:   true,
			Writable:   t.Kind() == reflect.Slice,
		}
		bounds := func(v reflect.Value, index []reflect.Value) (int, error) {
			i := int(index[0].Int())
			if i < 0 || i >= v.Len() {
				return 0, fmt.Errorf("index %d out of range [0, %d)", i, v.Len())
			}
			return i, nil
		}
		m.get = func(target reflect.Value, index []reflect.Value) (interface{}, error) {
			i, err := bounds(target, index)
			if err != nil {
				return nil, err
			}
			return target.Index(i).Interface(), nil
		}
		m.set = func(target reflect.Value, index []reflect.Value, value reflect.Value) error {
			i, err := bounds(target, index)
			if err != nil {
				return err
			}
			target.Index(i).Set(value)
			return nil
		}
		return m
	case reflect.Map:
		return &Member{
			Kind: KindIndexer, Name: "Item", GoName: "Item", Owner: t, Type: t.Elem(),
			Parameters: []Parameter{{Name: "key", Type: t.Key()}},
			Readable:   true,
			Writable:   true,
			get: func(target reflect.Value, index []reflect.Value) (interface{}, error) {
				v := target.MapIndex(index[0])
				if !v.IsValid() {
					return nil, fmt.Errorf("key %v not found", index[0].Interface())
				}
				return v.Interface(), nil
			},
			set: func(target reflect.Value, index []reflect.Value, value reflect.Value) error {
				if target.IsNil() {
					return fmt.Errorf("assignment to nil %s", t)
				}
				target.SetMapIndex(index[0], value)
				return nil
			},
		}
	}
	return nil
}

// enumerator returns the element walker of slices, arrays and types with an
// All() iter.Seq[T] method, or nil.
func (b *builder) enumerator() func(reflect.Value) ([]interface{}, error) {
	switch b.t.Kind() {
	case reflect.Slice, reflect.Array:
		return func(v reflect.Value) ([]interface{}, error) {
			out := make([]interface{}, v.Len())
			for i := range out {
				out[i] = v.Index(i).Interface()
			}
			return out, nil
		}
	}

	all, ok := b.t.MethodByName("All")
	if !ok || all.Type.NumIn() != 1 || all.Type.NumOut() != 1 || !isSeq(all.Type.Out(0)) {
		return nil
	}
	fn := all.Func
	return func(v reflect.Value) ([]interface{}, error) {
		seq := fn.Call([]reflect.Value{v})[0]
		if seq.IsNil() {
			return nil, nil
		}
		var out []interface{}
		for e := range seq.Seq() {
			out = append(out, e.Interface())
		}
		return out, nil
	}
}

// isSeq matches func(yield func(T) bool)
func isSeq(t reflect.Type) bool {
	if t.Kind() != reflect.Func || t.NumIn() != 1 || t.NumOut() != 0 {
		return false
	}
	yield := t.In(0)
	return yield.Kind() == reflect.Func && yield.NumIn() == 1 && yield.NumOut() == 1 && yield.Out(0).Kind() == reflect.Bool
}

func (b *builder) pseudoMethods(set *Set) []*Member {
	command := []Parameter{{Name: "command", Type: reflect.TypeOf([]string(nil)), Variadic: true, Optional: true}}
	var out []*Member
	for _, name := range []string{SelectName, ForEachName} {
		if b.hasMethod(name) {
			continue
		}
		m := &Member{
			Kind: KindMethod, Name: name, GoName: name, Owner: b.t,
			Parameters:  command,
			Pseudo:      true,
			Description: "Runs the given command on every element",
		}
		if name == SelectName {
			m.Type = reflect.TypeOf([]interface{}(nil))
			m.invoke = func(target reflect.Value, _ []reflect.Value) (interface{}, error) {
				return set.enumerate(target)
			}
		} else {
			m.invoke = func(reflect.Value, []reflect.Value) (interface{}, error) { return nil, nil }
		}
		out = append(out, m)
	}
	return out
}

func (b *builder) hasMethod(name string) bool {
	if _, ok := b.t.MethodByName(name); ok && !b.hidden[name] && !b.accessors[name] {
		return true
	}
	for _, md := range b.def.Methods {
		if md.Name == name {
			return true
		}
	}
	return false
}

// dedupe keeps the first member of every signature
func dedupe(members []*Member) []*Member {
	seen := make(map[string]bool, len(members))
	out := members[:0]
	for _, m := range members {
		key := m.Kind.String() + " " + m.Signature()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, m)
	}
	return out
}
