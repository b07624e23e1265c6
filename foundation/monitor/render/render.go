// File: render.go
// Title: Result Rendering
// Description: Turns a command result into the text shown to the user.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"reflect"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/msto63/devmon/foundation/monitor/coerce"
	"github.com/msto63/devmon/foundation/utils/stringx"
)

// Endl terminates result lines. Monitor clients expect an explicit CR.
const Endl = "\r\n"

// itemsPerLine is the number of list items printed on one line
const itemsPerLine = 10

// Renderer formats results
type Renderer struct {
	Mode    NumberMode
	ZeroPad bool // Pad hexadecimal numbers to the width of their type

	// InlineImages emits images as terminal escape sequences. When false an
	// image renders as a short placeholder.
	InlineImages bool

	// Color styles the usage listing
	Color bool
}

// New creates a renderer for mode with inline images enabled
func New(mode NumberMode) *Renderer {
	return &Renderer{Mode: mode, InlineImages: true}
}

// Render returns the display text of v, terminated by Endl. nil renders as
// the empty string.
func (r *Renderer) Render(v interface{}) string {
	if v == nil {
		return ""
	}
	out := r.render(v, true)
	if names := coerce.EnumNames(reflect.TypeOf(v)); len(names) > 0 {
		out += Endl + PossibleValues(names)
	}
	return out
}

// PossibleValues lists legal enum names, one per line
func PossibleValues(names []string) string {
	var b strings.Builder
	b.WriteString("Possible values are:" + Endl)
	for _, name := range names {
		b.WriteString("\t" + name + Endl)
	}
	b.WriteString(Endl)
	return b.String()
}

func (r *Renderer) render(v interface{}, newline bool) string {
	endl := ""
	if newline {
		endl = Endl
	}
	if v == nil {
		return endl
	}

	if bits, size, ok := integer(v); ok {
		return r.number(v, bits, size) + endl
	}
	if table, ok := v.([][]string); ok {
		return grid(table)
	}
	if img, ok := v.(image.Image); ok {
		return r.image(img)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		return r.mapping(rv)
	case reflect.Slice, reflect.Array:
		if selfReferential(rv) {
			return fmt.Sprintf("%T", v) + endl
		}
		items := make([]interface{}, rv.Len())
		for i := range items {
			items[i] = rv.Index(i).Interface()
		}
		return r.list(items) + endl
	case reflect.Func:
		if items, ok := sequence(rv); ok {
			return r.list(items) + endl
		}
	}

	if name, ok := enumName(v); ok {
		return name + endl
	}
	return fmt.Sprintf("%v", v) + endl
}

func (r *Renderer) list(items []interface{}) string {
	var b strings.Builder
	b.WriteString("[" + Endl)
	for i, item := range items {
		b.WriteString(r.render(item, false))
		b.WriteString(", ")
		if (i+1)%itemsPerLine == 0 {
			b.WriteString(Endl)
		}
	}
	b.WriteString(Endl + "]")
	return b.String()
}

// grid renders a table whose first row is the header
func grid(table [][]string) string {
	columns := 0
	for _, row := range table {
		columns = max(columns, len(row))
	}
	widths := make([]int, columns)
	for _, row := range table {
		for i, cell := range row {
			widths[i] = max(widths[i], utf8.RuneCountInString(cell))
		}
	}
	lineLength := columns + 1
	for _, w := range widths {
		lineLength += w
	}
	rule := strings.Repeat("-", lineLength) + Endl

	var b strings.Builder
	b.WriteString(rule)
	for i, row := range table {
		if i == 1 {
			b.WriteString(rule)
		}
		b.WriteString("|")
		for j := 0; j < columns; j++ {
			cell := ""
			if j < len(row) {
				cell = row[j]
			}
			b.WriteString(stringx.PadRight(cell, widths[j], ' '))
			b.WriteString("|")
		}
		b.WriteString(Endl)
	}
	b.WriteString(rule)
	return b.String()
}

// mapping renders one "key : value" line per entry, sorted by key
func (r *Renderer) mapping(rv reflect.Value) string {
	type entry struct{ key, value string }
	entries := make([]entry, 0, rv.Len())
	width := 0
	iter := rv.MapRange()
	for iter.Next() {
		e := entry{key: scalar(iter.Key().Interface()), value: scalar(iter.Value().Interface())}
		width = max(width, len(e.key))
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })

	var b strings.Builder
	for _, e := range entries {
		b.WriteString(stringx.PadRight(e.key, width, ' ') + " : " + e.value + Endl)
	}
	return b.String()
}

// scalar formats a map key or value: integers in hex, the rest with %v
func scalar(v interface{}) string {
	if bits, _, ok := integer(v); ok {
		return fmt.Sprintf("0x%X", bits)
	}
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}

func (r *Renderer) image(img image.Image) string {
	bounds := img.Bounds()
	if !r.InlineImages {
		return fmt.Sprintf("<image %dx%d>", bounds.Dx(), bounds.Dy()) + Endl
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Sprintf("<image %dx%d: %v>", bounds.Dx(), bounds.Dy(), err) + Endl
	}
	return InlineImage(buf.Bytes())
}

// InlineImage wraps PNG data in the iTerm2 inline image escape sequence
func InlineImage(data []byte) string {
	return fmt.Sprintf("\x1b]1337;File=size=%d;inline=1:%s\a", len(data), base64.StdEncoding.EncodeToString(data))
}

// selfReferential reports whether a sequence contains itself
func selfReferential(rv reflect.Value) bool {
	if rv.Kind() != reflect.Slice || rv.Len() == 0 {
		return false
	}
	for i := 0; i < rv.Len(); i++ {
		item := rv.Index(i)
		if item.Kind() == reflect.Interface {
			item = item.Elem()
		}
		if item.Kind() == reflect.Slice && item.Len() == rv.Len() && item.Pointer() == rv.Pointer() {
			return true
		}
	}
	return false
}

// sequence collects the values of an iter.Seq
func sequence(rv reflect.Value) ([]interface{}, bool) {
	t := rv.Type()
	if rv.IsNil() || t.NumIn() != 1 || t.NumOut() != 0 {
		return nil, false
	}
	yield := t.In(0)
	if yield.Kind() != reflect.Func || yield.NumIn() != 1 || yield.NumOut() != 1 || yield.Out(0).Kind() != reflect.Bool {
		return nil, false
	}
	var items []interface{}
	for v := range rv.Seq() {
		items = append(items, v.Interface())
	}
	return items, true
}

func enumName(v interface{}) (string, bool) {
	if s, ok := v.(fmt.Stringer); ok && coerce.IsEnum(reflect.TypeOf(v)) {
		return s.String(), true
	}
	rv := reflect.ValueOf(v)
	for _, ev := range coerce.EnumValuesOf(rv.Type()) {
		if rv.CanInt() && rv.Int() == ev.Value || rv.CanUint() && rv.Uint() == uint64(ev.Value) {
			return ev.Name, true
		}
	}
	return "", false
}
