// File: usage.go
// Title: Usage Listing
// Description: Describes the members an object offers at the monitor.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package render

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/msto63/devmon/foundation/monitor/coerce"
	"github.com/msto63/devmon/foundation/monitor/member"
)

// Usage lists the methods, properties, indexers and fields of set for the
// object called name. A non-empty lookup restricts the listing to members
// with that name.
func (r *Renderer) Usage(name string, set *member.Set, lookup string) string {
	if set == nil {
		return ""
	}
	p := r.palette()
	var b strings.Builder

	methods := filter(append(append([]*member.Member{}, set.Methods...), set.Extensions...), lookup)
	if len(methods) > 0 {
		b.WriteString("\n" + p.heading("The following methods are available:") + "\n")
		for _, m := range methods {
			b.WriteString(" - " + p.typ(typeName(m.Type)) + " " + m.Name + " (")
			b.WriteString(r.parameters(p, m.Parameters))
			b.WriteString(")\n")
		}
		fmt.Fprintf(&b, "\nUsage:\n %s MethodName param1 param2 ...\n\n", name)
	}

	if properties := filter(set.Properties, lookup); len(properties) > 0 {
		b.WriteString("\n" + p.heading("The following properties are available:") + "\n")
		for _, m := range properties {
			b.WriteString(" - " + p.typ(typeName(m.Type)) + " " + m.Name + "\n")
			b.WriteString("     available for " + access(p, m) + "\n")
		}
		fmt.Fprintf(&b, "\nUsage:\n - %s: %s PropertyName\n - %s: %s PropertyName Value\n\n",
			p.access("get"), name, p.access("set"), name)
	}

	if indexers := filter(set.Indexers, lookup); len(indexers) > 0 {
		b.WriteString("\n" + p.heading("The following indexers are available:") + "\n")
		for _, m := range indexers {
			b.WriteString(" - " + p.typ(typeName(m.Type)) + " " + m.Name + "[")
			b.WriteString(r.parameters(p, m.Parameters))
			b.WriteString("]     available for " + access(p, m) + "\n")
		}
		fmt.Fprintf(&b, "\nUsage:\n - %s: %s IndexerName [param1 param2 ...]\n - %s: %s IndexerName [param1 param2 ...] Value\n",
			p.access("get"), name, p.access("set"), name)
		b.WriteString("   IndexerName is optional if every indexer has the same name.\n")
	}

	if fields := filter(set.Fields, lookup); len(fields) > 0 {
		b.WriteString("\n" + p.heading("The following fields are available:") + "\n")
		for _, m := range fields {
			b.WriteString(" - " + p.typ(typeName(m.Type)) + " " + m.Name)
			if !m.Writable {
				b.WriteString(" (read only)")
			}
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "\nUsage:\n - %s: %s fieldName\n - %s: %s fieldName Value\n\n",
			p.access("get"), name, p.access("set"), name)
	}
	return b.String()
}

func filter(members []*member.Member, lookup string) []*member.Member {
	if lookup == "" {
		return members
	}
	var out []*member.Member
	for _, m := range members {
		if m.Name == lookup {
			out = append(out, m)
		}
	}
	return out
}

func (r *Renderer) parameters(p palette, params []member.Parameter) string {
	var parts []string
	for _, param := range params {
		if param.Auto {
			continue
		}
		var s string
		if param.Variadic {
			s = "..." + p.typ(param.Type.Elem().String())
		} else {
			s = p.typ(param.Type.String())
		}
		s += " " + param.Name
		if param.Optional {
			s += " = " + p.value(defaultText(param))
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, ", ")
}

func defaultText(param member.Parameter) string {
	if param.Default == nil || coerce.Nullable(param.Type) && reflect.ValueOf(param.Default).IsNil() {
		return "null"
	}
	if param.Type.Kind() == reflect.String {
		return fmt.Sprintf("%q", param.Default)
	}
	return fmt.Sprintf("%v", param.Default)
}

func access(p palette, m *member.Member) string {
	var parts []string
	if m.Readable {
		parts = append(parts, p.access("'get'"))
	}
	if m.Writable {
		parts = append(parts, p.access("'set'"))
	}
	return strings.Join(parts, " and ")
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "void"
	}
	return t.String()
}
