// Package objects keeps the named objects a monitor can address: peripherals,
// peripheral groups, host interfaces and externals.
//
// Package: objects
// Title: Named Object Registry
// Description: Objects are registered under dotted paths such as
//              "sysbus.uart0". Lookups fall back to the configured usings
//              prefixes, and a failed lookup reports the longest registered
//              prefix of the requested path. The registry also acts as a
//              coerce.Namespace, so commands can pass objects by name.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation
//
// Usage:
//
//	reg := objects.New(objects.Options{})
//	_ = reg.Register("sysbus.uart0", uart)
//	obj, longest, ok := reg.TryGetByName("uart0")
package objects
