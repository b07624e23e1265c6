// Package member resolves the callable surface of a Go type: methods, fields,
// properties, indexers and registered extensions.
//
// Package: member
// Title: Member Resolution and Cache
// Description: Inspects a type once through reflection and captures a typed
//              get, set or invoke closure per member. Go reflection knows
//              nothing about parameter names, defaults, overloads, properties
//              or indexers, so types may describe those through a Definition
//              returned by MonitorMembers. Results are cached per type and the
//              cache is cleared by swapping in a fresh generation.
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
//	func (u *UART) MonitorMembers() *member.Definition {
//		return &member.Definition{
//			Methods: map[string]*member.MethodDefinition{
//				"ConfigureSpeed": {Name: "Configure", Parameters: []member.ParameterDefinition{
//					{Name: "baud"},
//				}},
//			},
//		}
//	}
//
//	cache := member.NewCache(member.Options{})
//	set, err := cache.For(uart)
//	candidates := set.MethodsNamed("Configure")
package member
