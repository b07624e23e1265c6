// Package coerce converts tokens into values of the Go type a member expects.
//
// Package: coerce
// Title: Type Coercion Engine
// Description: Applies the conversion rules in order: null, boolean guard,
//              pass-through, live object lookup by name, enums, nullable
//              pointers and generic textual parsing. Fit adds the argument
//              group rules for slices and arrays. Every failure is a
//              recoverable conversion fault.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation
package coerce
