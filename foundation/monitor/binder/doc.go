// Package binder matches command arguments against member signatures.
//
// Package: binder
// Title: Overload and Argument Binder
// Description: Binds positional and named argument groups onto a parameter
//              list, fills defaults and the ambient parameter, collects
//              variadic tails and picks the first overload that binds.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation
//
// Named arguments use the form name=value. A named argument that does not
// sit at its own position disables further positional arguments, except for
// values of a trailing variadic parameter:
//
//	f a=4 9        // a=4, b=9
//	f b=4 9        // fails, 9 would be positional after an out of place name
//	f p 1 2 3      // variadic tail [1, 2, 3]
package binder
