// Package dispatch executes one monitor command against a live object.
//
// Package: dispatch
// Title: Command Dispatcher
// Description: Resolves the first token of a command to a member of the
//              target and runs it: invokes methods and extensions, reads and
//              writes fields, properties and indexers, maps Select and
//              ForEach over enumerable targets and follows chained segments
//              such as "cpu Registers PC" into nested objects.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation
//
// Resolution order for a command name is: methods together with extensions,
// then fields, then properties, then indexers. A leading "[" addresses the
// default indexer.
//
// Recoverable failures are *fault.Error values. Errors returned by the
// invoked member itself pass through unchanged.
package dispatch
