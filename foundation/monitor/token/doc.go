// Package token defines the typed tokens the dispatcher consumes and groups
// them into scalar or bracketed array arguments.
//
// Package: token
// Title: Monitor Tokens and Argument Grouping
// Description: Token kinds produced by the shell tokenizer, the Group type and
//              the ParseArgument/ParseOptionalArgument helpers shared by the
//              binder and the dispatcher. Tokenize is a small boundary lexer
//              for command lines.
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
//	tokens, err := token.Tokenize(`sysbus.uart0 Configure speed=115200 [1, 2]`)
//	group, last, err := token.ParseArgument(tokens, 3)
package token
