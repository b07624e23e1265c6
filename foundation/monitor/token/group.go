// File: group.go
// Title: Argument Grouping
// Description: Groups a token at a cursor into a scalar argument or a
//              bracketed, comma separated array argument.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package token

import (
	"strings"

	"github.com/msto63/devmon/foundation/monitor/fault"
)

// Group is one logical argument: a single token, or the elements of an array
// literal. Array groups never nest.
type Group struct {
	Tokens  []Token
	IsArray bool
}

// First returns the first token of the group
func (g Group) First() (Token, bool) {
	if len(g.Tokens) == 0 {
		return Token{}, false
	}
	return g.Tokens[0], true
}

// String renders the group as it would be typed
func (g Group) String() string {
	parts := make([]string, len(g.Tokens))
	for i, t := range g.Tokens {
		parts[i] = t.String()
	}
	if g.IsArray {
		return "[" + strings.Join(parts, ", ") + "]"
	}
	return strings.Join(parts, " ")
}

// ParseArgument groups the argument starting at tokens[i]. It returns the
// group and the index of the last token consumed. An opening bracket consumes
// up to the matching closing bracket and requires a comma between elements.
func ParseArgument(tokens []Token, i int) (Group, int, error) {
	if i < 0 || i >= len(tokens) {
		return Group{}, i, fault.Syntaxf("Missing argument at position %d", i)
	}
	if tokens[i].Kind != LeftBrace {
		return Group{Tokens: tokens[i : i+1]}, i, nil
	}

	elements := []Token{}
	for i++; i < len(tokens) && tokens[i].Kind != RightBrace; i++ {
		switch tokens[i].Kind {
		case LeftBrace:
			return Group{}, i, fault.Syntaxf("Nested arrays are not supported")
		case Comma:
			return Group{}, i, fault.Syntaxf("Unexpected ',' in array at position %d", i)
		}
		elements = append(elements, tokens[i])

		i++
		if i < len(tokens) && tokens[i].Kind == RightBrace {
			break
		}
		if i >= len(tokens) || tokens[i].Kind != Comma {
			if i < len(tokens) {
				return Group{}, i, fault.Syntaxf("Expected ',' between array elements, got %s", tokens[i])
			}
			break
		}
	}
	if i >= len(tokens) {
		return Group{}, i, fault.Syntaxf("Unterminated array")
	}
	return Group{Tokens: elements, IsArray: true}, i, nil
}

// ParseOptionalArgument is ParseArgument for a trailing argument that may be
// absent. ok is false when i is past the end.
func ParseOptionalArgument(tokens []Token, i int) (group Group, last int, ok bool, err error) {
	if i >= len(tokens) {
		return Group{}, i, false, nil
	}
	group, last, err = ParseArgument(tokens, i)
	if err != nil {
		return Group{}, last, false, err
	}
	return group, last, true, nil
}
