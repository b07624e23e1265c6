// File: variables.go
// Title: Monitor Variables
// Description: Named token sequences referenced as $name on command lines.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package monitor

import (
	"sort"

	"github.com/msto63/devmon/foundation/monitor/fault"
	"github.com/msto63/devmon/foundation/monitor/token"
)

// SetVariable defines $name as value. An empty value removes the variable.
func (e *Engine) SetVariable(name string, value ...token.Token) {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	if len(value) == 0 {
		delete(e.variables, name)
		return
	}
	e.variables[name] = append([]token.Token(nil), value...)
}

// Variable returns the tokens of $name
func (e *Engine) Variable(name string) ([]token.Token, bool) {
	e.mutex.RLock()
	defer e.mutex.RUnlock()

	value, ok := e.variables[name]
	return append([]token.Token(nil), value...), ok
}

// Variables returns the defined variable names, sorted
func (e *Engine) Variables() []string {
	e.mutex.RLock()
	defer e.mutex.RUnlock()

	names := make([]string, 0, len(e.variables))
	for name := range e.variables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// assignment handles "$name = value" and "$name ?= value", the latter only
// defining the variable when it is unset.
func (e *Engine) assignment(tokens []token.Token) (bool, error) {
	if tokens[0].Kind != token.Variable || len(tokens) < 2 {
		return false, nil
	}
	name, rest := tokens[0].Text, tokens[1:]
	conditional := false
	if rest[0].Kind == token.Literal && rest[0].Text == "?" && len(rest) > 1 && rest[1].Kind == token.Equality {
		conditional, rest = true, rest[1:]
	}
	if rest[0].Kind != token.Equality {
		return false, nil
	}
	if len(rest) == 1 {
		return true, fault.Syntaxf("Missing value for $%s", name)
	}
	value, err := e.expand(rest[1:])
	if err != nil {
		return true, err
	}
	if _, exists := e.Variable(name); conditional && exists {
		return true, nil
	}
	e.SetVariable(name, value...)
	return true, nil
}

// expand replaces every $name token with the tokens of the variable
func (e *Engine) expand(tokens []token.Token) ([]token.Token, error) {
	out := make([]token.Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Kind != token.Variable {
			out = append(out, tok)
			continue
		}
		value, ok := e.Variable(tok.Text)
		if !ok {
			return nil, fault.Resolutionf("No such variable: $%s", tok.Text)
		}
		out = append(out, value...)
	}
	return out, nil
}
