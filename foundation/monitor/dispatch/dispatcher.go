// File: dispatcher.go
// Title: Command Dispatcher
// Description: Member resolution and invocation for a single command segment.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package dispatch

import (
	"fmt"

	mdwerror "github.com/msto63/devmon/foundation/core/error"
	mdwlog "github.com/msto63/devmon/foundation/core/log"
	"github.com/msto63/devmon/foundation/monitor/binder"
	"github.com/msto63/devmon/foundation/monitor/fault"
	"github.com/msto63/devmon/foundation/monitor/member"
	"github.com/msto63/devmon/foundation/monitor/token"
)

// DefaultMaxChainDepth bounds the number of chained segments in one command
const DefaultMaxChainDepth = 32

// Options configures a Dispatcher
type Options struct {
	Cache  *member.Cache
	Binder *binder.Binder

	// Ambient returns the value injected into auto parameters, typically the
	// current machine. May be nil.
	Ambient func() interface{}

	MaxChainDepth int
	Logger        *mdwlog.Logger
}

// Dispatcher executes commands against objects
type Dispatcher struct {
	cache    *member.Cache
	binder   *binder.Binder
	ambient  func() interface{}
	maxDepth int
	logger   *mdwlog.Logger
}

// New creates a dispatcher
func New(options Options) *Dispatcher {
	d := &Dispatcher{
		cache:    options.Cache,
		binder:   options.Binder,
		ambient:  options.Ambient,
		maxDepth: options.MaxChainDepth,
		logger:   options.Logger,
	}
	if d.maxDepth <= 0 {
		d.maxDepth = DefaultMaxChainDepth
	}
	if d.logger == nil {
		d.logger = mdwlog.GetDefault()
	}
	d.logger = d.logger.WithField("component", "dispatch")
	return d
}

// Execute runs tokens against target. tokens starts with the member name, or
// with "[" for the default indexer. name is the object path used in messages.
// The result is the member's value, or nil for writes and void methods.
func (d *Dispatcher) Execute(name string, target interface{}, tokens []token.Token) (interface{}, error) {
	return d.execute(name, target, tokens, 0)
}

func (d *Dispatcher) execute(name string, target interface{}, tokens []token.Token, depth int) (interface{}, error) {
	if depth > d.maxDepth {
		return nil, fault.Syntaxf("Command chain is longer than %d segments", d.maxDepth).WithName(name)
	}
	if len(tokens) == 0 || (tokens[0].Kind != token.Literal && tokens[0].Kind != token.LeftBrace) {
		return nil, fault.Syntaxf("Bad syntax").WithName(name)
	}

	set, err := d.cache.For(target)
	if err != nil {
		return nil, mdwerror.Wrap(err, "member resolution failed").
			WithCode(mdwerror.CodeInternal).
			WithDetail("object", name)
	}

	command := tokens[0]
	cmd, args := command.Text, tokens[1:]
	indexers := set.IndexersNamed(cmd)
	if command.Kind == token.LeftBrace {
		// The brace stays in args, it opens the index argument
		cmd, args = "", tokens
		indexers = set.DefaultIndexers()
	}

	if (cmd == member.SelectName || cmd == member.ForEachName) && len(args) > 0 && set.Pseudo(cmd) {
		return d.each(name, cmd, target, set, args, depth)
	}

	methods, extensions := set.MethodsNamed(cmd), set.ExtensionsNamed(cmd)
	if len(methods) > 0 || len(extensions) > 0 {
		return d.invoke(name, cmd, target, set, args)
	}
	if f := set.Field(cmd); f != nil {
		return d.value(name, cmd, target, f, args, depth)
	}
	if p := set.Property(cmd); p != nil {
		return d.value(name, cmd, target, p, args, depth)
	}
	if len(indexers) > 0 {
		return d.index(name, cmd, target, set, indexers, args)
	}

	if command.Kind == token.Literal {
		return nil, fault.Resolutionf("%s does not provide a field, method or property %s.", name, cmd).WithName(name)
	}
	return nil, fault.Resolutionf("%s does not provide a default-named indexer.", name).WithName(name)
}

func (d *Dispatcher) ambientValue() interface{} {
	if d.ambient == nil {
		return nil
	}
	return d.ambient()
}

func (d *Dispatcher) invoke(name, cmd string, target interface{}, set *member.Set, args []token.Token) (interface{}, error) {
	call, err := d.binder.Resolve(set.Type, cmd, args, d.ambientValue(), set.MethodsNamed(cmd), set.ExtensionsNamed(cmd))
	if err != nil {
		if f, ok := fault.As(err); ok {
			f.WithName(name)
		}
		return nil, err
	}
	d.logger.Debug("invoking member", mdwlog.Fields{
		"object":    name,
		"member":    call.Member.Signature(),
		"kind":      call.Member.Kind.String(),
		"arguments": len(args),
	})
	return call.Member.Invoke(target, call.Args)
}

// value handles fields and properties: chain, write or read
func (d *Dispatcher) value(name, cmd string, target interface{}, m *member.Member, args []token.Token, depth int) (interface{}, error) {
	assign := len(args) > 0 && args[0].Kind == token.Equality
	if assign {
		args = args[1:]
		if len(args) == 0 {
			return nil, fault.Syntaxf("Missing value after '=' for %s", cmd).WithName(name)
		}
	}

	group, last, ok, err := token.ParseOptionalArgument(args, 0)
	if err != nil {
		return nil, parseFailure("argument", args, err).WithName(name)
	}

	if ok && !assign && chainable(m.Type) && args[0].Kind == token.Literal {
		current, err := m.Chain(target)
		if err != nil {
			return nil, err
		}
		if isNil(current) {
			return nil, nil
		}
		d.logger.Trace("following chain", mdwlog.Fields{"object": name, "member": cmd, "depth": depth + 1})
		return d.execute(name+" "+cmd, current, args, depth+1)
	}

	if ok {
		if last != len(args)-1 {
			return nil, fault.Syntaxf("Unexpected %s after the value of %s", args[last+1], cmd).WithName(name)
		}
		if m.Writable {
			v, err := d.binder.Converter().Fit(group, m.Type)
			if err != nil {
				return nil, conversionFailure(group, m.Type, err).WithName(name)
			}
			if err := m.Set(target, v); err != nil {
				return nil, err
			}
			d.logger.Debug("member written", mdwlog.Fields{"object": name, "member": cmd, "kind": m.Kind.String()})
			return nil, nil
		}
		if assign {
			return nil, fault.Accessf("%s %s of %s is read-only", m.Kind, cmd, name).WithName(name)
		}
	}

	if m.Readable {
		return m.Get(target)
	}
	return nil, fault.Accessf("Could not execute this action on property %s", cmd).WithName(name)
}

// index handles indexers: the index argument, then an optional value
func (d *Dispatcher) index(name, cmd string, target interface{}, set *member.Set, indexers []*member.Member, args []token.Token) (interface{}, error) {
	index, last, err := token.ParseArgument(args, 0)
	if err != nil {
		return nil, parseFailure("index", args, err).WithName(name)
	}

	rest := args[last+1:]
	assign := len(rest) > 0 && rest[0].Kind == token.Equality
	if assign {
		rest = rest[1:]
		if len(rest) == 0 {
			return nil, fault.Syntaxf("Missing value after '=' for %s", index).WithName(name)
		}
	}
	value, vlast, hasValue, err := token.ParseOptionalArgument(rest, 0)
	if err != nil {
		return nil, parseFailure("value", rest, err).WithName(name)
	}
	if hasValue && vlast != len(rest)-1 {
		return nil, fault.Syntaxf("Unexpected %s after the indexed value", rest[vlast+1]).WithName(name)
	}

	var lastErr error
	for _, ix := range binder.Order(indexers) {
		params, err := d.binder.Bind(index.Tokens, ix.Parameters, d.ambientValue())
		if err != nil {
			lastErr = err
			continue
		}
		if hasValue && ix.Writable {
			v, err := d.binder.Converter().Fit(value, ix.Type)
			if err != nil {
				return nil, conversionFailure(value, ix.Type, err).WithName(name)
			}
			if err := ix.Set(target, v, params...); err != nil {
				return nil, err
			}
			d.logger.Debug("indexer written", mdwlog.Fields{"object": name, "indexer": ix.Signature()})
			return nil, nil
		}
		if (hasValue && assign) || !ix.Readable {
			return nil, fault.Accessf("Could not execute this action on indexer %s", ix.Name).WithName(name)
		}
		return ix.Get(target, params...)
	}
	return nil, fault.Mismatch(set.Type, cmd, lastErr).WithName(name)
}

// each runs args against every element of an enumerable target
func (d *Dispatcher) each(name, cmd string, target interface{}, set *member.Set, args []token.Token, depth int) (interface{}, error) {
	elements, err := set.Elements(target)
	if err != nil {
		return nil, err
	}
	results := make([]interface{}, 0, len(elements))
	for i, element := range elements {
		if isNil(element) {
			results = append(results, nil)
			continue
		}
		v, err := d.execute(fmt.Sprintf("%s[%d]", name, i), element, args, depth+1)
		if err != nil {
			return nil, err
		}
		results = append(results, v)
	}
	d.logger.Debug("enumeration completed", mdwlog.Fields{"object": name, "command": cmd, "elements": len(elements)})
	if cmd == member.ForEachName {
		return nil, nil
	}
	return results, nil
}
