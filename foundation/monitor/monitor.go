// File: monitor.go
// Title: Monitor Engine
// Description: Wires the registry, member cache, binder, dispatcher and
//              renderer into one engine and runs command lines through it.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package monitor

import (
	"context"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	mdwerror "github.com/msto63/devmon/foundation/core/error"
	mdwlog "github.com/msto63/devmon/foundation/core/log"
	"github.com/msto63/devmon/foundation/monitor/binder"
	"github.com/msto63/devmon/foundation/monitor/coerce"
	"github.com/msto63/devmon/foundation/monitor/dispatch"
	"github.com/msto63/devmon/foundation/monitor/fault"
	"github.com/msto63/devmon/foundation/monitor/member"
	"github.com/msto63/devmon/foundation/monitor/objects"
	"github.com/msto63/devmon/foundation/monitor/render"
	"github.com/msto63/devmon/foundation/monitor/token"
)

// Options configures the engine
type Options struct {
	// Registry holds the addressable objects (optional, a new registry with
	// the default usings is created)
	Registry *objects.Registry

	// Ambient is injected into leading parameters of its type, e.g. the
	// machine the devices belong to (optional)
	Ambient interface{}

	// Renderer formats results (optional, defaults to hexadecimal numbers)
	Renderer *render.Renderer

	// MaxChainDepth bounds chained segments (default: dispatch.DefaultMaxChainDepth)
	MaxChainDepth int

	// Logger for engine operations (optional, defaults to the default logger)
	Logger *mdwlog.Logger
}

// Result is the outcome of one command
type Result struct {
	// Value is what the member returned, nil for writes and void methods
	Value interface{}

	// Text is the rendered value, or the usage listing
	Text string

	RequestID string
	Duration  time.Duration
}

// Engine executes monitor commands
type Engine struct {
	registry   *objects.Registry
	extensions *member.Extensions
	cache      *member.Cache
	binder     *binder.Binder
	dispatcher *dispatch.Dispatcher
	renderer   *render.Renderer
	ambient    interface{}
	logger     *mdwlog.Logger

	variables map[string][]token.Token
	mutex     sync.RWMutex
}

// NewEngine creates an engine
func NewEngine(opts Options) *Engine {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.Registry == nil {
		opts.Registry = objects.New(objects.Options{Logger: opts.Logger})
	}
	if opts.Renderer == nil {
		opts.Renderer = render.New(render.Hexadecimal)
	}

	e := &Engine{
		registry:   opts.Registry,
		extensions: member.NewExtensions(),
		renderer:   opts.Renderer,
		ambient:    opts.Ambient,
		logger:     opts.Logger.WithField("component", "monitor"),
		variables:  make(map[string][]token.Token),
	}

	var ambientType reflect.Type
	if opts.Ambient != nil {
		ambientType = reflect.TypeOf(opts.Ambient)
	}
	e.cache = member.NewCache(member.Options{
		Extensions:  e.extensions,
		AmbientType: ambientType,
		Logger:      opts.Logger,
	})
	e.binder = binder.New(coerce.New(e.registry.Namespaces()...))
	e.dispatcher = dispatch.New(dispatch.Options{
		Cache:         e.cache,
		Binder:        e.binder,
		Ambient:       func() interface{} { return e.ambient },
		MaxChainDepth: opts.MaxChainDepth,
		Logger:        opts.Logger,
	})
	return e
}

// Registry returns the object registry
func (e *Engine) Registry() *objects.Registry { return e.registry }

// Renderer returns the result renderer
func (e *Engine) Renderer() *render.Renderer { return e.renderer }

// Execute tokenizes line and runs it
func (e *Engine) Execute(ctx context.Context, line string) (*Result, error) {
	tokens, err := token.Tokenize(line)
	if err != nil {
		return nil, err
	}
	return e.ExecuteTokens(ctx, tokens)
}

// ExecuteTokens runs a tokenized command. The first token names the device,
// the rest is passed to the dispatcher.
func (e *Engine) ExecuteTokens(ctx context.Context, tokens []token.Token) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	requestID := uuid.NewString()
	logger := e.logger.WithField("request_id", requestID)
	timer := logger.StartTimer("monitor.execute")

	result, err := e.run(timer, tokens)
	if err != nil {
		timer.StopWithError(err)
		if f, ok := fault.As(err); ok {
			logger.Debug("command fault", mdwlog.Fields{"kind": f.Kind.String(), "message": f.Message})
		}
		return nil, err
	}
	result.RequestID = requestID
	result.Duration = timer.Stop()
	return result, nil
}

func (e *Engine) run(timer *mdwlog.Timer, tokens []token.Token) (*Result, error) {
	if len(tokens) == 0 {
		return &Result{}, nil
	}
	if assigned, err := e.assignment(tokens); assigned || err != nil {
		return &Result{}, err
	}

	tokens, err := e.expand(tokens)
	if err != nil {
		return nil, err
	}
	if tokens[0].Kind != token.Literal {
		return nil, fault.Syntaxf("Expected a device name, got %s", tokens[0])
	}

	name, target, rest, err := e.locate(tokens[0].Text)
	if err != nil {
		return nil, err
	}
	rest = append(rest, tokens[1:]...)
	timer.Checkpoint("device located", mdwlog.Fields{"device": name, "tokens": len(rest)})

	if len(rest) == 0 {
		text, err := e.usage(name, target)
		if err != nil {
			return nil, err
		}
		return &Result{Text: text}, nil
	}

	value, err := e.Invoke(name, target, rest)
	if err != nil {
		return nil, err
	}
	return &Result{Value: value, Text: e.renderer.Render(value)}, nil
}

// locate finds the device called name. A dotted remainder past the longest
// registered path becomes leading member tokens, so "sysbus.uart0.BaudRate"
// reads the BaudRate of sysbus.uart0.
func (e *Engine) locate(name string) (string, interface{}, []token.Token, error) {
	m, ok := e.registry.Resolve(name)
	if ok {
		return m.Name, m.Object, nil, nil
	}
	if m.Longest != "" {
		remainder := strings.TrimPrefix(strings.TrimPrefix(m.Prefix+name, m.Longest), ".")
		segments := strings.Split(remainder, ".")
		if target, found := e.registry.Get(m.Longest); found && e.hasMember(target, segments[0]) {
			rest := make([]token.Token, len(segments))
			for i, s := range segments {
				rest[i] = token.NewLiteral(s)
			}
			return m.Longest, target, rest, nil
		}
		return "", nil, nil, fault.Resolutionf("Could not find device %s, the longest match is %s.", name, m.Longest).WithName(name)
	}
	return "", nil, nil, fault.Resolutionf("Could not find device %s.", name).WithName(name)
}

func (e *Engine) hasMember(target interface{}, name string) bool {
	set, err := e.cache.For(target)
	return err == nil && set.Has(name)
}

// Invoke runs tokens against target, which is addressed as name in
// messages. Panics raised by members are returned as invocation errors.
func (e *Engine) Invoke(name string, target interface{}, tokens []token.Token) (value interface{}, err error) {
	defer func() {
		if p := recover(); p != nil {
			e.logger.Error("member panicked", mdwlog.Fields{"device": name, "panic": p})
			value = nil
			var perr *mdwerror.Error
			if cause, ok := p.(error); ok {
				perr = mdwerror.Wrap(cause, name+": member panicked")
			} else {
				perr = mdwerror.Newf("%s: member panicked: %v", name, p)
			}
			err = perr.WithCode(mdwerror.CodeMonitorInvocation).WithDetail("object", name)
		}
	}()
	return e.dispatcher.Execute(name, target, tokens)
}

// Usage returns the usage listing of the device called name
func (e *Engine) Usage(name string) (string, error) {
	resolved, target, _, err := e.locate(name)
	if err != nil {
		return "", err
	}
	return e.usage(resolved, target)
}

func (e *Engine) usage(name string, target interface{}) (string, error) {
	set, err := e.cache.For(target)
	if err != nil {
		return "", mdwerror.Wrap(err, "member resolution failed").WithCode(mdwerror.CodeInternal).WithDetail("object", name)
	}
	return e.renderer.Usage(name, set, ""), nil
}

// UsageFor returns the usage listing of the command a parameters mismatch
// or ambiguous overload fault was raised for, or "" for other errors.
func (e *Engine) UsageFor(err error) string {
	f, ok := fault.As(err)
	if !ok || f.OwnerType == nil || f.Command == "" {
		return ""
	}
	set, cerr := e.cache.Get(f.OwnerType)
	if cerr != nil {
		return ""
	}
	return e.renderer.Usage(f.Name, set, f.Command)
}

// RegisterExtension adds fn as an extension command and clears the member
// cache so the next lookup sees it.
func (e *Engine) RegisterExtension(name string, fn interface{}, params ...member.ParameterDefinition) error {
	if err := e.extensions.Register(name, fn, params...); err != nil {
		return mdwerror.Wrap(err, "extension registration failed").WithCode(mdwerror.CodeInvalidInput).WithDetail("extension", name)
	}
	e.ClearCache()
	e.logger.Debug("extension registered", mdwlog.Fields{"extension": name})
	return nil
}

// ClearCache drops all cached member sets
func (e *Engine) ClearCache() {
	e.cache.Clear()
}

// CacheStats returns member cache statistics
func (e *Engine) CacheStats() member.Stats {
	return e.cache.Stats()
}
