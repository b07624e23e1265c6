// File: registry.go
// Title: Named Object Registry
// Description: Thread-safe registry of objects keyed by dotted path.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package objects

import (
	"sort"
	"strings"
	"sync"

	mdwerror "github.com/msto63/devmon/foundation/core/error"
	mdwlog "github.com/msto63/devmon/foundation/core/log"
	"github.com/msto63/devmon/foundation/monitor/coerce"
	"github.com/msto63/devmon/foundation/utils/stringx"
)

// DefaultUsing is the prefix retried when a name is not found as given
const DefaultUsing = "sysbus."

// Kind is the namespace an object belongs to
type Kind int

const (
	Peripheral Kind = iota
	Group
	HostInterface
	External
)

// Kinds lists the namespaces in lookup order
var Kinds = []Kind{Peripheral, Group, HostInterface, External}

// String returns the name of the kind
func (k Kind) String() string {
	switch k {
	case Peripheral:
		return "peripheral"
	case Group:
		return "group"
	case HostInterface:
		return "host interface"
	case External:
		return "external"
	default:
		return "unknown"
	}
}

// Options configures a registry
type Options struct {
	// Usings are prefixes tried in order when a name misses. nil selects
	// DefaultUsing; an empty slice disables the fallback.
	Usings []string
	Logger *mdwlog.Logger
}

// Match is the outcome of a name lookup
type Match struct {
	Object interface{}
	Kind   Kind
	Name   string // Registered name that matched
	Prefix string // Using prefix that was applied, if any

	// Longest is the longest registered path that prefixes the requested
	// name, including the using prefix it was found under.
	Longest string
}

type entry struct {
	object interface{}
	kind   Kind
}

// Registry holds named objects
type Registry struct {
	objects map[string]entry
	usings  []string
	logger  *mdwlog.Logger
	mutex   sync.RWMutex
}

// New creates an empty registry
func New(opts Options) *Registry {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	usings := opts.Usings
	if usings == nil {
		usings = []string{DefaultUsing}
	}
	return &Registry{
		objects: make(map[string]entry),
		usings:  append([]string(nil), usings...),
		logger:  opts.Logger.WithField("component", "object-registry"),
	}
}

// Register adds a peripheral under name
func (r *Registry) Register(name string, obj interface{}) error {
	return r.RegisterKind(Peripheral, name, obj)
}

// RegisterKind adds obj to the namespace kind
func (r *Registry) RegisterKind(kind Kind, name string, obj interface{}) error {
	if stringx.IsBlank(name) {
		return mdwerror.New("object name cannot be empty").WithCode(mdwerror.CodeInvalidInput)
	}
	if obj == nil {
		return mdwerror.New("object cannot be nil").WithCode(mdwerror.CodeInvalidInput).WithDetail("name", name)
	}
	if strings.HasPrefix(name, ".") || strings.HasSuffix(name, ".") || strings.Contains(name, "..") {
		return mdwerror.Newf("invalid object path %q", name).WithCode(mdwerror.CodeInvalidInput)
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.objects[name]; exists {
		return mdwerror.Newf("object %s already registered", name).WithCode(mdwerror.CodeInvalidInput)
	}
	r.objects[name] = entry{object: obj, kind: kind}

	r.logger.Debug("object registered", mdwlog.Fields{
		"name": name,
		"kind": kind.String(),
	})
	return nil
}

// Unregister removes name and reports whether it was present
func (r *Registry) Unregister(name string) bool {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.objects[name]; !exists {
		return false
	}
	delete(r.objects, name)
	r.logger.Debug("object unregistered", mdwlog.Fields{"name": name})
	return true
}

// Get returns the object registered under exactly name
func (r *Registry) Get(name string) (interface{}, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	e, ok := r.objects[name]
	return e.object, ok
}

// Names returns all registered names, sorted
func (r *Registry) Names() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	names := make([]string, 0, len(r.objects))
	for name := range r.objects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Usings returns the fallback prefixes
func (r *Registry) Usings() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return append([]string(nil), r.usings...)
}

// SetUsings replaces the fallback prefixes
func (r *Registry) SetUsings(usings []string) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.usings = append([]string(nil), usings...)
}

// TryGetByName finds name as given or under one of the usings. On a miss
// longestMatch is the longest registered prefix of the path, or "".
func (r *Registry) TryGetByName(name string) (obj interface{}, longestMatch string, ok bool) {
	m, ok := r.Resolve(name)
	return m.Object, m.Longest, ok
}

// Resolve is TryGetByName with the details of the match
func (r *Registry) Resolve(name string) (Match, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if e, ok := r.objects[name]; ok {
		return Match{Object: e.object, Kind: e.kind, Name: name, Longest: name}, true
	}
	best := Match{Longest: r.longestPrefix(name)}
	bestDepth := depth(best.Longest)

	for _, prefix := range r.usings {
		full := prefix + name
		if e, ok := r.objects[full]; ok {
			return Match{Object: e.object, Kind: e.kind, Name: full, Prefix: prefix, Longest: full}, true
		}
		longest := r.longestPrefix(full)
		if d := depth(longest) - depth(prefix); longest != "" && d > bestDepth {
			best = Match{Prefix: prefix, Longest: longest}
			bestDepth = d
		}
	}
	return best, false
}

// Lookup resolves name for argument conversion
func (r *Registry) Lookup(name string) (interface{}, bool) {
	m, ok := r.Resolve(name)
	return m.Object, ok
}

// Namespace returns a lookup restricted to one kind of object
func (r *Registry) Namespace(kind Kind) coerce.Namespace {
	return coerce.NamespaceFunc(func(name string) (interface{}, bool) {
		m, ok := r.Resolve(name)
		if !ok || m.Kind != kind {
			return nil, false
		}
		return m.Object, true
	})
}

// Namespaces returns one namespace per kind, in lookup order
func (r *Registry) Namespaces() []coerce.Namespace {
	out := make([]coerce.Namespace, len(Kinds))
	for i, kind := range Kinds {
		out[i] = r.Namespace(kind)
	}
	return out
}

// longestPrefix returns the longest registered path that is name or a
// dotted prefix of it. The caller holds the lock.
func (r *Registry) longestPrefix(name string) string {
	for path := name; path != ""; {
		if _, ok := r.objects[path]; ok {
			return path
		}
		i := strings.LastIndexByte(path, '.')
		if i < 0 {
			break
		}
		path = path[:i]
	}
	return ""
}

func depth(path string) int {
	path = strings.TrimSuffix(path, ".")
	if path == "" {
		return 0
	}
	return strings.Count(path, ".") + 1
}
