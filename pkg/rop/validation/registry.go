package validation

import (
	"errors"
	"sync"
)

// ErrInvalidOptions is returned by built-in validators missing a required option.
var ErrInvalidOptions = errors.New("invalid validator options")

// Func is a registry validator. It returns a non-empty failure message when
// value is invalid, and an error only for misuse (e.g. a missing option).
type Func func(value any, as string, opts Options) (failure string, err error)

// Registry maps method names ("validate_<type>") to validators.
type Registry struct {
	mu    sync.RWMutex
	funcs map[string]Func
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry used by NewValidator.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// NewRegistry returns a registry preloaded with the built-in validators.
func NewRegistry() *Registry {
	r := &Registry{funcs: make(map[string]Func, len(builtins))}
	for typ, fn := range builtins {
		r.funcs["validate_"+typ] = fn
	}
	return r
}

// Register adds or replaces the validator for typ.
func (r *Registry) Register(typ string, fn Func) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.funcs["validate_"+Canonicalize(typ)] = fn
}

// Lookup finds a validator by method name.
func (r *Registry) Lookup(method string) (Func, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.funcs[method]
	return fn, ok
}
