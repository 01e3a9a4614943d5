package command

import (
	"context"
	"sync"

	"github.com/ib-77/ropcmd/pkg/rop"
)

// CallRecord describes one finished call.
type CallRecord struct {
	Command string
	Args    Args
	Result  rop.Result[any]
	Err     error
}

// Observer is notified after calls of the commands it is registered for.
type Observer interface {
	Observe(ctx context.Context, call CallRecord)
}

type observerEntry struct {
	id       uint64
	observer Observer
}

// Instrumentation maps command names to observers. It is meant for tests.
type Instrumentation struct {
	mu        sync.RWMutex
	nextID    uint64
	observers map[string][]observerEntry
}

var defaultInstrumentation = NewInstrumentation()

// DefaultInstrumentation is the process-wide registry commands use unless
// WithInstrumentation is given.
func DefaultInstrumentation() *Instrumentation {
	return defaultInstrumentation
}

func NewInstrumentation() *Instrumentation {
	return &Instrumentation{observers: make(map[string][]observerEntry)}
}

// Register attaches o to calls of the named command. It panics on an empty
// name or nil observer. The returned func removes the registration.
func (i *Instrumentation) Register(name string, o Observer) (unregister func()) {
	if name == "" {
		panic("command: instrumentation requires a command name")
	}
	if o == nil {
		panic("command: instrumentation requires a non-nil observer")
	}

	i.mu.Lock()
	i.nextID++
	id := i.nextID
	i.observers[name] = append(i.observers[name], observerEntry{id: id, observer: o})
	i.mu.Unlock()

	return func() {
		i.mu.Lock()
		defer i.mu.Unlock()
		entries := i.observers[name]
		for idx, e := range entries {
			if e.id == id {
				i.observers[name] = append(entries[:idx:idx], entries[idx+1:]...)
				break
			}
		}
		if len(i.observers[name]) == 0 {
			delete(i.observers, name)
		}
	}
}

// Observers returns the observers registered for name.
func (i *Instrumentation) Observers(name string) []Observer {
	i.mu.RLock()
	defer i.mu.RUnlock()
	entries := i.observers[name]
	out := make([]Observer, len(entries))
	for idx, e := range entries {
		out[idx] = e.observer
	}
	return out
}

// Clear drops every registration.
func (i *Instrumentation) Clear() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.observers = make(map[string][]observerEntry)
}

func (i *Instrumentation) notify(ctx context.Context, call CallRecord) {
	for _, o := range i.Observers(call.Command) {
		o.Observe(ctx, call)
	}
}
