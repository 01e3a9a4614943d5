// Package spy records calls of commands by name for tests.
//
//	s := spy.On(t, "PublishBook")
//	_, _ = publish.Call(ctx, args)
//	s.AssertCalled(t, 1)
package spy

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/ropcmd/pkg/rop"
	"github.com/ib-77/ropcmd/pkg/rop/command"
)

// Spy is a command.Observer keeping every call it sees.
type Spy struct {
	name string

	mu    sync.Mutex
	calls []command.CallRecord
}

// On registers a spy on the default instrumentation for the test duration.
func On(t testing.TB, name string) *Spy {
	return OnRegistry(t, command.DefaultInstrumentation(), name)
}

// OnRegistry registers a spy on reg for the test duration.
func OnRegistry(t testing.TB, reg *command.Instrumentation, name string) *Spy {
	t.Helper()
	s := &Spy{name: name}
	t.Cleanup(reg.Register(name, s))
	return s
}

func (s *Spy) Observe(_ context.Context, call command.CallRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, call)
}

func (s *Spy) Name() string {
	return s.name
}

func (s *Spy) Calls() []command.CallRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]command.CallRecord(nil), s.calls...)
}

func (s *Spy) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

// LastResult returns the result of the latest call, or the empty result.
func (s *Spy) LastResult() rop.Result[any] {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.calls) == 0 {
		return rop.Empty[any]()
	}
	return s.calls[len(s.calls)-1].Result
}

func (s *Spy) AssertCalled(t testing.TB, times int) bool {
	t.Helper()
	return assert.Equal(t, times, s.CallCount(), "unexpected number of calls to %s", s.name)
}

func (s *Spy) AssertNotCalled(t testing.TB) bool {
	t.Helper()
	return assert.Zero(t, s.CallCount(), "%s should not have been called", s.name)
}

// AssertCalledWith checks that some call received the positional and keyword args.
func (s *Spy) AssertCalledWith(t testing.TB, args command.Args) bool {
	t.Helper()
	for _, call := range s.Calls() {
		if assert.ObjectsAreEqual(args.Positional(), call.Args.Positional()) &&
			assert.ObjectsAreEqual(args.Keywords(), call.Args.Keywords()) {
			return true
		}
	}
	return assert.Fail(t, "no matching call", "%s was not called with %v %v",
		s.name, args.Positional(), args.Keywords())
}
