package command

import (
	"context"
	"sync"

	"github.com/ib-77/ropcmd/pkg/rop"
	"github.com/ib-77/ropcmd/pkg/rop/errs"
)

// Operation is a caller that remembers the result of its last call and exposes
// it directly. Before the first call every accessor reports an
// *errs.OperationNotCalled failure.
type Operation[V any] struct {
	caller Caller[V]

	mu     sync.RWMutex
	last   rop.Result[V]
	called bool
}

func NewOperation[V any](c Caller[V]) *Operation[V] {
	return &Operation[V]{caller: c}
}

func (o *Operation[V]) Name() string {
	return o.caller.Name()
}

func (o *Operation[V]) Call(ctx context.Context, args Args) (rop.Result[V], error) {
	res, err := o.caller.Call(ctx, args)

	o.mu.Lock()
	o.last = res
	o.called = true
	o.mu.Unlock()

	return res, err
}

func (o *Operation[V]) Called() bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.called
}

// Result returns the last result.
func (o *Operation[V]) Result() rop.Result[V] {
	o.mu.RLock()
	defer o.mu.RUnlock()
	if !o.called {
		return rop.Failure[V](errs.NewOperationNotCalled(o.caller.Name()))
	}
	return o.last
}

func (o *Operation[V]) Value() V {
	return o.Result().Value()
}

func (o *Operation[V]) Err() error {
	return o.Result().Err()
}

func (o *Operation[V]) Status() rop.Status {
	return o.Result().Status()
}

func (o *Operation[V]) IsSuccess() bool {
	return o.Result().IsSuccess()
}

func (o *Operation[V]) IsFailure() bool {
	return o.Result().IsFailure()
}

// AsResult implements rop.Resulter.
func (o *Operation[V]) AsResult() rop.Result[any] {
	return o.Result().AsResult()
}

// Reset forgets the last result.
func (o *Operation[V]) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.last = rop.Result[V]{}
	o.called = false
}
