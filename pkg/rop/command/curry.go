package command

import (
	"context"

	"github.com/ib-77/ropcmd/pkg/rop"
)

// Curried binds arguments to an inner caller. Call-time positionals are
// appended after the bound ones, call-time keywords win over bound defaults and
// a call-time block replaces the bound block.
type Curried[V any] struct {
	inner Caller[V]
	bound Args
}

func Curry[V any](c Caller[V], bound Args) *Curried[V] {
	return &Curried[V]{inner: c, bound: bound.clone()}
}

func (c *Curried[V]) Name() string {
	return c.inner.Name()
}

// Bound returns the bound arguments.
func (c *Curried[V]) Bound() Args {
	return c.bound.clone()
}

func (c *Curried[V]) Call(ctx context.Context, args Args) (rop.Result[V], error) {
	return c.inner.Call(ctx, c.bound.merge(args))
}

// Curry binds more arguments on top of the current ones.
func (c *Curried[V]) Curry(bound Args) *Curried[V] {
	return Curry[V](c, bound)
}
