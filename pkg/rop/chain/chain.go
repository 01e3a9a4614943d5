package chain

import (
	"context"

	"github.com/ib-77/ropcmd/pkg/rop"
	"github.com/ib-77/ropcmd/pkg/rop/command"
	"github.com/ib-77/ropcmd/pkg/rop/solo"
)

// Chain wraps a rop.Result with context to enable fluent chaining
type Chain[T any] struct {
	ctx    context.Context
	result rop.Result[T]
	fault  error
}

// Start creates a new chain from a rop.Result
func Start[T any](ctx context.Context, result rop.Result[T]) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return Start(ctx, rop.Success(value))
}

// Result returns the underlying rop.Result and the first command fault, if any.
func (c *Chain[T]) Result() (rop.Result[T], error) {
	return c.result, c.fault
}

// Then chains a function that returns rop.Result[U]
func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) rop.Result[U]) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Switch(c.ctx, c.result, onSuccess),
		fault:  c.fault,
	}
}

// ThenCall feeds the successful value to a command built by toArgs.
func ThenCall[T, U any](c *Chain[T], cmd command.Caller[U], toArgs func(T) command.Args) *Chain[U] {
	if !c.result.IsSuccess() {
		return &Chain[U]{ctx: c.ctx, result: rop.Convert[T, U](c.result), fault: c.fault}
	}
	res, err := cmd.Call(c.ctx, toArgs(c.result.Value()))
	return &Chain[U]{ctx: c.ctx, result: res, fault: err}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Try(c.ctx, c.result, tryOnSuccess),
		fault:  c.fault,
	}
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Map(c.ctx, c.result, onSuccess),
		fault:  c.fault,
	}
}

// Ensure performs a side effect without changing the result
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	return &Chain[T]{
		ctx:    c.ctx,
		result: solo.Tee(c.ctx, c.result, onSuccess),
		fault:  c.fault,
	}
}

// Finally collapses the chain into a final result using solo.Finally
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U, onFailure func(context.Context, error) U, onHalt func(context.Context, error) U) U {
	return solo.Finally(c.ctx, c.result, onSuccess, onFailure, onHalt)
}
