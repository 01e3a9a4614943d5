package command

import (
	"context"
	"log/slog"
	"time"

	"github.com/ib-77/ropcmd/pkg/rop"
	"github.com/ib-77/ropcmd/pkg/rop/logger"
)

// Middleware wraps a Caller to add cross-cutting behavior.
type Middleware[V any] func(next Caller[V]) Caller[V]

// CallerFunc adapts a function to Caller.
type CallerFunc[V any] struct {
	name string
	fn   func(ctx context.Context, args Args) (rop.Result[V], error)
}

func NewCallerFunc[V any](name string, fn func(ctx context.Context, args Args) (rop.Result[V], error)) *CallerFunc[V] {
	return &CallerFunc[V]{name: name, fn: fn}
}

func (c *CallerFunc[V]) Name() string {
	return c.name
}

func (c *CallerFunc[V]) Call(ctx context.Context, args Args) (rop.Result[V], error) {
	return c.fn(ctx, args)
}

// Wrap applies middleware in order: the first one is the outermost.
func Wrap[V any](c Caller[V], middleware ...Middleware[V]) Caller[V] {
	for i := len(middleware) - 1; i >= 0; i-- {
		c = middleware[i](c)
	}
	return c
}

// Logging logs each call with its status and duration.
func Logging[V any](l *slog.Logger) Middleware[V] {
	return func(next Caller[V]) Caller[V] {
		return NewCallerFunc(next.Name(), func(ctx context.Context, args Args) (rop.Result[V], error) {
			start := time.Now()
			l.InfoContext(ctx, "command started", logger.Command(next.Name()))

			res, err := next.Call(ctx, args)
			duration := time.Since(start)

			switch {
			case err != nil:
				l.ErrorContext(ctx, "command faulted",
					logger.Command(next.Name()),
					logger.Duration(duration),
					logger.Error(err))
			case !res.IsSuccess():
				l.WarnContext(ctx, "command did not succeed",
					logger.Command(next.Name()),
					logger.Duration(duration),
					logger.Result(res))
			default:
				l.InfoContext(ctx, "command completed",
					logger.Command(next.Name()),
					logger.Duration(duration))
			}

			return res, err
		})
	}
}
