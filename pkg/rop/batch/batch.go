package batch

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ib-77/ropcmd/pkg/rop"
	"github.com/ib-77/ropcmd/pkg/rop/command"
	"github.com/ib-77/ropcmd/pkg/rop/list"
	"github.com/ib-77/ropcmd/pkg/rop/logger"
)

// Map calls c once per input, building args with toArgs. The returned error
// joins the faults reported by individual calls; their slots hold the failure
// result the command returned next to the fault.
func Map[In, V any](ctx context.Context, c command.Caller[V], inputs []In,
	toArgs func(In) command.Args, opts ...list.Option[V]) (list.List[V], error) {

	calls := make([]command.Args, len(inputs))
	for i, in := range inputs {
		calls[i] = toArgs(in)
	}
	return Each(ctx, c, calls, opts...)
}

// Each calls c once per args entry.
func Each[V any](ctx context.Context, c command.Caller[V], calls []command.Args,
	opts ...list.Option[V]) (list.List[V], error) {

	start := time.Now()
	results := make([]rop.Result[V], len(calls))
	faults := make([]error, len(calls))

	done := func() (list.List[V], error) {
		l := list.New(results, opts...)
		GetLogger(ctx).DebugContext(ctx, "batch finished",
			logger.Command(c.Name()),
			logger.Count("items", len(calls)),
			logger.Status(l.Status()),
			logger.Elapsed(start),
			logger.Errors(faults...))
		return l, errors.Join(faults...)
	}

	workers := GetWorkerMaxCount(ctx, 1)
	if workers <= 1 {
		for i, args := range calls {
			results[i], faults[i] = callOne(ctx, c, args)
		}
		return done()
	}

	sem := make(chan struct{}, workers)
	wg := &sync.WaitGroup{}
	for i, args := range calls {
		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			for j := i; j < len(calls); j++ {
				results[j] = halted[V](ctx)
			}
			wg.Wait()
			return done()
		}

		wg.Add(1)
		go func(i int, args command.Args) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i], faults[i] = callOne(ctx, c, args)
		}(i, args)
	}
	wg.Wait()

	return done()
}

func callOne[V any](ctx context.Context, c command.Caller[V], args command.Args) (rop.Result[V], error) {
	if ctx.Err() != nil {
		return halted[V](ctx), nil
	}
	return c.Call(ctx, args)
}

func halted[V any](ctx context.Context) rop.Result[V] {
	var zero V
	return rop.Halt(zero, ctx.Err())
}
