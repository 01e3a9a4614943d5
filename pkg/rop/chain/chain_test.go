package chain

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/ropcmd/pkg/rop"
	"github.com/ib-77/ropcmd/pkg/rop/command"
)

func result[T any](t *testing.T, c *Chain[T]) rop.Result[T] {
	t.Helper()
	out, err := c.Result()
	if err != nil {
		t.Fatalf("unexpected fault: %v", err)
	}
	return out
}

func TestStart_Result_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	out := result(t, Start(ctx, rop.Success(10)))
	if !out.IsSuccess() || out.Value() != 10 {
		t.Fatalf("expected success with 10, got success=%v, val=%v, err=%v", out.IsSuccess(), out.Value(), out.Err())
	}
}

func TestFromValue_Success(t *testing.T) {
	t.Parallel()
	out := result(t, FromValue(context.Background(), 7))
	if !out.IsSuccess() || out.Value() != 7 {
		t.Fatalf("expected success with 7, got success=%v, val=%v, err=%v", out.IsSuccess(), out.Value(), out.Err())
	}
}

func TestThen_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	called := false
	c := Then(Start(ctx, rop.Failure[int](errors.New("boom"))), func(ctx context.Context, v int) rop.Result[string] {
		called = true
		return rop.Success("ok")
	})
	out := result(t, c)
	if out.IsSuccess() || out.Err() == nil || out.Err().Error() != "boom" {
		t.Fatalf("expected failure 'boom', got success=%v err=%v", out.IsSuccess(), out.Err())
	}
	if called {
		t.Fatalf("Then onSuccess must not be called on failure input")
	}
}

func TestThen_PropagateHalt(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	called := false
	c := Then(Start(ctx, rop.Halt(0, errors.New("halt"))), func(ctx context.Context, v int) rop.Result[string] {
		called = true
		return rop.Success("x")
	})
	out := result(t, c)
	if !out.IsHalted() || out.Err() == nil || out.Err().Error() != "halt" {
		t.Fatalf("expected halted 'halt', got status=%v err=%v", out.Status(), out.Err())
	}
	if out.Kind() != rop.HaltingKind {
		t.Fatalf("expected halting kind, got %v", out.Kind())
	}
	if called {
		t.Fatalf("Then onSuccess must not be called on halted input")
	}
}

func TestThenTry_SuccessAndError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := result(t, ThenTry(FromValue(ctx, 3), func(ctx context.Context, v int) (string, error) {
		return "val_" + strconv.Itoa(v), nil
	}))
	if !out.IsSuccess() || out.Value() != "val_3" {
		t.Fatalf("expected success 'val_3', got success=%v val=%v err=%v", out.IsSuccess(), out.Value(), out.Err())
	}

	out2 := result(t, ThenTry(FromValue(ctx, 9), func(ctx context.Context, v int) (string, error) {
		return "", errors.New("try-error")
	}))
	if !out2.IsFailure() || out2.Err() == nil || out2.Err().Error() != "try-error" {
		t.Fatalf("expected failure 'try-error', got success=%v err=%v", out2.IsSuccess(), out2.Err())
	}

	out3 := result(t, ThenTry(FromValue(ctx, 1), func(ctx context.Context, v int) (string, error) {
		return "", context.Canceled
	}))
	if !out3.IsHalted() {
		t.Fatalf("expected cancellation to halt, got %v", out3.Status())
	}
}

func TestMap_SuccessAndFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := result(t, Map(FromValue(ctx, 5), func(ctx context.Context, v int) string { return "n:" + strconv.Itoa(v) }))
	if !out.IsSuccess() || out.Value() != "n:5" {
		t.Fatalf("expected success 'n:5', got success=%v val=%v err=%v", out.IsSuccess(), out.Value(), out.Err())
	}

	out2 := result(t, Map(Start(ctx, rop.Failure[int](errors.New("oops"))), func(ctx context.Context, v int) string { return "ignored" }))
	if out2.IsSuccess() || out2.Err() == nil || out2.Err().Error() != "oops" {
		t.Fatalf("expected failure 'oops', got success=%v err=%v", out2.IsSuccess(), out2.Err())
	}
}

func TestEnsure_SideEffectCalledOnSuccess(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	called := false
	out := result(t, FromValue(ctx, 11).Ensure(func(ctx context.Context, v int) { called = true }))
	if !out.IsSuccess() || out.Value() != 11 {
		t.Fatalf("expected success with 11, got success=%v val=%v err=%v", out.IsSuccess(), out.Value(), out.Err())
	}
	if !called {
		t.Fatalf("expected Ensure to invoke onSuccess for success result")
	}

	called = false
	out2 := result(t, Start(ctx, rop.Failure[int](errors.New("x"))).Ensure(func(ctx context.Context, v int) { called = true }))
	if out2.IsSuccess() || out2.Err() == nil || out2.Err().Error() != "x" {
		t.Fatalf("expected failure 'x', got success=%v err=%v", out2.IsSuccess(), out2.Err())
	}
	if called {
		t.Fatalf("Ensure onSuccess must not be called for failure result")
	}
}

func TestThenCall(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	calls := 0
	double := command.New("Double", func(ctx context.Context, args command.Args) command.Outcome[int] {
		calls++
		n, _ := command.Arg[int](args, 0)
		return command.Value(n * 2)
	}, command.WithInstrumentation(command.NewInstrumentation()))
	toArgs := func(v int) command.Args { return command.NewArgs(v) }

	out := result(t, ThenCall[int, int](FromValue(ctx, 21), double, toArgs))
	if !out.IsSuccess() || out.Value() != 42 {
		t.Fatalf("expected success with 42, got success=%v val=%v err=%v", out.IsSuccess(), out.Value(), out.Err())
	}

	out2 := result(t, ThenCall[int, int](Start(ctx, rop.Failure[int](errors.New("skip"))), double, toArgs))
	if out2.IsSuccess() || out2.Err().Error() != "skip" {
		t.Fatalf("expected failure 'skip', got success=%v err=%v", out2.IsSuccess(), out2.Err())
	}
	if calls != 1 {
		t.Fatalf("expected the command to run once, got %d", calls)
	}
}

func TestThenCall_FaultIsKept(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	missing := command.New[int]("Missing", nil)
	c := Map(ThenCall[int, int](FromValue(ctx, 1), missing, func(v int) command.Args { return command.NewArgs(v) }),
		func(ctx context.Context, v int) string { return "unreachable" })

	out, err := c.Result()
	if err == nil {
		t.Fatalf("expected a fault from a command without implementation")
	}
	if out.IsSuccess() {
		t.Fatalf("expected failure, got success")
	}
}

func TestFinally_SuccessFailureHalt(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	collapse := func(c *Chain[int]) string {
		return Finally(c,
			func(ctx context.Context, v int) string { return "ok" },
			func(ctx context.Context, err error) string { return "fail" },
			func(ctx context.Context, err error) string { return "halt" },
		)
	}

	if s := collapse(FromValue(ctx, 2)); s != "ok" {
		t.Fatalf("expected 'ok', got %q", s)
	}
	if f := collapse(Start(ctx, rop.Failure[int](errors.New("e")))); f != "fail" {
		t.Fatalf("expected 'fail', got %q", f)
	}
	if h := collapse(Start(ctx, rop.Halt(0, errors.New("h")))); h != "halt" {
		t.Fatalf("expected 'halt', got %q", h)
	}
}
