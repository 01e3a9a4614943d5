package solo

import (
	"context"
	"errors"

	"github.com/ib-77/ropcmd/pkg/rop"
)

func Succeed[T any](input T) rop.Result[T] {
	return rop.Success(input)
}

func Fail[T any](err error) rop.Result[T] {
	return rop.Failure[T](err)
}

func Halt[T any](err error) rop.Result[T] {
	var zero T
	return rop.Halt(zero, err)
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) rop.Result[T] {
	return AndValidate(ctx, Succeed(input), validate)
}

func AndValidate[T any](ctx context.Context, input rop.Result[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) rop.Result[T] {

	if !input.IsSuccess() {
		return input
	}

	if isValid, errMsg := validate(ctx, input.Value()); !isValid {
		return rop.FailureWithValue(input.Value(), errors.New(errMsg))
	}
	return input
}

// ValidateAll runs every validator on the input. With breakOnError it stops
// at the first failure; otherwise failures are joined in validator order.
func ValidateAll[T any](ctx context.Context, input rop.Result[T], breakOnError bool,
	validators ...func(ctx context.Context, in T) (valid bool, errMsg string)) rop.Result[T] {

	if !input.IsSuccess() {
		return input
	}

	var errs []error
	for _, validate := range validators {
		if ctx.Err() != nil {
			return rop.Halt(input.Value(), ctx.Err())
		}
		if valid, errMsg := validate(ctx, input.Value()); !valid {
			errs = append(errs, errors.New(errMsg))
			if breakOnError {
				break
			}
		}
	}

	if len(errs) == 0 {
		return input
	}
	return rop.FailureWithValue(input.Value(), errors.Join(errs...))
}

func Switch[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) rop.Result[Out]) rop.Result[Out] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return rop.Convert[In, Out](input)
}

func Map[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out] {

	if input.IsSuccess() {
		return rop.Success(onSuccess(ctx, input.Value()))
	}
	return rop.Convert[In, Out](input)
}

func Try[In any, Out any](ctx context.Context, input rop.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Result[Out] {

	if !input.IsSuccess() {
		return rop.Convert[In, Out](input)
	}

	out, err := onTryExecute(ctx, input.Value())
	if err != nil {
		if rop.IsCancellationError(err) {
			return rop.Halt(out, err)
		}
		return rop.Failure[Out](err)
	}
	return rop.Success(out)
}

func Tee[T any](ctx context.Context,
	input rop.Result[T],
	onSuccess func(ctx context.Context, r T)) rop.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Value())
	}
	return input
}

func DoubleTee[T any](ctx context.Context, input rop.Result[T],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err error),
	onHalt func(ctx context.Context, err error)) rop.Result[T] {

	switch {
	case input.IsSuccess():
		onSuccess(ctx, input.Value())
	case input.IsHalted():
		onHalt(ctx, input.Err())
	default:
		onError(ctx, input.Err())
	}
	return input
}

func DoubleMap[In any, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out) rop.Result[Out] {

	if input.IsSuccess() {
		return rop.Success(onSuccess(ctx, input.Value()))
	}
	if input.IsHalted() {
		return rop.Convert[In, Out](input)
	}
	return rop.FailureWithValue(onError(ctx, input.Err()), input.Err())
}

func FailOnError[T any](ctx context.Context, input rop.Result[T],
	maybeErr func(ctx context.Context, in T) error) rop.Result[T] {

	if input.IsSuccess() {
		if err := maybeErr(ctx, input.Value()); err != nil {
			return rop.FailureWithValue(input.Value(), err)
		}
	}
	return input
}

func Finally[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out,
	onHalt func(ctx context.Context, err error) Out) Out {

	switch {
	case input.IsSuccess():
		return onSuccess(ctx, input.Value())
	case input.IsHalted():
		return onHalt(ctx, input.Err())
	default:
		return onError(ctx, input.Err())
	}
}
