package command

import "github.com/ib-77/ropcmd/pkg/rop"

// Stepped is the outcome of a step: either the unwrapped value of a non
// failing result, or a short circuit holding the failing result (or the fault
// returned by the sub-call).
type Stepped[T any] struct {
	value  T
	result rop.Result[T]
	fault  error
	halted bool
}

// Step inspects the return of a sub-call:
//
//	user := command.Step(findUser.Call(ctx, args))
//	if !user.Ok() {
//	    return command.ShortCircuit[Receipt](user)
//	}
//	email := user.Value().Email
func Step[T any](r rop.Result[T], err error) Stepped[T] {
	if err != nil {
		return Stepped[T]{result: r, fault: err, halted: true}
	}
	if r.IsFailure() {
		return Stepped[T]{result: r, halted: true}
	}
	return Stepped[T]{value: r.Value(), result: r}
}

// StepResult steps over a result produced without a fault.
func StepResult[T any](r rop.Result[T]) Stepped[T] {
	return Step(r, nil)
}

// StepTry steps over a (value, error) pair; a non-nil error is a failure.
func StepTry[T any](v T, err error) Stepped[T] {
	if err != nil {
		return StepResult(rop.FailureWithValue(v, err))
	}
	return StepResult(rop.Success(v))
}

// Ok is false when the enclosing process must stop.
func (s Stepped[T]) Ok() bool {
	return !s.halted
}

func (s Stepped[T]) Value() T {
	return s.value
}

func (s Stepped[T]) Result() rop.Result[T] {
	return s.result
}

// ShortCircuit returns the stepped result from the enclosing process. The
// enclosing Call returns it unchanged, or returns the fault of the sub-call.
func ShortCircuit[V, T any](s Stepped[T]) Outcome[V] {
	if s.fault != nil {
		return Outcome[V]{kind: outcomeFault, fault: s.fault}
	}
	return From(rop.Convert[T, V](s.result))
}
