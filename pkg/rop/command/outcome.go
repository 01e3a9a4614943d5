package command

import "github.com/ib-77/ropcmd/pkg/rop"

type outcomeKind int

const (
	outcomeValue outcomeKind = iota
	outcomeResult
	outcomeFault
)

// Outcome is what a process returns: a plain value to wrap, a result to pass
// through, or a fault propagated from a stepped sub-call.
type Outcome[V any] struct {
	kind   outcomeKind
	value  V
	result rop.Result[V]
	err    error
	status rop.Status
	fault  error
}

// Value wraps v into a success result (unless WithError/WithStatus say otherwise).
func Value[V any](v V) Outcome[V] {
	return Outcome[V]{kind: outcomeValue, value: v}
}

// From passes r through unchanged.
func From[V any](r rop.Result[V]) Outcome[V] {
	return Outcome[V]{kind: outcomeResult, result: r}
}

// Fail produces a failure carrying err.
func Fail[V any](err error) Outcome[V] {
	var zero V
	return Value(zero).WithError(err).WithStatus(rop.StatusFailure)
}

// Try converts a (value, error) pair; a non-nil error fails the call.
func Try[V any](v V, err error) Outcome[V] {
	if err != nil {
		return Value(v).WithError(err).WithStatus(rop.StatusFailure)
	}
	return Value(v)
}

func (o Outcome[V]) WithError(err error) Outcome[V] {
	o.err = err
	return o
}

func (o Outcome[V]) WithStatus(s rop.Status) Outcome[V] {
	o.status = s
	return o
}

// Success and Failure build explicit results inside a process.
func Success[V any](v V) rop.Result[V] {
	return rop.Success(v)
}

func Failure[V any](err error) rop.Result[V] {
	return rop.Failure[V](err)
}
