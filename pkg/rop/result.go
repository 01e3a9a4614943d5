package rop

import (
	"reflect"
	"time"

	"github.com/google/uuid"
)

// Result carries the value, error and status produced by a command.
// The zero value is the empty result: it was never produced by anything.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	kind      *Kind
	value     T
	err       error
	status    Status
}

type options struct {
	kind   *Kind
	status Status
}

// Option customizes a Result built with New.
type Option func(*options)

// WithStatus sets an explicit status. It must be declared by the result kind.
func WithStatus(s Status) Option {
	return func(o *options) {
		o.status = s
	}
}

// WithKind selects the kind whose statuses the result is validated against.
func WithKind(k *Kind) Option {
	return func(o *options) {
		if k != nil {
			o.kind = k
		}
	}
}

// New builds a result. Without an explicit status it is a failure when err is
// non-nil and a success otherwise.
func New[T any](value T, err error, opts ...Option) (Result[T], error) {
	o := options{kind: DefaultKind}
	for _, opt := range opts {
		opt(&o)
	}

	if o.status != "" {
		if verr := o.kind.validate(o.status); verr != nil {
			return Result[T]{}, verr
		}
	}

	return Result[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		kind:      o.kind,
		value:     value,
		err:       err,
		status:    o.status,
	}, nil
}

// MustNew is like New but panics on an invalid status.
func MustNew[T any](value T, err error, opts ...Option) Result[T] {
	r, verr := New(value, err, opts...)
	if verr != nil {
		panic(verr)
	}
	return r
}

func Success[T any](value T) Result[T] {
	return MustNew(value, nil)
}

func Failure[T any](err error) Result[T] {
	var zero T
	return MustNew(zero, err, WithStatus(StatusFailure))
}

// FailureWithValue keeps a partial value next to the error.
func FailureWithValue[T any](value T, err error) Result[T] {
	return MustNew(value, err, WithStatus(StatusFailure))
}

// Halt builds a halted result of HaltingKind.
func Halt[T any](value T, err error) Result[T] {
	return MustNew(value, err, WithKind(HaltingKind), WithStatus(StatusHalted))
}

// Empty returns the zero result, used as "no result" placeholder.
func Empty[T any]() Result[T] {
	return Result[T]{}
}

// Convert moves a result to another value type keeping its identity, kind,
// error and status. The value survives only when it is assignable to Out.
func Convert[In, Out any](from Result[In]) Result[Out] {
	out := Result[Out]{
		id:        from.id,
		createdAt: from.createdAt,
		kind:      from.kind,
		err:       from.err,
		status:    from.status,
	}
	if v, ok := any(from.value).(Out); ok {
		out.value = v
	}
	return out
}

func (r Result[T]) Value() T {
	return r.value
}

func (r Result[T]) Err() error {
	return r.err
}

// Status returns the explicit status, or failure when an error is present,
// or success.
func (r Result[T]) Status() Status {
	if r.status != "" {
		return r.status
	}
	if !IsNil(r.err) {
		return StatusFailure
	}
	return StatusSuccess
}

func (r Result[T]) IsSuccess() bool {
	return r.Status() == StatusSuccess
}

func (r Result[T]) IsFailure() bool {
	return r.Status() == StatusFailure
}

func (r Result[T]) IsHalted() bool {
	return r.Status() == StatusHalted
}

// IsEmpty is true for the zero Result.
func (r Result[T]) IsEmpty() bool {
	return r.kind == nil
}

// Kind returns the result kind, DefaultKind for the empty result.
func (r Result[T]) Kind() *Kind {
	if r.kind == nil {
		return DefaultKind
	}
	return r.kind
}

func (r Result[T]) ID() uuid.UUID {
	return r.id
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

// Properties is the structural projection used for comparison.
type Properties struct {
	Value  any
	Err    error
	Status Status
}

func (r Result[T]) Properties() Properties {
	return Properties{Value: r.value, Err: r.err, Status: r.Status()}
}

// Equal compares kind, value, error and status. Identity fields are ignored.
func (r Result[T]) Equal(other Result[T]) bool {
	return Same(r, other)
}

// AsResult implements Resulter.
func (r Result[T]) AsResult() Result[any] {
	return Result[any]{
		id:        r.id,
		createdAt: r.createdAt,
		kind:      r.kind,
		value:     r.value,
		err:       r.err,
		status:    r.status,
	}
}

// Same compares any two result-like values structurally.
func Same(a, b Resulter) bool {
	ra, rb := a.AsResult(), b.AsResult()
	if ra.Kind() != rb.Kind() {
		return false
	}
	pa, pb := ra.Properties(), rb.Properties()
	return pa.Status == pb.Status &&
		ErrorsEqual(pa.Err, pb.Err) &&
		reflect.DeepEqual(pa.Value, pb.Value)
}
