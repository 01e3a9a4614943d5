package list

import (
	"slices"

	"github.com/ib-77/ropcmd/pkg/rop"
	"github.com/ib-77/ropcmd/pkg/rop/errs"
)

// List is an immutable ordered collection of results. The empty result
// (rop.Empty) stands for "no result in this slot".
type List[T any] struct {
	results      []rop.Result[T]
	value        []T
	hasValue     bool
	err          error
	hasErr       bool
	status       rop.Status
	allowPartial bool
}

// Option overrides a derived part of the reduced result.
type Option[T any] func(*List[T])

// WithValue overrides the derived value slice.
func WithValue[T any](value []T) Option[T] {
	return func(l *List[T]) {
		l.value = value
		l.hasValue = true
	}
}

// WithError overrides the derived error. A nil error is a valid override.
func WithError[T any](err error) Option[T] {
	return func(l *List[T]) {
		l.err = err
		l.hasErr = true
	}
}

// WithStatus overrides the derived status.
func WithStatus[T any](s rop.Status) Option[T] {
	return func(l *List[T]) {
		l.status = s
	}
}

// AllowPartial makes the list a success when at least one member succeeded.
// An empty list stays a success.
func AllowPartial[T any]() Option[T] {
	return func(l *List[T]) {
		l.allowPartial = true
	}
}

func New[T any](results []rop.Result[T], opts ...Option[T]) List[T] {
	l := List[T]{results: slices.Clone(results)}
	for _, opt := range opts {
		opt(&l)
	}
	return l
}

// Of is a variadic shortcut for New without options.
func Of[T any](results ...rop.Result[T]) List[T] {
	return New(results)
}

// Append returns a new list with r added at the end. Overrides are kept.
func (l List[T]) Append(r rop.Result[T]) List[T] {
	out := l
	out.results = append(slices.Clone(l.results), r)
	return out
}

// Results returns the members in their original order.
func (l List[T]) Results() []rop.Result[T] {
	return slices.Clone(l.results)
}

func (l List[T]) Len() int {
	return len(l.results)
}

// Values returns the member values, the zero value for empty slots.
func (l List[T]) Values() []T {
	values := make([]T, len(l.results))
	for i, r := range l.results {
		values[i] = r.Value()
	}
	return values
}

// Errors returns the member errors with nil for members without one.
func (l List[T]) Errors() []error {
	errors := make([]error, len(l.results))
	for i, r := range l.results {
		errors[i] = r.Err()
	}
	return errors
}

// Statuses returns the member statuses; empty slots report an empty status.
func (l List[T]) Statuses() []rop.Status {
	statuses := make([]rop.Status, len(l.results))
	for i, r := range l.results {
		if !r.IsEmpty() {
			statuses[i] = r.Status()
		}
	}
	return statuses
}

func (l List[T]) Value() []T {
	if l.hasValue {
		return l.value
	}
	return l.Values()
}

func (l List[T]) Err() error {
	if l.hasErr {
		return l.err
	}

	errors := l.Errors()
	for _, err := range errors {
		if !rop.IsNil(err) {
			return errs.NewMultipleErrors(errors)
		}
	}
	return nil
}

func (l List[T]) Status() rop.Status {
	if l.status != "" {
		return l.status
	}
	if l.allowPartial {
		return l.partialStatus()
	}

	for _, r := range l.results {
		if !r.IsEmpty() && !r.IsSuccess() {
			return rop.StatusFailure
		}
	}
	return rop.StatusSuccess
}

func (l List[T]) partialStatus() rop.Status {
	if len(l.results) == 0 {
		return rop.StatusSuccess
	}
	for _, r := range l.results {
		if r.IsEmpty() || r.IsSuccess() {
			return rop.StatusSuccess
		}
	}
	return rop.StatusFailure
}

// Result reduces the list to one result. A status override that the default
// kind does not declare is reported as rop.ErrInvalidStatus.
func (l List[T]) Result() (rop.Result[[]T], error) {
	return rop.New(l.Value(), l.Err(), rop.WithStatus(l.Status()), l.kindOption())
}

// MustResult is like Result but panics on an invalid status override.
func (l List[T]) MustResult() rop.Result[[]T] {
	r, err := l.Result()
	if err != nil {
		panic(err)
	}
	return r
}

// AsResult implements rop.Resulter.
func (l List[T]) AsResult() rop.Result[any] {
	return l.MustResult().AsResult()
}

func (l List[T]) kindOption() rop.Option {
	if l.status != "" && !rop.DefaultKind.Valid(l.status) && rop.HaltingKind.Valid(l.status) {
		return rop.WithKind(rop.HaltingKind)
	}
	return rop.WithKind(rop.DefaultKind)
}
