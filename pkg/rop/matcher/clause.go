package matcher

import (
	"context"
	"reflect"
	"slices"

	"github.com/ib-77/ropcmd/pkg/rop"
)

// Handler processes a matched result.
type Handler func(ctx context.Context, r rop.Result[any]) (any, error)

// Clause is one match rule: the statuses it is scoped to, optional type
// filters and a handler.
type Clause struct {
	statuses  []rop.Status
	errType   reflect.Type
	valueType reflect.Type
	handler   Handler
}

type ClauseOption func(*Clause)

// ErrorType filters on the dynamic type of the result error.
func ErrorType[T any]() ClauseOption {
	return WithErrorType(reflect.TypeFor[T]())
}

// ValueType filters on the dynamic type of the result value.
func ValueType[T any]() ClauseOption {
	return WithValueType(reflect.TypeFor[T]())
}

func WithErrorType(t reflect.Type) ClauseOption {
	return func(c *Clause) {
		c.errType = t
	}
}

func WithValueType(t reflect.Type) ClauseOption {
	return func(c *Clause) {
		c.valueType = t
	}
}

// On declares a clause for results with the given status.
func On(status rop.Status, handler Handler, opts ...ClauseOption) Clause {
	return OnAny([]rop.Status{status}, handler, opts...)
}

// OnAny declares a clause shared by several statuses.
func OnAny(statuses []rop.Status, handler Handler, opts ...ClauseOption) Clause {
	c := Clause{statuses: slices.Clone(statuses), handler: handler}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func (c Clause) Statuses() []rop.Status {
	return slices.Clone(c.statuses)
}

func (c Clause) ErrorFilter() reflect.Type {
	return c.errType
}

func (c Clause) ValueFilter() reflect.Type {
	return c.valueType
}

// MatchesResult checks the type filters only.
func (c Clause) MatchesResult(r rop.Result[any]) bool {
	return instanceOf(r.Err(), c.errType) && instanceOf(r.Value(), c.valueType)
}

// Matches checks the status scope and the type filters.
func (c Clause) Matches(r rop.Result[any]) bool {
	return slices.Contains(c.statuses, r.Status()) && c.MatchesResult(r)
}

func instanceOf(v any, filter reflect.Type) bool {
	if filter == nil {
		return true
	}
	if rop.IsNil(v) {
		return false
	}
	return reflect.TypeOf(v).AssignableTo(filter)
}

// Compare orders clauses by specificity: value filter first, then error
// filter. A positive result means a is more specific than b. Unrelated
// filters compare as 0.
func Compare(a, b Clause) int {
	if cmp := compareTypes(a.valueType, b.valueType); cmp != 0 {
		return cmp
	}
	return compareTypes(a.errType, b.errType)
}

func compareTypes(a, b reflect.Type) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	case a == b:
		return 0
	case a.AssignableTo(b):
		return 1
	case b.AssignableTo(a):
		return -1
	default:
		return 0
	}
}
