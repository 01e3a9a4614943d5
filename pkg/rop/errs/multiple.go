package errs

import (
	"encoding/json"
	"slices"

	"github.com/ib-77/ropcmd/pkg/rop"
)

const MultipleErrorsType = "rop.errors.multiple_errors"

const multipleErrorsMessage = "the command encountered one or more errors"

// MultipleErrors wraps the positional errors of several results. Nil slots
// are kept so index i always refers to the i-th member.
type MultipleErrors struct {
	errors  []error
	message string
}

func NewMultipleErrors(errs []error) *MultipleErrors {
	return &MultipleErrors{errors: slices.Clone(errs)}
}

// WithMessage returns a copy with a custom message.
func (e *MultipleErrors) WithMessage(message string) *MultipleErrors {
	return &MultipleErrors{errors: slices.Clone(e.errors), message: message}
}

func (e *MultipleErrors) Error() string {
	if e.message == "" {
		return multipleErrorsMessage
	}
	return e.message
}

func (e *MultipleErrors) Type() string {
	return MultipleErrorsType
}

// Errors returns the wrapped errors including nil slots.
func (e *MultipleErrors) Errors() []error {
	return slices.Clone(e.errors)
}

// Unwrap exposes the non-nil errors to errors.Is and errors.As.
func (e *MultipleErrors) Unwrap() []error {
	out := make([]error, 0, len(e.errors))
	for _, err := range e.errors {
		if !rop.IsNil(err) {
			out = append(out, err)
		}
	}
	return out
}

func (e *MultipleErrors) Data() map[string]any {
	serialized := make([]any, len(e.errors))
	for i, err := range e.errors {
		if j := rop.AsJSON(err); j != nil {
			serialized[i] = j
		}
	}
	return map[string]any{"errors": serialized}
}

func (e *MultipleErrors) Equal(other error) bool {
	o, ok := other.(*MultipleErrors)
	if !ok || o == nil || e.Error() != o.Error() || len(e.errors) != len(o.errors) {
		return false
	}
	for i := range e.errors {
		if !rop.ErrorsEqual(e.errors[i], o.errors[i]) {
			return false
		}
	}
	return true
}

func (e *MultipleErrors) MarshalJSON() ([]byte, error) {
	return json.Marshal(rop.AsJSON(e))
}
