package rop

import (
	"encoding/json"
	"reflect"
	"strings"
)

// DefaultErrorType tags errors built with NewError.
const DefaultErrorType = "rop.error"

// Error is a structured failure description carried by a Result.
type Error interface {
	error
	// Type returns a machine-readable tag, e.g. "rop.errors.invalid_parameters".
	Type() string
	// Data returns the kind-specific payload used in serialization.
	Data() map[string]any
}

// Equaler is implemented by errors with their own notion of equality.
type Equaler interface {
	Equal(other error) bool
}

// BaseError is the plain structured error. Richer errors embed its behavior
// through Type/Data of their own.
type BaseError struct {
	typ     string
	message string
}

func NewError(message string) *BaseError {
	return &BaseError{typ: DefaultErrorType, message: message}
}

func NewTypedError(typ, message string) *BaseError {
	if typ == "" {
		typ = DefaultErrorType
	}
	return &BaseError{typ: typ, message: message}
}

func (e *BaseError) Error() string {
	if e.message == "" {
		return DefaultMessage(e.Type())
	}
	return e.message
}

func (e *BaseError) Type() string {
	if e.typ == "" {
		return DefaultErrorType
	}
	return e.typ
}

func (e *BaseError) Data() map[string]any {
	return map[string]any{}
}

func (e *BaseError) Equal(other error) bool {
	o, ok := other.(*BaseError)
	if !ok || o == nil {
		return false
	}
	return e.Type() == o.Type() && e.Error() == o.Error()
}

func (e *BaseError) MarshalJSON() ([]byte, error) {
	return json.Marshal(AsJSON(e))
}

// DefaultMessage derives a readable message from a type tag:
// "rop.errors.not_implemented" becomes "not implemented".
func DefaultMessage(typ string) string {
	if i := strings.LastIndex(typ, "."); i >= 0 {
		typ = typ[i+1:]
	}
	return strings.ReplaceAll(typ, "_", " ")
}

// AsJSON serializes an error as {type, message, data}. Plain Go errors get the
// type "error" and empty data. A nil error serializes to nil.
func AsJSON(err error) map[string]any {
	if IsNil(err) {
		return nil
	}

	if e, ok := err.(Error); ok {
		data := e.Data()
		if data == nil {
			data = map[string]any{}
		}
		return map[string]any{
			"type":    e.Type(),
			"message": e.Error(),
			"data":    data,
		}
	}

	return map[string]any{
		"type":    "error",
		"message": err.Error(),
		"data":    map[string]any{},
	}
}

// ErrorsEqual compares two errors using Equal when available.
func ErrorsEqual(a, b error) bool {
	aNil, bNil := IsNil(a), IsNil(b)
	if aNil || bNil {
		return aNil == bNil
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	if eq, ok := a.(Equaler); ok {
		return eq.Equal(b)
	}
	return reflect.DeepEqual(a, b)
}
