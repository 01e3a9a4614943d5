package rop

import "time"

// Resulter is implemented by anything that can present itself as a result:
// results themselves and operations that remember their last outcome.
type Resulter interface {
	AsResult() Result[any]
}

type ResultProvider[T any] interface {
	// Value returns the carried value
	Value() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithError defines an interface for types that can return a value or an error
type WithError[T any] interface {
	ResultProvider[T]
	// Err returns the error if operation failed
	Err() error
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
	// IsFailure returns true if the operation failed
	IsFailure() bool
}

// StatusProvider extends WithError with the full status set
type StatusProvider[T any] interface {
	WithError[T]
	Status() Status
}

var _ StatusProvider[int] = Result[int]{}
var _ Resulter = Result[int]{}
