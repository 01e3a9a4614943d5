package rop

import (
	"errors"
	"fmt"
	"slices"
)

// Status is the outcome tag of a Result.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailure Status = "failure"
	StatusHalted  Status = "halted"
)

// ErrInvalidStatus is returned when a Result is built with a status its Kind does not declare.
var ErrInvalidStatus = errors.New("invalid result status")

// Kind identifies a family of results and the statuses it accepts.
// Two results are only equal when they share the same Kind.
type Kind struct {
	name     string
	statuses []Status
}

var (
	// DefaultKind accepts success and failure.
	DefaultKind = NewKind("result")

	// HaltingKind adds the halted status, used for results that stopped early
	// without being a failure.
	HaltingKind = NewKind("halting_result", StatusHalted)
)

// NewKind declares a result kind accepting success, failure and any extra statuses.
func NewKind(name string, extra ...Status) *Kind {
	statuses := []Status{StatusSuccess, StatusFailure}
	for _, s := range extra {
		if !slices.Contains(statuses, s) {
			statuses = append(statuses, s)
		}
	}
	return &Kind{name: name, statuses: statuses}
}

func (k *Kind) Name() string {
	return k.name
}

// Statuses returns a copy of the declared statuses.
func (k *Kind) Statuses() []Status {
	return slices.Clone(k.statuses)
}

// Valid reports whether s is declared by the kind.
func (k *Kind) Valid(s Status) bool {
	return slices.Contains(k.statuses, s)
}

func (k *Kind) validate(s Status) error {
	if k.Valid(s) {
		return nil
	}
	return fmt.Errorf("%w %q for %s (expected one of %v)", ErrInvalidStatus, string(s), k.name, k.statuses)
}

func (k *Kind) String() string {
	return k.name
}
