package errs

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ib-77/ropcmd/pkg/rop"
)

const UncaughtExceptionType = "rop.errors.uncaught_exception"

// UncaughtException describes a panic recovered while a command was running.
type UncaughtException struct {
	command      string
	class        string
	message      string
	causeClass   string
	causeMessage string
	backtrace    []string
	err          error
}

// NewUncaughtException builds the error from a recovered panic value. Stack is
// the raw output of debug.Stack, it may be nil.
func NewUncaughtException(command string, recovered any, stack []byte) *UncaughtException {
	e := &UncaughtException{
		command:   command,
		class:     rop.TypeName(recovered),
		backtrace: splitStack(stack),
	}

	if err, ok := recovered.(error); ok {
		e.err = err
		e.message = err.Error()
		if cause := errors.Unwrap(err); cause != nil {
			e.causeClass = rop.TypeName(cause)
			e.causeMessage = cause.Error()
		}
	} else {
		e.message = fmt.Sprint(recovered)
	}

	return e
}

func (e *UncaughtException) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "uncaught exception in %s - %s: %s", e.command, e.class, e.message)
	if e.causeClass != "" {
		fmt.Fprintf(&b, " caused by %s: %s", e.causeClass, e.causeMessage)
	}
	return b.String()
}

func (e *UncaughtException) Type() string {
	return UncaughtExceptionType
}

func (e *UncaughtException) Class() string {
	return e.class
}

// Unwrap returns the panic value when it was an error.
func (e *UncaughtException) Unwrap() error {
	return e.err
}

func (e *UncaughtException) Data() map[string]any {
	data := map[string]any{
		"exception_backtrace": e.backtrace,
		"exception_class":     e.class,
		"exception_message":   e.message,
	}
	if e.causeClass != "" {
		data["cause_class"] = e.causeClass
		data["cause_message"] = e.causeMessage
	}
	return data
}

func (e *UncaughtException) Equal(other error) bool {
	o, ok := other.(*UncaughtException)
	if !ok || o == nil {
		return false
	}
	return e.Error() == o.Error()
}

func (e *UncaughtException) MarshalJSON() ([]byte, error) {
	return json.Marshal(rop.AsJSON(e))
}

func splitStack(stack []byte) []string {
	if len(stack) == 0 {
		return []string{}
	}
	lines := strings.Split(strings.TrimSpace(string(stack)), "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	return lines
}
