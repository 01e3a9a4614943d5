package errs

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ib-77/ropcmd/pkg/rop"
)

const (
	NotImplementedType     = "rop.errors.command_not_implemented"
	OperationNotCalledType = "rop.errors.operation_not_called"
)

var (
	// ErrNotImplemented matches every *NotImplemented through errors.Is.
	ErrNotImplemented = errors.New("command not implemented")

	// ErrOperationNotCalled matches every *OperationNotCalled through errors.Is.
	ErrOperationNotCalled = errors.New("operation not called")
)

// NotImplemented is returned when a command without a process is called.
type NotImplemented struct {
	command string
}

func NewNotImplemented(command string) *NotImplemented {
	return &NotImplemented{command: command}
}

func (e *NotImplemented) Error() string {
	return fmt.Sprintf("no implementation defined for command %s", e.command)
}

func (e *NotImplemented) Type() string {
	return NotImplementedType
}

func (e *NotImplemented) Is(target error) bool {
	return target == ErrNotImplemented
}

func (e *NotImplemented) Data() map[string]any {
	return map[string]any{"command_class": e.command}
}

func (e *NotImplemented) Equal(other error) bool {
	o, ok := other.(*NotImplemented)
	return ok && o != nil && o.command == e.command
}

func (e *NotImplemented) MarshalJSON() ([]byte, error) {
	return json.Marshal(rop.AsJSON(e))
}

// OperationNotCalled is reported by an operation asked for its result before
// it was ever called.
type OperationNotCalled struct {
	operation string
}

func NewOperationNotCalled(operation string) *OperationNotCalled {
	return &OperationNotCalled{operation: operation}
}

func (e *OperationNotCalled) Error() string {
	return fmt.Sprintf("%s was not called and does not have a result", e.operation)
}

func (e *OperationNotCalled) Type() string {
	return OperationNotCalledType
}

func (e *OperationNotCalled) Is(target error) bool {
	return target == ErrOperationNotCalled
}

func (e *OperationNotCalled) Data() map[string]any {
	return map[string]any{"class_name": e.operation}
}

func (e *OperationNotCalled) Equal(other error) bool {
	o, ok := other.(*OperationNotCalled)
	return ok && o != nil && o.operation == e.operation
}

func (e *OperationNotCalled) MarshalJSON() ([]byte, error) {
	return json.Marshal(rop.AsJSON(e))
}
