package errs

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/ib-77/ropcmd/pkg/rop"
)

const InvalidParametersType = "rop.errors.invalid_parameters"

// InvalidParameters lists the validation failures for a command call in rule
// declaration order.
type InvalidParameters struct {
	command  string
	failures []string
}

func NewInvalidParameters(command string, failures []string) *InvalidParameters {
	return &InvalidParameters{command: command, failures: slices.Clone(failures)}
}

func (e *InvalidParameters) Error() string {
	return fmt.Sprintf("invalid parameters for %s - %s", e.command, strings.Join(e.failures, ", "))
}

func (e *InvalidParameters) Type() string {
	return InvalidParametersType
}

func (e *InvalidParameters) Command() string {
	return e.command
}

func (e *InvalidParameters) Failures() []string {
	return slices.Clone(e.failures)
}

func (e *InvalidParameters) Data() map[string]any {
	return map[string]any{
		"command_class": e.command,
		"failures":      slices.Clone(e.failures),
	}
}

func (e *InvalidParameters) Equal(other error) bool {
	o, ok := other.(*InvalidParameters)
	if !ok || o == nil {
		return false
	}
	return e.command == o.command && slices.Equal(e.failures, o.failures)
}

func (e *InvalidParameters) MarshalJSON() ([]byte, error) {
	return json.Marshal(rop.AsJSON(e))
}
