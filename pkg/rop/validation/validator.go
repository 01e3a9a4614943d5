package validation

import (
	"errors"
	"fmt"

	"github.com/ib-77/ropcmd/pkg/rop"
	"github.com/ib-77/ropcmd/pkg/rop/errs"
)

var (
	// ErrUnknownValidationType is returned for a rule type no validator handles.
	ErrUnknownValidationType = errors.New("unknown validation type")

	// ErrMissingValidatorMethod is returned for a method rule the command does not implement.
	ErrMissingValidatorMethod = errors.New("missing validator method")

	// ErrMissingBlock is returned for a block rule declared without a predicate.
	ErrMissingBlock = errors.New("block validation without a block")
)

// Validator evaluates rules in declaration order.
type Validator struct {
	registry *Registry
}

type ValidatorOption func(*Validator)

// WithRegistry replaces the default registry.
func WithRegistry(r *Registry) ValidatorOption {
	return func(v *Validator) {
		if r != nil {
			v.registry = r
		}
	}
}

func NewValidator(opts ...ValidatorOption) *Validator {
	v := &Validator{registry: DefaultRegistry()}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Call validates params against rules on behalf of command. The returned error
// reports a configuration problem; business failures are carried by the
// result as *errs.InvalidParameters.
func (v *Validator) Call(command string, params map[string]any, rules []Rule, custom CustomValidator) (rop.Result[any], error) {
	var failures []string

	for _, rule := range rules {
		msg, err := v.evaluate(command, params[rule.Name()], rule, custom)
		if err != nil {
			return rop.Failure[any](err), err
		}
		if msg != "" {
			failures = append(failures, msg)
		}
	}

	if len(failures) == 0 {
		return rop.Success[any](nil), nil
	}
	return rop.Failure[any](errs.NewInvalidParameters(command, failures)), nil
}

func (v *Validator) evaluate(command string, value any, rule Rule, custom CustomValidator) (string, error) {
	as := rule.As()
	opts := rule.Options()

	if rule.Type() == BlockValidation {
		if rule.Block() == nil {
			return "", fmt.Errorf("%w: %s rule %q", ErrMissingBlock, command, rule.Name())
		}
		if rule.Block()(value) {
			return "", nil
		}
		if msg, ok := opts[OptionMessage].(string); ok && msg != "" {
			return msg, nil
		}
		return as + " is invalid", nil
	}

	method := rule.MethodName()

	if custom != nil {
		if fn, ok := custom.ValidatorMethod(method); ok {
			if msg := fn(value, as, opts); msg != nil {
				return *msg, nil
			}
			return "", nil
		}
	}

	if rule.Type() == MethodValidation {
		return "", fmt.Errorf("%w: %s does not define %s", ErrMissingValidatorMethod, command, method)
	}

	fn, ok := v.registry.Lookup(method)
	if !ok {
		return "", fmt.Errorf("%w %q for %s", ErrUnknownValidationType, rule.Type(), command)
	}

	msg, err := fn(value, as, opts)
	if err != nil {
		return "", fmt.Errorf("%s rule %q: %w", command, rule.Name(), err)
	}
	return msg, nil
}
