package validation

import (
	"reflect"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

const (
	// BlockValidation marks a rule evaluated by its inline predicate.
	BlockValidation = "block"

	// MethodValidation marks a rule resolved as "validate_<name>" on the command.
	MethodValidation = "method"
)

// Reserved option keys.
const (
	OptionAs       = "as"
	OptionMessage  = "message"
	OptionExpected = "expected"
	OptionIn       = "in"
)

// Options carries extra validator parameters.
type Options map[string]any

// BlockFunc is the predicate of a block rule. False means invalid.
type BlockFunc func(value any) bool

// Rule is one declared validation.
type Rule struct {
	name    string
	typ     string
	options Options
	block   BlockFunc
}

// NewRule builds a rule. The name is the keyword it validates and is only
// trimmed; the type is canonicalized.
func NewRule(name, typ string, options Options, block BlockFunc) Rule {
	opts := make(Options, len(options))
	for k, v := range options {
		opts[k] = v
	}
	return Rule{
		name:    strings.TrimSpace(name),
		typ:     Canonicalize(typ),
		options: opts,
		block:   block,
	}
}

// Validate declares a rule using a built-in (or command supplied) validator.
func Validate(name, typ string, options Options) Rule {
	return NewRule(name, typ, options, nil)
}

// Block declares a rule evaluated by fn.
func Block(name string, fn BlockFunc, options Options) Rule {
	return NewRule(name, BlockValidation, options, fn)
}

// Method declares a rule the command must implement as "validate_<name>".
func Method(name string, options Options) Rule {
	return NewRule(name, MethodValidation, options, nil)
}

func (r Rule) Name() string {
	return r.name
}

func (r Rule) Type() string {
	return r.typ
}

// Options returns a copy of the rule options.
func (r Rule) Options() Options {
	opts := make(Options, len(r.options))
	for k, v := range r.options {
		opts[k] = v
	}
	return opts
}

func (r Rule) Block() BlockFunc {
	return r.block
}

// MethodName is the name the rule dispatches to.
func (r Rule) MethodName() string {
	switch r.typ {
	case BlockValidation:
		return "validate"
	case MethodValidation:
		return "validate_" + Canonicalize(r.name)
	default:
		return "validate_" + r.typ
	}
}

// As returns the display name: the "as" option when set, else the name.
func (r Rule) As() string {
	if as, ok := r.options[OptionAs].(string); ok && as != "" {
		return as
	}
	return r.name
}

// Equal compares name, type, options and block identity.
func (r Rule) Equal(other Rule) bool {
	if r.name != other.name || r.typ != other.typ {
		return false
	}
	if (r.block == nil) != (other.block == nil) {
		return false
	}
	if r.block != nil && reflect.ValueOf(r.block).Pointer() != reflect.ValueOf(other.block).Pointer() {
		return false
	}
	if len(r.options) == 0 && len(other.options) == 0 {
		return true
	}
	return reflect.DeepEqual(r.options, other.options)
}

// Canonicalize converts names like "InstanceOf", "instance-of" or
// " INSTANCE_OF " into "instance_of".
func Canonicalize(s string) string {
	runes := []rune(strings.TrimSpace(s))

	var b strings.Builder
	b.Grow(len(runes) + 4)
	for i, r := range runes {
		switch {
		case r == '-' || unicode.IsSpace(r):
			b.WriteRune('_')
		case unicode.IsUpper(r) && i > 0 && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1])):
			b.WriteRune('_')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}

	return cases.Fold().String(b.String())
}
