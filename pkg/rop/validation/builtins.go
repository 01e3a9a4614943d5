package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
)

var builtins = map[string]Func{
	"presence":    validatePresence,
	"blank":       validateBlank,
	"boolean":     validateBoolean,
	"instance_of": validateInstanceOf,
	"name":        validateName,
	"matches":     validateMatches,
	"inclusion":   validateInclusion,
}

func failure(as, message string, opts Options) string {
	if msg, ok := opts[OptionMessage].(string); ok && msg != "" {
		return msg
	}
	return as + " " + message
}

// isBlank treats nil, empty or whitespace strings and empty collections as blank.
func isBlank(value any) bool {
	if value == nil {
		return true
	}
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s) == ""
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array, reflect.Chan:
		return v.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return v.IsNil()
	}
	return false
}

func validatePresence(value any, as string, opts Options) (string, error) {
	if isBlank(value) {
		return failure(as, "can't be blank", opts), nil
	}
	return "", nil
}

func validateBlank(value any, as string, opts Options) (string, error) {
	if !isBlank(value) {
		return failure(as, "must be blank", opts), nil
	}
	return "", nil
}

func validateBoolean(value any, as string, opts Options) (string, error) {
	if _, ok := value.(bool); !ok {
		return failure(as, "must be true or false", opts), nil
	}
	return "", nil
}

func validateName(value any, as string, opts Options) (string, error) {
	if value == nil {
		return failure(as, "can't be blank", opts), nil
	}
	s, ok := value.(string)
	if !ok {
		return failure(as, "is not a String", opts), nil
	}
	if s == "" {
		return failure(as, "can't be blank", opts), nil
	}
	return "", nil
}

// validateInstanceOf expects OptionExpected to be a reflect.Type or a sample
// value of the expected type. Interface types match implementations.
func validateInstanceOf(value any, as string, opts Options) (string, error) {
	expected, err := expectedType(opts)
	if err != nil {
		return "", err
	}
	if value == nil || !reflect.TypeOf(value).AssignableTo(expected) {
		return failure(as, "is not an instance of "+expected.String(), opts), nil
	}
	return "", nil
}

func expectedType(opts Options) (reflect.Type, error) {
	switch e := opts[OptionExpected].(type) {
	case nil:
		return nil, fmt.Errorf("%w: instance_of requires %q", ErrInvalidOptions, OptionExpected)
	case reflect.Type:
		return e, nil
	default:
		return reflect.TypeOf(e), nil
	}
}

// validateMatches accepts a *regexp.Regexp (string values only), a
// func(any) bool predicate or a value compared with reflect.DeepEqual.
func validateMatches(value any, as string, opts Options) (string, error) {
	expected, ok := opts[OptionExpected]
	if !ok {
		return "", fmt.Errorf("%w: matches requires %q", ErrInvalidOptions, OptionExpected)
	}

	var matched bool
	switch e := expected.(type) {
	case *regexp.Regexp:
		s, isString := value.(string)
		matched = isString && e.MatchString(s)
	case func(any) bool:
		matched = e(value)
	default:
		matched = reflect.DeepEqual(e, value)
	}

	if !matched {
		return failure(as, "does not match the expected value", opts), nil
	}
	return "", nil
}

func validateInclusion(value any, as string, opts Options) (string, error) {
	list := reflect.ValueOf(opts[OptionIn])
	if list.Kind() != reflect.Slice && list.Kind() != reflect.Array {
		return "", fmt.Errorf("%w: inclusion requires %q as a slice", ErrInvalidOptions, OptionIn)
	}

	for i := 0; i < list.Len(); i++ {
		if reflect.DeepEqual(list.Index(i).Interface(), value) {
			return "", nil
		}
	}
	return failure(as, "is not included in the list", opts), nil
}
