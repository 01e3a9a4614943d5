package validation

// MethodFunc is a command supplied validator. A non-nil return is recorded
// verbatim as a failure message.
type MethodFunc func(value any, as string, opts Options) *string

// CustomValidator lets a command provide or override validator methods,
// looked up by method name ("validate_author", "validate_presence").
type CustomValidator interface {
	ValidatorMethod(name string) (MethodFunc, bool)
}

// Methods is a map based CustomValidator.
type Methods map[string]MethodFunc

func (m Methods) ValidatorMethod(name string) (MethodFunc, bool) {
	fn, ok := m[name]
	return fn, ok && fn != nil
}

// Failed is a helper for MethodFunc implementations.
func Failed(message string) *string {
	return &message
}
