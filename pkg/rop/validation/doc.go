// Package validation runs declarative rules against the keyword parameters of
// a command call and reduces every failure to one result.
//
// A rule names the parameter it reads and a validation type:
//
//   - a built-in type such as "presence" or "instance_of", resolved through a
//     Registry as the method "validate_<type>";
//   - "block", which evaluates an inline predicate;
//   - "method", which requires the command to supply "validate_<name>".
//
// Commands can override any method name through a CustomValidator. Resolution
// order is command override, then registry, then a configuration error.
//
// Example:
//
//	rules := []validation.Rule{
//	    validation.Validate("author", "presence", nil),
//	    validation.Block("count", func(v any) bool { n, _ := v.(int); return n > 0 }, nil),
//	}
//	r, err := validation.NewValidator().Call("PublishBook", params, rules, nil)
//	// err != nil only for misconfigured rules
//	// r.Err() is *errs.InvalidParameters when any rule failed
package validation
