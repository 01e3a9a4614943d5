// Package matcher dispatches a result to a handler chosen by the result status
// and the dynamic types of its error and value.
//
// Go has no class hierarchy, so "is an instance of" means "is assignable to":
// an interface filter matches every implementation, and a concrete filter is
// more specific than any interface it implements. When several clauses match,
// the most specific value filter wins, then the most specific error filter.
//
//	m := matcher.New(
//	    matcher.On(rop.StatusFailure, handleAnyError, matcher.ErrorType[rop.Error]()),
//	    matcher.On(rop.StatusFailure, handleInvalid, matcher.ErrorType[*errs.InvalidParameters]()),
//	    matcher.On(rop.StatusSuccess, handleOK),
//	)
//	out, err := m.Call(ctx, result)
package matcher
