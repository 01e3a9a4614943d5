// Package list reduces an ordered sequence of results to a single result.
//
// The reduced value is the positional slice of member values, the error is an
// errs.MultipleErrors holding every member error (nil slots kept) when any
// member has one, and the status is success only when every member is a
// success or an empty placeholder. Explicit overrides replace the derived
// value, error or status.
//
// Typical use is reporting a bulk operation with partial success:
//
//	results := list.New([]rop.Result[User]{created, failed, rop.Empty[User](), created2})
//	r := results.Result()
//	// r.IsFailure() == true, len(r.Value()) == 4
package list
