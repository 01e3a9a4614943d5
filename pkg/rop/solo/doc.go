// Package solo contains single-value, synchronous ROP primitives that operate
// on rop.Result[T]. A result is on the success rail, the failure rail or the
// halted rail; every combinator leaves non-success results untouched apart
// from converting their value type.
//
// Highlights:
// - Succeed/Fail/Halt: construct Result[T]
// - Validate/AndValidate/ValidateAll: apply validation producing failure on invalid input
// - Switch: move from Result[In] to Result[Out]
// - Map/DoubleMap: transform successful values
// - Try: call a function (Out, error) and convert error to failure (halt on cancellation)
// - Tee/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/error/halt handlers
package solo
