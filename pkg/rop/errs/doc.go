// Package errs holds the structured errors produced by the rop packages:
// aggregated member errors of a result list, panics recovered at a command
// boundary, failed parameter validation and calls to missing implementations.
//
// Every error implements rop.Error, so it serializes through rop.AsJSON as
// {type, message, data} and compares through rop.ErrorsEqual.
package errs
