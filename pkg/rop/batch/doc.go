// Package batch calls one command for each input of a collection and reduces
// the outcomes to a list.List, keeping results in input order.
//
// The worker count is carried by the context (WithWorkerOptions); the default
// is one, running calls sequentially on the caller goroutine. Inputs not
// started before the context is done get a halted result carrying ctx.Err().
// A debug summary of every batch goes to the context logger (WithLogger).
package batch
