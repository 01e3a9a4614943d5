// Package command wraps units of business logic as invocable commands that
// always answer with a rop.Result.
//
// A Command holds a Process. Whatever the process returns is normalized:
//
//   - Value(v) becomes a success result carrying v;
//   - From(r) passes r through untouched;
//   - Fail(err) and Try(v, err) become failures;
//   - a panic is recovered and turned into an *errs.UncaughtException failure.
//
// The error returned next to the result is reserved for faults that reveal a
// defect in the calling code: a command without a process, an invalid status,
// a misconfigured validation rule.
//
//	publish := command.New("PublishBook",
//	    func(ctx context.Context, args command.Args) command.Outcome[Book] {
//	        book := command.Step(find.Call(ctx, args))
//	        if !book.Ok() {
//	            return command.ShortCircuit[Book](book)
//	        }
//	        return command.Value(book.Value().Publish())
//	    },
//	    command.WithValidations(validation.Validate("id", "presence", nil)),
//	)
//
//	res, err := publish.Call(ctx, command.Keywords(map[string]any{"id": id}))
//
// # Steps
//
// Step is the chaining primitive. It unwraps the value of a successful
// sub-call, or marks the step as not Ok so the process can hand the failing
// result back through ShortCircuit. No panics are involved; the short circuit
// is an ordinary return.
//
// # Composition
//
// Curry binds leading positionals, default keywords and a block. Operation
// remembers the last result of a caller. Wrap applies Middleware such as
// Logging.
//
// # Process-wide hooks
//
// SetWarningHook replaces how diagnostics are emitted. Instrumentation lets
// tests observe calls by command name; see package spy.
package command
