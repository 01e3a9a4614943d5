package command

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/ib-77/ropcmd/pkg/rop"
	"github.com/ib-77/ropcmd/pkg/rop/errs"
	"github.com/ib-77/ropcmd/pkg/rop/logger"
	"github.com/ib-77/ropcmd/pkg/rop/validation"
)

// Caller is anything invocable like a command.
type Caller[V any] interface {
	Name() string
	// Call runs the unit of work. Business failures are carried by the result;
	// the error is reserved for faults (missing implementation, invalid
	// configuration).
	Call(ctx context.Context, args Args) (rop.Result[V], error)
}

// Process is the business logic wrapped by a Command.
type Process[V any] func(ctx context.Context, args Args) Outcome[V]

type settings struct {
	kind            *rop.Kind
	logger          *slog.Logger
	rules           []validation.Rule
	methods         validation.CustomValidator
	validator       *validation.Validator
	signature       *Signature
	instrumentation *Instrumentation
}

// Option configures a Command.
type Option func(*settings)

// WithKind sets the kind of results built from plain values.
func WithKind(k *rop.Kind) Option {
	return func(s *settings) {
		if k != nil {
			s.kind = k
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithValidations declares rules evaluated against the keyword args before
// the process runs.
func WithValidations(rules ...validation.Rule) Option {
	return func(s *settings) {
		s.rules = append(s.rules, rules...)
	}
}

// WithValidatorMethods supplies command specific validator methods.
func WithValidatorMethods(cv validation.CustomValidator) Option {
	return func(s *settings) {
		s.methods = cv
	}
}

// WithValidator replaces the validator (and thus its registry).
func WithValidator(v *validation.Validator) Option {
	return func(s *settings) {
		if v != nil {
			s.validator = v
		}
	}
}

// WithSignature trims call args to the declared parameter shape.
func WithSignature(sig Signature) Option {
	return func(s *settings) {
		s.signature = &sig
	}
}

// WithInstrumentation replaces the default observer registry.
func WithInstrumentation(i *Instrumentation) Option {
	return func(s *settings) {
		if i != nil {
			s.instrumentation = i
		}
	}
}

// Command wraps a Process and normalizes whatever it returns into a Result.
type Command[V any] struct {
	name    string
	process Process[V]
	settings
}

// New creates a command. A nil process yields a command whose Call reports
// *errs.NotImplemented.
func New[V any](name string, process Process[V], opts ...Option) *Command[V] {
	c := &Command[V]{
		name:    name,
		process: process,
		settings: settings{
			kind:            rop.DefaultKind,
			logger:          slog.Default(),
			validator:       validation.NewValidator(),
			instrumentation: DefaultInstrumentation(),
		},
	}
	for _, opt := range opts {
		opt(&c.settings)
	}
	return c
}

func (c *Command[V]) Name() string {
	return c.name
}

// Curry binds leading positionals, default keywords and a block.
func (c *Command[V]) Curry(bound Args) *Curried[V] {
	return Curry[V](c, bound)
}

func (c *Command[V]) Call(ctx context.Context, args Args) (rop.Result[V], error) {
	if c.process == nil {
		err := errs.NewNotImplemented(c.name)
		return rop.Failure[V](err), err
	}

	if c.signature != nil {
		args = c.signature.Map(args)
	}

	start := time.Now()
	res, err := c.call(ctx, args)

	c.logger.DebugContext(ctx, "command called",
		logger.Command(c.name),
		logger.Result(res),
		logger.Duration(time.Since(start)),
		logger.Error(err))

	c.instrumentation.notify(ctx, CallRecord{
		Command: c.name,
		Args:    args,
		Result:  res.AsResult(),
		Err:     err,
	})

	return res, err
}

func (c *Command[V]) call(ctx context.Context, args Args) (rop.Result[V], error) {
	if len(c.rules) > 0 {
		vr, err := c.validator.Call(c.name, args.Keywords(), c.rules, c.methods)
		if err != nil {
			return rop.Failure[V](err), err
		}
		if !vr.IsSuccess() {
			return rop.Convert[any, V](vr), nil
		}
	}

	return c.run(ctx, args)
}

// run executes the process, converting a panic into an uncaught exception failure.
func (c *Command[V]) run(ctx context.Context, args Args) (res rop.Result[V], err error) {
	defer func() {
		if p := recover(); p != nil {
			uncaught := errs.NewUncaughtException(c.name, p, debug.Stack())
			c.logger.ErrorContext(ctx, "command panicked",
				logger.Command(c.name),
				logger.Error(uncaught))
			res, err = rop.Failure[V](uncaught), nil
		}
	}()

	return c.resolve(ctx, c.process(ctx, args))
}

func (c *Command[V]) resolve(ctx context.Context, o Outcome[V]) (rop.Result[V], error) {
	switch o.kind {
	case outcomeFault:
		return rop.Failure[V](o.fault), o.fault
	case outcomeResult:
		if o.err != nil || o.status != "" {
			Warn(ctx, fmt.Sprintf(
				"%s returned a result and also set error or status; the returned result is used as-is",
				c.name))
		}
		return o.result, nil
	default:
		r, err := rop.New(o.value, o.err, rop.WithKind(c.kind), rop.WithStatus(o.status))
		if err != nil {
			return rop.Failure[V](err), fmt.Errorf("%s: %w", c.name, err)
		}
		return r, nil
	}
}
