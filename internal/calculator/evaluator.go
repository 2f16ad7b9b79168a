package calculator

import (
	"context"
	"errors"
	"fmt"
	"time"

	apperrors "github.com/agbru/digitcalc/internal/errors"
	"github.com/agbru/digitcalc/internal/logging"
)

var (
	// ErrUnknownOperation is matched by every lookup of an unregistered name.
	ErrUnknownOperation = errors.New("unknown operation")
	// ErrOperandTooLarge is returned when an operand exceeds the configured
	// maximum number of characters.
	ErrOperandTooLarge = errors.New("operand too large")
)

// Result is the outcome of one evaluation.
type Result struct {
	Operation string
	Args      []string
	Value     string
	Duration  time.Duration
}

// Evaluator runs registered operations. It centralizes operand validation,
// cancellation, logging and metrics so the CLI, the batch runner and the
// HTTP server behave the same way.
type Evaluator struct {
	registry  Registry
	logger    logging.Logger
	maxDigits int
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithRegistry selects the operations the evaluator can run.
func WithRegistry(r Registry) Option {
	return func(e *Evaluator) { e.registry = r }
}

// WithLogger sets the logger used for debug traces and failures.
func WithLogger(l logging.Logger) Option {
	return func(e *Evaluator) { e.logger = l }
}

// WithMaxDigits limits the length of each operand. Zero disables the check.
func WithMaxDigits(n int) Option {
	return func(e *Evaluator) { e.maxDigits = n }
}

// NewEvaluator returns an Evaluator over the global registry unless an
// option says otherwise.
func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{
		registry: GlobalRegistry(),
		logger:   logging.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Registry returns the registry the evaluator resolves names against.
func (e *Evaluator) Registry() Registry { return e.registry }

// Operations returns the available operations sorted by name.
func (e *Evaluator) Operations() []Operation {
	names := e.registry.List()
	ops := make([]Operation, 0, len(names))
	for _, name := range names {
		if op, err := e.registry.Get(name); err == nil {
			ops = append(ops, op)
		}
	}
	return ops
}

type outcome struct {
	value string
	err   error
}

// Evaluate runs the operation registered under name on args.
//
// The returned Result carries the elapsed time even on failure. Engine
// failures are wrapped in apperrors.EvaluationError and keep their taxonomy
// kind; context errors are returned unwrapped.
func (e *Evaluator) Evaluate(ctx context.Context, name string, args []string) (Result, error) {
	start := time.Now()
	res := Result{Operation: name, Args: args}

	op, err := e.registry.Get(name)
	if err != nil {
		observe(unknownOperationLabel, StatusError, 0)
		return res, err
	}
	if err := e.validate(op, args); err != nil {
		observe(name, StatusError, 0)
		return res, err
	}
	if err := ctx.Err(); err != nil {
		observe(name, StatusCanceled, 0)
		return res, err
	}

	done := make(chan outcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- outcome{err: fmt.Errorf("internal error: %v", r)}
			}
		}()
		v, err := op.Apply(args)
		done <- outcome{value: v, err: err}
	}()

	select {
	case <-ctx.Done():
		res.Duration = time.Since(start)
		observe(name, StatusCanceled, res.Duration)
		e.logger.Debug("evaluation canceled",
			logging.String("operation", name),
			logging.Duration("elapsed", res.Duration))
		return res, ctx.Err()
	case o := <-done:
		res.Duration = time.Since(start)
		if o.err != nil {
			observe(name, StatusError, res.Duration)
			e.logger.Debug("evaluation failed",
				logging.String("operation", name),
				logging.Strings("args", args),
				logging.Err(o.err))
			return res, apperrors.EvaluationError{Operation: name, Cause: o.err}
		}
		res.Value = o.value
		observe(name, StatusOK, res.Duration)
		e.logger.Debug("evaluation complete",
			logging.String("operation", name),
			logging.Int("result_length", len(o.value)),
			logging.Duration("elapsed", res.Duration))
		return res, nil
	}
}

func (e *Evaluator) validate(op Operation, args []string) error {
	if want := op.Arity(); len(args) != want {
		return apperrors.NewValidationError("args",
			fmt.Sprintf("%s expects %d operand(s) %s, got %d", op.Name, want, op.Operands, len(args)),
			len(args))
	}
	if e.maxDigits <= 0 {
		return nil
	}
	for i, a := range args {
		if len(a) > e.maxDigits {
			return fmt.Errorf("%w: operand %d has %d characters, limit is %d",
				ErrOperandTooLarge, i+1, len(a), e.maxDigits)
		}
	}
	if op.ResultBound != nil {
		if n := op.ResultBound(args); n > e.maxDigits {
			return fmt.Errorf("%w: result of %s would exceed %d characters",
				ErrOperandTooLarge, op.Name, e.maxDigits)
		}
	}
	return nil
}
