package pipeline

import (
	"errors"
	"fmt"
)

var (
	// ErrNoStart indicates a pipeline without a start operand.
	ErrNoStart = errors.New("pipeline: start operand is required")

	// ErrUnknownOperand indicates a reference to an operand that is not declared.
	ErrUnknownOperand = errors.New("pipeline: unknown operand")

	// ErrDuplicateOperand indicates two operands with the same name.
	ErrDuplicateOperand = errors.New("pipeline: duplicate operand")

	// ErrUnknownOp indicates a step with an unsupported operation.
	ErrUnknownOp = errors.New("pipeline: unknown operation")

	// ErrMissingExponent indicates a pow step without an exponent.
	ErrMissingExponent = errors.New("pipeline: pow requires an exponent")

	// ErrInvalidExponent indicates a pow exponent that is NaN or infinite.
	ErrInvalidExponent = errors.New("pipeline: exponent must be finite")

	// ErrInvalidSweep indicates sweep bounds or point count that cannot be used.
	ErrInvalidSweep = errors.New("pipeline: invalid sweep")
)

// StepError wraps a failure with the index of the step that caused it.
// Step 0 is the start operand.
type StepError struct {
	Step    int
	Op      string
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("pipeline: step %d (%s): %v", e.Step, e.Op, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
