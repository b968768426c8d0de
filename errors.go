package rational

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// ErrDenominatorIsZero is returned when constructing a fraction, setting its
	// denominator or inverting it would leave it with a zero denominator.
	ErrDenominatorIsZero = errors.New("denominator is zero")

	// ErrOverflow is returned when every overflow-free way of computing
	// a result has been exhausted.
	ErrOverflow = errors.New("fraction overflow")

	// ErrDivisionByZero is returned by Mod when the divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrInput is returned when parsing or decoding malformed input.
	ErrInput = errors.New("invalid fraction input")
)

// OpError records the operation that failed and why.
// Use errors.Is with one of the sentinel errors of this package
// to determine the kind of failure.
type OpError struct {
	Op  string
	Err error
}

func newOpError(op string, err error) error {
	return errors.WithStack(&OpError{Op: op, Err: err})
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// inputError returns an error wrapping ErrInput. cause, if any, is kept
// as a secondary error so that ErrInput stays in the Unwrap chain.
func inputError(op string, cause error, format string, args ...any) error {
	err := errors.Wrapf(ErrInput, format, args...)
	if cause != nil {
		err = errors.WithSecondaryError(err, cause)
	}
	return newOpError(op, err)
}
