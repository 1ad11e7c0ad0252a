package gaussian

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument indicates an input that is not a usable integer,
	// range, or index, such as a nil component or an unparsable string.
	ErrInvalidArgument = errors.New("gaussian: invalid argument")

	// ErrDivisionByZero indicates division by the zero Gaussian integer 0+0i.
	ErrDivisionByZero = errors.New("gaussian: division by zero")

	// ErrIndexOutOfRange indicates an array access outside [0, Len).
	ErrIndexOutOfRange = errors.New("gaussian: index out of range")

	// ErrLengthMismatch indicates an elementwise operation on arrays of
	// different lengths.
	ErrLengthMismatch = errors.New("gaussian: array length mismatch")
)

// Error wraps an underlying error with the operation that raised it.
type Error struct {
	Op  string // Operation that failed
	Err error  // Underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("gaussian.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// errorf creates a new Error. The format arguments may carry a %w sentinel
// so that callers can test the cause with errors.Is.
func errorf(op string, format string, args ...interface{}) error {
	return &Error{
		Op:  op,
		Err: fmt.Errorf(format, args...),
	}
}
