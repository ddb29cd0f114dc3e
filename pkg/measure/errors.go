package measure

import "fmt"

// ValidationError reports invalid input to a measurement: non-finite
// coordinates, coincident points, or a mesh the operation cannot work on.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return "measurement validation: " + e.Msg
}

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// CancelledError reports that a scan observed cooperative cancellation
// and aborted. It wraps the context error so errors.Is(err,
// context.Canceled) keeps working.
type CancelledError struct {
	Op  string
	Err error
}

func (e *CancelledError) Error() string {
	return fmt.Sprintf("%s cancelled: %v", e.Op, e.Err)
}

func (e *CancelledError) Unwrap() error {
	return e.Err
}

// ComputationError reports an unexpected arithmetic failure not covered
// by validation, such as a non-finite intermediate result.
type ComputationError struct {
	Op  string
	Msg string
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("%s failed: %s", e.Op, e.Msg)
}
