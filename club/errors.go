package club

import "fmt"

// ValidationError wraps the field errors produced when an input fails
// validation. No state is touched when one is returned.
type ValidationError struct {
	err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input: %v", e.err)
}

func (e *ValidationError) Unwrap() error {
	return e.err
}
