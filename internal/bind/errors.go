package bind

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is wrapped by every parameter error.
var ErrInvalidInput = errors.New("invalid input")

// Error reports a single rejected parameter.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidInput, e.Message)
}

// Unwrap returns ErrInvalidInput.
func (e *Error) Unwrap() error {
	return ErrInvalidInput
}

func fieldErrorf(field, format string, args ...any) *Error {
	return &Error{Field: field, Message: fmt.Sprintf(format, args...)}
}
