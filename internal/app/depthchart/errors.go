package depthchart

import (
	"errors"
	"fmt"
)

// ValidationError reports caller input that violates a precondition. Field
// names the offending input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "invalid value"
	}
	if e.Field == "" {
		return msg
	}
	return fmt.Sprintf("%s %s", e.Field, msg)
}

// AsValidationError attempts to unwrap an error into a ValidationError.
func AsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}

const (
	msgRequired    = "cannot be empty"
	msgNonNegative = "must be a non-negative number"
)

func required(field string) error {
	return &ValidationError{Field: field, Message: msgRequired}
}

func nonNegative(field string) error {
	return &ValidationError{Field: field, Message: msgNonNegative}
}
