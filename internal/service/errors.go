package service

import (
	"errors"
	"fmt"
)

// ErrNoUpdateData is returned when a partial update request carries no
// applicable field. Handlers map it to HTTP 400.
var ErrNoUpdateData = errors.New("no data to update")

// ValidationError marks malformed input shapes (missing required fields,
// unknown enum values). Handlers map it to HTTP 400 with the message as
// the detail string.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErrorf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
