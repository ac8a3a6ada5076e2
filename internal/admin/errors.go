package admin

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when the requested guest or event does not exist.
var ErrNotFound = errors.New("not found")

// ValidationError reports an admin input that cannot be stored
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
