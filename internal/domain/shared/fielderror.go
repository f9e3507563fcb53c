package shared

import (
	"errors"
	"fmt"
	"strings"
)

// FieldError is a validation failure attributable to one input field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

func NewFieldError(field, format string, args ...interface{}) error {
	return &FieldError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// AsFieldError unwraps err into a FieldError when it is one.
func AsFieldError(err error) (*FieldError, bool) {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

// Required fails when the trimmed value is empty.
func Required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return NewFieldError(field, "%s is required", field)
	}
	return nil
}

// MaxLength fails when value is longer than max runes.
func MaxLength(field, value string, max int) error {
	if len([]rune(value)) > max {
		return NewFieldError(field, "%s exceeds maximum length of %d characters", field, max)
	}
	return nil
}

// FirstError returns the first non-nil error.
func FirstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
