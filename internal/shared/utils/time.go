package utils

import (
	"time"

	"campus/internal/shared/biztime"
	"campus/internal/shared/errors"
)

// ParseDateField parses a required YYYY-MM-DD request field.
func ParseDateField(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.NewFieldValidationError(field, field+" is required")
	}
	t, err := biztime.ParseDate(value)
	if err != nil {
		return time.Time{}, errors.NewFieldValidationError(field, field+" must be a date in YYYY-MM-DD format")
	}
	return t, nil
}

// ParseOptionalDateField parses an optional YYYY-MM-DD field; nil or empty yields nil.
func ParseOptionalDateField(field string, value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := ParseDateField(field, *value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FormatOptionalDate formats a nullable date as YYYY-MM-DD.
func FormatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := biztime.FormatDate(*t)
	return &s
}
