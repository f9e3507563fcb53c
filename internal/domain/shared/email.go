package shared

import (
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// NormalizeEmail trims and lower-cases an address and checks its shape.
// An empty value is rejected; use OptionalEmail for optional fields.
func NormalizeEmail(field, value string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if normalized == "" {
		return "", NewFieldError(field, "%s is required", field)
	}
	if len(normalized) > 254 || !emailRegex.MatchString(normalized) {
		return "", NewFieldError(field, "%s must be a valid email address", field)
	}
	return normalized, nil
}

// OptionalEmail is NormalizeEmail for fields that may be left blank.
func OptionalEmail(field, value string) (string, error) {
	if strings.TrimSpace(value) == "" {
		return "", nil
	}
	return NormalizeEmail(field, value)
}
