package shared

import "strings"

// StoredPath cleans a relative storage path and files it under dir, which
// ends with a slash. An empty value stays empty.
func StoredPath(field, dir, value string) (string, error) {
	p := strings.TrimLeft(strings.TrimSpace(value), "/")
	if p == "" {
		return "", nil
	}
	if strings.Contains(p, "..") {
		return "", NewFieldError(field, "%s must be a relative path", field)
	}
	if !strings.HasPrefix(p, dir) {
		p = dir + p
	}
	return p, MaxLength(field, p, 255)
}
