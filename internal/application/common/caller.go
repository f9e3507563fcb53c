package common

import "campus/internal/shared/authorization"

// Caller is the authenticated user an operation runs for.
type Caller struct {
	UserID uint
	Role   authorization.UserRole
}

func (c Caller) IsStaff() bool {
	return c.Role.IsStaff()
}
