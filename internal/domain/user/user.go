// Package user models the accounts that act on campus records.
package user

import (
	"fmt"
	"strings"
	"time"

	"campus/internal/domain/shared"
	"campus/internal/shared/authorization"
	"campus/internal/shared/biztime"
)

// PasswordHasher hashes and checks login passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

type User struct {
	shared.Base
	email        string
	fullName     string
	passwordHash string
	role         authorization.UserRole
	isActive     bool
	lastLoginAt  *time.Time
}

func NewUser(email, fullName string, role authorization.UserRole) (*User, error) {
	normalized, err := shared.NormalizeEmail("email", email)
	if err != nil {
		return nil, err
	}
	if err := shared.MaxLength("full_name", fullName, 150); err != nil {
		return nil, err
	}
	if !role.IsValid() {
		return nil, shared.NewFieldError("role", "invalid role: %s", role)
	}
	return &User{
		Base:     shared.NewBase(),
		email:    normalized,
		fullName: strings.TrimSpace(fullName),
		role:     role,
		isActive: true,
	}, nil
}

func ReconstructUser(
	id uint,
	email, fullName, passwordHash string,
	role authorization.UserRole,
	isActive bool,
	lastLoginAt *time.Time,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	return &User{
		Base:         shared.ReconstructBase(id, createdAt, updatedAt),
		email:        email,
		fullName:     fullName,
		passwordHash: passwordHash,
		role:         role,
		isActive:     isActive,
		lastLoginAt:  lastLoginAt,
	}, nil
}

func (u *User) Email() string                { return u.email }
func (u *User) FullName() string             { return u.fullName }
func (u *User) PasswordHash() string         { return u.passwordHash }
func (u *User) Role() authorization.UserRole { return u.role }
func (u *User) IsActive() bool               { return u.isActive }
func (u *User) LastLoginAt() *time.Time      { return u.lastLoginAt }

// IsStaff reports whether the user may act on behalf of the institution.
func (u *User) IsStaff() bool {
	return u.role.IsStaff()
}

func (u *User) SetPassword(password string, hasher PasswordHasher) error {
	if len(password) < 8 {
		return shared.NewFieldError("password", "password must be at least 8 characters long")
	}
	if len(password) > 72 {
		return shared.NewFieldError("password", "password must not exceed 72 characters")
	}
	hash, err := hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	u.passwordHash = hash
	u.Touch()
	return nil
}

// Authenticate checks the password and records the login.
func (u *User) Authenticate(password string, hasher PasswordHasher) error {
	if !u.isActive {
		return fmt.Errorf("account is disabled")
	}
	if u.passwordHash == "" {
		return fmt.Errorf("user has no password set")
	}
	if err := hasher.Verify(password, u.passwordHash); err != nil {
		return fmt.Errorf("invalid password")
	}
	now := biztime.NowUTC()
	u.lastLoginAt = &now
	return nil
}

func (u *User) UpdateProfile(fullName string) error {
	if err := shared.MaxLength("full_name", fullName, 150); err != nil {
		return err
	}
	u.fullName = strings.TrimSpace(fullName)
	u.Touch()
	return nil
}

func (u *User) ChangeRole(role authorization.UserRole) error {
	if !role.IsValid() {
		return shared.NewFieldError("role", "invalid role: %s", role)
	}
	u.role = role
	u.Touch()
	return nil
}

func (u *User) SetActive(active bool) {
	u.isActive = active
	u.Touch()
}
