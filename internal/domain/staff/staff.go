// Package staff models the staff directory and the leadership team.
package staff

import (
	"strings"
	"time"

	"campus/internal/domain/shared"
)

type MemberDetails struct {
	FullName   string
	Department string
	Title      string
	Email      string
}

func (m MemberDetails) normalize() (MemberDetails, error) {
	m.FullName = strings.TrimSpace(m.FullName)
	if err := shared.FirstError(
		shared.Required("full_name", m.FullName),
		shared.MaxLength("full_name", m.FullName, 255),
		shared.MaxLength("department", m.Department, 255),
		shared.MaxLength("title", m.Title, 255),
	); err != nil {
		return m, err
	}
	email, err := shared.OptionalEmail("email", m.Email)
	m.Email = email
	return m, err
}

type StaffMember struct {
	shared.Base
	details MemberDetails
}

func NewStaffMember(details MemberDetails) (*StaffMember, error) {
	d, err := details.normalize()
	if err != nil {
		return nil, err
	}
	return &StaffMember{Base: shared.NewBase(), details: d}, nil
}

func ReconstructStaffMember(id uint, details MemberDetails, createdAt, updatedAt time.Time) *StaffMember {
	return &StaffMember{Base: shared.ReconstructBase(id, createdAt, updatedAt), details: details}
}

func (m *StaffMember) Details() MemberDetails {
	return m.details
}

func (m *StaffMember) Update(details MemberDetails) error {
	normalized, err := details.normalize()
	if err != nil {
		return err
	}
	m.details = normalized
	m.Touch()
	return nil
}

type LeaderDetails struct {
	UserID    *uint
	FullName  string
	Position  string
	Biography string
	Email     string
	Phone     string
	IsActive  bool
}

func (l LeaderDetails) normalize() (LeaderDetails, error) {
	l.FullName = strings.TrimSpace(l.FullName)
	l.Position = strings.TrimSpace(l.Position)
	if err := shared.FirstError(
		shared.Required("full_name", l.FullName),
		shared.MaxLength("full_name", l.FullName, 255),
		shared.Required("position", l.Position),
		shared.MaxLength("position", l.Position, 255),
		shared.MaxLength("phone", l.Phone, 50),
	); err != nil {
		return l, err
	}
	if l.UserID != nil && *l.UserID == 0 {
		l.UserID = nil
	}
	email, err := shared.OptionalEmail("email", l.Email)
	l.Email = email
	return l, err
}

// Leadership is a leader profile, optionally linked to one user account.
// The link is cleared when the user is deleted.
type Leadership struct {
	shared.Base
	details LeaderDetails
}

func NewLeadership(details LeaderDetails) (*Leadership, error) {
	d, err := details.normalize()
	if err != nil {
		return nil, err
	}
	return &Leadership{Base: shared.NewBase(), details: d}, nil
}

func ReconstructLeadership(id uint, details LeaderDetails, createdAt, updatedAt time.Time) *Leadership {
	return &Leadership{Base: shared.ReconstructBase(id, createdAt, updatedAt), details: details}
}

func (l *Leadership) Details() LeaderDetails {
	return l.details
}

func (l *Leadership) Update(details LeaderDetails) error {
	normalized, err := details.normalize()
	if err != nil {
		return err
	}
	l.details = normalized
	l.Touch()
	return nil
}

// ProfileChanges are the fields a leader may edit on their own profile.
type ProfileChanges struct {
	Biography *string
	Email     *string
	Phone     *string
	Position  *string
}

func (l *Leadership) EditOwnProfile(c ProfileChanges) error {
	d := l.details
	if c.Biography != nil {
		d.Biography = *c.Biography
	}
	if c.Email != nil {
		d.Email = *c.Email
	}
	if c.Phone != nil {
		d.Phone = *c.Phone
	}
	if c.Position != nil {
		d.Position = *c.Position
	}
	return l.Update(d)
}
