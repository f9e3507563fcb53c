package staff

import (
	"time"

	"campus/internal/domain/staff"
)

type MemberRequest struct {
	FullName   string `json:"full_name" binding:"required,max=255"`
	Department string `json:"department" binding:"max=255"`
	Title      string `json:"title" binding:"max=255"`
	Email      string `json:"email" binding:"omitempty,email"`
}

type MemberResponse struct {
	ID         uint      `json:"id"`
	FullName   string    `json:"full_name"`
	Department string    `json:"department"`
	Title      string    `json:"title"`
	Email      string    `json:"email"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func toMemberResponse(m *staff.StaffMember) any {
	d := m.Details()
	return MemberResponse{
		ID:         m.ID(),
		FullName:   d.FullName,
		Department: d.Department,
		Title:      d.Title,
		Email:      d.Email,
		CreatedAt:  m.CreatedAt(),
		UpdatedAt:  m.UpdatedAt(),
	}
}

type LeaderRequest struct {
	UserID    *uint  `json:"user_id"`
	FullName  string `json:"full_name" binding:"required,max=255"`
	Position  string `json:"position" binding:"required,max=255"`
	Biography string `json:"biography"`
	Email     string `json:"email" binding:"omitempty,email"`
	Phone     string `json:"phone" binding:"max=50"`
	IsActive  *bool  `json:"is_active"`
}

type LeaderResponse struct {
	ID        uint      `json:"id"`
	UserID    *uint     `json:"user_id"`
	FullName  string    `json:"full_name"`
	Position  string    `json:"position"`
	Biography string    `json:"biography"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func leaderDetails(r LeaderRequest) (staff.LeaderDetails, error) {
	return staff.LeaderDetails{
		UserID:    r.UserID,
		FullName:  r.FullName,
		Position:  r.Position,
		Biography: r.Biography,
		Email:     r.Email,
		Phone:     r.Phone,
		IsActive:  r.IsActive == nil || *r.IsActive,
	}, nil
}

func leaderRequest(d staff.LeaderDetails) LeaderRequest {
	active := d.IsActive
	return LeaderRequest{
		UserID:    d.UserID,
		FullName:  d.FullName,
		Position:  d.Position,
		Biography: d.Biography,
		Email:     d.Email,
		Phone:     d.Phone,
		IsActive:  &active,
	}
}

func toLeaderResponse(l *staff.Leadership) any {
	d := l.Details()
	return LeaderResponse{
		ID:        l.ID(),
		UserID:    d.UserID,
		FullName:  d.FullName,
		Position:  d.Position,
		Biography: d.Biography,
		Email:     d.Email,
		Phone:     d.Phone,
		IsActive:  d.IsActive,
		CreatedAt: l.CreatedAt(),
		UpdatedAt: l.UpdatedAt(),
	}
}

// ProfileRequest carries the fields a leader may edit on their own profile.
// Omitted fields keep their value.
type ProfileRequest struct {
	Biography *string `json:"biography"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Phone     *string `json:"phone" binding:"omitempty,max=50"`
	Position  *string `json:"position" binding:"omitempty,max=255"`
}
