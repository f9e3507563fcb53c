// Package mappers converts between domain aggregates and gorm models.
package mappers

import (
	"campus/internal/domain/statushistory"
	"campus/internal/domain/user"
	"campus/internal/infrastructure/persistence/models"
	"campus/internal/shared/authorization"
)

func UserToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		Email:        u.Email(),
		FullName:     u.FullName(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		IsActive:     u.IsActive(),
		LastLoginAt:  u.LastLoginAt(),
		CreatedAt:    u.CreatedAt(),
		UpdatedAt:    u.UpdatedAt(),
	}
}

func UserToDomain(m *models.UserModel) (*user.User, error) {
	return user.ReconstructUser(
		m.ID,
		m.Email,
		m.FullName,
		m.PasswordHash,
		authorization.UserRole(m.Role),
		m.IsActive,
		m.LastLoginAt,
		m.CreatedAt,
		m.UpdatedAt,
	)
}

func StatusChangeToModel(s *statushistory.StatusChange) *models.StatusChangeModel {
	return &models.StatusChangeModel{
		ID:         s.ID(),
		EntityType: s.EntityType(),
		EntityID:   s.EntityID(),
		OldStatus:  s.OldStatus(),
		NewStatus:  s.NewStatus(),
		ChangedBy:  s.ChangedBy(),
		Note:       s.Note(),
		ChangedAt:  s.ChangedAt(),
	}
}

func StatusChangeToDomain(m *models.StatusChangeModel) (*statushistory.StatusChange, error) {
	return statushistory.ReconstructStatusChange(
		m.ID, m.EntityType, m.EntityID, m.OldStatus, m.NewStatus, m.ChangedBy, m.Note, m.ChangedAt,
	), nil
}
