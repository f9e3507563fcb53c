package models

import (
	"time"

	"campus/internal/shared/constants"
)

// UserModel represents the database persistence model for users.
// This is the anti-corruption layer between domain and database.
type UserModel struct {
	ID           uint   `gorm:"primarykey"`
	Email        string `gorm:"uniqueIndex;not null;size:255"`
	FullName     string `gorm:"size:150"`
	PasswordHash string `gorm:"size:255;not null"`
	Role         string `gorm:"size:20;not null;default:user;index"`
	IsActive     bool   `gorm:"not null;default:true"`
	LastLoginAt  *time.Time
	CreatedAt    time.Time `gorm:"autoCreateTime:false;not null"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime:false;not null"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return constants.TableUsers
}

// StatusChangeModel is one row of the administrative change history. It
// references records by (entity_type, entity_id) and has no foreign keys so
// history survives deletes.
type StatusChangeModel struct {
	ID         uint      `gorm:"primarykey"`
	EntityType string    `gorm:"size:64;not null;index:idx_status_changes_entity,priority:1"`
	EntityID   uint      `gorm:"not null;index:idx_status_changes_entity,priority:2"`
	OldStatus  string    `gorm:"size:32;not null"`
	NewStatus  string    `gorm:"size:32;not null"`
	ChangedBy  uint      `gorm:"not null;index"`
	Note       string    `gorm:"type:text"`
	ChangedAt  time.Time `gorm:"not null;index"`
}

func (StatusChangeModel) TableName() string {
	return constants.TableStatusChanges
}
