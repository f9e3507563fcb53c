package models

import (
	"time"

	"campus/internal/shared/constants"
)

type StaffMemberModel struct {
	ID         uint      `gorm:"primarykey"`
	FullName   string    `gorm:"size:255;not null"`
	Department string    `gorm:"size:255;index"`
	Title      string    `gorm:"size:255"`
	Email      string    `gorm:"size:255"`
	CreatedAt  time.Time `gorm:"autoCreateTime:false;not null"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime:false;not null"`
}

func (StaffMemberModel) TableName() string {
	return constants.TableStaffMembers
}

// LeadershipModel links at most one profile to a user account.
type LeadershipModel struct {
	ID        uint      `gorm:"primarykey"`
	UserID    *uint     `gorm:"uniqueIndex"`
	FullName  string    `gorm:"size:255;not null"`
	Position  string    `gorm:"size:255;not null"`
	Biography string    `gorm:"type:text"`
	Email     string    `gorm:"size:255"`
	Phone     string    `gorm:"size:50"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time `gorm:"autoCreateTime:false;not null;index"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false;not null"`

	User *UserModel `gorm:"constraint:OnDelete:SET NULL"`
}

func (LeadershipModel) TableName() string {
	return constants.TableLeadership
}
