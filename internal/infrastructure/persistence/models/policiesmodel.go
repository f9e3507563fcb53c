package models

import (
	"time"

	"campus/internal/shared/constants"
)

type PolicyModel struct {
	ID            uint      `gorm:"primarykey"`
	Title         string    `gorm:"size:200;not null"`
	Slug          string    `gorm:"uniqueIndex;size:220;not null"`
	Category      string    `gorm:"size:30;not null;index"`
	Description   string    `gorm:"type:text"`
	Content       string    `gorm:"type:text;not null"`
	DocumentPath  string    `gorm:"size:255"`
	PublishedDate time.Time `gorm:"not null"`
	IsActive      bool      `gorm:"not null;default:true"`
	CreatedAt     time.Time `gorm:"autoCreateTime:false;not null"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime:false;not null"`
}

func (PolicyModel) TableName() string {
	return constants.TablePolicies
}

type StrategicPlanModel struct {
	ID             uint      `gorm:"primarykey"`
	Title          string    `gorm:"size:200;not null"`
	Slug           string    `gorm:"size:220;not null;uniqueIndex:idx_plan_year_slug,priority:2"`
	Year           int       `gorm:"not null;uniqueIndex:idx_plan_year_slug,priority:1"`
	DurationYears  int       `gorm:"not null;default:5"`
	Description    string    `gorm:"type:text"`
	Vision         string    `gorm:"type:text"`
	Mission        string    `gorm:"type:text"`
	StrategicGoals string    `gorm:"type:text"`
	DocumentPath   string    `gorm:"size:255"`
	IsActive       bool      `gorm:"not null;default:true"`
	CreatedAt      time.Time `gorm:"autoCreateTime:false;not null"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime:false;not null"`
}

func (StrategicPlanModel) TableName() string {
	return constants.TableStrategicPlans
}
