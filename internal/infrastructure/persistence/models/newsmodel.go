package models

import (
	"time"

	"campus/internal/shared/constants"
)

type NewsPostModel struct {
	ID          uint       `gorm:"primarykey"`
	Title       string     `gorm:"size:255;not null"`
	Slug        string     `gorm:"uniqueIndex;size:255;not null"`
	Summary     string     `gorm:"size:500"`
	Content     string     `gorm:"type:text;not null"`
	PhotoPath   string     `gorm:"size:255"`
	IsFeatured  bool       `gorm:"not null;default:false"`
	PublishedAt *time.Time `gorm:"index"`
	CreatedAt   time.Time  `gorm:"autoCreateTime:false;not null"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime:false;not null"`
}

func (NewsPostModel) TableName() string {
	return constants.TableNewsPosts
}
