package models

import (
	"time"

	"campus/internal/shared/constants"
)

type PartnerModel struct {
	ID           uint   `gorm:"primarykey"`
	Name         string `gorm:"size:255;not null"`
	Slug         string `gorm:"uniqueIndex;size:255;not null"`
	Website      string `gorm:"size:200"`
	ContactEmail string `gorm:"size:254"`
	LogoPath     string `gorm:"size:255"`
	Description  string `gorm:"type:text"`
	StartDate    *time.Time
	IsActive     bool      `gorm:"not null;default:true;index"`
	CreatedAt    time.Time `gorm:"autoCreateTime:false;not null"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime:false;not null"`
}

func (PartnerModel) TableName() string {
	return constants.TablePartners
}

// AffiliateModel slugs are unique per partner.
type AffiliateModel struct {
	ID           uint      `gorm:"primarykey"`
	PartnerID    uint      `gorm:"not null;uniqueIndex:idx_affiliate_partner_slug"`
	Name         string    `gorm:"size:255;not null"`
	Slug         string    `gorm:"size:255;not null;uniqueIndex:idx_affiliate_partner_slug"`
	ContactEmail string    `gorm:"size:254"`
	LogoPath     string    `gorm:"size:255"`
	Description  string    `gorm:"type:text"`
	AddedAt      time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime:false;not null"`

	Partner PartnerModel `gorm:"constraint:OnDelete:CASCADE"`
}

func (AffiliateModel) TableName() string {
	return constants.TableAffiliates
}

type EventModel struct {
	ID            uint      `gorm:"primarykey"`
	Title         string    `gorm:"size:200;not null"`
	Description   string    `gorm:"type:text;not null"`
	StartDatetime time.Time `gorm:"not null;index"`
	EndDatetime   *time.Time
	Location      string    `gorm:"size:255"`
	PhotoPath     string    `gorm:"size:255"`
	CreatedAt     time.Time `gorm:"autoCreateTime:false;not null"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime:false;not null"`
}

func (EventModel) TableName() string {
	return constants.TableEvents
}

type MediaFileModel struct {
	ID         uint      `gorm:"primarykey"`
	Title      string    `gorm:"size:255;not null"`
	FileType   string    `gorm:"size:20;not null;index"`
	FilePath   string    `gorm:"size:255;not null"`
	UploadedAt time.Time `gorm:"not null;index"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime:false;not null"`
}

func (MediaFileModel) TableName() string {
	return constants.TableMediaFiles
}
