package models

import (
	"time"

	"gorm.io/datatypes"

	"campus/internal/shared/constants"
)

type AnnouncementCategoryModel struct {
	ID          uint      `gorm:"primarykey"`
	Name        string    `gorm:"uniqueIndex;size:100;not null"`
	Slug        string    `gorm:"uniqueIndex;size:120;not null"`
	Description string    `gorm:"type:text"`
	Color       string    `gorm:"size:7;not null;default:#007bff"`
	Icon        string    `gorm:"size:50"`
	IsActive    bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time `gorm:"autoCreateTime:false;not null"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime:false;not null"`
}

func (AnnouncementCategoryModel) TableName() string {
	return constants.TableAnnouncementCategories
}

// AnnouncementModel stores tags as a JSON array.
type AnnouncementModel struct {
	ID                    uint       `gorm:"primarykey"`
	Title                 string     `gorm:"size:255;not null"`
	Slug                  string     `gorm:"uniqueIndex;size:255;not null"`
	Content               string     `gorm:"type:text;not null"`
	Summary               string     `gorm:"size:500"`
	CategoryID            uint       `gorm:"not null;index"`
	Priority              string     `gorm:"size:20;not null;default:normal"`
	Status                string     `gorm:"size:20;not null;default:draft;index"`
	PublishedAt           *time.Time `gorm:"index"`
	ExpiryAt              *time.Time
	IsFeatured            bool                        `gorm:"not null;default:false"`
	IsSticky              bool                        `gorm:"not null;default:false"`
	TargetAudience        string                      `gorm:"size:20;not null;default:all"`
	ViewCount             int                         `gorm:"not null;default:0"`
	AllowComments         bool                        `gorm:"not null;default:true"`
	RequireAcknowledgment bool                        `gorm:"not null;default:false"`
	Tags                  datatypes.JSONSlice[string] `gorm:"type:json"`
	CreatedByID           *uint                       `gorm:"index"`
	CreatedAt             time.Time                   `gorm:"autoCreateTime:false;not null"`
	UpdatedAt             time.Time                   `gorm:"autoUpdateTime:false;not null"`

	Category AnnouncementCategoryModel `gorm:"constraint:OnDelete:RESTRICT"`
}

func (AnnouncementModel) TableName() string {
	return constants.TableAnnouncements
}

type AcknowledgmentModel struct {
	ID             uint      `gorm:"primarykey"`
	AnnouncementID uint      `gorm:"not null;uniqueIndex:idx_ack_announcement_user,priority:1"`
	UserID         uint      `gorm:"not null;uniqueIndex:idx_ack_announcement_user,priority:2"`
	Notes          string    `gorm:"type:text"`
	AcknowledgedAt time.Time `gorm:"not null"`

	Announcement AnnouncementModel `gorm:"constraint:OnDelete:CASCADE"`
}

func (AcknowledgmentModel) TableName() string {
	return constants.TableAcknowledgments
}

type AnnouncementCommentModel struct {
	ID             uint      `gorm:"primarykey"`
	AnnouncementID uint      `gorm:"not null;index"`
	UserID         *uint     `gorm:"index"`
	Content        string    `gorm:"type:text;not null"`
	IsApproved     bool      `gorm:"not null;default:true"`
	CreatedAt      time.Time `gorm:"autoCreateTime:false;not null"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime:false;not null"`

	Announcement AnnouncementModel `gorm:"constraint:OnDelete:CASCADE"`
}

func (AnnouncementCommentModel) TableName() string {
	return constants.TableComments
}

// DistributionModel keeps the individual recipient failures as JSON next to
// the truncated failure_reason summary.
type DistributionModel struct {
	ID             uint   `gorm:"primarykey"`
	AnnouncementID uint   `gorm:"not null;index"`
	Method         string `gorm:"size:20;not null"`
	RecipientGroup string `gorm:"size:100"`
	RecipientCount int    `gorm:"not null;default:0"`
	Status         string `gorm:"size:20;not null;default:pending;index"`
	ScheduledFor   *time.Time
	SentAt         *time.Time
	SuccessCount   int            `gorm:"not null;default:0"`
	FailureCount   int            `gorm:"not null;default:0"`
	FailureReason  string         `gorm:"type:text"`
	FailureDetails datatypes.JSON `gorm:"type:json"`
	CreatedAt      time.Time      `gorm:"autoCreateTime:false;not null"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime:false;not null"`

	Announcement AnnouncementModel `gorm:"constraint:OnDelete:CASCADE"`
}

func (DistributionModel) TableName() string {
	return constants.TableDistributions
}

type AttachmentModel struct {
	ID             uint      `gorm:"primarykey"`
	AnnouncementID uint      `gorm:"not null;index"`
	FilePath       string    `gorm:"size:255;not null"`
	Filename       string    `gorm:"size:255;not null"`
	FileType       string    `gorm:"size:50"`
	UploadedByID   *uint     `gorm:"index"`
	DownloadCount  int       `gorm:"not null;default:0"`
	UploadedAt     time.Time `gorm:"not null;index"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime:false;not null"`

	Announcement AnnouncementModel `gorm:"constraint:OnDelete:CASCADE"`
	UploadedBy   *UserModel        `gorm:"foreignKey:UploadedByID;constraint:OnDelete:SET NULL"`
}

func (AttachmentModel) TableName() string {
	return constants.TableAttachments
}

type TemplateModel struct {
	ID              uint      `gorm:"primarykey"`
	Name            string    `gorm:"uniqueIndex;size:200;not null"`
	Description     string    `gorm:"type:text"`
	ContentTemplate string    `gorm:"type:text;not null"`
	CategoryID      *uint     `gorm:"index"`
	IsActive        bool      `gorm:"not null;default:true"`
	CreatedByID     *uint     `gorm:"index"`
	CreatedAt       time.Time `gorm:"autoCreateTime:false;not null"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime:false;not null"`

	Category  *AnnouncementCategoryModel `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	CreatedBy *UserModel                 `gorm:"foreignKey:CreatedByID;constraint:OnDelete:SET NULL"`
}

func (TemplateModel) TableName() string {
	return constants.TableTemplates
}
