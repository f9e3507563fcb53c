package models

import (
	"time"

	"campus/internal/shared/constants"
)

type JobPostingModel struct {
	ID             uint   `gorm:"primarykey"`
	Title          string `gorm:"size:200;not null"`
	Slug           string `gorm:"uniqueIndex;size:220;not null"`
	Department     string `gorm:"size:200"`
	Position       string `gorm:"size:200"`
	JobType        string `gorm:"size:20;not null;index"`
	Description    string `gorm:"type:text;not null"`
	Requirements   string `gorm:"type:text"`
	SalaryMinCents *int64
	SalaryMaxCents *int64
	Currency       string    `gorm:"size:3;not null;default:USD"`
	Deadline       time.Time `gorm:"not null;index"`
	PostedDate     time.Time `gorm:"not null"`
	IsActive       bool      `gorm:"not null;default:true"`
	CreatedAt      time.Time `gorm:"autoCreateTime:false;not null"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime:false;not null"`
}

func (JobPostingModel) TableName() string {
	return constants.TableJobPostings
}

type JobApplicationModel struct {
	ID          uint      `gorm:"primarykey"`
	JobID       uint      `gorm:"not null;uniqueIndex:idx_job_application_email,priority:1"`
	FirstName   string    `gorm:"size:100;not null"`
	LastName    string    `gorm:"size:100;not null"`
	Email       string    `gorm:"size:255;not null;uniqueIndex:idx_job_application_email,priority:2"`
	Phone       string    `gorm:"size:50"`
	CoverLetter string    `gorm:"type:text"`
	ResumePath  string    `gorm:"size:255"`
	Status      string    `gorm:"size:20;not null;default:submitted;index"`
	Notes       string    `gorm:"type:text"`
	AppliedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime:false;not null"`

	Job JobPostingModel `gorm:"constraint:OnDelete:CASCADE"`
}

func (JobApplicationModel) TableName() string {
	return constants.TableJobApplications
}
