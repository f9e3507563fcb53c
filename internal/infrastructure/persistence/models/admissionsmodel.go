package models

import (
	"time"

	"campus/internal/shared/constants"
)

type AdmissionCycleModel struct {
	ID                     uint      `gorm:"primarykey"`
	Year                   int       `gorm:"uniqueIndex;not null"`
	StartDate              time.Time `gorm:"not null"`
	EndDate                time.Time `gorm:"not null"`
	ApplicationDeadline    time.Time `gorm:"not null"`
	ResultAnnouncementDate *time.Time
	IsActive               bool      `gorm:"not null;default:true"`
	Description            string    `gorm:"type:text"`
	CreatedAt              time.Time `gorm:"autoCreateTime:false;not null"`
}

func (AdmissionCycleModel) TableName() string {
	return constants.TableAdmissionCycles
}

type RequirementModel struct {
	ID           uint      `gorm:"primarykey"`
	ProgramID    uint      `gorm:"not null;index"`
	Title        string    `gorm:"size:200;not null"`
	Description  string    `gorm:"type:text"`
	DocumentType string    `gorm:"size:100"`
	IsMandatory  bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time `gorm:"autoCreateTime:false;not null"`

	Program ProgramModel `gorm:"constraint:OnDelete:CASCADE"`
}

func (RequirementModel) TableName() string {
	return constants.TableAdmissionRequirements
}

type ApplicantModel struct {
	ID                uint      `gorm:"primarykey"`
	CycleID           *uint     `gorm:"index"`
	ProgramID         *uint     `gorm:"index"`
	FirstName         string    `gorm:"size:100;not null"`
	LastName          string    `gorm:"size:100;not null"`
	Email             string    `gorm:"uniqueIndex;size:255;not null"`
	Phone             string    `gorm:"size:50;not null"`
	DateOfBirth       time.Time `gorm:"not null"`
	Nationality       string    `gorm:"size:100"`
	GPA               *float64  `gorm:"column:gpa"`
	Status            string    `gorm:"size:20;not null;default:draft;index"`
	DocumentsUploaded bool      `gorm:"not null;default:false"`
	Notes             string    `gorm:"type:text"`
	AppliedAt         time.Time `gorm:"autoCreateTime:false;not null;index"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime:false;not null"`

	Cycle   *AdmissionCycleModel `gorm:"foreignKey:CycleID;constraint:OnDelete:SET NULL"`
	Program *ProgramModel        `gorm:"constraint:OnDelete:SET NULL"`
}

func (ApplicantModel) TableName() string {
	return constants.TableApplicants
}

type ApplicantDocumentModel struct {
	ID             uint      `gorm:"primarykey"`
	ApplicantID    uint      `gorm:"not null;index"`
	RequirementID  *uint     `gorm:"index"`
	FilePath       string    `gorm:"size:255;not null"`
	Classification string    `gorm:"size:100"`
	UploadedAt     time.Time `gorm:"not null"`

	Applicant   ApplicantModel    `gorm:"constraint:OnDelete:CASCADE"`
	Requirement *RequirementModel `gorm:"constraint:OnDelete:SET NULL"`
}

func (ApplicantDocumentModel) TableName() string {
	return constants.TableApplicantDocuments
}
