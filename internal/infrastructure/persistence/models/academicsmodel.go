package models

import (
	"time"

	"campus/internal/shared/constants"
)

type DepartmentModel struct {
	ID               uint      `gorm:"primarykey"`
	Name             string    `gorm:"uniqueIndex;size:200;not null"`
	Slug             string    `gorm:"uniqueIndex;size:220;not null"`
	Description      string    `gorm:"type:text"`
	HeadOfDepartment string    `gorm:"size:200"`
	Email            string    `gorm:"size:255"`
	Phone            string    `gorm:"size:50"`
	OfficeLocation   string    `gorm:"size:200"`
	CreatedAt        time.Time `gorm:"autoCreateTime:false;not null"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime:false;not null"`
}

func (DepartmentModel) TableName() string {
	return constants.TableDepartments
}

type ProgramModel struct {
	ID                 uint   `gorm:"primarykey"`
	DepartmentID       uint   `gorm:"not null;index"`
	Name               string `gorm:"size:200;not null"`
	Slug               string `gorm:"uniqueIndex;size:220;not null"`
	Level              string `gorm:"size:20;not null;index"`
	Description        string `gorm:"type:text;not null"`
	DurationMonths     int    `gorm:"not null"`
	TuitionFeeCents    *int64
	EntryRequirements  string    `gorm:"type:text"`
	CareerProspects    string    `gorm:"type:text"`
	ProgramCoordinator string    `gorm:"size:200"`
	IsActive           bool      `gorm:"not null;default:true"`
	CreatedAt          time.Time `gorm:"autoCreateTime:false;not null"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime:false;not null"`

	Department DepartmentModel `gorm:"constraint:OnDelete:CASCADE"`
}

func (ProgramModel) TableName() string {
	return constants.TablePrograms
}

type CourseModel struct {
	ID          uint      `gorm:"primarykey"`
	ProgramID   uint      `gorm:"not null;index"`
	Code        string    `gorm:"uniqueIndex;size:10;not null"`
	Title       string    `gorm:"size:200;not null"`
	Description string    `gorm:"type:text"`
	Credits     int       `gorm:"not null;default:3"`
	Semester    int       `gorm:"not null"`
	Instructor  string    `gorm:"size:200"`
	IsRequired  bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time `gorm:"autoCreateTime:false;not null"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime:false;not null"`

	Program ProgramModel `gorm:"constraint:OnDelete:CASCADE"`
}

func (CourseModel) TableName() string {
	return constants.TableCourses
}

type FacultyModel struct {
	ID             uint      `gorm:"primarykey"`
	FullName       string    `gorm:"size:200;not null"`
	DepartmentID   *uint     `gorm:"index"`
	Title          string    `gorm:"size:100"`
	Email          string    `gorm:"size:255;not null"`
	Phone          string    `gorm:"size:50"`
	OfficeRoom     string    `gorm:"size:100"`
	Specialization string    `gorm:"size:200"`
	Bio            string    `gorm:"type:text"`
	Publications   string    `gorm:"type:text"`
	CreatedAt      time.Time `gorm:"autoCreateTime:false;not null"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime:false;not null"`

	Department *DepartmentModel `gorm:"constraint:OnDelete:SET NULL"`
}

func (FacultyModel) TableName() string {
	return constants.TableFaculty
}
