package models

import (
	"time"

	"campus/internal/shared/constants"
)

type VisitDepartmentModel struct {
	ID   uint   `gorm:"primarykey"`
	Name string `gorm:"uniqueIndex;size:200;not null"`
}

func (VisitDepartmentModel) TableName() string {
	return constants.TableVisitDepartments
}

type VisitRequestModel struct {
	ID                   uint   `gorm:"primarykey"`
	RequesterID          uint   `gorm:"not null;index"`
	DepartmentID         uint   `gorm:"not null;index"`
	Reason               string `gorm:"type:text;not null"`
	CreatedBySecretaryID *uint
	Status               string `gorm:"size:20;not null;default:PENDING;index"`
	HeadNote             string `gorm:"type:text"`
	RespondedByID        *uint
	RespondedAt          *time.Time
	CreatedAt            time.Time `gorm:"autoCreateTime:false;not null;index"`
	UpdatedAt            time.Time `gorm:"autoUpdateTime:false;not null"`

	Requester  UserModel            `gorm:"constraint:OnDelete:CASCADE"`
	Department VisitDepartmentModel `gorm:"constraint:OnDelete:RESTRICT"`
}

func (VisitRequestModel) TableName() string {
	return constants.TableVisitRequests
}
