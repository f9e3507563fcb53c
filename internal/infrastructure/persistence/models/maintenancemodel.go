package models

import (
	"time"

	"campus/internal/shared/constants"
)

type MaintenanceTeamModel struct {
	ID          uint      `gorm:"primarykey"`
	Name        string    `gorm:"size:200;not null"`
	Description string    `gorm:"type:text"`
	HeadID      *uint     `gorm:"index"`
	Phone       string    `gorm:"size:50"`
	Email       string    `gorm:"size:255"`
	IsActive    bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time `gorm:"autoCreateTime:false;not null"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime:false;not null"`
}

func (MaintenanceTeamModel) TableName() string {
	return constants.TableMaintenanceTeams
}

type TechnicianModel struct {
	ID             uint   `gorm:"primarykey"`
	UserID         uint   `gorm:"not null;index"`
	TeamID         *uint  `gorm:"index"`
	Specialization string `gorm:"size:20;not null;default:general"`
	LicenseNumber  string `gorm:"size:100"`
	LicenseExpiry  *time.Time
	Phone          string    `gorm:"size:50"`
	IsActive       bool      `gorm:"not null;default:true"`
	CreatedAt      time.Time `gorm:"autoCreateTime:false;not null"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime:false;not null"`

	User UserModel             `gorm:"constraint:OnDelete:CASCADE"`
	Team *MaintenanceTeamModel `gorm:"foreignKey:TeamID;constraint:OnDelete:SET NULL"`
}

func (TechnicianModel) TableName() string {
	return constants.TableTechnicians
}

type MaintenanceRequestModel struct {
	ID                   uint   `gorm:"primarykey"`
	RequestID            string `gorm:"uniqueIndex;size:30;not null"`
	RequesterID          *uint  `gorm:"index"`
	AssetID              *uint  `gorm:"index"`
	LocationDescription  string `gorm:"size:255"`
	Title                string `gorm:"size:200;not null"`
	Description          string `gorm:"type:text;not null"`
	Priority             string `gorm:"size:20;not null;default:medium;index"`
	Status               string `gorm:"size:20;not null;default:draft;index"`
	TargetCompletionDate *time.Time
	AssignedToID         *uint `gorm:"index"`
	AssignedDate         *time.Time
	CompletedAt          *time.Time
	Notes                string    `gorm:"type:text"`
	CreatedAt            time.Time `gorm:"autoCreateTime:false;not null;index"`
	UpdatedAt            time.Time `gorm:"autoUpdateTime:false;not null"`

	Asset      *AssetModel      `gorm:"constraint:OnDelete:CASCADE"`
	AssignedTo *TechnicianModel `gorm:"foreignKey:AssignedToID;constraint:OnDelete:SET NULL"`
}

func (MaintenanceRequestModel) TableName() string {
	return constants.TableMaintenanceRequests
}

type WorkOrderModel struct {
	ID                   uint   `gorm:"primarykey"`
	WorkOrderID          string `gorm:"uniqueIndex;size:30;not null"`
	MaintenanceRequestID uint   `gorm:"uniqueIndex;not null"`
	TechnicianID         *uint  `gorm:"index"`
	SupervisorID         *uint
	ScheduledDate        *time.Time
	ScheduledStart       string `gorm:"size:5"`
	ScheduledEnd         string `gorm:"size:5"`
	ActualStart          *time.Time
	ActualEnd            *time.Time
	WorkDescription      string `gorm:"type:text;not null"`
	MaterialsRequired    string `gorm:"type:text"`
	EstimatedCostCents   *int64
	ActualCostCents      *int64
	Currency             string    `gorm:"size:3;not null;default:USD"`
	Status               string    `gorm:"size:20;not null;default:pending;index"`
	CreatedAt            time.Time `gorm:"autoCreateTime:false;not null"`
	UpdatedAt            time.Time `gorm:"autoUpdateTime:false;not null"`

	MaintenanceRequest MaintenanceRequestModel `gorm:"constraint:OnDelete:CASCADE"`
}

func (WorkOrderModel) TableName() string {
	return constants.TableWorkOrders
}

type WorkOrderCompletionModel struct {
	ID                  uint    `gorm:"primarykey"`
	WorkOrderID         uint    `gorm:"uniqueIndex;not null"`
	WorkPerformed       string  `gorm:"type:text;not null"`
	MaterialsUsed       string  `gorm:"type:text"`
	PartsReplaced       string  `gorm:"type:text"`
	HoursWorked         float64 `gorm:"not null"`
	LaborCostCents      *int64
	PartsCostCents      int64 `gorm:"not null;default:0"`
	TotalCostCents      *int64
	AssetConditionAfter string `gorm:"size:20;not null"`
	Notes               string `gorm:"type:text"`
	FollowUpNeeded      bool   `gorm:"not null;default:false"`
	FollowUpNotes       string `gorm:"type:text"`
	CompletedByID       *uint
	CompletedAt         time.Time `gorm:"not null"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime:false;not null"`

	WorkOrder WorkOrderModel `gorm:"constraint:OnDelete:CASCADE"`
}

func (WorkOrderCompletionModel) TableName() string {
	return constants.TableWorkOrderCompletions
}

type MaintenanceScheduleModel struct {
	ID                     uint   `gorm:"primarykey"`
	AssetID                uint   `gorm:"not null;index"`
	Title                  string `gorm:"size:255;not null"`
	Description            string `gorm:"type:text;not null"`
	Frequency              string `gorm:"size:20;not null"`
	LastPerformed          *time.Time
	NextDueDate            time.Time `gorm:"not null;index"`
	AssignedTeamID         *uint     `gorm:"index"`
	EstimatedDurationHours float64   `gorm:"not null;default:1"`
	EstimatedCostCents     *int64
	IsActive               bool      `gorm:"not null;default:true"`
	Notes                  string    `gorm:"type:text"`
	CreatedAt              time.Time `gorm:"autoCreateTime:false;not null"`
	UpdatedAt              time.Time `gorm:"autoUpdateTime:false;not null"`

	Asset        AssetModel            `gorm:"constraint:OnDelete:CASCADE"`
	AssignedTeam *MaintenanceTeamModel `gorm:"foreignKey:AssignedTeamID;constraint:OnDelete:SET NULL"`
}

func (MaintenanceScheduleModel) TableName() string {
	return constants.TableMaintenanceSchedules
}

type SignatureModel struct {
	ID            uint      `gorm:"primarykey"`
	WorkOrderID   uint      `gorm:"not null;uniqueIndex:idx_signature_work_order_type"`
	SignatureType string    `gorm:"size:30;not null;uniqueIndex:idx_signature_work_order_type"`
	SignerID      *uint     `gorm:"index"`
	SignatureData string    `gorm:"type:text;not null"`
	SignedAt      time.Time `gorm:"not null"`
	IPAddress     string    `gorm:"size:45"`
	DeviceInfo    string    `gorm:"size:255"`
	Comments      string    `gorm:"type:text"`
	IsValid       bool      `gorm:"not null;default:true"`
	CreatedAt     time.Time `gorm:"autoCreateTime:false;not null"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime:false;not null"`

	WorkOrder WorkOrderModel `gorm:"constraint:OnDelete:CASCADE"`
	Signer    *UserModel     `gorm:"foreignKey:SignerID;constraint:OnDelete:SET NULL"`
}

func (SignatureModel) TableName() string {
	return constants.TableSignatures
}

type MaintenanceHistoryModel struct {
	ID              uint      `gorm:"primarykey"`
	AssetID         uint      `gorm:"not null;index"`
	WorkOrderID     *uint     `gorm:"index"`
	MaintenanceDate time.Time `gorm:"not null;index"`
	WorkDescription string    `gorm:"type:text;not null"`
	TechnicianID    *uint     `gorm:"index"`
	Supervisor      string    `gorm:"size:255"`
	CostCents       *int64
	DurationHours   *float64
	SparePartsUsed  string    `gorm:"type:text"`
	ConditionBefore string    `gorm:"size:50"`
	ConditionAfter  string    `gorm:"size:50"`
	Notes           string    `gorm:"type:text"`
	CreatedAt       time.Time `gorm:"autoCreateTime:false;not null"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime:false;not null"`

	Asset      AssetModel       `gorm:"constraint:OnDelete:CASCADE"`
	WorkOrder  *WorkOrderModel  `gorm:"foreignKey:WorkOrderID;constraint:OnDelete:SET NULL"`
	Technician *TechnicianModel `gorm:"foreignKey:TechnicianID;constraint:OnDelete:SET NULL"`
}

func (MaintenanceHistoryModel) TableName() string {
	return constants.TableMaintenanceHistory
}

type MaintenanceMetricsModel struct {
	ID                    uint      `gorm:"primarykey"`
	Month                 time.Time `gorm:"uniqueIndex;not null"`
	TotalRequests         int       `gorm:"not null;default:0"`
	CompletedRequests     int       `gorm:"not null;default:0"`
	AverageCompletionDays *float64
	EmergencyRequests     int     `gorm:"not null;default:0"`
	ScheduledCompleted    int     `gorm:"not null;default:0"`
	TotalCostCents        int64   `gorm:"not null;default:0"`
	TotalLaborHours       float64 `gorm:"not null;default:0"`
	DowntimeHours         float64 `gorm:"not null;default:0"`
	AvailabilityPercent   *float64
	RepeatIssues          int       `gorm:"not null;default:0"`
	CreatedAt             time.Time `gorm:"autoCreateTime:false;not null"`
	UpdatedAt             time.Time `gorm:"autoUpdateTime:false;not null"`
}

func (MaintenanceMetricsModel) TableName() string {
	return constants.TableMaintenanceMetrics
}
