package models

import (
	"time"

	"campus/internal/shared/constants"
)

type AssetCategoryModel struct {
	ID          uint      `gorm:"primarykey"`
	Name        string    `gorm:"uniqueIndex;size:100;not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime:false;not null"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime:false;not null"`
}

func (AssetCategoryModel) TableName() string {
	return constants.TableAssetCategories
}

type AssetLocationModel struct {
	ID          uint      `gorm:"primarykey"`
	Name        string    `gorm:"size:200;not null"`
	Department  string    `gorm:"size:200"`
	Description string    `gorm:"type:text"`
	IsActive    bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time `gorm:"autoCreateTime:false;not null"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime:false;not null"`
}

func (AssetLocationModel) TableName() string {
	return constants.TableAssetLocations
}

type AssetModel struct {
	ID                  uint   `gorm:"primarykey"`
	AssetTag            string `gorm:"uniqueIndex;size:50;not null"`
	Name                string `gorm:"size:200;not null"`
	Description         string `gorm:"type:text"`
	CategoryID          uint   `gorm:"not null;index"`
	PurchasePriceCents  int64  `gorm:"not null"`
	CurrentValueCents   *int64
	Currency            string    `gorm:"size:3;not null;default:USD"`
	AcquisitionDate     time.Time `gorm:"not null"`
	WarrantyExpiry      *time.Time
	DepreciationRate    float64 `gorm:"not null;default:10"`
	LocationID          *uint   `gorm:"index"`
	AssignedToID        *uint   `gorm:"index"`
	SerialNumber        string  `gorm:"size:100"`
	Status              string  `gorm:"size:20;not null;default:active;index"`
	Condition           string  `gorm:"size:20;not null;default:good"`
	LastMaintenanceDate *time.Time
	MaintenanceNotes    string    `gorm:"type:text"`
	CreatedByID         *uint     `gorm:"index"`
	CreatedAt           time.Time `gorm:"autoCreateTime:false;not null"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime:false;not null"`

	Category   AssetCategoryModel  `gorm:"constraint:OnDelete:RESTRICT"`
	Location   *AssetLocationModel `gorm:"constraint:OnDelete:SET NULL"`
	AssignedTo *UserModel          `gorm:"foreignKey:AssignedToID;constraint:OnDelete:SET NULL"`
}

func (AssetModel) TableName() string {
	return constants.TableAssets
}

type AssetMovementModel struct {
	ID                uint   `gorm:"primarykey"`
	AssetID           uint   `gorm:"not null;index"`
	MovementType      string `gorm:"size:20;not null"`
	FromLocationID    *uint
	ToLocationID      *uint
	FromUserID        *uint
	ToUserID          *uint
	Quantity          int       `gorm:"not null;default:1"`
	Notes             string    `gorm:"type:text"`
	ReferenceDocument string    `gorm:"size:100"`
	MovementDate      time.Time `gorm:"not null;index"`
	RecordedByID      *uint
	CreatedAt         time.Time `gorm:"autoCreateTime:false;not null"`

	Asset AssetModel `gorm:"constraint:OnDelete:CASCADE"`
}

func (AssetMovementModel) TableName() string {
	return constants.TableAssetMovements
}

type MaintenanceRecordModel struct {
	ID             uint      `gorm:"primarykey"`
	AssetID        uint      `gorm:"not null;index"`
	Title          string    `gorm:"size:255;not null"`
	Description    string    `gorm:"type:text;not null"`
	ScheduledDate  time.Time `gorm:"not null;index"`
	CompletionDate *time.Time
	CostCents      *int64
	Currency       string    `gorm:"size:3;not null;default:USD"`
	Status         string    `gorm:"size:20;not null;default:scheduled;index"`
	AssignedToID   *uint     `gorm:"index"`
	Notes          string    `gorm:"type:text"`
	CreatedByID    *uint     `gorm:"index"`
	CreatedAt      time.Time `gorm:"autoCreateTime:false;not null"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime:false;not null"`

	Asset      AssetModel `gorm:"constraint:OnDelete:CASCADE"`
	AssignedTo *UserModel `gorm:"foreignKey:AssignedToID;constraint:OnDelete:SET NULL"`
}

func (MaintenanceRecordModel) TableName() string {
	return constants.TableMaintenanceRecords
}

type InventoryItemModel struct {
	ID                uint   `gorm:"primarykey"`
	ItemCode          string `gorm:"uniqueIndex;size:50;not null"`
	Name              string `gorm:"size:200;not null"`
	Description       string `gorm:"type:text"`
	CategoryID        uint   `gorm:"not null;index"`
	QuantityOnHand    int    `gorm:"not null;default:0"`
	ReorderLevel      int    `gorm:"not null;default:10"`
	ReorderQuantity   int    `gorm:"not null;default:50"`
	Unit              string `gorm:"size:20;not null;default:pieces"`
	UnitCostCents     int64  `gorm:"not null;default:0"`
	Currency          string `gorm:"size:3;not null;default:USD"`
	StorageLocationID *uint  `gorm:"index"`
	Supplier          string `gorm:"size:200"`
	IsActive          bool   `gorm:"not null;default:true"`
	LastRestocked     *time.Time
	CreatedAt         time.Time `gorm:"autoCreateTime:false;not null"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime:false;not null"`

	Category        AssetCategoryModel  `gorm:"constraint:OnDelete:RESTRICT"`
	StorageLocation *AssetLocationModel `gorm:"foreignKey:StorageLocationID;constraint:OnDelete:SET NULL"`
}

func (InventoryItemModel) TableName() string {
	return constants.TableInventoryItems
}

type InventoryTransactionModel struct {
	ID              uint   `gorm:"primarykey"`
	ItemID          uint   `gorm:"not null;index"`
	TransactionType string `gorm:"size:20;not null"`
	Quantity        int    `gorm:"not null"`
	Reference       string `gorm:"size:100"`
	IssuedByID      *uint
	Notes           string    `gorm:"type:text"`
	CreatedAt       time.Time `gorm:"autoCreateTime:false;not null;index"`

	Item InventoryItemModel `gorm:"constraint:OnDelete:CASCADE"`
}

func (InventoryTransactionModel) TableName() string {
	return constants.TableInventoryTransactions
}
