package assets

import (
	"context"

	"campus/internal/domain/shared"
	"campus/internal/shared/query"
)

type CategoryFilter struct {
	query.BaseFilter
	Search string
}

type LocationFilter struct {
	query.BaseFilter
	ActiveOnly bool
}

type AssetFilter struct {
	query.BaseFilter
	Status     string
	CategoryID uint
	LocationID uint
	Search     string
}

type MovementFilter struct {
	query.BaseFilter
	AssetID uint
}

type RecordFilter struct {
	query.BaseFilter
	AssetID      uint
	Status       string
	AssignedToID uint
}

type ItemFilter struct {
	query.BaseFilter
	CategoryID   uint
	LocationID   uint
	NeedsReorder bool
	Search       string
}

type TransactionFilter struct {
	query.BaseFilter
	ItemID uint
}

// AssetCategoryRepository refuses to delete a category in use.
type AssetCategoryRepository interface {
	shared.CRUD[*AssetCategory]
	List(ctx context.Context, filter CategoryFilter) ([]*AssetCategory, int64, error)
}

// AssetLocationRepository deletes clear every reference to the location.
type AssetLocationRepository interface {
	shared.CRUD[*AssetLocation]
	List(ctx context.Context, filter LocationFilter) ([]*AssetLocation, int64, error)
}

// AssetRepository deletes cascade to movements, maintenance requests,
// maintenance records, schedules and history.
type AssetRepository interface {
	shared.CRUD[*Asset]
	List(ctx context.Context, filter AssetFilter) ([]*Asset, int64, error)
	ExistsByTag(ctx context.Context, tag string, excludeID uint) (bool, error)
}

type AssetMovementRepository interface {
	shared.CRUD[*AssetMovement]
	List(ctx context.Context, filter MovementFilter) ([]*AssetMovement, int64, error)
}

// MaintenanceRecordRepository lists the latest scheduled date first.
type MaintenanceRecordRepository interface {
	shared.CRUD[*MaintenanceRecord]
	List(ctx context.Context, filter RecordFilter) ([]*MaintenanceRecord, int64, error)
}

// InventoryItemRepository deletes cascade to stock transactions.
type InventoryItemRepository interface {
	shared.CRUD[*InventoryItem]
	List(ctx context.Context, filter ItemFilter) ([]*InventoryItem, int64, error)
	ExistsByCode(ctx context.Context, code string, excludeID uint) (bool, error)
}

type InventoryTransactionRepository interface {
	Create(ctx context.Context, t *InventoryTransaction) error
	GetByID(ctx context.Context, id uint) (*InventoryTransaction, error)
	List(ctx context.Context, filter TransactionFilter) ([]*InventoryTransaction, int64, error)
}
