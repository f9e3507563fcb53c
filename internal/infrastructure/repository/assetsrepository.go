package repository

import (
	"context"

	"gorm.io/gorm"

	"campus/internal/domain/assets"
	"campus/internal/infrastructure/persistence/mappers"
	"campus/internal/infrastructure/persistence/models"
	"campus/internal/shared/db"
	"campus/internal/shared/logger"
)

var (
	assetCategorySortColumns = map[string]bool{"id": true, "name": true}
	assetLocationSortColumns = map[string]bool{"id": true, "name": true, "department": true}
	assetSortColumns         = map[string]bool{
		"id": true, "asset_tag": true, "name": true, "status": true, "acquisition_date": true,
		"purchase_price_cents": true, "created_at": true,
	}
	movementSortColumns    = map[string]bool{"id": true, "movement_date": true, "movement_type": true}
	recordSortColumns      = map[string]bool{"id": true, "scheduled_date": true, "status": true, "created_at": true}
	itemSortColumns        = map[string]bool{"id": true, "item_code": true, "name": true, "quantity_on_hand": true}
	transactionSortColumns = map[string]bool{"id": true, "created_at": true, "transaction_type": true}
)

// AssetCategoryRepository rejects deletes while assets or inventory items
// use the category.
type AssetCategoryRepository struct {
	*table[*assets.AssetCategory, models.AssetCategoryModel]
}

var _ assets.AssetCategoryRepository = (*AssetCategoryRepository)(nil)

func NewAssetCategoryRepository(gdb *gorm.DB, logger logger.Interface) *AssetCategoryRepository {
	return &AssetCategoryRepository{&table[*assets.AssetCategory, models.AssetCategoryModel]{
		db:       gdb,
		logger:   logger,
		label:    "asset category",
		toModel:  mappers.AssetCategoryToModel,
		toDomain: mappers.AssetCategoryToDomain,
		modelID:  func(m *models.AssetCategoryModel) uint { return m.ID },
		unique:   []string{"name"},
		onDelete: assetCategoryRules(),
	}}
}

func (r *AssetCategoryRepository) List(ctx context.Context, filter assets.CategoryFilter) ([]*assets.AssetCategory, int64, error) {
	return r.page(ctx, filter.PageFilter,
		filter.OrderClause(assetCategorySortColumns, "name ASC"),
		search(filter.Search, "name"),
	)
}

type AssetLocationRepository struct {
	*table[*assets.AssetLocation, models.AssetLocationModel]
}

var _ assets.AssetLocationRepository = (*AssetLocationRepository)(nil)

func NewAssetLocationRepository(gdb *gorm.DB, logger logger.Interface) *AssetLocationRepository {
	return &AssetLocationRepository{&table[*assets.AssetLocation, models.AssetLocationModel]{
		db:       gdb,
		logger:   logger,
		label:    "asset location",
		toModel:  mappers.AssetLocationToModel,
		toDomain: mappers.AssetLocationToDomain,
		modelID:  func(m *models.AssetLocationModel) uint { return m.ID },
		onDelete: locationRules(),
	}}
}

func (r *AssetLocationRepository) List(ctx context.Context, filter assets.LocationFilter) ([]*assets.AssetLocation, int64, error) {
	return r.page(ctx, filter.PageFilter,
		filter.OrderClause(assetLocationSortColumns, "name ASC"),
		db.WhereIf(filter.ActiveOnly, "is_active = ?", true),
	)
}

type AssetRepository struct {
	*table[*assets.Asset, models.AssetModel]
}

var _ assets.AssetRepository = (*AssetRepository)(nil)

func NewAssetRepository(gdb *gorm.DB, logger logger.Interface) *AssetRepository {
	return &AssetRepository{&table[*assets.Asset, models.AssetModel]{
		db:       gdb,
		logger:   logger,
		label:    "asset",
		toModel:  mappers.AssetToModel,
		toDomain: mappers.AssetToDomain,
		modelID:  func(m *models.AssetModel) uint { return m.ID },
		unique:   []string{"asset_tag"},
		onDelete: assetRules(),
	}}
}

func (r *AssetRepository) List(ctx context.Context, filter assets.AssetFilter) ([]*assets.Asset, int64, error) {
	return r.page(ctx, filter.PageFilter,
		filter.OrderClause(assetSortColumns, "created_at DESC"),
		db.WhereIf(filter.Status != "", "status = ?", filter.Status),
		db.WhereIf(filter.CategoryID != 0, "category_id = ?", filter.CategoryID),
		db.WhereIf(filter.LocationID != 0, "location_id = ?", filter.LocationID),
		search(filter.Search, "asset_tag", "name", "serial_number"),
	)
}

func (r *AssetRepository) ExistsByTag(ctx context.Context, tag string, excludeID uint) (bool, error) {
	return r.existsExcept(ctx, "asset_tag", tag, excludeID)
}

type AssetMovementRepository struct {
	*table[*assets.AssetMovement, models.AssetMovementModel]
}

var _ assets.AssetMovementRepository = (*AssetMovementRepository)(nil)

func NewAssetMovementRepository(gdb *gorm.DB, logger logger.Interface) *AssetMovementRepository {
	return &AssetMovementRepository{&table[*assets.AssetMovement, models.AssetMovementModel]{
		db:       gdb,
		logger:   logger,
		label:    "asset movement",
		toModel:  mappers.MovementToModel,
		toDomain: mappers.MovementToDomain,
		modelID:  func(m *models.AssetMovementModel) uint { return m.ID },
	}}
}

func (r *AssetMovementRepository) List(ctx context.Context, filter assets.MovementFilter) ([]*assets.AssetMovement, int64, error) {
	return r.page(ctx, filter.PageFilter,
		filter.OrderClause(movementSortColumns, "movement_date DESC"),
		db.WhereIf(filter.AssetID != 0, "asset_id = ?", filter.AssetID),
	)
}

type InventoryItemRepository struct {
	*table[*assets.InventoryItem, models.InventoryItemModel]
}

var _ assets.InventoryItemRepository = (*InventoryItemRepository)(nil)

func NewInventoryItemRepository(gdb *gorm.DB, logger logger.Interface) *InventoryItemRepository {
	return &InventoryItemRepository{&table[*assets.InventoryItem, models.InventoryItemModel]{
		db:       gdb,
		logger:   logger,
		label:    "inventory item",
		toModel:  mappers.InventoryItemToModel,
		toDomain: mappers.InventoryItemToDomain,
		modelID:  func(m *models.InventoryItemModel) uint { return m.ID },
		unique:   []string{"item_code"},
		onDelete: inventoryItemRules(),
	}}
}

func (r *InventoryItemRepository) List(ctx context.Context, filter assets.ItemFilter) ([]*assets.InventoryItem, int64, error) {
	return r.page(ctx, filter.PageFilter,
		filter.OrderClause(itemSortColumns, "name ASC"),
		db.WhereIf(filter.CategoryID != 0, "category_id = ?", filter.CategoryID),
		db.WhereIf(filter.LocationID != 0, "storage_location_id = ?", filter.LocationID),
		db.WhereIf(filter.NeedsReorder, "quantity_on_hand <= reorder_level"),
		search(filter.Search, "item_code", "name", "supplier"),
	)
}

func (r *InventoryItemRepository) ExistsByCode(ctx context.Context, code string, excludeID uint) (bool, error) {
	return r.existsExcept(ctx, "item_code", code, excludeID)
}

type InventoryTransactionRepository struct {
	*table[*assets.InventoryTransaction, models.InventoryTransactionModel]
}

var _ assets.InventoryTransactionRepository = (*InventoryTransactionRepository)(nil)

func NewInventoryTransactionRepository(gdb *gorm.DB, logger logger.Interface) *InventoryTransactionRepository {
	return &InventoryTransactionRepository{&table[*assets.InventoryTransaction, models.InventoryTransactionModel]{
		db:       gdb,
		logger:   logger,
		label:    "inventory transaction",
		toModel:  mappers.InventoryTransactionToModel,
		toDomain: mappers.InventoryTransactionToDomain,
		modelID:  func(m *models.InventoryTransactionModel) uint { return m.ID },
	}}
}

func (r *InventoryTransactionRepository) List(ctx context.Context, filter assets.TransactionFilter) ([]*assets.InventoryTransaction, int64, error) {
	return r.page(ctx, filter.PageFilter,
		filter.OrderClause(transactionSortColumns, "created_at DESC"),
		db.WhereIf(filter.ItemID != 0, "item_id = ?", filter.ItemID),
	)
}

type MaintenanceRecordRepository struct {
	*table[*assets.MaintenanceRecord, models.MaintenanceRecordModel]
}

var _ assets.MaintenanceRecordRepository = (*MaintenanceRecordRepository)(nil)

func NewMaintenanceRecordRepository(gdb *gorm.DB, logger logger.Interface) *MaintenanceRecordRepository {
	return &MaintenanceRecordRepository{&table[*assets.MaintenanceRecord, models.MaintenanceRecordModel]{
		db:       gdb,
		logger:   logger,
		label:    "maintenance record",
		toModel:  mappers.MaintenanceRecordToModel,
		toDomain: mappers.MaintenanceRecordToDomain,
		modelID:  func(m *models.MaintenanceRecordModel) uint { return m.ID },
	}}
}

func (r *MaintenanceRecordRepository) List(ctx context.Context, filter assets.RecordFilter) ([]*assets.MaintenanceRecord, int64, error) {
	return r.page(ctx, filter.PageFilter,
		filter.OrderClause(recordSortColumns, "scheduled_date DESC"),
		db.WhereIf(filter.AssetID != 0, "asset_id = ?", filter.AssetID),
		db.WhereIf(filter.Status != "", "status = ?", filter.Status),
		db.WhereIf(filter.AssignedToID != 0, "assigned_to_id = ?", filter.AssignedToID),
	)
}
