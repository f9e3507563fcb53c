package mappers

import (
	"campus/internal/domain/assets"
	vo "campus/internal/domain/assets/valueobjects"
	"campus/internal/infrastructure/persistence/models"
)

func AssetCategoryToModel(c *assets.AssetCategory) *models.AssetCategoryModel {
	det := c.Details()
	return &models.AssetCategoryModel{
		ID:          c.ID(),
		Name:        det.Name,
		Description: det.Description,
		CreatedAt:   c.CreatedAt(),
		UpdatedAt:   c.UpdatedAt(),
	}
}

func AssetCategoryToDomain(m *models.AssetCategoryModel) (*assets.AssetCategory, error) {
	return assets.ReconstructAssetCategory(m.ID, assets.CategoryDetails{
		Name:        m.Name,
		Description: m.Description,
	}, m.CreatedAt, m.UpdatedAt), nil
}

func AssetLocationToModel(l *assets.AssetLocation) *models.AssetLocationModel {
	det := l.Details()
	return &models.AssetLocationModel{
		ID:          l.ID(),
		Name:        det.Name,
		Department:  det.Department,
		Description: det.Description,
		IsActive:    det.IsActive,
		CreatedAt:   l.CreatedAt(),
		UpdatedAt:   l.UpdatedAt(),
	}
}

func AssetLocationToDomain(m *models.AssetLocationModel) (*assets.AssetLocation, error) {
	return assets.ReconstructAssetLocation(m.ID, assets.LocationDetails{
		Name:        m.Name,
		Department:  m.Department,
		Description: m.Description,
		IsActive:    m.IsActive,
	}, m.CreatedAt, m.UpdatedAt), nil
}

func AssetToModel(a *assets.Asset) *models.AssetModel {
	det := a.Details()
	return &models.AssetModel{
		ID:                  a.ID(),
		AssetTag:            det.AssetTag,
		Name:                det.Name,
		Description:         det.Description,
		CategoryID:          det.CategoryID,
		PurchasePriceCents:  det.PurchasePriceCents,
		CurrentValueCents:   det.CurrentValueCents,
		Currency:            det.Currency,
		AcquisitionDate:     det.AcquisitionDate,
		WarrantyExpiry:      det.WarrantyExpiry,
		DepreciationRate:    det.DepreciationRate,
		LocationID:          det.LocationID,
		AssignedToID:        det.AssignedToID,
		SerialNumber:        det.SerialNumber,
		Status:              a.Status().String(),
		Condition:           det.Condition.String(),
		LastMaintenanceDate: det.LastMaintenanceDate,
		MaintenanceNotes:    det.MaintenanceNotes,
		CreatedByID:         a.CreatedBy(),
		CreatedAt:           a.CreatedAt(),
		UpdatedAt:           a.UpdatedAt(),
	}
}

func AssetToDomain(m *models.AssetModel) (*assets.Asset, error) {
	return assets.ReconstructAsset(m.ID, assets.AssetDetails{
		AssetTag:            m.AssetTag,
		Name:                m.Name,
		Description:         m.Description,
		CategoryID:          m.CategoryID,
		PurchasePriceCents:  m.PurchasePriceCents,
		CurrentValueCents:   m.CurrentValueCents,
		Currency:            m.Currency,
		AcquisitionDate:     m.AcquisitionDate,
		WarrantyExpiry:      m.WarrantyExpiry,
		DepreciationRate:    m.DepreciationRate,
		LocationID:          m.LocationID,
		AssignedToID:        m.AssignedToID,
		SerialNumber:        m.SerialNumber,
		Condition:           vo.AssetCondition(m.Condition),
		LastMaintenanceDate: m.LastMaintenanceDate,
		MaintenanceNotes:    m.MaintenanceNotes,
	}, vo.AssetStatus(m.Status), m.CreatedByID, m.CreatedAt, m.UpdatedAt)
}

func MovementToModel(mv *assets.AssetMovement) *models.AssetMovementModel {
	det := mv.Details()
	return &models.AssetMovementModel{
		ID:                mv.ID(),
		AssetID:           det.AssetID,
		MovementType:      det.MovementType.String(),
		FromLocationID:    det.FromLocationID,
		ToLocationID:      det.ToLocationID,
		FromUserID:        det.FromUserID,
		ToUserID:          det.ToUserID,
		Quantity:          det.Quantity,
		Notes:             det.Notes,
		ReferenceDocument: det.ReferenceDocument,
		MovementDate:      det.MovementDate,
		RecordedByID:      mv.RecordedBy(),
		CreatedAt:         mv.CreatedAt(),
	}
}

func MovementToDomain(m *models.AssetMovementModel) (*assets.AssetMovement, error) {
	return assets.ReconstructAssetMovement(m.ID, assets.MovementDetails{
		AssetID:           m.AssetID,
		MovementType:      vo.MovementType(m.MovementType),
		FromLocationID:    m.FromLocationID,
		ToLocationID:      m.ToLocationID,
		FromUserID:        m.FromUserID,
		ToUserID:          m.ToUserID,
		Quantity:          m.Quantity,
		Notes:             m.Notes,
		ReferenceDocument: m.ReferenceDocument,
		MovementDate:      m.MovementDate,
	}, m.RecordedByID, m.CreatedAt), nil
}

func MaintenanceRecordToModel(r *assets.MaintenanceRecord) *models.MaintenanceRecordModel {
	det := r.Details()
	return &models.MaintenanceRecordModel{
		ID:             r.ID(),
		AssetID:        det.AssetID,
		Title:          det.Title,
		Description:    det.Description,
		ScheduledDate:  det.ScheduledDate,
		CompletionDate: r.CompletionDate(),
		CostCents:      det.CostCents,
		Currency:       det.Currency,
		Status:         r.Status().String(),
		AssignedToID:   det.AssignedToID,
		Notes:          det.Notes,
		CreatedByID:    r.CreatedBy(),
		CreatedAt:      r.CreatedAt(),
		UpdatedAt:      r.UpdatedAt(),
	}
}

func MaintenanceRecordToDomain(m *models.MaintenanceRecordModel) (*assets.MaintenanceRecord, error) {
	return assets.ReconstructMaintenanceRecord(m.ID, assets.RecordDetails{
		AssetID:       m.AssetID,
		Title:         m.Title,
		Description:   m.Description,
		ScheduledDate: m.ScheduledDate,
		CostCents:     m.CostCents,
		Currency:      m.Currency,
		AssignedToID:  m.AssignedToID,
		Notes:         m.Notes,
	}, vo.RecordStatus(m.Status), m.CompletionDate, m.CreatedByID, m.CreatedAt, m.UpdatedAt)
}

func InventoryItemToModel(i *assets.InventoryItem) *models.InventoryItemModel {
	det := i.Details()
	return &models.InventoryItemModel{
		ID:                i.ID(),
		ItemCode:          det.ItemCode,
		Name:              det.Name,
		Description:       det.Description,
		CategoryID:        det.CategoryID,
		QuantityOnHand:    i.QuantityOnHand(),
		ReorderLevel:      det.ReorderLevel,
		ReorderQuantity:   det.ReorderQuantity,
		Unit:              det.Unit.String(),
		UnitCostCents:     det.UnitCostCents,
		Currency:          det.Currency,
		StorageLocationID: det.StorageLocationID,
		Supplier:          det.Supplier,
		IsActive:          det.IsActive,
		LastRestocked:     i.LastRestocked(),
		CreatedAt:         i.CreatedAt(),
		UpdatedAt:         i.UpdatedAt(),
	}
}

func InventoryItemToDomain(m *models.InventoryItemModel) (*assets.InventoryItem, error) {
	return assets.ReconstructInventoryItem(m.ID, assets.ItemDetails{
		ItemCode:          m.ItemCode,
		Name:              m.Name,
		Description:       m.Description,
		CategoryID:        m.CategoryID,
		ReorderLevel:      m.ReorderLevel,
		ReorderQuantity:   m.ReorderQuantity,
		Unit:              vo.InventoryUnit(m.Unit),
		UnitCostCents:     m.UnitCostCents,
		Currency:          m.Currency,
		StorageLocationID: m.StorageLocationID,
		Supplier:          m.Supplier,
		IsActive:          m.IsActive,
	}, m.QuantityOnHand, m.LastRestocked, m.CreatedAt, m.UpdatedAt), nil
}

func InventoryTransactionToModel(t *assets.InventoryTransaction) *models.InventoryTransactionModel {
	det := t.Details()
	return &models.InventoryTransactionModel{
		ID:              t.ID(),
		ItemID:          det.ItemID,
		TransactionType: det.TransactionType.String(),
		Quantity:        det.Quantity,
		Reference:       det.Reference,
		IssuedByID:      t.IssuedBy(),
		Notes:           det.Notes,
		CreatedAt:       t.CreatedAt(),
	}
}

func InventoryTransactionToDomain(m *models.InventoryTransactionModel) (*assets.InventoryTransaction, error) {
	return assets.ReconstructInventoryTransaction(m.ID, assets.TransactionDetails{
		ItemID:          m.ItemID,
		TransactionType: vo.TransactionType(m.TransactionType),
		Quantity:        m.Quantity,
		Reference:       m.Reference,
		Notes:           m.Notes,
	}, m.IssuedByID, m.CreatedAt), nil
}
