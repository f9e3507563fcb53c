package assets

import (
	"time"

	"campus/internal/domain/assets"
	vo "campus/internal/domain/assets/valueobjects"
	"campus/internal/shared/biztime"
	"campus/internal/shared/utils"
)

type CategoryRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
}

type CategoryResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func categoryDetails(r CategoryRequest) (assets.CategoryDetails, error) {
	return assets.CategoryDetails(r), nil
}

func categoryRequest(d assets.CategoryDetails) CategoryRequest {
	return CategoryRequest(d)
}

func toCategoryResponse(c *assets.AssetCategory) any {
	d := c.Details()
	return CategoryResponse{ID: c.ID(), Name: d.Name, Description: d.Description, CreatedAt: c.CreatedAt()}
}

type LocationRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Department  string `json:"department" binding:"max=200"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}

type LocationResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Department  string    `json:"department"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

func locationDetails(r LocationRequest) (assets.LocationDetails, error) {
	return assets.LocationDetails{
		Name:        r.Name,
		Department:  r.Department,
		Description: r.Description,
		IsActive:    r.IsActive == nil || *r.IsActive,
	}, nil
}

func locationRequest(d assets.LocationDetails) LocationRequest {
	active := d.IsActive
	return LocationRequest{Name: d.Name, Department: d.Department, Description: d.Description, IsActive: &active}
}

func toLocationResponse(l *assets.AssetLocation) any {
	d := l.Details()
	return LocationResponse{
		ID:          l.ID(),
		Name:        d.Name,
		Department:  d.Department,
		Description: d.Description,
		IsActive:    d.IsActive,
		CreatedAt:   l.CreatedAt(),
	}
}

type AssetRequest struct {
	AssetTag            string   `json:"asset_tag" binding:"required,max=50"`
	Name                string   `json:"name" binding:"required,max=200"`
	Description         string   `json:"description"`
	CategoryID          uint     `json:"category_id" binding:"required"`
	PurchasePriceCents  int64    `json:"purchase_price_cents" binding:"gte=0"`
	CurrentValueCents   *int64   `json:"current_value_cents" binding:"omitempty,gte=0"`
	Currency            string   `json:"currency" binding:"omitempty,len=3"`
	AcquisitionDate     string   `json:"acquisition_date"`
	WarrantyExpiry      *string  `json:"warranty_expiry"`
	DepreciationRate    *float64 `json:"depreciation_rate" binding:"omitempty,gte=0,lte=100"`
	LocationID          *uint    `json:"location_id"`
	AssignedToID        *uint    `json:"assigned_to_id"`
	SerialNumber        string   `json:"serial_number" binding:"max=100"`
	Condition           string   `json:"condition" binding:"omitempty,oneof=excellent good fair poor condemned"`
	LastMaintenanceDate *string  `json:"last_maintenance_date"`
	MaintenanceNotes    string   `json:"maintenance_notes"`
}

type AssetResponse struct {
	ID                    uint      `json:"id"`
	AssetTag              string    `json:"asset_tag"`
	Name                  string    `json:"name"`
	Description           string    `json:"description"`
	CategoryID            uint      `json:"category_id"`
	Status                string    `json:"status"`
	Condition             string    `json:"condition"`
	PurchasePriceCents    int64     `json:"purchase_price_cents"`
	CurrentValueCents     *int64    `json:"current_value_cents"`
	DepreciatedValueCents int64     `json:"depreciated_value_cents"`
	YearsInService        float64   `json:"years_in_service"`
	Currency              string    `json:"currency"`
	AcquisitionDate       string    `json:"acquisition_date"`
	WarrantyExpiry        *string   `json:"warranty_expiry"`
	DepreciationRate      float64   `json:"depreciation_rate"`
	LocationID            *uint     `json:"location_id"`
	AssignedToID          *uint     `json:"assigned_to_id"`
	SerialNumber          string    `json:"serial_number"`
	LastMaintenanceDate   *string   `json:"last_maintenance_date"`
	MaintenanceNotes      string    `json:"maintenance_notes"`
	CreatedBy             *uint     `json:"created_by"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

func assetDetails(r AssetRequest) (assets.AssetDetails, error) {
	acquired, err := utils.ParseDateField("acquisition_date", r.AcquisitionDate)
	if err != nil {
		return assets.AssetDetails{}, err
	}
	warranty, err := utils.ParseOptionalDateField("warranty_expiry", r.WarrantyExpiry)
	if err != nil {
		return assets.AssetDetails{}, err
	}
	maintained, err := utils.ParseOptionalDateField("last_maintenance_date", r.LastMaintenanceDate)
	if err != nil {
		return assets.AssetDetails{}, err
	}
	rate := assets.DefaultDepreciationRate
	if r.DepreciationRate != nil {
		rate = *r.DepreciationRate
	}
	return assets.AssetDetails{
		AssetTag:            r.AssetTag,
		Name:                r.Name,
		Description:         r.Description,
		CategoryID:          r.CategoryID,
		PurchasePriceCents:  r.PurchasePriceCents,
		CurrentValueCents:   r.CurrentValueCents,
		Currency:            r.Currency,
		AcquisitionDate:     acquired,
		WarrantyExpiry:      warranty,
		DepreciationRate:    rate,
		LocationID:          r.LocationID,
		AssignedToID:        r.AssignedToID,
		SerialNumber:        r.SerialNumber,
		Condition:           vo.AssetCondition(r.Condition),
		LastMaintenanceDate: maintained,
		MaintenanceNotes:    r.MaintenanceNotes,
	}, nil
}

func assetRequest(d assets.AssetDetails) AssetRequest {
	rate := d.DepreciationRate
	return AssetRequest{
		AssetTag:            d.AssetTag,
		Name:                d.Name,
		Description:         d.Description,
		CategoryID:          d.CategoryID,
		PurchasePriceCents:  d.PurchasePriceCents,
		CurrentValueCents:   d.CurrentValueCents,
		Currency:            d.Currency,
		AcquisitionDate:     biztime.FormatDate(d.AcquisitionDate),
		WarrantyExpiry:      utils.FormatOptionalDate(d.WarrantyExpiry),
		DepreciationRate:    &rate,
		LocationID:          d.LocationID,
		AssignedToID:        d.AssignedToID,
		SerialNumber:        d.SerialNumber,
		Condition:           d.Condition.String(),
		LastMaintenanceDate: utils.FormatOptionalDate(d.LastMaintenanceDate),
		MaintenanceNotes:    d.MaintenanceNotes,
	}
}

func toAssetResponse(a *assets.Asset) any {
	d := a.Details()
	today := biztime.StartOfDayUTC(biztime.NowUTC())
	return AssetResponse{
		ID:                    a.ID(),
		AssetTag:              d.AssetTag,
		Name:                  d.Name,
		Description:           d.Description,
		CategoryID:            d.CategoryID,
		Status:                a.Status().String(),
		Condition:             d.Condition.String(),
		PurchasePriceCents:    d.PurchasePriceCents,
		CurrentValueCents:     d.CurrentValueCents,
		DepreciatedValueCents: a.DepreciatedValueCents(today),
		YearsInService:        a.YearsInService(today),
		Currency:              d.Currency,
		AcquisitionDate:       biztime.FormatDate(d.AcquisitionDate),
		WarrantyExpiry:        utils.FormatOptionalDate(d.WarrantyExpiry),
		DepreciationRate:      d.DepreciationRate,
		LocationID:            d.LocationID,
		AssignedToID:          d.AssignedToID,
		SerialNumber:          d.SerialNumber,
		LastMaintenanceDate:   utils.FormatOptionalDate(d.LastMaintenanceDate),
		MaintenanceNotes:      d.MaintenanceNotes,
		CreatedBy:             a.CreatedBy(),
		CreatedAt:             a.CreatedAt(),
		UpdatedAt:             a.UpdatedAt(),
	}
}

type MovementRequest struct {
	AssetID           uint   `json:"asset_id" binding:"required"`
	MovementType      string `json:"movement_type" binding:"required,oneof=incoming outgoing transfer return assignment"`
	FromLocationID    *uint  `json:"from_location_id"`
	ToLocationID      *uint  `json:"to_location_id"`
	FromUserID        *uint  `json:"from_user_id"`
	ToUserID          *uint  `json:"to_user_id"`
	Quantity          int    `json:"quantity" binding:"gte=0"`
	Notes             string `json:"notes"`
	ReferenceDocument string `json:"reference_document" binding:"max=100"`
	MovementDate      string `json:"movement_date"`
}

type MovementResponse struct {
	ID                uint      `json:"id"`
	AssetID           uint      `json:"asset_id"`
	MovementType      string    `json:"movement_type"`
	FromLocationID    *uint     `json:"from_location_id"`
	ToLocationID      *uint     `json:"to_location_id"`
	FromUserID        *uint     `json:"from_user_id"`
	ToUserID          *uint     `json:"to_user_id"`
	Quantity          int       `json:"quantity"`
	Notes             string    `json:"notes"`
	ReferenceDocument string    `json:"reference_document"`
	MovementDate      string    `json:"movement_date"`
	RecordedBy        *uint     `json:"recorded_by"`
	CreatedAt         time.Time `json:"created_at"`
}

func movementDetails(r MovementRequest) (assets.MovementDetails, error) {
	date, err := utils.ParseDateField("movement_date", r.MovementDate)
	if err != nil {
		return assets.MovementDetails{}, err
	}
	return assets.MovementDetails{
		AssetID:           r.AssetID,
		MovementType:      vo.MovementType(r.MovementType),
		FromLocationID:    r.FromLocationID,
		ToLocationID:      r.ToLocationID,
		FromUserID:        r.FromUserID,
		ToUserID:          r.ToUserID,
		Quantity:          r.Quantity,
		Notes:             r.Notes,
		ReferenceDocument: r.ReferenceDocument,
		MovementDate:      date,
	}, nil
}

func movementRequest(d assets.MovementDetails) MovementRequest {
	return MovementRequest{
		AssetID:           d.AssetID,
		MovementType:      d.MovementType.String(),
		FromLocationID:    d.FromLocationID,
		ToLocationID:      d.ToLocationID,
		FromUserID:        d.FromUserID,
		ToUserID:          d.ToUserID,
		Quantity:          d.Quantity,
		Notes:             d.Notes,
		ReferenceDocument: d.ReferenceDocument,
		MovementDate:      biztime.FormatDate(d.MovementDate),
	}
}

func toMovementResponse(m *assets.AssetMovement) any {
	d := m.Details()
	return MovementResponse{
		ID:                m.ID(),
		AssetID:           d.AssetID,
		MovementType:      d.MovementType.String(),
		FromLocationID:    d.FromLocationID,
		ToLocationID:      d.ToLocationID,
		FromUserID:        d.FromUserID,
		ToUserID:          d.ToUserID,
		Quantity:          d.Quantity,
		Notes:             d.Notes,
		ReferenceDocument: d.ReferenceDocument,
		MovementDate:      biztime.FormatDate(d.MovementDate),
		RecordedBy:        m.RecordedBy(),
		CreatedAt:         m.CreatedAt(),
	}
}

type ItemRequest struct {
	ItemCode          string `json:"item_code" binding:"required,max=50"`
	Name              string `json:"name" binding:"required,max=200"`
	Description       string `json:"description"`
	CategoryID        uint   `json:"category_id" binding:"required"`
	QuantityOnHand    int    `json:"quantity_on_hand" binding:"gte=0"`
	ReorderLevel      *int   `json:"reorder_level" binding:"omitempty,gte=0"`
	ReorderQuantity   *int   `json:"reorder_quantity" binding:"omitempty,gte=0"`
	Unit              string `json:"unit" binding:"omitempty,oneof=pieces boxes reams liters kg meters sets rolls other"`
	UnitCostCents     int64  `json:"unit_cost_cents" binding:"gte=0"`
	Currency          string `json:"currency" binding:"omitempty,len=3"`
	StorageLocationID *uint  `json:"storage_location_id"`
	Supplier          string `json:"supplier" binding:"max=200"`
	IsActive          *bool  `json:"is_active"`
}

type ItemResponse struct {
	ID                uint       `json:"id"`
	ItemCode          string     `json:"item_code"`
	Name              string     `json:"name"`
	Description       string     `json:"description"`
	CategoryID        uint       `json:"category_id"`
	QuantityOnHand    int        `json:"quantity_on_hand"`
	ReorderLevel      int        `json:"reorder_level"`
	ReorderQuantity   int        `json:"reorder_quantity"`
	NeedsReorder      bool       `json:"needs_reorder"`
	Unit              string     `json:"unit"`
	UnitCostCents     int64      `json:"unit_cost_cents"`
	TotalValueCents   int64      `json:"total_value_cents"`
	Currency          string     `json:"currency"`
	StorageLocationID *uint      `json:"storage_location_id"`
	Supplier          string     `json:"supplier"`
	IsActive          bool       `json:"is_active"`
	LastRestocked     *time.Time `json:"last_restocked"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// itemDetails ignores quantity_on_hand, which only the opening balance and
// stock transactions set.
func itemDetails(r ItemRequest) (assets.ItemDetails, error) {
	level, qty := assets.DefaultReorderLevel, assets.DefaultReorderQuantity
	if r.ReorderLevel != nil {
		level = *r.ReorderLevel
	}
	if r.ReorderQuantity != nil {
		qty = *r.ReorderQuantity
	}
	return assets.ItemDetails{
		ItemCode:          r.ItemCode,
		Name:              r.Name,
		Description:       r.Description,
		CategoryID:        r.CategoryID,
		ReorderLevel:      level,
		ReorderQuantity:   qty,
		Unit:              vo.InventoryUnit(r.Unit),
		UnitCostCents:     r.UnitCostCents,
		Currency:          r.Currency,
		StorageLocationID: r.StorageLocationID,
		Supplier:          r.Supplier,
		IsActive:          r.IsActive == nil || *r.IsActive,
	}, nil
}

func itemRequest(d assets.ItemDetails) ItemRequest {
	level, qty, active := d.ReorderLevel, d.ReorderQuantity, d.IsActive
	return ItemRequest{
		ItemCode:          d.ItemCode,
		Name:              d.Name,
		Description:       d.Description,
		CategoryID:        d.CategoryID,
		ReorderLevel:      &level,
		ReorderQuantity:   &qty,
		Unit:              d.Unit.String(),
		UnitCostCents:     d.UnitCostCents,
		Currency:          d.Currency,
		StorageLocationID: d.StorageLocationID,
		Supplier:          d.Supplier,
		IsActive:          &active,
	}
}

func toItemResponse(i *assets.InventoryItem) any {
	d := i.Details()
	return ItemResponse{
		ID:                i.ID(),
		ItemCode:          d.ItemCode,
		Name:              d.Name,
		Description:       d.Description,
		CategoryID:        d.CategoryID,
		QuantityOnHand:    i.QuantityOnHand(),
		ReorderLevel:      d.ReorderLevel,
		ReorderQuantity:   d.ReorderQuantity,
		NeedsReorder:      i.NeedsReorder(),
		Unit:              d.Unit.String(),
		UnitCostCents:     d.UnitCostCents,
		TotalValueCents:   i.TotalValueCents(),
		Currency:          d.Currency,
		StorageLocationID: d.StorageLocationID,
		Supplier:          d.Supplier,
		IsActive:          d.IsActive,
		LastRestocked:     i.LastRestocked(),
		CreatedAt:         i.CreatedAt(),
		UpdatedAt:         i.UpdatedAt(),
	}
}

type TransactionRequest struct {
	ItemID          uint   `json:"item_id" binding:"required"`
	TransactionType string `json:"transaction_type" binding:"required,oneof=inbound outbound adjustment damage return"`
	Quantity        int    `json:"quantity" binding:"gte=0"`
	Reference       string `json:"reference" binding:"max=100"`
	Notes           string `json:"notes"`
}

type TransactionResponse struct {
	ID              uint      `json:"id"`
	ItemID          uint      `json:"item_id"`
	TransactionType string    `json:"transaction_type"`
	Quantity        int       `json:"quantity"`
	Reference       string    `json:"reference"`
	Notes           string    `json:"notes"`
	IssuedBy        *uint     `json:"issued_by"`
	CreatedAt       time.Time `json:"created_at"`
}

func toTransactionResponse(t *assets.InventoryTransaction) TransactionResponse {
	d := t.Details()
	return TransactionResponse{
		ID:              t.ID(),
		ItemID:          d.ItemID,
		TransactionType: d.TransactionType.String(),
		Quantity:        d.Quantity,
		Reference:       d.Reference,
		Notes:           d.Notes,
		IssuedBy:        t.IssuedBy(),
		CreatedAt:       t.CreatedAt(),
	}
}

type RecordRequest struct {
	AssetID       uint   `json:"asset_id" binding:"required"`
	Title         string `json:"title" binding:"required,max=255"`
	Description   string `json:"description" binding:"required"`
	ScheduledDate string `json:"scheduled_date"`
	CostCents     *int64 `json:"cost_cents" binding:"omitempty,gte=0"`
	Currency      string `json:"currency" binding:"omitempty,len=3"`
	AssignedToID  *uint  `json:"assigned_to_id"`
	Notes         string `json:"notes"`
}

type RecordResponse struct {
	ID             uint      `json:"id"`
	AssetID        uint      `json:"asset_id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	ScheduledDate  string    `json:"scheduled_date"`
	CompletionDate *string   `json:"completion_date"`
	CostCents      *int64    `json:"cost_cents"`
	Currency       string    `json:"currency"`
	Status         string    `json:"status"`
	AssignedToID   *uint     `json:"assigned_to_id"`
	Notes          string    `json:"notes"`
	CreatedBy      *uint     `json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func recordDetails(r RecordRequest) (assets.RecordDetails, error) {
	scheduled, err := utils.ParseDateField("scheduled_date", r.ScheduledDate)
	if err != nil {
		return assets.RecordDetails{}, err
	}
	return assets.RecordDetails{
		AssetID:       r.AssetID,
		Title:         r.Title,
		Description:   r.Description,
		ScheduledDate: scheduled,
		CostCents:     r.CostCents,
		Currency:      r.Currency,
		AssignedToID:  r.AssignedToID,
		Notes:         r.Notes,
	}, nil
}

func recordRequest(d assets.RecordDetails) RecordRequest {
	return RecordRequest{
		AssetID:       d.AssetID,
		Title:         d.Title,
		Description:   d.Description,
		ScheduledDate: biztime.FormatDate(d.ScheduledDate),
		CostCents:     d.CostCents,
		Currency:      d.Currency,
		AssignedToID:  d.AssignedToID,
		Notes:         d.Notes,
	}
}

func toRecordResponse(r *assets.MaintenanceRecord) any {
	d := r.Details()
	return RecordResponse{
		ID:             r.ID(),
		AssetID:        d.AssetID,
		Title:          d.Title,
		Description:    d.Description,
		ScheduledDate:  biztime.FormatDate(d.ScheduledDate),
		CompletionDate: utils.FormatOptionalDate(r.CompletionDate()),
		CostCents:      d.CostCents,
		Currency:       d.Currency,
		Status:         r.Status().String(),
		AssignedToID:   d.AssignedToID,
		Notes:          d.Notes,
		CreatedBy:      r.CreatedBy(),
		CreatedAt:      r.CreatedAt(),
		UpdatedAt:      r.UpdatedAt(),
	}
}
