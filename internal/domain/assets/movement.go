package assets

import (
	"time"

	vo "campus/internal/domain/assets/valueobjects"
	"campus/internal/domain/shared"
)

type MovementDetails struct {
	AssetID           uint
	MovementType      vo.MovementType
	FromLocationID    *uint
	ToLocationID      *uint
	FromUserID        *uint
	ToUserID          *uint
	Quantity          int
	Notes             string
	ReferenceDocument string
	MovementDate      time.Time
}

func (m MovementDetails) normalize() (MovementDetails, error) {
	if m.AssetID == 0 {
		return m, shared.NewFieldError("asset_id", "asset_id is required")
	}
	if !m.MovementType.IsValid() {
		return m, shared.NewFieldError("movement_type", "invalid movement type: %s", m.MovementType)
	}
	if m.Quantity == 0 {
		m.Quantity = 1
	}
	if m.Quantity < 0 {
		return m, shared.NewFieldError("quantity", "quantity must be greater than 0")
	}
	if m.MovementDate.IsZero() {
		return m, shared.NewFieldError("movement_date", "movement_date is required")
	}
	return m, shared.MaxLength("reference_document", m.ReferenceDocument, 100)
}

// AssetMovement is a ledger row describing where an asset went.
type AssetMovement struct {
	shared.Base
	details    MovementDetails
	recordedBy *uint
}

func NewAssetMovement(details MovementDetails, recordedBy *uint) (*AssetMovement, error) {
	d, err := details.normalize()
	if err != nil {
		return nil, err
	}
	return &AssetMovement{Base: shared.NewBase(), details: d, recordedBy: recordedBy}, nil
}

func ReconstructAssetMovement(id uint, details MovementDetails, recordedBy *uint, createdAt time.Time) *AssetMovement {
	return &AssetMovement{
		Base:       shared.ReconstructBase(id, createdAt, createdAt),
		details:    details,
		recordedBy: recordedBy,
	}
}

func (m *AssetMovement) Details() MovementDetails { return m.details }
func (m *AssetMovement) RecordedBy() *uint        { return m.recordedBy }

func (m *AssetMovement) Update(details MovementDetails) error {
	normalized, err := details.normalize()
	if err != nil {
		return err
	}
	m.details = normalized
	m.Touch()
	return nil
}

// Relocates reports the destination when this movement should move the
// asset itself.
func (m *AssetMovement) Relocates() (uint, bool) {
	if m.details.MovementType != vo.MovementTransfer || m.details.ToLocationID == nil {
		return 0, false
	}
	return *m.details.ToLocationID, true
}
