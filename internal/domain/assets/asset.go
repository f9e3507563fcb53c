package assets

import (
	"fmt"
	"math"
	"strings"
	"time"

	vo "campus/internal/domain/assets/valueobjects"
	"campus/internal/domain/shared"
)

const (
	DefaultCurrency         = "USD"
	DefaultDepreciationRate = 10.0
)

type AssetDetails struct {
	AssetTag            string
	Name                string
	Description         string
	CategoryID          uint
	PurchasePriceCents  int64
	CurrentValueCents   *int64
	Currency            string
	AcquisitionDate     time.Time
	WarrantyExpiry      *time.Time
	DepreciationRate    float64
	LocationID          *uint
	AssignedToID        *uint
	SerialNumber        string
	Condition           vo.AssetCondition
	LastMaintenanceDate *time.Time
	MaintenanceNotes    string
}

func (a AssetDetails) normalize() (AssetDetails, error) {
	a.AssetTag = strings.TrimSpace(a.AssetTag)
	a.Name = strings.TrimSpace(a.Name)
	if err := shared.FirstError(
		shared.Required("asset_tag", a.AssetTag),
		shared.MaxLength("asset_tag", a.AssetTag, 50),
		shared.Required("name", a.Name),
		shared.MaxLength("name", a.Name, 200),
		shared.MaxLength("serial_number", a.SerialNumber, 100),
	); err != nil {
		return a, err
	}
	if a.CategoryID == 0 {
		return a, shared.NewFieldError("category_id", "category_id is required")
	}
	if a.PurchasePriceCents < 0 {
		return a, shared.NewFieldError("purchase_price_cents", "purchase_price_cents must not be negative")
	}
	if a.AcquisitionDate.IsZero() {
		return a, shared.NewFieldError("acquisition_date", "acquisition_date is required")
	}
	if a.DepreciationRate < 0 || a.DepreciationRate > 100 {
		return a, shared.NewFieldError("depreciation_rate", "depreciation_rate must be between 0 and 100")
	}
	if a.Currency == "" {
		a.Currency = DefaultCurrency
	}
	a.Currency = strings.ToUpper(a.Currency)
	if len(a.Currency) != 3 {
		return a, shared.NewFieldError("currency", "currency must be a three letter code")
	}
	if a.Condition == "" {
		a.Condition = vo.ConditionGood
	}
	if !a.Condition.IsValid() {
		return a, shared.NewFieldError("condition", "invalid asset condition: %s", a.Condition)
	}
	return a, nil
}

// Asset is a tracked piece of equipment. The tag is unique.
type Asset struct {
	shared.Base
	details   AssetDetails
	status    vo.AssetStatus
	createdBy *uint
}

func NewAsset(details AssetDetails, createdBy *uint) (*Asset, error) {
	d, err := details.normalize()
	if err != nil {
		return nil, err
	}
	return &Asset{
		Base:      shared.NewBase(),
		details:   d,
		status:    vo.AssetStatusActive,
		createdBy: createdBy,
	}, nil
}

func ReconstructAsset(id uint, details AssetDetails, status vo.AssetStatus, createdBy *uint, createdAt, updatedAt time.Time) (*Asset, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid asset status: %s", status)
	}
	return &Asset{
		Base:      shared.ReconstructBase(id, createdAt, updatedAt),
		details:   details,
		status:    status,
		createdBy: createdBy,
	}, nil
}

func (a *Asset) Details() AssetDetails  { return a.details }
func (a *Asset) Status() vo.AssetStatus { return a.status }
func (a *Asset) CreatedBy() *uint       { return a.createdBy }

func (a *Asset) Update(details AssetDetails) error {
	normalized, err := details.normalize()
	if err != nil {
		return err
	}
	a.details = normalized
	a.Touch()
	return nil
}

func (a *Asset) ChangeStatus(status vo.AssetStatus) error {
	if !status.IsValid() {
		return shared.NewFieldError("status", "invalid asset status: %s", status)
	}
	a.status = status
	a.Touch()
	return nil
}

// MoveTo relocates the asset, as a transfer movement does.
func (a *Asset) MoveTo(locationID uint) {
	a.details.LocationID = &locationID
	a.Touch()
}

// YearsInService is the fractional age of the asset on the given day.
func (a *Asset) YearsInService(today time.Time) float64 {
	days := today.Sub(a.details.AcquisitionDate).Hours() / 24
	if days <= 0 {
		return 0
	}
	return days / 365.25
}

// DepreciatedValueCents applies declining-balance depreciation at the
// configured yearly rate, floored at zero and rounded to the cent.
func (a *Asset) DepreciatedValueCents(today time.Time) int64 {
	factor := math.Pow((100-a.details.DepreciationRate)/100, a.YearsInService(today))
	value := math.Round(float64(a.details.PurchasePriceCents) * factor)
	if value < 0 {
		return 0
	}
	return int64(value)
}
