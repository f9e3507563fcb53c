package assets

import (
	"fmt"
	"strings"
	"time"

	vo "campus/internal/domain/assets/valueobjects"
	"campus/internal/domain/shared"
	"campus/internal/shared/biztime"
)

const (
	DefaultReorderLevel    = 10
	DefaultReorderQuantity = 50
)

type ItemDetails struct {
	ItemCode          string
	Name              string
	Description       string
	CategoryID        uint
	ReorderLevel      int
	ReorderQuantity   int
	Unit              vo.InventoryUnit
	UnitCostCents     int64
	Currency          string
	StorageLocationID *uint
	Supplier          string
	IsActive          bool
}

func (i ItemDetails) normalize() (ItemDetails, error) {
	i.ItemCode = strings.TrimSpace(i.ItemCode)
	i.Name = strings.TrimSpace(i.Name)
	if err := shared.FirstError(
		shared.Required("item_code", i.ItemCode),
		shared.MaxLength("item_code", i.ItemCode, 50),
		shared.Required("name", i.Name),
		shared.MaxLength("name", i.Name, 200),
	); err != nil {
		return i, err
	}
	if i.CategoryID == 0 {
		return i, shared.NewFieldError("category_id", "category_id is required")
	}
	if i.Unit == "" {
		i.Unit = vo.UnitPieces
	}
	if !i.Unit.IsValid() {
		return i, shared.NewFieldError("unit", "invalid unit: %s", i.Unit)
	}
	if i.ReorderLevel < 0 || i.ReorderQuantity < 0 {
		return i, shared.NewFieldError("reorder_level", "reorder values must not be negative")
	}
	if i.UnitCostCents < 0 {
		return i, shared.NewFieldError("unit_cost_cents", "unit_cost_cents must not be negative")
	}
	if i.Currency == "" {
		i.Currency = DefaultCurrency
	}
	i.Currency = strings.ToUpper(i.Currency)
	return i, nil
}

// InventoryItem is a consumable stock line. Quantity changes only through
// stock transactions.
type InventoryItem struct {
	shared.Base
	details        ItemDetails
	quantityOnHand int
	lastRestocked  *time.Time
}

func NewInventoryItem(details ItemDetails, openingQuantity int) (*InventoryItem, error) {
	d, err := details.normalize()
	if err != nil {
		return nil, err
	}
	if openingQuantity < 0 {
		return nil, shared.NewFieldError("quantity_on_hand", "quantity_on_hand must not be negative")
	}
	return &InventoryItem{Base: shared.NewBase(), details: d, quantityOnHand: openingQuantity}, nil
}

func ReconstructInventoryItem(id uint, details ItemDetails, quantityOnHand int, lastRestocked *time.Time, createdAt, updatedAt time.Time) *InventoryItem {
	return &InventoryItem{
		Base:           shared.ReconstructBase(id, createdAt, updatedAt),
		details:        details,
		quantityOnHand: quantityOnHand,
		lastRestocked:  lastRestocked,
	}
}

func (i *InventoryItem) Details() ItemDetails      { return i.details }
func (i *InventoryItem) QuantityOnHand() int       { return i.quantityOnHand }
func (i *InventoryItem) LastRestocked() *time.Time { return i.lastRestocked }

func (i *InventoryItem) TotalValueCents() int64 {
	return int64(i.quantityOnHand) * i.details.UnitCostCents
}

func (i *InventoryItem) NeedsReorder() bool {
	return i.quantityOnHand <= i.details.ReorderLevel
}

func (i *InventoryItem) Update(details ItemDetails) error {
	normalized, err := details.normalize()
	if err != nil {
		return err
	}
	i.details = normalized
	i.Touch()
	return nil
}

// Apply books a stock transaction against the quantity on hand. Inbound and
// return add stock, outbound and damage remove it, adjustment sets it.
func (i *InventoryItem) Apply(t *InventoryTransaction) error {
	qty := t.details.Quantity
	switch t.details.TransactionType {
	case vo.TransactionInbound:
		i.quantityOnHand += qty
		now := biztime.NowUTC()
		i.lastRestocked = &now
	case vo.TransactionReturn:
		i.quantityOnHand += qty
	case vo.TransactionOutbound, vo.TransactionDamage:
		if qty > i.quantityOnHand {
			return shared.NewFieldError("quantity", "insufficient stock: %d on hand, %d requested", i.quantityOnHand, qty)
		}
		i.quantityOnHand -= qty
	case vo.TransactionAdjustment:
		i.quantityOnHand = qty
	default:
		return fmt.Errorf("invalid transaction type: %s", t.details.TransactionType)
	}
	i.Touch()
	return nil
}

type TransactionDetails struct {
	ItemID          uint
	TransactionType vo.TransactionType
	Quantity        int
	Reference       string
	Notes           string
}

func (t TransactionDetails) validate() error {
	if t.ItemID == 0 {
		return shared.NewFieldError("item_id", "item_id is required")
	}
	if !t.TransactionType.IsValid() {
		return shared.NewFieldError("transaction_type", "invalid transaction type: %s", t.TransactionType)
	}
	if t.Quantity < 0 || (t.Quantity == 0 && t.TransactionType != vo.TransactionAdjustment) {
		return shared.NewFieldError("quantity", "quantity must be greater than 0")
	}
	return shared.MaxLength("reference", t.Reference, 100)
}

// InventoryTransaction is an immutable stock ledger entry.
type InventoryTransaction struct {
	shared.Base
	details  TransactionDetails
	issuedBy *uint
}

func NewInventoryTransaction(details TransactionDetails, issuedBy *uint) (*InventoryTransaction, error) {
	if err := details.validate(); err != nil {
		return nil, err
	}
	return &InventoryTransaction{Base: shared.NewBase(), details: details, issuedBy: issuedBy}, nil
}

func ReconstructInventoryTransaction(id uint, details TransactionDetails, issuedBy *uint, createdAt time.Time) *InventoryTransaction {
	return &InventoryTransaction{
		Base:     shared.ReconstructBase(id, createdAt, createdAt),
		details:  details,
		issuedBy: issuedBy,
	}
}

func (t *InventoryTransaction) Details() TransactionDetails { return t.details }
func (t *InventoryTransaction) IssuedBy() *uint             { return t.issuedBy }
