package assets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "campus/internal/domain/assets/valueobjects"
	"campus/internal/domain/shared"
)

func newTestAsset(t *testing.T, priceCents int64, rate float64, acquired time.Time) *Asset {
	t.Helper()
	a, err := NewAsset(AssetDetails{
		AssetTag:           "LAB-001",
		Name:               "Microscope",
		CategoryID:         1,
		PurchasePriceCents: priceCents,
		AcquisitionDate:    acquired,
		DepreciationRate:   rate,
	}, nil)
	require.NoError(t, err)
	return a
}

func TestNewAsset_Defaults(t *testing.T) {
	a := newTestAsset(t, 100000, DefaultDepreciationRate, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, vo.AssetStatusActive, a.Status())
	assert.Equal(t, vo.ConditionGood, a.Details().Condition)
	assert.Equal(t, "USD", a.Details().Currency)
}

func TestNewAsset_Validation(t *testing.T) {
	_, err := NewAsset(AssetDetails{Name: "Desk", CategoryID: 1, AcquisitionDate: time.Now()}, nil)
	fe, ok := shared.AsFieldError(err)
	require.True(t, ok)
	assert.Equal(t, "asset_tag", fe.Field)

	_, err = NewAsset(AssetDetails{AssetTag: "D-1", Name: "Desk", AcquisitionDate: time.Now()}, nil)
	fe, ok = shared.AsFieldError(err)
	require.True(t, ok)
	assert.Equal(t, "category_id", fe.Field)
}

func TestAsset_Depreciation(t *testing.T) {
	acquired := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	a := newTestAsset(t, 100000, 10, acquired)

	tests := []struct {
		name  string
		today time.Time
		want  int64
	}{
		{"same day", acquired, 100000},
		{"before acquisition", acquired.AddDate(0, 0, -10), 100000},
		{"one julian year", acquired.Add(time.Duration(365.25 * 24 * float64(time.Hour))), 90000},
		{"two julian years", acquired.Add(time.Duration(2 * 365.25 * 24 * float64(time.Hour))), 81000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.DepreciatedValueCents(tt.today))
		})
	}

	written := newTestAsset(t, 50000, 100, acquired)
	assert.Equal(t, int64(0), written.DepreciatedValueCents(acquired.AddDate(1, 0, 0)))
}

func TestAsset_ChangeStatus(t *testing.T) {
	a := newTestAsset(t, 1000, 10, time.Now())
	before := a.UpdatedAt()

	require.NoError(t, a.ChangeStatus(vo.AssetStatusDisposed))
	require.NoError(t, a.ChangeStatus(vo.AssetStatusActive))
	assert.True(t, a.UpdatedAt().After(before))
	assert.Error(t, a.ChangeStatus("stolen"))
}

func TestAssetMovement_Relocates(t *testing.T) {
	to := uint(4)
	m, err := NewAssetMovement(MovementDetails{AssetID: 1, MovementType: vo.MovementTransfer, ToLocationID: &to, MovementDate: time.Now()}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, m.Details().Quantity)

	loc, ok := m.Relocates()
	assert.True(t, ok)
	assert.Equal(t, uint(4), loc)

	m, err = NewAssetMovement(MovementDetails{AssetID: 1, MovementType: vo.MovementAssignment, ToLocationID: &to, MovementDate: time.Now()}, nil)
	require.NoError(t, err)
	_, ok = m.Relocates()
	assert.False(t, ok)
}

func TestInventoryItem_Apply(t *testing.T) {
	item, err := NewInventoryItem(ItemDetails{ItemCode: "PAP-A4", Name: "A4 paper", CategoryID: 1, ReorderLevel: 10, UnitCostCents: 450, Unit: vo.UnitReams}, 12)
	require.NoError(t, err)
	assert.False(t, item.NeedsReorder())

	tx := func(kind vo.TransactionType, qty int) *InventoryTransaction {
		tr, err := NewInventoryTransaction(TransactionDetails{ItemID: 1, TransactionType: kind, Quantity: qty}, nil)
		require.NoError(t, err)
		return tr
	}

	require.NoError(t, item.Apply(tx(vo.TransactionOutbound, 2)))
	assert.Equal(t, 10, item.QuantityOnHand())
	assert.True(t, item.NeedsReorder())

	err = item.Apply(tx(vo.TransactionDamage, 11))
	assert.Error(t, err)
	assert.Equal(t, 10, item.QuantityOnHand())

	require.NoError(t, item.Apply(tx(vo.TransactionInbound, 40)))
	assert.Equal(t, 50, item.QuantityOnHand())
	assert.NotNil(t, item.LastRestocked())

	require.NoError(t, item.Apply(tx(vo.TransactionReturn, 5)))
	require.NoError(t, item.Apply(tx(vo.TransactionAdjustment, 7)))
	assert.Equal(t, 7, item.QuantityOnHand())
	assert.Equal(t, int64(7*450), item.TotalValueCents())
}

func TestMaintenanceRecord_Lifecycle(t *testing.T) {
	scheduled := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	r, err := NewMaintenanceRecord(RecordDetails{
		AssetID:       4,
		Title:         "Annual calibration",
		Description:   "Calibrate the optics",
		ScheduledDate: scheduled,
		Currency:      "ghs",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, vo.RecordScheduled, r.Status())
	assert.Equal(t, "GHS", r.Details().Currency)
	assert.Nil(t, r.CompletionDate())

	done := scheduled.AddDate(0, 0, 3)
	require.NoError(t, r.ChangeStatus(vo.RecordCompleted, done))
	require.NotNil(t, r.CompletionDate())
	assert.Equal(t, done, *r.CompletionDate())

	// completing again keeps the first date
	require.NoError(t, r.ChangeStatus(vo.RecordCompleted, done.AddDate(0, 0, 5)))
	assert.Equal(t, done, *r.CompletionDate())

	require.NoError(t, r.ChangeStatus(vo.RecordInProgress, done))
	assert.Nil(t, r.CompletionDate())

	err = r.ChangeStatus("postponed", done)
	fe, ok := shared.AsFieldError(err)
	require.True(t, ok)
	assert.Equal(t, "status", fe.Field)
}

func TestMaintenanceRecord_Validation(t *testing.T) {
	negative := int64(-1)
	tests := []struct {
		name    string
		details RecordDetails
		field   string
	}{
		{"missing asset", RecordDetails{Title: "x", Description: "x", ScheduledDate: time.Now()}, "asset_id"},
		{"missing date", RecordDetails{AssetID: 1, Title: "x", Description: "x"}, "scheduled_date"},
		{"negative cost", RecordDetails{AssetID: 1, Title: "x", Description: "x", ScheduledDate: time.Now(), CostCents: &negative}, "cost_cents"},
		{"bad currency", RecordDetails{AssetID: 1, Title: "x", Description: "x", ScheduledDate: time.Now(), Currency: "DOLLARS"}, "currency"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMaintenanceRecord(tt.details, nil)
			fe, ok := shared.AsFieldError(err)
			require.True(t, ok)
			assert.Equal(t, tt.field, fe.Field)
		})
	}
}
