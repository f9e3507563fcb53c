package assets

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus/internal/application/common/lifecycle"
	"campus/internal/application/testutil"
	"campus/internal/domain/assets"
	vo "campus/internal/domain/assets/valueobjects"
	"campus/internal/shared/biztime"
	"campus/internal/shared/errors"
	"campus/internal/shared/logger"
)

type mockAssetRepository struct {
	*testutil.MemoryRepository[*assets.Asset, assets.AssetFilter]
}

func (m *mockAssetRepository) ExistsByTag(_ context.Context, tag string, excludeID uint) (bool, error) {
	for _, a := range m.All() {
		if a.Details().AssetTag == tag && a.ID() != excludeID {
			return true, nil
		}
	}
	return false, nil
}

type mockItemRepository struct {
	*testutil.MemoryRepository[*assets.InventoryItem, assets.ItemFilter]
}

func (m *mockItemRepository) ExistsByCode(_ context.Context, code string, excludeID uint) (bool, error) {
	for _, i := range m.All() {
		if i.Details().ItemCode == code && i.ID() != excludeID {
			return true, nil
		}
	}
	return false, nil
}

type fixture struct {
	svc          *Service
	assets       *mockAssetRepository
	movements    *testutil.MemoryRepository[*assets.AssetMovement, assets.MovementFilter]
	records      *testutil.MemoryRepository[*assets.MaintenanceRecord, assets.RecordFilter]
	items        *mockItemRepository
	transactions *testutil.MemoryRepository[*assets.InventoryTransaction, assets.TransactionFilter]
	history      *testutil.MemoryHistory
}

func newFixture() *fixture {
	f := &fixture{
		assets:       &mockAssetRepository{testutil.NewMemoryRepository[*assets.Asset, assets.AssetFilter]()},
		movements:    testutil.NewMemoryRepository[*assets.AssetMovement, assets.MovementFilter](),
		records:      testutil.NewMemoryRepository[*assets.MaintenanceRecord, assets.RecordFilter](),
		items:        &mockItemRepository{testutil.NewMemoryRepository[*assets.InventoryItem, assets.ItemFilter]()},
		transactions: testutil.NewMemoryRepository[*assets.InventoryTransaction, assets.TransactionFilter](),
		history:      &testutil.MemoryHistory{},
	}
	log := logger.NewNopLogger()
	f.svc = NewService(Repositories{
		Categories:   testutil.NewMemoryRepository[*assets.AssetCategory, assets.CategoryFilter](),
		Locations:    testutil.NewMemoryRepository[*assets.AssetLocation, assets.LocationFilter](),
		Assets:       f.assets,
		Movements:    f.movements,
		Records:      f.records,
		Items:        f.items,
		Transactions: f.transactions,
	}, &testutil.Tx{}, lifecycle.NewJournal(f.history, nil, log), log)
	return f
}

func assetDetails(tag string) assets.AssetDetails {
	return assets.AssetDetails{
		AssetTag:           tag,
		Name:               "Projector",
		CategoryID:         1,
		PurchasePriceCents: 120000,
		AcquisitionDate:    time.Date(2022, 1, 10, 0, 0, 0, 0, time.UTC),
	}
}

func itemDetails(code string) assets.ItemDetails {
	return assets.ItemDetails{ItemCode: code, Name: "A4 paper", CategoryID: 1, Unit: vo.UnitReams, ReorderLevel: 10}
}

func uintPtr(v uint) *uint { return &v }

func TestCreateAsset_DuplicateTag(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	created, err := f.svc.Assets.Create(ctx, assetDetails("AST-001"), 7)
	require.NoError(t, err)
	require.NotNil(t, created.CreatedBy())
	assert.Equal(t, uint(7), *created.CreatedBy())
	assert.Equal(t, vo.AssetStatusActive, created.Status())

	_, err = f.svc.Assets.Create(ctx, assetDetails(" AST-001 "), 7)
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Contains(t, appErr.Fields, "asset_tag")
	assert.Equal(t, 1, f.assets.Len())

	// Updating an asset keeps its own tag.
	_, err = f.svc.Assets.Update(ctx, created.ID(), assetDetails("AST-001"))
	assert.NoError(t, err)
}

func TestChangeAssetStatus_RecordsHistory(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	a, err := f.svc.Assets.Create(ctx, assetDetails("AST-002"), 0)
	require.NoError(t, err)
	assert.Nil(t, a.CreatedBy())

	changed, err := f.svc.AssetStatus.Execute(ctx, lifecycle.ChangeStatusCommand{
		ID: a.ID(), Status: "maintenance", Note: "lamp replacement", ActorID: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, vo.AssetStatusMaintenance, changed.Status())

	require.Len(t, f.history.Changes, 1)
	c := f.history.Changes[0]
	assert.Equal(t, EntityAsset, c.EntityType())
	assert.Equal(t, "active", c.OldStatus())
	assert.Equal(t, "maintenance", c.NewStatus())

	_, err = f.svc.AssetStatus.Execute(ctx, lifecycle.ChangeStatusCommand{ID: a.ID(), Status: "stolen"})
	require.Error(t, err)
	assert.Equal(t, lifecycle.InvalidStatusMessage, errors.GetAppError(err).Fields["status"])
}

func TestRecordMovement_TransferRelocatesAsset(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	a, err := f.svc.Assets.Create(ctx, assetDetails("AST-003"), 0)
	require.NoError(t, err)

	m, err := f.svc.RecordMovement(ctx, assets.MovementDetails{
		AssetID:      a.ID(),
		MovementType: vo.MovementTransfer,
		ToLocationID: uintPtr(4),
		MovementDate: time.Now(),
	}, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, m.Details().Quantity)
	require.NotNil(t, m.RecordedBy())

	moved, err := f.assets.GetByID(ctx, a.ID())
	require.NoError(t, err)
	require.NotNil(t, moved.Details().LocationID)
	assert.Equal(t, uint(4), *moved.Details().LocationID)
}

func TestRecordMovement_AssignmentKeepsLocation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	a, err := f.svc.Assets.Create(ctx, assetDetails("AST-004"), 0)
	require.NoError(t, err)
	updates := f.assets.Updates

	_, err = f.svc.RecordMovement(ctx, assets.MovementDetails{
		AssetID:      a.ID(),
		MovementType: vo.MovementAssignment,
		ToLocationID: uintPtr(4),
		ToUserID:     uintPtr(9),
		MovementDate: time.Now(),
	}, 2)
	require.NoError(t, err)
	assert.Equal(t, updates, f.assets.Updates)
	assert.Nil(t, a.Details().LocationID)
}

func TestRecordMovement_UnknownAsset(t *testing.T) {
	f := newFixture()

	_, err := f.svc.RecordMovement(context.Background(), assets.MovementDetails{
		AssetID: 42, MovementType: vo.MovementTransfer, MovementDate: time.Now(),
	}, 1)
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
	assert.Equal(t, 0, f.movements.Len())
}

func TestRecordTransaction_AdjustsStock(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	item, err := f.svc.CreateItem(ctx, itemDetails("PAP-A4"), 12)
	require.NoError(t, err)
	assert.Equal(t, 12, item.QuantityOnHand())

	_, err = f.svc.RecordTransaction(ctx, assets.TransactionDetails{
		ItemID: item.ID(), TransactionType: vo.TransactionOutbound, Quantity: 5,
	}, 1)
	require.NoError(t, err)
	assert.Equal(t, 7, item.QuantityOnHand())
	assert.True(t, item.NeedsReorder())

	_, err = f.svc.RecordTransaction(ctx, assets.TransactionDetails{
		ItemID: item.ID(), TransactionType: vo.TransactionInbound, Quantity: 50,
	}, 1)
	require.NoError(t, err)
	assert.Equal(t, 57, item.QuantityOnHand())
	assert.NotNil(t, item.LastRestocked())
	assert.Equal(t, 2, f.transactions.Len())
}

func TestRecordTransaction_InsufficientStock(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	item, err := f.svc.CreateItem(ctx, itemDetails("PAP-A3"), 3)
	require.NoError(t, err)

	_, err = f.svc.RecordTransaction(ctx, assets.TransactionDetails{
		ItemID: item.ID(), TransactionType: vo.TransactionOutbound, Quantity: 4,
	}, 1)
	require.Error(t, err)
	assert.Contains(t, errors.GetAppError(err).Fields, "quantity")
	assert.Equal(t, 3, item.QuantityOnHand())
	assert.Equal(t, 0, f.transactions.Len())
}

func TestCreateItem_DuplicateCode(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	_, err := f.svc.CreateItem(ctx, itemDetails("INK-01"), 0)
	require.NoError(t, err)

	_, err = f.svc.CreateItem(ctx, itemDetails("INK-01"), 5)
	require.Error(t, err)
	assert.Contains(t, errors.GetAppError(err).Fields, "item_code")

	_, err = f.svc.CreateItem(ctx, itemDetails("INK-02"), -1)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Equal(t, 1, f.items.Len())
}

func TestMaintenanceRecord_CreateAndComplete(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	restore := biztime.SetClock(func() time.Time { return time.Date(2026, 3, 5, 10, 30, 0, 0, time.UTC) })
	defer restore()

	a, err := f.svc.Assets.Create(ctx, assetDetails("AST-010"), 0)
	require.NoError(t, err)

	_, err = f.svc.Records.Create(ctx, assets.RecordDetails{
		AssetID: 404, Title: "Service", Description: "x", ScheduledDate: time.Now(),
	}, 1)
	require.Error(t, err)
	assert.Contains(t, errors.GetAppError(err).Fields, "asset_id")
	assert.Equal(t, 0, f.records.Len())

	r, err := f.svc.Records.Create(ctx, assets.RecordDetails{
		AssetID: a.ID(), Title: "Lamp service", Description: "Replace the lamp", ScheduledDate: time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC),
	}, 5)
	require.NoError(t, err)
	require.NotNil(t, r.CreatedBy())
	assert.Equal(t, uint(5), *r.CreatedBy())
	assert.Equal(t, vo.RecordScheduled, r.Status())

	done, err := f.svc.RecordStatus.Execute(ctx, lifecycle.ChangeStatusCommand{ID: r.ID(), Status: "completed", ActorID: 5})
	require.NoError(t, err)
	require.NotNil(t, done.CompletionDate())
	assert.Equal(t, biztime.Today(), *done.CompletionDate())

	require.Len(t, f.history.Changes, 1)
	assert.Equal(t, EntityRecord, f.history.Changes[0].EntityType())
	assert.Equal(t, "scheduled", f.history.Changes[0].OldStatus())

	_, err = f.svc.RecordStatus.Execute(ctx, lifecycle.ChangeStatusCommand{ID: r.ID(), Status: "postponed"})
	require.Error(t, err)
	assert.Equal(t, lifecycle.InvalidStatusMessage, errors.GetAppError(err).Fields["status"])
}
