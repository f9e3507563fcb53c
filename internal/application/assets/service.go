// Package assets wires fixed assets, their movements and the consumable
// inventory.
package assets

import (
	"context"
	"strings"

	"campus/internal/application/common"
	"campus/internal/application/common/crud"
	"campus/internal/application/common/lifecycle"
	"campus/internal/domain/assets"
	vo "campus/internal/domain/assets/valueobjects"
	"campus/internal/domain/shared"
	"campus/internal/shared/biztime"
	"campus/internal/shared/db"
	"campus/internal/shared/errors"
	"campus/internal/shared/logger"
)

const (
	EntityAsset  = "asset"
	EntityRecord = "maintenance_record"
)

type (
	CategoryService = crud.Service[*assets.AssetCategory, assets.CategoryDetails, assets.CategoryFilter]
	LocationService = crud.Service[*assets.AssetLocation, assets.LocationDetails, assets.LocationFilter]
	AssetService    = crud.Service[*assets.Asset, assets.AssetDetails, assets.AssetFilter]
	MovementService = crud.Service[*assets.AssetMovement, assets.MovementDetails, assets.MovementFilter]
	RecordService   = crud.Service[*assets.MaintenanceRecord, assets.RecordDetails, assets.RecordFilter]
	ItemService     = crud.Service[*assets.InventoryItem, assets.ItemDetails, assets.ItemFilter]
)

type Repositories struct {
	Categories   assets.AssetCategoryRepository
	Locations    assets.AssetLocationRepository
	Assets       assets.AssetRepository
	Movements    assets.AssetMovementRepository
	Records      assets.MaintenanceRecordRepository
	Items        assets.InventoryItemRepository
	Transactions assets.InventoryTransactionRepository
}

type Service struct {
	Categories   *CategoryService
	Locations    *LocationService
	Assets       *AssetService
	Movements    *MovementService
	Records      *RecordService
	Items        *ItemService
	AssetStatus  *lifecycle.ChangeStatusUseCase[*assets.Asset]
	RecordStatus *lifecycle.ChangeStatusUseCase[*assets.MaintenanceRecord]

	repos  Repositories
	tx     db.Transactor
	logger logger.Interface
}

func NewService(repos Repositories, tx db.Transactor, journal *lifecycle.Journal, log logger.Interface) *Service {
	log = log.Named("assets")
	s := &Service{repos: repos, tx: tx, logger: log}

	s.Categories = crud.NewService[*assets.AssetCategory, assets.CategoryDetails, assets.CategoryFilter](
		"asset category", repos.Categories,
		func(d assets.CategoryDetails, _ uint) (*assets.AssetCategory, error) { return assets.NewAssetCategory(d) },
		tx, log)
	s.Locations = crud.NewService[*assets.AssetLocation, assets.LocationDetails, assets.LocationFilter](
		"asset location", repos.Locations,
		func(d assets.LocationDetails, _ uint) (*assets.AssetLocation, error) { return assets.NewAssetLocation(d) },
		tx, log)
	s.Assets = crud.NewService[*assets.Asset, assets.AssetDetails, assets.AssetFilter](
		EntityAsset, repos.Assets,
		func(d assets.AssetDetails, actorID uint) (*assets.Asset, error) {
			return assets.NewAsset(d, common.ActorRef(actorID))
		},
		tx, log).WithPrepare(s.checkAssetTag)
	s.Movements = crud.NewService[*assets.AssetMovement, assets.MovementDetails, assets.MovementFilter](
		"asset movement", repos.Movements,
		func(d assets.MovementDetails, actorID uint) (*assets.AssetMovement, error) {
			return assets.NewAssetMovement(d, common.ActorRef(actorID))
		},
		tx, log)
	s.Records = crud.NewService[*assets.MaintenanceRecord, assets.RecordDetails, assets.RecordFilter](
		EntityRecord, repos.Records,
		func(d assets.RecordDetails, actorID uint) (*assets.MaintenanceRecord, error) {
			return assets.NewMaintenanceRecord(d, common.ActorRef(actorID))
		},
		tx, log).WithPrepare(s.checkRecordAsset)
	s.Items = crud.NewService[*assets.InventoryItem, assets.ItemDetails, assets.ItemFilter](
		"inventory item", repos.Items,
		func(d assets.ItemDetails, _ uint) (*assets.InventoryItem, error) { return assets.NewInventoryItem(d, 0) },
		tx, log).WithPrepare(s.checkItemCode)

	s.AssetStatus = lifecycle.NewChangeStatusUseCase(AssetLifecycle(), repos.Assets, tx, journal, log)
	s.RecordStatus = lifecycle.NewChangeStatusUseCase(RecordLifecycle(), repos.Records, tx, journal, log)
	return s
}

func AssetLifecycle() lifecycle.Spec[*assets.Asset] {
	return lifecycle.Spec[*assets.Asset]{
		EntityType: EntityAsset,
		Valid:      vo.IsValidAssetStatus,
		Current:    func(a *assets.Asset) string { return a.Status().String() },
		Apply: func(a *assets.Asset, status, _ string, _ uint) error {
			return a.ChangeStatus(vo.AssetStatus(status))
		},
	}
}

// RecordLifecycle stamps the completion date on the business calendar day.
func RecordLifecycle() lifecycle.Spec[*assets.MaintenanceRecord] {
	return lifecycle.Spec[*assets.MaintenanceRecord]{
		EntityType: EntityRecord,
		Valid:      vo.IsValidRecordStatus,
		Current:    func(r *assets.MaintenanceRecord) string { return r.Status().String() },
		Apply: func(r *assets.MaintenanceRecord, status, _ string, _ uint) error {
			return r.ChangeStatus(vo.RecordStatus(status), biztime.Today())
		},
	}
}

func (s *Service) checkRecordAsset(ctx context.Context, _ uint, d assets.RecordDetails) (assets.RecordDetails, error) {
	if d.AssetID == 0 {
		return d, nil
	}
	if _, err := s.repos.Assets.GetByID(ctx, d.AssetID); err != nil {
		if errors.IsNotFoundError(err) {
			return d, shared.NewFieldError("asset_id", "asset not found")
		}
		return d, err
	}
	return d, nil
}

func (s *Service) checkAssetTag(ctx context.Context, id uint, d assets.AssetDetails) (assets.AssetDetails, error) {
	tag := strings.TrimSpace(d.AssetTag)
	if tag == "" {
		return d, nil
	}
	exists, err := s.repos.Assets.ExistsByTag(ctx, tag, id)
	if err != nil {
		return d, common.PersistenceError(err, "failed to check asset tag")
	}
	if exists {
		return d, shared.NewFieldError("asset_tag", "asset with this asset_tag already exists")
	}
	return d, nil
}

func (s *Service) checkItemCode(ctx context.Context, id uint, d assets.ItemDetails) (assets.ItemDetails, error) {
	code := strings.TrimSpace(d.ItemCode)
	if code == "" {
		return d, nil
	}
	exists, err := s.repos.Items.ExistsByCode(ctx, code, id)
	if err != nil {
		return d, common.PersistenceError(err, "failed to check item code")
	}
	if exists {
		return d, shared.NewFieldError("item_code", "inventory item with this item_code already exists")
	}
	return d, nil
}

// CreateItem registers an inventory item with its opening stock.
func (s *Service) CreateItem(ctx context.Context, details assets.ItemDetails, openingQuantity int) (*assets.InventoryItem, error) {
	var item *assets.InventoryItem
	err := s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		d, err := s.checkItemCode(ctx, 0, details)
		if err != nil {
			return common.DomainError(err)
		}
		i, err := assets.NewInventoryItem(d, openingQuantity)
		if err != nil {
			return common.DomainError(err)
		}
		if err := s.repos.Items.Create(ctx, i); err != nil {
			return err
		}
		item = i
		return nil
	})
	if err != nil {
		s.logger.Warnw("failed to create inventory item", "item_code", details.ItemCode, "error", err)
		return nil, common.PersistenceError(err, "failed to create inventory item")
	}
	s.logger.Infow("inventory item created", "id", item.ID(), "item_code", item.Details().ItemCode)
	return item, nil
}

// RecordMovement logs a movement. A transfer with a destination location
// also relocates the asset.
func (s *Service) RecordMovement(ctx context.Context, details assets.MovementDetails, actorID uint) (*assets.AssetMovement, error) {
	var movement *assets.AssetMovement
	err := s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		asset, err := s.repos.Assets.GetByID(ctx, details.AssetID)
		if err != nil {
			return err
		}
		m, err := assets.NewAssetMovement(details, common.ActorRef(actorID))
		if err != nil {
			return common.DomainError(err)
		}
		if err := s.repos.Movements.Create(ctx, m); err != nil {
			return err
		}
		if locationID, ok := m.Relocates(); ok {
			asset.MoveTo(locationID)
			if err := s.repos.Assets.Update(ctx, asset); err != nil {
				return err
			}
		}
		movement = m
		return nil
	})
	if err != nil {
		s.logger.Warnw("failed to record asset movement", "asset_id", details.AssetID, "error", err)
		return nil, common.PersistenceError(err, "failed to record asset movement")
	}

	s.logger.Infow("asset movement recorded",
		"asset_id", details.AssetID,
		"movement_type", details.MovementType,
		"actor_id", actorID,
	)
	return movement, nil
}

// RecordTransaction applies a stock transaction to the item's quantity in
// the same unit of work.
func (s *Service) RecordTransaction(ctx context.Context, details assets.TransactionDetails, actorID uint) (*assets.InventoryTransaction, error) {
	var txn *assets.InventoryTransaction
	err := s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		item, err := s.repos.Items.GetByID(ctx, details.ItemID)
		if err != nil {
			return err
		}
		t, err := assets.NewInventoryTransaction(details, common.ActorRef(actorID))
		if err != nil {
			return common.DomainError(err)
		}
		if err := item.Apply(t); err != nil {
			return common.DomainError(err)
		}
		if err := s.repos.Transactions.Create(ctx, t); err != nil {
			return err
		}
		if err := s.repos.Items.Update(ctx, item); err != nil {
			return err
		}
		txn = t
		return nil
	})
	if err != nil {
		s.logger.Warnw("failed to record inventory transaction", "item_id", details.ItemID, "error", err)
		return nil, common.PersistenceError(err, "failed to record inventory transaction")
	}

	s.logger.Infow("inventory transaction recorded",
		"item_id", details.ItemID,
		"transaction_type", details.TransactionType,
		"quantity", details.Quantity,
	)
	return txn, nil
}

func (s *Service) GetTransaction(ctx context.Context, id uint) (*assets.InventoryTransaction, error) {
	t, err := s.repos.Transactions.GetByID(ctx, id)
	if err != nil {
		return nil, common.PersistenceError(err, "failed to get inventory transaction")
	}
	return t, nil
}

func (s *Service) ListTransactions(ctx context.Context, filter assets.TransactionFilter) ([]*assets.InventoryTransaction, int64, error) {
	items, total, err := s.repos.Transactions.List(ctx, filter)
	if err != nil {
		return nil, 0, common.PersistenceError(err, "failed to list inventory transactions")
	}
	return items, total, nil
}
