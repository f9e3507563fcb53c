// Package assets serves the fixed asset and inventory admin endpoints.
package assets

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	app "campus/internal/application/assets"
	"campus/internal/domain/assets"
	vo "campus/internal/domain/assets/valueobjects"
	"campus/internal/interfaces/http/handlers/common"
	"campus/internal/shared/logger"
	"campus/internal/shared/mapper"
	"campus/internal/shared/utils"
)

type Handler struct {
	service    *app.Service
	categories *common.RecordHandler[*assets.AssetCategory, assets.CategoryDetails, assets.CategoryFilter, CategoryRequest]
	locations  *common.RecordHandler[*assets.AssetLocation, assets.LocationDetails, assets.LocationFilter, LocationRequest]
	assets     *common.RecordHandler[*assets.Asset, assets.AssetDetails, assets.AssetFilter, AssetRequest]
	movements  *common.RecordHandler[*assets.AssetMovement, assets.MovementDetails, assets.MovementFilter, MovementRequest]
	items      *common.RecordHandler[*assets.InventoryItem, assets.ItemDetails, assets.ItemFilter, ItemRequest]
	records    *common.RecordHandler[*assets.MaintenanceRecord, assets.RecordDetails, assets.RecordFilter, RecordRequest]
	status     *common.StatusHandler[*assets.Asset]
	recordFlow *common.StatusHandler[*assets.MaintenanceRecord]
	logger     logger.Interface
}

func NewHandler(svc *app.Service, log logger.Interface) *Handler {
	h := &Handler{service: svc, logger: log}

	h.categories = common.NewRecordHandler[*assets.AssetCategory, assets.CategoryDetails, assets.CategoryFilter, CategoryRequest](
		"asset category", svc.Categories,
		common.Mapper[*assets.AssetCategory, assets.CategoryDetails, CategoryRequest]{
			ToDetails: categoryDetails, FromDetails: categoryRequest, ToResponse: toCategoryResponse,
		},
		func(c *gin.Context) assets.CategoryFilter {
			return assets.CategoryFilter{BaseFilter: utils.ParseBaseFilter(c), Search: c.Query("search")}
		}, log)

	h.locations = common.NewRecordHandler[*assets.AssetLocation, assets.LocationDetails, assets.LocationFilter, LocationRequest](
		"asset location", svc.Locations,
		common.Mapper[*assets.AssetLocation, assets.LocationDetails, LocationRequest]{
			ToDetails: locationDetails, FromDetails: locationRequest, ToResponse: toLocationResponse,
		},
		func(c *gin.Context) assets.LocationFilter {
			return assets.LocationFilter{
				BaseFilter: utils.ParseBaseFilter(c),
				ActiveOnly: mapper.Deref(utils.QueryBool(c, "active_only")),
			}
		}, log)

	h.assets = common.NewRecordHandler[*assets.Asset, assets.AssetDetails, assets.AssetFilter, AssetRequest](
		"asset", svc.Assets,
		common.Mapper[*assets.Asset, assets.AssetDetails, AssetRequest]{
			ToDetails: assetDetails, FromDetails: assetRequest, ToResponse: toAssetResponse,
		},
		func(c *gin.Context) assets.AssetFilter {
			return assets.AssetFilter{
				BaseFilter: utils.ParseBaseFilter(c),
				Status:     c.Query("status"),
				CategoryID: mapper.Deref(utils.QueryUint(c, "category_id")),
				LocationID: mapper.Deref(utils.QueryUint(c, "location_id")),
				Search:     c.Query("search"),
			}
		}, log)

	h.movements = common.NewRecordHandler[*assets.AssetMovement, assets.MovementDetails, assets.MovementFilter, MovementRequest](
		"asset movement", svc.Movements,
		common.Mapper[*assets.AssetMovement, assets.MovementDetails, MovementRequest]{
			ToDetails: movementDetails, FromDetails: movementRequest, ToResponse: toMovementResponse,
		},
		func(c *gin.Context) assets.MovementFilter {
			return assets.MovementFilter{
				BaseFilter: utils.ParseBaseFilter(c),
				AssetID:    mapper.Deref(utils.QueryUint(c, "asset_id")),
			}
		}, log).
		WithCreate(func(ctx context.Context, _ MovementRequest, d assets.MovementDetails, actorID uint) (*assets.AssetMovement, error) {
			return svc.RecordMovement(ctx, d, actorID)
		})

	h.items = common.NewRecordHandler[*assets.InventoryItem, assets.ItemDetails, assets.ItemFilter, ItemRequest](
		"inventory item", svc.Items,
		common.Mapper[*assets.InventoryItem, assets.ItemDetails, ItemRequest]{
			ToDetails: itemDetails, FromDetails: itemRequest, ToResponse: toItemResponse,
		},
		func(c *gin.Context) assets.ItemFilter {
			return assets.ItemFilter{
				BaseFilter:   utils.ParseBaseFilter(c),
				CategoryID:   mapper.Deref(utils.QueryUint(c, "category_id")),
				LocationID:   mapper.Deref(utils.QueryUint(c, "location_id")),
				NeedsReorder: mapper.Deref(utils.QueryBool(c, "needs_reorder")),
				Search:       c.Query("search"),
			}
		}, log).
		WithCreate(func(ctx context.Context, r ItemRequest, d assets.ItemDetails, _ uint) (*assets.InventoryItem, error) {
			return svc.CreateItem(ctx, d, r.QuantityOnHand)
		})

	h.records = common.NewRecordHandler[*assets.MaintenanceRecord, assets.RecordDetails, assets.RecordFilter, RecordRequest](
		"maintenance record", svc.Records,
		common.Mapper[*assets.MaintenanceRecord, assets.RecordDetails, RecordRequest]{
			ToDetails: recordDetails, FromDetails: recordRequest, ToResponse: toRecordResponse,
		},
		func(c *gin.Context) assets.RecordFilter {
			return assets.RecordFilter{
				BaseFilter:   utils.ParseBaseFilter(c),
				AssetID:      mapper.Deref(utils.QueryUint(c, "asset_id")),
				Status:       c.Query("status"),
				AssignedToID: mapper.Deref(utils.QueryUint(c, "assigned_to_id")),
			}
		}, log)

	h.status = common.NewStatusHandler[*assets.Asset]("asset", svc.AssetStatus, toAssetResponse)
	h.recordFlow = common.NewStatusHandler[*assets.MaintenanceRecord]("maintenance record", svc.RecordStatus, toRecordResponse)
	return h
}

// Register mounts /categories, /locations, /assets, /movements, /items,
// /records and /transactions.
func (h *Handler) Register(rg *gin.RouterGroup, read, write gin.HandlerFunc) {
	h.categories.Register(rg.Group("/categories"), read, write)
	h.locations.Register(rg.Group("/locations"), read, write)

	list := rg.Group("/assets")
	h.status.Register(list, write)
	h.assets.Register(list, read, write)

	h.movements.Register(rg.Group("/movements"), read, write)
	h.items.Register(rg.Group("/items"), read, write)

	records := rg.Group("/records")
	h.recordFlow.Register(records, write)
	h.records.Register(records, read, write)

	tx := rg.Group("/transactions")
	tx.GET("", common.Chain(read, h.ListTransactions)...)
	tx.POST("", common.Chain(write, h.RecordTransaction)...)
	tx.GET("/:id", common.Chain(read, h.GetTransaction)...)
}

// RecordTransaction handles POST /transactions
func (h *Handler) RecordTransaction(c *gin.Context) {
	var req TransactionRequest
	if !common.BindJSON(c, &req) {
		return
	}
	t, err := h.service.RecordTransaction(c.Request.Context(), assets.TransactionDetails{
		ItemID:          req.ItemID,
		TransactionType: vo.TransactionType(req.TransactionType),
		Quantity:        req.Quantity,
		Reference:       req.Reference,
		Notes:           req.Notes,
	}, common.ActorID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, toTransactionResponse(t), "Stock transaction recorded")
}

// GetTransaction handles GET /transactions/:id
func (h *Handler) GetTransaction(c *gin.Context) {
	id, ok := common.ParseID(c, "transaction")
	if !ok {
		return
	}
	t, err := h.service.GetTransaction(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", toTransactionResponse(t))
}

// ListTransactions handles GET /transactions
func (h *Handler) ListTransactions(c *gin.Context) {
	p := utils.ParsePagination(c)
	items, total, err := h.service.ListTransactions(c.Request.Context(), assets.TransactionFilter{
		BaseFilter: utils.ParseBaseFilter(c),
		ItemID:     mapper.Deref(utils.QueryUint(c, "item_id")),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, mapper.MapSlice(items, toTransactionResponse), total, p.Page, p.PageSize)
}
