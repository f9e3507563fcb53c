package common

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"campus/internal/application/common/crud"
	"campus/internal/shared/logger"
	"campus/internal/shared/mapper"
	"campus/internal/shared/utils"
)

// RecordService is the part of crud.Service a RecordHandler drives.
type RecordService[E crud.Entity[D], D any, F any] interface {
	Create(ctx context.Context, details D, actorID uint) (E, error)
	Get(ctx context.Context, id uint) (E, error)
	Update(ctx context.Context, id uint, details D) (E, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter F) ([]E, int64, error)
}

// Mapper converts between the request body R, the domain details D and the
// response view of E.
type Mapper[E any, D any, R any] struct {
	ToDetails func(req R) (D, error)
	// FromDetails renders stored details as a request, so PATCH can overlay
	// the sent fields on the current values.
	FromDetails func(details D) R
	ToResponse  func(entity E) any
}

// RecordHandler serves list / create / get / put / patch / delete for one
// record type.
type RecordHandler[E crud.Entity[D], D any, F any, R any] struct {
	entity  string
	service RecordService[E, D, F]
	mapper  Mapper[E, D, R]
	filter  func(c *gin.Context) F
	create  CreateFunc[E, D, R]
	logger  logger.Interface
}

// CreateFunc replaces the plain service create when creation has side
// effects or reads request fields outside the details.
type CreateFunc[E any, D any, R any] func(ctx context.Context, req R, details D, actorID uint) (E, error)

func NewRecordHandler[E crud.Entity[D], D any, F any, R any](
	entity string,
	service RecordService[E, D, F],
	mapper Mapper[E, D, R],
	filter func(c *gin.Context) F,
	log logger.Interface,
) *RecordHandler[E, D, F, R] {
	return &RecordHandler[E, D, F, R]{
		entity:  entity,
		service: service,
		mapper:  mapper,
		filter:  filter,
		logger:  log,
	}
}

func (h *RecordHandler[E, D, F, R]) WithCreate(fn CreateFunc[E, D, R]) *RecordHandler[E, D, F, R] {
	h.create = fn
	return h
}

// Register mounts the handler. read and write guard the respective routes
// and may be nil.
func (h *RecordHandler[E, D, F, R]) Register(rg *gin.RouterGroup, read, write gin.HandlerFunc) {
	rg.GET("", Chain(read, h.List)...)
	rg.POST("", Chain(write, h.Create)...)
	rg.GET("/:id", Chain(read, h.Get)...)
	rg.PUT("/:id", Chain(write, h.Update)...)
	rg.PATCH("/:id", Chain(write, h.Patch)...)
	rg.DELETE("/:id", Chain(write, h.Delete)...)
}

func (h *RecordHandler[E, D, F, R]) List(c *gin.Context) {
	p := utils.ParsePagination(c)
	items, total, err := h.service.List(c.Request.Context(), h.filter(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, mapper.MapSlice(items, h.mapper.ToResponse), total, p.Page, p.PageSize)
}

func (h *RecordHandler[E, D, F, R]) Create(c *gin.Context) {
	var req R
	if !BindJSON(c, &req) {
		return
	}
	details, err := h.mapper.ToDetails(req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var entity E
	if h.create != nil {
		entity, err = h.create(c.Request.Context(), req, details, ActorID(c))
	} else {
		entity, err = h.service.Create(c.Request.Context(), details, ActorID(c))
	}
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, h.mapper.ToResponse(entity))
}

func (h *RecordHandler[E, D, F, R]) Get(c *gin.Context) {
	id, ok := ParseID(c, h.entity)
	if !ok {
		return
	}
	entity, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", h.mapper.ToResponse(entity))
}

// Update handles PUT: the body replaces every editable field.
func (h *RecordHandler[E, D, F, R]) Update(c *gin.Context) {
	id, ok := ParseID(c, h.entity)
	if !ok {
		return
	}
	var req R
	if !BindJSON(c, &req) {
		return
	}
	h.save(c, id, req)
}

// Patch handles PATCH: fields absent from the body keep their stored value.
func (h *RecordHandler[E, D, F, R]) Patch(c *gin.Context) {
	id, ok := ParseID(c, h.entity)
	if !ok {
		return
	}
	current, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	req := h.mapper.FromDetails(current.Details())
	if !BindJSON(c, &req) {
		return
	}
	h.save(c, id, req)
}

func (h *RecordHandler[E, D, F, R]) Delete(c *gin.Context) {
	id, ok := ParseID(c, h.entity)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

func (h *RecordHandler[E, D, F, R]) save(c *gin.Context, id uint, req R) {
	details, err := h.mapper.ToDetails(req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	entity, err := h.service.Update(c.Request.Context(), id, details)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", h.mapper.ToResponse(entity))
}

// Chain prepends guard when it is set.
func Chain(guard gin.HandlerFunc, handler gin.HandlerFunc) []gin.HandlerFunc {
	if guard == nil {
		return []gin.HandlerFunc{handler}
	}
	return []gin.HandlerFunc{guard, handler}
}
