package common

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"campus/internal/application/common/lifecycle"
	"campus/internal/shared/errors"
	"campus/internal/shared/utils"
)

type StatusService[E lifecycle.Entity] interface {
	Execute(ctx context.Context, cmd lifecycle.ChangeStatusCommand) (E, error)
	ExecuteBulk(ctx context.Context, cmd lifecycle.BulkCommand) (*lifecycle.BulkResult, error)
}

// BulkActionFunc runs a named bulk action that is more than a status
// assignment.
type BulkActionFunc func(ctx context.Context, ids []uint, action string, actorID uint) (*lifecycle.BulkResult, error)

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Note   string `json:"note"`
}

// BulkStatusRequest carries either a status or a named action.
type BulkStatusRequest struct {
	IDs    []uint `json:"ids" binding:"required,min=1"`
	Status string `json:"status"`
	Action string `json:"action"`
	Note   string `json:"note"`
}

type StatusHandler[E lifecycle.Entity] struct {
	entity     string
	service    StatusService[E]
	toResponse func(E) any
	actions    lifecycle.Actions
	bulk       BulkActionFunc
}

func NewStatusHandler[E lifecycle.Entity](entity string, service StatusService[E], toResponse func(E) any) *StatusHandler[E] {
	return &StatusHandler[E]{entity: entity, service: service, toResponse: toResponse}
}

// WithActions resolves {action} bodies to a status through actions.
func (h *StatusHandler[E]) WithActions(actions lifecycle.Actions) *StatusHandler[E] {
	h.actions = actions
	return h
}

// WithBulkAction hands {action} bodies to fn instead.
func (h *StatusHandler[E]) WithBulkAction(fn BulkActionFunc) *StatusHandler[E] {
	h.bulk = fn
	return h
}

func (h *StatusHandler[E]) Register(rg *gin.RouterGroup, write gin.HandlerFunc) {
	rg.PATCH("/:id/status", Chain(write, h.ChangeStatus)...)
	rg.POST("/bulk-status", Chain(write, h.BulkStatus)...)
}

// ChangeStatus handles PATCH /:id/status
func (h *StatusHandler[E]) ChangeStatus(c *gin.Context) {
	id, ok := ParseID(c, h.entity)
	if !ok {
		return
	}
	var req ChangeStatusRequest
	if !BindJSON(c, &req) {
		return
	}

	entity, err := h.service.Execute(c.Request.Context(), lifecycle.ChangeStatusCommand{
		ID:      id,
		Status:  req.Status,
		Note:    req.Note,
		ActorID: ActorID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Status updated", h.toResponse(entity))
}

// BulkStatus handles POST /bulk-status
func (h *StatusHandler[E]) BulkStatus(c *gin.Context) {
	var req BulkStatusRequest
	if !BindJSON(c, &req) {
		return
	}

	result, err := h.runBulk(c.Request.Context(), req, ActorID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Bulk action applied", result)
}

func (h *StatusHandler[E]) runBulk(ctx context.Context, req BulkStatusRequest, actorID uint) (*lifecycle.BulkResult, error) {
	if req.Action == "" {
		if req.Status == "" {
			return nil, errors.NewFieldValidationError("status", "status or action is required")
		}
		return h.service.ExecuteBulk(ctx, lifecycle.BulkCommand{IDs: req.IDs, Status: req.Status, Note: req.Note, ActorID: actorID})
	}

	switch {
	case h.bulk != nil:
		return h.bulk(ctx, req.IDs, req.Action, actorID)
	case h.actions != nil:
		status, err := h.actions.Resolve(req.Action)
		if err != nil {
			return nil, err
		}
		return h.service.ExecuteBulk(ctx, lifecycle.BulkCommand{IDs: req.IDs, Status: status, Note: req.Note, ActorID: actorID})
	default:
		return nil, errors.NewFieldValidationError("action", "no bulk actions are defined for "+h.entity)
	}
}
