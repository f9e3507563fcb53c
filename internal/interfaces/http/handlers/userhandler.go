package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campus/internal/application/user/dto"
	"campus/internal/application/user/usecases"
	"campus/internal/interfaces/http/handlers/common"
	"campus/internal/shared/logger"
	"campus/internal/shared/utils"
)

// UserHandler handles account administration.
type UserHandler struct {
	createUC *usecases.CreateUserUseCase
	getUC    *usecases.GetUserUseCase
	updateUC *usecases.UpdateUserUseCase
	deleteUC *usecases.DeleteUserUseCase
	logger   logger.Interface
}

func NewUserHandler(
	createUC *usecases.CreateUserUseCase,
	getUC *usecases.GetUserUseCase,
	updateUC *usecases.UpdateUserUseCase,
	deleteUC *usecases.DeleteUserUseCase,
	log logger.Interface,
) *UserHandler {
	return &UserHandler{
		createUC: createUC,
		getUC:    getUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		logger:   log,
	}
}

// Register mounts /users. read and write guard the respective routes.
func (h *UserHandler) Register(rg *gin.RouterGroup, read, write gin.HandlerFunc) {
	rg.GET("", common.Chain(read, h.ListUsers)...)
	rg.POST("", common.Chain(write, h.CreateUser)...)
	rg.GET("/:id", common.Chain(read, h.GetUser)...)
	rg.PATCH("/:id", common.Chain(write, h.UpdateUser)...)
	rg.DELETE("/:id", common.Chain(write, h.DeleteUser)...)
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if !common.BindJSON(c, &req) {
		return
	}
	resp, err := h.createUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, resp, "User created successfully")
}

// GetUser handles GET /users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := common.ParseID(c, "user")
	if !ok {
		return
	}
	resp, err := h.getUC.ExecuteByID(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	var req dto.ListUsersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}
	p := utils.ParsePagination(c)
	req.Page, req.PageSize = p.Page, p.PageSize

	users, total, err := h.getUC.ExecuteList(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, users, total, p.Page, p.PageSize)
}

// UpdateUser handles PATCH /users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := common.ParseID(c, "user")
	if !ok {
		return
	}
	var req dto.UpdateUserRequest
	if !common.BindJSON(c, &req) {
		return
	}
	resp, err := h.updateUC.Execute(c.Request.Context(), common.ActorID(c), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "User updated successfully", resp)
}

// DeleteUser handles DELETE /users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := common.ParseID(c, "user")
	if !ok {
		return
	}
	if err := h.deleteUC.Execute(c.Request.Context(), common.ActorID(c), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}
