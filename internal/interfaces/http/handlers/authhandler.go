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

type AuthHandler struct {
	loginUseCase *usecases.LoginWithPasswordUseCase
	getUserUC    *usecases.GetUserUseCase
	logger       logger.Interface
}

func NewAuthHandler(loginUC *usecases.LoginWithPasswordUseCase, getUserUC *usecases.GetUserUseCase, logger logger.Interface) *AuthHandler {
	return &AuthHandler{
		loginUseCase: loginUC,
		getUserUC:    getUserUC,
		logger:       logger,
	}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !common.BindJSON(c, &req) {
		return
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), usecases.LoginWithPasswordCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.logger.Warnw("login failed", "email", req.Email, "ip", c.ClientIP())
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "login successful", result)
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	resp, err := h.getUserUC.ExecuteByID(c.Request.Context(), common.ActorID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", resp)
}
