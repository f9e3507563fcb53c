// Package common provides shared HTTP handler utilities.
package common

import (
	"github.com/gin-gonic/gin"

	appcommon "campus/internal/application/common"
	"campus/internal/shared/authorization"
	"campus/internal/shared/constants"
	"campus/internal/shared/utils"
)

// ActorID returns the authenticated user, zero on public routes.
func ActorID(c *gin.Context) uint {
	return c.GetUint(constants.ContextKeyUserID)
}

func CallerFrom(c *gin.Context) appcommon.Caller {
	return appcommon.Caller{
		UserID: ActorID(c),
		Role:   authorization.RoleFromContext(c),
	}
}

// BindJSON binds and validates the body. On failure it writes the
// field-level error response and returns false.
func BindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return false
	}
	return true
}

// ParseID reads the :id path parameter, writing the error response on
// failure.
func ParseID(c *gin.Context, entity string) (uint, bool) {
	id, err := utils.ParseUintParam(c, "id", entity)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return 0, false
	}
	return id, true
}
