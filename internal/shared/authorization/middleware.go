package authorization

import (
	"github.com/gin-gonic/gin"

	"campus/internal/shared/constants"
)

// RoleFromContext returns the role the auth middleware stored on the request.
// Anonymous requests resolve to RoleUser.
func RoleFromContext(c *gin.Context) UserRole {
	return ParseUserRole(c.GetString(constants.ContextKeyUserRole))
}
