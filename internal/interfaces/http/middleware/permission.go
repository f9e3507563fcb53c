package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campus/internal/domain/permission"
	"campus/internal/shared/authorization"
	"campus/internal/shared/constants"
	"campus/internal/shared/logger"
	"campus/internal/shared/utils"
)

type PermissionMiddleware struct {
	enforcer permission.PermissionEnforcer
	logger   logger.Interface
}

func NewPermissionMiddleware(enforcer permission.PermissionEnforcer, logger logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		enforcer: enforcer,
		logger:   logger,
	}
}

// RequirePermission checks (role, resource, action) against the casbin
// policies. It must run after RequireAuth.
func (m *PermissionMiddleware) RequirePermission(resource permission.Resource, action permission.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get(constants.ContextKeyUserID)
		if !exists {
			utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
			c.Abort()
			return
		}

		role := authorization.RoleFromContext(c)
		allowed, err := m.enforcer.Enforce(role.String(), resource, action)
		if err != nil {
			m.logger.Errorw("permission check failed", "error", err, "user_id", userID, "resource", resource, "action", action)
			utils.ErrorResponse(c, http.StatusInternalServerError, "permission check failed")
			c.Abort()
			return
		}

		if !allowed {
			m.logger.Warnw("permission denied", "user_id", userID, "role", role, "resource", resource, "action", action)
			utils.ErrorResponse(c, http.StatusForbidden, "insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// Guards returns the read and write checks for one resource.
func (m *PermissionMiddleware) Guards(resource permission.Resource) (read, write gin.HandlerFunc) {
	return m.RequirePermission(resource, permission.ActionRead), m.RequirePermission(resource, permission.ActionWrite)
}
