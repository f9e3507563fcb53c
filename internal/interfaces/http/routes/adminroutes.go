package routes

import (
	"github.com/gin-gonic/gin"

	"campus/internal/domain/permission"
	"campus/internal/interfaces/http/handlers"
	adminHandlers "campus/internal/interfaces/http/handlers/admin"
	"campus/internal/interfaces/http/middleware"
)

// AdminModule is one back-office module mounted at /admin/<Path>. Register
// receives the casbin read and write guards for Resource.
type AdminModule struct {
	Path     string
	Resource permission.Resource
	Register func(rg *gin.RouterGroup, read, write gin.HandlerFunc)
}

// AdminRouteConfig holds dependencies for admin routes.
type AdminRouteConfig struct {
	UserHandler          *handlers.UserHandler
	DashboardHandler     *adminHandlers.AdminDashboardHandler
	Modules              []AdminModule
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupAdminRoutes configures /admin. Every route requires authentication;
// access to each resource is decided by the role policies.
func SetupAdminRoutes(api *gin.RouterGroup, cfg *AdminRouteConfig) {
	admin := api.Group("/admin")
	admin.Use(cfg.AuthMiddleware.RequireAuth())

	perms := cfg.PermissionMiddleware

	readDashboard := perms.RequirePermission(permission.ResourceDashboard, permission.ActionRead)
	admin.GET("/dashboard", readDashboard, cfg.DashboardHandler.GetDashboard)

	readHistory := perms.RequirePermission(permission.ResourceHistory, permission.ActionRead)
	admin.GET("/history", readHistory, cfg.DashboardHandler.ListHistory)

	read, write := perms.Guards(permission.ResourceUsers)
	cfg.UserHandler.Register(admin.Group("/users"), read, write)

	for _, m := range cfg.Modules {
		read, write := perms.Guards(m.Resource)
		m.Register(admin.Group("/"+m.Path), read, write)
	}
}
