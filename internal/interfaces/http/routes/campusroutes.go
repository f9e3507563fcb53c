package routes

import (
	"github.com/gin-gonic/gin"

	"campus/internal/domain/permission"
	newsHandlers "campus/internal/interfaces/http/handlers/news"
	staffHandlers "campus/internal/interfaces/http/handlers/staff"
	visitsHandlers "campus/internal/interfaces/http/handlers/visits"
	"campus/internal/interfaces/http/middleware"
)

// CampusRouteConfig holds dependencies for the routes any signed-in member
// of the university uses.
type CampusRouteConfig struct {
	VisitHandler         *visitsHandlers.Handler
	StaffHandler         *staffHandlers.Handler
	NewsHandler          *newsHandlers.Handler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupCampusRoutes configures /visits, /staff and /news.
func SetupCampusRoutes(api *gin.RouterGroup, cfg *CampusRouteConfig) {
	visits := api.Group("/visits")
	visits.Use(cfg.AuthMiddleware.RequireAuth())
	cfg.VisitHandler.Register(visits)

	staff := api.Group("/staff")
	staff.Use(cfg.AuthMiddleware.RequireAuth())
	cfg.StaffHandler.RegisterSelfService(staff)

	// Reading news is public. OptionalAuth identifies writers so the
	// permission check can see their role.
	news := api.Group("/news")
	news.Use(cfg.AuthMiddleware.OptionalAuth())
	cfg.NewsHandler.Register(news, cfg.PermissionMiddleware.RequirePermission(permission.ResourceNews, permission.ActionWrite))
}
