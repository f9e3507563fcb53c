package routes

import (
	"github.com/gin-gonic/gin"

	announcementsHandlers "campus/internal/interfaces/http/handlers/announcements"
	jobsHandlers "campus/internal/interfaces/http/handlers/jobs"
	outreachHandlers "campus/internal/interfaces/http/handlers/outreach"
	policiesHandlers "campus/internal/interfaces/http/handlers/policies"
	"campus/internal/interfaces/http/middleware"
)

// PublicRouteConfig holds dependencies for the public pages.
type PublicRouteConfig struct {
	AnnouncementHandler *announcementsHandlers.PublicHandler
	JobHandler          *jobsHandlers.Handler
	PolicyHandler       *policiesHandlers.Handler
	OutreachHandler     *outreachHandlers.Handler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimit           gin.HandlerFunc
}

// SetupPublicRoutes configures /public. Reads need no authentication;
// comments and acknowledgments do.
func SetupPublicRoutes(api *gin.RouterGroup, cfg *PublicRouteConfig) {
	public := api.Group("/public")

	cfg.AnnouncementHandler.Register(public.Group("/announcements"), cfg.AuthMiddleware.RequireAuth())
	cfg.JobHandler.RegisterPublic(public.Group("/jobs"), cfg.RateLimit)

	// Mounts /policies and /strategic-plans
	cfg.PolicyHandler.RegisterPublic(public)

	// Mounts /partners, /events and /media
	cfg.OutreachHandler.RegisterPublic(public)
}
