package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campus/internal/domain/permission"
	"campus/internal/interfaces/http/middleware"
	"campus/internal/interfaces/http/routes"
	"campus/internal/shared/version"
)

// SetupRoutes installs the global middleware chain and every route group.
func (c *Container) SetupRoutes() {
	log := c.log.Named("http")

	c.engine.Use(middleware.Recovery(log))
	c.engine.Use(middleware.Logger(log))
	c.engine.Use(middleware.CORS(c.cfg.Server))
	c.engine.Use(middleware.SecurityHeaders())

	if c.cfg.Metrics.Enabled {
		c.engine.Use(c.metrics.Middleware())
		c.engine.GET(c.cfg.Metrics.Path, gin.WrapH(c.metrics.Handler()))
	}
	c.engine.GET("/health", c.health)

	api := c.engine.Group("/api")
	limit := middleware.RateLimit(c.limiter, log)
	h := c.hdlrs

	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler:    h.auth,
		AuthMiddleware: c.authMiddleware,
		RateLimit:      limit,
	})

	routes.SetupPublicRoutes(api, &routes.PublicRouteConfig{
		AnnouncementHandler: h.publicAnnouncements,
		JobHandler:          h.jobs,
		PolicyHandler:       h.policies,
		OutreachHandler:     h.outreach,
		AuthMiddleware:      c.authMiddleware,
		RateLimit:           limit,
	})

	routes.SetupCampusRoutes(api, &routes.CampusRouteConfig{
		VisitHandler:         h.visits,
		StaffHandler:         h.staff,
		NewsHandler:          h.news,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupAdminRoutes(api, &routes.AdminRouteConfig{
		UserHandler:      h.users,
		DashboardHandler: h.dashboard,
		Modules: []routes.AdminModule{
			{Path: "academics", Resource: permission.ResourceAcademics, Register: h.academics.Register},
			{Path: "admissions", Resource: permission.ResourceAdmissions, Register: h.admissions.Register},
			{Path: "assets", Resource: permission.ResourceAssets, Register: h.assets.Register},
			{Path: "maintenance", Resource: permission.ResourceMaintenance, Register: h.maintenance.Register},
			{Path: "announcements", Resource: permission.ResourceAnnouncements, Register: h.announcements.Register},
			{Path: "jobs", Resource: permission.ResourceJobs, Register: h.jobs.Register},
			{Path: "policies", Resource: permission.ResourcePolicies, Register: h.policies.Register},
			{Path: "staff", Resource: permission.ResourceStaff, Register: h.staff.Register},
			{Path: "visits", Resource: permission.ResourceVisits, Register: h.visits.RegisterAdmin},
			{Path: "outreach", Resource: permission.ResourceOutreach, Register: h.outreach.Register},
		},
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})
}

func (c *Container) health(ctx *gin.Context) {
	status := http.StatusOK
	dbStatus := "ok"
	if sqlDB, err := c.db.DB(); err != nil || sqlDB.PingContext(ctx.Request.Context()) != nil {
		status = http.StatusServiceUnavailable
		dbStatus = "unavailable"
	}
	ctx.JSON(status, gin.H{
		"status":  dbStatus,
		"version": version.Get(),
	})
}
