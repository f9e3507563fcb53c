package http

import (
	"campus/internal/interfaces/http/handlers"
	academicsHandlers "campus/internal/interfaces/http/handlers/academics"
	adminHandlers "campus/internal/interfaces/http/handlers/admin"
	admissionsHandlers "campus/internal/interfaces/http/handlers/admissions"
	announcementsHandlers "campus/internal/interfaces/http/handlers/announcements"
	assetsHandlers "campus/internal/interfaces/http/handlers/assets"
	jobsHandlers "campus/internal/interfaces/http/handlers/jobs"
	maintenanceHandlers "campus/internal/interfaces/http/handlers/maintenance"
	newsHandlers "campus/internal/interfaces/http/handlers/news"
	outreachHandlers "campus/internal/interfaces/http/handlers/outreach"
	policiesHandlers "campus/internal/interfaces/http/handlers/policies"
	staffHandlers "campus/internal/interfaces/http/handlers/staff"
	visitsHandlers "campus/internal/interfaces/http/handlers/visits"
)

type allHandlers struct {
	auth      *handlers.AuthHandler
	users     *handlers.UserHandler
	dashboard *adminHandlers.AdminDashboardHandler

	academics           *academicsHandlers.Handler
	admissions          *admissionsHandlers.Handler
	assets              *assetsHandlers.Handler
	maintenance         *maintenanceHandlers.Handler
	announcements       *announcementsHandlers.Handler
	publicAnnouncements *announcementsHandlers.PublicHandler
	jobs                *jobsHandlers.Handler
	policies            *policiesHandlers.Handler
	staff               *staffHandlers.Handler
	visits              *visitsHandlers.Handler
	news                *newsHandlers.Handler
	outreach            *outreachHandlers.Handler
}

func (c *Container) initHandlers() {
	s := c.svcs
	log := c.log.Named("http")
	c.hdlrs = &allHandlers{
		auth:      handlers.NewAuthHandler(s.login, s.getUser, log),
		users:     handlers.NewUserHandler(s.createUser, s.getUser, s.updateUser, s.deleteUser, log),
		dashboard: adminHandlers.NewAdminDashboardHandler(s.dashboard, s.history, log),

		academics:           academicsHandlers.NewHandler(s.academics, log),
		admissions:          admissionsHandlers.NewHandler(s.admissions, log),
		assets:              assetsHandlers.NewHandler(s.assets, log),
		maintenance:         maintenanceHandlers.NewHandler(s.maintenance, log),
		announcements:       announcementsHandlers.NewHandler(s.announcements, log),
		publicAnnouncements: announcementsHandlers.NewPublicHandler(s.announcements, log),
		jobs:                jobsHandlers.NewHandler(s.jobs, log),
		policies:            policiesHandlers.NewHandler(s.policies, log),
		staff:               staffHandlers.NewHandler(s.staff, log),
		visits:              visitsHandlers.NewHandler(s.visits, log),
		news:                newsHandlers.NewHandler(s.news, log),
		outreach:            outreachHandlers.NewHandler(s.outreach, log),
	}
}
