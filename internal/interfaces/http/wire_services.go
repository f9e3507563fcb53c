package http

import (
	academicsApp "campus/internal/application/academics"
	adminUsecases "campus/internal/application/admin/usecases"
	admissionsApp "campus/internal/application/admissions"
	announcementsApp "campus/internal/application/announcements"
	assetsApp "campus/internal/application/assets"
	"campus/internal/application/common/lifecycle"
	jobsApp "campus/internal/application/jobs"
	maintenanceApp "campus/internal/application/maintenance"
	newsApp "campus/internal/application/news"
	outreachApp "campus/internal/application/outreach"
	policiesApp "campus/internal/application/policies"
	staffApp "campus/internal/application/staff"
	"campus/internal/application/user/usecases"
	visitsApp "campus/internal/application/visits"
	"campus/internal/infrastructure/auth"
	"campus/internal/infrastructure/email"
	"campus/internal/infrastructure/services"
	"campus/internal/shared/db"
	"campus/internal/shared/services/markdown"
)

// appServices holds the module services and the user and admin use cases.
type appServices struct {
	academics     *academicsApp.Service
	admissions    *admissionsApp.Service
	assets        *assetsApp.Service
	maintenance   *maintenanceApp.Service
	announcements *announcementsApp.Service
	jobs          *jobsApp.Service
	policies      *policiesApp.Service
	staff         *staffApp.Service
	visits        *visitsApp.Service
	news          *newsApp.Service
	outreach      *outreachApp.Service

	login      *usecases.LoginWithPasswordUseCase
	createUser *usecases.CreateUserUseCase
	getUser    *usecases.GetUserUseCase
	updateUser *usecases.UpdateUserUseCase
	deleteUser *usecases.DeleteUserUseCase

	dashboard *adminUsecases.GetAdminDashboardUseCase
	history   *adminUsecases.ListStatusHistoryUseCase
}

func (c *Container) initServices() {
	r := c.repos
	tx := db.NewTransactionManager(c.db)
	journal := lifecycle.NewJournal(r.statusHistory, c.metrics, c.log)

	hasher := auth.NewBcryptPasswordHasher(c.cfg.Auth.Password)
	c.jwtService = auth.NewJWTService(c.cfg.Auth.JWT.Secret, c.cfg.Auth.JWT.AccessExpMinutes)
	mailer := email.NewSMTPMailer(c.cfg.Email, c.log)

	c.svcs = &appServices{
		academics:     academicsApp.NewService(r.departments, r.programs, r.courses, r.faculty, tx, c.log),
		admissions:    admissionsApp.NewService(r.admissions, tx, journal, c.log),
		assets:        assetsApp.NewService(r.assets, tx, journal, c.log),
		maintenance:   maintenanceApp.NewService(r.maintenance, services.NewReferenceGenerator(), tx, journal, c.log),
		announcements: announcementsApp.NewService(r.announcements, markdown.NewRenderer(), mailer, tx, journal, c.log),
		jobs:          jobsApp.NewService(r.jobPostings, r.jobApplications, tx, journal, c.log),
		policies:      policiesApp.NewService(r.policies, r.strategicPlans, tx, c.log),
		staff:         staffApp.NewService(r.staffMembers, r.leadership, tx, c.log),
		visits:        visitsApp.NewService(r.visitDepartments, r.visitRequests, tx, journal, c.log),
		news:          newsApp.NewService(r.news, tx, c.log),
		outreach:      outreachApp.NewService(r.outreach, tx, c.log),

		login:      usecases.NewLoginWithPasswordUseCase(r.users, hasher, c.jwtService, c.log),
		createUser: usecases.NewCreateUserUseCase(r.users, hasher, c.log),
		getUser:    usecases.NewGetUserUseCase(r.users, c.log),
		updateUser: usecases.NewUpdateUserUseCase(r.users, hasher, c.log),
		deleteUser: usecases.NewDeleteUserUseCase(r.users, c.log),

		dashboard: adminUsecases.NewGetAdminDashboardUseCase(r.dashboard, c.log),
		history:   adminUsecases.NewListStatusHistoryUseCase(r.statusHistory, c.log),
	}
}
