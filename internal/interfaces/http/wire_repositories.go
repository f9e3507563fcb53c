package http

import (
	"gorm.io/gorm"

	admissionsApp "campus/internal/application/admissions"
	announcementsApp "campus/internal/application/announcements"
	assetsApp "campus/internal/application/assets"
	maintenanceApp "campus/internal/application/maintenance"
	outreachApp "campus/internal/application/outreach"
	"campus/internal/domain/jobs"
	"campus/internal/domain/news"
	"campus/internal/domain/policies"
	"campus/internal/domain/staff"
	"campus/internal/domain/statushistory"
	"campus/internal/domain/user"
	"campus/internal/domain/visits"
	"campus/internal/infrastructure/repository"
	"campus/internal/shared/logger"
)

// repositories holds every repository the services are built from.
type repositories struct {
	users         user.Repository
	statusHistory statushistory.Repository
	dashboard     *repository.DashboardRepository

	departments   *repository.DepartmentRepository
	programs      *repository.ProgramRepository
	courses       *repository.CourseRepository
	faculty       *repository.FacultyRepository
	admissions    admissionsApp.Repositories
	assets        assetsApp.Repositories
	maintenance   maintenanceApp.Repositories
	announcements announcementsApp.Repositories
	outreach      outreachApp.Repositories

	jobPostings      jobs.JobPostingRepository
	jobApplications  jobs.JobApplicationRepository
	policies         policies.PolicyRepository
	strategicPlans   policies.StrategicPlanRepository
	staffMembers     staff.StaffMemberRepository
	leadership       staff.LeadershipRepository
	visitDepartments visits.DepartmentRepository
	visitRequests    visits.VisitRequestRepository
	news             news.Repository
}

func newRepositories(db *gorm.DB, log logger.Interface) *repositories {
	log = log.Named("repository")
	return &repositories{
		users:         repository.NewUserRepository(db, log),
		statusHistory: repository.NewStatusHistoryRepository(db, log),
		dashboard:     repository.NewDashboardRepository(db, log),

		departments: repository.NewDepartmentRepository(db, log),
		programs:    repository.NewProgramRepository(db, log),
		courses:     repository.NewCourseRepository(db, log),
		faculty:     repository.NewFacultyRepository(db, log),
		admissions: admissionsApp.Repositories{
			Cycles:       repository.NewAdmissionCycleRepository(db, log),
			Requirements: repository.NewRequirementRepository(db, log),
			Applicants:   repository.NewApplicantRepository(db, log),
			Documents:    repository.NewApplicantDocumentRepository(db, log),
		},
		assets: assetsApp.Repositories{
			Categories:   repository.NewAssetCategoryRepository(db, log),
			Locations:    repository.NewAssetLocationRepository(db, log),
			Assets:       repository.NewAssetRepository(db, log),
			Movements:    repository.NewAssetMovementRepository(db, log),
			Items:        repository.NewInventoryItemRepository(db, log),
			Transactions: repository.NewInventoryTransactionRepository(db, log),
			Records:      repository.NewMaintenanceRecordRepository(db, log),
		},
		maintenance: maintenanceApp.Repositories{
			Teams:       repository.NewMaintenanceTeamRepository(db, log),
			Technicians: repository.NewTechnicianRepository(db, log),
			Requests:    repository.NewMaintenanceRequestRepository(db, log),
			WorkOrders:  repository.NewWorkOrderRepository(db, log),
			Completions: repository.NewCompletionRepository(db, log),
			Schedules:   repository.NewMaintenanceScheduleRepository(db, log),
			Signatures:  repository.NewSignatureRepository(db, log),
			History:     repository.NewHistoryRepository(db, log),
			Metrics:     repository.NewMetricsRepository(db, log),
		},
		announcements: announcementsApp.Repositories{
			Categories:      repository.NewAnnouncementCategoryRepository(db, log),
			Announcements:   repository.NewAnnouncementRepository(db, log),
			Acknowledgments: repository.NewAcknowledgmentRepository(db, log),
			Comments:        repository.NewCommentRepository(db, log),
			Distributions:   repository.NewDistributionRepository(db, log),
			Attachments:     repository.NewAttachmentRepository(db, log),
			Templates:       repository.NewTemplateRepository(db, log),
		},
		outreach: outreachApp.Repositories{
			Partners:   repository.NewPartnerRepository(db, log),
			Affiliates: repository.NewAffiliateRepository(db, log),
			Events:     repository.NewEventRepository(db, log),
			Media:      repository.NewMediaRepository(db, log),
		},

		jobPostings:      repository.NewJobPostingRepository(db, log),
		jobApplications:  repository.NewJobApplicationRepository(db, log),
		policies:         repository.NewPolicyRepository(db, log),
		strategicPlans:   repository.NewStrategicPlanRepository(db, log),
		staffMembers:     repository.NewStaffMemberRepository(db, log),
		leadership:       repository.NewLeadershipRepository(db, log),
		visitDepartments: repository.NewVisitDepartmentRepository(db, log),
		visitRequests:    repository.NewVisitRequestRepository(db, log),
		news:             repository.NewNewsPostRepository(db, log),
	}
}
