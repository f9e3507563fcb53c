package constants

// Table names
const (
	TableUsers         = "users"
	TableStatusChanges = "status_changes"

	TableDepartments = "academic_departments"
	TablePrograms    = "academic_programs"
	TableCourses     = "academic_courses"
	TableFaculty     = "academic_faculty"

	TableAdmissionCycles       = "admission_cycles"
	TableAdmissionRequirements = "admission_requirements"
	TableApplicants            = "applicants"
	TableApplicantDocuments    = "applicant_documents"

	TableAssetCategories       = "asset_categories"
	TableAssetLocations        = "asset_locations"
	TableAssets                = "assets"
	TableAssetMovements        = "asset_movements"
	TableMaintenanceRecords    = "asset_maintenance_records"
	TableInventoryItems        = "inventory_items"
	TableInventoryTransactions = "inventory_transactions"

	TableMaintenanceTeams     = "maintenance_teams"
	TableTechnicians          = "technicians"
	TableMaintenanceRequests  = "maintenance_requests"
	TableWorkOrders           = "work_orders"
	TableWorkOrderCompletions = "work_order_completions"
	TableMaintenanceSchedules = "maintenance_schedules"
	TableSignatures           = "maintenance_signatures"
	TableMaintenanceHistory   = "maintenance_history"
	TableMaintenanceMetrics   = "maintenance_metrics"

	TableAnnouncementCategories = "announcement_categories"
	TableAnnouncements          = "announcements"
	TableAcknowledgments        = "announcement_acknowledgments"
	TableComments               = "announcement_comments"
	TableDistributions          = "announcement_distributions"
	TableAttachments            = "announcement_attachments"
	TableTemplates              = "announcement_templates"

	TableJobPostings     = "job_postings"
	TableJobApplications = "job_applications"

	TablePolicies       = "policies"
	TableStrategicPlans = "strategic_plans"

	TableStaffMembers = "staff_members"
	TableLeadership   = "leadership"

	TableVisitDepartments = "visit_departments"
	TableVisitRequests    = "visit_requests"

	TableNewsPosts = "news_posts"

	TablePartners   = "partners"
	TableAffiliates = "partner_affiliates"
	TableEvents     = "events"
	TableMediaFiles = "media_files"
)
