package repository

import "campus/internal/shared/constants"

// Delete policies per parent table. Cascades run their children's rules
// first so that grandchildren are handled the same way a database with
// enforced foreign keys would.

func workOrderRules() []rule {
	return []rule{
		cascade(constants.TableWorkOrderCompletions, "work_order_id"),
		cascade(constants.TableSignatures, "work_order_id"),
		setNull(constants.TableMaintenanceHistory, "work_order_id"),
	}
}

func maintenanceRequestRules() []rule {
	return []rule{
		cascade(constants.TableWorkOrders, "maintenance_request_id", workOrderRules()...),
	}
}

func technicianRules() []rule {
	return []rule{
		setNull(constants.TableMaintenanceRequests, "assigned_to_id"),
		setNull(constants.TableWorkOrders, "technician_id"),
		setNull(constants.TableMaintenanceHistory, "technician_id"),
	}
}

func userRules() []rule {
	return []rule{
		cascade(constants.TableVisitRequests, "requester_id"),
		cascade(constants.TableTechnicians, "user_id", technicianRules()...),
		cascade(constants.TableAcknowledgments, "user_id"),
		setNull(constants.TableLeadership, "user_id"),
		setNull(constants.TableAssets, "assigned_to_id"),
		setNull(constants.TableAssets, "created_by_id"),
		setNull(constants.TableAssetMovements, "from_user_id"),
		setNull(constants.TableAssetMovements, "to_user_id"),
		setNull(constants.TableAssetMovements, "recorded_by_id"),
		setNull(constants.TableInventoryTransactions, "issued_by_id"),
		setNull(constants.TableMaintenanceTeams, "head_id"),
		setNull(constants.TableMaintenanceRequests, "requester_id"),
		setNull(constants.TableWorkOrders, "supervisor_id"),
		setNull(constants.TableWorkOrderCompletions, "completed_by_id"),
		setNull(constants.TableMaintenanceRecords, "assigned_to_id"),
		setNull(constants.TableMaintenanceRecords, "created_by_id"),
		setNull(constants.TableSignatures, "signer_id"),
		setNull(constants.TableAnnouncements, "created_by_id"),
		setNull(constants.TableAttachments, "uploaded_by_id"),
		setNull(constants.TableTemplates, "created_by_id"),
		setNull(constants.TableComments, "user_id"),
		setNull(constants.TableVisitRequests, "created_by_secretary_id"),
		setNull(constants.TableVisitRequests, "responded_by_id"),
	}
}

func requirementRules() []rule {
	return []rule{
		setNull(constants.TableApplicantDocuments, "requirement_id"),
	}
}

func programRules() []rule {
	return []rule{
		cascade(constants.TableCourses, "program_id"),
		cascade(constants.TableAdmissionRequirements, "program_id", requirementRules()...),
		setNull(constants.TableApplicants, "program_id"),
	}
}

func departmentRules() []rule {
	return []rule{
		cascade(constants.TablePrograms, "department_id", programRules()...),
		setNull(constants.TableFaculty, "department_id"),
	}
}

func cycleRules() []rule {
	return []rule{
		setNull(constants.TableApplicants, "cycle_id"),
	}
}

func applicantRules() []rule {
	return []rule{
		cascade(constants.TableApplicantDocuments, "applicant_id"),
	}
}

func assetCategoryRules() []rule {
	return []rule{
		protect(constants.TableAssets, "category_id", "assets"),
		protect(constants.TableInventoryItems, "category_id", "inventory items"),
	}
}

func locationRules() []rule {
	return []rule{
		setNull(constants.TableAssets, "location_id"),
		setNull(constants.TableInventoryItems, "storage_location_id"),
		setNull(constants.TableAssetMovements, "from_location_id"),
		setNull(constants.TableAssetMovements, "to_location_id"),
	}
}

func assetRules() []rule {
	return []rule{
		cascade(constants.TableAssetMovements, "asset_id"),
		cascade(constants.TableMaintenanceRecords, "asset_id"),
		cascade(constants.TableMaintenanceSchedules, "asset_id"),
		cascade(constants.TableMaintenanceHistory, "asset_id"),
		cascade(constants.TableMaintenanceRequests, "asset_id", maintenanceRequestRules()...),
	}
}

func inventoryItemRules() []rule {
	return []rule{
		cascade(constants.TableInventoryTransactions, "item_id"),
	}
}

func teamRules() []rule {
	return []rule{
		setNull(constants.TableTechnicians, "team_id"),
		setNull(constants.TableMaintenanceSchedules, "assigned_team_id"),
	}
}

func announcementCategoryRules() []rule {
	return []rule{
		protect(constants.TableAnnouncements, "category_id", "announcements"),
		setNull(constants.TableTemplates, "category_id"),
	}
}

func announcementRules() []rule {
	return []rule{
		cascade(constants.TableAcknowledgments, "announcement_id"),
		cascade(constants.TableComments, "announcement_id"),
		cascade(constants.TableDistributions, "announcement_id"),
		cascade(constants.TableAttachments, "announcement_id"),
	}
}

func jobPostingRules() []rule {
	return []rule{
		cascade(constants.TableJobApplications, "job_id"),
	}
}

func visitDepartmentRules() []rule {
	return []rule{
		protect(constants.TableVisitRequests, "department_id", "visit requests"),
	}
}

func partnerRules() []rule {
	return []rule{
		cascade(constants.TableAffiliates, "partner_id"),
	}
}
