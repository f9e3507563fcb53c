// Package models holds the gorm persistence models. Domain types never leave
// the mappers package; repositories convert at the boundary.
package models

// All lists every model in dependency order for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&UserModel{},
		&StatusChangeModel{},

		&DepartmentModel{},
		&ProgramModel{},
		&CourseModel{},
		&FacultyModel{},

		&AdmissionCycleModel{},
		&RequirementModel{},
		&ApplicantModel{},
		&ApplicantDocumentModel{},

		&AssetCategoryModel{},
		&AssetLocationModel{},
		&AssetModel{},
		&AssetMovementModel{},
		&MaintenanceRecordModel{},
		&InventoryItemModel{},
		&InventoryTransactionModel{},

		&MaintenanceTeamModel{},
		&TechnicianModel{},
		&MaintenanceRequestModel{},
		&WorkOrderModel{},
		&WorkOrderCompletionModel{},
		&MaintenanceScheduleModel{},
		&SignatureModel{},
		&MaintenanceHistoryModel{},
		&MaintenanceMetricsModel{},

		&AnnouncementCategoryModel{},
		&AnnouncementModel{},
		&AcknowledgmentModel{},
		&AnnouncementCommentModel{},
		&DistributionModel{},
		&AttachmentModel{},
		&TemplateModel{},

		&JobPostingModel{},
		&JobApplicationModel{},

		&PolicyModel{},
		&StrategicPlanModel{},

		&StaffMemberModel{},
		&LeadershipModel{},

		&VisitDepartmentModel{},
		&VisitRequestModel{},

		&NewsPostModel{},

		&PartnerModel{},
		&AffiliateModel{},
		&EventModel{},
		&MediaFileModel{},
	}
}
