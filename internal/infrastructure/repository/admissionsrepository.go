package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"campus/internal/domain/admissions"
	"campus/internal/infrastructure/persistence/mappers"
	"campus/internal/infrastructure/persistence/models"
	"campus/internal/shared/db"
	"campus/internal/shared/logger"
)

var (
	cycleSortColumns       = map[string]bool{"id": true, "year": true, "start_date": true, "application_deadline": true}
	requirementSortColumns = map[string]bool{"id": true, "title": true, "created_at": true}
	applicantSortColumns   = map[string]bool{
		"id": true, "last_name": true, "email": true, "status": true, "gpa": true, "applied_at": true,
	}
)

type AdmissionCycleRepository struct {
	*table[*admissions.AdmissionCycle, models.AdmissionCycleModel]
}

var _ admissions.AdmissionCycleRepository = (*AdmissionCycleRepository)(nil)

func NewAdmissionCycleRepository(gdb *gorm.DB, logger logger.Interface) *AdmissionCycleRepository {
	return &AdmissionCycleRepository{&table[*admissions.AdmissionCycle, models.AdmissionCycleModel]{
		db:       gdb,
		logger:   logger,
		label:    "admission cycle",
		toModel:  mappers.CycleToModel,
		toDomain: mappers.CycleToDomain,
		modelID:  func(m *models.AdmissionCycleModel) uint { return m.ID },
		unique:   []string{"year"},
		onDelete: cycleRules(),
	}}
}

func (r *AdmissionCycleRepository) List(ctx context.Context, filter admissions.CycleFilter) ([]*admissions.AdmissionCycle, int64, error) {
	return r.page(ctx, filter.PageFilter,
		filter.OrderClause(cycleSortColumns, "year DESC"),
		db.WhereIf(filter.ActiveOnly, "is_active = ?", true),
	)
}

type RequirementRepository struct {
	*table[*admissions.Requirement, models.RequirementModel]
}

var _ admissions.RequirementRepository = (*RequirementRepository)(nil)

func NewRequirementRepository(gdb *gorm.DB, logger logger.Interface) *RequirementRepository {
	return &RequirementRepository{&table[*admissions.Requirement, models.RequirementModel]{
		db:       gdb,
		logger:   logger,
		label:    "admission requirement",
		toModel:  mappers.RequirementToModel,
		toDomain: mappers.RequirementToDomain,
		modelID:  func(m *models.RequirementModel) uint { return m.ID },
		onDelete: requirementRules(),
	}}
}

func (r *RequirementRepository) List(ctx context.Context, filter admissions.RequirementFilter) ([]*admissions.Requirement, int64, error) {
	return r.page(ctx, filter.PageFilter,
		filter.OrderClause(requirementSortColumns, "id ASC"),
		db.WhereIf(filter.ProgramID != 0, "program_id = ?", filter.ProgramID),
	)
}

type ApplicantRepository struct {
	*table[*admissions.Applicant, models.ApplicantModel]
}

var _ admissions.ApplicantRepository = (*ApplicantRepository)(nil)

func NewApplicantRepository(gdb *gorm.DB, logger logger.Interface) *ApplicantRepository {
	return &ApplicantRepository{&table[*admissions.Applicant, models.ApplicantModel]{
		db:       gdb,
		logger:   logger,
		label:    "applicant",
		toModel:  mappers.ApplicantToModel,
		toDomain: mappers.ApplicantToDomain,
		modelID:  func(m *models.ApplicantModel) uint { return m.ID },
		unique:   []string{"email"},
		onDelete: applicantRules(),
	}}
}

func (r *ApplicantRepository) List(ctx context.Context, filter admissions.ApplicantFilter) ([]*admissions.Applicant, int64, error) {
	return r.page(ctx, filter.PageFilter,
		filter.OrderClause(applicantSortColumns, "applied_at DESC"),
		db.WhereIf(filter.Status != "", "status = ?", filter.Status),
		db.WhereIf(filter.CycleID != 0, "cycle_id = ?", filter.CycleID),
		db.WhereIf(filter.ProgramID != 0, "program_id = ?", filter.ProgramID),
		search(filter.Search, "first_name", "last_name", "email"),
	)
}

func (r *ApplicantRepository) ExistsByEmail(ctx context.Context, email string, excludeID uint) (bool, error) {
	return r.existsExcept(ctx, "email", strings.ToLower(strings.TrimSpace(email)), excludeID)
}

type ApplicantDocumentRepository struct {
	*table[*admissions.ApplicantDocument, models.ApplicantDocumentModel]
}

var _ admissions.ApplicantDocumentRepository = (*ApplicantDocumentRepository)(nil)

func NewApplicantDocumentRepository(gdb *gorm.DB, logger logger.Interface) *ApplicantDocumentRepository {
	return &ApplicantDocumentRepository{&table[*admissions.ApplicantDocument, models.ApplicantDocumentModel]{
		db:       gdb,
		logger:   logger,
		label:    "applicant document",
		toModel:  mappers.DocumentToModel,
		toDomain: mappers.DocumentToDomain,
		modelID:  func(m *models.ApplicantDocumentModel) uint { return m.ID },
	}}
}

func (r *ApplicantDocumentRepository) ListByApplicant(ctx context.Context, applicantID uint) ([]*admissions.ApplicantDocument, error) {
	return r.all(ctx, "uploaded_at ASC, id ASC", where("applicant_id = ?", applicantID))
}
