package admissions

import (
	"context"

	"campus/internal/domain/shared"
	"campus/internal/shared/query"
)

type CycleFilter struct {
	query.BaseFilter
	ActiveOnly bool
}

type RequirementFilter struct {
	query.BaseFilter
	ProgramID uint
}

type ApplicantFilter struct {
	query.BaseFilter
	Status    string
	CycleID   uint
	ProgramID uint
	Search    string
}

// AdmissionCycleRepository deletes clear applicant.cycle_id.
type AdmissionCycleRepository interface {
	shared.CRUD[*AdmissionCycle]
	List(ctx context.Context, filter CycleFilter) ([]*AdmissionCycle, int64, error)
}

// RequirementRepository deletes clear document.requirement_id.
type RequirementRepository interface {
	shared.CRUD[*Requirement]
	List(ctx context.Context, filter RequirementFilter) ([]*Requirement, int64, error)
}

// ApplicantRepository deletes cascade to documents.
type ApplicantRepository interface {
	shared.CRUD[*Applicant]
	List(ctx context.Context, filter ApplicantFilter) ([]*Applicant, int64, error)
	ExistsByEmail(ctx context.Context, email string, excludeID uint) (bool, error)
}

type ApplicantDocumentRepository interface {
	Create(ctx context.Context, doc *ApplicantDocument) error
	GetByID(ctx context.Context, id uint) (*ApplicantDocument, error)
	Delete(ctx context.Context, id uint) error
	ListByApplicant(ctx context.Context, applicantID uint) ([]*ApplicantDocument, error)
}
