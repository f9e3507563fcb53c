// Package admissions wires admission cycles, requirements, applicants and
// their documents.
package admissions

import (
	"context"
	"strings"

	"campus/internal/application/common"
	"campus/internal/application/common/crud"
	"campus/internal/application/common/lifecycle"
	"campus/internal/domain/admissions"
	vo "campus/internal/domain/admissions/valueobjects"
	"campus/internal/domain/shared"
	"campus/internal/shared/db"
	"campus/internal/shared/logger"
)

const EntityApplicant = "applicant"

type (
	CycleService       = crud.Service[*admissions.AdmissionCycle, admissions.CycleDetails, admissions.CycleFilter]
	RequirementService = crud.Service[*admissions.Requirement, admissions.RequirementDetails, admissions.RequirementFilter]
	ApplicantService   = crud.Service[*admissions.Applicant, admissions.ApplicantDetails, admissions.ApplicantFilter]
)

type Service struct {
	Cycles          *CycleService
	Requirements    *RequirementService
	Applicants      *ApplicantService
	ApplicantStatus *lifecycle.ChangeStatusUseCase[*admissions.Applicant]

	applicants admissions.ApplicantRepository
	documents  admissions.ApplicantDocumentRepository
	tx         db.Transactor
	logger     logger.Interface
}

type Repositories struct {
	Cycles       admissions.AdmissionCycleRepository
	Requirements admissions.RequirementRepository
	Applicants   admissions.ApplicantRepository
	Documents    admissions.ApplicantDocumentRepository
}

func NewService(repos Repositories, tx db.Transactor, journal *lifecycle.Journal, log logger.Interface) *Service {
	log = log.Named("admissions")
	s := &Service{
		applicants: repos.Applicants,
		documents:  repos.Documents,
		tx:         tx,
		logger:     log,
	}

	s.Cycles = crud.NewService[*admissions.AdmissionCycle, admissions.CycleDetails, admissions.CycleFilter](
		"admission cycle", repos.Cycles,
		func(d admissions.CycleDetails, _ uint) (*admissions.AdmissionCycle, error) { return admissions.NewAdmissionCycle(d) },
		tx, log)
	s.Requirements = crud.NewService[*admissions.Requirement, admissions.RequirementDetails, admissions.RequirementFilter](
		"admission requirement", repos.Requirements,
		func(d admissions.RequirementDetails, _ uint) (*admissions.Requirement, error) { return admissions.NewRequirement(d) },
		tx, log)
	s.Applicants = crud.NewService[*admissions.Applicant, admissions.ApplicantDetails, admissions.ApplicantFilter](
		EntityApplicant, repos.Applicants,
		func(d admissions.ApplicantDetails, _ uint) (*admissions.Applicant, error) { return admissions.NewApplicant(d) },
		tx, log).WithPrepare(s.checkApplicantEmail)

	s.ApplicantStatus = lifecycle.NewChangeStatusUseCase(ApplicantLifecycle(), repos.Applicants, tx, journal, log)
	return s
}

// ApplicantLifecycle lets any applicant status follow any other.
func ApplicantLifecycle() lifecycle.Spec[*admissions.Applicant] {
	return lifecycle.Spec[*admissions.Applicant]{
		EntityType: EntityApplicant,
		Valid:      vo.IsValidApplicantStatus,
		Current:    func(a *admissions.Applicant) string { return a.Status().String() },
		Apply: func(a *admissions.Applicant, status, _ string, _ uint) error {
			return a.ChangeStatus(vo.ApplicantStatus(status))
		},
	}
}

// checkApplicantEmail reports a duplicate email as a field error before
// the unique index would reject it.
func (s *Service) checkApplicantEmail(ctx context.Context, id uint, d admissions.ApplicantDetails) (admissions.ApplicantDetails, error) {
	email := strings.ToLower(strings.TrimSpace(d.Email))
	if email == "" {
		return d, nil
	}
	exists, err := s.applicants.ExistsByEmail(ctx, email, id)
	if err != nil {
		return d, common.PersistenceError(err, "failed to check applicant email")
	}
	if exists {
		return d, shared.NewFieldError("email", "applicant with this email already exists")
	}
	return d, nil
}

// AddDocument stores a document reference and marks the applicant's
// documents as uploaded in the same transaction.
func (s *Service) AddDocument(ctx context.Context, details admissions.DocumentDetails) (*admissions.ApplicantDocument, error) {
	var doc *admissions.ApplicantDocument
	err := s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		applicant, err := s.applicants.GetByID(ctx, details.ApplicantID)
		if err != nil {
			return err
		}
		d, err := admissions.NewApplicantDocument(details)
		if err != nil {
			return common.DomainError(err)
		}
		if err := s.documents.Create(ctx, d); err != nil {
			return err
		}
		if !applicant.DocumentsUploaded() {
			applicant.MarkDocumentsUploaded()
			if err := s.applicants.Update(ctx, applicant); err != nil {
				return err
			}
		}
		doc = d
		return nil
	})
	if err != nil {
		s.logger.Warnw("failed to add applicant document", "applicant_id", details.ApplicantID, "error", err)
		return nil, common.PersistenceError(err, "failed to add applicant document")
	}

	s.logger.Infow("applicant document added", "applicant_id", details.ApplicantID, "document_id", doc.ID())
	return doc, nil
}

func (s *Service) ListDocuments(ctx context.Context, applicantID uint) ([]*admissions.ApplicantDocument, error) {
	if _, err := s.applicants.GetByID(ctx, applicantID); err != nil {
		return nil, common.PersistenceError(err, "failed to get applicant")
	}
	docs, err := s.documents.ListByApplicant(ctx, applicantID)
	if err != nil {
		return nil, common.PersistenceError(err, "failed to list applicant documents")
	}
	return docs, nil
}

func (s *Service) DeleteDocument(ctx context.Context, id uint) error {
	if err := s.documents.Delete(ctx, id); err != nil {
		return common.PersistenceError(err, "failed to delete applicant document")
	}
	return nil
}
