package admissions

import (
	"strings"
	"time"

	"campus/internal/domain/shared"
)

type RequirementDetails struct {
	ProgramID    uint
	Title        string
	Description  string
	DocumentType string
	IsMandatory  bool
}

func (r RequirementDetails) normalize() (RequirementDetails, error) {
	r.Title = strings.TrimSpace(r.Title)
	if r.ProgramID == 0 {
		return r, shared.NewFieldError("program_id", "program_id is required")
	}
	return r, shared.FirstError(
		shared.Required("title", r.Title),
		shared.MaxLength("title", r.Title, 255),
		shared.Required("description", r.Description),
		shared.MaxLength("document_type", r.DocumentType, 100),
	)
}

// Requirement is a document a programme asks applicants for.
type Requirement struct {
	shared.Base
	details RequirementDetails
}

func NewRequirement(details RequirementDetails) (*Requirement, error) {
	r, err := details.normalize()
	if err != nil {
		return nil, err
	}
	return &Requirement{Base: shared.NewBase(), details: r}, nil
}

func ReconstructRequirement(id uint, details RequirementDetails, createdAt time.Time) *Requirement {
	return &Requirement{Base: shared.ReconstructBase(id, createdAt, createdAt), details: details}
}

func (r *Requirement) Details() RequirementDetails {
	return r.details
}

func (r *Requirement) Update(details RequirementDetails) error {
	normalized, err := details.normalize()
	if err != nil {
		return err
	}
	r.details = normalized
	r.Touch()
	return nil
}
