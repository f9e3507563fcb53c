package academics

import (
	"strings"
	"time"

	vo "campus/internal/domain/academics/valueobjects"
	"campus/internal/domain/shared"
)

type ProgramDetails struct {
	DepartmentID       uint
	Name               string
	Slug               string
	Level              vo.ProgramLevel
	Description        string
	DurationMonths     int
	TuitionFeeCents    *int64
	EntryRequirements  string
	CareerProspects    string
	ProgramCoordinator string
	IsActive           bool
}

func (p ProgramDetails) normalize() (ProgramDetails, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.DepartmentID == 0 {
		return p, shared.NewFieldError("department_id", "department_id is required")
	}
	if err := shared.FirstError(
		shared.Required("name", p.Name),
		shared.MaxLength("name", p.Name, 200),
		shared.Required("description", p.Description),
	); err != nil {
		return p, err
	}
	if !p.Level.IsValid() {
		return p, shared.NewFieldError("level", "invalid program level: %s", p.Level)
	}
	if p.DurationMonths <= 0 {
		return p, shared.NewFieldError("duration_months", "duration_months must be greater than 0")
	}
	if p.TuitionFeeCents != nil && *p.TuitionFeeCents < 0 {
		return p, shared.NewFieldError("tuition_fee_cents", "tuition_fee_cents must not be negative")
	}
	if p.Slug == "" {
		p.Slug = shared.Slugify(p.Name)
	}
	return p, nil
}

type Program struct {
	shared.Base
	details ProgramDetails
}

func NewProgram(details ProgramDetails) (*Program, error) {
	p, err := details.normalize()
	if err != nil {
		return nil, err
	}
	return &Program{Base: shared.NewBase(), details: p}, nil
}

func ReconstructProgram(id uint, details ProgramDetails, createdAt, updatedAt time.Time) *Program {
	return &Program{Base: shared.ReconstructBase(id, createdAt, updatedAt), details: details}
}

func (p *Program) Details() ProgramDetails {
	return p.details
}

func (p *Program) Update(details ProgramDetails) error {
	normalized, err := details.normalize()
	if err != nil {
		return err
	}
	p.details = normalized
	p.Touch()
	return nil
}
