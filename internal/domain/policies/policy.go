// Package policies models institutional policies and strategic plans.
package policies

import (
	"fmt"
	"strings"
	"time"

	vo "campus/internal/domain/policies/valueobjects"
	"campus/internal/domain/shared"
)

type PolicyDetails struct {
	Title         string
	Slug          string
	Category      vo.PolicyCategory
	Description   string
	Content       string
	DocumentPath  string
	PublishedDate time.Time
	IsActive      bool
}

func (p PolicyDetails) normalize() (PolicyDetails, error) {
	p.Title = strings.TrimSpace(p.Title)
	if err := shared.FirstError(
		shared.Required("title", p.Title),
		shared.MaxLength("title", p.Title, 255),
		shared.Required("content", p.Content),
		shared.MaxLength("document_path", p.DocumentPath, 255),
	); err != nil {
		return p, err
	}
	if p.Category == "" {
		p.Category = vo.CategoryOther
	}
	if !p.Category.IsValid() {
		return p, shared.NewFieldError("category", "invalid policy category: %s", p.Category)
	}
	if p.Slug == "" {
		p.Slug = shared.Slugify(p.Title)
	}
	return p, nil
}

type Policy struct {
	shared.Base
	details PolicyDetails
}

func NewPolicy(details PolicyDetails, today time.Time) (*Policy, error) {
	if details.PublishedDate.IsZero() {
		details.PublishedDate = today
	}
	d, err := details.normalize()
	if err != nil {
		return nil, err
	}
	return &Policy{Base: shared.NewBase(), details: d}, nil
}

func ReconstructPolicy(id uint, details PolicyDetails, createdAt, updatedAt time.Time) *Policy {
	return &Policy{Base: shared.ReconstructBase(id, createdAt, updatedAt), details: details}
}

func (p *Policy) Details() PolicyDetails {
	return p.details
}

func (p *Policy) Update(details PolicyDetails) error {
	if details.PublishedDate.IsZero() {
		details.PublishedDate = p.details.PublishedDate
	}
	normalized, err := details.normalize()
	if err != nil {
		return err
	}
	p.details = normalized
	p.Touch()
	return nil
}

const DefaultPlanDuration = 5

type PlanDetails struct {
	Title          string
	Slug           string
	Year           int
	DurationYears  int
	Description    string
	Vision         string
	Mission        string
	StrategicGoals string
	DocumentPath   string
	IsActive       bool
}

func (p PlanDetails) normalize() (PlanDetails, error) {
	p.Title = strings.TrimSpace(p.Title)
	if err := shared.FirstError(
		shared.Required("title", p.Title),
		shared.MaxLength("title", p.Title, 255),
	); err != nil {
		return p, err
	}
	if p.Year < 1900 || p.Year > 9999 {
		return p, shared.NewFieldError("year", "year must be a four digit year")
	}
	if p.DurationYears == 0 {
		p.DurationYears = DefaultPlanDuration
	}
	if p.DurationYears < 0 {
		return p, shared.NewFieldError("duration_years", "duration_years must be greater than 0")
	}
	if p.Slug == "" {
		p.Slug = shared.Slugify(p.Title)
	}
	return p, nil
}

// StrategicPlan is unique per (year, slug).
type StrategicPlan struct {
	shared.Base
	details PlanDetails
}

func NewStrategicPlan(details PlanDetails) (*StrategicPlan, error) {
	d, err := details.normalize()
	if err != nil {
		return nil, err
	}
	return &StrategicPlan{Base: shared.NewBase(), details: d}, nil
}

func ReconstructStrategicPlan(id uint, details PlanDetails, createdAt, updatedAt time.Time) *StrategicPlan {
	return &StrategicPlan{Base: shared.ReconstructBase(id, createdAt, updatedAt), details: details}
}

func (p *StrategicPlan) Details() PlanDetails {
	return p.details
}

func (p *StrategicPlan) Update(details PlanDetails) error {
	normalized, err := details.normalize()
	if err != nil {
		return err
	}
	p.details = normalized
	p.Touch()
	return nil
}

// Period renders the covered years, e.g. "2024-2028".
func (p *StrategicPlan) Period() string {
	return fmt.Sprintf("%d-%d", p.details.Year, p.details.Year+p.details.DurationYears-1)
}
