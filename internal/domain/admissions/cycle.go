// Package admissions models admission cycles, programme requirements and
// the applicants moving through review.
package admissions

import (
	"time"

	"campus/internal/domain/shared"
)

type CycleDetails struct {
	Year                   int
	StartDate              time.Time
	EndDate                time.Time
	ApplicationDeadline    time.Time
	ResultAnnouncementDate *time.Time
	IsActive               bool
	Description            string
}

func (c CycleDetails) validate() error {
	if c.Year < 1900 || c.Year > 9999 {
		return shared.NewFieldError("year", "year must be a four digit year")
	}
	if c.StartDate.IsZero() {
		return shared.NewFieldError("start_date", "start_date is required")
	}
	if c.EndDate.IsZero() {
		return shared.NewFieldError("end_date", "end_date is required")
	}
	if c.ApplicationDeadline.IsZero() {
		return shared.NewFieldError("application_deadline", "application_deadline is required")
	}
	if c.EndDate.Before(c.StartDate) {
		return shared.NewFieldError("end_date", "end_date must not be before start_date")
	}
	return nil
}

// AdmissionCycle is one intake year. Deleting it detaches its applicants.
type AdmissionCycle struct {
	shared.Base
	details CycleDetails
}

func NewAdmissionCycle(details CycleDetails) (*AdmissionCycle, error) {
	if err := details.validate(); err != nil {
		return nil, err
	}
	return &AdmissionCycle{Base: shared.NewBase(), details: details}, nil
}

func ReconstructAdmissionCycle(id uint, details CycleDetails, createdAt time.Time) *AdmissionCycle {
	return &AdmissionCycle{Base: shared.ReconstructBase(id, createdAt, createdAt), details: details}
}

func (c *AdmissionCycle) Details() CycleDetails {
	return c.details
}

func (c *AdmissionCycle) Update(details CycleDetails) error {
	if err := details.validate(); err != nil {
		return err
	}
	c.details = details
	c.Touch()
	return nil
}

// AcceptsApplications reports whether today falls inside the cycle up to
// its deadline.
func (c *AdmissionCycle) AcceptsApplications(today time.Time) bool {
	return c.details.IsActive && !today.Before(c.details.StartDate) && !today.After(c.details.ApplicationDeadline)
}
