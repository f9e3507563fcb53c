package admissions

import (
	"fmt"
	"strings"
	"time"

	vo "campus/internal/domain/admissions/valueobjects"
	"campus/internal/domain/shared"
)

type ApplicantDetails struct {
	CycleID     *uint
	ProgramID   *uint
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	DateOfBirth time.Time
	Nationality string
	GPA         *float64
	Notes       string
}

func (a ApplicantDetails) normalize() (ApplicantDetails, error) {
	a.FirstName = strings.TrimSpace(a.FirstName)
	a.LastName = strings.TrimSpace(a.LastName)
	a.Phone = strings.TrimSpace(a.Phone)
	if err := shared.FirstError(
		shared.Required("first_name", a.FirstName),
		shared.MaxLength("first_name", a.FirstName, 255),
		shared.Required("last_name", a.LastName),
		shared.MaxLength("last_name", a.LastName, 255),
		shared.Required("phone", a.Phone),
		shared.MaxLength("phone", a.Phone, 20),
		shared.MaxLength("nationality", a.Nationality, 100),
	); err != nil {
		return a, err
	}
	email, err := shared.NormalizeEmail("email", a.Email)
	if err != nil {
		return a, err
	}
	a.Email = email
	if a.DateOfBirth.IsZero() {
		return a, shared.NewFieldError("date_of_birth", "date_of_birth is required")
	}
	if a.GPA != nil && (*a.GPA < 0 || *a.GPA > 5) {
		return a, shared.NewFieldError("gpa", "gpa must be between 0 and 5")
	}
	return a, nil
}

// Applicant is a candidate for admission. The email is unique across all
// applicants.
type Applicant struct {
	shared.Base
	details           ApplicantDetails
	status            vo.ApplicantStatus
	documentsUploaded bool
}

func NewApplicant(details ApplicantDetails) (*Applicant, error) {
	d, err := details.normalize()
	if err != nil {
		return nil, err
	}
	return &Applicant{
		Base:    shared.NewBase(),
		details: d,
		status:  vo.ApplicantStatusDraft,
	}, nil
}

func ReconstructApplicant(
	id uint,
	details ApplicantDetails,
	status vo.ApplicantStatus,
	documentsUploaded bool,
	appliedAt, updatedAt time.Time,
) (*Applicant, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid applicant status: %s", status)
	}
	return &Applicant{
		Base:              shared.ReconstructBase(id, appliedAt, updatedAt),
		details:           details,
		status:            status,
		documentsUploaded: documentsUploaded,
	}, nil
}

func (a *Applicant) Details() ApplicantDetails  { return a.details }
func (a *Applicant) Status() vo.ApplicantStatus { return a.status }
func (a *Applicant) DocumentsUploaded() bool    { return a.documentsUploaded }
func (a *Applicant) AppliedAt() time.Time       { return a.CreatedAt() }
func (a *Applicant) FullName() string           { return a.details.FirstName + " " + a.details.LastName }

func (a *Applicant) Update(details ApplicantDetails) error {
	normalized, err := details.normalize()
	if err != nil {
		return err
	}
	a.details = normalized
	a.Touch()
	return nil
}

// ChangeStatus assigns any valid status regardless of the current one.
func (a *Applicant) ChangeStatus(status vo.ApplicantStatus) error {
	if !status.IsValid() {
		return shared.NewFieldError("status", "invalid applicant status: %s", status)
	}
	a.status = status
	a.Touch()
	return nil
}

func (a *Applicant) MarkDocumentsUploaded() {
	if a.documentsUploaded {
		return
	}
	a.documentsUploaded = true
	a.Touch()
}
