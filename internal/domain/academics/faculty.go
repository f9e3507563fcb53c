package academics

import (
	"strings"
	"time"

	"campus/internal/domain/shared"
)

type FacultyDetails struct {
	FullName       string
	DepartmentID   *uint
	Title          string
	Email          string
	Phone          string
	OfficeRoom     string
	Specialization string
	Bio            string
	Publications   string
}

func (f FacultyDetails) normalize() (FacultyDetails, error) {
	f.FullName = strings.TrimSpace(f.FullName)
	if err := shared.FirstError(
		shared.Required("full_name", f.FullName),
		shared.MaxLength("full_name", f.FullName, 200),
	); err != nil {
		return f, err
	}
	email, err := shared.NormalizeEmail("email", f.Email)
	if err != nil {
		return f, err
	}
	f.Email = email
	if f.DepartmentID != nil && *f.DepartmentID == 0 {
		f.DepartmentID = nil
	}
	return f, nil
}

// Faculty is a member of teaching staff. The department link is cleared when
// the department is deleted.
type Faculty struct {
	shared.Base
	details FacultyDetails
}

func NewFaculty(details FacultyDetails) (*Faculty, error) {
	f, err := details.normalize()
	if err != nil {
		return nil, err
	}
	return &Faculty{Base: shared.NewBase(), details: f}, nil
}

func ReconstructFaculty(id uint, details FacultyDetails, createdAt, updatedAt time.Time) *Faculty {
	return &Faculty{Base: shared.ReconstructBase(id, createdAt, updatedAt), details: details}
}

func (f *Faculty) Details() FacultyDetails {
	return f.details
}

func (f *Faculty) Update(details FacultyDetails) error {
	normalized, err := details.normalize()
	if err != nil {
		return err
	}
	f.details = normalized
	f.Touch()
	return nil
}
