// Package academics models departments, their programmes and courses, and
// the faculty who teach them.
package academics

import (
	"strings"
	"time"

	"campus/internal/domain/shared"
)

type DepartmentDetails struct {
	Name             string
	Slug             string
	Description      string
	HeadOfDepartment string
	Email            string
	Phone            string
	OfficeLocation   string
}

func (d DepartmentDetails) normalize() (DepartmentDetails, error) {
	d.Name = strings.TrimSpace(d.Name)
	if err := shared.FirstError(
		shared.Required("name", d.Name),
		shared.MaxLength("name", d.Name, 200),
	); err != nil {
		return d, err
	}
	if d.Slug == "" {
		d.Slug = shared.Slugify(d.Name)
	}
	email, err := shared.OptionalEmail("email", d.Email)
	if err != nil {
		return d, err
	}
	d.Email = email
	return d, nil
}

// Department owns programmes. Deleting it removes its programmes and their
// courses and requirements, and detaches its faculty.
type Department struct {
	shared.Base
	details DepartmentDetails
}

func NewDepartment(details DepartmentDetails) (*Department, error) {
	d, err := details.normalize()
	if err != nil {
		return nil, err
	}
	return &Department{Base: shared.NewBase(), details: d}, nil
}

func ReconstructDepartment(id uint, details DepartmentDetails, createdAt, updatedAt time.Time) *Department {
	return &Department{Base: shared.ReconstructBase(id, createdAt, updatedAt), details: details}
}

func (d *Department) Details() DepartmentDetails {
	return d.details
}

func (d *Department) Update(details DepartmentDetails) error {
	normalized, err := details.normalize()
	if err != nil {
		return err
	}
	d.details = normalized
	d.Touch()
	return nil
}
