// Package maintenance models facility maintenance: teams and technicians,
// requests raised by staff, the work orders scheduled against them and the
// completion report that closes a work order.
package maintenance

import (
	"strings"
	"time"

	vo "campus/internal/domain/maintenance/valueobjects"
	"campus/internal/domain/shared"
)

type TeamDetails struct {
	Name        string
	Description string
	HeadID      *uint
	Phone       string
	Email       string
	IsActive    bool
}

func (t TeamDetails) normalize() (TeamDetails, error) {
	t.Name = strings.TrimSpace(t.Name)
	if err := shared.FirstError(
		shared.Required("name", t.Name),
		shared.MaxLength("name", t.Name, 200),
	); err != nil {
		return t, err
	}
	email, err := shared.OptionalEmail("email", t.Email)
	t.Email = email
	return t, err
}

// MaintenanceTeam groups technicians. Deleting it detaches its members.
type MaintenanceTeam struct {
	shared.Base
	details TeamDetails
}

func NewMaintenanceTeam(details TeamDetails) (*MaintenanceTeam, error) {
	d, err := details.normalize()
	if err != nil {
		return nil, err
	}
	return &MaintenanceTeam{Base: shared.NewBase(), details: d}, nil
}

func ReconstructMaintenanceTeam(id uint, details TeamDetails, createdAt, updatedAt time.Time) *MaintenanceTeam {
	return &MaintenanceTeam{Base: shared.ReconstructBase(id, createdAt, updatedAt), details: details}
}

func (t *MaintenanceTeam) Details() TeamDetails {
	return t.details
}

func (t *MaintenanceTeam) Update(details TeamDetails) error {
	normalized, err := details.normalize()
	if err != nil {
		return err
	}
	t.details = normalized
	t.Touch()
	return nil
}

// License states reported for technicians.
const (
	LicenseNotApplicable = "n/a"
	LicenseExpired       = "expired"
	LicenseValid         = "valid"
)

type TechnicianDetails struct {
	UserID         uint
	TeamID         *uint
	Specialization vo.Specialization
	LicenseNumber  string
	LicenseExpiry  *time.Time
	Phone          string
	IsActive       bool
}

func (t TechnicianDetails) normalize() (TechnicianDetails, error) {
	if t.UserID == 0 {
		return t, shared.NewFieldError("user_id", "user_id is required")
	}
	if t.Specialization == "" {
		t.Specialization = vo.SpecializationGeneral
	}
	if !t.Specialization.IsValid() {
		return t, shared.NewFieldError("specialization", "invalid specialization: %s", t.Specialization)
	}
	return t, shared.MaxLength("license_number", t.LicenseNumber, 100)
}

type Technician struct {
	shared.Base
	details TechnicianDetails
}

func NewTechnician(details TechnicianDetails) (*Technician, error) {
	d, err := details.normalize()
	if err != nil {
		return nil, err
	}
	return &Technician{Base: shared.NewBase(), details: d}, nil
}

func ReconstructTechnician(id uint, details TechnicianDetails, createdAt, updatedAt time.Time) *Technician {
	return &Technician{Base: shared.ReconstructBase(id, createdAt, updatedAt), details: details}
}

func (t *Technician) Details() TechnicianDetails {
	return t.details
}

func (t *Technician) Update(details TechnicianDetails) error {
	normalized, err := details.normalize()
	if err != nil {
		return err
	}
	t.details = normalized
	t.Touch()
	return nil
}

// LicenseStatus compares the expiry date with the given day.
func (t *Technician) LicenseStatus(today time.Time) string {
	switch {
	case t.details.LicenseExpiry == nil:
		return LicenseNotApplicable
	case t.details.LicenseExpiry.Before(today):
		return LicenseExpired
	default:
		return LicenseValid
	}
}
