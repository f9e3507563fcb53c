package mappers

import (
	"campus/internal/domain/academics"
	vo "campus/internal/domain/academics/valueobjects"
	"campus/internal/infrastructure/persistence/models"
)

func DepartmentToModel(d *academics.Department) *models.DepartmentModel {
	det := d.Details()
	return &models.DepartmentModel{
		ID:               d.ID(),
		Name:             det.Name,
		Slug:             det.Slug,
		Description:      det.Description,
		HeadOfDepartment: det.HeadOfDepartment,
		Email:            det.Email,
		Phone:            det.Phone,
		OfficeLocation:   det.OfficeLocation,
		CreatedAt:        d.CreatedAt(),
		UpdatedAt:        d.UpdatedAt(),
	}
}

func DepartmentToDomain(m *models.DepartmentModel) (*academics.Department, error) {
	return academics.ReconstructDepartment(m.ID, academics.DepartmentDetails{
		Name:             m.Name,
		Slug:             m.Slug,
		Description:      m.Description,
		HeadOfDepartment: m.HeadOfDepartment,
		Email:            m.Email,
		Phone:            m.Phone,
		OfficeLocation:   m.OfficeLocation,
	}, m.CreatedAt, m.UpdatedAt), nil
}

func ProgramToModel(p *academics.Program) *models.ProgramModel {
	det := p.Details()
	return &models.ProgramModel{
		ID:                 p.ID(),
		DepartmentID:       det.DepartmentID,
		Name:               det.Name,
		Slug:               det.Slug,
		Level:              det.Level.String(),
		Description:        det.Description,
		DurationMonths:     det.DurationMonths,
		TuitionFeeCents:    det.TuitionFeeCents,
		EntryRequirements:  det.EntryRequirements,
		CareerProspects:    det.CareerProspects,
		ProgramCoordinator: det.ProgramCoordinator,
		IsActive:           det.IsActive,
		CreatedAt:          p.CreatedAt(),
		UpdatedAt:          p.UpdatedAt(),
	}
}

func ProgramToDomain(m *models.ProgramModel) (*academics.Program, error) {
	return academics.ReconstructProgram(m.ID, academics.ProgramDetails{
		DepartmentID:       m.DepartmentID,
		Name:               m.Name,
		Slug:               m.Slug,
		Level:              vo.ProgramLevel(m.Level),
		Description:        m.Description,
		DurationMonths:     m.DurationMonths,
		TuitionFeeCents:    m.TuitionFeeCents,
		EntryRequirements:  m.EntryRequirements,
		CareerProspects:    m.CareerProspects,
		ProgramCoordinator: m.ProgramCoordinator,
		IsActive:           m.IsActive,
	}, m.CreatedAt, m.UpdatedAt), nil
}

func CourseToModel(c *academics.Course) *models.CourseModel {
	det := c.Details()
	return &models.CourseModel{
		ID:          c.ID(),
		ProgramID:   det.ProgramID,
		Code:        det.Code,
		Title:       det.Title,
		Description: det.Description,
		Credits:     det.Credits,
		Semester:    det.Semester,
		Instructor:  det.Instructor,
		IsRequired:  det.IsRequired,
		CreatedAt:   c.CreatedAt(),
		UpdatedAt:   c.UpdatedAt(),
	}
}

func CourseToDomain(m *models.CourseModel) (*academics.Course, error) {
	return academics.ReconstructCourse(m.ID, academics.CourseDetails{
		ProgramID:   m.ProgramID,
		Code:        m.Code,
		Title:       m.Title,
		Description: m.Description,
		Credits:     m.Credits,
		Semester:    m.Semester,
		Instructor:  m.Instructor,
		IsRequired:  m.IsRequired,
	}, m.CreatedAt, m.UpdatedAt), nil
}

func FacultyToModel(f *academics.Faculty) *models.FacultyModel {
	det := f.Details()
	return &models.FacultyModel{
		ID:             f.ID(),
		FullName:       det.FullName,
		DepartmentID:   det.DepartmentID,
		Title:          det.Title,
		Email:          det.Email,
		Phone:          det.Phone,
		OfficeRoom:     det.OfficeRoom,
		Specialization: det.Specialization,
		Bio:            det.Bio,
		Publications:   det.Publications,
		CreatedAt:      f.CreatedAt(),
		UpdatedAt:      f.UpdatedAt(),
	}
}

func FacultyToDomain(m *models.FacultyModel) (*academics.Faculty, error) {
	return academics.ReconstructFaculty(m.ID, academics.FacultyDetails{
		FullName:       m.FullName,
		DepartmentID:   m.DepartmentID,
		Title:          m.Title,
		Email:          m.Email,
		Phone:          m.Phone,
		OfficeRoom:     m.OfficeRoom,
		Specialization: m.Specialization,
		Bio:            m.Bio,
		Publications:   m.Publications,
	}, m.CreatedAt, m.UpdatedAt), nil
}
