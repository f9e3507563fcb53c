package academics

import (
	"time"

	"campus/internal/domain/academics"
	vo "campus/internal/domain/academics/valueobjects"
)

type DepartmentRequest struct {
	Name             string `json:"name" binding:"required,max=200"`
	Slug             string `json:"slug" binding:"max=200"`
	Description      string `json:"description"`
	HeadOfDepartment string `json:"head_of_department" binding:"max=200"`
	Email            string `json:"email" binding:"omitempty,email"`
	Phone            string `json:"phone" binding:"max=30"`
	OfficeLocation   string `json:"office_location" binding:"max=200"`
}

type DepartmentResponse struct {
	ID               uint      `json:"id"`
	Name             string    `json:"name"`
	Slug             string    `json:"slug"`
	Description      string    `json:"description"`
	HeadOfDepartment string    `json:"head_of_department"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	OfficeLocation   string    `json:"office_location"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func departmentDetails(r DepartmentRequest) (academics.DepartmentDetails, error) {
	return academics.DepartmentDetails(r), nil
}

func departmentRequest(d academics.DepartmentDetails) DepartmentRequest {
	return DepartmentRequest(d)
}

func toDepartmentResponse(d *academics.Department) any {
	det := d.Details()
	return DepartmentResponse{
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

type ProgramRequest struct {
	DepartmentID       uint   `json:"department_id" binding:"required"`
	Name               string `json:"name" binding:"required,max=200"`
	Slug               string `json:"slug" binding:"max=200"`
	Level              string `json:"level" binding:"required,oneof=diploma bachelors masters phd"`
	Description        string `json:"description"`
	DurationMonths     int    `json:"duration_months" binding:"required,gt=0"`
	TuitionFeeCents    *int64 `json:"tuition_fee_cents" binding:"omitempty,gte=0"`
	EntryRequirements  string `json:"entry_requirements"`
	CareerProspects    string `json:"career_prospects"`
	ProgramCoordinator string `json:"program_coordinator" binding:"max=200"`
	IsActive           *bool  `json:"is_active"`
}

type ProgramResponse struct {
	ID                 uint      `json:"id"`
	DepartmentID       uint      `json:"department_id"`
	Name               string    `json:"name"`
	Slug               string    `json:"slug"`
	Level              string    `json:"level"`
	Description        string    `json:"description"`
	DurationMonths     int       `json:"duration_months"`
	TuitionFeeCents    *int64    `json:"tuition_fee_cents"`
	EntryRequirements  string    `json:"entry_requirements"`
	CareerProspects    string    `json:"career_prospects"`
	ProgramCoordinator string    `json:"program_coordinator"`
	IsActive           bool      `json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func programDetails(r ProgramRequest) (academics.ProgramDetails, error) {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return academics.ProgramDetails{
		DepartmentID:       r.DepartmentID,
		Name:               r.Name,
		Slug:               r.Slug,
		Level:              vo.ProgramLevel(r.Level),
		Description:        r.Description,
		DurationMonths:     r.DurationMonths,
		TuitionFeeCents:    r.TuitionFeeCents,
		EntryRequirements:  r.EntryRequirements,
		CareerProspects:    r.CareerProspects,
		ProgramCoordinator: r.ProgramCoordinator,
		IsActive:           active,
	}, nil
}

func programRequest(d academics.ProgramDetails) ProgramRequest {
	active := d.IsActive
	return ProgramRequest{
		DepartmentID:       d.DepartmentID,
		Name:               d.Name,
		Slug:               d.Slug,
		Level:              d.Level.String(),
		Description:        d.Description,
		DurationMonths:     d.DurationMonths,
		TuitionFeeCents:    d.TuitionFeeCents,
		EntryRequirements:  d.EntryRequirements,
		CareerProspects:    d.CareerProspects,
		ProgramCoordinator: d.ProgramCoordinator,
		IsActive:           &active,
	}
}

func toProgramResponse(p *academics.Program) any {
	det := p.Details()
	return ProgramResponse{
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

type CourseRequest struct {
	ProgramID   uint   `json:"program_id" binding:"required"`
	Code        string `json:"code" binding:"required,max=10"`
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description"`
	Credits     int    `json:"credits" binding:"gte=0"`
	Semester    int    `json:"semester" binding:"required,gt=0"`
	Instructor  string `json:"instructor" binding:"max=200"`
	IsRequired  bool   `json:"is_required"`
}

type CourseResponse struct {
	ID          uint      `json:"id"`
	ProgramID   uint      `json:"program_id"`
	Code        string    `json:"code"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Credits     int       `json:"credits"`
	Semester    int       `json:"semester"`
	Instructor  string    `json:"instructor"`
	IsRequired  bool      `json:"is_required"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func courseDetails(r CourseRequest) (academics.CourseDetails, error) {
	return academics.CourseDetails(r), nil
}

func courseRequest(d academics.CourseDetails) CourseRequest {
	return CourseRequest(d)
}

func toCourseResponse(c *academics.Course) any {
	det := c.Details()
	return CourseResponse{
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

type FacultyRequest struct {
	FullName       string `json:"full_name" binding:"required,max=200"`
	DepartmentID   *uint  `json:"department_id"`
	Title          string `json:"title" binding:"max=100"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone" binding:"max=30"`
	OfficeRoom     string `json:"office_room" binding:"max=50"`
	Specialization string `json:"specialization" binding:"max=200"`
	Bio            string `json:"bio"`
	Publications   string `json:"publications"`
}

type FacultyResponse struct {
	ID             uint      `json:"id"`
	FullName       string    `json:"full_name"`
	DepartmentID   *uint     `json:"department_id"`
	Title          string    `json:"title"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	OfficeRoom     string    `json:"office_room"`
	Specialization string    `json:"specialization"`
	Bio            string    `json:"bio"`
	Publications   string    `json:"publications"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func facultyDetails(r FacultyRequest) (academics.FacultyDetails, error) {
	return academics.FacultyDetails(r), nil
}

func facultyRequest(d academics.FacultyDetails) FacultyRequest {
	return FacultyRequest(d)
}

func toFacultyResponse(f *academics.Faculty) any {
	det := f.Details()
	return FacultyResponse{
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
