package admissions

import (
	"time"

	"campus/internal/domain/admissions"
	"campus/internal/shared/biztime"
	"campus/internal/shared/utils"
)

type CycleRequest struct {
	Year                   int     `json:"year" binding:"required,gte=1900,lte=2100"`
	StartDate              string  `json:"start_date"`
	EndDate                string  `json:"end_date"`
	ApplicationDeadline    string  `json:"application_deadline"`
	ResultAnnouncementDate *string `json:"result_announcement_date"`
	IsActive               bool    `json:"is_active"`
	Description            string  `json:"description"`
}

type CycleResponse struct {
	ID                     uint      `json:"id"`
	Year                   int       `json:"year"`
	StartDate              string    `json:"start_date"`
	EndDate                string    `json:"end_date"`
	ApplicationDeadline    string    `json:"application_deadline"`
	ResultAnnouncementDate *string   `json:"result_announcement_date"`
	IsActive               bool      `json:"is_active"`
	Description            string    `json:"description"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

func cycleDetails(r CycleRequest) (admissions.CycleDetails, error) {
	start, err := utils.ParseDateField("start_date", r.StartDate)
	if err != nil {
		return admissions.CycleDetails{}, err
	}
	end, err := utils.ParseDateField("end_date", r.EndDate)
	if err != nil {
		return admissions.CycleDetails{}, err
	}
	deadline, err := utils.ParseDateField("application_deadline", r.ApplicationDeadline)
	if err != nil {
		return admissions.CycleDetails{}, err
	}
	results, err := utils.ParseOptionalDateField("result_announcement_date", r.ResultAnnouncementDate)
	if err != nil {
		return admissions.CycleDetails{}, err
	}
	return admissions.CycleDetails{
		Year:                   r.Year,
		StartDate:              start,
		EndDate:                end,
		ApplicationDeadline:    deadline,
		ResultAnnouncementDate: results,
		IsActive:               r.IsActive,
		Description:            r.Description,
	}, nil
}

func cycleRequest(d admissions.CycleDetails) CycleRequest {
	return CycleRequest{
		Year:                   d.Year,
		StartDate:              biztime.FormatDate(d.StartDate),
		EndDate:                biztime.FormatDate(d.EndDate),
		ApplicationDeadline:    biztime.FormatDate(d.ApplicationDeadline),
		ResultAnnouncementDate: utils.FormatOptionalDate(d.ResultAnnouncementDate),
		IsActive:               d.IsActive,
		Description:            d.Description,
	}
}

func toCycleResponse(c *admissions.AdmissionCycle) any {
	r := cycleRequest(c.Details())
	return CycleResponse{
		ID:                     c.ID(),
		Year:                   r.Year,
		StartDate:              r.StartDate,
		EndDate:                r.EndDate,
		ApplicationDeadline:    r.ApplicationDeadline,
		ResultAnnouncementDate: r.ResultAnnouncementDate,
		IsActive:               r.IsActive,
		Description:            r.Description,
		CreatedAt:              c.CreatedAt(),
		UpdatedAt:              c.UpdatedAt(),
	}
}

type RequirementRequest struct {
	ProgramID    uint   `json:"program_id" binding:"required"`
	Title        string `json:"title" binding:"required,max=200"`
	Description  string `json:"description"`
	DocumentType string `json:"document_type" binding:"max=100"`
	IsMandatory  bool   `json:"is_mandatory"`
}

type RequirementResponse struct {
	ID           uint      `json:"id"`
	ProgramID    uint      `json:"program_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	DocumentType string    `json:"document_type"`
	IsMandatory  bool      `json:"is_mandatory"`
	CreatedAt    time.Time `json:"created_at"`
}

func requirementDetails(r RequirementRequest) (admissions.RequirementDetails, error) {
	return admissions.RequirementDetails(r), nil
}

func requirementRequest(d admissions.RequirementDetails) RequirementRequest {
	return RequirementRequest(d)
}

func toRequirementResponse(r *admissions.Requirement) any {
	d := r.Details()
	return RequirementResponse{
		ID:           r.ID(),
		ProgramID:    d.ProgramID,
		Title:        d.Title,
		Description:  d.Description,
		DocumentType: d.DocumentType,
		IsMandatory:  d.IsMandatory,
		CreatedAt:    r.CreatedAt(),
	}
}

type ApplicantRequest struct {
	CycleID     *uint    `json:"cycle_id"`
	ProgramID   *uint    `json:"program_id"`
	FirstName   string   `json:"first_name" binding:"required,max=255"`
	LastName    string   `json:"last_name" binding:"required,max=255"`
	Email       string   `json:"email" binding:"required,email"`
	Phone       string   `json:"phone" binding:"required,max=20"`
	DateOfBirth string   `json:"date_of_birth"`
	Nationality string   `json:"nationality" binding:"max=100"`
	GPA         *float64 `json:"gpa" binding:"omitempty,gte=0,lte=5"`
	Notes       string   `json:"notes"`
}

type ApplicantResponse struct {
	ID                uint      `json:"id"`
	CycleID           *uint     `json:"cycle_id"`
	ProgramID         *uint     `json:"program_id"`
	FirstName         string    `json:"first_name"`
	LastName          string    `json:"last_name"`
	FullName          string    `json:"full_name"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	DateOfBirth       string    `json:"date_of_birth"`
	Nationality       string    `json:"nationality"`
	GPA               *float64  `json:"gpa"`
	Status            string    `json:"status"`
	DocumentsUploaded bool      `json:"documents_uploaded"`
	Notes             string    `json:"notes"`
	AppliedAt         time.Time `json:"applied_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func applicantDetails(r ApplicantRequest) (admissions.ApplicantDetails, error) {
	dob, err := utils.ParseDateField("date_of_birth", r.DateOfBirth)
	if err != nil {
		return admissions.ApplicantDetails{}, err
	}
	return admissions.ApplicantDetails{
		CycleID:     r.CycleID,
		ProgramID:   r.ProgramID,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		Phone:       r.Phone,
		DateOfBirth: dob,
		Nationality: r.Nationality,
		GPA:         r.GPA,
		Notes:       r.Notes,
	}, nil
}

func applicantRequest(d admissions.ApplicantDetails) ApplicantRequest {
	return ApplicantRequest{
		CycleID:     d.CycleID,
		ProgramID:   d.ProgramID,
		FirstName:   d.FirstName,
		LastName:    d.LastName,
		Email:       d.Email,
		Phone:       d.Phone,
		DateOfBirth: biztime.FormatDate(d.DateOfBirth),
		Nationality: d.Nationality,
		GPA:         d.GPA,
		Notes:       d.Notes,
	}
}

func toApplicantResponse(a *admissions.Applicant) any {
	d := a.Details()
	return ApplicantResponse{
		ID:                a.ID(),
		CycleID:           d.CycleID,
		ProgramID:         d.ProgramID,
		FirstName:         d.FirstName,
		LastName:          d.LastName,
		FullName:          a.FullName(),
		Email:             d.Email,
		Phone:             d.Phone,
		DateOfBirth:       biztime.FormatDate(d.DateOfBirth),
		Nationality:       d.Nationality,
		GPA:               d.GPA,
		Status:            a.Status().String(),
		DocumentsUploaded: a.DocumentsUploaded(),
		Notes:             d.Notes,
		AppliedAt:         a.AppliedAt(),
		UpdatedAt:         a.UpdatedAt(),
	}
}

type DocumentRequest struct {
	RequirementID  *uint  `json:"requirement_id"`
	FilePath       string `json:"file_path" binding:"required,max=255"`
	Classification string `json:"classification" binding:"max=100"`
}

type DocumentResponse struct {
	ID             uint      `json:"id"`
	ApplicantID    uint      `json:"applicant_id"`
	RequirementID  *uint     `json:"requirement_id"`
	FilePath       string    `json:"file_path"`
	Classification string    `json:"classification"`
	UploadedAt     time.Time `json:"uploaded_at"`
}

func toDocumentResponse(d *admissions.ApplicantDocument) DocumentResponse {
	det := d.Details()
	return DocumentResponse{
		ID:             d.ID(),
		ApplicantID:    det.ApplicantID,
		RequirementID:  det.RequirementID,
		FilePath:       det.FilePath,
		Classification: det.Classification,
		UploadedAt:     d.UploadedAt(),
	}
}
