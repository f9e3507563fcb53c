package admissions

import (
	"path"
	"strings"
	"time"

	"campus/internal/domain/shared"
)

// DocumentDir is the storage prefix for applicant files.
const DocumentDir = "applicant_documents/"

type DocumentDetails struct {
	ApplicantID    uint
	RequirementID  *uint
	FilePath       string
	Classification string
}

func (d DocumentDetails) normalize() (DocumentDetails, error) {
	if d.ApplicantID == 0 {
		return d, shared.NewFieldError("applicant_id", "applicant_id is required")
	}
	p := strings.TrimSpace(d.FilePath)
	if p == "" {
		return d, shared.NewFieldError("file_path", "file_path is required")
	}
	p = path.Clean(strings.TrimPrefix(p, "/"))
	if p == "." || strings.HasPrefix(p, "..") {
		return d, shared.NewFieldError("file_path", "file_path must be a relative path")
	}
	if !strings.HasPrefix(p, DocumentDir) {
		p = DocumentDir + p
	}
	d.FilePath = p
	return d, shared.MaxLength("file_path", d.FilePath, 255)
}

// ApplicantDocument references an uploaded file. Only the path is stored.
type ApplicantDocument struct {
	shared.Base
	details DocumentDetails
}

func NewApplicantDocument(details DocumentDetails) (*ApplicantDocument, error) {
	d, err := details.normalize()
	if err != nil {
		return nil, err
	}
	return &ApplicantDocument{Base: shared.NewBase(), details: d}, nil
}

func ReconstructApplicantDocument(id uint, details DocumentDetails, uploadedAt time.Time) *ApplicantDocument {
	return &ApplicantDocument{Base: shared.ReconstructBase(id, uploadedAt, uploadedAt), details: details}
}

func (d *ApplicantDocument) Details() DocumentDetails {
	return d.details
}

func (d *ApplicantDocument) UploadedAt() time.Time {
	return d.CreatedAt()
}
