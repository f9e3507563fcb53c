package maintenance

import (
	"encoding/base64"
	"strings"
	"time"

	vo "campus/internal/domain/maintenance/valueobjects"
	"campus/internal/domain/shared"
)

type SignatureDetails struct {
	WorkOrderID   uint
	SignatureType vo.SignatureType
	SignerID      *uint
	SignatureData string
	IPAddress     string
	DeviceInfo    string
	Comments      string
}

func (s SignatureDetails) normalize() (SignatureDetails, error) {
	if s.WorkOrderID == 0 {
		return s, shared.NewFieldError("work_order_id", "work_order_id is required")
	}
	if !s.SignatureType.IsValid() {
		return s, shared.NewFieldError("signature_type", "invalid signature type: %s", s.SignatureType)
	}
	s.SignatureData = strings.TrimSpace(s.SignatureData)
	if err := shared.Required("signature_data", s.SignatureData); err != nil {
		return s, err
	}
	if _, err := base64.StdEncoding.DecodeString(signaturePayload(s.SignatureData)); err != nil {
		return s, shared.NewFieldError("signature_data", "signature_data must be base64 encoded")
	}
	return s, shared.FirstError(
		shared.MaxLength("device_info", s.DeviceInfo, 255),
		shared.MaxLength("ip_address", s.IPAddress, 45),
	)
}

// signaturePayload strips a data URL prefix such as "data:image/png;base64,".
func signaturePayload(data string) string {
	if strings.HasPrefix(data, "data:") {
		if i := strings.Index(data, ","); i >= 0 {
			return data[i+1:]
		}
	}
	return data
}

// MaintenanceSignature is one sign-off on a work order. A work order holds at
// most one signature per type.
type MaintenanceSignature struct {
	shared.Base
	details  SignatureDetails
	signedAt time.Time
	isValid  bool
}

func NewMaintenanceSignature(details SignatureDetails, signedAt time.Time) (*MaintenanceSignature, error) {
	d, err := details.normalize()
	if err != nil {
		return nil, err
	}
	return &MaintenanceSignature{Base: shared.NewBase(), details: d, signedAt: signedAt, isValid: true}, nil
}

func ReconstructMaintenanceSignature(id uint, details SignatureDetails, signedAt time.Time, isValid bool, createdAt, updatedAt time.Time) *MaintenanceSignature {
	return &MaintenanceSignature{
		Base:     shared.ReconstructBase(id, createdAt, updatedAt),
		details:  details,
		signedAt: signedAt,
		isValid:  isValid,
	}
}

func (s *MaintenanceSignature) Details() SignatureDetails { return s.details }
func (s *MaintenanceSignature) SignedAt() time.Time       { return s.signedAt }
func (s *MaintenanceSignature) IsValid() bool             { return s.isValid }

// Update edits the comments and capture metadata. The work order, type and
// signature image are fixed once signed.
func (s *MaintenanceSignature) Update(details SignatureDetails) error {
	details.WorkOrderID = s.details.WorkOrderID
	details.SignatureType = s.details.SignatureType
	details.SignatureData = s.details.SignatureData
	details.SignerID = s.details.SignerID
	normalized, err := details.normalize()
	if err != nil {
		return err
	}
	s.details = normalized
	s.Touch()
	return nil
}

// Invalidate marks the signature void, e.g. after the work is reopened.
func (s *MaintenanceSignature) Invalidate() {
	s.isValid = false
	s.Touch()
}
