package valueobjects

import (
	"fmt"
	"time"
)

type Frequency string

const (
	FrequencyDaily      Frequency = "daily"
	FrequencyWeekly     Frequency = "weekly"
	FrequencyMonthly    Frequency = "monthly"
	FrequencyQuarterly  Frequency = "quarterly"
	FrequencySemiAnnual Frequency = "semi-annual"
	FrequencyAnnual     Frequency = "annual"
	FrequencyBiAnnual   Frequency = "bi-annual"
	FrequencyAsNeeded   Frequency = "as_needed"
)

var validFrequencies = map[Frequency]bool{
	FrequencyDaily:      true,
	FrequencyWeekly:     true,
	FrequencyMonthly:    true,
	FrequencyQuarterly:  true,
	FrequencySemiAnnual: true,
	FrequencyAnnual:     true,
	FrequencyBiAnnual:   true,
	FrequencyAsNeeded:   true,
}

func (f Frequency) String() string {
	return string(f)
}

func (f Frequency) IsValid() bool {
	return validFrequencies[f]
}

func NewFrequency(s string) (Frequency, error) {
	v := Frequency(s)
	if !v.IsValid() {
		return "", fmt.Errorf("invalid frequency: %s", s)
	}
	return v, nil
}

// Next returns the due date one period after from. as_needed has no period
// and reports false.
func (f Frequency) Next(from time.Time) (time.Time, bool) {
	switch f {
	case FrequencyDaily:
		return from.AddDate(0, 0, 1), true
	case FrequencyWeekly:
		return from.AddDate(0, 0, 7), true
	case FrequencyMonthly:
		return from.AddDate(0, 1, 0), true
	case FrequencyQuarterly:
		return from.AddDate(0, 3, 0), true
	case FrequencySemiAnnual:
		return from.AddDate(0, 6, 0), true
	case FrequencyAnnual:
		return from.AddDate(1, 0, 0), true
	case FrequencyBiAnnual:
		return from.AddDate(2, 0, 0), true
	default:
		return from, false
	}
}

// SignatureType names the checkpoint a work order signature attests.
type SignatureType string

const (
	SignatureTechnicianStart    SignatureType = "technician_start"
	SignatureTechnicianEnd      SignatureType = "technician_end"
	SignatureReceiverAcceptance SignatureType = "receiver_acceptance"
	SignatureSupervisorApproval SignatureType = "supervisor_approval"
	SignatureQualityCheck       SignatureType = "quality_check"
)

var validSignatureTypes = map[SignatureType]bool{
	SignatureTechnicianStart:    true,
	SignatureTechnicianEnd:      true,
	SignatureReceiverAcceptance: true,
	SignatureSupervisorApproval: true,
	SignatureQualityCheck:       true,
}

func (s SignatureType) String() string {
	return string(s)
}

func (s SignatureType) IsValid() bool {
	return validSignatureTypes[s]
}

func NewSignatureType(s string) (SignatureType, error) {
	v := SignatureType(s)
	if !v.IsValid() {
		return "", fmt.Errorf("invalid signature type: %s", s)
	}
	return v, nil
}
