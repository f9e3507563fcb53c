package announcements

import (
	"fmt"
	"strings"
	"time"

	vo "campus/internal/domain/announcements/valueobjects"
	"campus/internal/domain/shared"
)

type DistributionDetails struct {
	AnnouncementID uint
	Method         vo.Method
	RecipientGroup string
	RecipientCount int
	ScheduledFor   *time.Time
}

func (d DistributionDetails) validate() error {
	if d.AnnouncementID == 0 {
		return shared.NewFieldError("announcement_id", "announcement_id is required")
	}
	if !d.Method.IsValid() {
		return shared.NewFieldError("method", "invalid distribution method: %s", d.Method)
	}
	if d.RecipientCount < 0 {
		return shared.NewFieldError("recipient_count", "recipient_count must not be negative")
	}
	return shared.MaxLength("recipient_group", d.RecipientGroup, 100)
}

// Distribution tracks one send of an announcement to a recipient group.
type Distribution struct {
	shared.Base
	details       DistributionDetails
	status        vo.DistributionStatus
	sentAt        *time.Time
	successCount  int
	failureCount  int
	failureReason string
}

func NewDistribution(details DistributionDetails) (*Distribution, error) {
	if err := details.validate(); err != nil {
		return nil, err
	}
	return &Distribution{Base: shared.NewBase(), details: details, status: vo.DistributionPending}, nil
}

func ReconstructDistribution(
	id uint,
	details DistributionDetails,
	status vo.DistributionStatus,
	sentAt *time.Time,
	successCount, failureCount int,
	failureReason string,
	createdAt, updatedAt time.Time,
) (*Distribution, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid distribution status: %s", status)
	}
	return &Distribution{
		Base:          shared.ReconstructBase(id, createdAt, updatedAt),
		details:       details,
		status:        status,
		sentAt:        sentAt,
		successCount:  successCount,
		failureCount:  failureCount,
		failureReason: failureReason,
	}, nil
}

func (d *Distribution) Details() DistributionDetails  { return d.details }
func (d *Distribution) Status() vo.DistributionStatus { return d.status }
func (d *Distribution) SentAt() *time.Time            { return d.sentAt }
func (d *Distribution) SuccessCount() int             { return d.successCount }
func (d *Distribution) FailureCount() int             { return d.failureCount }
func (d *Distribution) FailureReason() string         { return d.failureReason }

func (d *Distribution) Update(details DistributionDetails) error {
	details.AnnouncementID = d.details.AnnouncementID
	if err := details.validate(); err != nil {
		return err
	}
	d.details = details
	d.Touch()
	return nil
}

func (d *Distribution) ChangeStatus(status vo.DistributionStatus) error {
	if !status.IsValid() {
		return shared.NewFieldError("status", "invalid distribution status: %s", status)
	}
	d.status = status
	now := d.Touch()
	if status == vo.DistributionSent && d.sentAt == nil {
		d.sentAt = &now
	}
	return nil
}

// RecordDispatch stores per-recipient outcomes together with the resulting
// status: sent when at least one recipient succeeded, failed otherwise.
func (d *Distribution) RecordDispatch(succeeded int, failures []string) {
	d.successCount = succeeded
	d.failureCount = len(failures)
	d.details.RecipientCount = succeeded + len(failures)
	d.failureReason = strings.Join(failures, "; ")
	if len(d.failureReason) > 1000 {
		d.failureReason = d.failureReason[:1000]
	}
	now := d.Touch()
	if succeeded > 0 {
		d.status = vo.DistributionSent
		d.sentAt = &now
		return
	}
	d.status = vo.DistributionFailed
}
