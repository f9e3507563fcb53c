package outreach

import (
	"strings"
	"time"

	vo "campus/internal/domain/outreach/valueobjects"
	"campus/internal/domain/shared"
)

const (
	EventPhotoDir = "event_photos/"
	MediaDir      = "media/"
)

type EventDetails struct {
	Title       string
	Description string
	StartAt     time.Time
	EndAt       *time.Time
	Location    string
	PhotoPath   string
}

func (e EventDetails) normalize() (EventDetails, error) {
	e.Title = strings.TrimSpace(e.Title)
	if err := shared.FirstError(
		shared.Required("title", e.Title),
		shared.MaxLength("title", e.Title, 200),
		shared.Required("description", e.Description),
		shared.MaxLength("location", e.Location, 255),
	); err != nil {
		return e, err
	}
	if e.StartAt.IsZero() {
		return e, shared.NewFieldError("start_datetime", "start_datetime is required")
	}
	if e.EndAt != nil && e.EndAt.Before(e.StartAt) {
		return e, shared.NewFieldError("end_datetime", "end_datetime must not be before start_datetime")
	}
	photo, err := shared.StoredPath("photo", EventPhotoDir, e.PhotoPath)
	if err != nil {
		return e, err
	}
	e.PhotoPath = photo
	return e, nil
}

// Event is a dated campus happening listed on the public site.
type Event struct {
	shared.Base
	details EventDetails
}

func NewEvent(details EventDetails) (*Event, error) {
	d, err := details.normalize()
	if err != nil {
		return nil, err
	}
	return &Event{Base: shared.NewBase(), details: d}, nil
}

func ReconstructEvent(id uint, details EventDetails, createdAt, updatedAt time.Time) *Event {
	return &Event{Base: shared.ReconstructBase(id, createdAt, updatedAt), details: details}
}

func (e *Event) Details() EventDetails {
	return e.details
}

func (e *Event) Update(details EventDetails) error {
	normalized, err := details.normalize()
	if err != nil {
		return err
	}
	e.details = normalized
	e.Touch()
	return nil
}

// Ends is the end time, or the start for an event without one.
func (e *Event) Ends() time.Time {
	if e.details.EndAt != nil {
		return *e.details.EndAt
	}
	return e.details.StartAt
}

// IsUpcoming reports whether the event has not finished at now.
func (e *Event) IsUpcoming(now time.Time) bool {
	return !e.Ends().Before(now)
}

type MediaDetails struct {
	Title    string
	FileType vo.MediaType
	FilePath string
}

func (m MediaDetails) normalize() (MediaDetails, error) {
	m.Title = strings.TrimSpace(m.Title)
	if err := shared.FirstError(
		shared.Required("title", m.Title),
		shared.MaxLength("title", m.Title, 255),
	); err != nil {
		return m, err
	}
	file, err := shared.StoredPath("file", MediaDir, m.FilePath)
	if err != nil {
		return m, err
	}
	if err := shared.Required("file", file); err != nil {
		return m, err
	}
	m.FilePath = file
	if m.FileType == "" {
		m.FileType = vo.MediaTypeFor(file)
	}
	if !m.FileType.IsValid() {
		return m, shared.NewFieldError("file_type", "invalid media type: %s", m.FileType)
	}
	return m, nil
}

// MediaFile is an item of the public media library.
type MediaFile struct {
	shared.Base
	details MediaDetails
}

func NewMediaFile(details MediaDetails) (*MediaFile, error) {
	d, err := details.normalize()
	if err != nil {
		return nil, err
	}
	return &MediaFile{Base: shared.NewBase(), details: d}, nil
}

func ReconstructMediaFile(id uint, details MediaDetails, uploadedAt, updatedAt time.Time) *MediaFile {
	return &MediaFile{Base: shared.ReconstructBase(id, uploadedAt, updatedAt), details: details}
}

func (m *MediaFile) Details() MediaDetails { return m.details }
func (m *MediaFile) UploadedAt() time.Time { return m.CreatedAt() }

func (m *MediaFile) Update(details MediaDetails) error {
	normalized, err := details.normalize()
	if err != nil {
		return err
	}
	m.details = normalized
	m.Touch()
	return nil
}
