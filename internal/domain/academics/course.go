package academics

import (
	"strings"
	"time"

	"campus/internal/domain/shared"
)

const DefaultCredits = 3

type CourseDetails struct {
	ProgramID   uint
	Code        string
	Title       string
	Description string
	Credits     int
	Semester    int
	Instructor  string
	IsRequired  bool
}

func (c CourseDetails) normalize() (CourseDetails, error) {
	c.Code = strings.ToUpper(strings.TrimSpace(c.Code))
	c.Title = strings.TrimSpace(c.Title)
	if c.ProgramID == 0 {
		return c, shared.NewFieldError("program_id", "program_id is required")
	}
	if err := shared.FirstError(
		shared.Required("code", c.Code),
		shared.MaxLength("code", c.Code, 10),
		shared.Required("title", c.Title),
	); err != nil {
		return c, err
	}
	if c.Credits == 0 {
		c.Credits = DefaultCredits
	}
	if c.Credits < 0 {
		return c, shared.NewFieldError("credits", "credits must be greater than 0")
	}
	if c.Semester <= 0 {
		return c, shared.NewFieldError("semester", "semester must be greater than 0")
	}
	return c, nil
}

type Course struct {
	shared.Base
	details CourseDetails
}

func NewCourse(details CourseDetails) (*Course, error) {
	c, err := details.normalize()
	if err != nil {
		return nil, err
	}
	return &Course{Base: shared.NewBase(), details: c}, nil
}

func ReconstructCourse(id uint, details CourseDetails, createdAt, updatedAt time.Time) *Course {
	return &Course{Base: shared.ReconstructBase(id, createdAt, updatedAt), details: details}
}

func (c *Course) Details() CourseDetails {
	return c.details
}

func (c *Course) Update(details CourseDetails) error {
	normalized, err := details.normalize()
	if err != nil {
		return err
	}
	c.details = normalized
	c.Touch()
	return nil
}
