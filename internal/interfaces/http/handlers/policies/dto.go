package policies

import (
	"time"

	"campus/internal/domain/policies"
	vo "campus/internal/domain/policies/valueobjects"
	"campus/internal/shared/biztime"
	"campus/internal/shared/utils"
)

type PolicyRequest struct {
	Title         string  `json:"title" binding:"required,max=200"`
	Slug          string  `json:"slug" binding:"max=200"`
	Category      string  `json:"category" binding:"omitempty,oneof=academic hr finance governance student_affairs health_safety it other"`
	Description   string  `json:"description"`
	Content       string  `json:"content" binding:"required"`
	DocumentPath  string  `json:"document_path" binding:"max=255"`
	PublishedDate *string `json:"published_date"`
	IsActive      *bool   `json:"is_active"`
}

type PolicyResponse struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Category      string    `json:"category"`
	Description   string    `json:"description"`
	Content       string    `json:"content"`
	DocumentPath  string    `json:"document_path"`
	PublishedDate string    `json:"published_date"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func policyDetails(r PolicyRequest) (policies.PolicyDetails, error) {
	published, err := utils.ParseOptionalDateField("published_date", r.PublishedDate)
	if err != nil {
		return policies.PolicyDetails{}, err
	}
	d := policies.PolicyDetails{
		Title:        r.Title,
		Slug:         r.Slug,
		Category:     vo.PolicyCategory(r.Category),
		Description:  r.Description,
		Content:      r.Content,
		DocumentPath: r.DocumentPath,
		IsActive:     r.IsActive == nil || *r.IsActive,
	}
	if published != nil {
		d.PublishedDate = *published
	}
	return d, nil
}

func policyRequest(d policies.PolicyDetails) PolicyRequest {
	published := biztime.FormatDate(d.PublishedDate)
	active := d.IsActive
	return PolicyRequest{
		Title:         d.Title,
		Slug:          d.Slug,
		Category:      string(d.Category),
		Description:   d.Description,
		Content:       d.Content,
		DocumentPath:  d.DocumentPath,
		PublishedDate: &published,
		IsActive:      &active,
	}
}

func toPolicyResponse(p *policies.Policy) any {
	d := p.Details()
	return PolicyResponse{
		ID:            p.ID(),
		Title:         d.Title,
		Slug:          d.Slug,
		Category:      string(d.Category),
		Description:   d.Description,
		Content:       d.Content,
		DocumentPath:  d.DocumentPath,
		PublishedDate: biztime.FormatDate(d.PublishedDate),
		IsActive:      d.IsActive,
		CreatedAt:     p.CreatedAt(),
		UpdatedAt:     p.UpdatedAt(),
	}
}

type PlanRequest struct {
	Title          string `json:"title" binding:"required,max=200"`
	Slug           string `json:"slug" binding:"max=200"`
	Year           int    `json:"year" binding:"required,gte=1900,lte=2200"`
	DurationYears  int    `json:"duration_years" binding:"gte=0,lte=50"`
	Description    string `json:"description"`
	Vision         string `json:"vision"`
	Mission        string `json:"mission"`
	StrategicGoals string `json:"strategic_goals"`
	DocumentPath   string `json:"document_path" binding:"max=255"`
	IsActive       *bool  `json:"is_active"`
}

type PlanResponse struct {
	ID             uint      `json:"id"`
	Title          string    `json:"title"`
	Slug           string    `json:"slug"`
	Year           int       `json:"year"`
	DurationYears  int       `json:"duration_years"`
	Period         string    `json:"period"`
	Description    string    `json:"description"`
	Vision         string    `json:"vision"`
	Mission        string    `json:"mission"`
	StrategicGoals string    `json:"strategic_goals"`
	DocumentPath   string    `json:"document_path"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func planDetails(r PlanRequest) (policies.PlanDetails, error) {
	return policies.PlanDetails{
		Title:          r.Title,
		Slug:           r.Slug,
		Year:           r.Year,
		DurationYears:  r.DurationYears,
		Description:    r.Description,
		Vision:         r.Vision,
		Mission:        r.Mission,
		StrategicGoals: r.StrategicGoals,
		DocumentPath:   r.DocumentPath,
		IsActive:       r.IsActive == nil || *r.IsActive,
	}, nil
}

func planRequest(d policies.PlanDetails) PlanRequest {
	active := d.IsActive
	return PlanRequest{
		Title:          d.Title,
		Slug:           d.Slug,
		Year:           d.Year,
		DurationYears:  d.DurationYears,
		Description:    d.Description,
		Vision:         d.Vision,
		Mission:        d.Mission,
		StrategicGoals: d.StrategicGoals,
		DocumentPath:   d.DocumentPath,
		IsActive:       &active,
	}
}

func toPlanResponse(p *policies.StrategicPlan) any {
	d := p.Details()
	return PlanResponse{
		ID:             p.ID(),
		Title:          d.Title,
		Slug:           d.Slug,
		Year:           d.Year,
		DurationYears:  d.DurationYears,
		Period:         p.Period(),
		Description:    d.Description,
		Vision:         d.Vision,
		Mission:        d.Mission,
		StrategicGoals: d.StrategicGoals,
		DocumentPath:   d.DocumentPath,
		IsActive:       d.IsActive,
		CreatedAt:      p.CreatedAt(),
		UpdatedAt:      p.UpdatedAt(),
	}
}
