package mappers

import (
	"campus/internal/domain/policies"
	vo "campus/internal/domain/policies/valueobjects"
	"campus/internal/infrastructure/persistence/models"
)

func PolicyToModel(p *policies.Policy) *models.PolicyModel {
	det := p.Details()
	return &models.PolicyModel{
		ID:            p.ID(),
		Title:         det.Title,
		Slug:          det.Slug,
		Category:      det.Category.String(),
		Description:   det.Description,
		Content:       det.Content,
		DocumentPath:  det.DocumentPath,
		PublishedDate: det.PublishedDate,
		IsActive:      det.IsActive,
		CreatedAt:     p.CreatedAt(),
		UpdatedAt:     p.UpdatedAt(),
	}
}

func PolicyToDomain(m *models.PolicyModel) (*policies.Policy, error) {
	return policies.ReconstructPolicy(m.ID, policies.PolicyDetails{
		Title:         m.Title,
		Slug:          m.Slug,
		Category:      vo.PolicyCategory(m.Category),
		Description:   m.Description,
		Content:       m.Content,
		DocumentPath:  m.DocumentPath,
		PublishedDate: m.PublishedDate,
		IsActive:      m.IsActive,
	}, m.CreatedAt, m.UpdatedAt), nil
}

func PlanToModel(p *policies.StrategicPlan) *models.StrategicPlanModel {
	det := p.Details()
	return &models.StrategicPlanModel{
		ID:             p.ID(),
		Title:          det.Title,
		Slug:           det.Slug,
		Year:           det.Year,
		DurationYears:  det.DurationYears,
		Description:    det.Description,
		Vision:         det.Vision,
		Mission:        det.Mission,
		StrategicGoals: det.StrategicGoals,
		DocumentPath:   det.DocumentPath,
		IsActive:       det.IsActive,
		CreatedAt:      p.CreatedAt(),
		UpdatedAt:      p.UpdatedAt(),
	}
}

func PlanToDomain(m *models.StrategicPlanModel) (*policies.StrategicPlan, error) {
	return policies.ReconstructStrategicPlan(m.ID, policies.PlanDetails{
		Title:          m.Title,
		Slug:           m.Slug,
		Year:           m.Year,
		DurationYears:  m.DurationYears,
		Description:    m.Description,
		Vision:         m.Vision,
		Mission:        m.Mission,
		StrategicGoals: m.StrategicGoals,
		DocumentPath:   m.DocumentPath,
		IsActive:       m.IsActive,
	}, m.CreatedAt, m.UpdatedAt), nil
}
