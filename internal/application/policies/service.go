// Package policies publishes institutional policies and strategic plans.
package policies

import (
	"context"

	"campus/internal/application/common"
	"campus/internal/application/common/crud"
	"campus/internal/domain/policies"
	"campus/internal/shared/biztime"
	"campus/internal/shared/db"
	"campus/internal/shared/errors"
	"campus/internal/shared/logger"
)

type (
	PolicyService = crud.Service[*policies.Policy, policies.PolicyDetails, policies.PolicyFilter]
	PlanService   = crud.Service[*policies.StrategicPlan, policies.PlanDetails, policies.PlanFilter]
)

type Service struct {
	Policies *PolicyService
	Plans    *PlanService

	policies policies.PolicyRepository
}

func NewService(policyRepo policies.PolicyRepository, planRepo policies.StrategicPlanRepository, tx db.Transactor, log logger.Interface) *Service {
	log = log.Named("policies")
	s := &Service{policies: policyRepo}

	s.Policies = crud.NewService[*policies.Policy, policies.PolicyDetails, policies.PolicyFilter](
		"policy", policyRepo,
		func(d policies.PolicyDetails, _ uint) (*policies.Policy, error) {
			return policies.NewPolicy(d, biztime.Today())
		},
		tx, log).WithPrepare(s.assignSlug)
	s.Plans = crud.NewService[*policies.StrategicPlan, policies.PlanDetails, policies.PlanFilter](
		"strategic plan", planRepo,
		func(d policies.PlanDetails, _ uint) (*policies.StrategicPlan, error) {
			return policies.NewStrategicPlan(d)
		},
		tx, log)
	return s
}

func (s *Service) assignSlug(ctx context.Context, id uint, d policies.PolicyDetails) (policies.PolicyDetails, error) {
	slug, err := common.DerivedSlug(ctx, common.SlugLookup(s.policies.GetBySlug), id, d.Slug, d.Title)
	if err != nil {
		return d, common.PersistenceError(err, "failed to check policy slug")
	}
	d.Slug = slug
	return d, nil
}

func (s *Service) ListActivePolicies(ctx context.Context, filter policies.PolicyFilter) ([]*policies.Policy, int64, error) {
	filter.ActiveOnly = true
	return s.Policies.List(ctx, filter)
}

func (s *Service) GetActivePolicy(ctx context.Context, slug string) (*policies.Policy, error) {
	p, err := s.policies.GetBySlug(ctx, slug)
	if err != nil {
		return nil, common.PersistenceError(err, "failed to get policy")
	}
	if !p.Details().IsActive {
		return nil, errors.NewNotFoundError("policy not found")
	}
	return p, nil
}

func (s *Service) ListActivePlans(ctx context.Context, filter policies.PlanFilter) ([]*policies.StrategicPlan, int64, error) {
	filter.ActiveOnly = true
	return s.Plans.List(ctx, filter)
}
