package policies

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus/internal/application/testutil"
	"campus/internal/domain/policies"
	vo "campus/internal/domain/policies/valueobjects"
	"campus/internal/shared/errors"
	"campus/internal/shared/logger"
)

type mockPolicyRepository struct {
	*testutil.MemoryRepository[*policies.Policy, policies.PolicyFilter]
}

func (m *mockPolicyRepository) GetBySlug(_ context.Context, slug string) (*policies.Policy, error) {
	for _, p := range m.All() {
		if p.Details().Slug == slug {
			return p, nil
		}
	}
	return nil, errors.NewNotFoundError("policy not found")
}

func newService() (*Service, *mockPolicyRepository, *testutil.MemoryRepository[*policies.StrategicPlan, policies.PlanFilter]) {
	repo := &mockPolicyRepository{testutil.NewMemoryRepository[*policies.Policy, policies.PolicyFilter]()}
	plans := testutil.NewMemoryRepository[*policies.StrategicPlan, policies.PlanFilter]()
	active := func(rows []*policies.Policy, activeOnly bool) []*policies.Policy {
		var out []*policies.Policy
		for _, p := range rows {
			if !activeOnly || p.Details().IsActive {
				out = append(out, p)
			}
		}
		return out
	}
	repo.ListFunc = func(f policies.PolicyFilter, rows []*policies.Policy) ([]*policies.Policy, int64, error) {
		out := active(rows, f.ActiveOnly)
		return out, int64(len(out)), nil
	}
	return NewService(repo, plans, &testutil.Tx{}, logger.NewNopLogger()), repo, plans
}

func TestCreatePolicy(t *testing.T) {
	svc, _, _ := newService()
	ctx := context.Background()

	p, err := svc.Policies.Create(ctx, policies.PolicyDetails{Title: "Code of Conduct", Content: "Be kind.", IsActive: true}, 1)
	require.NoError(t, err)
	assert.Equal(t, "code-of-conduct", p.Details().Slug)
	assert.Equal(t, vo.CategoryOther, p.Details().Category)
	assert.False(t, p.Details().PublishedDate.IsZero())

	dup, err := svc.Policies.Create(ctx, policies.PolicyDetails{Title: "Code of conduct", Content: "v2"}, 1)
	require.NoError(t, err)
	assert.Equal(t, "code-of-conduct-2", dup.Details().Slug)

	_, err = svc.Policies.Create(ctx, policies.PolicyDetails{Title: "Empty"}, 1)
	require.Error(t, err)
	assert.Contains(t, errors.GetAppError(err).Fields, "content")
}

func TestPublicPolicies_ActiveOnly(t *testing.T) {
	svc, _, _ := newService()
	ctx := context.Background()
	active, err := svc.Policies.Create(ctx, policies.PolicyDetails{Title: "Leave", Content: "x", IsActive: true}, 1)
	require.NoError(t, err)
	retired, err := svc.Policies.Create(ctx, policies.PolicyDetails{Title: "Old leave", Content: "x"}, 1)
	require.NoError(t, err)

	items, total, err := svc.ListActivePolicies(ctx, policies.PolicyFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, active.ID(), items[0].ID())

	_, err = svc.GetActivePolicy(ctx, retired.Details().Slug)
	assert.True(t, errors.IsNotFoundError(err))
	got, err := svc.GetActivePolicy(ctx, "leave")
	require.NoError(t, err)
	assert.Equal(t, active.ID(), got.ID())
}

func TestCreatePlan_DefaultDuration(t *testing.T) {
	svc, _, plans := newService()

	p, err := svc.Plans.Create(context.Background(), policies.PlanDetails{Title: "Vision 2030", Year: 2026}, 1)
	require.NoError(t, err)
	assert.Equal(t, "2026-2030", p.Period())
	assert.Equal(t, 1, plans.Len())

	_, err = svc.Plans.Create(context.Background(), policies.PlanDetails{Title: "Bad", Year: 26}, 1)
	require.Error(t, err)
	assert.Contains(t, errors.GetAppError(err).Fields, "year")
}
