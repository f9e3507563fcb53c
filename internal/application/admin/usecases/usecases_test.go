package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus/internal/application/testutil"
	"campus/internal/domain/statushistory"
	"campus/internal/shared/errors"
	"campus/internal/shared/logger"
)

type mockCounter struct {
	counts  map[string]map[string]int64
	reorder int64
	failOn  string
}

func (m *mockCounter) CountByStatus(_ context.Context, module string) (map[string]int64, error) {
	if module == m.failOn {
		return nil, fmt.Errorf("table missing")
	}
	return m.counts[module], nil
}

func (m *mockCounter) CountItemsNeedingReorder(context.Context) (int64, error) {
	return m.reorder, nil
}

func TestGetAdminDashboard(t *testing.T) {
	counter := &mockCounter{
		counts: map[string]map[string]int64{
			ModuleApplicants: {"draft": 3, "accepted": 1},
			ModuleAssets:     {"active": 12},
		},
		reorder: 4,
	}
	uc := NewGetAdminDashboardUseCase(counter, logger.NewNopLogger())

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Len(t, resp.Modules, len(DashboardModules()))
	assert.Equal(t, int64(3), resp.Modules[ModuleApplicants]["draft"])
	assert.Equal(t, int64(12), resp.Modules[ModuleAssets]["active"])
	assert.Equal(t, int64(4), resp.ItemsNeedingReorder)
	assert.False(t, resp.GeneratedAt.IsZero())
}

func TestGetAdminDashboard_CountFailure(t *testing.T) {
	uc := NewGetAdminDashboardUseCase(&mockCounter{failOn: ModuleWorkOrders}, logger.NewNopLogger())

	_, err := uc.Execute(context.Background())
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeInternal, appErr.Type)
}

func TestListStatusHistory(t *testing.T) {
	history := &testutil.MemoryHistory{}
	ctx := context.Background()
	for i, status := range []string{"submitted", "accepted"} {
		c, err := statushistory.NewStatusChange("applicant", 5, "draft", status, uint(i+1), "")
		require.NoError(t, err)
		require.NoError(t, history.Create(ctx, c))
	}
	other, err := statushistory.NewStatusChange("asset", 9, "active", "lost", 1, "stolen")
	require.NoError(t, err)
	require.NoError(t, history.Create(ctx, other))

	uc := NewListStatusHistoryUseCase(history, logger.NewNopLogger())
	items, total, err := uc.Execute(ctx, statushistory.Filter{EntityType: "applicant", EntityID: 5})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, "accepted", items[0].NewStatus)
	assert.Equal(t, "submitted", items[1].NewStatus)
}
