package usecases

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"campus/internal/application/admin/dto"
	"campus/internal/shared/biztime"
	"campus/internal/shared/errors"
	"campus/internal/shared/logger"
)

// Dashboard module keys.
const (
	ModuleApplicants          = "applicants"
	ModuleAssets              = "assets"
	ModuleMaintenanceRequests = "maintenance_requests"
	ModuleWorkOrders          = "work_orders"
	ModuleAnnouncements       = "announcements"
	ModuleJobApplications     = "job_applications"
	ModuleVisitRequests       = "visit_requests"
)

// DashboardModules lists the modules counted on the dashboard.
func DashboardModules() []string {
	return []string{
		ModuleApplicants,
		ModuleAssets,
		ModuleMaintenanceRequests,
		ModuleWorkOrders,
		ModuleAnnouncements,
		ModuleJobApplications,
		ModuleVisitRequests,
	}
}

// StatusCounter aggregates stored records for the dashboard.
type StatusCounter interface {
	CountByStatus(ctx context.Context, module string) (map[string]int64, error)
	CountItemsNeedingReorder(ctx context.Context) (int64, error)
}

// GetAdminDashboardUseCase handles retrieving admin dashboard snapshot.
type GetAdminDashboardUseCase struct {
	counter StatusCounter
	logger  logger.Interface
}

// NewGetAdminDashboardUseCase creates a new GetAdminDashboardUseCase.
func NewGetAdminDashboardUseCase(counter StatusCounter, log logger.Interface) *GetAdminDashboardUseCase {
	return &GetAdminDashboardUseCase{counter: counter, logger: log}
}

// Execute retrieves the admin dashboard snapshot.
func (uc *GetAdminDashboardUseCase) Execute(ctx context.Context) (*dto.AdminDashboardResponse, error) {
	uc.logger.Debugw("fetching admin dashboard")

	modules := DashboardModules()
	resp := &dto.AdminDashboardResponse{
		Modules:     make(map[string]map[string]int64, len(modules)),
		GeneratedAt: biztime.NowUTC(),
	}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for _, module := range modules {
		g.Go(func() error {
			counts, err := uc.counter.CountByStatus(gctx, module)
			if err != nil {
				uc.logger.Errorw("failed to count statuses", "module", module, "error", err)
				return errors.NewInternalError("failed to count " + module)
			}
			mu.Lock()
			resp.Modules[module] = counts
			mu.Unlock()
			return nil
		})
	}

	g.Go(func() error {
		count, err := uc.counter.CountItemsNeedingReorder(gctx)
		if err != nil {
			uc.logger.Errorw("failed to count reorder items", "error", err)
			return errors.NewInternalError("failed to count inventory items needing reorder")
		}
		resp.ItemsNeedingReorder = count
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return resp, nil
}
