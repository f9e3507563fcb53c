package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"

	"campus/internal/application/admin/usecases"
	"campus/internal/shared/constants"
	"campus/internal/shared/db"
	"campus/internal/shared/logger"
)

var dashboardTables = map[string]string{
	usecases.ModuleApplicants:          constants.TableApplicants,
	usecases.ModuleAssets:              constants.TableAssets,
	usecases.ModuleMaintenanceRequests: constants.TableMaintenanceRequests,
	usecases.ModuleWorkOrders:          constants.TableWorkOrders,
	usecases.ModuleAnnouncements:       constants.TableAnnouncements,
	usecases.ModuleJobApplications:     constants.TableJobApplications,
	usecases.ModuleVisitRequests:       constants.TableVisitRequests,
}

// DashboardRepository runs the aggregate queries behind the admin dashboard.
// Queries are built with squirrel using "?" placeholders; gorm rebinds them
// for the active dialect.
type DashboardRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewDashboardRepository(db *gorm.DB, logger logger.Interface) *DashboardRepository {
	return &DashboardRepository{db: db, logger: logger}
}

type statusCount struct {
	Status string
	Total  int64
}

// statusCountQuery builds the grouped count for one dashboard module.
func statusCountQuery(module string) (string, []interface{}, error) {
	table, ok := dashboardTables[module]
	if !ok {
		return "", nil, fmt.Errorf("unknown dashboard module: %s", module)
	}
	return sq.Select("status", "COUNT(*) AS total").
		From(table).
		GroupBy("status").
		OrderBy("status").
		ToSql()
}

func reorderCountQuery() (string, []interface{}, error) {
	return sq.Select("COUNT(*)").
		From(constants.TableInventoryItems).
		Where(sq.Expr("quantity_on_hand <= reorder_level")).
		Where(sq.Eq{"is_active": true}).
		ToSql()
}

func (r *DashboardRepository) CountByStatus(ctx context.Context, module string) (map[string]int64, error) {
	query, args, err := statusCountQuery(module)
	if err != nil {
		return nil, err
	}

	var rows []statusCount
	if err := db.GetTxFromContext(ctx, r.db).Raw(query, args...).Scan(&rows).Error; err != nil {
		r.logger.Errorw("failed to count statuses", "module", module, "error", err)
		return nil, fmt.Errorf("failed to count %s by status: %w", module, err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}

func (r *DashboardRepository) CountItemsNeedingReorder(ctx context.Context) (int64, error) {
	query, args, err := reorderCountQuery()
	if err != nil {
		return 0, err
	}

	var total int64
	if err := db.GetTxFromContext(ctx, r.db).Raw(query, args...).Scan(&total).Error; err != nil {
		r.logger.Errorw("failed to count reorder items", "error", err)
		return 0, fmt.Errorf("failed to count inventory items needing reorder: %w", err)
	}
	return total, nil
}
