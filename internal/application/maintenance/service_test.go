package maintenance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus/internal/application/common/lifecycle"
	"campus/internal/application/testutil"
	"campus/internal/domain/maintenance"
	vo "campus/internal/domain/maintenance/valueobjects"
	"campus/internal/shared/errors"
	"campus/internal/shared/logger"
)

type sequenceRefs struct{ n int }

func (g *sequenceRefs) Next(prefix string) string {
	g.n++
	return fmt.Sprintf("%s-20260114-%06X", prefix, g.n)
}

type mockWorkOrderRepository struct {
	*testutil.MemoryRepository[*maintenance.WorkOrder, maintenance.WorkOrderFilter]
}

func (m *mockWorkOrderRepository) GetByRequestID(_ context.Context, requestID uint) (*maintenance.WorkOrder, error) {
	for _, w := range m.All() {
		if w.Details().MaintenanceRequestID == requestID {
			return w, nil
		}
	}
	return nil, errors.NewNotFoundError("work order not found")
}

type mockCompletionRepository struct {
	*testutil.MemoryRepository[*maintenance.WorkOrderCompletion, struct{}]
}

func (m *mockCompletionRepository) GetByWorkOrderID(_ context.Context, workOrderID uint) (*maintenance.WorkOrderCompletion, error) {
	for _, c := range m.All() {
		if c.Details().WorkOrderID == workOrderID {
			return c, nil
		}
	}
	return nil, errors.NewNotFoundError("work order completion not found")
}

type mockSignatureRepository struct {
	*testutil.MemoryRepository[*maintenance.MaintenanceSignature, maintenance.SignatureFilter]
}

func (m *mockSignatureRepository) ExistsForWorkOrder(_ context.Context, workOrderID uint, signatureType string) (bool, error) {
	for _, sig := range m.All() {
		if sig.Details().WorkOrderID == workOrderID && sig.Details().SignatureType.String() == signatureType {
			return true, nil
		}
	}
	return false, nil
}

type mockMetricsRepository struct {
	*testutil.MemoryRepository[*maintenance.MaintenanceMetrics, maintenance.MetricsFilter]
}

func (m *mockMetricsRepository) GetByMonth(_ context.Context, month time.Time) (*maintenance.MaintenanceMetrics, error) {
	for _, row := range m.All() {
		if row.Details().Month.Equal(month) {
			return row, nil
		}
	}
	return nil, errors.NewNotFoundError("maintenance metrics not found")
}

type fixture struct {
	svc         *Service
	technicians *testutil.MemoryRepository[*maintenance.Technician, maintenance.TechnicianFilter]
	requests    *testutil.MemoryRepository[*maintenance.MaintenanceRequest, maintenance.RequestFilter]
	workOrders  *mockWorkOrderRepository
	completions *mockCompletionRepository
	schedules   *testutil.MemoryRepository[*maintenance.MaintenanceSchedule, maintenance.ScheduleFilter]
	signatures  *mockSignatureRepository
	log         *testutil.MemoryRepository[*maintenance.MaintenanceHistory, maintenance.HistoryFilter]
	metrics     *mockMetricsRepository
	history     *testutil.MemoryHistory
	recorder    *testutil.Recorder
}

func newFixture() *fixture {
	f := &fixture{
		technicians: testutil.NewMemoryRepository[*maintenance.Technician, maintenance.TechnicianFilter](),
		requests:    testutil.NewMemoryRepository[*maintenance.MaintenanceRequest, maintenance.RequestFilter](),
		workOrders:  &mockWorkOrderRepository{testutil.NewMemoryRepository[*maintenance.WorkOrder, maintenance.WorkOrderFilter]()},
		completions: &mockCompletionRepository{testutil.NewMemoryRepository[*maintenance.WorkOrderCompletion, struct{}]()},
		schedules:   testutil.NewMemoryRepository[*maintenance.MaintenanceSchedule, maintenance.ScheduleFilter](),
		signatures:  &mockSignatureRepository{testutil.NewMemoryRepository[*maintenance.MaintenanceSignature, maintenance.SignatureFilter]()},
		log:         testutil.NewMemoryRepository[*maintenance.MaintenanceHistory, maintenance.HistoryFilter](),
		metrics:     &mockMetricsRepository{testutil.NewMemoryRepository[*maintenance.MaintenanceMetrics, maintenance.MetricsFilter]()},
		history:     &testutil.MemoryHistory{},
		recorder:    &testutil.Recorder{},
	}
	log := logger.NewNopLogger()
	f.svc = NewService(Repositories{
		Teams:       testutil.NewMemoryRepository[*maintenance.MaintenanceTeam, maintenance.TeamFilter](),
		Technicians: f.technicians,
		Requests:    f.requests,
		WorkOrders:  f.workOrders,
		Completions: f.completions,
		Schedules:   f.schedules,
		Signatures:  f.signatures,
		History:     f.log,
		Metrics:     f.metrics,
	}, &sequenceRefs{}, &testutil.Tx{}, lifecycle.NewJournal(f.history, f.recorder, log), log)
	return f
}

func (f *fixture) request(t *testing.T) *maintenance.MaintenanceRequest {
	t.Helper()
	r, err := f.svc.Requests.Create(context.Background(), maintenance.RequestDetails{
		Title:       "Leaking tap",
		Description: "Lab 3 sink leaks",
	}, 5)
	require.NoError(t, err)
	return r
}

func (f *fixture) workOrder(t *testing.T, requestID uint) *maintenance.WorkOrder {
	t.Helper()
	w, err := f.svc.WorkOrders.Create(context.Background(), maintenance.WorkOrderDetails{
		MaintenanceRequestID: requestID,
		WorkDescription:      "Replace washer",
	}, 5)
	require.NoError(t, err)
	return w
}

func TestCreateRequest_AssignsReference(t *testing.T) {
	f := newFixture()
	r := f.request(t)

	assert.Equal(t, "MR-20260114-000001", r.RequestID())
	assert.Equal(t, vo.RequestStatusDraft, r.Status())
	assert.Equal(t, vo.PriorityMedium, r.Details().Priority)
	require.NotNil(t, r.RequesterID())
	assert.Equal(t, uint(5), *r.RequesterID())

	// The reference survives edits.
	updated, err := f.svc.Requests.Update(context.Background(), r.ID(), maintenance.RequestDetails{
		Title: "Leaking tap (urgent)", Description: "Lab 3 sink", Priority: vo.PriorityUrgent,
	})
	require.NoError(t, err)
	assert.Equal(t, "MR-20260114-000001", updated.RequestID())
}

func TestCreateWorkOrder_OnePerRequest(t *testing.T) {
	f := newFixture()
	r := f.request(t)

	w := f.workOrder(t, r.ID())
	assert.Equal(t, "WO-20260114-000002", w.WorkOrderID())
	assert.Equal(t, vo.WorkOrderPending, w.Status())

	_, err := f.svc.WorkOrders.Create(context.Background(), maintenance.WorkOrderDetails{
		MaintenanceRequestID: r.ID(),
		WorkDescription:      "Second attempt",
	}, 5)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Contains(t, errors.GetAppError(err).Fields, "maintenance_request_id")
	assert.Equal(t, 1, f.workOrders.Len())

	// Editing the existing order is not blocked by its own link.
	_, err = f.svc.WorkOrders.Update(context.Background(), w.ID(), maintenance.WorkOrderDetails{
		MaintenanceRequestID: r.ID(),
		WorkDescription:      "Replace washer and valve",
		ScheduledStart:       "09:30",
	})
	assert.NoError(t, err)
}

func TestCreateWorkOrder_UnknownRequest(t *testing.T) {
	f := newFixture()

	_, err := f.svc.WorkOrders.Create(context.Background(), maintenance.WorkOrderDetails{
		MaintenanceRequestID: 77,
		WorkDescription:      "Nothing to fix",
	}, 5)
	require.Error(t, err)
	assert.Contains(t, errors.GetAppError(err).Fields, "maintenance_request_id")
}

func TestBulkRequestAction(t *testing.T) {
	f := newFixture()
	a := f.request(t)
	b := f.request(t)

	result, err := f.svc.BulkRequestAction(context.Background(), []uint{a.ID(), b.ID(), 404}, "mark_completed", 1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{a.ID(), b.ID()}, result.Updated)
	assert.Equal(t, []uint{404}, result.Missing)

	assert.Equal(t, vo.RequestStatusCompleted, a.Status())
	assert.NotNil(t, a.CompletedAt())
	assert.Len(t, f.history.Changes, 2)
	assert.Equal(t, 2, f.recorder.Seen[EntityRequest+":completed"])

	_, err = f.svc.BulkRequestAction(context.Background(), []uint{a.ID()}, "mark_lost", 1)
	require.Error(t, err)
	assert.Contains(t, errors.GetAppError(err).Fields, "action")
}

func TestAssignTechnician(t *testing.T) {
	f := newFixture()
	r := f.request(t)
	tech, err := maintenance.NewTechnician(maintenance.TechnicianDetails{UserID: 12, Specialization: vo.SpecializationPlumbing})
	require.NoError(t, err)
	require.NoError(t, f.technicians.Create(context.Background(), tech))

	assigned, err := f.svc.AssignTechnician(context.Background(), r.ID(), tech.ID())
	require.NoError(t, err)
	require.NotNil(t, assigned.AssignedToID())
	assert.Equal(t, tech.ID(), *assigned.AssignedToID())
	assert.NotNil(t, assigned.AssignedDate())

	_, err = f.svc.AssignTechnician(context.Background(), r.ID(), 999)
	require.Error(t, err)
	assert.Contains(t, errors.GetAppError(err).Fields, "technician_id")
}

func TestRecordCompletion_ClosesWorkOrder(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	w := f.workOrder(t, f.request(t).ID())
	labor := int64(4500)

	c, err := f.svc.RecordCompletion(ctx, maintenance.CompletionDetails{
		WorkOrderID:    w.ID(),
		WorkPerformed:  "Washer replaced",
		HoursWorked:    1.5,
		LaborCostCents: &labor,
		PartsCostCents: 500,
	}, 12)
	require.NoError(t, err)
	require.NotNil(t, c.TotalCostCents())
	assert.Equal(t, int64(5000), *c.TotalCostCents())

	assert.Equal(t, vo.WorkOrderCompleted, w.Status())
	assert.NotNil(t, w.Details().ActualEnd)
	require.Len(t, f.history.Changes, 1)
	assert.Equal(t, "pending", f.history.Changes[0].OldStatus())
	assert.Equal(t, EntityWorkOrder, f.history.Changes[0].EntityType())

	_, err = f.svc.RecordCompletion(ctx, maintenance.CompletionDetails{
		WorkOrderID: w.ID(), WorkPerformed: "Again", HoursWorked: 1,
	}, 12)
	require.Error(t, err)
	assert.Contains(t, errors.GetAppError(err).Fields, "work_order_id")
	assert.Equal(t, 1, f.completions.Len())
	// the request names no asset, so nothing reaches the service log
	assert.Equal(t, 0, f.log.Len())
}

func TestRecordCompletion_LogsAssetHistory(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	assetID := uint(31)
	r, err := f.svc.Requests.Create(ctx, maintenance.RequestDetails{
		Title: "Projector flicker", Description: "Room 2", AssetID: &assetID,
	}, 5)
	require.NoError(t, err)
	w := f.workOrder(t, r.ID())

	_, err = f.svc.RecordCompletion(ctx, maintenance.CompletionDetails{
		WorkOrderID: w.ID(), WorkPerformed: "Lamp replaced", HoursWorked: 0.5, AssetConditionAfter: vo.ConditionAfterGood,
	}, 12)
	require.NoError(t, err)

	require.Equal(t, 1, f.log.Len())
	entry := f.log.All()[0].Details()
	assert.Equal(t, assetID, entry.AssetID)
	require.NotNil(t, entry.WorkOrderID)
	assert.Equal(t, w.ID(), *entry.WorkOrderID)
	assert.Equal(t, "Lamp replaced", entry.WorkDescription)
	assert.Equal(t, "good", entry.ConditionAfter)
}

func TestRecordCompletion_RejectsShortShift(t *testing.T) {
	f := newFixture()
	w := f.workOrder(t, f.request(t).ID())

	_, err := f.svc.RecordCompletion(context.Background(), maintenance.CompletionDetails{
		WorkOrderID: w.ID(), WorkPerformed: "Looked at it", HoursWorked: 0.05,
	}, 12)
	require.Error(t, err)
	assert.Contains(t, errors.GetAppError(err).Fields, "hours_worked")
	assert.Equal(t, vo.WorkOrderPending, w.Status())
	assert.Empty(t, f.history.Changes)
}

func TestMarkSchedulePerformed(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	due := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	sc, err := f.svc.Schedules.Create(ctx, maintenance.ScheduleDetails{
		AssetID: 3, Title: "Boiler check", Description: "Pressure and valves",
		Frequency: vo.FrequencyQuarterly, NextDueDate: due, IsActive: true,
	}, 1)
	require.NoError(t, err)

	performed := time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC)
	updated, err := f.svc.MarkSchedulePerformed(ctx, sc.ID(), performed)
	require.NoError(t, err)
	assert.Equal(t, performed.AddDate(0, 3, 0), updated.Details().NextDueDate)
	assert.Equal(t, 1, f.schedules.Updates)

	_, err = f.svc.MarkSchedulePerformed(ctx, sc.ID(), time.Time{})
	require.Error(t, err)
	assert.Contains(t, errors.GetAppError(err).Fields, "performed_on")

	_, err = f.svc.MarkSchedulePerformed(ctx, 404, performed)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestCreateSignature_OnePerType(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	w := f.workOrder(t, f.request(t).ID())

	sig, err := f.svc.Signatures.Create(ctx, maintenance.SignatureDetails{
		WorkOrderID: w.ID(), SignatureType: vo.SignatureTechnicianEnd, SignatureData: "aGVsbG8=",
	}, 12)
	require.NoError(t, err)
	require.NotNil(t, sig.Details().SignerID)
	assert.Equal(t, uint(12), *sig.Details().SignerID)
	assert.False(t, sig.SignedAt().IsZero())

	_, err = f.svc.Signatures.Create(ctx, maintenance.SignatureDetails{
		WorkOrderID: w.ID(), SignatureType: vo.SignatureTechnicianEnd, SignatureData: "aGVsbG8=",
	}, 13)
	require.Error(t, err)
	assert.Contains(t, errors.GetAppError(err).Fields, "signature_type")

	_, err = f.svc.Signatures.Create(ctx, maintenance.SignatureDetails{
		WorkOrderID: w.ID(), SignatureType: vo.SignatureSupervisorApproval, SignatureData: "aGVsbG8=",
	}, 13)
	require.NoError(t, err)

	_, err = f.svc.Signatures.Create(ctx, maintenance.SignatureDetails{
		WorkOrderID: 404, SignatureType: vo.SignatureTechnicianStart, SignatureData: "aGVsbG8=",
	}, 13)
	require.Error(t, err)
	assert.Contains(t, errors.GetAppError(err).Fields, "work_order_id")
	assert.Equal(t, 2, f.signatures.Len())

	// comments stay editable after signing
	_, err = f.svc.Signatures.Update(ctx, sig.ID(), maintenance.SignatureDetails{Comments: "Signed on site"})
	assert.NoError(t, err)
}

func TestCreateMetrics_OnePerMonth(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	april, err := f.svc.Metrics.Create(ctx, maintenance.MetricsDetails{
		Month: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), TotalRequests: 10, CompletedRequests: 8,
	}, 1)
	require.NoError(t, err)

	_, err = f.svc.Metrics.Create(ctx, maintenance.MetricsDetails{
		Month: time.Date(2026, 4, 20, 0, 0, 0, 0, time.UTC),
	}, 1)
	require.Error(t, err)
	assert.Contains(t, errors.GetAppError(err).Fields, "month")

	_, err = f.svc.Metrics.Update(ctx, april.ID(), maintenance.MetricsDetails{
		Month: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), TotalRequests: 12, CompletedRequests: 12,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, f.metrics.Len())
}
