package visits

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus/internal/application/common"
	"campus/internal/application/common/lifecycle"
	"campus/internal/application/testutil"
	"campus/internal/domain/visits"
	vo "campus/internal/domain/visits/valueobjects"
	"campus/internal/shared/authorization"
	"campus/internal/shared/errors"
	"campus/internal/shared/logger"
	"campus/internal/shared/query"
)

type mockDepartmentRepository struct {
	*testutil.MemoryRepository[*visits.Department, struct{}]
}

func (m *mockDepartmentRepository) List(_ context.Context, _ query.PageFilter) ([]*visits.Department, int64, error) {
	rows := m.All()
	return rows, int64(len(rows)), nil
}

var (
	student   = common.Caller{UserID: 10, Role: authorization.RoleUser}
	classmate = common.Caller{UserID: 11, Role: authorization.RoleUser}
	secretary = common.Caller{UserID: 2, Role: authorization.RoleStaff}
)

type fixture struct {
	svc      *Service
	requests *testutil.MemoryRepository[*visits.VisitRequest, visits.RequestFilter]
	history  *testutil.MemoryHistory
	deptID   uint
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	departments := &mockDepartmentRepository{testutil.NewMemoryRepository[*visits.Department, struct{}]()}
	requests := testutil.NewMemoryRepository[*visits.VisitRequest, visits.RequestFilter]()
	requests.ListFunc = func(f visits.RequestFilter, rows []*visits.VisitRequest) ([]*visits.VisitRequest, int64, error) {
		var out []*visits.VisitRequest
		for _, r := range rows {
			if f.RequesterID == 0 || r.RequesterID() == f.RequesterID {
				out = append(out, r)
			}
		}
		return out, int64(len(out)), nil
	}
	history := &testutil.MemoryHistory{}
	log := logger.NewNopLogger()
	svc := NewService(departments, requests, &testutil.Tx{}, lifecycle.NewJournal(history, nil, log), log)

	dept, err := svc.CreateDepartment(context.Background(), "Registry")
	require.NoError(t, err)
	return &fixture{svc: svc, requests: requests, history: history, deptID: dept.ID()}
}

func (f *fixture) file(t *testing.T, caller common.Caller) *visits.VisitRequest {
	t.Helper()
	v, err := f.svc.Create(context.Background(), caller, CreateRequest{DepartmentID: f.deptID, Reason: "Transcript query"})
	require.NoError(t, err)
	return v
}

func TestCreate_ReasonRequired(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(context.Background(), student, CreateRequest{DepartmentID: f.deptID, Reason: "  "})
	require.Error(t, err)
	assert.Equal(t, visits.ReasonRequiredMessage, errors.GetAppError(err).Fields["reason"])

	_, err = f.svc.Create(context.Background(), student, CreateRequest{DepartmentID: 99, Reason: "x"})
	require.Error(t, err)
	assert.Contains(t, errors.GetAppError(err).Fields, "department_id")
	assert.Equal(t, 0, f.requests.Len())
}

func TestCreate_SecretaryOnBehalf(t *testing.T) {
	f := newFixture(t)

	v, err := f.svc.Create(context.Background(), secretary, CreateRequest{RequesterID: student.UserID, DepartmentID: f.deptID, Reason: "Fees"})
	require.NoError(t, err)
	assert.Equal(t, student.UserID, v.RequesterID())
	require.NotNil(t, v.CreatedBySecretary())
	assert.Equal(t, secretary.UserID, *v.CreatedBySecretary())

	// Ordinary users cannot file for someone else.
	v, err = f.svc.Create(context.Background(), classmate, CreateRequest{RequesterID: student.UserID, DepartmentID: f.deptID, Reason: "Fees"})
	require.NoError(t, err)
	assert.Equal(t, classmate.UserID, v.RequesterID())
	assert.Nil(t, v.CreatedBySecretary())
}

func TestScope(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	mine := f.file(t, student)
	f.file(t, classmate)

	items, total, err := f.svc.List(ctx, student, visits.RequestFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, mine.ID(), items[0].ID())

	_, total, err = f.svc.List(ctx, secretary, visits.RequestFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	_, err = f.svc.Get(ctx, classmate, mine.ID())
	assert.True(t, errors.IsNotFoundError(err))
	_, err = f.svc.Update(ctx, classmate, mine.ID(), 0, "hijack")
	assert.True(t, errors.IsNotFoundError(err))
	assert.True(t, errors.IsNotFoundError(f.svc.Delete(ctx, classmate, mine.ID())))

	updated, err := f.svc.Update(ctx, student, mine.ID(), 0, "Updated reason")
	require.NoError(t, err)
	assert.Equal(t, "Updated reason", updated.Reason())

	require.NoError(t, f.svc.Delete(ctx, student, mine.ID()))
	assert.Equal(t, 1, f.requests.Len())
}

func TestRespond(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	v := f.file(t, student)

	_, err := f.svc.Respond(ctx, student, v.ID(), "APPROVED", "")
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
	assert.Equal(t, PermissionDeniedMessage, errors.GetAppError(err).Message)

	// someone else's request is out of scope before it is out of role
	_, err = f.svc.Respond(ctx, classmate, v.ID(), "APPROVED", "")
	assert.True(t, errors.IsNotFoundError(err))

	_, err = f.svc.Respond(ctx, secretary, v.ID()+100, "APPROVED", "")
	assert.True(t, errors.IsNotFoundError(err))

	_, err = f.svc.Respond(ctx, secretary, v.ID(), "approved", "")
	require.Error(t, err)
	assert.Equal(t, lifecycle.InvalidStatusMessage, errors.GetAppError(err).Message)

	got, err := f.svc.Respond(ctx, secretary, v.ID(), "APPROVED", "Come on Monday")
	require.NoError(t, err)
	assert.Equal(t, vo.VisitApproved, got.Status())
	assert.Equal(t, "Come on Monday", got.HeadNote())
	require.NotNil(t, got.RespondedBy())
	assert.Equal(t, secretary.UserID, *got.RespondedBy())
	assert.NotNil(t, got.RespondedAt())

	require.Len(t, f.history.Changes, 1)
	assert.Equal(t, "PENDING", f.history.Changes[0].OldStatus())
	assert.Equal(t, "Come on Monday", f.history.Changes[0].Note())
}
