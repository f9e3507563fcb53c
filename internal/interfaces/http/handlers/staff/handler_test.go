package staff

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	app "campus/internal/application/staff"
	apptest "campus/internal/application/testutil"
	"campus/internal/domain/staff"
	"campus/internal/interfaces/http/handlers/testutil"
	"campus/internal/shared/authorization"
	"campus/internal/shared/errors"
)

type memoryLeaders struct {
	*apptest.MemoryRepository[*staff.Leadership, staff.LeaderFilter]
}

func (m *memoryLeaders) GetByUserID(_ context.Context, userID uint) (*staff.Leadership, error) {
	for _, l := range m.All() {
		if l.Details().UserID != nil && *l.Details().UserID == userID {
			return l, nil
		}
	}
	return nil, errors.NewNotFoundError("leadership profile not found")
}

const deanUserID = uint(21)

func newHandler(t *testing.T) (*Handler, *memoryLeaders) {
	t.Helper()
	leaders := &memoryLeaders{apptest.NewMemoryRepository[*staff.Leadership, staff.LeaderFilter]()}
	svc := app.NewService(apptest.NewMemoryRepository[*staff.StaffMember, staff.MemberFilter](), leaders, &apptest.Tx{}, testutil.NewMockLogger())

	userID := deanUserID
	_, err := svc.Leadership.Create(context.Background(), staff.LeaderDetails{
		UserID:   &userID,
		FullName: "Dr. Ama Mensah",
		Position: "Dean of Science",
		Email:    "ama@uni.edu",
		IsActive: true,
	}, 1)
	require.NoError(t, err)
	return NewHandler(svc, testutil.NewMockLogger()), leaders
}

func decodeLeader(t *testing.T, resp testutil.APIResponse) LeaderResponse {
	t.Helper()
	var out LeaderResponse
	require.NoError(t, json.Unmarshal(resp.Data, &out))
	return out
}

func TestGetMyProfile(t *testing.T) {
	h, _ := newHandler(t)

	t.Run("linked leader", func(t *testing.T) {
		c, w := testutil.NewTestContext(http.MethodGet, "/api/staff/leadership/me", nil)
		testutil.SetAuthContext(c, deanUserID, string(authorization.RoleStaff))

		h.GetMyProfile(c)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.True(t, resp.Success)
		got := decodeLeader(t, resp)
		assert.Equal(t, "Dr. Ama Mensah", got.FullName)
		require.NotNil(t, got.UserID)
		assert.Equal(t, deanUserID, *got.UserID)
	})

	t.Run("no linked profile", func(t *testing.T) {
		c, w := testutil.NewTestContext(http.MethodGet, "/api/staff/leadership/me", nil)
		testutil.SetAuthContext(c, 99, string(authorization.RoleStaff))

		h.GetMyProfile(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.False(t, resp.Success)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "no leadership profile is linked to your account", resp.Error.Message)
	})
}

func TestUpdateMyProfile(t *testing.T) {
	t.Run("edits own fields and keeps the rest", func(t *testing.T) {
		h, leaders := newHandler(t)
		c, w := testutil.NewTestContext(http.MethodPut, "/api/staff/leadership/me", map[string]any{
			"biography": "Professor of chemistry",
			"phone":     "+233 20 000 0000",
		})
		testutil.SetAuthContext(c, deanUserID, string(authorization.RoleStaff))

		h.UpdateMyProfile(c)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.Equal(t, "Profile updated", resp.Message)
		got := decodeLeader(t, resp)
		assert.Equal(t, "Professor of chemistry", got.Biography)
		assert.Equal(t, "+233 20 000 0000", got.Phone)
		assert.Equal(t, "ama@uni.edu", got.Email)
		assert.Equal(t, "Dean of Science", got.Position)
		assert.Equal(t, 1, leaders.Updates)
	})

	t.Run("invalid email is a field error", func(t *testing.T) {
		h, leaders := newHandler(t)
		c, w := testutil.NewTestContext(http.MethodPut, "/api/staff/leadership/me", map[string]any{
			"email": "not-an-email",
		})
		testutil.SetAuthContext(c, deanUserID, string(authorization.RoleStaff))

		h.UpdateMyProfile(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		require.NotNil(t, resp.Error)
		assert.Contains(t, resp.Error.Fields, "email")
		assert.Equal(t, 0, leaders.Updates)
	})

	t.Run("caller without a profile", func(t *testing.T) {
		h, leaders := newHandler(t)
		c, w := testutil.NewTestContext(http.MethodPut, "/api/staff/leadership/me", map[string]any{
			"biography": "hijack",
		})
		testutil.SetAuthContext(c, 77, string(authorization.RoleStaff))

		h.UpdateMyProfile(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, 0, leaders.Updates)
	})
}
