package staff

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus/internal/application/testutil"
	"campus/internal/domain/staff"
	"campus/internal/shared/errors"
	"campus/internal/shared/logger"
)

type mockLeadershipRepository struct {
	*testutil.MemoryRepository[*staff.Leadership, staff.LeaderFilter]
}

func (m *mockLeadershipRepository) GetByUserID(_ context.Context, userID uint) (*staff.Leadership, error) {
	for _, l := range m.All() {
		if l.Details().UserID != nil && *l.Details().UserID == userID {
			return l, nil
		}
	}
	return nil, errors.NewNotFoundError("leadership profile not found")
}

func strPtr(s string) *string { return &s }

func TestMyProfile(t *testing.T) {
	leaders := &mockLeadershipRepository{testutil.NewMemoryRepository[*staff.Leadership, staff.LeaderFilter]()}
	svc := NewService(testutil.NewMemoryRepository[*staff.StaffMember, staff.MemberFilter](), leaders, &testutil.Tx{}, logger.NewNopLogger())
	ctx := context.Background()
	userID := uint(21)

	created, err := svc.Leadership.Create(ctx, staff.LeaderDetails{UserID: &userID, FullName: "Dr. Ama Mensah", Position: "Dean"}, 1)
	require.NoError(t, err)

	got, err := svc.MyProfile(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, created.ID(), got.ID())

	updated, err := svc.UpdateMyProfile(ctx, userID, staff.ProfileChanges{
		Biography: strPtr("Professor of chemistry"),
		Email:     strPtr("AMA@uni.edu"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Professor of chemistry", updated.Details().Biography)
	assert.Equal(t, "ama@uni.edu", updated.Details().Email)
	assert.Equal(t, "Dean", updated.Details().Position)

	_, err = svc.UpdateMyProfile(ctx, userID, staff.ProfileChanges{Email: strPtr("not-an-email")})
	require.Error(t, err)
	assert.Contains(t, errors.GetAppError(err).Fields, "email")

	_, err = svc.MyProfile(ctx, 99)
	assert.True(t, errors.IsNotFoundError(err))
}
