package usecases

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus/internal/application/testutil"
	"campus/internal/application/user/dto"
	"campus/internal/domain/user"
	"campus/internal/shared/authorization"
	"campus/internal/shared/errors"
	"campus/internal/shared/logger"
)

type mockUserRepository struct {
	*testutil.MemoryRepository[*user.User, user.Filter]
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{testutil.NewMemoryRepository[*user.User, user.Filter]()}
}

func (m *mockUserRepository) GetByEmail(_ context.Context, email string) (*user.User, error) {
	for _, u := range m.All() {
		if u.Email() == strings.ToLower(strings.TrimSpace(email)) {
			return u, nil
		}
	}
	return nil, errors.NewNotFoundError("user not found")
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := m.GetByEmail(ctx, email)
	return err == nil, nil
}

type plainHasher struct{}

func (plainHasher) Hash(p string) (string, error) { return "hashed:" + p, nil }

func (plainHasher) Verify(p, h string) error {
	if h != "hashed:"+p {
		return fmt.Errorf("mismatch")
	}
	return nil
}

type stubIssuer struct {
	issued []uint
}

func (s *stubIssuer) Issue(userID uint, role authorization.UserRole) (string, time.Time, error) {
	s.issued = append(s.issued, userID)
	return fmt.Sprintf("token-%d-%s", userID, role), time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), nil
}

func createUser(t *testing.T, repo *mockUserRepository, email, role string) *dto.UserResponse {
	uc := NewCreateUserUseCase(repo, plainHasher{}, logger.NewNopLogger())
	resp, err := uc.Execute(context.Background(), dto.CreateUserRequest{
		Email: email, FullName: "Grace Hopper", Password: "s3cret-pass", Role: role,
	})
	require.NoError(t, err)
	return resp
}

func TestCreateUser(t *testing.T) {
	repo := newMockUserRepository()
	resp := createUser(t, repo, "Grace@Campus.edu", "")
	assert.Equal(t, "grace@campus.edu", resp.Email)
	assert.Equal(t, "user", resp.Role)
	assert.True(t, resp.IsActive)

	uc := NewCreateUserUseCase(repo, plainHasher{}, logger.NewNopLogger())
	_, err := uc.Execute(context.Background(), dto.CreateUserRequest{Email: "grace@campus.edu", Password: "another-pass"})
	require.Error(t, err)
	assert.Equal(t, "user with this email already exists", errors.GetAppError(err).Fields["email"])

	_, err = uc.Execute(context.Background(), dto.CreateUserRequest{Email: "short@campus.edu", Password: "short"})
	require.Error(t, err)
	assert.Contains(t, errors.GetAppError(err).Fields, "password")
}

func TestLoginWithPassword(t *testing.T) {
	repo := newMockUserRepository()
	created := createUser(t, repo, "admin@campus.edu", "admin")
	issuer := &stubIssuer{}
	uc := NewLoginWithPasswordUseCase(repo, plainHasher{}, issuer, logger.NewNopLogger())
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  bool
	}{
		{"valid credentials", "admin@campus.edu", "s3cret-pass", false},
		{"email is case insensitive", "ADMIN@campus.edu", "s3cret-pass", false},
		{"wrong password", "admin@campus.edu", "nope-nope", true},
		{"unknown email", "ghost@campus.edu", "s3cret-pass", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := uc.Execute(ctx, LoginWithPasswordCommand{Email: tt.email, Password: tt.password})
			if tt.wantErr {
				require.Error(t, err)
				appErr := errors.GetAppError(err)
				assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
				assert.Equal(t, invalidCredentials, appErr.Message)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, fmt.Sprintf("token-%d-admin", created.ID), resp.AccessToken)
			assert.Equal(t, "Bearer", resp.TokenType)
			assert.NotNil(t, resp.User.LastLoginAt)
		})
	}
	assert.Len(t, issuer.issued, 2)
}

func TestLoginWithPassword_InactiveAccount(t *testing.T) {
	repo := newMockUserRepository()
	created := createUser(t, repo, "staff@campus.edu", "staff")
	u, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	u.SetActive(false)

	uc := NewLoginWithPasswordUseCase(repo, plainHasher{}, &stubIssuer{}, logger.NewNopLogger())
	_, err = uc.Execute(context.Background(), LoginWithPasswordCommand{Email: "staff@campus.edu", Password: "s3cret-pass"})
	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeUnauthorized, errors.GetAppError(err).Type)
}

func TestUpdateUser(t *testing.T) {
	repo := newMockUserRepository()
	admin := createUser(t, repo, "admin@campus.edu", "admin")
	member := createUser(t, repo, "member@campus.edu", "")
	uc := NewUpdateUserUseCase(repo, plainHasher{}, logger.NewNopLogger())
	ctx := context.Background()

	staff := "staff"
	inactive := false
	resp, err := uc.Execute(ctx, admin.ID, member.ID, dto.UpdateUserRequest{Role: &staff, IsActive: &inactive})
	require.NoError(t, err)
	assert.Equal(t, "staff", resp.Role)
	assert.False(t, resp.IsActive)

	demote := "user"
	_, err = uc.Execute(ctx, admin.ID, admin.ID, dto.UpdateUserRequest{Role: &demote})
	require.Error(t, err)
	assert.Contains(t, errors.GetAppError(err).Fields, "role")

	_, err = uc.Execute(ctx, admin.ID, admin.ID, dto.UpdateUserRequest{IsActive: &inactive})
	require.Error(t, err)
	assert.Contains(t, errors.GetAppError(err).Fields, "is_active")

	_, err = uc.Execute(ctx, admin.ID, 99, dto.UpdateUserRequest{})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestGetAndDeleteUser(t *testing.T) {
	repo := newMockUserRepository()
	admin := createUser(t, repo, "admin@campus.edu", "admin")
	member := createUser(t, repo, "member@campus.edu", "")
	ctx := context.Background()

	get := NewGetUserUseCase(repo, logger.NewNopLogger())
	resp, err := get.ExecuteByID(ctx, member.ID)
	require.NoError(t, err)
	assert.Equal(t, "member@campus.edu", resp.Email)

	list, total, err := get.ExecuteList(ctx, dto.ListUsersRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, list, 2)

	del := NewDeleteUserUseCase(repo, logger.NewNopLogger())
	assert.Error(t, del.Execute(ctx, admin.ID, admin.ID))
	require.NoError(t, del.Execute(ctx, admin.ID, member.ID))
	assert.True(t, errors.IsNotFoundError(del.Execute(ctx, admin.ID, member.ID)))

	_, err = get.ExecuteByID(ctx, member.ID)
	assert.True(t, errors.IsNotFoundError(err))
}
