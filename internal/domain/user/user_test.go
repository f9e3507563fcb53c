package user

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus/internal/domain/shared"
	"campus/internal/shared/authorization"
)

type plainHasher struct{}

func (plainHasher) Hash(p string) (string, error) { return "hashed:" + p, nil }
func (plainHasher) Verify(p, h string) error {
	if h != "hashed:"+p {
		return errors.New("mismatch")
	}
	return nil
}

func TestNewUser(t *testing.T) {
	u, err := NewUser(" Head@Campus.edu ", "Ada Head", authorization.RoleStaff)
	require.NoError(t, err)
	assert.Equal(t, "head@campus.edu", u.Email())
	assert.True(t, u.IsActive())
	assert.True(t, u.IsStaff())

	_, err = NewUser("not-an-email", "X", authorization.RoleUser)
	fe, ok := shared.AsFieldError(err)
	require.True(t, ok)
	assert.Equal(t, "email", fe.Field)

	_, err = NewUser("a@x.com", "X", authorization.UserRole("dean"))
	assert.Error(t, err)
}

func TestUser_Authenticate(t *testing.T) {
	u, err := NewUser("a@x.com", "A", authorization.RoleUser)
	require.NoError(t, err)
	assert.False(t, u.IsStaff())

	assert.Error(t, u.SetPassword("short", plainHasher{}))
	require.NoError(t, u.SetPassword("longenough1", plainHasher{}))

	assert.Error(t, u.Authenticate("wrong-password", plainHasher{}))
	assert.Nil(t, u.LastLoginAt())

	require.NoError(t, u.Authenticate("longenough1", plainHasher{}))
	assert.NotNil(t, u.LastLoginAt())

	u.SetActive(false)
	assert.Error(t, u.Authenticate("longenough1", plainHasher{}))
}
