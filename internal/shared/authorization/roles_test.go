package authorization

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserRole(t *testing.T) {
	assert.True(t, RoleAdmin.IsStaff())
	assert.True(t, RoleStaff.IsStaff())
	assert.False(t, RoleUser.IsStaff())
	assert.False(t, RoleStaff.IsAdmin())
	assert.Equal(t, RoleUser, ParseUserRole("superuser"))
	assert.Equal(t, RoleStaff, ParseUserRole("staff"))
}
